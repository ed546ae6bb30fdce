package engine

import "fmt"

// This file supplies per-host-kind convenience wrappers in the spirit
// of the original engine's per-representation front ends
// (ompi_attr_set_c et al.). Each pair below is a thin Set/Get wrapper that fixes
// the host kind and write mode so callers working against one kind of
// host never have to pick a cell constructor themselves.

// SetCommPtr attaches a native-pointer-valued attribute to a
// communicator's attribute map.
func (s *Subsystem) SetCommPtr(host Host, attrs *AttributeMap, key int, v Ptr) error {
	return s.setTyped(Communicator, host, attrs, key, NewPtrCell(v))
}

// GetCommPtr reads a communicator attribute as a native pointer.
func (s *Subsystem) GetCommPtr(attrs *AttributeMap, key int) (Ptr, bool, error) {
	cell, found, err := s.Get(key, attrs)
	if err != nil || !found {
		return 0, found, err
	}
	return cell.ReadPtr(), true, nil
}

// SetDatatypePtr attaches a native-pointer-valued attribute to a
// datatype's attribute map.
func (s *Subsystem) SetDatatypePtr(host Host, attrs *AttributeMap, key int, v Ptr) error {
	return s.setTyped(Datatype, host, attrs, key, NewPtrCell(v))
}

// GetDatatypePtr reads a datatype attribute as a native pointer.
func (s *Subsystem) GetDatatypePtr(attrs *AttributeMap, key int) (Ptr, bool, error) {
	cell, found, err := s.Get(key, attrs)
	if err != nil || !found {
		return 0, found, err
	}
	return cell.ReadPtr(), true, nil
}

// SetWindowAint attaches a wide-address-integer-valued attribute to a
// window's attribute map — the representation WIN_BASE, WIN_SIZE and
// the like are cached in.
func (s *Subsystem) SetWindowAint(host Host, attrs *AttributeMap, key int, v Aint) error {
	return s.setTyped(Window, host, attrs, key, NewAintCell(v))
}

// GetWindowAint reads a window attribute as a wide address integer.
func (s *Subsystem) GetWindowAint(attrs *AttributeMap, key int) (Aint, bool, error) {
	cell, found, err := s.Get(key, attrs)
	if err != nil || !found {
		return 0, found, err
	}
	return cell.ReadAint(), true, nil
}

// SetInstancePtr attaches a native-pointer-valued attribute to the
// process instance's attribute map.
func (s *Subsystem) SetInstancePtr(host Host, attrs *AttributeMap, key int, v Ptr) error {
	return s.setTyped(Instance, host, attrs, key, NewPtrCell(v))
}

// GetInstancePtr reads a process-instance attribute as a native
// pointer.
func (s *Subsystem) GetInstancePtr(attrs *AttributeMap, key int) (Ptr, bool, error) {
	cell, found, err := s.Get(key, attrs)
	if err != nil || !found {
		return 0, found, err
	}
	return cell.ReadPtr(), true, nil
}

func (s *Subsystem) setTyped(hostKind HostKind, host Host, attrs *AttributeMap, key int, cell *ValueCell) error {
	if host.Kind() != hostKind {
		return fmt.Errorf("%w: host is a %s, not a %s", ErrArg, host.Kind(), hostKind)
	}
	return s.Set(hostKind, host, attrs, key, cell, true)
}
