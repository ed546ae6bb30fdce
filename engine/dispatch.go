package engine

// This file dispatches to a keyval's copy or delete callback: a switch
// over the three calling conventions rather than a true tagged union,
// since Go has no variant types. Every entry point here must be called
// with s.mu held; each unlocks before invoking the user callback and
// re-locks before returning, so that a callback is free to reenter any
// other Subsystem operation (including one that calls back into this
// same dispatcher for a different key).

// invokeDeleteLocked runs desc's delete callback against cell, in
// desc's calling convention. Must be called with s.mu held.
func (s *Subsystem) invokeDeleteLocked(desc *KeyvalDescriptor, host Host, cell *ValueCell) error {
	s.mu.Unlock()
	defer s.mu.Lock()

	switch desc.flags.convention() {
	case conventionNative:
		if desc.nativeDelete == nil {
			return nil
		}
		return desc.nativeDelete(host, cell.key, desc.extraState.native, cell.ReadPtr())
	case conventionFortranNarrow:
		if desc.narrowDelete == nil {
			return nil
		}
		return desc.narrowDelete(host.BackHandle(), cell.key, desc.extraState.fint, cell.ReadFint())
	default: // conventionFortranWide
		if desc.wideDelete == nil {
			return nil
		}
		return desc.wideDelete(host.BackHandle(), cell.key, desc.extraState.aint, cell.ReadAint())
	}
}

// invokeCopyLocked runs desc's copy callback against cell, in desc's
// calling convention, and — if the callback reports attach=true —
// constructs the new cell in the write mode that convention implies
// (native copies are PointerMode, Fortran-narrow copies are FintMode,
// Fortran-wide copies are AintMode). Must be called with s.mu held.
func (s *Subsystem) invokeCopyLocked(desc *KeyvalDescriptor, oldHost, newHost Host, cell *ValueCell) (*ValueCell, bool, error) {
	s.mu.Unlock()
	defer s.mu.Lock()

	switch desc.flags.convention() {
	case conventionNative:
		if desc.nativeCopy == nil {
			return nil, false, nil
		}
		out, attach, err := desc.nativeCopy(oldHost, newHost, cell.key, desc.extraState.native, cell.ReadPtr())
		if err != nil || !attach {
			return nil, attach, err
		}
		return NewPtrCell(out), true, nil

	case conventionFortranNarrow:
		if desc.narrowCopy == nil {
			return nil, false, nil
		}
		out, attach, err := desc.narrowCopy(oldHost.BackHandle(), newHost.BackHandle(), cell.key, desc.extraState.fint, cell.ReadFint())
		if err != nil || !attach {
			return nil, attach, err
		}
		return NewFintCell(out), true, nil

	default: // conventionFortranWide
		if desc.wideCopy == nil {
			return nil, false, nil
		}
		out, attach, err := desc.wideCopy(oldHost.BackHandle(), newHost.BackHandle(), cell.key, desc.extraState.aint, cell.ReadAint())
		if err != nil || !attach {
			return nil, attach, err
		}
		return NewAintCell(out), true, nil
	}
}
