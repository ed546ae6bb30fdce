package engine

import "unsafe"

// ValueCell holds one attribute's stored value along with the write
// mode that determines how it is translated for readers in other
// representations. A cell's write mode and storage never change after
// construction, and its key and sequence number are assigned once, when
// Set inserts it into an AttributeMap; replacing an attribute's value
// means substituting a new cell in the owning AttributeMap, never
// mutating this one. This lets the engine hand out raw addresses into a
// cell's storage (see ReadPtr) that stay valid for the cell's entire
// lifetime.
type ValueCell struct {
	key       int
	storage   storageWord
	writeMode WriteMode
	sequence  uint64
}

// Key returns the keyval this cell belongs to.
func (c *ValueCell) Key() int { return c.key }

// Sequence returns the monotonic counter assigned when this cell was
// inserted. Sequence numbers are strictly increasing across every cell
// ever created in a Subsystem's lifetime and are used to order
// destruction in DeleteAll.
func (c *ValueCell) Sequence() uint64 { return c.sequence }

// WriteMode returns the representation this cell was originally
// written in.
func (c *ValueCell) WriteMode() WriteMode { return c.writeMode }

// NewPtrCell constructs a cell holding a value written as a native
// pointer.
func NewPtrCell(v Ptr) *ValueCell {
	ensureProbed()
	c := &ValueCell{writeMode: PointerMode}
	*(*Ptr)(unsafe.Pointer(&c.storage[0])) = v
	return c
}

// NewIntCell constructs a cell holding a value written as a native
// integer.
func NewIntCell(v Int) *ValueCell {
	ensureProbed()
	c := &ValueCell{writeMode: IntMode}
	*(*Int)(unsafe.Pointer(&c.storage[intSlotOff])) = v
	return c
}

// NewFintCell constructs a cell holding a value written as a narrow
// Fortran integer.
func NewFintCell(v Fint) *ValueCell {
	ensureProbed()
	c := &ValueCell{writeMode: FintMode}
	*(*Fint)(unsafe.Pointer(&c.storage[fintSlotOff])) = v
	return c
}

// NewAintCell constructs a cell holding a value written as a wide
// Fortran address integer.
func NewAintCell(v Aint) *ValueCell {
	ensureProbed()
	c := &ValueCell{writeMode: AintMode}
	*(*Aint)(unsafe.Pointer(&c.storage[0])) = v
	return c
}

// ReadPtr translates the stored value to a native pointer per the
// engine's translation table. For PointerMode cells this is the value
// as written. For every other mode it is the stable address, within
// this cell, of the narrower representation — a pointer-dereferencing
// reader observes the exact value the writer stored. The returned
// address is valid for as long as this cell is reachable.
func (c *ValueCell) ReadPtr() Ptr {
	switch c.writeMode {
	case PointerMode:
		return *(*Ptr)(unsafe.Pointer(&c.storage[0]))
	case IntMode:
		return uintptr(unsafe.Pointer(&c.storage[intSlotOff]))
	case FintMode:
		return uintptr(unsafe.Pointer(&c.storage[fintSlotOff]))
	case AintMode:
		return uintptr(unsafe.Pointer(&c.storage[0]))
	default:
		return 0
	}
}

// ReadFint translates the stored value to a narrow Fortran integer.
// Every write mode's storage aliases correctly at fintSlotOff: a
// pointer or wide address integer is narrow-truncated by reading only
// its low-order (resp. high-order, on big-endian platforms) bytes, and
// a same-width native integer is read back byte-for-byte.
func (c *ValueCell) ReadFint() Fint {
	return *(*Fint)(unsafe.Pointer(&c.storage[fintSlotOff]))
}

// ReadAint translates the stored value to a wide Fortran address
// integer. Pointer- and address-integer-written cells are read
// byte-for-byte (both occupy the full storage word); integer-written
// cells are sign-extended at the value level, matching two's-complement
// widening semantics rather than zero-padding unused storage bytes.
func (c *ValueCell) ReadAint() Aint {
	switch c.writeMode {
	case PointerMode, AintMode:
		return *(*Aint)(unsafe.Pointer(&c.storage[0]))
	case IntMode:
		return Aint(*(*Int)(unsafe.Pointer(&c.storage[intSlotOff])))
	case FintMode:
		return Aint(*(*Fint)(unsafe.Pointer(&c.storage[fintSlotOff])))
	default:
		return 0
	}
}

// ReadInt translates the stored value to a native integer. This is used
// internally (e.g. by window attributes the engine stores by value) and
// mirrors ReadFint's aliasing rule using the Int slot instead.
func (c *ValueCell) ReadInt() Int {
	return *(*Int)(unsafe.Pointer(&c.storage[intSlotOff]))
}
