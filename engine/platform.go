package engine

import (
	"sync"
	"unsafe"
)

// wordSize is the size of a ValueCell's storage word: large enough to
// hold either a Ptr or an Aint, whichever is wider. The engine never
// assumes Ptr and Aint are the same width as Int and Fint.
const wordSize = max(unsafe.Sizeof(Ptr(0)), unsafe.Sizeof(Aint(0)))

// storageWord is the machine word a ValueCell stores its value in.
type storageWord [wordSize]byte

var (
	probeOnce   sync.Once
	intSlotOff  int
	fintSlotOff int
)

// ensureProbed runs the platform probe exactly once per process. It is
// safe to call from any goroutine at any time; Subsystem.GetRef calls
// it during construction, matching the original engine's practice of
// computing these offsets once per subsystem lifetime, but the probe
// itself is a pure function of the platform's memory layout so doing it
// lazily on first use is equally correct.
func ensureProbed() {
	probeOnce.Do(probeSubwordOffsets)
}

// probeSubwordOffsets runs a write-and-scan probe: write a Ptr-wide 1
// into a probe word, then scan the word as an array of Int (resp.
// Fint) and record the index whose value is 1. That index times the
// narrow type's size
// is the byte offset, within any storageWord, at which storing or
// reading the narrow type yields the low-order bits of a full-word
// value — the low-order slot on little-endian platforms, the
// high-order slot on big-endian ones.
func probeSubwordOffsets() {
	var probe storageWord
	*(*Ptr)(unsafe.Pointer(&probe[0])) = 1

	intsPerWord := int(unsafe.Sizeof(Ptr(0)) / unsafe.Sizeof(Int(0)))
	ints := unsafe.Slice((*Int)(unsafe.Pointer(&probe[0])), intsPerWord)
	for i, v := range ints {
		if v == 1 {
			intSlotOff = i * int(unsafe.Sizeof(Int(0)))
			break
		}
	}

	fintsPerWord := int(unsafe.Sizeof(Ptr(0)) / unsafe.Sizeof(Fint(0)))
	fints := unsafe.Slice((*Fint)(unsafe.Pointer(&probe[0])), fintsPerWord)
	for i, v := range fints {
		if v == 1 {
			fintSlotOff = i * int(unsafe.Sizeof(Fint(0)))
			break
		}
	}
}
