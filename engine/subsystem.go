package engine

import (
	"sync"

	"github.com/attrkit/attrkit/engine/keybitmap"
)

// fortranHandleMax bounds the key namespace that NewSubsystem and GetRef
// use. Real MPI runtimes bound it by the Fortran handle representation
// (typically INT_MAX); this package uses 1<<20. Tests that exhaust the
// key space use NewSubsystemWithCapacity with a smaller bound.
const fortranHandleMax = 1 << 20

// InstanceRetainer pins and releases the process-wide runtime instance
// while user keyvals exist. It is an external collaborator — the
// engine depends on its surface but never constructs or owns one; a
// nil retainer (the default) makes GetRef/PutRef and
// CreateKeyval/FreeKeyval no-ops with respect to instance pinning.
type InstanceRetainer interface {
	Retain()
	Release()
}

// Subsystem is the reference-counted, process-wide singleton owning
// the keyval registry and key bitmap. Construct one with GetRef and
// tear it down with PutRef once every reference is released.
type Subsystem struct {
	mu sync.Mutex

	refs      int
	keyvals   map[int]*KeyvalDescriptor
	bitmap    *keybitmap.Bitmap
	nextSeq   uint64
	retainer  InstanceRetainer
	destroyed bool
}

// NewSubsystem constructs a subsystem directly, bypassing the
// reference-counted GetRef/PutRef lifecycle. Most callers should use
// GetRef instead; NewSubsystem exists for tests and for embedding in a
// larger retainer-managed singleton.
func NewSubsystem(retainer InstanceRetainer) *Subsystem {
	return NewSubsystemWithCapacity(fortranHandleMax, retainer)
}

// NewSubsystemWithCapacity constructs a subsystem whose key bitmap is
// bounded at maxKeys instead of the platform's full Fortran handle
// range. Production callers should use NewSubsystem or GetRef; this
// entry point exists so tests can exercise key-bitmap exhaustion
// without allocating and scanning a million-bit bitmap.
func NewSubsystemWithCapacity(maxKeys int, retainer InstanceRetainer) *Subsystem {
	ensureProbed()
	s := &Subsystem{
		keyvals:  make(map[int]*KeyvalDescriptor),
		bitmap:   keybitmap.New(maxKeys),
		retainer: retainer,
		refs:     1,
	}
	for i := 0; i <= ModelKey; i++ {
		_ = s.bitmap.Set(i)
	}
	return s
}

// GetRef constructs a fresh subsystem. Unlike the process-wide MPI
// engine this was modeled on, which keeps exactly one lazily
// constructed global singleton, this package leaves singleton
// management to the caller so that
// tests can run many independent subsystems in parallel; GetRef simply
// returns a new subsystem with one outstanding reference.
func GetRef(retainer InstanceRetainer) *Subsystem {
	return NewSubsystem(retainer)
}

// Retain adds one reference to the subsystem.
func (s *Subsystem) Retain() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refs++
}

// PutRef releases one reference. On the last release it tears down the
// registry and key bitmap; predefined-key teardown is the caller's
// responsibility (delete any predefined attributes via DeleteAll
// before the last PutRef, the way the original engine's
// ompi_attr_free_predefined does for its own predefined keys).
func (s *Subsystem) PutRef() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refs--
	if s.refs > 0 {
		return
	}
	s.keyvals = nil
	s.bitmap = nil
	s.destroyed = true
}

// Destroyed reports whether the subsystem's last reference has been
// released.
func (s *Subsystem) Destroyed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.destroyed
}

func (s *Subsystem) retain() {
	if s.retainer != nil {
		s.retainer.Retain()
	}
}

func (s *Subsystem) release() {
	if s.retainer != nil {
		s.retainer.Release()
	}
}
