package engine

import "fmt"

// InvalidKey is the sentinel a caller's key variable is set to by
// FreeKeyval, matching the MPI convention that a freed keyval handle
// becomes MPI_KEYVAL_INVALID.
const InvalidKey = -1

// KeyvalDescriptor is the process-wide registry entry describing one
// key: which host kind it applies to, its calling convention and
// callbacks, and how many live referrers (ValueCells plus the one
// implicit referrer held by the key itself until FreeKeyval) keep it
// alive. A descriptor stays alive until it has been freed and no
// ValueCell anywhere references its key; a cell keeps it alive even
// after the user has logically freed it.
type KeyvalDescriptor struct {
	key      int
	hostKind HostKind
	flags    Flags

	nativeCopy   NativeCopyFunc
	nativeDelete NativeDeleteFunc

	narrowCopy   FortranNarrowCopyFunc
	narrowDelete FortranNarrowDeleteFunc

	wideCopy   FortranWideCopyFunc
	wideDelete FortranWideDeleteFunc

	extraState    ExtraState
	bindingsExtra BindingsExtra

	refcount int
}

// Key returns the key this descriptor is registered under.
func (d *KeyvalDescriptor) Key() int { return d.key }

// HostKind returns the host kind this descriptor was registered for.
func (d *KeyvalDescriptor) HostKind() HostKind { return d.hostKind }

// Flags returns the descriptor's registration flags.
func (d *KeyvalDescriptor) Flags() Flags { return d.flags }

// Predefined reports whether this descriptor is protected from
// user-initiated free.
func (d *KeyvalDescriptor) Predefined() bool { return d.flags&FlagPredefined != 0 }

// Refcount returns the descriptor's current strong-reference count,
// for diagnostics.
func (d *KeyvalDescriptor) Refcount() int { return d.refcount }

func (s *Subsystem) createKeyvalImpl(hostKind HostKind, cb Callbacks, predefined bool, presetKey int) (int, error) {
	// Pin the runtime instance for the lifetime of this keyval before
	// taking the registry lock, matching the original engine's
	// retain-before-register ordering; on any failure below we release
	// it again before returning.
	s.retain()

	key, err := s.registerKeyvalLocked(hostKind, cb, predefined, presetKey)
	if err != nil {
		s.release()
		return 0, err
	}
	return key, nil
}

func (s *Subsystem) registerKeyvalLocked(hostKind HostKind, cb Callbacks, predefined bool, presetKey int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.destroyed {
		return 0, fmt.Errorf("%w: subsystem has been destroyed", ErrBadParam)
	}

	var key int
	if predefined {
		if presetKey < 0 || presetKey >= s.bitmap.Max() || !s.bitmap.IsSet(presetKey) {
			return 0, fmt.Errorf("%w: key %d is not in the reserved range", ErrBadParam, presetKey)
		}
		key = presetKey
	} else {
		allocated, err := s.bitmap.Allocate()
		if err != nil {
			return 0, fmt.Errorf("%w: %v", ErrOutOfResource, err)
		}
		key = allocated
	}

	if _, exists := s.keyvals[key]; exists {
		if !predefined {
			_ = s.bitmap.Clear(key)
		}
		return 0, fmt.Errorf("%w: key %d already registered", ErrOutOfResource, key)
	}

	flags := cb.Flags
	if predefined {
		flags |= FlagPredefined
	}

	desc := &KeyvalDescriptor{
		key:           key,
		hostKind:      hostKind,
		flags:         flags,
		nativeCopy:    cb.NativeCopy,
		nativeDelete:  cb.NativeDelete,
		narrowCopy:    cb.FortranNarrowCopy,
		narrowDelete:  cb.FortranNarrowDelete,
		wideCopy:      cb.FortranWideCopy,
		wideDelete:    cb.FortranWideDelete,
		extraState:    cb.ExtraState,
		bindingsExtra: cb.BindingsExtra,
		refcount:      1,
	}
	s.keyvals[key] = desc
	return key, nil
}

// CreateKeyval registers a native-convention keyval for the given host
// kind and returns its freshly allocated key.
func (s *Subsystem) CreateKeyval(hostKind HostKind, copyCB NativeCopyFunc, deleteCB NativeDeleteFunc, extraState any, bindingsExtra BindingsExtra) (int, error) {
	return s.createKeyvalImpl(hostKind, Callbacks{
		NativeCopy:    copyCB,
		NativeDelete:  deleteCB,
		ExtraState:    NativeExtraState(extraState),
		BindingsExtra: bindingsExtra,
	}, false, 0)
}

// CreateKeyvalFint registers a Fortran narrow-convention keyval.
func (s *Subsystem) CreateKeyvalFint(hostKind HostKind, copyCB FortranNarrowCopyFunc, deleteCB FortranNarrowDeleteFunc, extraState Fint, bindingsExtra BindingsExtra) (int, error) {
	return s.createKeyvalImpl(hostKind, Callbacks{
		Flags:               FlagFortran | FlagFortranNarrow,
		FortranNarrowCopy:   copyCB,
		FortranNarrowDelete: deleteCB,
		ExtraState:          FintExtraState(extraState),
		BindingsExtra:       bindingsExtra,
	}, false, 0)
}

// CreateKeyvalAint registers a Fortran wide-convention keyval.
func (s *Subsystem) CreateKeyvalAint(hostKind HostKind, copyCB FortranWideCopyFunc, deleteCB FortranWideDeleteFunc, extraState Aint, bindingsExtra BindingsExtra) (int, error) {
	return s.createKeyvalImpl(hostKind, Callbacks{
		Flags:             FlagFortran,
		FortranWideCopy:   copyCB,
		FortranWideDelete: deleteCB,
		ExtraState:        AintExtraState(extraState),
		BindingsExtra:     bindingsExtra,
	}, false, 0)
}

// CreatePredefinedKeyval registers a keyval at a caller-supplied key
// that must already be in the reserved predefined range (see
// reserved.go). Used once at startup to install the runtime's own
// predefined attributes (TAG_UB, HOST, and so on).
func (s *Subsystem) CreatePredefinedKeyval(hostKind HostKind, key int, cb Callbacks) error {
	_, err := s.createKeyvalImpl(hostKind, cb, true, key)
	return err
}

// FreeKeyval logically frees a keyval: it validates host kind and
// predefined protection, sets *key to InvalidKey, drops one strong
// reference on the descriptor, and releases the instance retain taken
// by the matching create call. Physical destruction of the descriptor
// is deferred until the last ValueCell referencing it is removed.
func (s *Subsystem) FreeKeyval(hostKind HostKind, key *int, allowPredefined bool) error {
	if key == nil {
		return fmt.Errorf("%w: nil key", ErrBadParam)
	}

	s.mu.Lock()
	desc, ok := s.keyvals[*key]
	if !ok || desc.hostKind != hostKind {
		s.mu.Unlock()
		return fmt.Errorf("%w: no such keyval %d for %s", ErrBadParam, *key, hostKind)
	}
	if desc.Predefined() && !allowPredefined {
		s.mu.Unlock()
		return fmt.Errorf("%w: keyval %d is predefined", ErrBadParam, *key)
	}

	*key = InvalidKey
	s.dropDescriptorRefLocked(desc)
	s.mu.Unlock()

	s.release()
	return nil
}

// dropDescriptorRefLocked decrements a descriptor's strong-reference
// count and, if it reaches zero, physically destroys it: releases its
// bindings_extra resource, removes it from the registry, and (for
// non-predefined keys) returns its bit to the key bitmap. Must be
// called with s.mu held.
func (s *Subsystem) dropDescriptorRefLocked(desc *KeyvalDescriptor) {
	desc.refcount--
	if desc.refcount > 0 {
		return
	}
	delete(s.keyvals, desc.key)
	if desc.bindingsExtra != nil {
		_ = desc.bindingsExtra.Close()
	}
	if !desc.Predefined() {
		_ = s.bitmap.Clear(desc.key)
	}
}

// lookupLocked returns the descriptor registered under key, if any.
// Callers that care about host kind compare it themselves.
func (s *Subsystem) lookupLocked(key int) (*KeyvalDescriptor, bool) {
	d, ok := s.keyvals[key]
	return d, ok
}
