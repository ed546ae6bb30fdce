package engine

import "errors"

// Status errors surfaced by the engine. Callers should compare with
// errors.Is; the engine never logs or retries, it only returns these
// (or a user callback's own error, unchanged).
var (
	// ErrOutOfResource indicates the key bitmap is exhausted or an
	// allocation failed.
	ErrOutOfResource = errors.New("engine: out of resource")

	// ErrBadParam indicates a contract violation: wrong host kind, a
	// predefined keyval freed without override, or a missing keyval.
	ErrBadParam = errors.New("engine: bad parameter")

	// ErrArg indicates an argument is invalid for the requested
	// operation, such as CopyAll on an Instance host.
	ErrArg = errors.New("engine: invalid argument")

	// ErrIntern indicates an internal inconsistency was observed, such
	// as an attribute map entry whose keyval has disappeared from the
	// registry. Its presence always indicates a bug in the engine.
	ErrIntern = errors.New("engine: internal inconsistency")

	// ErrInvalidKey indicates Get was called with a key that has no
	// registered keyval. Kept distinct from ErrBadParam because an
	// unregistered key and a registered-but-disallowed one are different
	// failure modes for a caller to handle.
	ErrInvalidKey = errors.New("engine: invalid key")
)
