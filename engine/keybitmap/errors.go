package keybitmap

import "errors"

var (
	// ErrExhausted indicates every bit up to the bitmap's maximum bound
	// is already allocated.
	ErrExhausted = errors.New("keybitmap: exhausted")

	// ErrOutOfRange indicates a bit index outside [0, max) was
	// requested.
	ErrOutOfRange = errors.New("keybitmap: index out of range")

	// ErrAlreadyClear indicates an attempt to clear a bit that was not
	// set.
	ErrAlreadyClear = errors.New("keybitmap: bit already clear")
)
