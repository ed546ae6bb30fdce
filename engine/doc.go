// Package engine implements a process-wide attribute caching engine for
// handle-like runtime objects (communicators, datatypes, windows, and
// process instances).
//
// # Overview
//
// The engine gives every host object an optional, lazily-allocated
// attribute map from an integer key to a stored value. Keys are issued
// from a single shared namespace (see keybitmap.Bitmap) and described by
// a KeyvalDescriptor registered once per process via CreateKeyval. Each
// attribute value is stored in one of four representations — a native
// pointer, a native integer, a narrow Fortran-style integer, or a wide
// Fortran-style address integer — and can be read back translated into
// any of the others; see ValueCell and the Read* methods for the exact
// translation rules.
//
// # Concurrency
//
// The engine is not designed for performance: every operation takes a
// single process-wide mutex on entry and releases it before invoking any
// user-supplied copy or delete callback, re-acquiring it once the
// callback returns. This makes the engine safe for a callback to
// reenter any other engine operation, including freeing the very keyval
// whose callback is running.
//
// # Lifecycle
//
// A Subsystem is brought up with GetRef and torn down with PutRef once
// its reference count reaches zero; see Subsystem for details on
// predefined-key reservation and the platform probe used to translate
// between value representations.
package engine
