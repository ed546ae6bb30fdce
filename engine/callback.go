package engine

// Flags is a bitset of properties a keyval was registered with.
type Flags uint8

const (
	// FlagPredefined marks a keyval as installed by the runtime at
	// init time; it is protected from user-initiated free unless the
	// caller explicitly overrides that protection.
	FlagPredefined Flags = 1 << iota
	// FlagFortran marks a keyval's callbacks as using a Fortran
	// calling convention rather than the native one. Combined with
	// FlagFortranNarrow it selects narrow (Fint) vs wide (Aint)
	// argument sizing.
	FlagFortran
	// FlagFortranNarrow implies FlagFortran and selects the narrow
	// (Fint-sized) Fortran calling convention; without it, a keyval
	// with FlagFortran set uses the wide (Aint-sized) convention.
	FlagFortranNarrow
)

// convention derives which of the three callback calling conventions a
// keyval's flags select.
type convention int

const (
	conventionNative convention = iota
	conventionFortranNarrow
	conventionFortranWide
)

func (f Flags) convention() convention {
	switch {
	case f&FlagFortran == 0:
		return conventionNative
	case f&FlagFortranNarrow != 0:
		return conventionFortranNarrow
	default:
		return conventionFortranWide
	}
}

// Three callback calling conventions, corresponding to the three
// combinations of flags above. A KeyvalDescriptor carries exactly one
// populated (copy, delete) pair, selected by its flags; the dispatcher
// is a switch over that selection rather than a true tagged union,
// since Go has no variant types, but it is used the same way: at most
// one branch is ever live for a given descriptor.

// NativeCopyFunc is the native-convention copy callback: it receives
// live Go values (the translated Ptr the value was stored as, and the
// two live host objects) and returns the copied value, whether it
// should be attached to the new host at all, or an error that aborts
// the copy.
type NativeCopyFunc func(oldHost, newHost Host, key int, extraState any, in Ptr) (out Ptr, attach bool, err error)

// NativeDeleteFunc is the native-convention delete callback.
type NativeDeleteFunc func(host Host, key int, extraState any, value Ptr) error

// FortranNarrowCopyFunc is the Fortran narrow-convention copy callback:
// arguments are passed by back-handle and Fint-sized value.
type FortranNarrowCopyFunc func(oldBackHandle, newBackHandle, key int, extraState, in Fint) (out Fint, attach bool, err error)

// FortranNarrowDeleteFunc is the Fortran narrow-convention delete
// callback.
type FortranNarrowDeleteFunc func(backHandle, key int, extraState, value Fint) error

// FortranWideCopyFunc is the Fortran wide-convention copy callback:
// arguments are passed by back-handle and Aint-sized value.
type FortranWideCopyFunc func(oldBackHandle, newBackHandle, key int, extraState, in Aint) (out Aint, attach bool, err error)

// FortranWideDeleteFunc is the Fortran wide-convention delete callback.
type FortranWideDeleteFunc func(backHandle, key int, extraState, value Aint) error

// ExtraState is the opaque per-keyval state passed back to its
// callbacks, interpreted according to the keyval's calling convention.
// Exactly one of its three representations is meaningful for any given
// descriptor, matching the convention its callbacks were registered
// with.
type ExtraState struct {
	native any
	fint   Fint
	aint   Aint
}

// NativeExtraState wraps an arbitrary Go value as native-convention
// extra state.
func NativeExtraState(v any) ExtraState { return ExtraState{native: v} }

// FintExtraState wraps a narrow Fortran integer as Fortran
// narrow-convention extra state.
func FintExtraState(v Fint) ExtraState { return ExtraState{fint: v} }

// AintExtraState wraps a wide Fortran address integer as Fortran
// wide-convention extra state.
func AintExtraState(v Aint) ExtraState { return ExtraState{aint: v} }

// BindingsExtra is an optional owned resource attached to a keyval at
// creation time and released when the descriptor is physically
// destroyed — the Go analogue of the original engine's
// bindings_extra_state pointer, which binding layers use to free
// language-specific wrapper state.
type BindingsExtra interface {
	Close() error
}

// Callbacks groups one convention's copy and delete callbacks, plus the
// flags that select the convention, as passed to CreatePredefinedKeyval. Exactly
// one of the three (copy, delete) pairs should be populated; which one
// is read is determined by Flags.
type Callbacks struct {
	Flags Flags

	NativeCopy   NativeCopyFunc
	NativeDelete NativeDeleteFunc

	FortranNarrowCopy   FortranNarrowCopyFunc
	FortranNarrowDelete FortranNarrowDeleteFunc

	FortranWideCopy   FortranWideCopyFunc
	FortranWideDelete FortranWideDeleteFunc

	ExtraState    ExtraState
	BindingsExtra BindingsExtra
}
