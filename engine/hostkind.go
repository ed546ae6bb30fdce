package engine

// HostKind tags which family of host object a keyval or attribute map
// belongs to. The engine shares a single key namespace across all
// kinds. Set, Delete and FreeKeyval reject a keyval registered for a
// different kind than the one they are given; Get does not check kind.
type HostKind int

const (
	// Communicator identifies attributes attached to a communicator.
	Communicator HostKind = iota
	// Datatype identifies attributes attached to a datatype.
	Datatype
	// Window identifies attributes attached to a one-sided window.
	Window
	// Instance identifies attributes attached to a process instance.
	// Instance attribute maps cannot be duplicated by CopyAll.
	Instance
)

// String renders the host kind for diagnostics and CLI output.
func (k HostKind) String() string {
	switch k {
	case Communicator:
		return "communicator"
	case Datatype:
		return "datatype"
	case Window:
		return "window"
	case Instance:
		return "instance"
	default:
		return "unknown"
	}
}

// Host is the minimal surface the engine requires of a host object: a
// stable identity for map ownership and an integer handle readable by
// Fortran-convention callbacks. Communicators, datatypes, windows, and
// process instances are all external collaborators that satisfy this
// interface; the engine never constructs or destroys one.
type Host interface {
	// BackHandle returns the integer handle passed to Fortran-style
	// callbacks in place of a native pointer.
	BackHandle() int
	// Kind returns which family of host object this is.
	Kind() HostKind
}
