package engine

// fakeHost is a minimal Host implementation shared by this package's
// tests: a communicator, datatype, window, or instance stand-in with a
// caller-assigned back-handle.
type fakeHost struct {
	handle int
	kind   HostKind
}

func (h *fakeHost) BackHandle() int { return h.handle }
func (h *fakeHost) Kind() HostKind  { return h.kind }

func newFakeHost(kind HostKind, handle int) *fakeHost {
	return &fakeHost{handle: handle, kind: kind}
}

// fakeRetainer counts Retain/Release calls so tests can assert the
// create/free balance without a real process-instance collaborator.
type fakeRetainer struct {
	retains  int
	releases int
}

func (r *fakeRetainer) Retain()  { r.retains++ }
func (r *fakeRetainer) Release() { r.releases++ }
