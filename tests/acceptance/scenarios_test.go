// Package acceptance exercises the attribute engine end to end against
// the scenarios and round-trip laws it is expected to satisfy,
// importing it the same way any other consumer would — through its
// public API only.
package acceptance

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/attrkit/attrkit/engine"
)

type fakeHost struct {
	handle int
	kind   engine.HostKind
}

func (h *fakeHost) BackHandle() int       { return h.handle }
func (h *fakeHost) Kind() engine.HostKind { return h.kind }

func TestScenario_PointerIdentity(t *testing.T) {
	s := engine.NewSubsystem(nil)
	key, err := s.CreateKeyval(engine.Communicator, nil, nil, nil, nil)
	require.NoError(t, err)

	attrs := engine.NewAttributeMap()
	host := &fakeHost{handle: 1, kind: engine.Communicator}
	require.NoError(t, s.Set(engine.Communicator, host, attrs, key, engine.NewPtrCell(0xDEADBEEFCAFEBABE), false))

	cell, found, err := s.Get(key, attrs)
	require.NoError(t, err)
	require.True(t, found)

	assert.Equal(t, engine.Ptr(0xDEADBEEFCAFEBABE), cell.ReadPtr())
	// Aint and Fint are signed, so compare their bit patterns.
	assert.Equal(t, uint64(0xDEADBEEFCAFEBABE), uint64(cell.ReadAint()))
	assert.Equal(t, uint32(0xCAFEBABE), uint32(cell.ReadFint()))
}

func TestScenario_FintWritePtrRead(t *testing.T) {
	s := engine.NewSubsystem(nil)
	key, err := s.CreateKeyval(engine.Communicator, nil, nil, nil, nil)
	require.NoError(t, err)

	attrs := engine.NewAttributeMap()
	host := &fakeHost{handle: 1, kind: engine.Communicator}
	require.NoError(t, s.Set(engine.Communicator, host, attrs, key, engine.NewFintCell(7), false))

	cell, found, err := s.Get(key, attrs)
	require.NoError(t, err)
	require.True(t, found)

	assert.Equal(t, engine.Aint(7), cell.ReadAint())
	assert.Equal(t, engine.Fint(7), cell.ReadFint())
	assert.NotZero(t, cell.ReadPtr(), "ptr read must be a valid address into the cell")
}

func TestScenario_AintWriteFintReadTruncates(t *testing.T) {
	s := engine.NewSubsystem(nil)
	key, err := s.CreateKeyval(engine.Communicator, nil, nil, nil, nil)
	require.NoError(t, err)

	attrs := engine.NewAttributeMap()
	host := &fakeHost{handle: 1, kind: engine.Communicator}
	require.NoError(t, s.Set(engine.Communicator, host, attrs, key, engine.NewAintCell(1<<40), false))

	cell, found, err := s.Get(key, attrs)
	require.NoError(t, err)
	require.True(t, found)

	assert.Equal(t, engine.Fint(0), cell.ReadFint())
	assert.Equal(t, engine.Aint(1<<40), cell.ReadAint())
}

func TestScenario_DestructionOrder(t *testing.T) {
	s := engine.NewSubsystem(nil)
	var order []string
	makeKeyval := func(name string) int {
		k, err := s.CreateKeyval(engine.Communicator, nil, func(h engine.Host, key int, extra any, v engine.Ptr) error {
			order = append(order, name)
			return nil
		}, nil, nil)
		require.NoError(t, err)
		return k
	}

	a, b, c := makeKeyval("A"), makeKeyval("B"), makeKeyval("C")
	attrs := engine.NewAttributeMap()
	host := &fakeHost{handle: 1, kind: engine.Communicator}
	require.NoError(t, s.Set(engine.Communicator, host, attrs, a, engine.NewPtrCell(1), false))
	require.NoError(t, s.Set(engine.Communicator, host, attrs, b, engine.NewPtrCell(2), false))
	require.NoError(t, s.Set(engine.Communicator, host, attrs, c, engine.NewPtrCell(3), false))

	require.NoError(t, s.DeleteAll(engine.Communicator, host, attrs))
	assert.Equal(t, []string{"C", "B", "A"}, order)
}

func TestScenario_KeyvalLifetime(t *testing.T) {
	s := engine.NewSubsystem(nil)
	var deleteCallbackRan bool
	key, err := s.CreateKeyval(engine.Communicator, nil, func(h engine.Host, k int, extra any, v engine.Ptr) error {
		deleteCallbackRan = true
		return nil
	}, nil, nil)
	require.NoError(t, err)

	host := &fakeHost{handle: 1, kind: engine.Communicator}
	attrs := engine.NewAttributeMap()
	require.NoError(t, s.Set(engine.Communicator, host, attrs, key, engine.NewPtrCell(42), false))

	k := key
	require.NoError(t, s.FreeKeyval(engine.Communicator, &k, false))
	assert.Equal(t, engine.InvalidKey, k)

	// The caller's own key variable is now the invalid sentinel; using
	// it to Get is rejected, exactly as looking up any unregistered key
	// would be.
	_, _, err = s.Get(k, attrs)
	assert.ErrorIs(t, err, engine.ErrInvalidKey)

	// But the descriptor the cell references is still alive: deleting
	// the cell via the original key value still runs its callback.
	require.NoError(t, s.Delete(engine.Communicator, host, attrs, key, false))
	assert.True(t, deleteCallbackRan)
}

func TestScenario_PredefinedProtection(t *testing.T) {
	s := engine.NewSubsystem(nil)
	require.NoError(t, s.CreatePredefinedKeyval(engine.Communicator, engine.TagUBKey, engine.Callbacks{}))

	k := engine.TagUBKey
	err := s.FreeKeyval(engine.Communicator, &k, false)
	assert.ErrorIs(t, err, engine.ErrBadParam)

	require.NoError(t, s.FreeKeyval(engine.Communicator, &k, true))
}

func TestRoundTrip_CopyAllIdentityPreservesKeysAndValues(t *testing.T) {
	s := engine.NewSubsystem(nil)
	key, err := s.CreateKeyval(engine.Communicator, func(oldH, newH engine.Host, k int, extra any, in engine.Ptr) (engine.Ptr, bool, error) {
		return in, true, nil
	}, nil, nil, nil)
	require.NoError(t, err)

	oldAttrs, newAttrs := engine.NewAttributeMap(), engine.NewAttributeMap()
	oldHost := &fakeHost{handle: 1, kind: engine.Communicator}
	newHost := &fakeHost{handle: 2, kind: engine.Communicator}
	require.NoError(t, s.Set(engine.Communicator, oldHost, oldAttrs, key, engine.NewPtrCell(123), false))

	require.NoError(t, s.CopyAll(engine.Communicator, oldHost, newHost, oldAttrs, newAttrs))

	cell, found, err := s.Get(key, newAttrs)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, engine.Ptr(123), cell.ReadPtr())
}

func TestBoundary_BitmapExhaustionAndReuse(t *testing.T) {
	// A small capacity keeps this test fast; NewSubsystemWithCapacity
	// exists exactly for this purpose (see its doc comment).
	s := engine.NewSubsystemWithCapacity(engine.ModelKey+5, nil)

	var keys []int
	for {
		key, err := s.CreateKeyval(engine.Datatype, nil, nil, nil, nil)
		if err != nil {
			assert.ErrorIs(t, err, engine.ErrOutOfResource)
			break
		}
		keys = append(keys, key)
	}
	require.NotEmpty(t, keys)

	k := keys[0]
	require.NoError(t, s.FreeKeyval(engine.Datatype, &k, false))

	_, err := s.CreateKeyval(engine.Datatype, nil, nil, nil, nil)
	assert.NoError(t, err)
}

func TestBoundary_ReentrantDeleteOnAnotherAttribute(t *testing.T) {
	s := engine.NewSubsystem(nil)
	attrs := engine.NewAttributeMap()
	host := &fakeHost{handle: 1, kind: engine.Communicator}

	var keyB int
	keyA, err := s.CreateKeyval(engine.Communicator, nil, func(h engine.Host, k int, extra any, v engine.Ptr) error {
		return s.Delete(engine.Communicator, h, attrs, keyB, false)
	}, nil, nil)
	require.NoError(t, err)
	keyB, err = s.CreateKeyval(engine.Communicator, nil, nil, nil, nil)
	require.NoError(t, err)

	require.NoError(t, s.Set(engine.Communicator, host, attrs, keyA, engine.NewPtrCell(1), false))
	require.NoError(t, s.Set(engine.Communicator, host, attrs, keyB, engine.NewPtrCell(2), false))

	require.NoError(t, s.Delete(engine.Communicator, host, attrs, keyA, false))
	assert.Equal(t, 0, attrs.Len())
}

func TestBoundary_FailingDeleteCallbackLeavesStateUnchanged(t *testing.T) {
	s := engine.NewSubsystem(nil)
	sentinel := errors.New("refuse to delete")
	key, err := s.CreateKeyval(engine.Communicator, nil, func(h engine.Host, k int, extra any, v engine.Ptr) error {
		return sentinel
	}, nil, nil)
	require.NoError(t, err)

	attrs := engine.NewAttributeMap()
	host := &fakeHost{handle: 1, kind: engine.Communicator}
	require.NoError(t, s.Set(engine.Communicator, host, attrs, key, engine.NewPtrCell(9), false))

	err = s.Delete(engine.Communicator, host, attrs, key, false)
	assert.ErrorIs(t, err, sentinel)

	cell, found, getErr := s.Get(key, attrs)
	require.NoError(t, getErr)
	require.True(t, found)
	assert.Equal(t, engine.Ptr(9), cell.ReadPtr())
}
