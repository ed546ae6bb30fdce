package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubsystem_PredefinedKeysPreReserved(t *testing.T) {
	s := NewSubsystem(nil)
	for i := 0; i <= ModelKey; i++ {
		assert.True(t, s.bitmap.IsSet(i), "reserved key %d should be pre-marked", i)
	}
}

func TestSubsystem_CreatePredefinedKeyval(t *testing.T) {
	s := NewSubsystem(nil)
	err := s.CreatePredefinedKeyval(Communicator, TagUBKey, Callbacks{})
	require.NoError(t, err)

	desc, ok := s.lookupLocked(TagUBKey)
	require.True(t, ok)
	assert.True(t, desc.Predefined())
}

func TestSubsystem_RetainRelease(t *testing.T) {
	s := NewSubsystem(nil)
	s.Retain()
	assert.Equal(t, 2, s.refs)
	s.PutRef()
	assert.False(t, s.Destroyed())
	s.PutRef()
	assert.True(t, s.Destroyed())
}

func TestSubsystem_PutRefTearsDownRegistry(t *testing.T) {
	s := NewSubsystem(nil)
	s.PutRef()
	assert.Nil(t, s.keyvals)
	assert.Nil(t, s.bitmap)
}
