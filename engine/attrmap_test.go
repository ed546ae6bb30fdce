package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAttributeMap_ZeroValueIsAbsent(t *testing.T) {
	var m AttributeMap
	assert.Equal(t, 0, m.Len())
	cell, ok := m.lookup(1)
	assert.False(t, ok)
	assert.Nil(t, cell)
}

func TestAttributeMap_NilReceiverIsAbsent(t *testing.T) {
	var m *AttributeMap
	assert.Equal(t, 0, m.Len())
	cell, ok := m.lookup(1)
	assert.False(t, ok)
	assert.Nil(t, cell)
	assert.Nil(t, m.snapshot())
}

func TestAttributeMap_InsertThenRemove(t *testing.T) {
	m := NewAttributeMap()
	cell := NewPtrCell(1)
	cell.key = 7
	m.insert(cell)
	assert.Equal(t, 1, m.Len())

	got, ok := m.lookup(7)
	assert.True(t, ok)
	assert.Same(t, cell, got)

	m.remove(7)
	assert.Equal(t, 0, m.Len())
}
