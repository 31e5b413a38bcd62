package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVertex(t *testing.T) {
	vertex := NewVertex("Person")

	assert.Equal(t, "Person", vertex.Label)
	require.NotNil(t, vertex.Element)
	assert.Equal(t, 0, vertex.Len())

	_, exists := vertex.GetId()
	assert.False(t, exists)
}

func TestVertexProperties(t *testing.T) {
	vertex := NewVertex("Person")

	require.NoError(t, vertex.SetProperty("name", String("John Doe")))
	value, exists := vertex.GetProperty("name")
	require.True(t, exists)
	assert.Equal(t, String("John Doe"), value)

	_, exists = vertex.GetProperty("age")
	assert.False(t, exists)

	require.NoError(t, vertex.SetProperty("name", String("Jane Doe")))
	value, _ = vertex.GetProperty("name")
	assert.Equal(t, String("Jane Doe"), value)

	require.NoError(t, vertex.RemoveProperty("name"))
	_, exists = vertex.GetProperty("name")
	assert.False(t, exists)

	// The label is not a property
	assert.False(t, vertex.GetPropertyKeys().Contains("Label"))
}

func TestNewVertexWithID(t *testing.T) {
	vertex := NewVertexWithID(Int(123), "Person")

	id, exists := vertex.GetId()
	require.True(t, exists)
	assert.Equal(t, Int(123), id)
	assert.ErrorIs(t, vertex.SetProperty(IDKey, Int(124)), ErrIdentifierLocked)
}
