package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUIDGenerator_Generate(t *testing.T) {
	g := NewUUIDGenerator()

	first := g.Generate()
	second := g.Generate()

	require.NotEqual(t, first, second)

	parsed, err := uuid.Parse(first)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), parsed.Version())
}
