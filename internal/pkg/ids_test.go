package pkg

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateNewSessionID(t *testing.T) {
	id := GenerateNewSessionID()

	_, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.NotEqual(t, id, GenerateNewSessionID())
}

func TestGenerateGameID(t *testing.T) {
	id := GenerateGameID()

	assert.Len(t, id, gameIDLength)
	assert.NotContains(t, id, "-")
}
