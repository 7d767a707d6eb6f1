package uid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateGameID(t *testing.T) {
	a, b := GenerateGameID(), GenerateGameID()
	assert.NotEqual(t, a, b)
	assert.True(t, IsGameID(a))
}

func TestIsGameID(t *testing.T) {
	assert.False(t, IsGameID(""))
	assert.False(t, IsGameID("missing"))
	assert.False(t, IsGameID("../../etc/passwd"))
}
