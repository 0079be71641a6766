package allocators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashBytes(t *testing.T) {
	h1 := hashBytes([]byte("a"))
	h2 := hashBytes([]byte("ab"))
	assert.Greater(t, h1, uint64(0))
	assert.NotEqual(t, h1, h2)
}

func TestArenaSignatureDiffersWithConfig(t *testing.T) {
	a, err := NewArena(1, nil)
	assert.NoError(t, err)
	defer a.Release()

	b, err := NewArena(1, &Config{FreeListSize: 64})
	assert.NoError(t, err)
	defer b.Release()

	assert.NotEqual(t, a.Signature(), b.Signature())
}
