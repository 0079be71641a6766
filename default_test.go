package allocators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultArena_LazyAndShared(t *testing.T) {
	defer ReleaseDefaultArena()

	a := DefaultArena()
	b := DefaultArena()
	require.NotNil(t, a)
	assert.True(t, a.IsEqual(b), "DefaultArena must return the same shared instance")
}

func TestDefaultArena_ReleaseAllowsRebuild(t *testing.T) {
	defer ReleaseDefaultArena()

	a := DefaultArena()
	ReleaseDefaultArena()
	b := DefaultArena()

	assert.False(t, a.IsEqual(b), "a fresh default arena must be built after a release")
}
