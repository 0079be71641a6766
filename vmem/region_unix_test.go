//go:build unix

package vmem

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAcquireRelease_RoundTrip(t *testing.T) {
	const size = 1 << 16

	ptr, err := Acquire(size)
	require.NoError(t, err)
	require.NotNil(t, ptr)

	b := unsafe.Slice((*byte)(ptr), size)
	b[0] = 0xAB
	b[size-1] = 0xCD
	assert.Equal(t, byte(0xAB), b[0])

	assert.NoError(t, Release(ptr, size))
}

func TestAcquire_ZerosFreshMemory(t *testing.T) {
	const size = 1 << 13

	ptr, err := Acquire(size)
	require.NoError(t, err)
	defer Release(ptr, size)

	b := unsafe.Slice((*byte)(ptr), size)
	for _, v := range b {
		require.Zero(t, v)
	}
}
