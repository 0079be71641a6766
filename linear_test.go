package allocators

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinearBuffer_AllocateBumpsCursor(t *testing.T) {
	buf := make([]byte, 64)
	lb := NewLinearBuffer(unsafe.Pointer(&buf[0]), uintptr(len(buf)))

	p1, err := lb.Allocate(8, 8)
	require.NoError(t, err)
	require.NotNil(t, p1)

	p2, err := lb.Allocate(8, 8)
	require.NoError(t, err)
	assert.Equal(t, uintptr(8), uintptr(p2)-uintptr(p1))
}

func TestLinearBuffer_AllocateRespectsAlignment(t *testing.T) {
	buf := make([]byte, 64)
	lb := NewLinearBuffer(unsafe.Pointer(&buf[0]), uintptr(len(buf)))

	_, err := lb.Allocate(3, 1)
	require.NoError(t, err)

	p, err := lb.Allocate(8, 8)
	require.NoError(t, err)
	assert.Equal(t, uintptr(0), uintptr(p)%8)
}

func TestLinearBuffer_AllocateFailsWhenExhausted(t *testing.T) {
	buf := make([]byte, 8)
	lb := NewLinearBuffer(unsafe.Pointer(&buf[0]), uintptr(len(buf)))

	_, err := lb.Allocate(8, 1)
	require.NoError(t, err)

	_, err = lb.Allocate(1, 1)
	assert.ErrorIs(t, err, ErrOutOfMemory)
}

func TestLinearBuffer_DeallocateIsNoOp(t *testing.T) {
	buf := make([]byte, 16)
	lb := NewLinearBuffer(unsafe.Pointer(&buf[0]), uintptr(len(buf)))

	p, err := lb.Allocate(8, 1)
	require.NoError(t, err)

	lb.Deallocate(p, 8, 1)
	_, err = lb.Allocate(16, 1)
	assert.ErrorIs(t, err, ErrOutOfMemory, "deallocate must not reclaim any space")
}

func TestLinearBuffer_ResetRewindsCursor(t *testing.T) {
	buf := make([]byte, 16)
	lb := NewLinearBuffer(unsafe.Pointer(&buf[0]), uintptr(len(buf)))

	_, err := lb.Allocate(16, 1)
	require.NoError(t, err)

	lb.Reset()
	_, err = lb.Allocate(16, 1)
	assert.NoError(t, err)
}

func TestLinearBuffer_ClearZeroesAndResets(t *testing.T) {
	buf := make([]byte, 16)
	lb := NewLinearBuffer(unsafe.Pointer(&buf[0]), uintptr(len(buf)))

	p, err := lb.Allocate(4, 1)
	require.NoError(t, err)
	*(*byte)(p) = 0xFF

	lb.Clear()
	assert.Equal(t, byte(0), buf[0])

	_, err = lb.Allocate(16, 1)
	assert.NoError(t, err)
}

func TestLinearBuffer_IsEqual(t *testing.T) {
	buf := make([]byte, 16)
	a := NewLinearBuffer(unsafe.Pointer(&buf[0]), uintptr(len(buf)))
	b := NewLinearBuffer(unsafe.Pointer(&buf[0]), uintptr(len(buf)))

	assert.True(t, a.IsEqual(b))

	_, err := a.Allocate(4, 1)
	require.NoError(t, err)
	assert.False(t, a.IsEqual(b), "cursor position is part of the equality comparison")
}

func TestLinearBuffer_ChangeBufferRejectsTruncation(t *testing.T) {
	buf := make([]byte, 16)
	lb := NewLinearBuffer(unsafe.Pointer(&buf[0]), uintptr(len(buf)))

	_, err := lb.Allocate(16, 1)
	require.NoError(t, err)

	small := make([]byte, 4)
	assert.Panics(t, func() {
		lb.changeBuffer(unsafe.Pointer(&small[0]), uintptr(len(small)))
	})
}

func TestNewLinearBuffer_PanicsOnInvalidArgs(t *testing.T) {
	buf := make([]byte, 8)
	assert.Panics(t, func() { NewLinearBuffer(nil, 8) })
	assert.Panics(t, func() { NewLinearBuffer(unsafe.Pointer(&buf[0]), 0) })
}
