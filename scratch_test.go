package allocators

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestScratchBuffer_FallsBackToUpstreamOnExhaustion(t *testing.T) {
	local := make([]byte, 8)
	upstreamBuf := make([]byte, 256)
	upstream := NewLinearBuffer(unsafe.Pointer(&upstreamBuf[0]), uintptr(len(upstreamBuf)))

	sb := NewScratchBuffer(unsafe.Pointer(&local[0]), uintptr(len(local)), upstream)

	_, err := sb.Allocate(8, 1)
	require.NoError(t, err)

	p, err := sb.Allocate(16, 1)
	require.NoError(t, err, "exhausted local buffer should fall back to upstream")
	require.NotNil(t, p)
}

func TestScratchBuffer_FallbackRequestSmallerThanExhaustedLocal(t *testing.T) {
	local := make([]byte, 32)
	upstreamBuf := make([]byte, 256)
	upstream := NewLinearBuffer(unsafe.Pointer(&upstreamBuf[0]), uintptr(len(upstreamBuf)))

	sb := NewScratchBuffer(unsafe.Pointer(&local[0]), uintptr(len(local)), upstream)

	_, err := sb.Allocate(32, 1)
	require.NoError(t, err)

	// The local buffer is now fully exhausted (count == 32). The next
	// request is much smaller than that stale count; rebinding must not
	// panic comparing the old count against the new, smaller buffer.
	p, err := sb.Allocate(4, 1)
	require.NoError(t, err)
	require.NotNil(t, p)
}

func TestScratchBuffer_NoUpstreamYieldsOutOfMemory(t *testing.T) {
	local := make([]byte, 8)
	sb := NewScratchBuffer(unsafe.Pointer(&local[0]), uintptr(len(local)), nil)

	_, err := sb.Allocate(8, 1)
	require.NoError(t, err)

	_, err = sb.Allocate(1, 1)
	require.ErrorIs(t, err, ErrOutOfMemory)
}

func TestScratchBuffer_FailingUpstreamYieldsOutOfMemory(t *testing.T) {
	local := make([]byte, 4)
	upstreamBuf := make([]byte, 1)
	upstream := NewLinearBuffer(unsafe.Pointer(&upstreamBuf[0]), uintptr(len(upstreamBuf)))

	sb := NewScratchBuffer(unsafe.Pointer(&local[0]), uintptr(len(local)), upstream)

	_, err := sb.Allocate(4, 1)
	require.NoError(t, err)

	_, err = sb.Allocate(4, 1)
	require.ErrorIs(t, err, ErrOutOfMemory)
}

func TestScratchBuffer_IsEqual(t *testing.T) {
	local := make([]byte, 8)
	upstreamBuf := make([]byte, 8)
	upstream := NewLinearBuffer(unsafe.Pointer(&upstreamBuf[0]), uintptr(len(upstreamBuf)))

	a := NewScratchBuffer(unsafe.Pointer(&local[0]), uintptr(len(local)), upstream)
	b := NewScratchBuffer(unsafe.Pointer(&local[0]), uintptr(len(local)), upstream)
	require.True(t, a.IsEqual(b))

	c := NewScratchBuffer(unsafe.Pointer(&local[0]), uintptr(len(local)), nil)
	require.False(t, a.IsEqual(c))
}
