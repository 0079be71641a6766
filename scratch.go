package allocators

import "unsafe"

// ScratchBuffer is a LinearBuffer that, once exhausted, requests a fresh
// buffer from an upstream Allocator and rebinds itself to it rather than
// failing outright.
//
// Exhaustion is a hand-off, not a failure: the replacement buffer must come
// from calling Allocate on upstream, never Deallocate — asking upstream to
// free something it never gave out would be nonsensical, and this
// implementation only ever allocates from it.
type ScratchBuffer struct {
	LinearBuffer
	upstream Allocator
}

// NewScratchBuffer binds a ScratchBuffer to buffer like NewLinearBuffer,
// with upstream consulted once the local buffer is exhausted. upstream may
// be nil, in which case exhaustion yields ErrOutOfMemory with no fallback.
func NewScratchBuffer(buffer unsafe.Pointer, length uintptr, upstream Allocator) *ScratchBuffer {
	return &ScratchBuffer{LinearBuffer: *NewLinearBuffer(buffer, length), upstream: upstream}
}

// Allocate first tries the local LinearBuffer. On exhaustion it asks
// upstream for a replacement buffer sized to cover this request even after
// alignment adjustment, rebinds to it, and retries locally — which is now
// guaranteed to succeed.
func (s *ScratchBuffer) Allocate(bytes, alignment uintptr) (unsafe.Pointer, error) {
	if ptr, err := s.LinearBuffer.Allocate(bytes, alignment); err == nil {
		return ptr, nil
	}
	if s.upstream == nil {
		return nil, ErrOutOfMemory
	}

	newLen := bytes + alignment
	newBuf, err := s.upstream.Allocate(newLen, alignment)
	if err != nil {
		return nil, ErrOutOfMemory
	}

	s.Reset()
	s.changeBuffer(newBuf, newLen)
	return s.LinearBuffer.Allocate(bytes, alignment)
}

// IsEqual reports whether other is a *ScratchBuffer bound to the same
// buffer state and the same upstream.
func (s *ScratchBuffer) IsEqual(other Allocator) bool {
	o, ok := other.(*ScratchBuffer)
	return ok && o.upstream == s.upstream && s.LinearBuffer.IsEqual(&o.LinearBuffer)
}
