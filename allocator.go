package allocators

import "unsafe"

// Allocator is the shared contract LinearBuffer, ScratchBuffer, and Arena
// all satisfy structurally: request bytes at an alignment, release them
// back, and compare two instances for equality of underlying resource.
type Allocator interface {
	// Allocate returns a pointer to at least bytes bytes, aligned to
	// alignment, or ErrOutOfMemory if no such memory is available.
	Allocate(bytes, alignment uintptr) (unsafe.Pointer, error)

	// Deallocate releases a block previously returned by Allocate on the
	// same resource with the same bytes and alignment. Behavior for any
	// other pointer is undefined.
	Deallocate(ptr unsafe.Pointer, bytes, alignment uintptr)

	// IsEqual reports whether other refers to the same underlying
	// resource as this one.
	IsEqual(other Allocator) bool
}

// calcForwardAdjust returns the number of bytes that must be added to addr
// to reach the next address that is a multiple of alignment. alignment
// must be a power of two.
func calcForwardAdjust(addr, alignment uintptr) uintptr {
	mask := alignment - 1
	aligned := (addr + mask) &^ mask
	return aligned - addr
}
