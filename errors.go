package allocators

import "errors"

var (
	// ErrOutOfMemory is returned whenever a resource cannot satisfy an
	// allocation: a LinearBuffer or ScratchBuffer has no room left and no
	// upstream (or a failing one), or an Arena exhausted its free list and
	// could not acquire another region from the operating system.
	ErrOutOfMemory = errors.New("allocators: out of memory")

	// ErrIndexOutOfRange is returned by accessors that index into an
	// Arena's free list with an out-of-bounds position.
	ErrIndexOutOfRange = errors.New("allocators: index out of range")

	// ErrUnsupportedPlatform names the case of a platform this module has
	// no virtual-memory backend for. Nothing returns this value: the vmem
	// package reports that case with its own vmem.ErrUnsupportedPlatform,
	// and acquireRegion turns the failure into ErrOutOfMemory.
	ErrUnsupportedPlatform = errors.New("allocators: unsupported platform")
)
