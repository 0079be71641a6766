package allocators

import (
	"unsafe"

	"github.com/malunal-studios/malunal.allocators/vmem"
)

// regionHeader sits at the base of every region an Arena acquires from the
// operating system. It is the only bookkeeping an Arena keeps outside its
// free list.
type regionHeader struct {
	next *regionHeader
}

var sizeOfRegionHeader = unsafe.Sizeof(regionHeader{})

// regionPayload returns the address of the first byte available for
// allocation within r, immediately following its header.
func regionPayload(r *regionHeader) uintptr {
	return uintptr(unsafe.Pointer(r)) + sizeOfRegionHeader
}

// acquireRegion reserves regionSize bytes of virtual memory and writes a
// zeroed header at its base.
func acquireRegion(regionSize uintptr) (*regionHeader, error) {
	ptr, err := vmem.Acquire(regionSize)
	if err != nil {
		return nil, ErrOutOfMemory
	}
	r := (*regionHeader)(ptr)
	r.next = nil
	return r, nil
}

// releaseChain walks the region chain rooted at first, tail-first, handing
// each region back to the operating system.
func releaseChain(first *regionHeader, regionSize uintptr) {
	if first == nil {
		return
	}
	releaseChain(first.next, regionSize)
	_ = vmem.Release(unsafe.Pointer(first), regionSize)
}
