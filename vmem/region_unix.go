//go:build unix

package vmem

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// Acquire reserves size bytes of anonymous, read-write virtual memory via
// mmap. On ENOMEM, EOVERFLOW, or EAGAIN it retries with half the size,
// down to a minimum of size/16 (or size itself, when that would round to
// zero), before giving up — matching the retry loop the original C++
// vmem_acquire_region implements.
func Acquire(size uintptr) (unsafe.Pointer, error) {
	min := size / 16
	if min < 1 {
		min = size
	}

	var lastErr error
	for size >= min {
		b, err := unix.Mmap(-1, 0, int(size), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANON)
		if err == nil {
			return unsafe.Pointer(&b[0]), nil
		}
		lastErr = err
		if err != unix.ENOMEM && err != unix.EOVERFLOW && err != unix.EAGAIN {
			break
		}
		size /= 2
	}
	if lastErr == nil {
		lastErr = unix.ENOMEM
	}
	return nil, lastErr
}

// Release returns a region obtained from Acquire to the operating system
// via munmap.
func Release(ptr unsafe.Pointer, size uintptr) error {
	return unix.Munmap(unsafe.Slice((*byte)(ptr), size))
}
