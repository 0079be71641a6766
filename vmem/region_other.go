//go:build !unix && !windows

package vmem

import "unsafe"

// Acquire always fails on a platform with no virtual-memory backend.
func Acquire(size uintptr) (unsafe.Pointer, error) {
	return nil, ErrUnsupportedPlatform
}

// Release always fails on a platform with no virtual-memory backend.
func Release(ptr unsafe.Pointer, size uintptr) error {
	return ErrUnsupportedPlatform
}
