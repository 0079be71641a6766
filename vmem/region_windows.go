//go:build windows

package vmem

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

// CommitPageSize is the Windows commit granularity (the
// VMEM_COMMIT_PAGE_SIZE knob). Acquire commits each region whole, so nothing
// in this module counts committed pages in units of it.
const CommitPageSize = 0x10000

// Acquire reserves and commits size bytes of virtual memory in one
// VirtualAlloc call. The original prototype does not commit incrementally
// for arena regions — the whole region becomes committed at acquisition.
func Acquire(size uintptr) (unsafe.Pointer, error) {
	addr, err := windows.VirtualAlloc(0, size, windows.MEM_COMMIT|windows.MEM_RESERVE, windows.PAGE_READWRITE)
	if err != nil {
		return nil, err
	}
	return unsafe.Pointer(addr), nil
}

// Release hands a region obtained from Acquire back to the operating
// system via VirtualFree.
func Release(ptr unsafe.Pointer, size uintptr) error {
	return windows.VirtualFree(uintptr(ptr), 0, windows.MEM_RELEASE)
}
