package allocators

import (
	"sort"
	"unsafe"
)

// freeBlock describes one span of free memory within an Arena's region
// chain.
type freeBlock struct {
	size uintptr
	addr uintptr
}

var sizeOfFreeBlock = unsafe.Sizeof(freeBlock{})

// FreeBlock is a read-only snapshot of a freeBlock, exposed by
// Arena.FreeList for validation and diagnostics.
type FreeBlock struct {
	Size uintptr
	Addr uintptr
}

// freeListStore is the Arena's free list: a dynamic, size-ordered sequence
// of freeBlock descriptors. Its own storage starts out carved from the
// head of the Arena's first region; once it outgrows its reserved
// capacity it relocates by calling back into the owning Arena's own
// allocation algorithm, copying its descriptors into the new span and
// releasing the old one through the same Arena's deallocation algorithm.
// This "wandering" behavior is a deliberate, faithful property of the
// design, not an oversight — see the discussion this module's design
// ledger carries for it.
type freeListStore struct {
	data unsafe.Pointer
	len  int
	cap  int
}

func (f *freeListStore) slots() []freeBlock {
	if f.cap == 0 {
		return nil
	}
	return unsafe.Slice((*freeBlock)(f.data), f.cap)
}

func (f *freeListStore) at(i int) *freeBlock {
	return &f.slots()[i]
}

// Len reports the number of live descriptors.
func (f *freeListStore) Len() int { return f.len }

// Get exposes a read-only copy of the descriptor at i, bounds-checked
// against the live length (unlike at, which trusts the caller).
func (f *freeListStore) Get(i int) (FreeBlock, error) {
	if i < 0 || i >= f.len {
		return FreeBlock{}, ErrIndexOutOfRange
	}
	b := f.at(i)
	return FreeBlock{Size: b.size, Addr: b.addr}, nil
}

// ensureCapacity grows the backing storage, via a owning Arena, so that at
// least need descriptors fit. A no-op if capacity already suffices.
func (f *freeListStore) ensureCapacity(a *Arena, need int) error {
	if f.cap >= need {
		return nil
	}
	newCap := f.cap * 2
	if newCap < need {
		newCap = need
	}
	if newCap == 0 {
		newCap = 1
	}

	align := unsafe.Alignof(freeBlock{})
	newData, err := a.allocateCore(uintptr(newCap)*sizeOfFreeBlock, align)
	if err != nil {
		return err
	}

	if f.len > 0 {
		memmove(newData, f.data, uintptr(f.len)*sizeOfFreeBlock)
	}

	oldData, oldCap := f.data, f.cap
	f.data, f.cap = newData, newCap

	if oldData != nil {
		a.deallocateCore(oldData, uintptr(oldCap)*sizeOfFreeBlock, align)
	}
	return nil
}

// push appends fb, growing the backing storage if needed, and keeps the
// list sorted by ascending size.
func (f *freeListStore) push(a *Arena, fb freeBlock) error {
	if err := f.ensureCapacity(a, f.len+1); err != nil {
		return err
	}
	f.slots()[f.len] = fb
	f.len++
	f.sortBySize()
	return nil
}

// insertAt inserts fb at position i, growing the backing storage if
// needed. Does not re-sort; callers that need the ascending-size
// invariant restored afterward must call sortBySize themselves.
func (f *freeListStore) insertAt(a *Arena, i int, fb freeBlock) error {
	if err := f.ensureCapacity(a, f.len+1); err != nil {
		return err
	}
	s := f.slots()
	copy(s[i+1:f.len+1], s[i:f.len])
	s[i] = fb
	f.len++
	return nil
}

// removeAt removes the descriptor at i.
func (f *freeListStore) removeAt(i int) {
	s := f.slots()
	copy(s[i:f.len-1], s[i+1:f.len])
	f.len--
}

// sortBySize re-sorts the live descriptors by ascending size, the
// invariant the best-fit search in Arena.Allocate relies on.
func (f *freeListStore) sortBySize() {
	s := f.slots()[:f.len]
	sort.Slice(s, func(i, j int) bool { return s[i].size < s[j].size })
}

// replaceAll overwrites the live descriptors with items — typically an
// address-ordered view rebuilt after a coalescing merge — growing backing
// storage if needed, and restores the ascending-size order that selection
// relies on.
func (f *freeListStore) replaceAll(a *Arena, items []freeBlock) error {
	if err := f.ensureCapacity(a, len(items)); err != nil {
		return err
	}
	copy(f.slots()[:len(items)], items)
	f.len = len(items)
	f.sortBySize()
	return nil
}
