package allocators

import (
	"encoding/binary"
	"fmt"
	"sort"
	"unsafe"
)

// Arena is a chunked, best-fit memory resource layered over one or more
// fixed-size virtual-memory regions acquired from the operating system. It
// serves arbitrary-sized, arbitrarily-aligned allocations from a free list
// that coalesces adjacent freed blocks on deallocation, growing its region
// chain on demand when no free block fits.
//
// An Arena is confined to a single goroutine: it performs no locking of
// its own.
type Arena struct {
	cfg      *Config
	first    *regionHeader
	freeList freeListStore

	regionSize   uintptr
	totalSize    uintptr
	totalUsed    uintptr
	totalRegions int
	allocations  int
}

// NewArena creates an Arena whose region chain covers at least
// capacityMiB mebibytes (DefaultArenaCapacityMiB when capacityMiB <= 0),
// using cfg (DefaultConfig() when cfg is nil). Returns ErrOutOfMemory if
// the operating system cannot supply the initial regions.
func NewArena(capacityMiB int, cfg *Config) (*Arena, error) {
	c := mergeConfig(cfg)
	if capacityMiB <= 0 {
		capacityMiB = DefaultArenaCapacityMiB
	}

	regionSize := c.RegionMaxAllocation + sizeOfRegionHeader
	capacity := uintptr(capacityMiB) * mebibyte
	blocks := capacity / regionSize
	if capacity%regionSize != 0 {
		blocks++
	}
	if blocks == 0 {
		blocks = 1
	}

	a := &Arena{cfg: c, regionSize: regionSize}

	tail := &a.first
	for i := uintptr(0); i < blocks; i++ {
		r, err := acquireRegion(regionSize)
		if err != nil {
			releaseChain(a.first, regionSize)
			return nil, ErrOutOfMemory
		}
		a.totalUsed += sizeOfRegionHeader
		a.totalRegions++
		*tail = r
		tail = &r.next
	}
	a.totalSize = blocks * regionSize

	if err := a.initFreeList(); err != nil {
		releaseChain(a.first, regionSize)
		return nil, err
	}

	return a, nil
}

// initFreeList reserves a LinearBuffer of cfg.FreeListSize descriptors
// immediately after the first region's header, and seeds the free list
// with one descriptor per acquired region (the first shrunk by the
// reservation itself).
func (a *Arena) initFreeList() error {
	reservation := uintptr(a.cfg.FreeListSize) * sizeOfFreeBlock
	if reservation+sizeOfFreeBlock > a.cfg.RegionMaxAllocation {
		panic("allocators: RegionMaxAllocation too small to hold the free-list reservation")
	}

	// The free list's storage is the reservation itself: a LinearBuffer
	// spanning exactly FREE_LIST_CAP slots, carved from the head of the
	// first region. It is never grown through that LinearBuffer (it has
	// no upstream); once exhausted, growth goes through the arena's own
	// allocation algorithm instead (see freelist.go's ensureCapacity).
	buf := unsafe.Pointer(regionPayload(a.first))
	_ = NewLinearBuffer(buf, reservation)
	a.totalUsed += reservation
	a.freeList = freeListStore{data: buf, cap: a.cfg.FreeListSize}

	firstPayload := regionPayload(a.first) + reservation
	if err := a.freeList.push(a, freeBlock{
		size: a.cfg.RegionMaxAllocation - reservation,
		addr: firstPayload,
	}); err != nil {
		return err
	}

	for r := a.first.next; r != nil; r = r.next {
		if err := a.freeList.push(a, freeBlock{
			size: a.cfg.RegionMaxAllocation,
			addr: regionPayload(r),
		}); err != nil {
			return err
		}
	}

	a.allocations = 1
	return nil
}

// Allocate selects the best-fitting free block across every region,
// growing the region chain if none fits, and returns a pointer aligned to
// alignment within it.
func (a *Arena) Allocate(bytes, alignment uintptr) (unsafe.Pointer, error) {
	if bytes == 0 || alignment == 0 {
		return nil, ErrOutOfMemory
	}
	return a.allocateCore(bytes, alignment)
}

// allocateCore is Allocate's algorithm without the public-facing argument
// validation, so the free list's own growth (freelist.go) can reuse it.
func (a *Arena) allocateCore(bytes, alignment uintptr) (unsafe.Pointer, error) {
	for {
		if idx, adjust, ok := a.selectBestFit(bytes, alignment); ok {
			block := *a.freeList.at(idx)
			need := bytes + adjust

			if block.size == need {
				a.freeList.removeAt(idx)
			} else {
				*a.freeList.at(idx) = freeBlock{size: block.size - need, addr: block.addr + need}
				a.freeList.sortBySize()
			}

			a.totalUsed += need
			a.allocations++
			return unsafe.Pointer(block.addr + adjust), nil
		}

		if err := a.growRegions(); err != nil {
			return nil, err
		}
	}
}

// selectBestFit scans the (ascending-size-sorted) free list for the
// smallest block that still fits bytes at alignment: the first candidate
// whose size matches need exactly, or whose successor either doesn't fit
// or isn't smaller.
func (a *Arena) selectBestFit(bytes, alignment uintptr) (index int, adjust uintptr, ok bool) {
	n := a.freeList.len
	for i := 0; i < n; i++ {
		b := a.freeList.at(i)
		adj := calcForwardAdjust(b.addr, alignment)
		need := bytes + adj
		if b.size < need {
			continue
		}
		if b.size == need {
			return i, adj, true
		}
		if i+1 >= n {
			return i, adj, true
		}
		next := a.freeList.at(i + 1)
		nextAdj := calcForwardAdjust(next.addr, alignment)
		if next.size < bytes+nextAdj || next.size >= b.size {
			return i, adj, true
		}
	}
	return 0, 0, false
}

// growRegions acquires one more region from the operating system, appends
// it to the chain, and pushes a fresh descriptor for its whole payload
// onto the free list.
func (a *Arena) growRegions() error {
	r, err := acquireRegion(a.regionSize)
	if err != nil {
		return ErrOutOfMemory
	}

	tail := a.first
	for tail.next != nil {
		tail = tail.next
	}
	tail.next = r

	a.totalRegions++
	a.totalSize += a.regionSize
	a.totalUsed += sizeOfRegionHeader

	return a.freeList.push(a, freeBlock{size: a.cfg.RegionMaxAllocation, addr: regionPayload(r)})
}

// Deallocate zeroes the freed interval and returns it to the free list,
// merging with an adjacent preceding or following block where possible.
func (a *Arena) Deallocate(ptr unsafe.Pointer, bytes, alignment uintptr) {
	if ptr == nil || bytes == 0 || alignment == 0 {
		return
	}
	a.deallocateCore(ptr, bytes, alignment)
}

func (a *Arena) deallocateCore(ptr unsafe.Pointer, bytes, alignment uintptr) {
	pointer := uintptr(ptr)
	adjust := calcForwardAdjust(pointer, alignment)
	realBytes := bytes + adjust
	start := pointer - adjust

	a.zeroRange(start, realBytes)

	// Make room for one more descriptor before taking the snapshot below: a
	// relocation allocates new storage and frees the old one through this
	// arena, and a snapshot taken before it would overwrite that bookkeeping.
	_ = a.freeList.ensureCapacity(a, a.freeList.len+1)

	// The free list is kept sorted by size for best-fit selection, not by
	// address, so coalescing needs its own address-ordered view — the two
	// orders diverge after a few fragmenting alloc/dealloc cycles and a
	// scan over the size-ordered array would compare unrelated blocks.
	n := a.freeList.len
	byAddr := make([]freeBlock, n)
	for i := 0; i < n; i++ {
		byAddr[i] = *a.freeList.at(i)
	}
	sort.Slice(byAddr, func(i, j int) bool { return byAddr[i].addr < byAddr[j].addr })

	pos := 0
	for pos < len(byAddr) && byAddr[pos].addr < start {
		pos++
	}

	merged := freeBlock{size: realBytes, addr: start}
	result := make([]freeBlock, 0, len(byAddr)+1)
	result = append(result, byAddr[:pos]...)

	if len(result) > 0 {
		prev := result[len(result)-1]
		if prev.addr+prev.size == merged.addr {
			merged.addr = prev.addr
			merged.size += prev.size
			result = result[:len(result)-1]
		}
	}

	rest := byAddr[pos:]
	if len(rest) > 0 && merged.addr+merged.size == rest[0].addr {
		merged.size += rest[0].size
		rest = rest[1:]
	}

	result = append(result, merged)
	result = append(result, rest...)

	_ = a.freeList.replaceAll(a, result)
	a.allocations--
	a.totalUsed -= realBytes
}

// zeroRange overwrites a freed interval with zeroes before it becomes
// eligible for reuse.
func (a *Arena) zeroRange(addr, size uintptr) {
	if size == 0 {
		return
	}
	clear(unsafe.Slice((*byte)(unsafe.Pointer(addr)), size))
}

// IsEqual reports whether other is the same *Arena instance — two Arenas
// are equal iff they share the same first region.
func (a *Arena) IsEqual(other Allocator) bool {
	o, ok := other.(*Arena)
	return ok && o.first == a.first
}

// TotalUsed returns the number of bytes currently accounted for as used,
// including region headers and the free-list reservation.
func (a *Arena) TotalUsed() uintptr { return a.totalUsed }

// TotalSize returns the total size, in bytes, of every region in the
// chain.
func (a *Arena) TotalSize() uintptr { return a.totalSize }

// TotalRegions returns the number of regions currently in the chain.
func (a *Arena) TotalRegions() int { return a.totalRegions }

// Allocations returns the number of live allocations, including the
// implicit one the free-list reservation itself counts as.
func (a *Arena) Allocations() int { return a.allocations }

// FirstRegionAddr returns the base address of the first acquired region.
func (a *Arena) FirstRegionAddr() uintptr {
	return uintptr(unsafe.Pointer(a.first))
}

// FreeList returns a read-only snapshot of the free-block descriptors
// currently tracked, ordered by ascending size.
func (a *Arena) FreeList() []FreeBlock {
	out := make([]FreeBlock, a.freeList.len)
	for i := range out {
		b := a.freeList.at(i)
		out[i] = FreeBlock{Size: b.size, Addr: b.addr}
	}
	return out
}

// FreeBlockAt returns the free-block descriptor at index i without copying
// the whole list, or ErrIndexOutOfRange if i is not a live index.
func (a *Arena) FreeBlockAt(i int) (FreeBlock, error) {
	return a.freeList.Get(i)
}

// Signature hashes the Arena's effective configuration and size into a
// diagnostic fingerprint, mirroring the confHash/getConfigHash pattern
// used elsewhere in this codebase's lineage to detect config drift.
func (a *Arena) Signature() uint64 {
	var buf [24]byte
	binary.LittleEndian.PutUint64(buf[0:8], uint64(a.cfg.RegionMaxAllocation))
	binary.LittleEndian.PutUint64(buf[8:16], uint64(a.cfg.FreeListSize))
	binary.LittleEndian.PutUint64(buf[16:24], uint64(a.totalSize))
	return hashBytes(buf[:])
}

// Describe renders a one-line diagnostic summary, useful in test failure
// messages and examples.
func (a *Arena) Describe() string {
	return fmt.Sprintf("arena(regions=%d used=%d/%d allocations=%d)",
		a.totalRegions, a.totalUsed, a.totalSize, a.allocations)
}

// Release hands every region in the chain back to the operating system.
// The Arena must not be used afterward.
func (a *Arena) Release() {
	if a.first == nil {
		return
	}
	releaseChain(a.first, a.regionSize)
	a.first = nil
	a.freeList = freeListStore{}
	a.totalUsed = 0
	a.totalSize = 0
	a.totalRegions = 0
	a.allocations = 0
}
