// Package allocators implements a chunked arena memory resource layered
// over operating-system virtual memory, together with the two building
// blocks it is composed from.
//
// # Overview
//
// Three resources compose in dependency order:
//
//   - LinearBuffer is a bump-pointer allocator over a fixed buffer. It has
//     no notion of individual deallocation; Reset and Clear are the only
//     ways to reclaim its space.
//   - ScratchBuffer wraps a LinearBuffer and adds an upstream Allocator
//     that it falls back to, rebinding its own buffer, once the local
//     buffer is exhausted.
//   - Arena owns a chain of virtual-memory regions acquired from the host
//     operating system and serves arbitrary-sized, arbitrarily-aligned
//     allocations via a best-fit free list with coalescing on
//     deallocation.
//
// # Basic Usage
//
//	a, err := allocators.NewArena(4, nil) // 4 MiB, default config
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer a.Release()
//
//	ptr, err := a.Allocate(unsafe.Sizeof(int32(0)), unsafe.Alignof(int32(0)))
//	if err != nil {
//		log.Fatal(err)
//	}
//	a.Deallocate(ptr, unsafe.Sizeof(int32(0)), unsafe.Alignof(int32(0)))
//
// # Thread Safety
//
// None of the resources in this package are safe for concurrent use. Every
// Allocate/Deallocate call on a given resource must happen on a single
// goroutine; distinct resources are independent.
//
// # Important Notes
//
//   - Memory returned by Allocate is raw, uninitialized bytes; callers are
//     responsible for any construction or destruction of values placed
//     into it.
//   - Arena zeroes a freed interval before it becomes eligible for reuse.
//   - The free list that backs Arena is itself allocated from the arena's
//     own first region; exceeding ARENA_FREE_LIST_SIZE live descriptors
//     causes it to relocate, which is correct but undesirable for
//     performance.
package allocators
