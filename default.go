package allocators

import "sync"

var (
	defaultArenaOnce sync.Once
	defaultArenaInst *Arena
	defaultArenaMu   sync.Mutex
)

// DefaultArena returns a process-wide Arena, created lazily on first use
// with DefaultArenaCapacityMiB and DefaultConfig(). Like every Arena, it
// is confined to a single goroutine — callers sharing it across
// goroutines are responsible for their own external synchronization,
// which this module does not provide.
func DefaultArena() *Arena {
	defaultArenaOnce.Do(func() {
		a, err := NewArena(DefaultArenaCapacityMiB, nil)
		if err != nil {
			panic(err)
		}
		defaultArenaMu.Lock()
		defaultArenaInst = a
		defaultArenaMu.Unlock()
	})
	defaultArenaMu.Lock()
	defer defaultArenaMu.Unlock()
	return defaultArenaInst
}

// ReleaseDefaultArena tears down the process-wide default Arena, if one
// was ever created, and allows a fresh one to be built on next access.
// Intended for tests; production code has no reason to call it.
func ReleaseDefaultArena() {
	defaultArenaMu.Lock()
	defer defaultArenaMu.Unlock()
	if defaultArenaInst != nil {
		defaultArenaInst.Release()
		defaultArenaInst = nil
	}
	defaultArenaOnce = sync.Once{}
}
