package allocators

// Bounds and defaults for an Arena's tunable knobs. Go has no preprocessor,
// so the C++ prototype's #ifndef-guarded constants become plain constants
// here, and the Config an Arena is built with is checked against them when
// NewArena calls mergeConfig.
const (
	// MinRegionMaxAllocation is the smallest REGION_MAX_ALLOCATION this
	// module will accept; below it a region couldn't hold its own free
	// list reservation plus a useful allocation.
	MinRegionMaxAllocation uintptr = 0x1000

	// DefaultRegionMaxAllocation is the payload size of a region, not
	// counting its header.
	DefaultRegionMaxAllocation uintptr = 0x003F_FFF8

	// MinArenaFreeListSize and MaxArenaFreeListSize bound
	// ARENA_FREE_LIST_SIZE.
	MinArenaFreeListSize = 8
	MaxArenaFreeListSize = 256

	// DefaultArenaFreeListSize is the number of free-block descriptors an
	// Arena reserves space for before its free list must relocate.
	DefaultArenaFreeListSize = 32

	// DefaultArenaCapacityMiB is used by NewArena when the caller passes
	// a non-positive capacity.
	DefaultArenaCapacityMiB = 4

	// DefaultVMemCommitPageSize is the Windows commit granularity
	// (VMEM_COMMIT_PAGE_SIZE). It is a named value only: Windows regions are
	// committed whole when acquired, and no count of committed pages is kept.
	DefaultVMemCommitPageSize = 0x10000

	mebibyte uintptr = 1 << 20
)

// Config holds the tunable knobs of an Arena. A nil *Config passed to
// NewArena is equivalent to DefaultConfig().
type Config struct {
	// RegionMaxAllocation is the usable payload size of every region an
	// Arena acquires, not counting the region header.
	RegionMaxAllocation uintptr

	// FreeListSize is the number of free-block descriptor slots reserved
	// up front for the Arena's free list.
	FreeListSize int
}

// DefaultConfig returns the default Config.
func DefaultConfig() *Config {
	return &Config{
		RegionMaxAllocation: DefaultRegionMaxAllocation,
		FreeListSize:        DefaultArenaFreeListSize,
	}
}

// mergeConfig overlays c onto the defaults (zero fields in c keep their
// default) and validates the result, panicking on an out-of-range value —
// a PreconditionViolation, not a runtime error a caller is meant to
// recover from.
func mergeConfig(c *Config) *Config {
	cfg := DefaultConfig()
	if c != nil {
		if c.RegionMaxAllocation != 0 {
			cfg.RegionMaxAllocation = c.RegionMaxAllocation
		}
		if c.FreeListSize != 0 {
			cfg.FreeListSize = c.FreeListSize
		}
	}
	cfg.validate()
	return cfg
}

func (c *Config) validate() {
	if c.RegionMaxAllocation < MinRegionMaxAllocation {
		panic("allocators: RegionMaxAllocation below MinRegionMaxAllocation")
	}
	if c.FreeListSize < MinArenaFreeListSize || c.FreeListSize > MaxArenaFreeListSize {
		panic("allocators: FreeListSize outside [MinArenaFreeListSize, MaxArenaFreeListSize]")
	}
}
