// Package vmem reserves and releases raw virtual memory from the host
// operating system on behalf of an Arena's region chain. It has no notion
// of headers, free lists, or allocation — a region acquired here is
// handed back to the caller as a single opaque span.
package vmem

import "errors"

// ErrUnsupportedPlatform is returned by Acquire and Release on platforms
// this package has no virtual-memory backend for.
var ErrUnsupportedPlatform = errors.New("vmem: platform not supported")
