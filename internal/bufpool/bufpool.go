// Package bufpool provides bucketed sync.Pool instances for reducing
// allocations in the codec's per-block encode/decode hot paths. Buffers
// are organized by size class to minimize waste.
package bufpool

import "sync"

// Size classes for bucketed pools, sized around the codec's 500-byte
// block constant rather than the larger classes a pixel-buffer pool
// would need.
const (
	Size512B = 512
	Size2K   = 2048
	Size8K   = 8192
)

var sizes = [3]int{Size512B, Size2K, Size8K}

var pools [3]sync.Pool

func init() {
	for i := range pools {
		sz := sizes[i]
		pools[i] = sync.Pool{
			New: func() any {
				b := make([]byte, sz)
				return &b
			},
		}
	}
}

func bucketIndex(size int) int {
	switch {
	case size <= Size512B:
		return 0
	case size <= Size2K:
		return 1
	default:
		return 2
	}
}

// Get returns a byte slice of at least the requested size. The returned
// slice has length == size and may have a larger capacity. The caller
// must call Put when done with it.
func Get(size int) []byte {
	idx := bucketIndex(size)
	bp := pools[idx].Get().(*[]byte)
	b := *bp
	if cap(b) < size {
		b = make([]byte, size)
		*bp = b
		return b
	}
	return b[:size]
}

// Put returns a byte slice obtained from Get back to the pool. Slices
// smaller than Size512B are not pooled.
func Put(b []byte) {
	c := cap(b)
	if c < Size512B {
		return
	}
	idx := bucketIndex(c)
	b = b[:c]
	pools[idx].Put(&b)
}
