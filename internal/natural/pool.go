// This file provides scratch word buffers for the division, GCD and
// square-root code, pooled to keep the recursion off the allocator.

package natural

import (
	"math/bits"
	"sync"
)

// ─────────────────────────────────────────────────────────────────────────────
// Scratch Word Pools
// ─────────────────────────────────────────────────────────────────────────────

// scratchSizes are the pooled capacities, powers of 4 from 64 words up to
// 16M words. Larger requests are allocated directly.
var scratchSizes = [...]int{64, 256, 1024, 4096, 16384, 65536, 262144, 1048576, 4194304, 16777216}

var scratchPools = func() (p [len(scratchSizes)]sync.Pool) {
	for i := range p {
		size := scratchSizes[i]
		p[i].New = func() any { return make([]uint32, size) }
	}
	return p
}()

// scratchPoolIndex returns the pool holding buffers of at least size
// words, or -1 if size is too large to pool. Size class i holds
// 4^(i+3) words, so the index follows from the bit length of size-1.
func scratchPoolIndex(size int) int {
	if size <= 0 {
		return 0
	}
	if size > scratchSizes[len(scratchSizes)-1] {
		return -1
	}
	idx := (bits.Len(uint(size-1)) - 5) / 2
	if idx < 0 {
		idx = 0
	}
	return idx
}

// acquireScratch returns a zeroed buffer of length size. Release it with
// releaseScratch once no value derived from it is still referenced:
//
//	buf := acquireScratch(n)
//	defer releaseScratch(buf)
func acquireScratch(size int) []uint32 {
	idx := scratchPoolIndex(size)
	if idx < 0 {
		return make([]uint32, size)
	}
	buf := scratchPools[idx].Get().([]uint32)[:size]
	clear(buf)
	return buf
}

// releaseScratch returns buf to its pool. Buffers that did not come from
// a pool are left to the garbage collector. Safe to call with nil.
func releaseScratch(buf []uint32) {
	if buf == nil {
		return
	}
	c := cap(buf)
	idx := scratchPoolIndex(c)
	if idx >= 0 && scratchSizes[idx] == c {
		scratchPools[idx].Put(buf[:c])
	}
}
