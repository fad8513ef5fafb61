package mesh

import "sort"

// indexAllocator hands out 3-slot ranges of the index buffer and records
// the holes that non-tail face deletions leave behind. Holes are only ever
// removed by a full index rewrite.
type indexAllocator struct {
	buffer Buffer
	free   []uint32 // released first index numbers, ascending
}

func newIndexAllocator(buffer Buffer) *indexAllocator {
	return &indexAllocator{buffer: buffer}
}

// allocate returns the smallest recycled first index number, or grows the
// buffer by 3 and returns the previous length.
func (a *indexAllocator) allocate() uint32 {
	if len(a.free) > 0 {
		fin := a.free[0]
		a.free = a.free[1:]
		return fin
	}
	fin := uint32(a.buffer.NumIndices())
	a.buffer.GrowIndices(3)
	return fin
}

// release returns a 3-slot range. A range at the buffer tail shrinks the
// buffer instead of leaving a hole.
func (a *indexAllocator) release(firstIndexNumber uint32) {
	if int(firstIndexNumber) == a.buffer.NumIndices()-3 {
		a.buffer.ShrinkIndices(3)
		return
	}
	i := sort.Search(len(a.free), func(i int) bool { return a.free[i] >= firstIndexNumber })
	a.free = append(a.free, 0)
	copy(a.free[i+1:], a.free[i:])
	a.free[i] = firstIndexNumber
}

// needsFullRewrite reports whether holes are outstanding.
func (a *indexAllocator) needsFullRewrite() bool { return len(a.free) > 0 }

// numFree returns the number of outstanding holes.
func (a *indexAllocator) numFree() int { return len(a.free) }

// clear drops all holes after a full rewrite.
func (a *indexAllocator) clear() { a.free = a.free[:0] }
