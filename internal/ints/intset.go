// Package ints contains a bit set of small non-negative integers.
package ints

const IntSizeShift = 5 + (^uint(0) >> 32 & 1)
const IntSize = 1 << IntSizeShift

// Set is a bit set of non-negative integers, a zero value is an empty set.
// Negative items are never contained and are ignored by Add.
type Set struct {
	chunks []uint
}

func chunkIndex(item int) int {
	return item >> IntSizeShift
}

func bitMask(item int) uint {
	return 1 << (uint(item) & (IntSize - 1))
}

func (s *Set) allocate(item int) {
	index := chunkIndex(item)
	if index < len(s.chunks) {
		return
	}

	chunks := make([]uint, index+1)
	copy(chunks, s.chunks)
	s.chunks = chunks
}

func (s *Set) Add(items ...int) *Set {
	for _, item := range items {
		if item < 0 {
			continue
		}

		s.allocate(item)
		s.chunks[chunkIndex(item)] |= bitMask(item)
	}
	return s
}

func (s *Set) Contains(item int) bool {
	if item < 0 || chunkIndex(item) >= len(s.chunks) {
		return false
	}

	return s.chunks[chunkIndex(item)]&bitMask(item) != 0
}

// Union adds all items of t to s. Returns true if s has changed,
// fixed-point computations use it as the termination signal.
func (s *Set) Union(t *Set) (changed bool) {
	if len(t.chunks) > len(s.chunks) {
		chunks := make([]uint, len(t.chunks))
		copy(chunks, s.chunks)
		s.chunks = chunks
	}

	for i, chunk := range t.chunks {
		merged := s.chunks[i] | chunk
		if merged != s.chunks[i] {
			s.chunks[i] = merged
			changed = true
		}
	}
	return
}
