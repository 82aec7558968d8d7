package seqcoll

import (
	"github.com/stalecu/seqcoll/internal/utils"
)

// IndexFunc returns the index of the first element for which pred returns
// true, or -1 if there is none.
func (s *Sequence[T]) IndexFunc(pred func(e T) bool) int {
	for i := 0; i < s.length; i++ {
		if pred(s.storage[i]) {
			return i
		}
	}
	return -1
}

// ContainsFunc returns true if pred returns true for at least one element.
func (s *Sequence[T]) ContainsFunc(pred func(e T) bool) bool {
	return utils.Some(s.storage[:s.length], pred)
}

// CountFunc returns the number of elements for which pred returns true.
func (s *Sequence[T]) CountFunc(pred func(e T) bool) int {
	count := 0
	for i := 0; i < s.length; i++ {
		if pred(s.storage[i]) {
			count++
		}
	}
	return count
}
