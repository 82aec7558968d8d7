package seqcoll

import (
	"fmt"
)

// Remove removes the element at index i, 0 <= i < Len(). The elements after i
// are shifted one position towards the front and the vacated slot is zeroed.
// The capacity is kept: shrinking only happens through ShrinkToFit.
func (s *Sequence[T]) Remove(i int) error {
	if i < 0 || i >= s.length {
		return fmt.Errorf("%w: index is %d but length is %d", ErrIndexOutOfRange, i, s.length)
	}
	s.removePosition(i)
	s.informAboutMutation(NewRemovePositionMutation(i))
	return nil
}

func (s *Sequence[T]) removePosition(i int) {
	if i != s.length-1 {
		copied := copy(s.storage[i:s.length-1], s.storage[i+1:s.length])
		s.stats.ElementCopies += uint64(copied)
	}
	s.length--

	var zero T
	s.storage[s.length] = zero
	s.version++
}

// RemoveRange removes the elements in [start, end), 0 <= start <= end <=
// Len(). The elements after the range are shifted towards the front in a
// single pass and the vacated slots are zeroed. An error wrapping
// ErrInvalidRange is returned for an invalid range.
func (s *Sequence[T]) RemoveRange(start, end int) error {
	if start < 0 || end < start || end > s.length {
		return fmt.Errorf("%w: [%d, %d) but length is %d", ErrInvalidRange, start, end, s.length)
	}
	removed := end - start
	if removed == 0 {
		return nil
	}

	copied := copy(s.storage[start:s.length-removed], s.storage[end:s.length])
	s.stats.ElementCopies += uint64(copied)
	s.zeroRange(s.length-removed, s.length)
	s.length -= removed
	s.version++

	s.informAboutMutation(NewRemovePositionRangeMutation(start, end))
	return nil
}

// RemoveIf removes all elements for which pred returns true and returns the
// number of removed elements. The surviving elements keep their relative order
// and are compacted in a single pass, the vacated trailing slots are zeroed.
// pred must not mutate the sequence.
func (s *Sequence[T]) RemoveIf(pred func(e T) bool) int {
	w := 0
	for r := 0; r < s.length; r++ {
		if pred(s.storage[r]) {
			continue
		}
		if w != r {
			s.storage[w] = s.storage[r]
			s.stats.ElementCopies++
		}
		w++
	}

	removed := s.length - w
	if removed == 0 {
		return 0
	}
	s.zeroRange(w, s.length)
	s.length = w
	s.version++

	s.informAboutMutation(NewRemoveMatchingElemsMutation(removed))
	return removed
}

// Pop removes the last element and returns it, ErrCannotPopFromEmptySequence
// is returned if the sequence is empty.
func (s *Sequence[T]) Pop() (T, error) {
	if s.length == 0 {
		var zero T
		return zero, ErrCannotPopFromEmptySequence
	}
	index := s.length - 1
	elem := s.storage[index]
	s.removePosition(index)
	s.informAboutMutation(NewRemovePositionMutation(index))
	return elem, nil
}

// Dequeue removes the first element and returns it,
// ErrCannotDequeueFromEmptySequence is returned if the sequence is empty.
func (s *Sequence[T]) Dequeue() (T, error) {
	if s.length == 0 {
		var zero T
		return zero, ErrCannotDequeueFromEmptySequence
	}
	elem := s.storage[0]
	s.removePosition(0)
	s.informAboutMutation(NewRemovePositionMutation(0))
	return elem, nil
}
