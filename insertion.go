package seqcoll

import (
	"fmt"

	"github.com/stalecu/seqcoll/internal/utils"
)

// Append adds the passed values to the end of the sequence. The amortized cost
// per appended element is constant. Appending invalidates iterators only if
// the storage grows.
func (s *Sequence[T]) Append(values ...T) error {
	if len(values) == 0 {
		return nil
	}
	if err := s.ensureFreeCapacity(len(values)); err != nil {
		return err
	}

	index := s.length
	copy(s.storage[index:], values)
	s.length += len(values)

	if len(values) == 1 {
		s.informAboutMutation(NewInsertElemAtIndexMutation(index))
	} else {
		s.informAboutMutation(NewInsertSequenceAtIndexMutation(index, len(values)))
	}
	return nil
}

// Insert inserts v at index i, 0 <= i <= Len(). The elements at and after i
// are shifted one position towards the end. An error wrapping
// ErrInsertionIndexOutOfRange is returned for an invalid index, an allocation
// failure leaves the sequence unchanged.
func (s *Sequence[T]) Insert(i int, v T) error {
	if i < 0 || i > s.length {
		return fmt.Errorf("%w: index is %d but length is %d", ErrInsertionIndexOutOfRange, i, s.length)
	}
	if err := s.ensureFreeCapacity(1); err != nil {
		return err
	}

	if i < s.length {
		copied := copy(s.storage[i+1:s.length+1], s.storage[i:s.length])
		s.stats.ElementCopies += uint64(copied)
		s.version++
	}
	s.storage[i] = v
	s.length++

	s.informAboutMutation(NewInsertElemAtIndexMutation(i))
	return nil
}

// InsertSlice inserts the passed values at index i, preserving their relative
// order. The required capacity is planned in a single pass before any element
// moves: either the whole insertion happens or the sequence is left unchanged.
func (s *Sequence[T]) InsertSlice(i int, values []T) error {
	if i < 0 || i > s.length {
		return fmt.Errorf("%w: index is %d but length is %d", ErrInsertionIndexOutOfRange, i, s.length)
	}
	n := len(values)
	if n == 0 {
		return nil
	}
	if err := s.ensureFreeCapacity(n); err != nil {
		return err
	}

	if i < s.length {
		copied := copy(s.storage[i+n:s.length+n], s.storage[i:s.length])
		s.stats.ElementCopies += uint64(copied)
		s.version++
	}
	copy(s.storage[i:i+n], values)
	s.length += n

	s.informAboutMutation(NewInsertSequenceAtIndexMutation(i, n))
	return nil
}

// InsertSequence inserts the elements of another indexable sequence at index
// i, preserving their relative order. Inserting a sequence into itself is
// supported, other implementations of Indexable must not be backed by s.
func (s *Sequence[T]) InsertSequence(i int, other Indexable[T]) error {
	if otherSeq, ok := other.(*Sequence[T]); ok {
		if otherSeq == s {
			//self insertion, the elements are copied first
			return s.InsertSlice(i, s.Values())
		}
		return s.InsertSlice(i, otherSeq.storage[:otherSeq.length])
	}

	if i < 0 || i > s.length {
		return fmt.Errorf("%w: index is %d but length is %d", ErrInsertionIndexOutOfRange, i, s.length)
	}
	n := other.Len()
	if n == 0 {
		return nil
	}
	if err := s.ensureFreeCapacity(n); err != nil {
		return err
	}

	if i < s.length {
		copied := copy(s.storage[i+n:s.length+n], s.storage[i:s.length])
		s.stats.ElementCopies += uint64(copied)
		s.version++
	}
	for ind := 0; ind < n; ind++ {
		s.storage[i+ind] = utils.Must(other.At(ind))
	}
	s.length += n

	s.informAboutMutation(NewInsertSequenceAtIndexMutation(i, n))
	return nil
}

// AppendSequence adds the elements of another indexable sequence to the end of
// the sequence.
func (s *Sequence[T]) AppendSequence(other Indexable[T]) error {
	return s.InsertSequence(s.length, other)
}
