package seqcoll

import (
	"errors"
	"fmt"

	"github.com/stalecu/seqcoll/internal/utils"
)

const (
	MIN_ALLOCATED_CAPACITY = 8
	CAPACITY_GROWTH_FACTOR = 2
)

// Stats are counters describing the work performed by the storage engine of a
// sequence. Copies made by constructors are not counted.
type Stats struct {
	Allocations   uint64 //storage blocks obtained from the allocator
	Grows         uint64 //capacity increases
	Shrinks       uint64 //capacity decreases
	ElementCopies uint64 //elements moved by reallocations, shifts and rotations
}

// Stats returns a copy of the engine counters of the sequence.
func (s *Sequence[T]) Stats() Stats {
	return s.stats
}

func (s *Sequence[T]) allocator() Allocator[T] {
	if s.alloc == nil {
		return heapAllocator[T]{}
	}
	return s.alloc
}

// Reserve ensures the sequence can hold at least n elements without further
// reallocation. It does nothing if the current capacity is already sufficient,
// otherwise a block of exactly n slots is allocated and the elements are
// copied in index order. On allocation failure the sequence is left unchanged.
// Reallocation invalidates iterators.
func (s *Sequence[T]) Reserve(n int) error {
	if n < 0 {
		panic(ErrNegativeCapacity)
	}
	if n <= len(s.storage) {
		return nil
	}
	return s.setCapacity(n, true)
}

// ShrinkToFit reallocates the storage so that the capacity equals the length.
// Shrinking never happens implicitly: removal operations keep the capacity.
// On allocation failure the sequence is left unchanged. Reallocation
// invalidates iterators.
func (s *Sequence[T]) ShrinkToFit() error {
	if len(s.storage) == s.length {
		return nil
	}
	if s.length == 0 {
		s.storage = nil
		s.version++
		s.stats.Shrinks++
		s.logStorageEvent("shrink storage", 0)
		s.informAboutMutation(NewShrinkStorageMutation(0))
		return nil
	}
	return s.setCapacity(s.length, false)
}

// Resize sets the length of the sequence to n. If n is smaller than the
// current length the trailing elements are removed (the capacity is kept),
// otherwise zero values are appended, growing the storage if needed.
func (s *Sequence[T]) Resize(n int) error {
	if n < 0 {
		panic(ErrNegativeLength)
	}
	switch {
	case n == s.length:
		return nil
	case n < s.length:
		s.zeroRange(n, s.length)
		s.length = n
		s.version++
	default:
		if err := s.ensureFreeCapacity(n - s.length); err != nil {
			return err
		}
		//the slots beyond the length already hold zero values
		s.length = n
	}
	s.informAboutMutation(NewResizeLengthMutation(n))
	return nil
}

// ensureFreeCapacity grows the storage so that at least extra slots are free,
// the capacity is doubled until it is sufficient.
func (s *Sequence[T]) ensureFreeCapacity(extra int) error {
	needed := s.length + extra
	if needed <= len(s.storage) {
		return nil
	}

	newCapacity := utils.Max(MIN_ALLOCATED_CAPACITY, len(s.storage))
	for newCapacity < needed {
		newCapacity *= CAPACITY_GROWTH_FACTOR
	}
	return s.setCapacity(newCapacity, true)
}

// setCapacity reallocates the storage to exactly newCapacity slots and copies
// the elements in index order, newCapacity must be >= the length. The
// sequence is left unchanged if the allocation fails.
func (s *Sequence[T]) setCapacity(newCapacity int, growing bool) error {
	newStorage, err := s.allocator().Allocate(newCapacity)
	if err != nil {
		if !errors.Is(err, ErrAllocationFailed) {
			err = fmt.Errorf("%w: %w", ErrAllocationFailed, err)
		}
		return err
	}

	copied := copy(newStorage, s.storage[:s.length])
	s.storage = newStorage
	s.version++
	s.stats.Allocations++
	s.stats.ElementCopies += uint64(copied)

	if growing {
		s.stats.Grows++
		s.logStorageEvent("grow storage", newCapacity)
		s.informAboutMutation(NewGrowStorageMutation(newCapacity))
	} else {
		s.stats.Shrinks++
		s.logStorageEvent("shrink storage", newCapacity)
		s.informAboutMutation(NewShrinkStorageMutation(newCapacity))
	}
	return nil
}

func (s *Sequence[T]) logStorageEvent(msg string, newCapacity int) {
	if !s.loggingEnabled {
		return
	}
	s.logger.Debug().
		Int("length", s.length).
		Int("newCapacity", newCapacity).
		Msg(msg)
}
