// Package seqcoll provides growable contiguous sequence containers with
// explicit capacity management, bounds-checked and unchecked element access,
// iterator invalidation detection and a small set of whole-sequence
// algorithms.
package seqcoll

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/rs/zerolog"
	"github.com/stalecu/seqcoll/internal/utils"
)

var (
	_ = []Indexable[int]{(*Sequence[int])(nil)}
)

// An Indexable is a finite sequence whose elements are readable by index.
type Indexable[T any] interface {
	Len() int

	// At returns the element at index i, 0 <= i < Len(). An error wrapping
	// ErrIndexOutOfRange is returned otherwise.
	At(i int) (T, error)
}

// A Sequence is a growable contiguous sequence of elements of type T. The
// elements are stored in a single backing block: the element at index i+1 is
// adjacent in memory to the element at index i. The zero value is an empty
// ready-to-use sequence with no allocated storage.
//
// Sequences are not safe for concurrent mutation, see TSSequence. Any number
// of goroutines can call read-only operations concurrently as long as no
// mutation runs.
type Sequence[T any] struct {
	//invariants:
	//  len(storage) is the capacity, 0 <= length <= len(storage)
	//  slots storage[length:] hold zero values
	storage []T
	length  int

	//incremented by every operation that reallocates the storage or shifts elements.
	version uint64

	alloc             Allocator[T]
	logger            zerolog.Logger
	loggingEnabled    bool
	mutationCallbacks *MutationCallbacks
	stats             Stats
}

type SequenceConfig[T any] struct {
	InitialCapacity int
	Allocator       Allocator[T]   //ok if not set
	Logger          zerolog.Logger //ok if not set
}

func New[T any]() *Sequence[T] {
	return &Sequence[T]{}
}

func NewWithConfig[T any](config SequenceConfig[T]) (*Sequence[T], error) {
	if config.InitialCapacity < 0 {
		panic(ErrNegativeCapacity)
	}

	seq := &Sequence[T]{alloc: config.Allocator}

	if !reflect.ValueOf(config.Logger).IsZero() {
		seq.logger = config.Logger
		seq.loggingEnabled = true
	}

	if config.InitialCapacity > 0 {
		storage, err := seq.allocator().Allocate(config.InitialCapacity)
		if err != nil {
			if !errors.Is(err, ErrAllocationFailed) {
				err = fmt.Errorf("%w: %w", ErrAllocationFailed, err)
			}
			return nil, err
		}
		seq.storage = storage
		seq.stats.Allocations++
	}

	return seq, nil
}

// FromSlice returns a new sequence containing a copy of the passed elements.
func FromSlice[T any](elements []T) *Sequence[T] {
	return &Sequence[T]{
		storage: utils.CopySlice(elements),
		length:  len(elements),
	}
}

// Of returns a new sequence containing the passed elements.
func Of[T any](elements ...T) *Sequence[T] {
	return FromSlice(elements)
}

// Len returns the number of elements in the sequence.
func (s *Sequence[T]) Len() int {
	return s.length
}

// Cap returns the number of elements the sequence can hold without growing.
func (s *Sequence[T]) Cap() int {
	return len(s.storage)
}

// IsEmpty returns true if the sequence does not contain any elements.
func (s *Sequence[T]) IsEmpty() bool {
	return s.length == 0
}

// At returns the element at index i, 0 <= i < Len(). An error wrapping
// ErrIndexOutOfRange is returned otherwise, out-of-range indices are never
// clamped.
func (s *Sequence[T]) At(i int) (T, error) {
	if i < 0 || i >= s.length {
		var zero T
		return zero, fmt.Errorf("%w: index is %d but length is %d", ErrIndexOutOfRange, i, s.length)
	}
	return s.storage[i], nil
}

// UncheckedAt returns the element at index i without validating i against the
// length, the caller is responsible for ensuring 0 <= i < Len(). Violating the
// precondition causes a runtime panic, stale storage beyond the length is
// never returned.
func (s *Sequence[T]) UncheckedAt(i int) T {
	return s.storage[:s.length][i]
}

// SetAt replaces the element at index i, 0 <= i < Len(). An error wrapping
// ErrIndexOutOfRange is returned otherwise. Replacing an element is not a
// structural mutation: iterators remain valid.
func (s *Sequence[T]) SetAt(i int, v T) error {
	if i < 0 || i >= s.length {
		return fmt.Errorf("%w: index is %d but length is %d", ErrIndexOutOfRange, i, s.length)
	}
	s.storage[i] = v
	s.informAboutMutation(NewSetElemAtIndexMutation(i))
	return nil
}

// UncheckedSet replaces the element at index i without validating i against
// the length, the caller is responsible for ensuring 0 <= i < Len(). Violating
// the precondition causes a runtime panic.
func (s *Sequence[T]) UncheckedSet(i int, v T) {
	s.storage[:s.length][i] = v
	s.informAboutMutation(NewSetElemAtIndexMutation(i))
}

// Front returns the first element, ErrEmptySequence is returned if the
// sequence is empty.
func (s *Sequence[T]) Front() (T, error) {
	if s.length == 0 {
		var zero T
		return zero, ErrEmptySequence
	}
	return s.storage[0], nil
}

// Back returns the last element, ErrEmptySequence is returned if the sequence
// is empty.
func (s *Sequence[T]) Back() (T, error) {
	if s.length == 0 {
		var zero T
		return zero, ErrEmptySequence
	}
	return s.storage[s.length-1], nil
}

// Values returns a copy of the elements of the sequence.
func (s *Sequence[T]) Values() []T {
	return utils.CopySlice(s.storage[:s.length])
}

// Clear removes all elements from the sequence, the capacity is kept.
func (s *Sequence[T]) Clear() {
	if s.length == 0 {
		return
	}
	s.zeroRange(0, s.length)
	s.length = 0
	s.version++
	s.informAboutMutation(NewClearAllElemsMutation())
}

func (s *Sequence[T]) String() string {
	return fmt.Sprintf("%v", s.storage[:s.length])
}

// zeroRange resets the slots in [start, end) so that removed elements are no
// longer reachable through the backing storage.
func (s *Sequence[T]) zeroRange(start, end int) {
	var zero T
	for i := start; i < end; i++ {
		s.storage[i] = zero
	}
}
