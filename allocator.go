package seqcoll

import (
	"fmt"

	"github.com/stalecu/seqcoll/internal/utils"
)

var (
	_ = []Allocator[int]{heapAllocator[int]{}}
)

// An Allocator provides backing storage for sequences. Implementations are
// used by sequences to obtain new storage blocks during growth, explicit
// reservation and shrinking.
type Allocator[T any] interface {
	// Allocate returns a zeroed slice of exactly n elements (len == cap == n),
	// or an error if the block cannot be provided. A failed allocation must
	// have no side effects.
	Allocate(n int) ([]T, error)
}

// HeapAllocator returns the default allocator, it allocates storage on the
// regular Go heap.
func HeapAllocator[T any]() Allocator[T] {
	return heapAllocator[T]{}
}

type heapAllocator[T any] struct{}

func (heapAllocator[T]) Allocate(n int) (elements []T, err error) {
	if n < 0 {
		panic(ErrNegativeCapacity)
	}

	defer func() {
		//make panics if n exceeds the maximum allocation size.
		if e := recover(); e != nil {
			elements = nil
			err = fmt.Errorf("%w: %w", ErrAllocationFailed, utils.ConvertPanicValueToError(e))
		}
	}()

	return make([]T, n), nil
}
