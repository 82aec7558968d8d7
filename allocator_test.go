package seqcoll

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeapAllocator(t *testing.T) {
	alloc := HeapAllocator[int]()

	t.Run("base case", func(t *testing.T) {
		block, err := alloc.Allocate(10)
		if !assert.NoError(t, err) {
			return
		}
		assert.Len(t, block, 10)
		assert.Equal(t, 10, cap(block))

		for _, slot := range block {
			assert.Zero(t, slot)
		}
	})

	t.Run("zero elements", func(t *testing.T) {
		block, err := alloc.Allocate(0)
		if !assert.NoError(t, err) {
			return
		}
		assert.Len(t, block, 0)
	})

	t.Run("negative count", func(t *testing.T) {
		assert.PanicsWithError(t, ErrNegativeCapacity.Error(), func() {
			_, _ = alloc.Allocate(-1)
		})
	})
}
