package seqcoll

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReduce(t *testing.T) {

	t.Run("base case", func(t *testing.T) {
		seq := Of(1, 2, 3, 4, 5)

		sum := Reduce(seq, 0, func(acc int, e int) int {
			return acc + e
		})
		assert.Equal(t, 15, sum)
	})

	t.Run("empty sequence", func(t *testing.T) {
		seq := New[int]()

		result := Reduce(seq, 100, func(acc int, e int) int {
			return acc + e
		})
		assert.Equal(t, 100, result)
	})

	t.Run("the accumulator type can differ from the element type", func(t *testing.T) {
		seq := Of(1, 2, 3)

		concatenated := Reduce(seq, "", func(acc string, e int) string {
			return acc + strconv.Itoa(e)
		})
		assert.Equal(t, "123", concatenated)
	})

	t.Run("the fold is sequential and left to right", func(t *testing.T) {
		seq := Of(5, 23, 2, 17)
		subtract := func(acc int, e int) int {
			return acc - e
		}

		//0 - 5 - 23 - 2 - 17
		for i := 0; i < 3; i++ {
			assert.Equal(t, -47, Reduce(seq, 0, subtract))
		}
	})
}

func TestReduceParallel(t *testing.T) {
	sum := func(a, b int) int {
		return a + b
	}

	t.Run("short sequences are folded sequentially", func(t *testing.T) {
		seq := Of(1, 2, 3)
		assert.Equal(t, 6, ReduceParallel(seq, 0, sum))
	})

	t.Run("empty sequence", func(t *testing.T) {
		assert.Equal(t, 0, ReduceParallel(New[int](), 0, sum))
	})

	t.Run("associative commutative operations match the sequential fold", func(t *testing.T) {
		//the sizes exercise chunk remainders
		for _, size := range []int{4096, 5000, 10_000, 99_991} {
			seq := New[int]()
			for i := 0; i < size; i++ {
				require.NoError(t, seq.Append(i))
			}

			sequential := Reduce(seq, 0, func(acc int, e int) int { return acc + e })
			parallel := ReduceParallel(seq, 0, sum)
			assert.Equal(t, sequential, parallel, "size %d", size)
		}
	})

	t.Run("explicit worker count", func(t *testing.T) {
		seq := New[int]()
		for i := 1; i <= 10_000; i++ {
			require.NoError(t, seq.Append(i))
		}

		for _, workers := range []int{1, 2, 3, 8, 64} {
			result := ReduceParallelWithConfig(seq, 0, sum, ParallelReduceConfig{
				Workers:           workers,
				MinParallelLength: 1,
			})
			assert.Equal(t, 50_005_000, result, "workers %d", workers)
		}
	})

	t.Run("more workers than elements", func(t *testing.T) {
		seq := Of(1, 2, 3)

		result := ReduceParallelWithConfig(seq, 0, sum, ParallelReduceConfig{
			Workers:           64,
			MinParallelLength: 1,
		})
		assert.Equal(t, 6, result)
	})

	t.Run("non associative operations diverge from the sequential fold", func(t *testing.T) {
		seq := New[int]()
		for i := 1; i <= 10; i++ {
			require.NoError(t, seq.Append(i))
		}
		subtract := func(a, b int) int {
			return a - b
		}

		sequential := Reduce(seq, 0, subtract)
		assert.Equal(t, -55, sequential)

		//each chunk folds to the negated chunk sum and the combination step
		//subtracts the partials from the identity, so the signs flip back.
		parallel := ReduceParallelWithConfig(seq, 0, subtract, ParallelReduceConfig{
			Workers:           4,
			MinParallelLength: 1,
		})
		assert.Equal(t, 55, parallel)
		assert.NotEqual(t, sequential, parallel)
	})
}
