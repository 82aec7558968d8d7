package seqcoll

import (
	"runtime"
	"sync"

	"github.com/stalecu/seqcoll/internal/utils"
)

const (
	//sequences shorter than this are always folded sequentially.
	MIN_PARALLEL_REDUCE_LENGTH = 4096
)

// Reduce folds the sequence into a single value by calling op for each element
// in index order, starting from initial. The evaluation order is
// deterministic: left to right.
func Reduce[T any, U any](s *Sequence[T], initial U, op func(acc U, e T) U) U {
	acc := initial
	for i := 0; i < s.length; i++ {
		acc = op(acc, s.storage[i])
	}
	return acc
}

type ParallelReduceConfig struct {
	// number of worker goroutines, defaults to runtime.NumCPU().
	Workers int

	// minimum length for parallel evaluation, defaults to
	// MIN_PARALLEL_REDUCE_LENGTH. Shorter sequences are folded sequentially.
	MinParallelLength int
}

// ReduceParallel folds the sequence with op, which the caller guarantees to be
// associative and commutative with identity as the neutral element. Only under
// that contract is the result equal to the one of the sequential Reduce. The
// sequence is only read during the evaluation, short sequences are folded
// sequentially.
func ReduceParallel[T any](s *Sequence[T], identity T, op func(a, b T) T) T {
	return ReduceParallelWithConfig(s, identity, op, ParallelReduceConfig{})
}

func ReduceParallelWithConfig[T any](s *Sequence[T], identity T, op func(a, b T) T, config ParallelReduceConfig) T {
	workers := config.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	minParallelLength := config.MinParallelLength
	if minParallelLength <= 0 {
		minParallelLength = MIN_PARALLEL_REDUCE_LENGTH
	}

	if s.length < minParallelLength || workers <= 1 {
		return Reduce(s, identity, op)
	}

	chunkSize := (s.length + workers - 1) / workers
	workers = (s.length + chunkSize - 1) / chunkSize

	partials := make([]T, workers)
	wg := new(sync.WaitGroup)
	wg.Add(workers)

	for w := 0; w < workers; w++ {
		go func(w int) {
			defer wg.Done()
			start := w * chunkSize
			end := utils.Min(start+chunkSize, s.length)

			acc := identity
			for i := start; i < end; i++ {
				acc = op(acc, s.storage[i])
			}
			partials[w] = acc
		}(w)
	}
	wg.Wait()

	result := identity
	for _, partial := range partials {
		result = op(result, partial)
	}
	return result
}
