package seqcoll

import (
	"golang.org/x/exp/constraints"
)

// A CompareFn is a three-way comparison: it returns a negative integer if a
// sorts before b, zero if the two are equivalent and a positive integer
// otherwise. It must be consistent with a total order and must not mutate the
// compared sequence.
type CompareFn[T any] func(a, b T) int

// OrderedCompare is a CompareFn for ordered types.
func OrderedCompare[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// MinOf returns the smallest element of the sequence in a single pass, the
// first occurrence wins on ties. ErrEmptySequence is returned if the sequence
// is empty.
func MinOf[T any](s *Sequence[T], cmp CompareFn[T]) (T, error) {
	if s.length == 0 {
		var zero T
		return zero, ErrEmptySequence
	}

	min := s.storage[0]
	for i := 1; i < s.length; i++ {
		if cmp(s.storage[i], min) < 0 {
			min = s.storage[i]
		}
	}
	return min, nil
}

// MaxOf returns the greatest element of the sequence in a single pass, the
// first occurrence wins on ties. ErrEmptySequence is returned if the sequence
// is empty.
func MaxOf[T any](s *Sequence[T], cmp CompareFn[T]) (T, error) {
	if s.length == 0 {
		var zero T
		return zero, ErrEmptySequence
	}

	max := s.storage[0]
	for i := 1; i < s.length; i++ {
		if cmp(s.storage[i], max) > 0 {
			max = s.storage[i]
		}
	}
	return max, nil
}

// MinMaxOf returns the smallest and the greatest element of the sequence in a
// single pass, the first occurrences win on ties. ErrEmptySequence is returned
// if the sequence is empty.
func MinMaxOf[T any](s *Sequence[T], cmp CompareFn[T]) (min T, max T, err error) {
	if s.length == 0 {
		err = ErrEmptySequence
		return
	}

	min = s.storage[0]
	max = s.storage[0]
	for i := 1; i < s.length; i++ {
		e := s.storage[i]
		if cmp(e, min) < 0 {
			min = e
		} else if cmp(e, max) > 0 {
			max = e
		}
	}
	return
}
