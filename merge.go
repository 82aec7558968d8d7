package seqcoll

import (
	"github.com/stalecu/seqcoll/internal/utils"
)

// Merge returns a new sequence containing the elements of a and b, both sorted
// under cmp, in sorted order. The merge is stable and ties are resolved in
// favor of a: an element of b is only taken while it sorts strictly before the
// current element of a. The result capacity is reserved in a single
// allocation. The ordering of the output is unspecified if an input is not
// sorted under cmp.
func Merge[T any](a, b *Sequence[T], cmp CompareFn[T]) (*Sequence[T], error) {
	result := New[T]()
	if err := result.Reserve(a.length + b.length); err != nil {
		return nil, err
	}

	i, j := 0, 0
	for i < a.length && j < b.length {
		if cmp(b.storage[j], a.storage[i]) < 0 {
			utils.PanicIfErr(result.Append(b.storage[j]))
			j++
		} else {
			utils.PanicIfErr(result.Append(a.storage[i]))
			i++
		}
	}

	if i < a.length {
		utils.PanicIfErr(result.Append(a.storage[i:a.length]...))
	}
	if j < b.length {
		utils.PanicIfErr(result.Append(b.storage[j:b.length]...))
	}
	return result, nil
}
