package seqcoll

import (
	"github.com/stalecu/seqcoll/internal/utils"
)

// Rotate rotates the sequence in place k positions towards the front: the
// element at index k becomes the first element. Negative values of k rotate
// towards the back and k is normalized modulo the length, rotating an empty
// sequence is a no-op. The rotation is performed as three reversals: a single
// pass over the elements with no extra storage. Rotation shifts elements and
// therefore invalidates iterators.
func (s *Sequence[T]) Rotate(k int) {
	if s.length <= 1 {
		return
	}

	k %= s.length
	if k < 0 {
		k += s.length
	}
	if k == 0 {
		return
	}

	live := s.storage[:s.length]
	utils.Reverse(live[:k])
	utils.Reverse(live[k:])
	utils.Reverse(live)

	s.stats.ElementCopies += uint64(s.length)
	s.version++
	s.informAboutMutation(NewRotateElemsMutation(k))
}
