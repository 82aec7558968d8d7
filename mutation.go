package seqcoll

var (
	MUTATION_KIND_NAMES = [...]string{
		UnspecifiedMutation:   "unspecified-mutation",
		SetElemAtIndex:        "set-elem-at-index",
		InsertElemAtIndex:     "insert-elem-at-index",
		InsertSequenceAtIndex: "insert-seq-at-index",
		RemovePosition:        "remove-pos",
		RemovePositionRange:   "remove-pos-range",
		RemoveMatchingElems:   "remove-matching-elems",
		RotateElems:           "rotate-elems",
		ClearAllElems:         "clear-all-elems",
		ResizeLength:          "resize-length",
		GrowStorage:           "grow-storage",
		ShrinkStorage:         "shrink-storage",
	}
)

type MutationKind int

const (
	UnspecifiedMutation MutationKind = iota + 1
	SetElemAtIndex
	InsertElemAtIndex
	InsertSequenceAtIndex
	RemovePosition
	RemovePositionRange
	RemoveMatchingElems
	RotateElems
	ClearAllElems
	ResizeLength
	GrowStorage
	ShrinkStorage
)

func (k MutationKind) String() string {
	return MUTATION_KIND_NAMES[k]
}

func MutationKindFromString(s string) (MutationKind, bool) {
	for i := int(UnspecifiedMutation); i < len(MUTATION_KIND_NAMES); i++ {
		if MUTATION_KIND_NAMES[i] == s {
			return MutationKind(i), true
		}
	}
	return 0, false
}

// A Mutation stores the data about a modification of a sequence, it is
// immutable. The meaning of the fields depends on the kind.
type Mutation struct {
	Kind        MutationKind
	Index       int //affected index or range start, -1 if not applicable
	End         int //exclusive range end, -1 if not applicable
	Count       int //number of affected elements (rotation amount for RotateElems, new length for ResizeLength), -1 if not applicable
	NewCapacity int //capacity after a storage mutation, -1 if not applicable
}

func NewSetElemAtIndexMutation(index int) Mutation {
	return Mutation{Kind: SetElemAtIndex, Index: index, End: -1, Count: 1, NewCapacity: -1}
}

func NewInsertElemAtIndexMutation(index int) Mutation {
	return Mutation{Kind: InsertElemAtIndex, Index: index, End: -1, Count: 1, NewCapacity: -1}
}

func NewInsertSequenceAtIndexMutation(index int, count int) Mutation {
	return Mutation{Kind: InsertSequenceAtIndex, Index: index, End: -1, Count: count, NewCapacity: -1}
}

func NewRemovePositionMutation(index int) Mutation {
	return Mutation{Kind: RemovePosition, Index: index, End: -1, Count: 1, NewCapacity: -1}
}

func NewRemovePositionRangeMutation(start, end int) Mutation {
	return Mutation{Kind: RemovePositionRange, Index: start, End: end, Count: end - start, NewCapacity: -1}
}

func NewRemoveMatchingElemsMutation(count int) Mutation {
	return Mutation{Kind: RemoveMatchingElems, Index: -1, End: -1, Count: count, NewCapacity: -1}
}

func NewRotateElemsMutation(k int) Mutation {
	return Mutation{Kind: RotateElems, Index: -1, End: -1, Count: k, NewCapacity: -1}
}

func NewClearAllElemsMutation() Mutation {
	return Mutation{Kind: ClearAllElems, Index: -1, End: -1, Count: -1, NewCapacity: -1}
}

func NewResizeLengthMutation(newLength int) Mutation {
	return Mutation{Kind: ResizeLength, Index: -1, End: -1, Count: newLength, NewCapacity: -1}
}

func NewGrowStorageMutation(newCapacity int) Mutation {
	return Mutation{Kind: GrowStorage, Index: -1, End: -1, Count: -1, NewCapacity: newCapacity}
}

func NewShrinkStorageMutation(newCapacity int) Mutation {
	return Mutation{Kind: ShrinkStorage, Index: -1, End: -1, Count: -1, NewCapacity: newCapacity}
}

// A MutationCallback is called synchronously after a mutation of the observed
// sequence, it returns false to unregister itself.
type MutationCallback func(m Mutation) (registerAgain bool)

type CallbackHandle int

const FIRST_VALID_CALLBACK_HANDLE = CallbackHandle(1)

// MutationCallbacks stores the registered mutation callbacks of a sequence.
// Like the sequence owning it, it is not safe for concurrent use.
type MutationCallbacks struct {
	nextHandle CallbackHandle
	callbacks  []mutationCallback
}

type mutationCallback struct {
	fn     MutationCallback
	handle CallbackHandle
}

func NewMutationCallbacks() *MutationCallbacks {
	return &MutationCallbacks{nextHandle: FIRST_VALID_CALLBACK_HANDLE}
}

func (t *MutationCallbacks) AddCallback(fn MutationCallback) (handle CallbackHandle) {
	if fn == nil {
		return
	}

	handle = t.nextHandle
	t.nextHandle++

	for i := range t.callbacks {
		if t.callbacks[i].fn == nil {
			t.callbacks[i] = mutationCallback{fn: fn, handle: handle}
			return
		}
	}
	t.callbacks = append(t.callbacks, mutationCallback{fn: fn, handle: handle})
	return
}

func (t *MutationCallbacks) RemoveCallback(handle CallbackHandle) {
	if t == nil {
		return
	}

	for i := range t.callbacks {
		if t.callbacks[i].handle == handle {
			t.callbacks[i] = mutationCallback{}
			break
		}
	}
}

// Call invokes the registered callbacks in registration slot order, callbacks
// that panic or return false are unregistered.
func (t *MutationCallbacks) Call(m Mutation) {
	if t == nil {
		return
	}

	for i, callback := range t.callbacks {
		if callback.fn == nil {
			continue
		}

		func() {
			defer func() {
				if recover() != nil {
					t.callbacks[i] = mutationCallback{}
				}
			}()
			if !callback.fn(m) {
				t.callbacks[i] = mutationCallback{}
			}
		}()
	}
}

// OnMutation registers a callback invoked synchronously after each mutation of
// the sequence, the returned handle can be passed to RemoveMutationCallback.
func (s *Sequence[T]) OnMutation(fn MutationCallback) CallbackHandle {
	if s.mutationCallbacks == nil {
		s.mutationCallbacks = NewMutationCallbacks()
	}
	return s.mutationCallbacks.AddCallback(fn)
}

func (s *Sequence[T]) RemoveMutationCallback(handle CallbackHandle) {
	s.mutationCallbacks.RemoveCallback(handle)
}

func (s *Sequence[T]) informAboutMutation(m Mutation) {
	s.mutationCallbacks.Call(m)
}
