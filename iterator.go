package seqcoll

// An Iterator is a cursor over a sequence. It reads the live storage: elements
// appended without a reallocation become visible to the iterator. Any
// operation that reallocates the storage or shifts elements invalidates the
// iterator, using an invalidated iterator panics with ErrIteratorInvalidated.
type Iterator[T any] struct {
	seq     *Sequence[T]
	version uint64
	index   int
}

// Iterator returns a new iterator positioned before the first element.
func (s *Sequence[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{
		seq:     s,
		version: s.version,
		index:   -1,
	}
}

func (it *Iterator[T]) check() {
	if it.version != it.seq.version {
		panic(ErrIteratorInvalidated)
	}
}

// HasNext returns true if the iterator is not positioned at the last element.
func (it *Iterator[T]) HasNext() bool {
	it.check()
	return it.index < it.seq.length-1
}

// Next advances the iterator, false is returned if the sequence is exhausted.
func (it *Iterator[T]) Next() bool {
	it.check()
	if it.index >= it.seq.length-1 {
		return false
	}
	it.index++
	return true
}

// Value returns the element at the current position, Next must have returned
// true before the first call.
func (it *Iterator[T]) Value() T {
	it.check()
	return it.seq.storage[:it.seq.length][it.index]
}

func (it *Iterator[T]) Index() int {
	return it.index
}

// ForEach calls fn for each element in index order. ErrIteratorInvalidated is
// returned if fn structurally mutates the sequence.
func (s *Sequence[T]) ForEach(fn func(i int, e T) error) error {
	version := s.version
	for i := 0; i < s.length; i++ {
		if s.version != version {
			return ErrIteratorInvalidated
		}
		if err := fn(i, s.storage[i]); err != nil {
			return err
		}
	}
	if s.version != version {
		return ErrIteratorInvalidated
	}
	return nil
}
