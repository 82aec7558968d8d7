package seqcoll

import (
	"sync"
)

// Thread safe sequence
type TSSequence[T any] struct {
	seq  *Sequence[T]
	lock sync.RWMutex
}

func NewTSSequence[T any]() *TSSequence[T] {
	return &TSSequence[T]{seq: New[T]()}
}

func NewTSSequenceWithConfig[T any](config SequenceConfig[T]) (*TSSequence[T], error) {
	seq, err := NewWithConfig(config)
	if err != nil {
		return nil, err
	}
	return &TSSequence[T]{seq: seq}, nil
}

func (s *TSSequence[T]) Append(values ...T) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	return s.seq.Append(values...)
}

func (s *TSSequence[T]) Insert(i int, v T) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	return s.seq.Insert(i, v)
}

func (s *TSSequence[T]) InsertSlice(i int, values []T) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	return s.seq.InsertSlice(i, values)
}

func (s *TSSequence[T]) Remove(i int) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	return s.seq.Remove(i)
}

func (s *TSSequence[T]) RemoveRange(start, end int) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	return s.seq.RemoveRange(start, end)
}

// RemoveIf removes all elements for which pred returns true, pred is called
// with the lock held and must not call methods of the sequence.
func (s *TSSequence[T]) RemoveIf(pred func(e T) bool) int {
	s.lock.Lock()
	defer s.lock.Unlock()

	return s.seq.RemoveIf(pred)
}

func (s *TSSequence[T]) Pop() (T, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	return s.seq.Pop()
}

func (s *TSSequence[T]) Dequeue() (T, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	return s.seq.Dequeue()
}

func (s *TSSequence[T]) SetAt(i int, v T) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	return s.seq.SetAt(i, v)
}

func (s *TSSequence[T]) Reserve(n int) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	return s.seq.Reserve(n)
}

func (s *TSSequence[T]) ShrinkToFit() error {
	s.lock.Lock()
	defer s.lock.Unlock()

	return s.seq.ShrinkToFit()
}

func (s *TSSequence[T]) Resize(n int) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	return s.seq.Resize(n)
}

func (s *TSSequence[T]) Rotate(k int) {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.seq.Rotate(k)
}

func (s *TSSequence[T]) Clear() {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.seq.Clear()
}

func (s *TSSequence[T]) At(i int) (T, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return s.seq.At(i)
}

func (s *TSSequence[T]) Front() (T, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return s.seq.Front()
}

func (s *TSSequence[T]) Back() (T, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return s.seq.Back()
}

func (s *TSSequence[T]) Len() int {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return s.seq.Len()
}

func (s *TSSequence[T]) Cap() int {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return s.seq.Cap()
}

func (s *TSSequence[T]) IsEmpty() bool {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return s.seq.IsEmpty()
}

// Values returns a copy of the elements of the sequence.
func (s *TSSequence[T]) Values() []T {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return s.seq.Values()
}

func (s *TSSequence[T]) Stats() Stats {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return s.seq.Stats()
}

func (s *TSSequence[T]) String() string {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return s.seq.String()
}

// ForEach calls fn for each element in index order, fn is called with the lock
// held and must not call methods of the sequence.
func (s *TSSequence[T]) ForEach(fn func(i int, e T) error) error {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return s.seq.ForEach(fn)
}

// Snapshot returns a new detached sequence containing a copy of the elements.
func (s *TSSequence[T]) Snapshot() *Sequence[T] {
	s.lock.RLock()
	defer s.lock.RUnlock()

	return FromSlice(s.seq.storage[:s.seq.length])
}

// Iterator returns an iterator over a snapshot of the elements, mutations
// performed after the call are not visible to the iterator.
func (s *TSSequence[T]) Iterator() *Iterator[T] {
	return s.Snapshot().Iterator()
}
