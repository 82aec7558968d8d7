package seqcoll

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

var (
	_ Indexable[bool] = (*BitSequence)(nil)
)

// A BitSequence is a growable sequence of booleans stored as one bit per
// element. It provides the same bounds-checked access, insertion, removal and
// iterator invalidation semantics as a Sequence[bool] with a much smaller
// storage footprint. The storage is managed by the underlying bitset: custom
// allocators and mutation callbacks are not supported.
type BitSequence struct {
	//invariant: bits at positions >= length are zero
	bits    *bitset.BitSet
	length  int
	version uint64
}

func NewBitSequence() *BitSequence {
	return &BitSequence{bits: bitset.New(0)}
}

// BitSequenceFromBools returns a new bit sequence containing the passed
// values.
func BitSequenceFromBools(values ...bool) *BitSequence {
	bits := bitset.New(uint(len(values)))
	for i, v := range values {
		if v {
			bits.Set(uint(i))
		}
	}
	return &BitSequence{bits: bits, length: len(values)}
}

// Len returns the number of elements in the sequence.
func (b *BitSequence) Len() int {
	return b.length
}

// Cap returns the number of bits addressable in the underlying bitset without
// extending it.
func (b *BitSequence) Cap() int {
	return int(b.bits.Len())
}

// IsEmpty returns true if the sequence does not contain any elements.
func (b *BitSequence) IsEmpty() bool {
	return b.length == 0
}

// At returns the element at index i, 0 <= i < Len(). An error wrapping
// ErrIndexOutOfRange is returned otherwise.
func (b *BitSequence) At(i int) (bool, error) {
	if i < 0 || i >= b.length {
		return false, fmt.Errorf("%w: index is %d but length is %d", ErrIndexOutOfRange, i, b.length)
	}
	return b.bits.Test(uint(i)), nil
}

// UncheckedAt returns the element at index i, the caller is responsible for
// ensuring 0 <= i < Len(). Violating the precondition causes a panic.
func (b *BitSequence) UncheckedAt(i int) bool {
	if uint(i) >= uint(b.length) {
		panic(ErrIndexOutOfRange)
	}
	return b.bits.Test(uint(i))
}

// SetAt replaces the element at index i, 0 <= i < Len(). Replacing an element
// is not a structural mutation: iterators remain valid.
func (b *BitSequence) SetAt(i int, v bool) error {
	if i < 0 || i >= b.length {
		return fmt.Errorf("%w: index is %d but length is %d", ErrIndexOutOfRange, i, b.length)
	}
	b.bits.SetTo(uint(i), v)
	return nil
}

// Front returns the first element, ErrEmptySequence is returned if the
// sequence is empty.
func (b *BitSequence) Front() (bool, error) {
	if b.length == 0 {
		return false, ErrEmptySequence
	}
	return b.bits.Test(0), nil
}

// Back returns the last element, ErrEmptySequence is returned if the sequence
// is empty.
func (b *BitSequence) Back() (bool, error) {
	if b.length == 0 {
		return false, ErrEmptySequence
	}
	return b.bits.Test(uint(b.length - 1)), nil
}

// Append adds the passed values to the end of the sequence.
func (b *BitSequence) Append(values ...bool) {
	for _, v := range values {
		index := uint(b.length)
		b.bits.Set(index) //Set extends the bitset, Clear does not
		b.bits.SetTo(index, v)
		b.length++
	}
}

// Insert inserts v at index i, 0 <= i <= Len(). The elements at and after i
// are shifted one position towards the end.
func (b *BitSequence) Insert(i int, v bool) error {
	if i < 0 || i > b.length {
		return fmt.Errorf("%w: index is %d but length is %d", ErrInsertionIndexOutOfRange, i, b.length)
	}
	if i == b.length {
		b.Append(v)
		return nil
	}

	b.bits.InsertAt(uint(i))
	b.bits.SetTo(uint(i), v)
	b.length++
	b.version++
	return nil
}

// Remove removes the element at index i, 0 <= i < Len(). The elements after i
// are shifted one position towards the front.
func (b *BitSequence) Remove(i int) error {
	if i < 0 || i >= b.length {
		return fmt.Errorf("%w: index is %d but length is %d", ErrIndexOutOfRange, i, b.length)
	}
	b.bits.DeleteAt(uint(i))
	b.length--
	b.version++
	return nil
}

// Count returns the number of true elements.
func (b *BitSequence) Count() int {
	return int(b.bits.Count())
}

// Values returns the elements of the sequence as a slice of booleans.
func (b *BitSequence) Values() []bool {
	values := make([]bool, b.length)
	for i := 0; i < b.length; i++ {
		values[i] = b.bits.Test(uint(i))
	}
	return values
}

// Clear removes all elements from the sequence.
func (b *BitSequence) Clear() {
	if b.length == 0 {
		return
	}
	b.bits.ClearAll()
	b.length = 0
	b.version++
}

func (b *BitSequence) String() string {
	return fmt.Sprintf("%v", b.Values())
}

// ForEach calls fn for each element in index order. ErrIteratorInvalidated is
// returned if fn structurally mutates the sequence.
func (b *BitSequence) ForEach(fn func(i int, v bool) error) error {
	version := b.version
	for i := 0; i < b.length; i++ {
		if b.version != version {
			return ErrIteratorInvalidated
		}
		if err := fn(i, b.bits.Test(uint(i))); err != nil {
			return err
		}
	}
	if b.version != version {
		return ErrIteratorInvalidated
	}
	return nil
}

// A BitIterator is a cursor over a bit sequence. Any operation that shifts
// elements invalidates the iterator, using an invalidated iterator panics with
// ErrIteratorInvalidated.
type BitIterator struct {
	seq     *BitSequence
	version uint64
	index   int
}

// Iterator returns a new iterator positioned before the first element.
func (b *BitSequence) Iterator() *BitIterator {
	return &BitIterator{
		seq:     b,
		version: b.version,
		index:   -1,
	}
}

func (it *BitIterator) check() {
	if it.version != it.seq.version {
		panic(ErrIteratorInvalidated)
	}
}

// HasNext returns true if the iterator is not positioned at the last element.
func (it *BitIterator) HasNext() bool {
	it.check()
	return it.index < it.seq.length-1
}

// Next advances the iterator, false is returned if the sequence is exhausted.
func (it *BitIterator) Next() bool {
	it.check()
	if it.index >= it.seq.length-1 {
		return false
	}
	it.index++
	return true
}

// Value returns the element at the current position, Next must have returned
// true before the first call.
func (it *BitIterator) Value() bool {
	it.check()
	return it.seq.UncheckedAt(it.index)
}

func (it *BitIterator) Index() int {
	return it.index
}
