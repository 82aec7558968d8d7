package seqcoll

import (
	"sort"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/lotsa"
)

func TestTSSequence(t *testing.T) {

	t.Run("base case", func(t *testing.T) {
		seq := NewTSSequence[int]()
		assert.True(t, seq.IsEmpty())

		if !assert.NoError(t, seq.Append(1, 2, 3)) {
			return
		}
		assert.Equal(t, 3, seq.Len())
		assert.Equal(t, []int{1, 2, 3}, seq.Values())

		v, err := seq.At(1)
		require.NoError(t, err)
		assert.Equal(t, 2, v)

		require.NoError(t, seq.SetAt(1, 20))
		require.NoError(t, seq.Insert(0, 0))
		assert.Equal(t, []int{0, 1, 20, 3}, seq.Values())

		front, err := seq.Front()
		require.NoError(t, err)
		assert.Equal(t, 0, front)

		back, err := seq.Back()
		require.NoError(t, err)
		assert.Equal(t, 3, back)

		require.NoError(t, seq.Remove(0))
		require.NoError(t, seq.RemoveRange(1, 2))
		assert.Equal(t, []int{1, 3}, seq.Values())

		popped, err := seq.Pop()
		require.NoError(t, err)
		assert.Equal(t, 3, popped)

		dequeued, err := seq.Dequeue()
		require.NoError(t, err)
		assert.Equal(t, 1, dequeued)
		assert.True(t, seq.IsEmpty())
	})

	t.Run("storage operations", func(t *testing.T) {
		seq := NewTSSequence[int]()

		require.NoError(t, seq.Reserve(100))
		assert.Equal(t, 100, seq.Cap())

		require.NoError(t, seq.Append(1, 2, 3))
		require.NoError(t, seq.ShrinkToFit())
		assert.Equal(t, 3, seq.Cap())

		require.NoError(t, seq.Resize(5))
		assert.Equal(t, []int{1, 2, 3, 0, 0}, seq.Values())

		seq.Rotate(2)
		assert.Equal(t, []int{3, 0, 0, 1, 2}, seq.Values())

		removed := seq.RemoveIf(func(e int) bool { return e == 0 })
		assert.Equal(t, 2, removed)

		seq.Clear()
		assert.True(t, seq.IsEmpty())
		assert.Positive(t, seq.Stats().Allocations)
	})

	t.Run("with config", func(t *testing.T) {
		seq, err := NewTSSequenceWithConfig(SequenceConfig[int]{InitialCapacity: 50})
		if !assert.NoError(t, err) {
			return
		}
		assert.Equal(t, 50, seq.Cap())

		_, err = NewTSSequenceWithConfig(SequenceConfig[int]{
			InitialCapacity: 1,
			Allocator:       &failingAllocator[int]{},
		})
		assert.ErrorIs(t, err, ErrAllocationFailed)
	})

	t.Run("ForEach", func(t *testing.T) {
		seq := NewTSSequence[int]()
		require.NoError(t, seq.Append(1, 2, 3))

		var values []int
		err := seq.ForEach(func(i int, e int) error {
			values = append(values, e)
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 3}, values)
	})

	t.Run("String", func(t *testing.T) {
		seq := NewTSSequence[int]()
		require.NoError(t, seq.Append(1, 2))
		assert.Equal(t, "[1 2]", seq.String())
	})
}

func TestTSSequenceSnapshot(t *testing.T) {
	seq := NewTSSequence[int]()
	require.NoError(t, seq.Append(1, 2, 3))

	snapshot := seq.Snapshot()
	require.NoError(t, seq.Append(4))
	require.NoError(t, seq.SetAt(0, 100))

	//check that the snapshot is detached from the sequence
	assert.Equal(t, []int{1, 2, 3}, snapshot.Values())
	assert.Equal(t, []int{100, 2, 3, 4}, seq.Values())
}

func TestTSSequenceIterator(t *testing.T) {
	seq := NewTSSequence[int]()
	require.NoError(t, seq.Append(1, 2, 3))

	it := seq.Iterator()

	//mutations performed after the iterator creation are not visible to it
	require.NoError(t, seq.Append(4))

	var values []int
	for it.Next() {
		values = append(values, it.Value())
	}
	assert.Equal(t, []int{1, 2, 3}, values)
}

func TestTSSequenceConcurrentAppends(t *testing.T) {
	if testing.Short() {
		t.Skip()
	}

	const ops = 10_000
	const goroutines = 8

	seq := NewTSSequence[int]()
	lotsa.Ops(ops, goroutines, func(i, thread int) {
		_ = seq.Append(i)
	})

	if !assert.Equal(t, ops, seq.Len()) {
		return
	}

	//check that no append was lost or duplicated
	values := seq.Values()
	sort.Ints(values)
	for i := 0; i < ops; i++ {
		if values[i] != i {
			t.Fatalf("expected %d at position %d, got %d", i, i, values[i])
		}
	}
}

func TestTSSequenceConcurrentReadsAndWrites(t *testing.T) {
	if testing.Short() {
		t.Skip()
	}

	const ops = 8_000
	const goroutines = 8

	seq := NewTSSequence[int]()
	require.NoError(t, seq.Append(1))

	appends := int64(0)
	lotsa.Ops(ops, goroutines, func(i, thread int) {
		if thread%2 == 0 {
			if seq.Append(i) == nil {
				atomic.AddInt64(&appends, 1)
			}
			return
		}

		length := seq.Len()
		if length > 0 {
			_, _ = seq.At(i % length)
		}
		_, _ = seq.Front()
		_ = seq.Values()
	})

	assert.EqualValues(t, appends+1, seq.Len())
}

func TestTSSequenceConcurrentPops(t *testing.T) {
	if testing.Short() {
		t.Skip()
	}

	const ops = 10_000
	const goroutines = 8

	seq := NewTSSequence[int]()
	for i := 0; i < ops; i++ {
		require.NoError(t, seq.Append(i))
	}

	succeeded := int64(0)
	lotsa.Ops(ops, goroutines, func(i, thread int) {
		if _, err := seq.Pop(); err == nil {
			atomic.AddInt64(&succeeded, 1)
		}
	})

	assert.EqualValues(t, ops, succeeded)
	assert.True(t, seq.IsEmpty())
}
