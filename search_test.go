package seqcoll

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearch(t *testing.T) {
	seq := Of("ant", "bee", "cat", "bear")

	t.Run("IndexFunc", func(t *testing.T) {
		index := seq.IndexFunc(func(e string) bool {
			return strings.HasPrefix(e, "b")
		})
		assert.Equal(t, 1, index)

		index = seq.IndexFunc(func(e string) bool {
			return e == "dog"
		})
		assert.Equal(t, -1, index)

		assert.Equal(t, -1, New[string]().IndexFunc(func(e string) bool { return true }))
	})

	t.Run("ContainsFunc", func(t *testing.T) {
		assert.True(t, seq.ContainsFunc(func(e string) bool {
			return e == "cat"
		}))
		assert.False(t, seq.ContainsFunc(func(e string) bool {
			return e == "dog"
		}))
	})

	t.Run("CountFunc", func(t *testing.T) {
		count := seq.CountFunc(func(e string) bool {
			return strings.HasPrefix(e, "b")
		})
		assert.Equal(t, 2, count)

		assert.Zero(t, seq.CountFunc(func(e string) bool {
			return false
		}))
	})
}
