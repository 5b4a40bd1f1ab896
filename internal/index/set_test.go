package index

import (
	"testing"

	"github.com/dball/osinfo/internal/iterator"
	"github.com/stretchr/testify/assert"
)

func TestSet(t *testing.T) {
	set := Strings()
	assert.False(t, set.Insert("x86_64"))
	assert.False(t, set.Insert("aarch64"))
	assert.True(t, set.Insert("x86_64"))
	assert.Equal(t, 2, set.Len())
	assert.Equal(t, []string{"aarch64", "x86_64"}, set.Values())

	t.Run("each is ascending", func(t *testing.T) {
		assert.Equal(t, []string{"aarch64", "x86_64"}, iterator.Drain[string](set))
	})

	t.Run("ints", func(t *testing.T) {
		ints := NewSet[int64](0)
		for _, n := range []int64{5, -1, 3, 5} {
			ints.Insert(n)
		}
		assert.Equal(t, []int64{-1, 3, 5}, ints.Values())
	})
}
