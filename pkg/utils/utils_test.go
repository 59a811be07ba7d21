package utils

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenMap_FirstItemWins(t *testing.T) {
	type item struct {
		key   int
		value string
	}

	items := []item{{1, "first"}, {2, "second"}, {1, "duplicate"}}

	actual := GenMap(items, func(i item) int { return i.key })

	assert.Len(t, actual, 2)
	assert.Equal(t, "first", actual[1].value)
	assert.Equal(t, "second", actual[2].value)
}

func TestAccumulate(t *testing.T) {
	assert.Equal(t, 6, Accumulate([]string{"a", "bb", "ccc"}, func(s string) int { return len(s) }))
	assert.Equal(t, 0, Accumulate([]string{}, func(s string) int { return len(s) }))
}

func TestIndicesWhere(t *testing.T) {
	actual := IndicesWhere([]int{3, 4, 5, 6}, func(i int) bool { return i%2 == 0 })

	assert.Equal(t, []int{1, 3}, actual)
	assert.Empty(t, IndicesWhere([]int{1, 3}, func(i int) bool { return i%2 == 0 }))
}

func TestFilter(t *testing.T) {
	assert.Equal(t, []string{"b", "c"}, Filter([]string{"a", "b", "c"}, func(s string) bool { return s != "a" }))
}

func TestFormatSlice(t *testing.T) {
	assert.Equal(t, "0, 2, 3", FormatSlice([]int{0, 2, 3}, ", "))
	assert.Equal(t, "", FormatSlice([]int{}, ", "))
}

func TestMakeError_WrapsSentinel(t *testing.T) {
	sentinel := errors.New("sentinel")

	err := MakeError(sentinel, "entry %v is %v", 3, "broken")

	assert.ErrorIs(t, err, sentinel)
	assert.Equal(t, "sentinel: entry 3 is broken", err.Error())
}
