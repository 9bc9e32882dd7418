package collections

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/veltrio/pkg/testingz"
)

func TestFilter(t *testing.T) {
	list := []int{1, 2, 3, 4, 5, 6}
	even := Filter(list, func(it int) bool {
		return it%2 == 0
	})
	assert.Equal(t, []int{2, 4, 6}, even)
}

func TestMap(t *testing.T) {
	ids := []int{1, 2, 3, 4}
	idStrs := Map(ids, func(it int) string { return strconv.Itoa(it) })
	assert.Equal(t, []string{"1", "2", "3", "4"}, idStrs)
}

func TestLast(t *testing.T) {
	list := []int{1, 2, 3, 4, 5, 6}
	testingz.OK(Last(list, func(it int) bool { return it%2 == 0 })).True(t).Equal(6)
	testingz.OK(Last(list, func(it int) bool { return it < 4 })).True(t).Equal(3)
	testingz.OK(Last(list, func(it int) bool { return it > 9 })).False(t).Zero()
}

func TestAll(t *testing.T) {
	assert.True(t, All([]int{2, 4, 6}, func(it int) bool { return it%2 == 0 }))
	assert.False(t, All([]int{2, 3, 6}, func(it int) bool { return it%2 == 0 }))
	assert.True(t, All(nil, func(it int) bool { return false }))
}

func TestDistinct(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, Distinct([]string{"a", "b", "a", "c", "b"}))
	assert.Equal(t, []int{1}, Distinct([]int{1, 1, 1}))
	assert.Empty(t, Distinct([]int{}))
}

func TestRunningFold(t *testing.T) {
	sums := RunningFold([]int{1, 2, 3, 4}, 0, func(acc, it int) int { return acc + it })
	assert.Equal(t, []int{0, 1, 3, 6, 10}, sums)

	words := RunningFold([]string{"b", "c"}, "a", func(acc, it string) string { return acc + it })
	assert.Equal(t, []string{"a", "ab", "abc"}, words)

	assert.Equal(t, []int{9}, RunningFold(nil, 9, func(acc, it int) int { return acc + it }))
}

func TestIsMirror(t *testing.T) {
	assert.True(t, IsMirror([]int{1, 2, 1}))
	assert.True(t, IsMirror([]int{1, 2, 2, 1}))
	assert.False(t, IsMirror([]int{1, 2, 3}))
	assert.True(t, IsMirror([]int{7}))
	assert.True(t, IsMirror([]int{}))
}
