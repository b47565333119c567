package util

import (
	"github.com/stretchr/testify/assert"
	"slices"
	"testing"
)

func TestMapSlice(t *testing.T) {
	assert.Equal(t, []int{2, 4, 6}, MapSlice([]int{1, 2, 3}, func(i int) int { return i * 2 }))
	assert.Empty(t, MapSlice(nil, func(i int) int { return i }))
}

func TestPermutations(t *testing.T) {
	input := []string{"a", "b", "c"}

	perms := slices.Collect(Permutations(input))

	assert.ElementsMatch(t, [][]string{
		{"a", "b", "c"},
		{"a", "c", "b"},
		{"b", "a", "c"},
		{"b", "c", "a"},
		{"c", "b", "a"},
		{"c", "a", "b"},
	}, perms)
	assert.Equal(t, []string{"a", "b", "c"}, input)
	assert.Len(t, slices.Collect(Permutations([]int{})), 1)
}

func TestPermutationsStopsEarly(t *testing.T) {
	count := 0
	for range Permutations([]int{1, 2, 3, 4}) {
		count++
		if count == 2 {
			break
		}
	}
	assert.Equal(t, 2, count)
}
