package util

import (
	"iter"
	"slices"
)

func MapSlice[A, B any](slice []A, f func(A) B) []B {
	mapped := make([]B, len(slice))
	for i, elem := range slice {
		mapped[i] = f(elem)
	}
	return mapped
}

// Permutations yields every ordering of slice, each as a fresh slice
func Permutations[A any](slice []A) iter.Seq[[]A] {
	return func(yield func([]A) bool) {
		permute(slices.Clone(slice), 0, yield)
	}
}

func permute[A any](slice []A, from int, yield func([]A) bool) bool {
	if from >= len(slice)-1 {
		return yield(slices.Clone(slice))
	}
	for i := from; i < len(slice); i++ {
		slice[from], slice[i] = slice[i], slice[from]
		if !permute(slice, from+1, yield) {
			return false
		}
		slice[from], slice[i] = slice[i], slice[from]
	}
	return true
}
