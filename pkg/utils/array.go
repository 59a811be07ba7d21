package utils

import (
	"golang.org/x/exp/constraints"
)

// Generates a map from a sequence of items and a function that generates a key from an item.
// If two items share a key the first one is kept
func GenMap[T any, Key comparable](input []T, keyFunc func(T) Key) map[Key]T {
	output := make(map[Key]T, len(input))

	for _, value := range input {
		key := keyFunc(value)

		if _, exists := output[key]; !exists {
			output[key] = value
		}
	}

	return output
}

// Reduces a sequence to a value given an accumulation function
func Reduce[T any, U any](input []T, foldFunc func(T, U) U) U {
	var result U

	for _, value := range input {
		result = foldFunc(value, result)
	}

	return result
}

// Reduces a sequence by adding up the value returned by a function applied to each item
func Accumulate[T any, U constraints.Integer | constraints.Float](input []T, value func(T) U) U {
	return Reduce(input, func(item T, current U) U {
		return value(item) + current
	})
}

// Returns the indices of the items satisfying the predicate
func IndicesWhere[T any](input []T, predicate func(T) bool) []int {
	indices := make([]int, 0)

	for i, item := range input {
		if predicate(item) {
			indices = append(indices, i)
		}
	}

	return indices
}
