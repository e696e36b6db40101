package datastructures

import "sort"

// Return a slice of elements that satisfy the predicate
func Filter[T any](slice []T, predicate func(t T) bool) []T {
	res := make([]T, 0)
	for _, elem := range slice {
		if predicate(elem) {
			res = append(res, elem)
		}
	}
	return res
}

// Return a slice of elements in 'slice' to which we applied 'mapping'
func Map[T any, S any](slice []T, mapping func(t T) S) []S {
	res := make([]S, len(slice))
	for idx, elem := range slice {
		res[idx] = mapping(elem)
	}
	return res
}

// Returns the sum of 'value' over the elements of 'slice'
func Sum[T any](slice []T, value func(t T) float64) float64 {
	total := 0.0
	for _, elem := range slice {
		total += value(elem)
	}
	return total
}

// Returns the first n elements of 'slice' ordered by 'less'. The input slice
// is left untouched. A negative n returns every element.
func TopN[T any](slice []T, n int, less func(a, b T) bool) []T {
	res := make([]T, len(slice))
	copy(res, slice)
	sort.SliceStable(res, func(i, j int) bool {
		return less(res[i], res[j])
	})
	if n >= 0 && n < len(res) {
		res = res[:n]
	}
	return res
}

// Set structures. Wraps map[T]struct{}
type Set[T comparable] map[T]struct{}

// Creates a new empty set
func EmptySet[T comparable]() Set[T] {
	return make(map[T]struct{})
}

// Add an element to the set
func (s Set[T]) Add(t T) {
	s[t] = struct{}{}
}

// Returns true iff s contains t
func (s Set[T]) Contains(t T) bool {
	_, ok := s[t]
	return ok
}

// Returns the number of elements in the set s
func (s Set[T]) Size() int {
	return len(s)
}

// Returns an array of elements in s
func (s Set[T]) ToArray() []T {
	res := make([]T, 0, s.Size())
	for elem := range s {
		res = append(res, elem)
	}
	return res
}

// Returns a copy of s. The copy of a nil set is an empty set.
func (s Set[T]) Clone() Set[T] {
	res := make(Set[T], len(s))
	for elem := range s {
		res[elem] = struct{}{}
	}
	return res
}
