// Package collections provides some useful functions for working with data structures
// that contain multiple elements.
//
// Many languages have their own collection library:
//   - C#: https://learn.microsoft.com/en-us/dotnet/csharp/programming-guide/concepts/collections
//   - Rust: https://doc.rust-lang.org/std/collections/index.html
//   - Swift: https://github.com/apple/swift-collections
//   - Kotlin: https://kotlinlang.org/api/latest/jvm/stdlib/kotlin.collections/
//   - Python3: https://docs.python.org/3/library/collections.html
package collections

// Filter iterates over items, returning an array of all items predicate returns truthy for.
func Filter[V any](items []V, predicate func(it V) bool) []V {
	result := make([]V, 0, len(items))
	for _, it := range items {
		if predicate(it) {
			result = append(result, it)
		}
	}
	return result
}

// Map returns a slice containing the results of applying the given transform function
// to each item in the original slice.
func Map[T, R any](items []T, transform func(it T) R) []R {
	res := make([]R, len(items))
	for i, item := range items {
		res[i] = transform(item)
	}
	return res
}

// Last returns the last item matching the given predicate.
// It reports false if no item matches.
func Last[T any](items []T, predicate func(it T) bool) (T, bool) {
	for i := len(items) - 1; i >= 0; i-- {
		if predicate(items[i]) {
			return items[i], true
		}
	}
	var zero T
	return zero, false
}

// All reports whether every item matches the given predicate.
// It returns true for an empty slice.
func All[T any](items []T, predicate func(it T) bool) bool {
	for _, it := range items {
		if !predicate(it) {
			return false
		}
	}
	return true
}

// Distinct returns a slice containing only the first occurrence of each item,
// preserving the original order.
func Distinct[T comparable](items []T) []T {
	seen := make(map[T]struct{}, len(items))
	res := make([]T, 0, len(items))
	for _, it := range items {
		if _, ok := seen[it]; ok {
			continue
		}
		seen[it] = struct{}{}
		res = append(res, it)
	}
	return res
}

// RunningFold returns initial followed by every intermediate result of
// applying op left to right, so the result has len(items)+1 entries and
// ends with the complete fold.
func RunningFold[T, R any](items []T, initial R, op func(acc R, it T) R) []R {
	res := make([]R, 0, len(items)+1)
	res = append(res, initial)
	acc := initial
	for _, it := range items {
		acc = op(acc, it)
		res = append(res, acc)
	}
	return res
}

// IsMirror reports whether the slice reads the same from both ends.
func IsMirror[T comparable](items []T) bool {
	for i, j := 0, len(items)-1; i < j; i, j = i+1, j-1 {
		if items[i] != items[j] {
			return false
		}
	}
	return true
}
