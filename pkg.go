// Package pkg provides some basic utilities.
package pkg

// Slice is a generic slice type that allows operations on slices via pointers.
type Slice[T any] []T

func (a *Slice[T]) Append(elems ...T) {
	*a = append(*a, elems...)
}

func (a *Slice[T]) Get() []T {
	return *a
}

func (a *Slice[T]) Len() int {
	return len(*a)
}

// Pop removes and returns the last element.
// It reports false if the slice is empty.
func (a *Slice[T]) Pop() (T, bool) {
	var zero T
	if len(*a) == 0 {
		return zero, false
	}
	last := len(*a) - 1
	it := (*a)[last]
	(*a)[last] = zero // Drop the reference so the element can be collected.
	*a = (*a)[:last]
	return it, true
}

// Last returns the last element without removing it.
// It reports false if the slice is empty.
func (a *Slice[T]) Last() (T, bool) {
	if len(*a) == 0 {
		var zero T
		return zero, false
	}
	return (*a)[len(*a)-1], true
}
