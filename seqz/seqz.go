// Package seqz provides helpers for building and combining [iter.Seq] sequences.
package seqz

import "iter"

// Of returns a restartable sequence over the given values.
func Of[T any](vals ...T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range vals {
			if !yield(v) {
				return
			}
		}
	}
}

// Generate returns the infinite sequence seed, next(seed), next(next(seed)), …
// Use [Take] or break out of the range loop to stop it.
func Generate[T any](seed T, next func(T) T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := seed; yield(v); v = next(v) {
		}
	}
}

// Take returns a sequence of at most the first n elements of seq.
func Take[T any](seq iter.Seq[T], n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if n <= 0 {
			return
		}
		left := n
		for v := range seq {
			if !yield(v) {
				return
			}
			left--
			if left == 0 {
				return
			}
		}
	}
}
