// Package queue provides in-memory FIFO queues.
package queue

import "iter"

// Interface is the write side of a FIFO queue.
type Interface[T any] interface {
	// Enqueue adds an element to the logical back of the queue.
	Enqueue(T)
	// Dequeue removes and returns the logical front element.
	// It reports false if the queue is empty.
	Dequeue() (T, bool)
}

// View is a read-only view of a queue as a finite indexable sequence
// in front-to-back order. Index 0 is the element that would be
// dequeued next.
type View[T any] interface {
	Len() int
	// At returns the element at logical index i.
	// It panics if i is out of range.
	At(i int) T
	// Values returns an iterator over the elements in front-to-back order.
	Values() iter.Seq[T]
}
