package queue

import (
	"fmt"
	"iter"
	"slices"

	"github.com/veltrio/pkg"
)

// Amortized is an unbounded FIFO queue with O(1) Enqueue and amortized O(1)
// Dequeue. It buffers enqueued elements in one slice and dequeues from a
// second, reversed slice, so the reversal cost of a batch is paid once per
// batch rather than once per element.
//
// The zero value is an empty queue ready to use. An Amortized must not be
// used from multiple goroutines without external synchronization.
type Amortized[T any] struct {
	// in holds the most recently enqueued elements, oldest first.
	// out holds the remaining elements in reverse: the queue's front is
	// at the tail of out, so Dequeue is a pop.
	in  pkg.Slice[T]
	out pkg.Slice[T]
}

// New returns an empty queue.
func New[T any]() *Amortized[T] {
	return new(Amortized[T])
}

// Len returns the number of elements in the queue.
func (q *Amortized[T]) Len() int {
	return len(q.out) + len(q.in)
}

// IsEmpty reports whether the queue holds no elements.
func (q *Amortized[T]) IsEmpty() bool {
	return q.Len() == 0
}

// Enqueue adds x to the logical back of the queue.
func (q *Amortized[T]) Enqueue(x T) {
	q.in.Append(x)
}

// Dequeue removes and returns the logical front element.
// It reports false if the queue is empty.
func (q *Amortized[T]) Dequeue() (T, bool) {
	if len(q.out) == 0 {
		q.refill()
	}
	return q.out.Pop()
}

// refill moves the whole in buffer to out, reversed so that the oldest
// element ends at the pop end. It must only be called with an empty out.
// Each element is transferred at most once between any two refills, which
// is what keeps Dequeue amortized O(1).
func (q *Amortized[T]) refill() {
	slices.Reverse(q.in)
	q.out = q.in
	q.in = nil
}

// Peek returns the logical front element without removing it.
// It reports false if the queue is empty.
func (q *Amortized[T]) Peek() (T, bool) {
	if it, ok := q.out.Last(); ok {
		return it, true
	}
	if len(q.in) > 0 {
		return q.in[0], true
	}
	var zero T
	return zero, false
}

// At returns the element at logical index i, where index 0 is the front.
// It panics if i is out of range: unlike an empty Dequeue, an invalid
// index is a caller bug, so it is not reported as a value.
//
// At never moves elements between the internal buffers, so reads are safe
// to repeat and to interleave with other reads.
func (q *Amortized[T]) At(i int) T {
	if i < 0 || i >= q.Len() {
		panic(fmt.Sprintf("queue: index %d out of range with length %d", i, q.Len()))
	}
	if i < len(q.out) {
		return q.out[len(q.out)-1-i]
	}
	return q.in[i-len(q.out)]
}

// Values returns an iterator over the elements in front-to-back order.
// The iterator is restartable: each use starts at the current front.
// Like At, it never mutates the queue.
func (q *Amortized[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := len(q.out) - 1; i >= 0; i-- {
			if !yield(q.out[i]) {
				return
			}
		}
		for _, it := range q.in {
			if !yield(it) {
				return
			}
		}
	}
}

// All returns an iterator over logical index and element pairs
// in front-to-back order.
func (q *Amortized[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		for it := range q.Values() {
			if !yield(i, it) {
				return
			}
			i++
		}
	}
}

// Grow pre-allocates space so that at least n more elements can be
// enqueued without another allocation.
func (q *Amortized[T]) Grow(n int) {
	q.in = slices.Grow(q.in, n)
}
