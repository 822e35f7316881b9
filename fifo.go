// Package fifo provides a minimal first-in-first-out queue backed by
// a singly-linked list.
package fifo

// A Queue is a first-in-first-out collection of values backed by a
// singly-linked chain of nodes that also keeps a reference to the
// last node for quick inserts at the tail. A zero value Queue is
// ready to use.
//
// A Queue is not safe for concurrent use. A caller that shares one
// between goroutines must provide its own synchronization.
type Queue[T any] struct {
	head, tail *node[T]
}

// node is a single element of a Queue's chain. The chain is reached
// only through head and the next links; tail is an alias to the final
// node, never what keeps it reachable.
type node[T any] struct {
	val  T
	next *node[T]
}

// New returns a new, empty queue. It is equivalent to new(Queue[T]).
func New[T any]() *Queue[T] {
	return new(Queue[T])
}

// Push adds v at the tail of the queue.
func (q *Queue[T]) Push(v T) {
	n := &node[T]{val: v}
	if q.tail != nil {
		q.tail.next = n
	} else {
		q.head = n
	}
	q.tail = n
}

// Pop removes the value at the head of the queue and returns it. It
// returns false if the queue was empty.
func (q *Queue[T]) Pop() (v T, ok bool) {
	if q.head == nil {
		return v, false
	}

	n := q.head
	q.head = n.next
	if q.head == nil {
		// n was the last node, so tail still aliases it. Clear it so
		// that a later Push doesn't attach to a node that is no
		// longer in the chain.
		q.tail = nil
	}

	return n.val, true
}
