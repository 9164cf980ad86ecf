// Package queue holds pending items in strict insertion order.
package queue

import (
	"sync"

	"github.com/gammazero/deque"
)

// Queue is a goroutine-safe FIFO. Items can only leave it through Pop,
// there is no way to remove or reorder a queued item.
type Queue[T any] struct {
	mu    sync.Mutex
	items deque.Deque[T]
}

func New[T any]() *Queue[T] {
	return &Queue[T]{}
}

// Push appends item to the tail and returns the new length.
func (q *Queue[T]) Push(item T) int {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.items.PushBack(item)
	return q.items.Len()
}

// Pop removes the head. The returned length is what remains queued.
func (q *Queue[T]) Pop() (T, int, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.items.Len() == 0 {
		var empty T
		return empty, 0, false
	}
	item := q.items.PopFront()
	return item, q.items.Len(), true
}

func (q *Queue[T]) Peek() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.items.Len() == 0 {
		var empty T
		return empty, false
	}
	return q.items.Front(), true
}

func (q *Queue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return q.items.Len()
}
