package queue

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Queue_fifo(t *testing.T) {
	q := New[int]()

	_, _, ok := q.Pop()
	assert.False(t, ok)
	_, ok = q.Peek()
	assert.False(t, ok)

	for i := range 5 {
		assert.Equal(t, i+1, q.Push(i))
	}

	head, ok := q.Peek()
	require.True(t, ok)
	assert.Equal(t, 0, head)

	for i := range 5 {
		item, remaining, ok := q.Pop()
		require.True(t, ok)
		assert.Equal(t, i, item)
		assert.Equal(t, 4-i, remaining)
	}
	assert.Equal(t, 0, q.Len())
}

func Test_Queue_interleaved(t *testing.T) {
	q := New[string]()
	q.Push("a")
	q.Push("b")

	item, _, _ := q.Pop()
	assert.Equal(t, "a", item)

	q.Push("c")
	item, _, _ = q.Pop()
	assert.Equal(t, "b", item)
	item, remaining, _ := q.Pop()
	assert.Equal(t, "c", item)
	assert.Equal(t, 0, remaining)
}

func Test_Queue_concurrentPushKeepsPerProducerOrder(t *testing.T) {
	q := New[[2]int]()
	var wg sync.WaitGroup
	for producer := range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 100 {
				q.Push([2]int{producer, i})
			}
		}()
	}
	wg.Wait()
	require.Equal(t, 400, q.Len())

	last := map[int]int{0: -1, 1: -1, 2: -1, 3: -1}
	for {
		item, _, ok := q.Pop()
		if !ok {
			break
		}
		assert.Greater(t, item[1], last[item[0]])
		last[item[0]] = item[1]
	}
}
