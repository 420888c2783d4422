package queue

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInMemoryQueue_ReadAllMessagesKeepsOrder(t *testing.T) {
	q := NewInMemoryQueue[int](4)
	for i := 1; i <= 3; i++ {
		require.NoError(t, q.Enqueue(i))
	}
	assert.Equal(t, 3, q.Size())
	assert.Equal(t, []int{1, 2, 3}, q.ReadAllMessages())
	assert.Equal(t, 0, q.Size())
	assert.Empty(t, q.ReadAllMessages())
}

func TestInMemoryQueue_Full(t *testing.T) {
	q := NewInMemoryQueue[string](1)
	require.NoError(t, q.Enqueue("a"))
	assert.ErrorIs(t, q.Enqueue("b"), ErrQueueFull)
	assert.Equal(t, []string{"a"}, q.ReadAllMessages())
}

func TestInMemoryQueue_DefaultSize(t *testing.T) {
	q := NewInMemoryQueue[int](0)
	for i := 0; i < QueueBufferSize; i++ {
		require.NoError(t, q.Enqueue(i))
	}
	assert.ErrorIs(t, q.Enqueue(0), ErrQueueFull)
	q.ClearQueue()
	assert.Equal(t, 0, q.Size())
}

func TestInMemoryQueue_ConcurrentProducers(t *testing.T) {
	q := NewInMemoryQueue[int](100)
	var wg sync.WaitGroup
	for p := 0; p < 4; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 25; i++ {
				assert.NoError(t, q.Enqueue(i))
			}
		}()
	}
	wg.Wait()
	assert.Len(t, q.ReadAllMessages(), 100)
}
