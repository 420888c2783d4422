package queue

import "errors"

// ErrQueueFull is returned when an item is offered to a full queue.
var ErrQueueFull = errors.New("queue is full")

// Queue is a FIFO buffer between a producer and the update loop.
type Queue[T any] interface {
	Enqueue(item T) error
	Size() int
	ReadAllMessages() []T
	ClearQueue()
}
