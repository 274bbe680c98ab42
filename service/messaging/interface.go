package messaging

import (
	"context"
	"errors"
)

// ErrQueueFull is returned by TryPublish when the queue cannot accept a
// message without blocking.
var ErrQueueFull = errors.New("messaging: queue full")

// Queue represents an abstract, lossy message queue for any payload type
type Queue[T any] interface {
	// TryPublish adds a new message without blocking.
	TryPublish(t *T) error

	// Consume retrieves a single message from the queue
	Consume(ctx context.Context) (Message[T], error)

	// Dropped returns how many messages TryPublish rejected
	Dropped() int64
}

// Message represents a message retrieved from a queue
type Message[T any] interface {
	// T returns the payload of this message
	T() *T

	// Ack acknowledges processing of this message
	Ack() error
}
