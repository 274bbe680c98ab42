package event

import (
	"context"
	"time"

	"github.com/viant/threadstart/service/messaging"
)

type Publisher[T any] struct {
	queue messaging.Queue[Event[T]]
}

func NewPublisher[T any](queue messaging.Queue[Event[T]]) *Publisher[T] {
	return &Publisher[T]{
		queue: queue,
	}
}

// TryPublish queues the event without blocking; a full queue drops it and
// returns messaging.ErrQueueFull.
func (p *Publisher[T]) TryPublish(event *Event[T]) error {
	event.CreatedAt = time.Now()
	return p.queue.TryPublish(event)
}

func (p *Publisher[T]) Consume(ctx context.Context) (*Event[T], error) {
	msg, err := p.queue.Consume(ctx)
	if err != nil || msg == nil {
		return nil, err
	}
	if err = msg.Ack(); err != nil {
		return nil, err
	}
	return msg.T(), nil
}

// Dropped returns how many events did not fit in the queue.
func (p *Publisher[T]) Dropped() int64 {
	return p.queue.Dropped()
}
