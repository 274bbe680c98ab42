package event

import (
	"context"
	"sync"
)

// Listener consumes events from a publisher on its own goroutine and hands
// them to handler until stopped.
type Listener[T any] struct {
	publisher *Publisher[T]
	handler   func(*Event[T])
	mux       sync.Mutex
	cancel    context.CancelFunc
	done      chan struct{}
}

func NewListener[T any](publisher *Publisher[T], handler func(*Event[T])) *Listener[T] {
	return &Listener[T]{
		publisher: publisher,
		handler:   handler,
	}
}

// Start launches the consuming goroutine; subsequent calls are no-ops.
func (l *Listener[T]) Start() {
	l.mux.Lock()
	defer l.mux.Unlock()
	if l.done != nil {
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	l.cancel = cancel
	l.done = make(chan struct{})
	go l.run(ctx, l.done)
}

// Stop cancels the listener and waits for the consuming goroutine to exit.
func (l *Listener[T]) Stop() {
	l.mux.Lock()
	cancel, done := l.cancel, l.done
	l.mux.Unlock()
	if done == nil {
		return
	}
	cancel()
	<-done
}

func (l *Listener[T]) run(ctx context.Context, done chan struct{}) {
	defer close(done)
	for {
		event, err := l.publisher.Consume(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			continue
		}
		if event != nil {
			l.handler(event)
		}
	}
}
