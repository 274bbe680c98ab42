package event

import (
	"reflect"
	"sync"

	"github.com/viant/threadstart/service/messaging"
	"github.com/viant/threadstart/service/messaging/memory"
)

type dropCounter interface{ Dropped() int64 }

// Service hands out typed publishers backed by in-memory queues.
type Service struct {
	typedPublishers map[reflect.Type]any
	typedListener   map[reflect.Type]any
	mux             *sync.RWMutex
	buffer          int
}

type Option func(s *Service)

// WithBuffer sets the same buffer size for every queue
func WithBuffer(size int) Option {
	return func(s *Service) {
		s.buffer = size
	}
}

func New(opts ...Option) *Service {
	ret := &Service{
		typedPublishers: make(map[reflect.Type]any),
		typedListener:   make(map[reflect.Type]any),
		mux:             &sync.RWMutex{},
	}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

// Dropped returns the number of events dropped across all publishers.
func (s *Service) Dropped() int64 {
	s.mux.RLock()
	defer s.mux.RUnlock()
	var total int64
	for _, publisher := range s.typedPublishers {
		total += publisher.(dropCounter).Dropped()
	}
	return total
}

// Shutdown stops all listeners. Queued events are left in place.
func (s *Service) Shutdown() {
	s.mux.Lock()
	listeners := []interface{ Stop() }{}
	for key, listener := range s.typedListener {
		listeners = append(listeners, listener.(interface{ Stop() }))
		delete(s.typedListener, key)
	}
	s.mux.Unlock()
	for _, listener := range listeners {
		listener.Stop()
	}
}

func QueueOf[T any](s *Service) messaging.Queue[T] {
	cfg := memory.DefaultConfig()
	if s.buffer > 0 {
		cfg.QueueBuffer = s.buffer
	}
	return memory.NewQueue[T](cfg)
}

func keyOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// SetListenerOf replaces the listener for events carrying T.
func SetListenerOf[T any](s *Service, handler func(*Event[T])) {
	key := keyOf[T]()
	publisher := PublisherOf[T](s)
	listener := NewListener[T](publisher, handler)
	s.mux.Lock()
	previous, ok := s.typedListener[key]
	s.typedListener[key] = listener
	listener.Start()
	s.mux.Unlock()
	if ok {
		previous.(*Listener[T]).Stop()
	}
}

// PublisherOf returns a publisher for the provided type
func PublisherOf[T any](s *Service) *Publisher[T] {
	key := keyOf[T]()
	s.mux.RLock()
	ret, ok := s.typedPublishers[key]
	s.mux.RUnlock()
	if ok {
		return ret.(*Publisher[T])
	}
	s.mux.Lock()
	defer s.mux.Unlock()
	if ret, ok = s.typedPublishers[key]; ok {
		return ret.(*Publisher[T])
	}
	publisher := NewPublisher[T](QueueOf[Event[T]](s))
	s.typedPublishers[key] = publisher
	return publisher
}
