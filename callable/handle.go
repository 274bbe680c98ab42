package callable

import (
	"runtime/debug"
	"sync/atomic"
)

// Handle is an owned, reference counted reference to a Callable. A new
// handle holds one reference that belongs to its creator. Each Acquire must be
// paired with exactly one Release.
//
// Acquire and Release are safe for concurrent use.
type Handle struct {
	callable Callable
	name     string
	refs     atomic.Int64
}

// Option customises a Handle.
type Option func(h *Handle)

// WithName labels the handle for logs, policies and events.
func WithName(name string) Option {
	return func(h *Handle) {
		h.name = name
	}
}

// New returns a handle holding one reference owned by the caller.
func New(c Callable, opts ...Option) *Handle {
	h := &Handle{callable: c}
	h.refs.Store(1)
	for _, opt := range opts {
		opt(h)
	}
	if h.name == "" {
		h.name = NameOf(c)
	}
	return h
}

// Wrap converts a host value into a handle holding one reference owned by the
// caller. An existing *Handle is acquired rather than copied, so the caller
// always ends up releasing exactly what Wrap gave it.
func Wrap(v any, opts ...Option) (*Handle, error) {
	if h, ok := v.(*Handle); ok && h != nil {
		h.Acquire()
		return h, nil
	}
	c, err := From(v)
	if err != nil {
		return nil, err
	}
	return New(c, append([]Option{WithName(NameOf(v))}, opts...)...), nil
}

// Name returns the handle label.
func (h *Handle) Name() string {
	return h.name
}

// Refs returns the current reference count.
func (h *Handle) Refs() int64 {
	return h.refs.Load()
}

// Acquire adds one reference. Acquiring a fully released handle is an
// ownership bug and panics; the count stays at zero.
func (h *Handle) Acquire() {
	for {
		n := h.refs.Load()
		if n <= 0 {
			panic("callable: acquire of released handle " + h.name)
		}
		if h.refs.CompareAndSwap(n, n+1) {
			return
		}
	}
}

// Release drops one reference. Releasing more references than were acquired
// panics.
func (h *Handle) Release() {
	if h.refs.Add(-1) < 0 {
		panic("callable: release of unowned reference to " + h.name)
	}
}

// Call invokes the underlying callable. Returned errors and panics are both
// reported as *InvocationError; Call itself never panics.
func (h *Handle) Call() (err error) {
	defer func() {
		if r := recover(); r != nil {
			invocationErr := &InvocationError{Name: h.name, Panic: r, Stack: debug.Stack()}
			if e, ok := r.(error); ok {
				invocationErr.Err = e
			}
			err = invocationErr
		}
	}()
	if e := h.callable.Invoke(); e != nil {
		return &InvocationError{Name: h.name, Err: e}
	}
	return nil
}
