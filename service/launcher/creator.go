package launcher

import (
	"runtime"
	"sync/atomic"
	"syscall"
)

// ThreadCreator starts entry on a new thread of execution. It must not wait
// for entry to run and must not keep any handle to the thread. A non-nil
// error means entry will never run.
type ThreadCreator interface {
	Create(entry func()) error
}

// CreatorFunc adapts a function to ThreadCreator.
type CreatorFunc func(entry func()) error

func (f CreatorFunc) Create(entry func()) error {
	return f(entry)
}

// OSThreads creates one dedicated OS thread per entry: the goroutine locks
// itself to its thread and never unlocks, so the runtime terminates that
// thread once entry returns.
type OSThreads struct {
	max  int64
	live atomic.Int64
}

// NewOSThreads returns a creator allowing at most max live threads; zero or
// less means no limit. Beyond the limit Create fails with EAGAIN.
func NewOSThreads(max int) *OSThreads {
	return &OSThreads{max: int64(max)}
}

func (o *OSThreads) Create(entry func()) error {
	if n := o.live.Add(1); o.max > 0 && n > o.max {
		o.live.Add(-1)
		return syscall.EAGAIN
	}
	go func() {
		runtime.LockOSThread()
		defer o.live.Add(-1)
		entry()
	}()
	return nil
}

// Live returns the number of threads currently running entries.
func (o *OSThreads) Live() int {
	return int(o.live.Load())
}
