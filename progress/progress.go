package progress

import (
	"context"
	"sync"
	"time"
)

// Delta represents an incremental counter change emitted by the launcher or
// a trampoline. Fields are signed.
type Delta struct {
	Spawned   int
	Running   int
	Completed int
	Failed    int
	Rejected  int
}

// Progress keeps aggregated thread counters. It is safe for concurrent use.
type Progress struct {
	StartedAt time.Time

	Spawned   int
	Running   int
	Completed int
	Failed    int
	Rejected  int

	sync.Mutex
}

// New returns an empty tracker.
func New() *Progress {
	return &Progress{StartedAt: time.Now()}
}

// Update applies the supplied delta.
func (p *Progress) Update(d Delta) {
	if p == nil {
		return
	}
	p.Lock()
	p.Spawned += d.Spawned
	p.Running += d.Running
	p.Completed += d.Completed
	p.Failed += d.Failed
	p.Rejected += d.Rejected
	p.Unlock()
}

func (p *Progress) copyLocked() Progress {
	return Progress{
		StartedAt: p.StartedAt,
		Spawned:   p.Spawned,
		Running:   p.Running,
		Completed: p.Completed,
		Failed:    p.Failed,
		Rejected:  p.Rejected,
	}
}

// Snapshot returns a copy of the tracker suitable for read-only inspection.
func (p *Progress) Snapshot() Progress {
	if p == nil {
		return Progress{}
	}
	p.Lock()
	defer p.Unlock()
	return p.copyLocked()
}

// Finished returns the number of threads that ran to the end.
func (p *Progress) Finished() int {
	return p.Completed + p.Failed
}

type trackerKeyT struct{}

var trackerKey trackerKeyT

// WithTracker embeds tr in a derived context. Spawns made with that context
// update tr in addition to the launcher's own tracker.
func WithTracker(ctx context.Context, tr *Progress) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, trackerKey, tr)
}

// FromContext extracts the tracker from ctx.
func FromContext(ctx context.Context) (*Progress, bool) {
	if ctx == nil {
		return nil, false
	}
	tr, ok := ctx.Value(trackerKey).(*Progress)
	return tr, ok
}

// UpdateCtx applies d to the tracker carried by ctx, if any.
func UpdateCtx(ctx context.Context, d Delta) {
	if tr, ok := FromContext(ctx); ok {
		tr.Update(d)
	}
}
