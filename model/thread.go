package model

import (
	"time"

	"github.com/viant/threadstart/internal/clock"
	"github.com/viant/threadstart/service/event"
)

// Thread is the record of a single spawn. It is owned by whichever side
// currently drives it (the launcher until creation, the trampoline after) and
// is never shared for writing.
type Thread struct {
	ID         string     `json:"id"`
	Callable   string     `json:"callable"`
	State      State      `json:"state"`
	CreatedAt  time.Time  `json:"createdAt"`
	StartedAt  *time.Time `json:"startedAt,omitempty"`
	EndedAt    *time.Time `json:"endedAt,omitempty"`
	Error      string     `json:"error,omitempty"`
	Panicked   bool       `json:"panicked,omitempty"`
	SpawnError string     `json:"spawnError,omitempty"`
}

// NewThread creates a thread record in the created state.
func NewThread(id, callable string) *Thread {
	return &Thread{
		ID:        id,
		Callable:  callable,
		State:     StateCreated,
		CreatedAt: clock.Now(),
	}
}

// Transition moves the thread to next, stamping start and end times.
func (t *Thread) Transition(next State) error {
	if !t.State.CanTransition(next) {
		return &TransitionError{From: t.State, To: next}
	}
	now := clock.Now()
	switch next {
	case StateRunning:
		t.StartedAt = &now
	case StateTerminated, StateRejected:
		t.EndedAt = &now
	}
	t.State = next
	return nil
}

// Elapsed returns the time between creation and the end of the thread, or
// until now while it is still alive.
func (t *Thread) Elapsed() time.Duration {
	if t.EndedAt != nil {
		return t.EndedAt.Sub(t.CreatedAt)
	}
	return clock.Since(t.CreatedAt)
}

// Context returns event context describing the current state.
func (t *Thread) Context() *event.Context {
	return &event.Context{
		ThreadID:    t.ID,
		Callable:    t.Callable,
		EventType:   string(t.State),
		TimeTakenMs: int(t.Elapsed().Milliseconds()),
	}
}
