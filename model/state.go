package model

import "fmt"

// State represents a spawned thread lifecycle state.
type State string

const (
	StateCreated    State = "created"
	StateRunning    State = "running"
	StateCleanup    State = "cleanup"
	StateTerminated State = "terminated"
	// StateRejected marks a spawn request that never produced a thread.
	StateRejected State = "rejected"
)

var transitions = map[State][]State{
	StateCreated: {StateRunning, StateRejected},
	StateRunning: {StateCleanup},
	StateCleanup: {StateTerminated},
}

// CanTransition reports whether next directly follows s.
func (s State) CanTransition(next State) bool {
	for _, candidate := range transitions[s] {
		if candidate == next {
			return true
		}
	}
	return false
}

// IsFinal returns true for terminated and rejected states.
func (s State) IsFinal() bool {
	return s == StateTerminated || s == StateRejected
}

// TransitionError reports a lifecycle state change that skips a step.
type TransitionError struct {
	From State
	To   State
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("invalid thread transition %v -> %v", e.From, e.To)
}
