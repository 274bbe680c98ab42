package model

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/threadstart/internal/clock"
)

func TestThread_Transition(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	now := base
	clock.NowFunc = func() time.Time { return now }
	defer func() { clock.NowFunc = time.Now }()

	thread := NewThread("thread-1", "job")
	assert.Equal(t, StateCreated, thread.State)

	now = base.Add(time.Millisecond)
	require.NoError(t, thread.Transition(StateRunning))
	require.NotNil(t, thread.StartedAt)

	err := thread.Transition(StateTerminated)
	var transitionErr *TransitionError
	require.True(t, errors.As(err, &transitionErr))
	assert.Equal(t, StateRunning, transitionErr.From)

	require.NoError(t, thread.Transition(StateCleanup))
	now = base.Add(5 * time.Millisecond)
	require.NoError(t, thread.Transition(StateTerminated))
	assert.True(t, thread.State.IsFinal())
	assert.Equal(t, 5*time.Millisecond, thread.Elapsed())

	ctx := thread.Context()
	assert.Equal(t, "thread-1", ctx.ThreadID)
	assert.Equal(t, "job", ctx.Callable)
	assert.Equal(t, string(StateTerminated), ctx.EventType)
	assert.Equal(t, 5, ctx.TimeTakenMs)
}

func TestState_CanTransition(t *testing.T) {
	testCases := []struct {
		from, to State
		expect   bool
	}{
		{StateCreated, StateRunning, true},
		{StateCreated, StateRejected, true},
		{StateCreated, StateCleanup, false},
		{StateRunning, StateCleanup, true},
		{StateRunning, StateTerminated, false},
		{StateCleanup, StateTerminated, true},
		{StateTerminated, StateRunning, false},
		{StateRejected, StateRunning, false},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.expect, tc.from.CanTransition(tc.to), "%v -> %v", tc.from, tc.to)
	}
}
