package launcher

import (
	"context"
	"errors"

	"github.com/viant/threadstart/callable"
	"github.com/viant/threadstart/internal/clock"
	"github.com/viant/threadstart/model"
	"github.com/viant/threadstart/progress"
	"github.com/viant/threadstart/service/sink"
	"github.com/viant/threadstart/tracing"
)

// trampoline is the entry point of every spawned thread. It owns one
// reference on s.handle and releases it exactly once, after the callable
// returned, failed or panicked.
func (l *Launcher) trampoline(s *spawn) {
	ctx, span := tracing.StartSpan(s.ctx, "thread.run", "CONSUMER")
	span.WithAttributes(map[string]string{"thread.id": s.thread.ID, "callable": s.thread.Callable})
	var err error
	defer func() {
		l.cleanup(ctx, s, err)
		tracing.EndSpan(span, err)
	}()

	l.transition(s.thread, model.StateRunning)
	span.AddEvent(string(model.StateRunning))
	l.track(ctx, progress.Delta{Running: 1})
	if err = s.handle.Call(); err != nil {
		l.report(ctx, s, err)
	}
}

func (l *Launcher) cleanup(ctx context.Context, s *spawn, err error) {
	l.transition(s.thread, model.StateCleanup)
	s.handle.Release()
	delta := progress.Delta{Running: -1, Completed: 1}
	if err != nil {
		s.thread.Error = err.Error()
		delta = progress.Delta{Running: -1, Failed: 1}
	}
	l.track(ctx, delta)
	l.transition(s.thread, model.StateTerminated)
	l.logger.Debug().Str("thread", s.thread.ID).Str("callable", s.thread.Callable).
		Dur("elapsed", s.thread.Elapsed()).Bool("failed", err != nil).Msg("thread exited")
}

// report hands err to the sink. A panicking sink is logged and otherwise
// ignored so that cleanup still runs.
func (l *Launcher) report(ctx context.Context, s *spawn, err error) {
	defer func() {
		if r := recover(); r != nil {
			l.logger.Error().Str("thread", s.thread.ID).Interface("panic", r).Msg("error sink panicked")
		}
	}()
	report := &sink.Report{
		ThreadID: s.thread.ID,
		Callable: s.thread.Callable,
		Err:      err,
		EndedAt:  clock.Now(),
	}
	if s.thread.StartedAt != nil {
		report.StartedAt = *s.thread.StartedAt
	}
	var invocationErr *callable.InvocationError
	if errors.As(err, &invocationErr) {
		report.Panicked = invocationErr.Panicked()
		report.Stack = invocationErr.Stack
		s.thread.Panicked = report.Panicked
	}
	l.sink.Report(ctx, report)
}
