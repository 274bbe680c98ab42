// Package sink is the single destination for callback failures on spawned
// threads. Those failures have no caller to return to, so the trampoline
// reports them here instead of dropping them.
package sink

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	KindLog     = "log"
	KindDiscard = "discard"
)

// Report describes one failed callback run.
type Report struct {
	ThreadID  string
	Callable  string
	Err       error
	Panicked  bool
	Stack     []byte
	StartedAt time.Time
	EndedAt   time.Time
}

// Sink receives reports. Implementations are called from spawned threads and
// must be safe for concurrent use.
type Sink interface {
	Report(ctx context.Context, report *Report)
}

// Func adapts a function to Sink.
type Func func(ctx context.Context, report *Report)

func (f Func) Report(ctx context.Context, report *Report) {
	f(ctx, report)
}

type discard struct{}

func (discard) Report(context.Context, *Report) {}

// Discard drops every report.
var Discard Sink = discard{}

// Log writes reports as error level log entries.
type Log struct {
	logger zerolog.Logger
}

// NewLog returns a sink logging through logger.
func NewLog(logger zerolog.Logger) *Log {
	return &Log{logger: logger}
}

func (l *Log) Report(_ context.Context, report *Report) {
	entry := l.logger.Error().
		Str("thread", report.ThreadID).
		Str("callable", report.Callable).
		Err(report.Err).
		Dur("elapsed", report.EndedAt.Sub(report.StartedAt))
	if report.Panicked {
		entry = entry.Bool("panic", true).Str("stack", string(report.Stack))
	}
	entry.Msg("callback failed")
}

// ByKind returns the sink registered under kind.
func ByKind(kind string, logger zerolog.Logger) (Sink, error) {
	switch strings.ToLower(kind) {
	case "", KindLog:
		return NewLog(logger), nil
	case KindDiscard:
		return Discard, nil
	}
	return nil, fmt.Errorf("unsupported sink: %v", kind)
}
