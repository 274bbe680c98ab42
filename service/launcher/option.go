package launcher

import (
	"github.com/rs/zerolog"
	"github.com/viant/threadstart/policy"
	"github.com/viant/threadstart/progress"
	"github.com/viant/threadstart/service/event"
	"github.com/viant/threadstart/service/sink"
)

// Option customises a Launcher.
type Option func(l *Launcher)

// WithThreadCreator replaces the OS thread creator.
func WithThreadCreator(creator ThreadCreator) Option {
	return func(l *Launcher) {
		l.creator = creator
	}
}

// WithMaxThreads limits live threads of the default creator.
func WithMaxThreads(max int) Option {
	return func(l *Launcher) {
		l.creator = NewOSThreads(max)
	}
}

// WithSink sets the destination of callback failures.
func WithSink(s sink.Sink) Option {
	return func(l *Launcher) {
		l.sink = s
	}
}

// WithLogger sets the launcher logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(l *Launcher) {
		l.logger = logger
	}
}

// WithPolicy sets the spawn admission policy.
func WithPolicy(p *policy.Policy) Option {
	return func(l *Launcher) {
		l.policy = p
	}
}

// WithEvents publishes lifecycle events of every thread to srv.
func WithEvents(srv *event.Service) Option {
	return func(l *Launcher) {
		l.events = srv
	}
}

// WithProgress sets the tracker updated on every spawn and exit.
func WithProgress(tracker *progress.Progress) Option {
	return func(l *Launcher) {
		l.progress = tracker
	}
}
