package threadstart

import (
	"io"

	"github.com/rs/zerolog"
	"github.com/viant/threadstart/policy"
	"github.com/viant/threadstart/progress"
	"github.com/viant/threadstart/service/event"
	"github.com/viant/threadstart/service/launcher"
	"github.com/viant/threadstart/service/sink"
)

// Option customises a Service.
type Option func(s *Service)

// WithConfig replaces the whole configuration.
func WithConfig(cfg *Config) Option {
	return func(s *Service) {
		s.config = cfg
	}
}

// WithLogger overrides the logger built from the log configuration.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Service) {
		s.logger = &logger
	}
}

// WithLogWriter sets the destination of the configured logger.
func WithLogWriter(w io.Writer) Option {
	return func(s *Service) {
		s.logWriter = w
	}
}

// WithSink overrides the configured error sink.
func WithSink(aSink sink.Sink) Option {
	return func(s *Service) {
		s.sink = aSink
	}
}

// WithThreadCreator overrides the OS thread creator.
func WithThreadCreator(creator launcher.ThreadCreator) Option {
	return func(s *Service) {
		s.creator = creator
	}
}

// WithPolicy overrides the configured spawn policy.
func WithPolicy(p *policy.Policy) Option {
	return func(s *Service) {
		s.policy = p
	}
}

// WithEvents publishes lifecycle events to srv, enabling events regardless
// of configuration.
func WithEvents(srv *event.Service) Option {
	return func(s *Service) {
		s.events = srv
	}
}

// WithProgress sets the tracker updated by every spawn.
func WithProgress(tracker *progress.Progress) Option {
	return func(s *Service) {
		s.progress = tracker
	}
}
