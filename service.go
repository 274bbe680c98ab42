package threadstart

import (
	"context"
	"io"

	"github.com/rs/zerolog"
	"github.com/viant/threadstart/internal/logging"
	"github.com/viant/threadstart/policy"
	"github.com/viant/threadstart/progress"
	"github.com/viant/threadstart/service/event"
	"github.com/viant/threadstart/service/launcher"
	"github.com/viant/threadstart/service/sink"
	"github.com/viant/threadstart/tracing"
)

// Service is the host facing facade: it owns the launcher and its
// collaborators, built once from a Config.
type Service struct {
	config    *Config
	logger    *zerolog.Logger
	logWriter io.Writer
	sink      sink.Sink
	creator   launcher.ThreadCreator
	policy    *policy.Policy
	events    *event.Service
	progress  *progress.Progress
	launcher  *launcher.Launcher
}

// New creates a service from DefaultConfig and options. It panics only if
// options yield an invalid configuration; use NewFromConfig to get an error.
func New(options ...Option) *Service {
	s, err := NewFromConfig(nil, options...)
	if err != nil {
		panic(err)
	}
	return s
}

// NewFromConfig validates cfg (DefaultConfig when nil) and builds a service.
func NewFromConfig(cfg *Config, options ...Option) (*Service, error) {
	s := &Service{config: cfg}
	for _, option := range options {
		option(s)
	}
	if s.config == nil {
		s.config = DefaultConfig()
	}
	if err := s.config.Validate(); err != nil {
		return nil, err
	}
	if err := s.init(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Service) init() error {
	cfg := s.config
	if s.logger == nil {
		logger := logging.New(cfg.Log, s.logWriter)
		s.logger = &logger
	}
	if s.sink == nil {
		aSink, err := sink.ByKind(cfg.Sink, *s.logger)
		if err != nil {
			return err
		}
		s.sink = aSink
	}
	if s.creator == nil {
		s.creator = launcher.NewOSThreads(cfg.MaxThreads)
	}
	if s.policy == nil {
		s.policy = policy.FromConfig(cfg.Policy)
	}
	if s.events == nil && cfg.Events.Enabled {
		s.events = event.New(event.WithBuffer(cfg.Events.Buffer))
	}
	if s.progress == nil {
		s.progress = progress.New()
	}
	if cfg.Tracing.Enabled {
		if err := tracing.Init(cfg.Tracing.Service, cfg.Tracing.Version, cfg.Tracing.Output); err != nil {
			return err
		}
	}
	options := []launcher.Option{
		launcher.WithLogger(*s.logger),
		launcher.WithSink(s.sink),
		launcher.WithThreadCreator(s.creator),
		launcher.WithPolicy(s.policy),
		launcher.WithProgress(s.progress),
	}
	if s.events != nil {
		options = append(options, launcher.WithEvents(s.events))
	}
	s.launcher = launcher.New(options...)
	return nil
}

// ThreadStart runs v, which must be invocable with zero arguments, on a new
// detached thread and returns without waiting for it.
func (s *Service) ThreadStart(ctx context.Context, v interface{}) error {
	return s.launcher.Start(ctx, v)
}

// Launcher returns the underlying launcher.
func (s *Service) Launcher() *launcher.Launcher {
	return s.launcher
}

// Events returns the lifecycle event service, or nil when events are off.
func (s *Service) Events() *event.Service {
	return s.events
}

// Progress returns the spawn counters.
func (s *Service) Progress() *progress.Progress {
	return s.progress
}

// Config returns the effective configuration.
func (s *Service) Config() *Config {
	return s.config
}

// Shutdown stops event listeners. Running threads are left alone.
func (s *Service) Shutdown() {
	if s.events != nil {
		s.events.Shutdown()
	}
}
