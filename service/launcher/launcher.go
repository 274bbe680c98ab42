package launcher

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"github.com/viant/threadstart/callable"
	"github.com/viant/threadstart/internal/idgen"
	"github.com/viant/threadstart/model"
	"github.com/viant/threadstart/policy"
	"github.com/viant/threadstart/progress"
	"github.com/viant/threadstart/service/event"
	"github.com/viant/threadstart/service/messaging"
	"github.com/viant/threadstart/service/sink"
	"github.com/viant/threadstart/tracing"
)

// Launcher spawns detached threads running callables once.
type Launcher struct {
	creator  ThreadCreator
	sink     sink.Sink
	logger   zerolog.Logger
	policy   *policy.Policy
	events   *event.Service
	progress *progress.Progress
}

// spawn is everything the trampoline owns for one thread.
type spawn struct {
	ctx    context.Context
	handle *callable.Handle
	thread *model.Thread
}

// New creates a launcher. Without options it creates unlimited OS threads,
// logs nothing and reports callback failures to a discarded log.
func New(opts ...Option) *Launcher {
	l := &Launcher{
		logger:   zerolog.Nop(),
		progress: progress.New(),
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.creator == nil {
		l.creator = NewOSThreads(0)
	}
	if l.sink == nil {
		l.sink = sink.NewLog(l.logger)
	}
	return l
}

// Progress returns the launcher counters.
func (l *Launcher) Progress() *progress.Progress {
	return l.progress
}

// Start is the host boundary: it checks that v is invocable with zero
// arguments and spawns it. Non-callable values fail with
// callable.ErrNotCallable before any reference is taken.
func (l *Launcher) Start(ctx context.Context, v interface{}) error {
	h, err := callable.Wrap(v)
	if err != nil {
		return err
	}
	defer h.Release()
	return l.Spawn(ctx, h)
}

// Spawn acquires one reference on h and runs it on a new thread. It returns
// as soon as the thread is created. When creation fails the reference is
// released and a *SpawnError is returned.
func (l *Launcher) Spawn(ctx context.Context, h *callable.Handle) (err error) {
	if h == nil {
		return &callable.TypeError{Type: "nil"}
	}
	if ctx == nil {
		ctx = context.Background()
	}
	aThread := model.NewThread(idgen.Thread(), h.Name())
	threadID, name := aThread.ID, aThread.Callable
	ctx, span := tracing.StartSpan(ctx, "launcher.Spawn", "PRODUCER")
	span.WithAttributes(map[string]string{"thread.id": threadID, "callable": name})
	defer func() { tracing.EndSpan(span, err) }()

	if !l.policyFor(ctx).IsAllowed(name) {
		return l.reject(ctx, aThread, ErrSpawnDenied)
	}

	h.Acquire()
	l.publish(aThread)
	l.track(ctx, progress.Delta{Spawned: 1})
	bound := &spawn{ctx: context.WithoutCancel(ctx), handle: h, thread: aThread}
	if cErr := l.creator.Create(func() { l.trampoline(bound) }); cErr != nil {
		h.Release()
		l.track(ctx, progress.Delta{Spawned: -1})
		return l.reject(ctx, aThread, cErr)
	}
	// aThread belongs to the trampoline from here on.
	l.logger.Debug().Str("thread", threadID).Str("callable", name).Msg("thread spawned")
	return nil
}

func (l *Launcher) policyFor(ctx context.Context) *policy.Policy {
	if p := policy.FromContext(ctx); p != nil {
		return p
	}
	return l.policy
}

func (l *Launcher) reject(ctx context.Context, aThread *model.Thread, cause error) error {
	spawnErr := &SpawnError{
		ThreadID: aThread.ID,
		Callable: aThread.Callable,
		Status:   statusOf(cause),
		Err:      cause,
	}
	aThread.SpawnError = spawnErr.Error()
	l.transition(aThread, model.StateRejected)
	l.track(ctx, progress.Delta{Rejected: 1})
	l.logger.Warn().Str("thread", aThread.ID).Str("callable", aThread.Callable).
		Int("status", int(spawnErr.Status)).Err(cause).Msg("thread not created")
	return spawnErr
}

func (l *Launcher) transition(aThread *model.Thread, next model.State) {
	if err := aThread.Transition(next); err != nil {
		l.logger.Error().Str("thread", aThread.ID).Err(err).Msg("lifecycle")
		return
	}
	l.publish(aThread)
}

func (l *Launcher) publish(aThread *model.Thread) {
	if l.events == nil {
		return
	}
	publisher := event.PublisherOf[model.Thread](l.events)
	if err := publisher.TryPublish(event.NewEvent(aThread.Context(), *aThread)); err != nil {
		if errors.Is(err, messaging.ErrQueueFull) {
			l.logger.Debug().Str("thread", aThread.ID).Str("state", string(aThread.State)).Msg("lifecycle event dropped")
			return
		}
		l.logger.Warn().Str("thread", aThread.ID).Err(err).Msg("lifecycle event not published")
	}
}

func (l *Launcher) track(ctx context.Context, delta progress.Delta) {
	l.progress.Update(delta)
	progress.UpdateCtx(ctx, delta)
}
