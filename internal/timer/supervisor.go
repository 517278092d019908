// Package timer runs the cooking session's event loop. One goroutine owns
// the session state and serializes the 1-second tick, user intents,
// speech completion events and deferred tasks.
package timer

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/hammamikhairi/stovetop/internal/domain"
	"github.com/hammamikhairi/stovetop/internal/logger"
)

// ErrStopped is returned when submitting to a supervisor whose loop has exited.
var ErrStopped = errors.New("timer supervisor stopped")

// Handler owns the session state. Every method is called from the
// supervisor goroutine, never concurrently.
type Handler interface {
	Tick()
	HandleIntent(domain.Intent)
	HandleSpeech(domain.SpeechEvent)
	// Finished reports whether the loop should exit.
	Finished() bool
}

// Option configures the supervisor.
type Option func(*Supervisor)

// WithTickInterval sets the countdown tick. Defaults to one second.
func WithTickInterval(d time.Duration) Option {
	return func(s *Supervisor) {
		s.tickInterval = d
	}
}

// WithSpeechEvents feeds utterance completion events into the loop.
func WithSpeechEvents(ch <-chan domain.SpeechEvent) Option {
	return func(s *Supervisor) {
		s.speech = ch
	}
}

// WithObserver registers a callback run on the loop goroutine after every
// handled event, typically to redraw the screen.
func WithObserver(fn func()) Option {
	return func(s *Supervisor) {
		s.observer = fn
	}
}

// Supervisor is the session event loop.
type Supervisor struct {
	handler      Handler
	log          *logger.Logger
	tickInterval time.Duration
	speech       <-chan domain.SpeechEvent
	observer     func()

	intents chan domain.Intent
	tasks   chan func()
	done    chan struct{}

	mu      sync.Mutex
	running bool
	cancel  context.CancelFunc
}

// New creates a supervisor driving handler.
func New(handler Handler, log *logger.Logger, opts ...Option) *Supervisor {
	s := &Supervisor{
		handler:      handler,
		log:          log,
		tickInterval: 1 * time.Second,
		intents:      make(chan domain.Intent, 8),
		tasks:        make(chan func(), 16),
		done:         make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start begins the loop. Non-blocking. A supervisor runs once; use Done to
// wait for it to exit.
func (s *Supervisor) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		s.log.Warn("timer supervisor already running")
		return
	}

	childCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.running = true

	go s.loop(childCtx)

	s.log.Info("timer supervisor started (tick=%s)", s.tickInterval)
}

// Stop cancels the loop. Safe to call more than once.
func (s *Supervisor) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}

	s.cancel()
	s.running = false
	s.log.Info("timer supervisor stopped")
}

// Done is closed once the loop has exited.
func (s *Supervisor) Done() <-chan struct{} {
	return s.done
}

// Submit queues an intent for the loop.
func (s *Supervisor) Submit(ctx context.Context, in domain.Intent) error {
	select {
	case s.intents <- in:
		return nil
	case <-s.done:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Post runs fn on the loop goroutine. Dropped if the loop has exited.
func (s *Supervisor) Post(fn func()) {
	select {
	case s.tasks <- fn:
	case <-s.done:
	}
}

// Scheduler returns a scheduler whose tasks run on this loop.
func (s *Supervisor) Scheduler() *Scheduler {
	return NewScheduler(s.Post)
}

func (s *Supervisor) loop(ctx context.Context) {
	defer close(s.done)

	ticker := time.NewTicker(s.tickInterval)
	defer ticker.Stop()

	speech := s.speech
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.handler.Tick()
		case in := <-s.intents:
			s.log.Debug("intent %s", in.Type)
			s.handler.HandleIntent(in)
		case ev, ok := <-speech:
			if !ok {
				speech = nil
				continue
			}
			s.handler.HandleSpeech(ev)
		case fn := <-s.tasks:
			fn()
		}

		if s.observer != nil {
			s.observer()
		}
		if s.handler.Finished() {
			s.log.Info("session finished, leaving timer loop")
			return
		}
	}
}
