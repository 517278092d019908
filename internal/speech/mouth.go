package speech

import (
	"context"
	"sync"

	"github.com/hammamikhairi/stovetop/internal/domain"
	"github.com/hammamikhairi/stovetop/internal/logger"
)

// Compile-time interface check.
var _ domain.Speaker = (*Mouth)(nil)

// MouthOption configures the Mouth.
type MouthOption func(*Mouth)

// WithCacheDir enables the on-disk audio cache.
func WithCacheDir(dir string) MouthOption {
	return func(m *Mouth) {
		m.cacheDir = dir
	}
}

// Mouth is the synthesized voice channel. One utterance is in flight at a
// time: Speak interrupts whatever is playing, so the most recent line
// wins. Each utterance reports exactly one SpeechEvent.
//
// Synthesis and playback failures are logged and reported as finished.
type Mouth struct {
	tts      Synthesizer
	player   AudioPlayer
	log      *logger.Logger
	cache    *AudioCache
	cacheDir string
	events   eventSink

	mu      sync.Mutex
	current uint64
	active  bool
	cancel  context.CancelFunc
}

// NewMouth creates a voice channel over the given synthesizer and player.
func NewMouth(tts Synthesizer, player AudioPlayer, log *logger.Logger, opts ...MouthOption) *Mouth {
	m := &Mouth{
		tts:    tts,
		player: player,
		log:    log,
		events: newEventSink(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.cache = NewAudioCache(tts.Voice(), m.cacheDir, log)
	return m
}

// Events delivers the outcome of every utterance.
func (m *Mouth) Events() <-chan domain.SpeechEvent { return m.events.ch }

// Speak interrupts the current utterance and starts u. Non-blocking.
func (m *Mouth) Speak(ctx context.Context, u domain.Utterance) error {
	m.mu.Lock()
	m.interruptLocked()
	uctx, cancel := context.WithCancel(ctx)
	m.current, m.active, m.cancel = u.ID, true, cancel
	m.mu.Unlock()

	m.log.Debug("mouth: speaking #%d: %s", u.ID, truncate(u.Text, 60))
	go m.run(uctx, u)
	return nil
}

// Speaking reports whether an utterance is in flight.
func (m *Mouth) Speaking() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.active
}

// Stop interrupts the current utterance, if any.
func (m *Mouth) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.interruptLocked()
}

// interruptLocked cancels the in-flight utterance and reports it.
// Must be called with m.mu held.
func (m *Mouth) interruptLocked() {
	if !m.active {
		return
	}
	m.cancel()
	m.player.Stop()
	m.active = false
	m.events.emit(domain.SpeechEvent{ID: m.current, Finished: false})
	m.log.Debug("mouth: interrupted #%d", m.current)
}

func (m *Mouth) run(ctx context.Context, u domain.Utterance) {
	audio, err := m.synthesize(ctx, u.Text, u.Pace)
	if err != nil {
		if ctx.Err() == nil {
			m.log.Error("mouth: synthesis failed: %v", err)
		}
		m.complete(u.ID, ctx.Err() == nil)
		return
	}
	if err := m.player.Play(ctx, audio); err != nil {
		m.log.Error("mouth: playback failed: %v", err)
	}
	m.complete(u.ID, ctx.Err() == nil)
}

// complete reports the utterance unless it was already reported as
// interrupted.
func (m *Mouth) complete(id uint64, finished bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.active || m.current != id {
		return
	}
	m.active = false
	m.cancel()
	m.events.emit(domain.SpeechEvent{ID: id, Finished: finished})
}

func (m *Mouth) synthesize(ctx context.Context, text string, pace domain.Pace) ([]byte, error) {
	if audio, ok := m.cache.Get(text, pace); ok {
		return audio, nil
	}
	audio, err := m.tts.Synthesize(ctx, text, pace)
	if err != nil {
		return nil, err
	}
	m.cache.Put(text, pace, audio)
	return audio, nil
}

// Prefetch synthesizes texts into the cache in the background so they
// play instantly when spoken.
func (m *Mouth) Prefetch(ctx context.Context, texts ...string) {
	for _, text := range texts {
		if text == "" || m.cache.Has(text, domain.PaceNormal) {
			continue
		}
		go func(t string) {
			audio, err := m.tts.Synthesize(ctx, t, domain.PaceNormal)
			if err != nil {
				m.log.Debug("prefetch: synthesis failed: %v", err)
				return
			}
			m.cache.Put(t, domain.PaceNormal, audio)
		}(text)
	}
}

// Cache returns the audio cache, for stats.
func (m *Mouth) Cache() *AudioCache { return m.cache }

// ── events ───────────────────────────────────────────────────────

// eventSink never blocks the sender: the reader may be the goroutine
// calling Speak. A full buffer spills into a goroutine.
type eventSink struct {
	ch chan domain.SpeechEvent
}

func newEventSink() eventSink {
	return eventSink{ch: make(chan domain.SpeechEvent, 64)}
}

func (s eventSink) emit(ev domain.SpeechEvent) {
	select {
	case s.ch <- ev:
	default:
		go func() { s.ch <- ev }()
	}
}

// truncate shortens a string for logging.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
