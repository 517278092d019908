// Package speech provides the voice channel: synthesized speech, a
// printed transcript, or nothing, plus whisper-based voice input.
package speech

import (
	"context"

	"github.com/hammamikhairi/stovetop/internal/domain"
	"github.com/hammamikhairi/stovetop/internal/logger"
)

// Compile-time interface check.
var _ domain.Speaker = (*NoOp)(nil)

// NoOp says nothing and reports every utterance finished at once. Used
// when voice is disabled.
type NoOp struct {
	log    *logger.Logger
	events eventSink
}

// NewNoOp creates a silent speaker.
func NewNoOp(log *logger.Logger) *NoOp {
	return &NoOp{log: log, events: newEventSink()}
}

// Speak reports u as finished.
func (n *NoOp) Speak(_ context.Context, u domain.Utterance) error {
	n.log.Debug("speech no-op: would say %q", u.Text)
	n.events.emit(domain.SpeechEvent{ID: u.ID, Finished: true})
	return nil
}

// Stop does nothing; no utterance is ever in flight.
func (n *NoOp) Stop() {}

// Events delivers the outcome of every utterance.
func (n *NoOp) Events() <-chan domain.SpeechEvent { return n.events.ch }
