package speech

import (
	"context"

	"github.com/hammamikhairi/stovetop/internal/domain"
	"github.com/hammamikhairi/stovetop/internal/logger"
)

// Compile-time interface check.
var _ domain.Speaker = (*Transcript)(nil)

// Transcript is a speaker that prints what it would say. Lines are
// delivered instantly, so every utterance reports finished right away.
// Countdown numbers go out as urgent notifications.
type Transcript struct {
	out    domain.Notifier
	log    *logger.Logger
	events eventSink
}

// NewTranscript creates a printing speaker.
func NewTranscript(out domain.Notifier, log *logger.Logger) *Transcript {
	return &Transcript{out: out, log: log, events: newEventSink()}
}

// Speak prints u and reports it finished.
func (t *Transcript) Speak(ctx context.Context, u domain.Utterance) error {
	var err error
	if u.Pace == domain.PaceQuick {
		err = t.out.NotifyUrgent(ctx, u.Text)
	} else {
		err = t.out.Notify(ctx, u.Text)
	}
	t.events.emit(domain.SpeechEvent{ID: u.ID, Finished: true})
	return err
}

// Stop does nothing; printed lines cannot be interrupted.
func (t *Transcript) Stop() {}

// Events delivers the outcome of every utterance.
func (t *Transcript) Events() <-chan domain.SpeechEvent { return t.events.ch }
