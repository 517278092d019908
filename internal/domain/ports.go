package domain

import "context"

// RecipeStore persists recipes together with their steps, ingredients and
// sessions. Implementations can be in-memory or backed by a database.
type RecipeStore interface {
	Save(ctx context.Context, r *Recipe) error
	Get(ctx context.Context, id string) (*Recipe, error)
	List(ctx context.Context) ([]RecipeSummary, error)
	Delete(ctx context.Context, id string) error
}

// IntentParser converts raw user input into structured intents.
// Implementations can be keyword-based, regex, or LLM-powered.
type IntentParser interface {
	Parse(ctx context.Context, input string) (*Intent, error)
}

// Notifier delivers messages to the user. Implementations can write to
// stdout, push notifications, or use text-to-speech.
type Notifier interface {
	Notify(ctx context.Context, message string) error
	NotifyUrgent(ctx context.Context, message string) error
}

// Speaker is the single voice output channel. At most one utterance is in
// flight: Speak cancels whatever is playing. Every utterance produces
// exactly one SpeechEvent on Events.
type Speaker interface {
	Speak(ctx context.Context, u Utterance) error
	Stop()
	Events() <-chan SpeechEvent
}

// Pace is the delivery hint attached to an utterance.
type Pace int

const (
	PaceNormal Pace = iota
	PaceQuick       // countdown numbers
)

// Rate returns the relative speaking rate for the pace.
func (p Pace) Rate() float64 {
	if p == PaceQuick {
		return 1.2
	}
	return 0.9
}

// Pitch returns the relative pitch for the pace.
func (p Pace) Pitch() float64 {
	if p == PaceQuick {
		return 1.1
	}
	return 1.05
}

// Utterance is one line handed to the voice channel.
type Utterance struct {
	ID   uint64
	Text string
	Pace Pace
}

// SpeechEvent reports how an utterance ended.
type SpeechEvent struct {
	ID       uint64
	Finished bool // false means it was cancelled
}
