package speech

import "github.com/hammamikhairi/stovetop/internal/domain"

// AlertState remembers which one-shot alerts were already spoken for the
// current step. The zero value is the state of a fresh step.
type AlertState struct {
	HintSpoken       bool
	OneMinuteSpoken  bool
	TenSecondsSpoken bool
}

// TickInput is the timer reading after a one-second decrement.
type TickInput struct {
	Elapsed   int // seconds since the timer was started on this step
	Remaining int
	Total     int // effective duration of the step
	Action    domain.CookingAction
}

// Alerts decides what to say on a running timer's tick. It is pure: the
// caller keeps the returned state and passes it back on the next tick.
// Later utterances in the result supersede earlier ones when spoken
// through a latest-wins speaker.
func Alerts(in TickInput, st AlertState) ([]domain.Utterance, AlertState) {
	var out []domain.Utterance
	say := func(text string, pace domain.Pace) {
		out = append(out, domain.Utterance{Text: text, Pace: pace})
	}

	if !st.HintSpoken && in.Elapsed >= 5 && in.Elapsed <= 10 {
		st.HintSpoken = true
		if hint, ok := LineContextHint(in.Action); ok {
			say(hint, domain.PaceNormal)
		}
	}

	if !st.OneMinuteSpoken && in.Total > 300 && in.Remaining == 60 {
		st.OneMinuteSpoken = true
		say(LineOneMinute(), domain.PaceNormal)
	}

	if !st.TenSecondsSpoken && in.Remaining == 10 {
		st.TenSecondsSpoken = true
		say(LineTenSeconds(), domain.PaceNormal)
	}

	switch {
	case in.Remaining >= 1 && in.Remaining <= 5:
		say(LineCountdown(in.Remaining), domain.PaceQuick)
	case in.Remaining == 0:
		say(LineStepComplete(), domain.PaceNormal)
	}

	return out, st
}
