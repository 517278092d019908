package speech

// Every spoken string lives here. Keep lines short and direct; the TTS
// engine handles inflection.

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/hammamikhairi/stovetop/internal/domain"
)

// ── Session ──────────────────────────────────────────────────────

func LineCookingStart(recipeName string) string {
	return fmt.Sprintf("Cooking %s. Here we go.", recipeName)
}

func LineAllDone() string {
	return "All steps done. Time to review."
}

func LineNoDuration() string {
	return "This step has no timer."
}

func LineUnknown(input string) string {
	return fmt.Sprintf("Didn't catch that: %s.", input)
}

func LineHelp() string {
	return "Say next, back, start, pause, add a minute, low, medium or high heat, repeat, status, or quit."
}

// ── Step narration ───────────────────────────────────────────────

// LineStepAnnouncement reads a step out: "Step 2. Simmer the sauce for
// 10 minutes." The duration part is left out for untimed steps.
func LineStepAnnouncement(index int, instruction string, seconds int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Step %d. %s", index+1, instruction)
	if seconds > 0 {
		fmt.Fprintf(&b, " for %s.", FormatDurationSpeech(seconds))
	}
	return b.String()
}

func LineHeatChanged(level domain.HeatLevel, remaining int) string {
	return fmt.Sprintf("Heat changed to %s. New remaining time: %s.", level.Label(), FormatDurationSpeech(remaining))
}

// LineStatus summarises where the cook is.
func LineStatus(index, total int, remaining int, running bool) string {
	s := fmt.Sprintf("Step %d of %d.", index+1, total)
	switch {
	case running:
		s += fmt.Sprintf(" %s left.", FormatDurationSpeech(remaining))
	case remaining > 0:
		s += fmt.Sprintf(" Paused with %s left.", FormatDurationSpeech(remaining))
	}
	return s
}

// ── Timer alerts ─────────────────────────────────────────────────

func LineOneMinute() string {
	return "One minute remaining."
}

func LineTenSeconds() string {
	return "10 seconds remaining."
}

func LineStepComplete() string {
	return "Step complete."
}

func LineCountdown(n int) string {
	return fmt.Sprint(n)
}

var contextHints = map[domain.CookingAction]string{
	domain.ActionBoil:    "You should start seeing bubbles forming. Maintain steady heat.",
	domain.ActionSimmer:  "You should see gentle bubbles, not a rolling boil.",
	domain.ActionFry:     "Listen for a light sizzling sound. Avoid burning.",
	domain.ActionStirFry: "Listen for a light sizzling sound. Avoid burning.",
	domain.ActionSteam:   "Steam should be consistently rising from the pot.",
	domain.ActionCook:    "Stir occasionally to prevent sticking.",
	domain.ActionHeat:    "Do not let it smoke.",
	domain.ActionBake:    "Ensure your oven has preheated fully.",
	domain.ActionGrill:   "Watch for even browning on both sides.",
}

// LineContextHint returns what the cook should notice a few seconds into
// a timed step, if the action has anything worth saying.
func LineContextHint(action domain.CookingAction) (string, bool) {
	h, ok := contextHints[action]
	return h, ok
}

// ── Listening acknowledgment ─────────────────────────────────────
// Printed when the wake word is heard, so the user knows to talk.

var listeningFillers = []string{
	"I'm listening.",
	"Listening.",
	"Yes chef?",
	"What do you need?",
	"I'm here.",
}

// LineListening returns a random acknowledgment for the wake word.
func LineListening() string {
	return listeningFillers[rand.Intn(len(listeningFillers))]
}

// ── Helpers ──────────────────────────────────────────────────────

// FormatDurationSpeech returns a spoken duration: "45 seconds",
// "1 minute", "3 minutes 1 second".
func FormatDurationSpeech(seconds int) string {
	m, s := seconds/60, seconds%60
	switch {
	case m == 0:
		return fmt.Sprintf("%d seconds", s)
	case s == 0:
		return plural(m, "minute")
	default:
		return plural(m, "minute") + " " + plural(s, "second")
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
