// Package prep inserts the prerequisite steps a recipe implies but does
// not spell out: "add chopped onions" implies chopping them first, and
// frying implies heating oil.
package prep

import (
	"strings"
	"unicode"

	"github.com/hammamikhairi/stovetop/internal/domain"
)

type participle struct {
	word    string
	verb    string
	seconds int
}

// participles maps a past participle to the step it implies.
var participles = []participle{
	{"chopped", "Chop", 0},
	{"diced", "Dice", 0},
	{"sliced", "Slice", 0},
	{"minced", "Mince", 0},
	{"grated", "Grate", 0},
	{"peeled", "Peel", 0},
	{"crushed", "Crush", 0},
	{"julienned", "Julienne", 0},
	{"shredded", "Shred", 0},
	{"cubed", "Cube", 0},
	{"boiled", "Boil", 600},
	{"blanched", "Blanch", 180},
	{"marinated", "Marinate", 900},
	{"soaked", "Soak", 1800},
	{"roasted", "Roast", 900},
	{"toasted", "Toast", 120},
	{"melted", "Melt", 60},
	{"beaten", "Beat", 0},
	{"whisked", "Whisk", 0},
}

// heatCues are verbs that need a hot, oiled pan.
var heatCues = []string{
	"sauté", "saute", "fry", "stir fry", "stir-fry",
	"sear", "pan fry", "deep fry", "shallow fry", "toss",
}

var stopwords = map[string]bool{
	"in": true, "on": true, "to": true, "and": true, "with": true,
	"the": true, "a": true, "an": true, "until": true, "for": true, "into": true,
}

// HeatOilInstruction is the text of the synthesized heat step.
const HeatOilInstruction = "Heat oil in a pan on low flame"

const heatOilSeconds = 120

// Preprocess returns a new step list with implied prerequisites inserted
// before the step that implies them, renumbered 0..N-1. The input is not
// modified. A (verb, subject) pair is only synthesized once, and never
// when an original step already mentions both words. At most one heat
// step is added for the whole recipe.
func Preprocess(steps []domain.Step) []domain.Step {
	out := make([]domain.Step, 0, len(steps))
	inserted := make(map[string]bool)
	heatDone := false

	for _, step := range steps {
		lower := strings.ToLower(step.Instruction)
		var prereqs []domain.Step

		for _, p := range participles {
			if !strings.Contains(lower, p.word) {
				continue
			}
			subject := subjectAfter(p.word, lower)
			if subject == "" {
				continue
			}
			verb := strings.ToLower(p.verb)
			key := verb + " " + subject
			if inserted[key] || mentionsVerb(steps, verb, p.word, subject) {
				continue
			}
			prereqs = append(prereqs, domain.Step{
				Instruction:     p.verb + " the " + subject,
				DurationSeconds: p.seconds,
			})
			inserted[key] = true
		}

		if !heatDone && needsHeat(lower) && !mentions(steps, "heat", "oil") {
			prereqs = append(prereqs, domain.Step{
				Instruction:     HeatOilInstruction,
				DurationSeconds: heatOilSeconds,
			})
			heatDone = true
		}

		out = append(out, prereqs...)
		out = append(out, step)
	}

	return domain.Renumber(out)
}

// subjectAfter returns up to two words following word in text, stopping
// at the first stopword and trimming punctuation.
func subjectAfter(word, text string) string {
	i := strings.Index(text, word)
	if i < 0 {
		return ""
	}
	var subject []string
	for _, raw := range strings.Fields(text[i+len(word):]) {
		w := strings.TrimFunc(raw, unicode.IsPunct)
		if len(subject) == 2 || w == "" || stopwords[w] {
			break
		}
		subject = append(subject, w)
		// "onions, then" ends the subject at the comma
		if w != strings.TrimLeftFunc(raw, unicode.IsPunct) {
			break
		}
	}
	return strings.Join(subject, " ")
}

func needsHeat(lower string) bool {
	for _, cue := range heatCues {
		if strings.Contains(lower, cue) {
			return true
		}
	}
	return false
}

// mentionsVerb reports whether any step uses verb as a word ("chop",
// "chopping") alongside subject. The participle itself does not count,
// otherwise "add chopped onions" would satisfy its own prerequisite.
func mentionsVerb(steps []domain.Step, verb, participle, subject string) bool {
	for _, s := range steps {
		lower := strings.ToLower(s.Instruction)
		if !strings.Contains(lower, subject) {
			continue
		}
		for _, raw := range strings.Fields(lower) {
			w := strings.TrimFunc(raw, unicode.IsPunct)
			if w != participle && strings.HasPrefix(w, verb) {
				return true
			}
		}
	}
	return false
}

// mentions reports whether any step contains both words.
func mentions(steps []domain.Step, a, b string) bool {
	for _, s := range steps {
		lower := strings.ToLower(s.Instruction)
		if strings.Contains(lower, a) && strings.Contains(lower, b) {
			return true
		}
	}
	return false
}
