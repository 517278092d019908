// Package review records finished cooking sessions, their ratings, and
// the adjustments the cook's notes suggest for next time.
package review

import "strings"

type rule struct {
	cues       []string
	suggestion string
}

// rules are checked in order; each adds at most one suggestion.
var rules = []rule{
	{[]string{"too salty"}, "Reduce salt by 10%"},
	{[]string{"overcooked", "too dry"}, "Reduce cook time by 2 minutes"},
	{[]string{"bland"}, "Add more spices or seasoning"},
	{[]string{"spicy"}, "Reduce heat/chili amount"},
}

// Suggestions maps free-text notes to adjustments for the next attempt.
func Suggestions(notes string) []string {
	lower := strings.ToLower(notes)
	var out []string
	for _, r := range rules {
		for _, cue := range r.cues {
			if strings.Contains(lower, cue) {
				out = append(out, r.suggestion)
				break
			}
		}
	}
	return out
}
