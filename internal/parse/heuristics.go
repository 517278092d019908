package parse

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Header tables. Match is exact or by prefix, so "ingredients (serves 4)"
// still counts.
var (
	ingredientHeaders = []string{
		"ingredients", "ingredient", "you will need", "you'll need",
		"what you need", "shopping list", "items needed", "things you need",
		"for ingredients", "ingredients list",
	}
	stepHeaders = []string{
		"recipe", "steps", "directions", "method", "instructions",
		"procedure", "preparation", "how to make", "how to cook",
		"cooking steps", "cooking method", "for instructions", "for steps",
		"for recipe", "for directions",
	}
)

func set(words ...string) map[string]bool {
	m := make(map[string]bool, len(words))
	for _, w := range words {
		m[w] = true
	}
	return m
}

// Verbs that open a step. Three slightly different sets are used: one to
// veto ingredient lines, one to confirm step lines, one to veto titles.
var (
	ingredientVetoVerbs = set(
		"add", "mix", "stir", "cook", "bake", "fry", "boil", "simmer",
		"heat", "pour", "chop", "dice", "slice", "spread", "whisk",
		"fold", "knead", "serve", "garnish", "drizzle", "season",
		"marinate", "grill", "roast", "sauté", "saute", "combine",
		"preheat", "bring", "reduce", "transfer", "remove", "place",
		"let", "cover", "set", "flip", "turn", "cut", "peel",
		"brush", "coat", "toss", "beat", "blend", "melt", "top",
		"drain", "keep", "in",
	)
	stepVerbs = set(
		"add", "mix", "stir", "cook", "bake", "fry", "boil", "simmer",
		"heat", "pour", "chop", "dice", "slice", "spread", "whisk",
		"fold", "knead", "serve", "garnish", "drizzle", "season",
		"marinate", "grill", "roast", "sauté", "saute", "combine",
		"preheat", "bring", "reduce", "transfer", "remove", "place",
		"let", "cover", "set", "flip", "turn", "top", "drain",
		"keep", "toss", "melt", "in",
	)
	titleVetoVerbs = set(
		"add", "mix", "stir", "cook", "bake", "fry", "boil", "simmer",
		"heat", "pour", "chop", "dice", "slice", "spread", "whisk",
		"bring", "drain", "in", "top", "toss", "melt",
	)
)

var (
	leadQuantityRe = regexp.MustCompile(`^\d+[./]?\d*\s*(cups?|tbsp|tsp|g|kg|ml|oz|lb|pieces?|cloves?|medium|large|small)`)
	fractionGlyph  = "½¼¾⅓⅔"
	timePhraseRe   = regexp.MustCompile(`\d+\s*(min|minute|sec|second|hour)`)
	degreeRe       = regexp.MustCompile(`\d+\s*°`)
)

func matchesHeader(key string, headers []string) bool {
	for _, h := range headers {
		if key == h || strings.HasPrefix(key, h) {
			return true
		}
	}
	return false
}

func isIngredientHeader(line string) bool {
	return matchesHeader(headerKey(line), ingredientHeaders)
}

func isStepHeader(line string) bool {
	return matchesHeader(headerKey(line), stepHeaders)
}

// likelyIngredient: short, not verb-led, and either quantified, carrying
// a short parenthetical note, or three words or fewer.
func likelyIngredient(line string) bool {
	cleaned := strings.ToLower(CleanStepText(line))
	ws := words(cleaned)
	if len(ws) > 6 {
		return false
	}
	if ingredientVetoVerbs[firstWord(ws)] {
		return false
	}

	hasQuantity := leadQuantityRe.MatchString(cleaned) || strings.ContainsAny(cleaned, fractionGlyph)
	hasParen := strings.Contains(cleaned, "(") && strings.Contains(cleaned, ")")

	switch {
	case hasQuantity:
		return true
	case hasParen && len(ws) <= 5:
		return true
	case len(ws) <= 3:
		return true
	}
	return false
}

// likelyStep: more than two words and verb-led, timed, a temperature, or
// a full sentence.
func likelyStep(line string) bool {
	cleaned := strings.ToLower(CleanStepText(line))
	ws := words(cleaned)
	if len(ws) <= 2 {
		return false
	}
	switch {
	case stepVerbs[firstWord(ws)]:
		return true
	case timePhraseRe.MatchString(cleaned):
		return true
	case degreeRe.MatchString(cleaned):
		return true
	case len(ws) >= 5 && strings.HasSuffix(strings.TrimSpace(line), "."):
		return true
	}
	return false
}

// isTitle reports a short heading such as "Make The Sauce".
func isTitle(text string) bool {
	ws := words(text)
	if len(ws) > 4 {
		return false
	}
	if titleVetoVerbs[strings.ToLower(firstWord(ws))] {
		return false
	}
	caps := 0
	for _, w := range ws {
		r, _ := utf8.DecodeRuneInString(w)
		if unicode.IsUpper(r) {
			caps++
		}
	}
	return caps >= len(ws)/2
}

// mergeTitles replaces a title with the body line that follows it when
// that body has at least three words; a lone short title is dropped.
func mergeTitles(lines []string) []string {
	var merged []string
	for i := 0; i < len(lines); i++ {
		stripped := CleanStepText(lines[i])
		title := isTitle(stripped)

		if title && i+1 < len(lines) {
			if len(words(CleanStepText(lines[i+1]))) >= 3 {
				merged = append(merged, lines[i+1])
				i++
				continue
			}
		}
		if title && len(words(stripped)) <= 3 {
			continue
		}
		merged = append(merged, lines[i])
	}
	return merged
}
