// Package parse turns pasted recipe text into ingredient and step lists.
//
// Classification is heuristic and never fails on non-empty input: when
// sections cannot be told apart, every line is treated as a step.
package parse

import (
	"strings"
	"unicode/utf8"

	"github.com/hammamikhairi/stovetop/internal/domain"
)

type section int

const (
	sectionUnknown section = iota
	sectionIngredients
	sectionSteps
)

// Fallback records which recovery path produced a Result.
type Fallback int

const (
	FallbackNone Fallback = iota
	// FallbackNoSections: no header and nothing looked like an ingredient.
	FallbackNoSections
	// FallbackIngredientsOnly: ingredient lines but no step lines.
	FallbackIngredientsOnly
)

// String returns a short name for logs.
func (f Fallback) String() string {
	switch f {
	case FallbackNoSections:
		return "no_sections"
	case FallbackIngredientsOnly:
		return "ingredients_only"
	default:
		return "none"
	}
}

// Result is the outcome of Classify. Steps are ordered 0..N-1 and carry
// any duration found in their text.
type Result struct {
	Steps       []domain.Step
	Ingredients []domain.Ingredient
	Fallback    Fallback
}

// Classify splits raw text into ingredients and steps.
func Classify(raw string) Result {
	lines := splitLines(normalize(raw))

	var ingredientLines, stepLines []string
	current := sectionUnknown

	for _, line := range lines {
		if isIngredientHeader(line) {
			current = sectionIngredients
			continue
		}
		if isStepHeader(line) {
			current = sectionSteps
			continue
		}

		switch current {
		case sectionIngredients:
			ingredientLines = append(ingredientLines, line)
		case sectionSteps:
			stepLines = append(stepLines, line)
		default:
			switch {
			case likelyIngredient(line):
				ingredientLines = append(ingredientLines, line)
			case likelyStep(line):
				stepLines = append(stepLines, line)
			case utf8.RuneCountInString(line) > 3:
				stepLines = append(stepLines, line)
			}
		}
	}

	if len(ingredientLines) == 0 && current == sectionUnknown {
		return Result{Steps: BuildSteps(lines), Fallback: FallbackNoSections}
	}
	if len(stepLines) == 0 && len(ingredientLines) > 0 {
		return Result{Steps: BuildSteps(lines), Fallback: FallbackIngredientsOnly}
	}

	res := Result{Steps: BuildSteps(mergeTitles(stepLines))}
	for _, line := range ingredientLines {
		if ing, ok := ParseIngredientLine(line); ok {
			res.Ingredients = append(res.Ingredients, ing)
		}
	}
	return res
}

// BuildSteps cleans and filters lines into ordered steps with extracted
// durations. Every line is treated as a step.
func BuildSteps(lines []string) []domain.Step {
	var steps []domain.Step
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if !shouldInclude(line) {
			continue
		}
		text := CleanStepText(line)
		if utf8.RuneCountInString(text) <= 3 {
			continue
		}
		steps = append(steps, domain.Step{
			Instruction:     text,
			DurationSeconds: ExtractDuration(text),
			Order:           len(steps),
		})
	}
	return steps
}

func splitLines(s string) []string {
	var out []string
	for _, l := range strings.FieldsFunc(s, func(r rune) bool { return r == '\n' || r == '\r' }) {
		if l = strings.TrimSpace(l); l != "" {
			out = append(out, l)
		}
	}
	return out
}
