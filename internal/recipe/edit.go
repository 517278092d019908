package recipe

import (
	"fmt"
	"strings"

	"github.com/hammamikhairi/stovetop/internal/domain"
	"github.com/hammamikhairi/stovetop/internal/parse"
)

// ── Steps ────────────────────────────────────────────────────────
// Every step edit leaves Order dense, 0..N-1 in slice order.

func checkIndex(i, n int) error {
	if i < 0 || i >= n {
		return fmt.Errorf("%d of %d: %w", i, n, domain.ErrIndexOutOfRange)
	}
	return nil
}

// AddStep appends a step. Its timer is read from the text.
func AddStep(r *domain.Recipe, instruction string) error {
	text := parse.CleanStepText(instruction)
	if text == "" {
		return domain.ErrEmptyInput
	}
	r.Steps = domain.Renumber(append(r.SortedSteps(), domain.Step{
		Instruction:     text,
		DurationSeconds: parse.ExtractDuration(text),
	}))
	return nil
}

// RemoveStep deletes step i.
func RemoveStep(r *domain.Recipe, i int) error {
	steps := r.SortedSteps()
	if err := checkIndex(i, len(steps)); err != nil {
		return err
	}
	r.Steps = domain.Renumber(append(steps[:i], steps[i+1:]...))
	return nil
}

// MoveStep moves step from to position to.
func MoveStep(r *domain.Recipe, from, to int) error {
	steps := r.SortedSteps()
	if err := checkIndex(from, len(steps)); err != nil {
		return err
	}
	if err := checkIndex(to, len(steps)); err != nil {
		return err
	}
	s := steps[from]
	steps = append(steps[:from], steps[from+1:]...)
	steps = append(steps[:to], append([]domain.Step{s}, steps[to:]...)...)
	r.Steps = domain.Renumber(steps)
	return nil
}

// UpdateStep rewrites step i. A negative seconds value keeps whatever the
// new text says; zero clears the timer.
func UpdateStep(r *domain.Recipe, i int, instruction string, seconds int) error {
	steps := r.SortedSteps()
	if err := checkIndex(i, len(steps)); err != nil {
		return err
	}
	text := parse.CleanStepText(instruction)
	if text == "" {
		return domain.ErrEmptyInput
	}
	if seconds < 0 {
		seconds = parse.ExtractDuration(text)
	}
	steps[i].Instruction = text
	steps[i].DurationSeconds = seconds
	r.Steps = domain.Renumber(steps)
	return nil
}

// ── Ingredients ──────────────────────────────────────────────────

// AddIngredient appends an ingredient. A blank quantity becomes
// domain.AsNeeded.
func AddIngredient(r *domain.Recipe, name, quantity string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.ErrMissingName
	}
	quantity = strings.TrimSpace(quantity)
	if quantity == "" {
		quantity = domain.AsNeeded
	}
	r.Ingredients = append(r.Ingredients, domain.Ingredient{Name: name, Quantity: quantity})
	return nil
}

// RemoveIngredient deletes ingredient i.
func RemoveIngredient(r *domain.Recipe, i int) error {
	if err := checkIndex(i, len(r.Ingredients)); err != nil {
		return err
	}
	r.Ingredients = append(r.Ingredients[:i], r.Ingredients[i+1:]...)
	return nil
}

// ToggleIngredient flips the checked mark on ingredient i.
func ToggleIngredient(r *domain.Recipe, i int) error {
	if err := checkIndex(i, len(r.Ingredients)); err != nil {
		return err
	}
	r.Ingredients[i].Checked = !r.Ingredients[i].Checked
	return nil
}
