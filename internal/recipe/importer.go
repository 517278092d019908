// Package recipe builds structured recipes from pasted text and edits,
// scales and categorizes them.
package recipe

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hammamikhairi/stovetop/internal/catalog"
	"github.com/hammamikhairi/stovetop/internal/domain"
	"github.com/hammamikhairi/stovetop/internal/logger"
	"github.com/hammamikhairi/stovetop/internal/parse"
	"github.com/hammamikhairi/stovetop/internal/prep"
)

// ErrSaveFailed wraps a store error. The recipe that failed to save is
// still returned alongside it.
var ErrSaveFailed = errors.New("save failed")

// Option configures the importer.
type Option func(*Importer)

// WithClock sets the time source for CreatedAt.
func WithClock(now func() time.Time) Option {
	return func(i *Importer) {
		i.now = now
	}
}

// Importer turns a name and pasted text into a stored recipe.
type Importer struct {
	store domain.RecipeStore
	log   *logger.Logger
	now   func() time.Time
}

// NewImporter creates an importer saving into store.
func NewImporter(store domain.RecipeStore, log *logger.Logger, opts ...Option) *Importer {
	i := &Importer{
		store: store,
		log:   log,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Import parses raw into a recipe and saves it. Steps are classified,
// expanded with implied prerequisites, and given a suggested timer when
// their text names none.
func (i *Importer) Import(ctx context.Context, name, raw string) (*domain.Recipe, error) {
	name = strings.TrimSpace(name)
	if name == "" || strings.TrimSpace(raw) == "" {
		return nil, domain.ErrMissingName
	}

	res := parse.Classify(raw)
	if len(res.Steps) == 0 {
		return nil, domain.ErrEmptyInput
	}
	i.log.Debug("classified %q: %d steps, %d ingredient lines (fallback=%s)",
		name, len(res.Steps), len(res.Ingredients), res.Fallback)

	steps := prep.Preprocess(res.Steps)
	suggested := 0
	for n := range steps {
		if steps[n].HasDuration() {
			continue
		}
		if d, ok := catalog.SuggestDuration(catalog.DetectAction(steps[n].Instruction)); ok {
			steps[n].DurationSeconds = d
			suggested++
		}
	}

	instructions := make([]string, len(steps))
	for n, s := range steps {
		instructions[n] = s.Instruction
	}

	r := &domain.Recipe{
		ID:          uuid.NewString(),
		Name:        name,
		Category:    DetectCategory(name, instructions).String(),
		Ingredients: mergeIngredients(res.Ingredients, catalog.ExtractIngredients(instructions)),
		Steps:       steps,
		CreatedAt:   i.now(),
	}

	if err := i.store.Save(ctx, r); err != nil {
		i.log.Error("saving recipe %q: %v", name, err)
		return r, fmt.Errorf("%w: %w", ErrSaveFailed, err)
	}

	i.log.Info("recipe %q saved with %d steps (%d suggested timers) and %d ingredients",
		r.Name, len(r.Steps), suggested, len(r.Ingredients))
	return r, nil
}

// mergeIngredients keeps every listed ingredient and adds the ones only
// found in the steps. A listed ingredient wins over an extracted one of
// the same name.
func mergeIngredients(listed, extracted []domain.Ingredient) []domain.Ingredient {
	seen := make(map[string]bool, len(listed))
	out := make([]domain.Ingredient, 0, len(listed)+len(extracted))
	for _, ing := range listed {
		key := strings.ToLower(ing.Name)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, ing)
	}
	for _, ing := range extracted {
		key := strings.ToLower(ing.Name)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, ing)
	}
	return out
}
