// Package engine drives guided cooking over stored recipes and records
// the sessions it produces.
package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/hammamikhairi/stovetop/internal/domain"
	"github.com/hammamikhairi/stovetop/internal/logger"
	"github.com/hammamikhairi/stovetop/internal/review"
)

// Option configures the engine.
type Option func(*Engine)

// WithClock sets the time source used to date sessions.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// Engine ties the recipe store to guided runs and their reviews. It
// depends only on interfaces and is fully testable with fakes.
type Engine struct {
	store domain.RecipeStore
	log   *logger.Logger
	now   func() time.Time
}

// New creates an engine over the given store.
func New(store domain.RecipeStore, log *logger.Logger, opts ...Option) *Engine {
	e := &Engine{
		store: store,
		log:   log,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ListRecipes returns all stored recipes.
func (e *Engine) ListRecipes(ctx context.Context) ([]domain.RecipeSummary, error) {
	return e.store.List(ctx)
}

// GetRecipe returns a full recipe by ID.
func (e *Engine) GetRecipe(ctx context.Context, id string) (*domain.Recipe, error) {
	return e.store.Get(ctx, id)
}

// StartSession loads a recipe and starts a guide over it. Orders lists
// the steps the cook chose to run on high heat.
func (e *Engine) StartSession(ctx context.Context, recipeID string, speaker domain.Speaker, sched Scheduler, optimized []int, opts ...GuideOption) (*Guide, error) {
	r, err := e.store.Get(ctx, recipeID)
	if err != nil {
		return nil, fmt.Errorf("getting recipe: %w", err)
	}
	opts = append([]GuideOption{WithOptimizedSteps(optimized...)}, opts...)
	g, err := NewGuide(r, speaker, sched, e.log, opts...)
	if err != nil {
		return nil, err
	}
	g.Start(ctx)
	return g, nil
}

// Finish records a session for the recipe. A zero rating leaves the
// session unrated so it can be prompted for later.
func (e *Engine) Finish(ctx context.Context, recipeID string, rating int, notes string) (domain.CookingSession, error) {
	r, err := e.store.Get(ctx, recipeID)
	if err != nil {
		return domain.CookingSession{}, fmt.Errorf("getting recipe: %w", err)
	}
	s, err := review.Complete(rating, notes, e.now())
	if err != nil {
		return domain.CookingSession{}, err
	}
	r.Sessions = append(r.Sessions, s)
	if err := e.store.Save(ctx, r); err != nil {
		return domain.CookingSession{}, fmt.Errorf("saving session: %w", err)
	}
	e.log.Info("recorded session %s for %q (rating %d)", s.ID, r.Name, rating)
	return s, nil
}

// NextRatingPrompt returns the session to ask the cook about, or nil.
func (e *Engine) NextRatingPrompt(ctx context.Context, recipeID string) (*domain.CookingSession, error) {
	r, err := e.store.Get(ctx, recipeID)
	if err != nil {
		return nil, fmt.Errorf("getting recipe: %w", err)
	}
	return review.NextPrompt(r), nil
}

// PendingRatings lists sessions still waiting on a rating.
func (e *Engine) PendingRatings(ctx context.Context, recipeID string) ([]domain.CookingSession, error) {
	r, err := e.store.Get(ctx, recipeID)
	if err != nil {
		return nil, fmt.Errorf("getting recipe: %w", err)
	}
	var out []domain.CookingSession
	for _, s := range review.Pending(r) {
		out = append(out, *s)
	}
	return out, nil
}

// Rate submits a rating for a recorded session.
func (e *Engine) Rate(ctx context.Context, recipeID, sessionID string, rating int, notes string) error {
	return e.updateSession(ctx, recipeID, sessionID, func(s *domain.CookingSession) error {
		return review.Submit(s, rating, notes)
	})
}

// DismissRating closes the rating prompt for a session.
func (e *Engine) DismissRating(ctx context.Context, recipeID, sessionID string) error {
	return e.updateSession(ctx, recipeID, sessionID, func(s *domain.CookingSession) error {
		review.Dismiss(s)
		return nil
	})
}

// DismissNotification drops a session from the pending list.
func (e *Engine) DismissNotification(ctx context.Context, recipeID, sessionID string) error {
	return e.updateSession(ctx, recipeID, sessionID, func(s *domain.CookingSession) error {
		review.DismissNotification(s)
		return nil
	})
}

func (e *Engine) updateSession(ctx context.Context, recipeID, sessionID string, fn func(*domain.CookingSession) error) error {
	r, err := e.store.Get(ctx, recipeID)
	if err != nil {
		return fmt.Errorf("getting recipe: %w", err)
	}
	s := r.Session(sessionID)
	if s == nil {
		return fmt.Errorf("session %q: %w", sessionID, domain.ErrNotFound)
	}
	if err := fn(s); err != nil {
		return err
	}
	if err := e.store.Save(ctx, r); err != nil {
		return fmt.Errorf("saving session: %w", err)
	}
	return nil
}
