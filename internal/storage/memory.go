// Package storage provides recipe persistence implementations.
package storage

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/hammamikhairi/stovetop/internal/domain"
	"github.com/hammamikhairi/stovetop/internal/logger"
)

// Compile-time interface check.
var _ domain.RecipeStore = (*MemoryStore)(nil)

// MemoryStore is an in-memory recipe store. Safe for concurrent access.
// Recipes are copied on the way in and out, so callers never share
// slices with the store.
type MemoryStore struct {
	mu      sync.RWMutex
	recipes map[string]*domain.Recipe
	log     *logger.Logger
}

// NewMemoryStore creates an empty in-memory recipe store.
func NewMemoryStore(log *logger.Logger) *MemoryStore {
	return &MemoryStore{
		recipes: make(map[string]*domain.Recipe),
		log:     log,
	}
}

// Save persists a recipe with its steps, ingredients and sessions.
// Overwrites if it already exists.
func (s *MemoryStore) Save(ctx context.Context, r *domain.Recipe) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.log.Debug("saving recipe %s (%q, %d steps, %d sessions)", r.ID, r.Name, len(r.Steps), len(r.Sessions))
	s.recipes[r.ID] = r.Clone()
	return nil
}

// Get retrieves a recipe by ID.
func (s *MemoryStore) Get(ctx context.Context, id string) (*domain.Recipe, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.recipes[id]
	if !ok {
		s.log.Debug("recipe not found: %s", id)
		return nil, domain.ErrNotFound
	}
	return r.Clone(), nil
}

// Delete removes a recipe and everything it owns.
func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.recipes[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.recipes, id)
	s.log.Debug("deleted recipe %s", id)
	return nil
}

// List returns summaries of all recipes, newest first.
func (s *MemoryStore) List(ctx context.Context) ([]domain.RecipeSummary, error) {
	return s.collect(func(*domain.Recipe) bool { return true }), nil
}

// Search returns recipes whose name or category contains the query.
func (s *MemoryStore) Search(ctx context.Context, query string) ([]domain.RecipeSummary, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	s.log.Debug("searching recipes for: %s", q)
	return s.collect(func(r *domain.Recipe) bool {
		return strings.Contains(strings.ToLower(r.Name), q) ||
			strings.Contains(strings.ToLower(r.Category), q)
	}), nil
}

func (s *MemoryStore) collect(keep func(*domain.Recipe) bool) []domain.RecipeSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matched []*domain.Recipe
	for _, r := range s.recipes {
		if keep(r) {
			matched = append(matched, r)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
		return matched[i].Name < matched[j].Name
	})

	out := make([]domain.RecipeSummary, 0, len(matched))
	for _, r := range matched {
		out = append(out, r.Summary())
	}
	return out
}
