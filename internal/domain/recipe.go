// Package domain defines the core types and interfaces for the cooking assistant.
// All other packages depend on domain; domain depends on nothing.
package domain

import (
	"sort"
	"time"
)

// Recipe is a structured recipe built from pasted text. Ingredients,
// steps and sessions are owned by the recipe; deleting it drops all three.
type Recipe struct {
	ID          string
	Name        string
	Category    string
	Ingredients []Ingredient
	Steps       []Step
	Sessions    []CookingSession
	CreatedAt   time.Time
}

// RecipeSummary is a lightweight view of a recipe for listing.
type RecipeSummary struct {
	ID        string
	Name      string
	Category  string
	StepCount int
	Rating    float64
}

// Ingredient is a single ingredient. Quantity is display text ("200 g",
// "2 medium", "As needed"), not a typed unit.
type Ingredient struct {
	Name     string
	Quantity string
	Checked  bool
}

// AsNeeded is the quantity used when nothing better is known.
const AsNeeded = "As needed"

// Step is a single cooking step. Order is 0-based and dense within a recipe.
type Step struct {
	Instruction     string
	DurationSeconds int // 0 if untimed
	Completed       bool
	Order           int
}

// HasDuration reports whether the step carries an explicit timer.
func (s Step) HasDuration() bool {
	return s.DurationSeconds > 0
}

// Renumber rewrites every step's Order to its index in the slice.
func Renumber(steps []Step) []Step {
	for i := range steps {
		steps[i].Order = i
	}
	return steps
}

// SortedSteps returns a copy of the steps ordered by Order.
func (r *Recipe) SortedSteps() []Step {
	out := make([]Step, len(r.Steps))
	copy(out, r.Steps)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

// Summary builds the listing view of the recipe.
func (r *Recipe) Summary() RecipeSummary {
	return RecipeSummary{
		ID:        r.ID,
		Name:      r.Name,
		Category:  r.Category,
		StepCount: len(r.Steps),
		Rating:    r.AverageRating(),
	}
}

// AverageRating is the mean of rated sessions, 0 when none are rated.
func (r *Recipe) AverageRating() float64 {
	var sum, n int
	for _, s := range r.Sessions {
		if s.Rating > 0 {
			sum += s.Rating
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

// LatestSuggestions returns the suggestions of the most recent rated session.
func (r *Recipe) LatestSuggestions() []string {
	for i := len(r.Sessions) - 1; i >= 0; i-- {
		if r.Sessions[i].Rating > 0 {
			return r.Sessions[i].Suggestions
		}
	}
	return nil
}

// Session returns a pointer to the session with the given ID, or nil.
func (r *Recipe) Session(id string) *CookingSession {
	for i := range r.Sessions {
		if r.Sessions[i].ID == id {
			return &r.Sessions[i]
		}
	}
	return nil
}

// Clone returns a deep copy so stores never share slices with callers.
func (r *Recipe) Clone() *Recipe {
	cp := *r
	cp.Ingredients = append([]Ingredient(nil), r.Ingredients...)
	cp.Steps = append([]Step(nil), r.Steps...)
	cp.Sessions = make([]CookingSession, len(r.Sessions))
	for i, s := range r.Sessions {
		s.Suggestions = append([]string(nil), s.Suggestions...)
		cp.Sessions[i] = s
	}
	return &cp
}
