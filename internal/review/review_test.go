package review

import (
	"errors"
	"testing"
	"time"

	"github.com/hammamikhairi/stovetop/internal/domain"
)

func TestSuggestions(t *testing.T) {
	tests := []struct {
		notes string
		want  []string
	}{
		{"A bit too salty", []string{"Reduce salt by 10%"}},
		{"Overcooked and bland", []string{"Reduce cook time by 2 minutes", "Add more spices or seasoning"}},
		{"too dry, and too dry again", []string{"Reduce cook time by 2 minutes"}},
		{"Way too SPICY", []string{"Reduce heat/chili amount"}},
		{"perfect", nil},
	}
	for _, tt := range tests {
		t.Run(tt.notes, func(t *testing.T) {
			got := Suggestions(tt.notes)
			if len(got) != len(tt.want) {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("suggestion %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestComplete(t *testing.T) {
	now := time.Date(2026, 3, 1, 19, 0, 0, 0, time.UTC)

	skipped, err := Complete(0, "ignored", now)
	if err != nil {
		t.Fatalf("skip: %v", err)
	}
	if skipped.ID == "" || skipped.Rated() || skipped.Notes != "" || !skipped.Date.Equal(now) {
		t.Errorf("skipped session = %+v", skipped)
	}

	rated, err := Complete(4, "too salty", now)
	if err != nil {
		t.Fatalf("rate: %v", err)
	}
	if rated.Rating != 4 || len(rated.Suggestions) != 1 {
		t.Errorf("rated session = %+v", rated)
	}
	if rated.ID == skipped.ID {
		t.Error("session IDs must be unique")
	}

	if _, err := Complete(6, "", now); !errors.Is(err, domain.ErrInvalidRating) {
		t.Errorf("rating 6: err = %v", err)
	}
}

func TestRatingLifecycle(t *testing.T) {
	r := &domain.Recipe{Sessions: []domain.CookingSession{{ID: "a"}, {ID: "b", Rating: 3}}}

	s := NextPrompt(r)
	if s == nil || s.ID != "a" {
		t.Fatalf("NextPrompt = %+v", s)
	}

	// first dismissal: pending, not finalized
	Dismiss(s)
	if NextPrompt(r) != nil {
		t.Error("a prompted session must not be prompted again")
	}
	pending := Pending(r)
	if len(pending) != 1 || pending[0].ID != "a" {
		t.Fatalf("Pending = %+v", pending)
	}

	DismissNotification(pending[0])
	if len(Pending(r)) != 0 {
		t.Error("notification dismissal should clear the pending entry")
	}

	// dismissed from both places: finalized for good
	Dismiss(r.Session("a"))
	if !r.Session("a").RatingFinalized {
		t.Error("second dismissal should finalize")
	}
	if err := Submit(r.Session("a"), 5, ""); !errors.Is(err, domain.ErrRatingFinalized) {
		t.Errorf("submit after finalize: err = %v", err)
	}
}

func TestSubmit(t *testing.T) {
	s := &domain.CookingSession{ID: "x"}

	if err := Submit(s, 0, "bland"); !errors.Is(err, domain.ErrInvalidRating) {
		t.Errorf("rating 0: err = %v", err)
	}
	if s.PromptedForRating || s.RatingFinalized {
		t.Error("a rejected submit must not change the session")
	}

	if err := Submit(s, 2, "bland"); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if s.Rating != 2 || !s.PromptedForRating || !s.RatingFinalized || s.Suggestions[0] != "Add more spices or seasoning" {
		t.Errorf("session = %+v", s)
	}
}
