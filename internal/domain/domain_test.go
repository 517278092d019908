package domain

import "testing"

func TestActionDefaults(t *testing.T) {
	tests := []struct {
		action CookingAction
		want   int
		ok     bool
	}{
		{ActionBoil, 600, true},
		{ActionSimmer, 1200, true},
		{ActionStirFry, 180, true},
		{ActionFlip, 60, true},
		{ActionPrep, 0, false},
		{ActionServe, 0, false},
		{ActionGeneral, 0, false},
	}
	for _, tt := range tests {
		got, ok := tt.action.DefaultSeconds()
		if got != tt.want || ok != tt.ok {
			t.Errorf("%s.DefaultSeconds() = (%d, %v), want (%d, %v)", tt.action, got, ok, tt.want, tt.ok)
		}
	}
	if len(AllActions) != 18 {
		t.Errorf("expected 18 actions, got %d", len(AllActions))
	}
	for _, a := range AllActions {
		if a.Label() == "" || a.Icon() == "" {
			t.Errorf("action %d missing metadata", a)
		}
	}
}

func TestHeatMultipliers(t *testing.T) {
	if HeatLow.Multiplier() != 1.0 || HeatMedium.Multiplier() != 0.6 || HeatHigh.Multiplier() != 0.2 {
		t.Fatal("unexpected heat multipliers")
	}
	if HeatHigh.Label() != "High Flame" {
		t.Errorf("label = %q", HeatHigh.Label())
	}
	if lvl, ok := ParseHeatLevel(" Med "); !ok || lvl != HeatMedium {
		t.Errorf("ParseHeatLevel(med) = %v, %v", lvl, ok)
	}
	if _, ok := ParseHeatLevel("scorching"); ok {
		t.Error("expected unknown heat level to fail")
	}
}

func TestRenumberAndSort(t *testing.T) {
	r := &Recipe{Steps: []Step{
		{Instruction: "c", Order: 7},
		{Instruction: "a", Order: 1},
		{Instruction: "b", Order: 3},
	}}
	sorted := r.SortedSteps()
	if sorted[0].Instruction != "a" || sorted[2].Instruction != "c" {
		t.Fatalf("unexpected order: %+v", sorted)
	}
	Renumber(sorted)
	for i, s := range sorted {
		if s.Order != i {
			t.Errorf("step %d has order %d", i, s.Order)
		}
	}
	if r.Steps[0].Order != 7 {
		t.Error("SortedSteps must not mutate the recipe")
	}
}

func TestRatingQueries(t *testing.T) {
	r := &Recipe{Sessions: []CookingSession{
		{ID: "a", Rating: 4, Suggestions: []string{"x"}},
		{ID: "b", PromptedForRating: true},
		{ID: "c"},
		{ID: "d", Rating: 2},
		{ID: "e", RatingFinalized: true},
	}}
	if got := r.AverageRating(); got != 3 {
		t.Errorf("AverageRating = %v, want 3", got)
	}
	if s := r.UnpromptedSession(); s == nil || s.ID != "c" {
		t.Errorf("UnpromptedSession = %+v, want c", s)
	}
	pending := r.DismissedUnratedSessions()
	if len(pending) != 1 || pending[0].ID != "b" {
		t.Errorf("DismissedUnratedSessions = %+v", pending)
	}
	if got := r.LatestSuggestions(); got != nil {
		t.Errorf("LatestSuggestions = %v, want nil (latest rated session has none)", got)
	}
}

func TestCloneIsDeep(t *testing.T) {
	r := &Recipe{
		Steps:    []Step{{Instruction: "a"}},
		Sessions: []CookingSession{{ID: "s", Suggestions: []string{"x"}}},
	}
	cp := r.Clone()
	cp.Steps[0].Instruction = "changed"
	cp.Sessions[0].Suggestions[0] = "y"
	if r.Steps[0].Instruction != "a" || r.Sessions[0].Suggestions[0] != "x" {
		t.Error("Clone shares memory with the original")
	}
}
