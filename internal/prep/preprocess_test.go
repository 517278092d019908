package prep

import (
	"testing"

	"github.com/hammamikhairi/stovetop/internal/domain"
)

func steps(instructions ...string) []domain.Step {
	out := make([]domain.Step, len(instructions))
	for i, in := range instructions {
		out[i] = domain.Step{Instruction: in, Order: i}
	}
	return out
}

func instructions(ss []domain.Step) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = s.Instruction
	}
	return out
}

func assertDense(t *testing.T, ss []domain.Step) {
	t.Helper()
	for i, s := range ss {
		if s.Order != i {
			t.Fatalf("step %d (%q) has order %d", i, s.Instruction, s.Order)
		}
	}
}

func TestChopAndHeatInserted(t *testing.T) {
	got := Preprocess(steps("Add chopped onions and fry until golden"))

	want := []string{
		"Chop the onions",
		HeatOilInstruction,
		"Add chopped onions and fry until golden",
	}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", instructions(got), want)
	}
	for i := range want {
		if got[i].Instruction != want[i] {
			t.Errorf("step %d = %q, want %q", i, got[i].Instruction, want[i])
		}
	}
	if got[1].DurationSeconds != 120 {
		t.Errorf("heat step duration = %d, want 120", got[1].DurationSeconds)
	}
	if got[0].DurationSeconds != 0 {
		t.Errorf("chop step should be untimed, got %d", got[0].DurationSeconds)
	}
	assertDense(t, got)
}

func TestExistingStepsSuppressInsertion(t *testing.T) {
	in := steps(
		"Heat 2 tbsp oil in a kadai",
		"Finely chop the onions",
		"Add chopped onions and sauté for 5 minutes",
	)
	got := Preprocess(in)
	if len(got) != len(in) {
		t.Errorf("expected no insertions, got %v", instructions(got))
	}
	assertDense(t, got)
}

func TestTimedParticiples(t *testing.T) {
	got := Preprocess(steps(
		"Mash the boiled potatoes",
		"Mix in the marinated chicken",
		"Top with toasted sesame.",
	))
	want := map[string]int{
		"Boil the potatoes":    600,
		"Marinate the chicken": 900,
		"Toast the sesame":     120,
	}
	found := 0
	for _, s := range got {
		if d, ok := want[s.Instruction]; ok {
			found++
			if s.DurationSeconds != d {
				t.Errorf("%q duration = %d, want %d", s.Instruction, s.DurationSeconds, d)
			}
		}
	}
	if found != len(want) {
		t.Errorf("found %d of %d timed prerequisites in %v", found, len(want), instructions(got))
	}
	assertDense(t, got)
}

func TestSinglePairAndSingleHeat(t *testing.T) {
	got := Preprocess(steps(
		"Fry the diced tomatoes",
		"Stir fry the diced tomatoes with garlic",
		"Sear the paneer",
	))
	dice, heat := 0, 0
	for _, s := range got {
		switch s.Instruction {
		case "Dice the tomatoes":
			dice++
		case HeatOilInstruction:
			heat++
		}
	}
	if dice != 1 {
		t.Errorf("dice step inserted %d times", dice)
	}
	if heat != 1 {
		t.Errorf("heat step inserted %d times", heat)
	}
	if got[0].Instruction != "Dice the tomatoes" || got[1].Instruction != HeatOilInstruction {
		t.Errorf("prerequisites must precede the first trigger in prep-then-heat order: %v", instructions(got))
	}
}

func TestPreprocessIdempotent(t *testing.T) {
	once := Preprocess(steps(
		"Add chopped onions and fry until golden",
		"Add grated ginger, minced garlic",
		"Simmer with soaked lentils for 20 minutes",
	))
	twice := Preprocess(once)
	if len(once) != len(twice) {
		t.Fatalf("second pass inserted steps:\n%v\n%v", instructions(once), instructions(twice))
	}
	for i := range once {
		if once[i] != twice[i] {
			t.Errorf("step %d changed: %+v -> %+v", i, once[i], twice[i])
		}
	}
}

func TestInputNotModified(t *testing.T) {
	in := steps("Add chopped onions and fry until golden")
	_ = Preprocess(in)
	if in[0].Order != 0 || len(in) != 1 {
		t.Errorf("input mutated: %+v", in)
	}
}

func TestSubjectAfter(t *testing.T) {
	tests := []struct {
		word, text, want string
	}{
		{"chopped", "add chopped onions and fry", "onions"},
		{"diced", "add diced green peppers to the pan", "green peppers"},
		{"minced", "add minced garlic, then stir", "garlic"},
		{"sliced", "add sliced", ""},
		{"grated", "top with grated and melted cheese", ""},
	}
	for _, tt := range tests {
		if got := subjectAfter(tt.word, tt.text); got != tt.want {
			t.Errorf("subjectAfter(%q, %q) = %q, want %q", tt.word, tt.text, got, tt.want)
		}
	}
}
