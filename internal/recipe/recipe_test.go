package recipe

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hammamikhairi/stovetop/internal/domain"
	"github.com/hammamikhairi/stovetop/internal/logger"
	"github.com/hammamikhairi/stovetop/internal/storage"
)

// failingStore rejects every save.
type failingStore struct {
	*storage.MemoryStore
}

func (failingStore) Save(context.Context, *domain.Recipe) error {
	return errors.New("disk full")
}

func TestImport(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	store := storage.NewMemoryStore(log)
	now := time.Date(2026, 2, 2, 9, 0, 0, 0, time.UTC)
	imp := NewImporter(store, log, WithClock(func() time.Time { return now }))
	ctx := context.Background()

	eggs, _ := LookupSample("eggs")
	r, err := imp.Import(ctx, "  "+eggs.Name+" ", eggs.Text)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if r.ID == "" || r.Name != "Soft Boiled Eggs" || !r.CreatedAt.Equal(now) {
		t.Errorf("recipe = %+v", r)
	}

	wantSeconds := []int{360, 120, 0}
	if len(r.Steps) != len(wantSeconds) {
		t.Fatalf("steps = %+v", r.Steps)
	}
	for i, want := range wantSeconds {
		if r.Steps[i].DurationSeconds != want || r.Steps[i].Order != i {
			t.Errorf("step %d = %+v, want %ds", i, r.Steps[i], want)
		}
	}

	names := map[string]bool{}
	for _, ing := range r.Ingredients {
		names[ing.Name] = true
	}
	if !names["Eggs"] || !names["Water"] {
		t.Errorf("ingredients = %+v", r.Ingredients)
	}

	stored, err := store.Get(ctx, r.ID)
	if err != nil || stored.Name != r.Name {
		t.Errorf("stored = %+v, err = %v", stored, err)
	}
}

func TestImportSuggestsTimers(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	imp := NewImporter(storage.NewMemoryStore(log), log)

	r, err := imp.Import(context.Background(), "Pasta", "Boil the pasta in salted water.\nServe with parmesan on top.")
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if r.Steps[0].DurationSeconds != 600 {
		t.Errorf("boil step = %ds, want the 600s suggestion", r.Steps[0].DurationSeconds)
	}
	if r.Steps[len(r.Steps)-1].DurationSeconds != 0 {
		t.Error("serving has no suggested timer")
	}
	if r.Category != "pasta" {
		t.Errorf("category = %q", r.Category)
	}
}

func TestImportErrors(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	ctx := context.Background()
	imp := NewImporter(storage.NewMemoryStore(log), log)

	tests := []struct {
		name, recipe, text string
		want               error
	}{
		{"blank name", " ", "Boil water for 5 minutes.", domain.ErrMissingName},
		{"blank text", "Soup", "\n\t", domain.ErrMissingName},
		{"nothing parseable", "Soup", "12\n34\nabc", domain.ErrEmptyInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := imp.Import(ctx, tt.recipe, tt.text)
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
			if r != nil {
				t.Error("no recipe should come back")
			}
		})
	}

	failing := NewImporter(failingStore{storage.NewMemoryStore(log)}, log)
	r, err := failing.Import(ctx, "Eggs", "Boil the eggs for 6 minutes.")
	if !errors.Is(err, ErrSaveFailed) || err.Error() != "save failed: disk full" {
		t.Fatalf("err = %v", err)
	}
	if r == nil || len(r.Steps) != 1 {
		t.Error("the built recipe should come back for a retry")
	}
}

func TestMergeIngredients(t *testing.T) {
	listed := []domain.Ingredient{{Name: "Garlic", Quantity: "4 cloves"}}
	extracted := []domain.Ingredient{{Name: "garlic", Quantity: "As needed"}, {Name: "Salt", Quantity: "1 tsp"}}

	got := mergeIngredients(listed, extracted)
	if len(got) != 2 || got[0].Quantity != "4 cloves" || got[1].Name != "Salt" {
		t.Errorf("merged = %+v", got)
	}
}

func TestStepEdits(t *testing.T) {
	r := &domain.Recipe{Steps: domain.Renumber([]domain.Step{
		{Instruction: "A step"}, {Instruction: "B step"}, {Instruction: "C step"},
	})}

	if err := AddStep(r, "2. simmer for 4 minutes"); err != nil {
		t.Fatal(err)
	}
	if last := r.Steps[3]; last.Instruction != "Simmer for 4 minutes" || last.DurationSeconds != 240 || last.Order != 3 {
		t.Errorf("added step = %+v", last)
	}

	if err := MoveStep(r, 3, 0); err != nil {
		t.Fatal(err)
	}
	if err := RemoveStep(r, 2); err != nil {
		t.Fatal(err)
	}
	want := []string{"Simmer for 4 minutes", "A step", "C step"}
	for i, s := range r.Steps {
		if s.Instruction != want[i] || s.Order != i {
			t.Errorf("step %d = %+v, want %q", i, s, want[i])
		}
	}

	if err := UpdateStep(r, 1, "Bake for 20 minutes", -1); err != nil {
		t.Fatal(err)
	}
	if r.Steps[1].DurationSeconds != 1200 {
		t.Errorf("updated step = %+v", r.Steps[1])
	}
	if err := UpdateStep(r, 1, "Bake", 0); err != nil || r.Steps[1].DurationSeconds != 0 {
		t.Errorf("clearing timer: %+v, %v", r.Steps[1], err)
	}

	for _, err := range []error{RemoveStep(r, 5), MoveStep(r, 0, -1), UpdateStep(r, 3, "x", 0)} {
		if !errors.Is(err, domain.ErrIndexOutOfRange) {
			t.Errorf("err = %v, want ErrIndexOutOfRange", err)
		}
	}
}

func TestIngredientEdits(t *testing.T) {
	r := &domain.Recipe{}

	if err := AddIngredient(r, " Basil ", ""); err != nil {
		t.Fatal(err)
	}
	if err := AddIngredient(r, "Feta", "200 g"); err != nil {
		t.Fatal(err)
	}
	if err := AddIngredient(r, "  ", "1"); !errors.Is(err, domain.ErrMissingName) {
		t.Errorf("blank name: err = %v", err)
	}
	if r.Ingredients[0].Name != "Basil" || r.Ingredients[0].Quantity != domain.AsNeeded {
		t.Errorf("ingredient = %+v", r.Ingredients[0])
	}

	if err := ToggleIngredient(r, 1); err != nil || !r.Ingredients[1].Checked {
		t.Errorf("toggle: %+v, %v", r.Ingredients[1], err)
	}
	if err := RemoveIngredient(r, 0); err != nil || len(r.Ingredients) != 1 || r.Ingredients[0].Name != "Feta" {
		t.Errorf("remove: %+v, %v", r.Ingredients, err)
	}
	if err := ToggleIngredient(r, 4); !errors.Is(err, domain.ErrIndexOutOfRange) {
		t.Errorf("err = %v", err)
	}
}

func TestScaleQuantity(t *testing.T) {
	tests := []struct {
		quantity   string
		multiplier float64
		want       string
	}{
		{"2 cups", 3, "6 cups"},
		{"500g", 2, "1000 g"},
		{"1 tbsp", 1.5, "1.5 tbsp"},
		{"3", 1.5, "4.5"},
		{"As needed", 4, "As needed"},
		{"2 cups", 1, "2 cups"},
		{"a pinch", 2, "a pinch"},
	}
	for _, tt := range tests {
		if got := ScaleQuantity(tt.quantity, tt.multiplier); got != tt.want {
			t.Errorf("ScaleQuantity(%q, %v) = %q, want %q", tt.quantity, tt.multiplier, got, tt.want)
		}
	}

	scaled := Scale([]domain.Ingredient{{Name: "Rice", Quantity: "1 cup"}}, 2)
	if scaled[0].Quantity != "2 cup" {
		t.Errorf("Scale = %+v", scaled)
	}
}

func TestParseFraction(t *testing.T) {
	tests := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"1/2", 0.5, true},
		{" 3/4 ", 0.75, true},
		{"2.5", 2.5, true},
		{"4", 4, true},
		{"1/0", 0, false},
		{"lots", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseFraction(tt.in)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ParseFraction(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestDetectCategory(t *testing.T) {
	tests := []struct {
		name  string
		steps []string
		want  Category
	}{
		{"Chocolate Brownies", nil, CategoryCake},
		{"Sourdough", []string{"Shape the loaf"}, CategoryBread},
		{"Chicken Biryani", nil, CategoryRice},
		{"Weeknight dinner", []string{"Boil the spaghetti"}, CategoryPasta},
		{"Chana Masala", nil, CategoryCurry},
		{"Greek Salad", nil, CategorySalad},
		{"Clam Chowder", nil, CategorySoup},
		{"Omelette", []string{"Whisk the eggs"}, CategoryGeneral},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectCategory(tt.name, tt.steps); got != tt.want {
				t.Errorf("DetectCategory = %s, want %s", got, tt.want)
			}
		})
	}

	if CategoryCake.UnitLabel() != "pound" || len(CategoryCake.Presets()) != 5 {
		t.Error("cake presets")
	}
	if len(CategorySalad.Presets()) != 3 || ParseCategory("soup") != CategorySoup || ParseCategory("?") != CategoryGeneral {
		t.Error("category lookup")
	}
}

func TestSamplesImport(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	imp := NewImporter(storage.NewMemoryStore(log), log)
	for _, key := range SampleKeys() {
		s, _ := LookupSample(key)
		r, err := imp.Import(context.Background(), s.Name, s.Text)
		if err != nil {
			t.Errorf("%s: %v", key, err)
			continue
		}
		if len(r.Steps) == 0 {
			t.Errorf("%s: no steps", key)
		}
	}
}
