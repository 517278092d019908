package catalog

import (
	"testing"

	"github.com/hammamikhairi/stovetop/internal/domain"
)

func TestDetectAction(t *testing.T) {
	tests := []struct {
		input string
		want  domain.CookingAction
	}{
		{"Stir fry the vegetables for 3 minutes", domain.ActionStirFry},
		{"Stir-fry the tofu", domain.ActionStirFry},
		{"Deep fry the pakoras", domain.ActionFry},
		{"Pan-fry the dumplings and flip", domain.ActionFry},
		{"Flip the pancake", domain.ActionFlip},
		{"Bake at 180° for 25 minutes", domain.ActionBake},
		{"Bring to a boil", domain.ActionBoil},
		{"Simmer gently", domain.ActionSimmer},
		{"Sauté the garlic", domain.ActionFry},
		{"Grill the paneer", domain.ActionGrill},
		{"Steam the dumplings", domain.ActionSteam},
		{"Knead the dough until smooth", domain.ActionKnead},
		{"Chop the onions finely", domain.ActionPrep},
		{"Whisk the eggs", domain.ActionMix},
		{"Drizzle honey on top", domain.ActionPour},
		{"Marinate the chicken", domain.ActionCoat},
		{"Let it rest", domain.ActionRest},
		{"Preheat the pan", domain.ActionHeat},
		{"Garnish with coriander", domain.ActionServe},
		{"Cook until soft", domain.ActionCook},
		{"Enjoy!", domain.ActionGeneral},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := DetectAction(tt.input); got != tt.want {
				t.Errorf("DetectAction(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestEffectiveDuration(t *testing.T) {
	d, action, ok := EffectiveDuration(domain.Step{Instruction: "Stir fry the vegetables"})
	if !ok || d != 180 || action != domain.ActionStirFry {
		t.Errorf("got (%d, %s, %v), want (180, stir_fry, true)", d, action, ok)
	}

	d, _, ok = EffectiveDuration(domain.Step{Instruction: "Stir fry the vegetables for 3 minutes", DurationSeconds: 240})
	if !ok || d != 240 {
		t.Errorf("explicit duration should win, got %d", d)
	}

	if _, _, ok := EffectiveDuration(domain.Step{Instruction: "Serve hot"}); ok {
		t.Error("serve has no default duration")
	}
}

func TestExtractIngredients(t *testing.T) {
	got := ExtractIngredients([]string{
		"Heat 2 tbsp olive oil in a pan",
		"Add 2 onions and garlic",
		"Add 200g chicken and a pinch of salt",
	})

	want := map[string]string{
		"Chicken":   "200g",
		"Garlic":    "4 cloves",
		"Olive Oil": "2 tbsp",
		"Onions":    "2",
		"Salt":      "1 tsp",
	}
	byName := make(map[string]string)
	for _, ing := range got {
		byName[ing.Name] = ing.Quantity
	}
	for name, qty := range want {
		if byName[name] != qty {
			t.Errorf("%s quantity = %q, want %q", name, byName[name], qty)
		}
	}
	if _, ok := byName["Oil"]; !ok {
		t.Error("expected plain Oil to be reported from the olive oil mention")
	}
	for i := 1; i < len(got); i++ {
		if got[i-1].Name > got[i].Name {
			t.Fatalf("not sorted: %q before %q", got[i-1].Name, got[i].Name)
		}
	}
}

func TestExtractIngredientsDeterministic(t *testing.T) {
	in := []string{"Boil rice in water with salt and butter"}
	a := ExtractIngredients(in)
	b := ExtractIngredients(in)
	if len(a) != len(b) {
		t.Fatal("length differs between runs")
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("run differs at %d: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestDefaultQuantity(t *testing.T) {
	tests := map[string]string{
		"onion":          "2 medium",
		"Fresh Garlic":   "4 cloves",
		"coconut milk":   "1 cup",
		"dragon fruit":   domain.AsNeeded,
		"extra basil":    "1 tsp",
		"vegetable oil":  "3 tbsp",
		"large tomatoes": "3 medium",
	}
	for in, want := range tests {
		if got := DefaultQuantity(in); got != want {
			t.Errorf("DefaultQuantity(%q) = %q, want %q", in, got, want)
		}
	}
	if got := DefaultUnit("onion"); got != "medium" {
		t.Errorf("DefaultUnit(onion) = %q, want medium", got)
	}
	if got := DefaultUnit("unobtainium"); got != "" {
		t.Errorf("DefaultUnit(unknown) = %q, want empty", got)
	}
}
