package catalog

import (
	"strings"

	"github.com/hammamikhairi/stovetop/internal/domain"
)

// actionRule maps substring cues to an action.
type actionRule struct {
	cues   []string
	action domain.CookingAction
}

// actionRules is evaluated top to bottom and the first hit wins. The order
// is load-bearing: multi-word cues ("stir fry", "deep fry") sit above the
// single words they contain, and frying sits above flipping so "pan-fry
// and flip" stays a fry.
var actionRules = []actionRule{
	{[]string{"stir fry", "stir-fry"}, domain.ActionStirFry},
	{[]string{"deep fry", "deep-fry"}, domain.ActionFry},
	{[]string{"bake", "roast", "oven"}, domain.ActionBake},
	{[]string{"boil", "blanch"}, domain.ActionBoil},
	{[]string{"simmer", "reduce"}, domain.ActionSimmer},
	{[]string{"fry", "sauté", "saute", "sear", "pan "}, domain.ActionFry},
	{[]string{"flip", "turn over", "turn the"}, domain.ActionFlip},
	{[]string{"grill", "broil", "char"}, domain.ActionGrill},
	{[]string{"steam"}, domain.ActionSteam},
	{[]string{"knead", "roll out", "flatten", "shape"}, domain.ActionKnead},
	{[]string{"chop", "dice", "slice", "mince", "cut", "peel", "trim", "grate", "crush", "julienne"}, domain.ActionPrep},
	{[]string{"mix", "stir", "whisk", "blend", "fold", "combine", "beat", "cream", "toss"}, domain.ActionMix},
	{[]string{"pour", "drizzle", "add", "sprinkle"}, domain.ActionPour},
	{[]string{"season", "coat", "marinate", "rub", "brush", "glaze"}, domain.ActionCoat},
	{[]string{"rest", "soak", "cool", "chill", "set aside", "let it", "refrigerat"}, domain.ActionRest},
	{[]string{"preheat", "heat", "warm"}, domain.ActionHeat},
	{[]string{"serve", "plate", "garnish", "top with", "arrange", "transfer"}, domain.ActionServe},
	{[]string{"cook"}, domain.ActionCook},
}

// DetectAction classifies an instruction. Returns ActionGeneral when no
// cue matches.
func DetectAction(instruction string) domain.CookingAction {
	lower := strings.ToLower(instruction)
	for _, rule := range actionRules {
		for _, cue := range rule.cues {
			if strings.Contains(lower, cue) {
				return rule.action
			}
		}
	}
	return domain.ActionGeneral
}

// SuggestDuration returns the default timer for an action, if it has one.
func SuggestDuration(action domain.CookingAction) (int, bool) {
	return action.DefaultSeconds()
}

// EffectiveDuration is the step's explicit duration, else the suggested
// default for its detected action. The bool is false when neither exists.
func EffectiveDuration(step domain.Step) (int, domain.CookingAction, bool) {
	action := DetectAction(step.Instruction)
	if step.HasDuration() {
		return step.DurationSeconds, action, true
	}
	d, ok := SuggestDuration(action)
	return d, action, ok
}
