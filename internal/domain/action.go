package domain

// CookingAction classifies what a step does. It is derived from the
// instruction text and never stored.
type CookingAction int

const (
	ActionGeneral CookingAction = iota
	ActionBoil
	ActionSimmer
	ActionFry
	ActionStirFry
	ActionBake
	ActionGrill
	ActionSteam
	ActionRest
	ActionHeat
	ActionPrep
	ActionMix
	ActionPour
	ActionFlip
	ActionCoat
	ActionKnead
	ActionServe
	ActionCook
)

type actionInfo struct {
	name    string
	label   string
	icon    string
	seconds int // default timer, 0 = none
}

var actionTable = [...]actionInfo{
	ActionGeneral: {"general", "Step", "👀", 0},
	ActionBoil:    {"boil", "Boiling", "♨️", 600},
	ActionSimmer:  {"simmer", "Simmering", "🫕", 1200},
	ActionFry:     {"fry", "Frying", "🍳", 300},
	ActionStirFry: {"stir_fry", "Stir Frying", "🍳", 180},
	ActionBake:    {"bake", "Baking", "🧁", 1800},
	ActionGrill:   {"grill", "Grilling", "🥩", 600},
	ActionSteam:   {"steam", "Steaming", "💨", 600},
	ActionRest:    {"rest", "Resting", "⏳", 900},
	ActionHeat:    {"heat", "Heating", "🔥", 120},
	ActionPrep:    {"prep", "Prepping", "🔪", 0},
	ActionMix:     {"mix", "Mixing", "🥄", 0},
	ActionPour:    {"pour", "Adding", "🫗", 0},
	ActionFlip:    {"flip", "Flipping", "🥞", 60},
	ActionCoat:    {"coat", "Seasoning", "🧂", 0},
	ActionKnead:   {"knead", "Kneading", "🫓", 300},
	ActionServe:   {"serve", "Serving", "🍽️", 0},
	ActionCook:    {"cook", "Cooking", "🍲", 300},
}

// AllActions lists every cooking action in declaration order.
var AllActions = []CookingAction{
	ActionGeneral, ActionBoil, ActionSimmer, ActionFry, ActionStirFry,
	ActionBake, ActionGrill, ActionSteam, ActionRest, ActionHeat,
	ActionPrep, ActionMix, ActionPour, ActionFlip, ActionCoat,
	ActionKnead, ActionServe, ActionCook,
}

func (a CookingAction) info() actionInfo {
	if a < 0 || int(a) >= len(actionTable) {
		return actionTable[ActionGeneral]
	}
	return actionTable[a]
}

// String returns the snake_case action name.
func (a CookingAction) String() string { return a.info().name }

// Label returns the display label ("Boiling", "Stir Frying", ...).
func (a CookingAction) Label() string { return a.info().label }

// Icon returns an emoji for the action.
func (a CookingAction) Icon() string { return a.info().icon }

// DefaultSeconds returns the suggested timer for the action. Prep, mix,
// pour, coat, serve and general have none.
func (a CookingAction) DefaultSeconds() (int, bool) {
	s := a.info().seconds
	return s, s > 0
}
