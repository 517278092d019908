package domain

// IntentType classifies what the user wants to do during guided cooking.
type IntentType int

const (
	IntentUnknown IntentType = iota
	IntentNext
	IntentPrevious
	IntentToggleTimer
	IntentAddMinute
	IntentSwitchHeat // Payload carries "low", "medium" or "high"
	IntentRepeat     // re-announce the current step
	IntentStatus
	IntentHelp
	IntentQuit
)

// String returns a human-readable intent type.
func (i IntentType) String() string {
	switch i {
	case IntentNext:
		return "next"
	case IntentPrevious:
		return "previous"
	case IntentToggleTimer:
		return "toggle_timer"
	case IntentAddMinute:
		return "add_minute"
	case IntentSwitchHeat:
		return "switch_heat"
	case IntentRepeat:
		return "repeat"
	case IntentStatus:
		return "status"
	case IntentHelp:
		return "help"
	case IntentQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Intent represents a parsed user action.
type Intent struct {
	Type    IntentType
	Payload string
}

// intentNames maps snake_case names to IntentType values.
var intentNames = map[string]IntentType{
	"next":         IntentNext,
	"previous":     IntentPrevious,
	"toggle_timer": IntentToggleTimer,
	"add_minute":   IntentAddMinute,
	"switch_heat":  IntentSwitchHeat,
	"repeat":       IntentRepeat,
	"status":       IntentStatus,
	"help":         IntentHelp,
	"quit":         IntentQuit,
	"unknown":      IntentUnknown,
}

// IntentFromString converts a snake_case intent name to an IntentType.
// Returns IntentUnknown for unrecognized names.
func IntentFromString(name string) IntentType {
	if t, ok := intentNames[name]; ok {
		return t
	}
	return IntentUnknown
}
