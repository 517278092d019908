// Package conversation turns typed or transcribed commands into cooking
// intents and prints what the assistant has to say.
package conversation

import (
	"context"
	"regexp"
	"strings"

	"github.com/hammamikhairi/stovetop/internal/domain"
	"github.com/hammamikhairi/stovetop/internal/logger"
)

// Compile-time interface check.
var _ domain.IntentParser = (*KeywordParser)(nil)

// KeywordParser matches user input to intents using keywords and simple
// patterns. Transcribed speech is wordy ("okay, next step please"), so
// most patterns match on word boundaries rather than the whole input.
type KeywordParser struct {
	log      *logger.Logger
	patterns []patternRule
}

type patternRule struct {
	regex  *regexp.Regexp
	intent domain.IntentType
}

var heatPattern = regexp.MustCompile(`(?i)\b(low|med|medium|high)\b(\s+(heat|flame|fire))?`)

// NewKeywordParser creates a keyword-based intent parser.
func NewKeywordParser(log *logger.Logger) *KeywordParser {
	p := &KeywordParser{log: log}
	// Order matters: "go back" must not read as "go", "add a minute"
	// must not read as a timer toggle.
	p.patterns = []patternRule{
		{regexp.MustCompile(`(?i)^(quit|exit|q|stop cooking|end cooking|i'?m done)$`), domain.IntentQuit},
		{regexp.MustCompile(`(?i)^(help|h|\?)$|\bwhat can i say\b`), domain.IntentHelp},
		{regexp.MustCompile(`(?i)\b(add|one more|another|plus)\s+(a|one|1)?\s*minute\b|^\+1$|^\+$`), domain.IntentAddMinute},
		{regexp.MustCompile(`(?i)^(b|p|prev)$|\b(previous|go back|back|last step)\b`), domain.IntentPrevious},
		{regexp.MustCompile(`(?i)^(n)$|\b(next|done|continue|skip|move on)\b`), domain.IntentNext},
		{regexp.MustCompile(`(?i)^(t|go)$|\b(start|pause|resume|unpause|timer|hold on|wait)\b`), domain.IntentToggleTimer},
		{regexp.MustCompile(`(?i)^(r)$|\b(repeat|again|say that again|come again|what did you say)\b`), domain.IntentRepeat},
		{regexp.MustCompile(`(?i)^(s)$|\b(status|where am i|how long|time left|progress)\b`), domain.IntentStatus},
	}
	return p
}

// Parse converts user input into an intent. Unmatched input comes back
// as IntentUnknown carrying the text.
func (p *KeywordParser) Parse(ctx context.Context, input string) (*domain.Intent, error) {
	trimmed := strings.TrimSpace(strings.Trim(strings.TrimSpace(input), ".!,"))
	if trimmed == "" {
		return &domain.Intent{Type: domain.IntentUnknown}, nil
	}

	p.log.Debug("parsing input: %q", trimmed)

	// Heat carries a payload and beats every other keyword: "high heat,
	// then start" is a heat change.
	if m := heatPattern.FindStringSubmatch(trimmed); m != nil {
		if level, ok := domain.ParseHeatLevel(m[1]); ok {
			p.log.Debug("matched intent: %s (%s)", domain.IntentSwitchHeat, level)
			return &domain.Intent{Type: domain.IntentSwitchHeat, Payload: level.String()}, nil
		}
	}

	for _, rule := range p.patterns {
		if rule.regex.MatchString(trimmed) {
			p.log.Debug("matched intent: %s", rule.intent)
			return &domain.Intent{Type: rule.intent}, nil
		}
	}

	p.log.Debug("no match, returning unknown intent")
	return &domain.Intent{Type: domain.IntentUnknown, Payload: trimmed}, nil
}
