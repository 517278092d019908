package gpt

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/hammamikhairi/stovetop/internal/domain"
	"github.com/hammamikhairi/stovetop/internal/logger"
)

// Compile-time interface check.
var _ domain.IntentParser = (*Classifier)(nil)

// Chatter is the part of Client the classifier needs.
type Chatter interface {
	Chat(ctx context.Context, messages []Message) (string, error)
}

// Classifier parses with a base parser first and asks the model only when
// the base parser returns IntentUnknown. Model failures leave the intent
// unknown; they are never returned as errors.
type Classifier struct {
	base domain.IntentParser
	chat Chatter
	log  *logger.Logger
}

// NewClassifier wraps base with a model fallback.
func NewClassifier(base domain.IntentParser, chat Chatter, log *logger.Logger) *Classifier {
	return &Classifier{base: base, chat: chat, log: log}
}

type classifyResponse struct {
	Intent  string `json:"intent"`
	Payload string `json:"payload"`
}

// Parse implements domain.IntentParser.
func (c *Classifier) Parse(ctx context.Context, input string) (*domain.Intent, error) {
	intent, err := c.base.Parse(ctx, input)
	if err != nil || intent.Type != domain.IntentUnknown || intent.Payload == "" {
		return intent, err
	}

	raw, err := c.chat.Chat(ctx, []Message{
		{Role: RoleSystem, Content: PromptClassify},
		{Role: RoleUser, Content: intent.Payload},
	})
	if err != nil {
		c.log.Warn("gpt: classify %q: %v", intent.Payload, err)
		return intent, nil
	}

	var resp classifyResponse
	if err := json.Unmarshal([]byte(stripCodeFence(raw)), &resp); err != nil {
		c.log.Warn("gpt: bad classify reply %q: %v", raw, err)
		return intent, nil
	}

	classified := &domain.Intent{Type: domain.IntentFromString(resp.Intent), Payload: resp.Payload}
	if classified.Type == domain.IntentSwitchHeat {
		level, ok := domain.ParseHeatLevel(resp.Payload)
		if !ok {
			return intent, nil
		}
		classified.Payload = level.String()
	}
	if classified.Type == domain.IntentUnknown {
		classified.Payload = intent.Payload
	}
	c.log.Info("gpt: classified %q -> %s", intent.Payload, classified.Type)
	return classified, nil
}

// stripCodeFence removes ```json ... ``` wrappers models like to add.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
