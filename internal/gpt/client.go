// Package gpt reads free-form cooking commands with an OpenAI-compatible
// chat model. It only runs for input the keyword parser could not place.
package gpt

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/hammamikhairi/stovetop/internal/logger"
)

// ErrEmptyReply is returned when the model sends no choices back.
var ErrEmptyReply = errors.New("gpt: empty response")

// ── Wire types ───────────────────────────────────────────────────

// Role constants.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is a single chat-completion message.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// payload is the request body sent to the chat-completions endpoint.
type payload struct {
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens"`
	Model       string    `json:"model,omitempty"`
}

type apiResponse struct {
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
}

// ── Client ───────────────────────────────────────────────────────

// ClientOption configures the Client.
type ClientOption func(*Client)

// WithModel sets the model name. Azure deployments leave it empty.
func WithModel(model string) ClientOption {
	return func(c *Client) { c.model = model }
}

// WithTemperature overrides the sampling temperature.
func WithTemperature(t float64) ClientOption {
	return func(c *Client) { c.temperature = t }
}

// WithHTTPTimeout sets the request timeout.
func WithHTTPTimeout(d time.Duration) ClientOption {
	return func(c *Client) { c.http.SetTimeout(d) }
}

// Client talks to an OpenAI-compatible chat-completions endpoint.
type Client struct {
	endpoint    string
	model       string
	temperature float64
	maxTokens   int
	http        *resty.Client
	log         *logger.Logger
}

// NewClient creates a chat client. endpoint is the full chat/completions
// URL; the key is sent both as "api-key" (Azure) and as a bearer token.
func NewClient(endpoint, apiKey string, log *logger.Logger, opts ...ClientOption) *Client {
	c := &Client{
		endpoint:    endpoint,
		temperature: 0,
		maxTokens:   60,
		http: resty.New().
			SetTimeout(10*time.Second).
			SetHeader("api-key", apiKey).
			SetAuthToken(apiKey),
		log: log,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Chat sends the messages and returns the assistant's reply.
func (c *Client) Chat(ctx context.Context, messages []Message) (string, error) {
	var result apiResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(payload{
			Messages:    messages,
			Temperature: c.temperature,
			MaxTokens:   c.maxTokens,
			Model:       c.model,
		}).
		SetResult(&result).
		Post(c.endpoint)
	if err != nil {
		return "", fmt.Errorf("gpt: request failed: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("gpt: API %s: %s", resp.Status(), resp.String())
	}
	if len(result.Choices) == 0 {
		return "", ErrEmptyReply
	}

	reply := result.Choices[0].Message.Content
	c.log.Debug("gpt: reply (%d chars): %s", len(reply), reply)
	return reply, nil
}
