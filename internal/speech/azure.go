package speech

import (
	"context"
	"fmt"
	"html"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/hammamikhairi/stovetop/internal/domain"
	"github.com/hammamikhairi/stovetop/internal/logger"
)

// Compile-time interface check.
var _ Synthesizer = (*AzureTTS)(nil)

// Synthesizer turns text into WAV audio.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string, pace domain.Pace) ([]byte, error)
	Voice() string
}

// AzureOption configures the Azure TTS client.
type AzureOption func(*AzureTTS)

// WithVoice sets the TTS voice.
func WithVoice(voice string) AzureOption {
	return func(c *AzureTTS) {
		if voice != "" {
			c.voice = voice
		}
	}
}

// WithAudioFormat sets the audio output format.
func WithAudioFormat(format string) AzureOption {
	return func(c *AzureTTS) {
		c.format = format
	}
}

// WithHTTPTimeout sets the timeout for TTS requests.
func WithHTTPTimeout(d time.Duration) AzureOption {
	return func(c *AzureTTS) {
		c.client.SetTimeout(d)
	}
}

// WithBaseURL points the client at another endpoint. Used by tests.
func WithBaseURL(url string) AzureOption {
	return func(c *AzureTTS) {
		c.client.SetBaseURL(url)
	}
}

// AzureTTS synthesizes speech via Azure Cognitive Services.
type AzureTTS struct {
	client *resty.Client
	voice  string
	format string
	log    *logger.Logger
}

// NewAzureTTS creates an Azure TTS client with the given credentials.
func NewAzureTTS(key, region string, log *logger.Logger, opts ...AzureOption) *AzureTTS {
	client := resty.New().
		SetBaseURL(fmt.Sprintf("https://%s.tts.speech.microsoft.com", region)).
		SetTimeout(DefaultHTTPTimeout).
		SetHeader("Ocp-Apim-Subscription-Key", key).
		SetHeader("User-Agent", "Stovetop/1.0")

	c := &AzureTTS{
		client: client,
		voice:  DefaultVoice,
		format: DefaultAudioFormat,
		log:    log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Voice returns the configured voice name.
func (c *AzureTTS) Voice() string { return c.voice }

// Synthesize converts text to WAV bytes, applying the pace's rate and pitch.
func (c *AzureTTS) Synthesize(ctx context.Context, text string, pace domain.Pace) ([]byte, error) {
	c.log.Debug("azure tts: synthesizing %d chars with voice %s", len(text), c.voice)

	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/ssml+xml").
		SetHeader("X-Microsoft-OutputFormat", c.format).
		SetBody(c.buildSSML(text, pace)).
		Post("/cognitiveservices/v1")
	if err != nil {
		return nil, fmt.Errorf("tts request failed: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("azure tts error %d: %s", resp.StatusCode(), resp.String())
	}

	audio := resp.Body()
	c.log.Debug("azure tts: got %d bytes of audio", len(audio))
	return audio, nil
}

// buildSSML wraps text in a voice and prosody element. Rate is a
// multiplier; pitch is a relative percentage.
func (c *AzureTTS) buildSSML(text string, pace domain.Pace) string {
	rate := strconv.FormatFloat(pace.Rate(), 'f', 2, 64)
	pitch := fmt.Sprintf("%+.0f%%", (pace.Pitch()-1)*100)
	return fmt.Sprintf(
		`<speak version='1.0' xml:lang='en-US'><voice xml:lang='en-US' name='%s'><prosody rate='%s' pitch='%s'>%s</prosody></voice></speak>`,
		c.voice, rate, pitch, html.EscapeString(text),
	)
}
