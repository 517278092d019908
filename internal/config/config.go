// Package config loads stovetop settings from stovetop.yaml, the
// environment and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/hammamikhairi/stovetop/internal/speech"
)

// EnvPrefix is prepended to every environment key: STOVETOP_VOICE_MODE
// sets voice.mode.
const EnvPrefix = "STOVETOP"

// Config is the full application configuration.
type Config struct {
	Voice   VoiceConfig   `mapstructure:"voice"`
	Azure   AzureConfig   `mapstructure:"azure"`
	Whisper WhisperConfig `mapstructure:"whisper"`
	AI      AIConfig      `mapstructure:"ai"`
	Log     LogConfig     `mapstructure:"log"`
	Cook    CookConfig    `mapstructure:"cook"`
}

// VoiceConfig controls spoken output.
type VoiceConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Mode     string `mapstructure:"mode"` // azure, text or off
	CacheDir string `mapstructure:"cache_dir"`
}

// AzureConfig holds the speech service credentials.
type AzureConfig struct {
	Key    string `mapstructure:"key"`
	Region string `mapstructure:"region"`
	Voice  string `mapstructure:"voice"`
}

// WhisperConfig points at the local speech-to-text binary and model.
type WhisperConfig struct {
	Bin   string `mapstructure:"bin"`
	Model string `mapstructure:"model"`
}

// AIConfig points at an OpenAI-compatible chat endpoint used to read
// commands the keyword parser misses. Empty endpoint or key disables it.
type AIConfig struct {
	Endpoint string `mapstructure:"endpoint"`
	Key      string `mapstructure:"key"`
	Model    string `mapstructure:"model"`
}

// Enabled reports whether both the endpoint and key are set.
func (c AIConfig) Enabled() bool {
	return c.Endpoint != "" && c.Key != ""
}

// LogConfig sets verbosity and destination.
type LogConfig struct {
	Level string `mapstructure:"level"` // off, normal, verbose or debug
	File  string `mapstructure:"file"`
}

// CookConfig tunes the guided session.
type CookConfig struct {
	AutoAdvance   int `mapstructure:"auto_advance"`   // seconds, 0 disables
	AnnounceDelay int `mapstructure:"announce_delay"` // milliseconds
}

// AnnounceDelayDuration returns the first-step delay as a Duration.
func (c CookConfig) AnnounceDelayDuration() time.Duration {
	return time.Duration(c.AnnounceDelay) * time.Millisecond
}

// SpeechMode resolves the voice settings to a speech mode. Azure is
// only used when credentials are present.
func (c *Config) SpeechMode() speech.Mode {
	if !c.Voice.Enabled {
		return speech.ModeOff
	}
	mode := speech.ParseMode(strings.ToLower(c.Voice.Mode))
	if mode == speech.ModeAzure && (c.Azure.Key == "" || c.Azure.Region == "") {
		return speech.ModeText
	}
	return mode
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("voice.enabled", true)
	v.SetDefault("voice.mode", "text")
	v.SetDefault("voice.cache_dir", ".stovetop-cache")

	v.SetDefault("azure.key", "")
	v.SetDefault("azure.region", "")
	v.SetDefault("azure.voice", speech.DefaultVoice)

	v.SetDefault("whisper.bin", "whisper-cli")
	v.SetDefault("whisper.model", "bin/ggml-small.bin")

	v.SetDefault("ai.endpoint", "")
	v.SetDefault("ai.key", "")
	v.SetDefault("ai.model", "")

	v.SetDefault("log.level", "normal")
	v.SetDefault("log.file", ".stovetop-logs/stovetop.log")

	v.SetDefault("cook.auto_advance", 10)
	v.SetDefault("cook.announce_delay", 500)
}

// Load reads configuration. A missing .env or stovetop.yaml is not an
// error. When file is non-empty it is read instead of the search path.
func Load(file string) (*Config, error) {
	// .env is optional.
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// The speech SDK's own variable names work too.
	_ = v.BindEnv("azure.key", EnvPrefix+"_AZURE_KEY", speech.EnvAzureSpeechKey)
	_ = v.BindEnv("azure.region", EnvPrefix+"_AZURE_REGION", speech.EnvAzureSpeechRegion)
	_ = v.BindEnv("ai.key", EnvPrefix+"_AI_KEY", "GPT_CHAT_KEY")
	_ = v.BindEnv("ai.endpoint", EnvPrefix+"_AI_ENDPOINT", "GPT_CHAT_ENDPOINT")

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("stovetop")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/stovetop")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch strings.ToLower(c.Voice.Mode) {
	case "azure", "text", "off", "":
	default:
		return fmt.Errorf("voice.mode %q: want azure, text or off", c.Voice.Mode)
	}
	switch strings.ToLower(c.Log.Level) {
	case "off", "normal", "verbose", "debug":
	default:
		return fmt.Errorf("log.level %q: want off, normal or verbose", c.Log.Level)
	}
	if c.Cook.AutoAdvance < 0 {
		return fmt.Errorf("cook.auto_advance %d: must not be negative", c.Cook.AutoAdvance)
	}
	if c.Cook.AnnounceDelay < 0 {
		return fmt.Errorf("cook.announce_delay %d: must not be negative", c.Cook.AnnounceDelay)
	}
	return nil
}
