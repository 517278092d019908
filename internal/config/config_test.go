package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hammamikhairi/stovetop/internal/speech"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stovetop.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "{}\n"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Cook.AutoAdvance != 10 || cfg.Cook.AnnounceDelayDuration() != 500*time.Millisecond {
		t.Errorf("cook = %+v", cfg.Cook)
	}
	if cfg.Azure.Voice != speech.DefaultVoice || cfg.Log.Level != "normal" {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.SpeechMode() != speech.ModeText {
		t.Errorf("mode = %s", cfg.SpeechMode())
	}
}

func TestLoadFileAndEnv(t *testing.T) {
	path := writeConfig(t, `
voice:
  mode: azure
azure:
  region: westeurope
cook:
  auto_advance: 0
log:
  level: verbose
`)
	t.Setenv("STOVETOP_AZURE_KEY", "secret")
	t.Setenv("STOVETOP_COOK_ANNOUNCE_DELAY", "250")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Azure.Key != "secret" || cfg.Azure.Region != "westeurope" {
		t.Errorf("azure = %+v", cfg.Azure)
	}
	if cfg.Cook.AutoAdvance != 0 || cfg.Cook.AnnounceDelay != 250 {
		t.Errorf("cook = %+v", cfg.Cook)
	}
	if cfg.SpeechMode() != speech.ModeAzure {
		t.Errorf("mode = %s, want azure", cfg.SpeechMode())
	}
	if cfg.AI.Enabled() {
		t.Error("ai should stay off without an endpoint")
	}
}

func TestLoadAIFromEnv(t *testing.T) {
	t.Setenv("GPT_CHAT_KEY", "k")
	t.Setenv("STOVETOP_AI_ENDPOINT", "https://chat.example/v1/chat/completions")

	cfg, err := Load(writeConfig(t, "{}\n"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !cfg.AI.Enabled() || cfg.AI.Key != "k" {
		t.Errorf("ai = %+v", cfg.AI)
	}
}

func TestSpeechMode(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want speech.Mode
	}{
		{"disabled", Config{Voice: VoiceConfig{Enabled: false, Mode: "azure"}}, speech.ModeOff},
		{"azure without key", Config{Voice: VoiceConfig{Enabled: true, Mode: "azure"}}, speech.ModeText},
		{"azure", Config{Voice: VoiceConfig{Enabled: true, Mode: "Azure"}, Azure: AzureConfig{Key: "k", Region: "r"}}, speech.ModeAzure},
		{"off", Config{Voice: VoiceConfig{Enabled: true, Mode: "off"}}, speech.ModeOff},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.SpeechMode(); got != tt.want {
				t.Errorf("SpeechMode = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	for _, body := range []string{
		"voice:\n  mode: shout\n",
		"log:\n  level: loud\n",
		"cook:\n  auto_advance: -1\n",
	} {
		if _, err := Load(writeConfig(t, body)); err == nil {
			t.Errorf("expected an error for %q", body)
		}
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("an explicit missing file is an error")
	}
}
