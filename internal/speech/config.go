package speech

import "time"

// Default voice for TTS.
// Full list: https://learn.microsoft.com/en-us/azure/ai-services/speech-service/language-support
const DefaultVoice = "en-US-AvaNeural"

// Audio format returned by Azure and expected by the player.
const DefaultAudioFormat = "riff-24khz-16bit-mono-pcm"

// Audio parameters matching the default format.
const (
	SampleRate   = 24000
	ChannelCount = 1
	BitDepth     = 16
)

// Env var names for Azure Speech credentials, read when the config file
// leaves them empty.
const (
	EnvAzureSpeechKey    = "AZURE_SPEECH_KEY"
	EnvAzureSpeechRegion = "AZURE_SPEECH_REGION"
)

// DefaultHTTPTimeout bounds a single synthesis request.
const DefaultHTTPTimeout = 30 * time.Second

// Mode selects the voice output.
type Mode string

const (
	ModeAzure Mode = "azure" // synthesized speech
	ModeText  Mode = "text"  // printed transcript
	ModeOff   Mode = "off"
)

// ParseMode maps a config string to a Mode, defaulting to text.
func ParseMode(s string) Mode {
	switch Mode(s) {
	case ModeAzure, ModeOff:
		return Mode(s)
	}
	return ModeText
}
