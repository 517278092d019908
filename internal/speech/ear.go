package speech

import (
	"context"
	"os/exec"
	"regexp"
	"strings"
	"sync"
	"time"

	audiotranscriber "github.com/sklyt/whisper/pkg"

	"github.com/hammamikhairi/stovetop/internal/logger"
)

// Voice is the part of a speaker the ear needs for echo control.
type Voice interface {
	Speaking() bool
	Stop()
}

type earState int

const (
	// earDormant probes short clips for the wake word.
	earDormant earState = iota
	// earListening captures the command after the wake word.
	earListening
)

// Default wake phrases, matched case-insensitively.
var defaultWakeWords = []string{
	"hey chef",
	"hey, chef",
	"hey shef",
	"stovetop",
	"stove top",
}

// EarOption configures the Ear.
type EarOption func(*Ear)

// WithRecordDuration sets how long each active-listening chunk lasts.
func WithRecordDuration(d time.Duration) EarOption {
	return func(e *Ear) { e.recordDuration = d }
}

// WithDormantDuration sets how long each wake-word probe lasts.
func WithDormantDuration(d time.Duration) EarOption {
	return func(e *Ear) { e.dormantDuration = d }
}

// WithListenTimeout caps the active listening window.
func WithListenTimeout(d time.Duration) EarOption {
	return func(e *Ear) { e.listenTimeout = d }
}

// WithTempDir sets the directory for temporary WAV files.
func WithTempDir(dir string) EarOption {
	return func(e *Ear) { e.tempDir = dir }
}

// WithWakeWords overrides the default wake phrases.
func WithWakeWords(words ...string) EarOption {
	return func(e *Ear) { e.wakeWords = words }
}

// WithEchoControl silences the voice when the wake word is heard and
// skips recording while it talks.
func WithEchoControl(v Voice) EarOption {
	return func(e *Ear) { e.voice = v }
}

// WithAcknowledge sets a callback for the "I'm listening" filler.
func WithAcknowledge(fn func(string)) EarOption {
	return func(e *Ear) { e.ack = fn }
}

// Ear turns spoken commands into text using a local Whisper model.
//
// While dormant it transcribes short clips and discards everything
// without a wake word. "hey chef next" is delivered at once; a bare
// "hey chef" switches to listening, which accumulates chunks until a
// silence or the timeout, then delivers the text and goes dormant again.
type Ear struct {
	whisperBin string
	modelPath  string
	tempDir    string
	log        *logger.Logger
	voice      Voice
	ack        func(string)

	wakeWords       []string
	recordDuration  time.Duration
	dormantDuration time.Duration
	listenTimeout   time.Duration

	// record captures one clip and returns its transcription.
	record func(ctx context.Context, d time.Duration) string

	mu     sync.Mutex
	state  earState
	textCh chan string
}

// NewEar creates a voice input listener.
func NewEar(whisperBin, modelPath string, log *logger.Logger, opts ...EarOption) *Ear {
	e := &Ear{
		whisperBin:      whisperBin,
		modelPath:       modelPath,
		tempDir:         ".stovetop-stt",
		log:             log,
		wakeWords:       defaultWakeWords,
		recordDuration:  1 * time.Second,
		dormantDuration: 3 * time.Second,
		listenTimeout:   15 * time.Second,
		textCh:          make(chan string, 8),
	}
	e.record = e.recordChunk
	for _, opt := range opts {
		opt(e)
	}

	if _, err := exec.LookPath(e.whisperBin); err != nil {
		log.Error("ear: whisper binary %q not found in PATH: %v", e.whisperBin, err)
	}
	return e
}

// C receives transcribed commands.
func (e *Ear) C() <-chan string {
	return e.textCh
}

// Run listens until ctx is cancelled. Call it in a goroutine.
func (e *Ear) Run(ctx context.Context) {
	e.log.Info("ear: started (dormant=%s, active=%s, timeout=%s)",
		e.dormantDuration, e.recordDuration, e.listenTimeout)

	for {
		select {
		case <-ctx.Done():
			e.log.Info("ear: stopped")
			return
		default:
		}

		switch e.getState() {
		case earDormant:
			e.doDormant(ctx)
		case earListening:
			e.doListening(ctx)
		}
	}
}

func (e *Ear) getState() earState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

func (e *Ear) setState(s earState) {
	e.mu.Lock()
	e.state = s
	e.mu.Unlock()
}

func (e *Ear) voiceBusy() bool {
	return e.voice != nil && e.voice.Speaking()
}

func (e *Ear) send(ctx context.Context, text string) {
	e.log.Info("ear: heard command: %q", text)
	select {
	case e.textCh <- text:
	case <-ctx.Done():
	}
}

// ── Dormant mode ─────────────────────────────────────────────────

func (e *Ear) doDormant(ctx context.Context) {
	if e.voiceBusy() {
		sleepCtx(ctx, 200*time.Millisecond)
		return
	}

	text := e.record(ctx, e.dormantDuration)
	// the voice started mid-recording: the clip has our own speech in it
	if e.voiceBusy() {
		return
	}

	text = cleanTranscription(text)
	if text == "" {
		return
	}
	rest, ok := stripWakeWord(text, e.wakeWords)
	if !ok {
		return
	}

	e.log.Debug("ear: wake word in %q", text)
	if e.voice != nil {
		e.voice.Stop()
	}

	if rest = cleanTranscription(rest); rest != "" {
		e.send(ctx, rest)
		return
	}

	if e.ack != nil {
		e.ack(LineListening())
	}
	e.setState(earListening)
}

// ── Active listening mode ────────────────────────────────────────

const (
	silentChunksBeforeSpeech = 4
	silentChunksAfterSpeech  = 2
)

func (e *Ear) doListening(ctx context.Context) {
	defer e.setState(earDormant)

	deadline := time.After(e.listenTimeout)
	var parts []string
	silent := 0

	for {
		select {
		case <-ctx.Done():
			return
		case <-deadline:
			e.log.Debug("ear: listen timeout reached")
			e.flush(ctx, parts)
			return
		default:
		}

		chunk := cleanTranscription(e.record(ctx, e.recordDuration))
		if chunk == "" {
			silent++
			limit := silentChunksBeforeSpeech
			if len(parts) > 0 {
				limit = silentChunksAfterSpeech
			}
			if silent >= limit {
				e.flush(ctx, parts)
				return
			}
			continue
		}

		silent = 0
		if chunk = removeWakeWords(chunk, e.wakeWords); chunk != "" {
			parts = append(parts, chunk)
		}
	}
}

func (e *Ear) flush(ctx context.Context, parts []string) {
	combined := strings.TrimSpace(strings.Join(parts, " "))
	if combined == "" {
		e.log.Debug("ear: listening ended with no input")
		return
	}
	e.send(ctx, combined)
}

// ── Wake word matching ───────────────────────────────────────────

// stripWakeWord finds a wake word and returns the text after it. ok is
// false when there is no wake word.
func stripWakeWord(text string, wakeWords []string) (rest string, ok bool) {
	lower := strings.ToLower(text)
	for _, w := range wakeWords {
		idx := strings.Index(lower, strings.ToLower(w))
		if idx < 0 {
			continue
		}
		rest = strings.TrimSpace(lower[idx+len(w):])
		return strings.TrimLeft(rest, " ,.!?"), true
	}
	return "", false
}

// removeWakeWords drops repeated wake words from a command.
func removeWakeWords(text string, wakeWords []string) string {
	lower := strings.ToLower(text)
	for _, w := range wakeWords {
		lower = strings.ReplaceAll(lower, strings.ToLower(w), "")
	}
	return strings.Join(strings.Fields(lower), " ")
}

// ── Recording ────────────────────────────────────────────────────

// recordChunk records for duration and returns the transcription.
func (e *Ear) recordChunk(ctx context.Context, duration time.Duration) string {
	var result string
	var wg sync.WaitGroup
	wg.Add(1)

	callback := func(text string) {
		result = text
		wg.Done()
	}

	verbose := e.log.GetLevel() >= logger.LevelVerbose
	t, err := audiotranscriber.NewTranscriber(e.whisperBin, e.modelPath, e.tempDir, "wav", callback, verbose)
	if err != nil {
		e.log.Error("ear: transcriber init failed: %v", err)
		sleepCtx(ctx, 2*time.Second)
		return ""
	}
	if err := t.Start(); err != nil {
		e.log.Error("ear: recording start failed: %v", err)
		sleepCtx(ctx, 2*time.Second)
		return ""
	}

	select {
	case <-time.After(duration):
	case <-ctx.Done():
	}
	t.Stop()
	wg.Wait()

	if ctx.Err() != nil {
		return ""
	}
	return result
}

func sleepCtx(ctx context.Context, d time.Duration) {
	select {
	case <-time.After(d):
	case <-ctx.Done():
	}
}

// ── Transcription cleanup ────────────────────────────────────────

// annotation matches whisper's environmental notes: "(keyboard clicking)",
// "[BLANK_AUDIO]", "[Music]".
var annotation = regexp.MustCompile(`[\(\[][A-Za-z][A-Za-z_\s]*[\)\]]`)

// timestamp matches "[00:00:00.000 --> 00:00:05.000]".
var timestamp = regexp.MustCompile(`^\[[0-9:.\s\->]+\]`)

// hallucinations are whole transcriptions whisper invents from silence.
var hallucinations = map[string]bool{
	"...":                     true,
	"you":                     true,
	"thank you.":              true,
	"thanks for watching!":    true,
	"thank you for watching.": true,
	"bye.":                    true,
	"the end.":                true,
}

// cleanTranscription strips timestamps and annotations, collapses
// whitespace, and drops known hallucinations.
func cleanTranscription(s string) string {
	s = strings.TrimSpace(s)
	s = timestamp.ReplaceAllString(s, "")
	s = annotation.ReplaceAllString(s, "")
	s = strings.Join(strings.Fields(s), " ")
	if hallucinations[strings.ToLower(s)] {
		return ""
	}
	return s
}
