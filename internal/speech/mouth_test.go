package speech

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/hammamikhairi/stovetop/internal/domain"
	"github.com/hammamikhairi/stovetop/internal/logger"
)

// mockSynth returns fixed audio and counts calls.
type mockSynth struct {
	mu    sync.Mutex
	calls int
	err   error
}

func (m *mockSynth) Synthesize(_ context.Context, text string, _ domain.Pace) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return []byte(text), nil
}

func (m *mockSynth) Voice() string { return "test-voice" }

func (m *mockSynth) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// mockPlayer plays until released or stopped.
type mockPlayer struct {
	release chan struct{}
}

func (p *mockPlayer) Play(ctx context.Context, _ []byte) error {
	if p.release == nil {
		return nil
	}
	select {
	case <-p.release:
	case <-ctx.Done():
	}
	return nil
}

func (p *mockPlayer) Stop() {}

func nextEvent(t *testing.T, ch <-chan domain.SpeechEvent) domain.SpeechEvent {
	t.Helper()
	select {
	case ev := <-ch:
		return ev
	case <-time.After(time.Second):
		t.Fatal("no speech event")
	}
	return domain.SpeechEvent{}
}

func TestMouthFinishes(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	m := NewMouth(&mockSynth{}, &mockPlayer{}, log)

	if err := m.Speak(context.Background(), domain.Utterance{ID: 7, Text: "Step 1."}); err != nil {
		t.Fatalf("speak: %v", err)
	}
	ev := nextEvent(t, m.Events())
	if ev.ID != 7 || !ev.Finished {
		t.Errorf("event = %+v", ev)
	}
	if m.Speaking() {
		t.Error("still speaking after finish")
	}
}

func TestMouthLatestWins(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	player := &mockPlayer{release: make(chan struct{})}
	m := NewMouth(&mockSynth{}, player, log)
	ctx := context.Background()

	m.Speak(ctx, domain.Utterance{ID: 1, Text: "first"})
	m.Speak(ctx, domain.Utterance{ID: 2, Text: "second"})

	ev := nextEvent(t, m.Events())
	if ev.ID != 1 || ev.Finished {
		t.Errorf("first utterance should be cancelled, got %+v", ev)
	}

	close(player.release)
	ev = nextEvent(t, m.Events())
	if ev.ID != 2 || !ev.Finished {
		t.Errorf("second utterance should finish, got %+v", ev)
	}

	select {
	case extra := <-m.Events():
		t.Errorf("unexpected extra event %+v", extra)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestMouthStop(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	m := NewMouth(&mockSynth{}, &mockPlayer{release: make(chan struct{})}, log)

	m.Speak(context.Background(), domain.Utterance{ID: 3, Text: "long step"})
	m.Stop()
	m.Stop()

	ev := nextEvent(t, m.Events())
	if ev.ID != 3 || ev.Finished {
		t.Errorf("event = %+v", ev)
	}
	select {
	case extra := <-m.Events():
		t.Errorf("stop reported twice: %+v", extra)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestMouthSynthesisFailureFinishes(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	m := NewMouth(&mockSynth{err: errors.New("offline")}, &mockPlayer{}, log)

	m.Speak(context.Background(), domain.Utterance{ID: 4, Text: "Step 2."})
	if ev := nextEvent(t, m.Events()); !ev.Finished {
		t.Errorf("failure should still finish: %+v", ev)
	}
}

func TestMouthCachesAudio(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	synth := &mockSynth{}
	m := NewMouth(synth, &mockPlayer{}, log)
	ctx := context.Background()

	for id := uint64(1); id <= 3; id++ {
		m.Speak(ctx, domain.Utterance{ID: id, Text: "10 seconds remaining."})
		nextEvent(t, m.Events())
	}
	if n := synth.callCount(); n != 1 {
		t.Errorf("synthesized %d times, want 1", n)
	}
	if hits, _ := m.Cache().Stats(); hits != 2 {
		t.Errorf("cache hits = %d, want 2", hits)
	}
}

func TestAudioCacheDisk(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	dir := t.TempDir()

	c := NewAudioCache("v", dir, log)
	c.Put("hello", domain.PaceNormal, []byte("wav"))

	fresh := NewAudioCache("v", dir, log)
	if !fresh.Has("hello", domain.PaceNormal) {
		t.Fatal("disk entry not visible to a new cache")
	}
	if fresh.Has("hello", domain.PaceQuick) {
		t.Error("pace must be part of the key")
	}
	if data, ok := fresh.Get("hello", domain.PaceNormal); !ok || string(data) != "wav" {
		t.Errorf("Get = %q, %v", data, ok)
	}

	other := NewAudioCache("w", dir, log)
	if other.Has("hello", domain.PaceNormal) {
		t.Error("voice must be part of the key")
	}
}

func TestExtractPCM(t *testing.T) {
	wav := make([]byte, 44+4)
	copy(wav[0:], "RIFF")
	copy(wav[8:], "WAVE")
	copy(wav[12:], "fmt ")
	wav[16] = 16 // fmt chunk size
	copy(wav[36:], "data")
	wav[40] = 4
	copy(wav[44:], []byte{1, 2, 3, 4})

	pcm, err := extractPCM(wav)
	if err != nil {
		t.Fatalf("extractPCM: %v", err)
	}
	if len(pcm) != 4 || pcm[0] != 1 {
		t.Errorf("pcm = %v", pcm)
	}

	if _, err := extractPCM([]byte("short")); err == nil {
		t.Error("expected error for short input")
	}
}
