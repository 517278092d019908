package gpt

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hammamikhairi/stovetop/internal/conversation"
	"github.com/hammamikhairi/stovetop/internal/domain"
	"github.com/hammamikhairi/stovetop/internal/logger"
)

type fakeChat struct {
	reply string
	err   error
	calls int
}

func (f *fakeChat) Chat(context.Context, []Message) (string, error) {
	f.calls++
	return f.reply, f.err
}

func TestClassifier(t *testing.T) {
	log := logger.New(logger.LevelOff, nil)
	base := conversation.NewKeywordParser(log)

	tests := []struct {
		name        string
		input       string
		chat        *fakeChat
		want        domain.IntentType
		wantPayload string
		wantCalls   int
	}{
		{"keyword match skips the model", "next", &fakeChat{}, domain.IntentNext, "", 0},
		{"model fills the gap", "I'm finished with this bit", &fakeChat{reply: `{"intent":"next"}`}, domain.IntentNext, "", 1},
		{"fenced heat reply", "crank it all the way", &fakeChat{reply: "```json\n{\"intent\":\"switch_heat\",\"payload\":\"High\"}\n```"}, domain.IntentSwitchHeat, "high", 1},
		{"bad heat payload", "crank it", &fakeChat{reply: `{"intent":"switch_heat","payload":"max"}`}, domain.IntentUnknown, "crank it", 1},
		{"model error", "what now chef", &fakeChat{err: errors.New("timeout")}, domain.IntentUnknown, "what now chef", 1},
		{"garbage reply", "hmm", &fakeChat{reply: "sure!"}, domain.IntentUnknown, "hmm", 1},
		{"model says unknown", "nice weather", &fakeChat{reply: `{"intent":"unknown"}`}, domain.IntentUnknown, "nice weather", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewClassifier(base, tt.chat, log)
			got, err := c.Parse(context.Background(), tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Type != tt.want || got.Payload != tt.wantPayload {
				t.Errorf("got %s %q, want %s %q", got.Type, got.Payload, tt.want, tt.wantPayload)
			}
			if tt.chat.calls != tt.wantCalls {
				t.Errorf("model called %d times, want %d", tt.chat.calls, tt.wantCalls)
			}
		})
	}
}

func TestClientChat(t *testing.T) {
	var got payload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("api-key") != "k" || r.Header.Get("Authorization") != "Bearer k" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"{\"intent\":\"quit\"}"}}]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "k", logger.New(logger.LevelOff, nil), WithModel("small"))
	reply, err := c.Chat(context.Background(), []Message{{Role: RoleUser, Content: "stop"}})
	if err != nil {
		t.Fatalf("chat: %v", err)
	}
	if reply != `{"intent":"quit"}` {
		t.Errorf("reply = %q", reply)
	}
	if got.Model != "small" || len(got.Messages) != 1 || got.Messages[0].Content != "stop" {
		t.Errorf("payload = %+v", got)
	}
}

func TestClientErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/empty" {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"choices":[]}`))
			return
		}
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	log := logger.New(logger.LevelOff, nil)
	if _, err := NewClient(srv.URL+"/busy", "k", log).Chat(context.Background(), nil); err == nil {
		t.Error("a 429 should fail")
	}
	if _, err := NewClient(srv.URL+"/empty", "k", log).Chat(context.Background(), nil); !errors.Is(err, ErrEmptyReply) {
		t.Errorf("err = %v, want ErrEmptyReply", err)
	}
}
