package engine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hammamikhairi/stovetop/internal/domain"
	"github.com/hammamikhairi/stovetop/internal/logger"
	"github.com/hammamikhairi/stovetop/internal/storage"
)

var fixedNow = time.Date(2026, 5, 4, 18, 30, 0, 0, time.UTC)

func setupEngine(t *testing.T) (*Engine, context.Context) {
	t.Helper()
	log := logger.New(logger.LevelOff, nil)
	store := storage.NewMemoryStore(log)
	ctx := context.Background()
	if err := store.Save(ctx, pastaRecipe()); err != nil {
		t.Fatalf("seeding store: %v", err)
	}
	eng := New(store, log, WithClock(func() time.Time { return fixedNow }))
	return eng, ctx
}

func TestStartSession(t *testing.T) {
	eng, ctx := setupEngine(t)

	tests := []struct {
		name     string
		recipeID string
		wantErr  error
	}{
		{"stored recipe", "pasta", nil},
		{"unknown recipe", "nonexistent", domain.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sched := newFakeScheduler()
			g, err := eng.StartSession(ctx, tt.recipeID, &fakeSpeaker{}, sched, []int{1})
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("err = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if g.Recipe().ID != "pasta" || g.View().Phase != PhaseIdle {
				t.Fatalf("guide = %+v", g.View())
			}
			if len(sched.tasks) != 1 {
				t.Errorf("expected the first announcement to be scheduled, got %d tasks", len(sched.tasks))
			}
			if !g.optimized[1] {
				t.Error("optimized steps not passed through")
			}
		})
	}
}

func TestFinishRecordsSession(t *testing.T) {
	eng, ctx := setupEngine(t)

	s, err := eng.Finish(ctx, "pasta", 0, "")
	if err != nil {
		t.Fatalf("finish: %v", err)
	}
	if !s.Date.Equal(fixedNow) || s.Rated() {
		t.Errorf("session = %+v", s)
	}

	prompt, err := eng.NextRatingPrompt(ctx, "pasta")
	if err != nil {
		t.Fatal(err)
	}
	if prompt == nil || prompt.ID != s.ID {
		t.Fatalf("prompt = %+v, want %s", prompt, s.ID)
	}

	if _, err := eng.Finish(ctx, "pasta", 9, ""); !errors.Is(err, domain.ErrInvalidRating) {
		t.Errorf("rating 9: err = %v", err)
	}
	if _, err := eng.Finish(ctx, "missing", 3, ""); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("missing recipe: err = %v", err)
	}
}

func TestRatingFlow(t *testing.T) {
	eng, ctx := setupEngine(t)

	s, err := eng.Finish(ctx, "pasta", 0, "")
	if err != nil {
		t.Fatal(err)
	}

	if err := eng.DismissRating(ctx, "pasta", s.ID); err != nil {
		t.Fatalf("dismiss: %v", err)
	}
	pending, err := eng.PendingRatings(ctx, "pasta")
	if err != nil {
		t.Fatal(err)
	}
	if len(pending) != 1 || pending[0].ID != s.ID {
		t.Fatalf("pending = %+v", pending)
	}

	if err := eng.Rate(ctx, "pasta", s.ID, 5, "a bit bland"); err != nil {
		t.Fatalf("rate: %v", err)
	}
	r, _ := eng.GetRecipe(ctx, "pasta")
	got := r.Session(s.ID)
	if got.Rating != 5 || !got.RatingFinalized || len(got.Suggestions) != 1 {
		t.Errorf("session = %+v", got)
	}
	if r.AverageRating() != 5 {
		t.Errorf("average = %v", r.AverageRating())
	}

	if err := eng.Rate(ctx, "pasta", s.ID, 4, ""); !errors.Is(err, domain.ErrRatingFinalized) {
		t.Errorf("re-rate: err = %v", err)
	}
	if err := eng.Rate(ctx, "pasta", "nope", 4, ""); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("unknown session: err = %v", err)
	}
}

func TestDismissNotificationFinalizes(t *testing.T) {
	eng, ctx := setupEngine(t)
	s, _ := eng.Finish(ctx, "pasta", 0, "")

	if err := eng.DismissRating(ctx, "pasta", s.ID); err != nil {
		t.Fatal(err)
	}
	if err := eng.DismissNotification(ctx, "pasta", s.ID); err != nil {
		t.Fatal(err)
	}
	if pending, _ := eng.PendingRatings(ctx, "pasta"); len(pending) != 0 {
		t.Errorf("pending = %+v", pending)
	}
	if err := eng.DismissRating(ctx, "pasta", s.ID); err != nil {
		t.Fatal(err)
	}
	if err := eng.Rate(ctx, "pasta", s.ID, 3, ""); !errors.Is(err, domain.ErrRatingFinalized) {
		t.Errorf("err = %v, want ErrRatingFinalized", err)
	}
}

func TestListRecipes(t *testing.T) {
	eng, ctx := setupEngine(t)
	list, err := eng.ListRecipes(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 1 || list[0].StepCount != 4 {
		t.Errorf("list = %+v", list)
	}
}
