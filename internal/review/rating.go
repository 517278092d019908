package review

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hammamikhairi/stovetop/internal/domain"
)

const maxRating = 5

func validRating(rating int) error {
	if rating < 1 || rating > maxRating {
		return fmt.Errorf("rating %d: %w", rating, domain.ErrInvalidRating)
	}
	return nil
}

// Complete builds the session recorded when a guided run ends. A zero
// rating means the cook skipped the review; the session is then offered
// for rating later.
func Complete(rating int, notes string, now time.Time) (domain.CookingSession, error) {
	s := domain.CookingSession{
		ID:   uuid.NewString(),
		Date: now,
	}
	if rating == 0 {
		return s, nil
	}
	if err := validRating(rating); err != nil {
		return domain.CookingSession{}, err
	}
	s.Rating = rating
	s.Notes = notes
	s.Suggestions = Suggestions(notes)
	return s, nil
}

// NextPrompt returns the session to ask about, or nil. Each session is
// prompted at most once.
func NextPrompt(r *domain.Recipe) *domain.CookingSession {
	return r.UnpromptedSession()
}

// Submit rates a session and finalizes it.
func Submit(s *domain.CookingSession, rating int, notes string) error {
	if s.RatingFinalized {
		return domain.ErrRatingFinalized
	}
	if err := validRating(rating); err != nil {
		return err
	}
	s.Rating = rating
	s.Notes = notes
	s.Suggestions = Suggestions(notes)
	s.PromptedForRating = true
	s.RatingFinalized = true
	return nil
}

// Dismiss closes the rating prompt without a rating. The session moves
// to the pending list, unless it was already dismissed from there, in
// which case it is finalized and never offered again.
func Dismiss(s *domain.CookingSession) {
	if s.DismissedFromNotification {
		s.RatingFinalized = true
	}
	s.PromptedForRating = true
}

// DismissNotification drops a session from the pending list.
func DismissNotification(s *domain.CookingSession) {
	s.DismissedFromNotification = true
}

// Pending lists sessions whose prompt was dismissed and which can still
// be rated.
func Pending(r *domain.Recipe) []*domain.CookingSession {
	return r.DismissedUnratedSessions()
}
