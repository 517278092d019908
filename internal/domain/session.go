package domain

import "time"

// CookingSession records one attempt at a recipe. A session is created
// when a guided run finishes; the rating may still be 0 (unrated).
type CookingSession struct {
	ID          string
	Date        time.Time
	Rating      int // 0 = unrated, otherwise 1..5
	Notes       string
	Suggestions []string

	// Rating prompt bookkeeping. RatingFinalized is terminal: once set the
	// session is never offered for rating again.
	PromptedForRating         bool
	DismissedFromNotification bool
	RatingFinalized           bool
}

// Rated reports whether the session carries a rating.
func (s CookingSession) Rated() bool {
	return s.Rating > 0
}

// UnpromptedSession returns the first session that still needs its
// first rating prompt, or nil.
func (r *Recipe) UnpromptedSession() *CookingSession {
	for i := range r.Sessions {
		s := &r.Sessions[i]
		if !s.Rated() && !s.PromptedForRating && !s.RatingFinalized {
			return s
		}
	}
	return nil
}

// DismissedUnratedSessions lists sessions whose prompt was dismissed but
// which may still be rated later from a notification.
func (r *Recipe) DismissedUnratedSessions() []*CookingSession {
	var out []*CookingSession
	for i := range r.Sessions {
		s := &r.Sessions[i]
		if !s.Rated() && s.PromptedForRating && !s.DismissedFromNotification && !s.RatingFinalized {
			out = append(out, s)
		}
	}
	return out
}
