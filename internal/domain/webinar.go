package domain

import "time"

const (
	MinSeats = 1
	MaxSeats = 1000
)

// Webinar is a scheduled session owned by its organizer.
// ID and OrganizerID never change after creation.
type Webinar struct {
	ID          string
	OrganizerID string
	Title       string
	StartDate   time.Time
	EndDate     time.Time
	Seats       int
}

// WebinarChanges is a partial update; nil fields are left as they are.
type WebinarChanges struct {
	Title     *string
	Seats     *int
	StartDate *time.Time
	EndDate   *time.Time
}

// Validate checks the invariants every stored webinar satisfies.
func (w *Webinar) Validate() error {
	if w.Title == "" {
		return ErrTitleRequired
	}
	if w.Seats < MinSeats {
		return ErrNotEnoughSeats
	}
	if w.Seats > MaxSeats {
		return ErrTooManySeats
	}
	if w.EndDate.Before(w.StartDate) {
		return ErrInvalidSchedule
	}
	return nil
}

// Update applies changes and re-validates the result. On error the webinar is left untouched.
func (w *Webinar) Update(changes WebinarChanges) error {
	next := *w
	if changes.Title != nil {
		next.Title = *changes.Title
	}
	if changes.Seats != nil {
		if *changes.Seats < w.Seats {
			return ErrSeatsReduced
		}
		next.Seats = *changes.Seats
	}
	if changes.StartDate != nil {
		next.StartDate = *changes.StartDate
	}
	if changes.EndDate != nil {
		next.EndDate = *changes.EndDate
	}

	if err := next.Validate(); err != nil {
		return err
	}
	*w = next
	return nil
}

// IsOrganizer reports whether userID owns the webinar. An empty id never does.
func (w *Webinar) IsOrganizer(userID string) bool {
	return userID != "" && w.OrganizerID == userID
}
