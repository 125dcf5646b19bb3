package app

import (
	"context"

	"github.com/cimillas/webinar-api/internal/domain"
)

// ChangeSeats lets an organizer raise the seat count of their webinar.
type ChangeSeats struct {
	repo WebinarRepository
}

func NewChangeSeats(repo WebinarRepository) *ChangeSeats {
	return &ChangeSeats{repo: repo}
}

type ChangeSeatsInput struct {
	User      domain.User
	WebinarID string
	Seats     int
}

// Execute validates the change before writing, so a failed request never touches the repository.
func (uc *ChangeSeats) Execute(ctx context.Context, in ChangeSeatsInput) (domain.Webinar, error) {
	webinar, err := loadOwnedWebinar(ctx, uc.repo, in.User, in.WebinarID)
	if err != nil {
		return domain.Webinar{}, err
	}

	seats := in.Seats
	if err := webinar.Update(domain.WebinarChanges{Seats: &seats}); err != nil {
		return domain.Webinar{}, err
	}

	if err := uc.repo.Update(ctx, *webinar); err != nil {
		return domain.Webinar{}, err
	}
	return *webinar, nil
}
