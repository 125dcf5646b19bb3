package app

import (
	"context"
	"time"

	"github.com/cimillas/webinar-api/internal/clock"
	"github.com/cimillas/webinar-api/internal/domain"
)

// MinimumNotice is how far ahead of now a webinar must be scheduled.
const MinimumNotice = 3 * 24 * time.Hour

type OrganizeWebinar struct {
	repo  WebinarRepository
	clock clock.Clock
}

func NewOrganizeWebinar(repo WebinarRepository, clk clock.Clock) *OrganizeWebinar {
	return &OrganizeWebinar{
		repo:  repo,
		clock: clk,
	}
}

type OrganizeWebinarInput struct {
	User      domain.User
	Title     string
	StartDate time.Time
	EndDate   time.Time
	Seats     int
}

func (uc *OrganizeWebinar) Execute(ctx context.Context, in OrganizeWebinarInput) (domain.Webinar, error) {
	if in.User.ID == "" {
		return domain.Webinar{}, domain.ErrUserNotAllowed
	}
	if tooSoon(uc.clock.Now(), in.StartDate) {
		return domain.Webinar{}, domain.ErrTooEarly
	}

	webinar := domain.Webinar{
		ID:          newWebinarID(),
		OrganizerID: in.User.ID,
		Title:       in.Title,
		StartDate:   in.StartDate.UTC(),
		EndDate:     in.EndDate.UTC(),
		Seats:       in.Seats,
	}
	if err := webinar.Validate(); err != nil {
		return domain.Webinar{}, err
	}

	if err := uc.repo.Create(ctx, webinar); err != nil {
		return domain.Webinar{}, err
	}
	return webinar, nil
}

func tooSoon(now, start time.Time) bool {
	return start.Before(now.Add(MinimumNotice))
}
