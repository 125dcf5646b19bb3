package app

import (
	"context"
	"time"

	"github.com/cimillas/webinar-api/internal/clock"
	"github.com/cimillas/webinar-api/internal/domain"
)

// ChangeDates reschedules a webinar, keeping the same notice rule as OrganizeWebinar.
type ChangeDates struct {
	repo  WebinarRepository
	clock clock.Clock
}

func NewChangeDates(repo WebinarRepository, clk clock.Clock) *ChangeDates {
	return &ChangeDates{
		repo:  repo,
		clock: clk,
	}
}

type ChangeDatesInput struct {
	User      domain.User
	WebinarID string
	StartDate time.Time
	EndDate   time.Time
}

func (uc *ChangeDates) Execute(ctx context.Context, in ChangeDatesInput) (domain.Webinar, error) {
	webinar, err := loadOwnedWebinar(ctx, uc.repo, in.User, in.WebinarID)
	if err != nil {
		return domain.Webinar{}, err
	}
	if tooSoon(uc.clock.Now(), in.StartDate) {
		return domain.Webinar{}, domain.ErrTooEarly
	}

	start, end := in.StartDate.UTC(), in.EndDate.UTC()
	if err := webinar.Update(domain.WebinarChanges{StartDate: &start, EndDate: &end}); err != nil {
		return domain.Webinar{}, err
	}

	if err := uc.repo.Update(ctx, *webinar); err != nil {
		return domain.Webinar{}, err
	}
	return *webinar, nil
}
