package app

import (
	"context"

	"github.com/cimillas/webinar-api/internal/domain"
)

// WebinarRepository persists webinars. FindByID returns nil, nil when no webinar has the id.
type WebinarRepository interface {
	Create(ctx context.Context, webinar domain.Webinar) error
	Update(ctx context.Context, webinar domain.Webinar) error
	FindByID(ctx context.Context, id string) (*domain.Webinar, error)
}

// loadOwnedWebinar fetches a webinar and checks that user organizes it.
func loadOwnedWebinar(ctx context.Context, repo WebinarRepository, user domain.User, webinarID string) (*domain.Webinar, error) {
	webinar, err := repo.FindByID(ctx, webinarID)
	if err != nil {
		return nil, err
	}
	if webinar == nil {
		return nil, domain.ErrWebinarNotFound
	}
	if !webinar.IsOrganizer(user.ID) {
		return nil, domain.ErrUserNotAllowed
	}
	return webinar, nil
}
