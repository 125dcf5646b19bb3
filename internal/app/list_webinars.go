package app

import (
	"context"

	"github.com/cimillas/webinar-api/internal/domain"
)

type WebinarLister interface {
	ListByOrganizer(ctx context.Context, organizerID string) ([]domain.Webinar, error)
}

// ListWebinars returns the webinars organized by the calling user.
type ListWebinars struct {
	repo WebinarLister
}

func NewListWebinars(repo WebinarLister) *ListWebinars {
	return &ListWebinars{repo: repo}
}

func (uc *ListWebinars) Execute(ctx context.Context, user domain.User) ([]domain.Webinar, error) {
	if user.ID == "" {
		return nil, domain.ErrUserNotAllowed
	}
	return uc.repo.ListByOrganizer(ctx, user.ID)
}
