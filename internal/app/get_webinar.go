package app

import (
	"context"

	"github.com/cimillas/webinar-api/internal/domain"
)

type GetWebinar struct {
	repo WebinarRepository
}

func NewGetWebinar(repo WebinarRepository) *GetWebinar {
	return &GetWebinar{repo: repo}
}

func (uc *GetWebinar) Execute(ctx context.Context, id string) (domain.Webinar, error) {
	if id == "" {
		return domain.Webinar{}, domain.ErrInvalidID
	}
	webinar, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Webinar{}, err
	}
	if webinar == nil {
		return domain.Webinar{}, domain.ErrWebinarNotFound
	}
	return *webinar, nil
}
