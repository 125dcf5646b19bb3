package app

import (
	"context"
	"time"

	"github.com/cimillas/webinar-api/internal/domain"
	"github.com/cimillas/webinar-api/internal/storage/memory"
)

var (
	alice = domain.User{ID: "alice"}
	bob   = domain.User{ID: "bob"}
)

func seedWebinar() domain.Webinar {
	return domain.Webinar{
		ID:          "webinar-id",
		OrganizerID: alice.ID,
		Title:       "Webinar title",
		StartDate:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2024, 1, 1, 1, 0, 0, 0, time.UTC),
		Seats:       100,
	}
}

// countingRepo wraps the in-memory repository and records writes.
type countingRepo struct {
	*memory.WebinarRepository
	creates int
	updates int

	findErr   error
	updateErr error
}

func newCountingRepo(seed ...domain.Webinar) *countingRepo {
	return &countingRepo{WebinarRepository: memory.NewWebinarRepository(seed...)}
}

func (r *countingRepo) Create(ctx context.Context, w domain.Webinar) error {
	r.creates++
	return r.WebinarRepository.Create(ctx, w)
}

func (r *countingRepo) Update(ctx context.Context, w domain.Webinar) error {
	r.updates++
	if r.updateErr != nil {
		return r.updateErr
	}
	return r.WebinarRepository.Update(ctx, w)
}

func (r *countingRepo) FindByID(ctx context.Context, id string) (*domain.Webinar, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	return r.WebinarRepository.FindByID(ctx, id)
}

func (r *countingRepo) storedSeats(id string) int {
	w, _ := r.WebinarRepository.FindByID(context.Background(), id)
	if w == nil {
		return -1
	}
	return w.Seats
}
