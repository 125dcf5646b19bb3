package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/cimillas/webinar-api/internal/domain"
)

// WebinarRepository keeps webinars in a map. Values are copied on the way in and out,
// so callers mutating a loaded webinar do not change stored state until Update.
type WebinarRepository struct {
	mu       sync.RWMutex
	webinars map[string]domain.Webinar
}

func NewWebinarRepository(seed ...domain.Webinar) *WebinarRepository {
	r := &WebinarRepository{webinars: make(map[string]domain.Webinar, len(seed))}
	for _, w := range seed {
		r.webinars[w.ID] = w
	}
	return r
}

func (r *WebinarRepository) Create(_ context.Context, webinar domain.Webinar) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.webinars[webinar.ID]; exists {
		return domain.ErrWebinarAlreadyExists
	}
	r.webinars[webinar.ID] = webinar
	return nil
}

func (r *WebinarRepository) Update(_ context.Context, webinar domain.Webinar) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.webinars[webinar.ID]; !exists {
		return domain.ErrWebinarNotFound
	}
	r.webinars[webinar.ID] = webinar
	return nil
}

func (r *WebinarRepository) FindByID(_ context.Context, id string) (*domain.Webinar, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	w, ok := r.webinars[id]
	if !ok {
		return nil, nil
	}
	return &w, nil
}

// ListByOrganizer returns the organizer's webinars ordered by start date.
func (r *WebinarRepository) ListByOrganizer(_ context.Context, organizerID string) ([]domain.Webinar, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []domain.Webinar
	for _, w := range r.webinars {
		if w.OrganizerID == organizerID {
			out = append(out, w)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].StartDate.Equal(out[j].StartDate) {
			return out[i].ID < out[j].ID
		}
		return out[i].StartDate.Before(out[j].StartDate)
	})
	return out, nil
}

// Len reports how many webinars are stored.
func (r *WebinarRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.webinars)
}
