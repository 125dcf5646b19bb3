package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/cimillas/webinar-api/internal/app"
	"github.com/cimillas/webinar-api/internal/domain"
)

// WebinarCache wraps a WebinarRepository with a Redis read-through cache.
// Redis failures fall back to the base repository and are never returned.
type WebinarCache struct {
	base  app.WebinarRepository
	redis *redis.Client
	ttl   time.Duration
}

func NewWebinarCache(base app.WebinarRepository, client *redis.Client, ttl time.Duration) *WebinarCache {
	if base == nil {
		panic("cache.NewWebinarCache: base repository is nil")
	}
	if ttl < 0 {
		ttl = 0
	}
	return &WebinarCache{
		base:  base,
		redis: client,
		ttl:   ttl,
	}
}

func (c *WebinarCache) Create(ctx context.Context, webinar domain.Webinar) error {
	if err := c.base.Create(ctx, webinar); err != nil {
		return err
	}
	c.evict(ctx, webinar.ID)
	return nil
}

func (c *WebinarCache) Update(ctx context.Context, webinar domain.Webinar) error {
	if err := c.base.Update(ctx, webinar); err != nil {
		return err
	}
	c.evict(ctx, webinar.ID)
	return nil
}

func (c *WebinarCache) FindByID(ctx context.Context, id string) (*domain.Webinar, error) {
	if w, ok := c.load(ctx, id); ok {
		return w, nil
	}

	w, err := c.base.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if w != nil {
		c.store(ctx, *w)
	}
	return w, nil
}

// ForWrites returns a repository for use cases that load a webinar and then
// persist it. Loads always come from the base repository; writes still evict.
func (c *WebinarCache) ForWrites() app.WebinarRepository {
	return writeView{cache: c}
}

type writeView struct {
	cache *WebinarCache
}

func (v writeView) Create(ctx context.Context, webinar domain.Webinar) error {
	return v.cache.Create(ctx, webinar)
}

func (v writeView) Update(ctx context.Context, webinar domain.Webinar) error {
	return v.cache.Update(ctx, webinar)
}

func (v writeView) FindByID(ctx context.Context, id string) (*domain.Webinar, error) {
	return v.cache.base.FindByID(ctx, id)
}

type cachedWebinar struct {
	ID          string    `json:"id"`
	OrganizerID string    `json:"organizer_id"`
	Title       string    `json:"title"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	Seats       int       `json:"seats"`
}

func (c *WebinarCache) load(ctx context.Context, id string) (*domain.Webinar, bool) {
	if c.redis == nil {
		return nil, false
	}
	data, err := c.redis.Get(ctx, webinarKey(id)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			_ = c.redis.Del(ctx, webinarKey(id)).Err()
		}
		return nil, false
	}
	var cw cachedWebinar
	if err := json.Unmarshal(data, &cw); err != nil {
		_ = c.redis.Del(ctx, webinarKey(id)).Err()
		return nil, false
	}
	return &domain.Webinar{
		ID:          cw.ID,
		OrganizerID: cw.OrganizerID,
		Title:       cw.Title,
		StartDate:   cw.StartDate.UTC(),
		EndDate:     cw.EndDate.UTC(),
		Seats:       cw.Seats,
	}, true
}

func (c *WebinarCache) store(ctx context.Context, w domain.Webinar) {
	if c.redis == nil || c.ttl == 0 {
		return
	}
	data, err := json.Marshal(cachedWebinar{
		ID:          w.ID,
		OrganizerID: w.OrganizerID,
		Title:       w.Title,
		StartDate:   w.StartDate,
		EndDate:     w.EndDate,
		Seats:       w.Seats,
	})
	if err != nil {
		return
	}
	_ = c.redis.Set(ctx, webinarKey(w.ID), data, c.ttl).Err()
}

func (c *WebinarCache) evict(ctx context.Context, id string) {
	if c.redis == nil {
		return
	}
	_, _ = c.redis.Del(ctx, webinarKey(id)).Result()
}

func webinarKey(id string) string {
	return "webinar:" + id
}
