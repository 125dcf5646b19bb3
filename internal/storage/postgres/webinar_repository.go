package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/cimillas/webinar-api/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type WebinarRepository struct {
	pool *pgxpool.Pool
}

func NewWebinarRepository(pool *pgxpool.Pool) *WebinarRepository {
	return &WebinarRepository{pool: pool}
}

func (r *WebinarRepository) Create(ctx context.Context, webinar domain.Webinar) error {
	const stmt = `
INSERT INTO webinars (id, organizer_id, title, start_date, end_date, seats)
VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.pool.Exec(ctx, stmt,
		webinar.ID, webinar.OrganizerID, webinar.Title, webinar.StartDate, webinar.EndDate, webinar.Seats,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrWebinarAlreadyExists
		}
		if isCheckViolation(err) {
			return fmt.Errorf("create webinar: %w", domain.ErrValidation)
		}
		return fmt.Errorf("create webinar: %w", err)
	}
	return nil
}

// Update overwrites the mutable columns of the webinar with the same id.
func (r *WebinarRepository) Update(ctx context.Context, webinar domain.Webinar) error {
	const stmt = `
UPDATE webinars
SET title = $2, start_date = $3, end_date = $4, seats = $5
WHERE id = $1`
	tag, err := r.pool.Exec(ctx, stmt,
		webinar.ID, webinar.Title, webinar.StartDate, webinar.EndDate, webinar.Seats,
	)
	if err != nil {
		if isCheckViolation(err) {
			return fmt.Errorf("update webinar: %w", domain.ErrValidation)
		}
		return fmt.Errorf("update webinar: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrWebinarNotFound
	}
	return nil
}

func (r *WebinarRepository) FindByID(ctx context.Context, id string) (*domain.Webinar, error) {
	const query = `
SELECT id, organizer_id, title, start_date, end_date, seats
FROM webinars
WHERE id = $1`

	var w domain.Webinar
	err := r.pool.QueryRow(ctx, query, id).
		Scan(&w.ID, &w.OrganizerID, &w.Title, &w.StartDate, &w.EndDate, &w.Seats)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find webinar: %w", err)
	}
	w.StartDate = w.StartDate.UTC()
	w.EndDate = w.EndDate.UTC()
	return &w, nil
}

// ListByOrganizer returns the organizer's webinars ordered by start date.
func (r *WebinarRepository) ListByOrganizer(ctx context.Context, organizerID string) ([]domain.Webinar, error) {
	const query = `
SELECT id, organizer_id, title, start_date, end_date, seats
FROM webinars
WHERE organizer_id = $1
ORDER BY start_date ASC, id ASC`
	rows, err := r.pool.Query(ctx, query, organizerID)
	if err != nil {
		return nil, fmt.Errorf("list webinars: %w", err)
	}
	defer rows.Close()

	var webinars []domain.Webinar
	for rows.Next() {
		var w domain.Webinar
		if err := rows.Scan(&w.ID, &w.OrganizerID, &w.Title, &w.StartDate, &w.EndDate, &w.Seats); err != nil {
			return nil, fmt.Errorf("scan webinar: %w", err)
		}
		w.StartDate = w.StartDate.UTC()
		w.EndDate = w.EndDate.UTC()
		webinars = append(webinars, w)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("iterate webinars: %w", rows.Err())
	}
	return webinars, nil
}
