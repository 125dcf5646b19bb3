package memory

import (
	"context"
	"testing"
	"time"

	"github.com/cimillas/webinar-api/internal/domain"
)

func testWebinar(id string) domain.Webinar {
	return domain.Webinar{
		ID:          id,
		OrganizerID: "organizer-id",
		Title:       "Webinar title",
		StartDate:   time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2022, 1, 1, 1, 0, 0, 0, time.UTC),
		Seats:       100,
	}
}

func TestWebinarRepository_CreateAndFind(t *testing.T) {
	repo := NewWebinarRepository()
	ctx := context.Background()

	if err := repo.Create(ctx, testWebinar("webinar-id")); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.FindByID(ctx, "webinar-id")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if got == nil {
		t.Fatalf("expected webinar, got nil")
	}
	if *got != testWebinar("webinar-id") {
		t.Fatalf("unexpected webinar: %+v", *got)
	}

	if err := repo.Create(ctx, testWebinar("webinar-id")); err != domain.ErrWebinarAlreadyExists {
		t.Fatalf("expected ErrWebinarAlreadyExists, got %v", err)
	}
}

func TestWebinarRepository_FindMissingReturnsNil(t *testing.T) {
	repo := NewWebinarRepository()

	got, err := repo.FindByID(context.Background(), "non-existent-id")
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil, got %+v", *got)
	}
}

func TestWebinarRepository_UpdateOverwritesByID(t *testing.T) {
	repo := NewWebinarRepository(testWebinar("webinar-to-update"))
	ctx := context.Background()

	w, _ := repo.FindByID(ctx, "webinar-to-update")
	seats := 200
	title := "Updated Title"
	if err := w.Update(domain.WebinarChanges{Title: &title, Seats: &seats}); err != nil {
		t.Fatalf("update entity: %v", err)
	}

	stored, _ := repo.FindByID(ctx, "webinar-to-update")
	if stored.Seats != 100 {
		t.Fatalf("expected stored copy untouched before Update, got %d", stored.Seats)
	}

	if err := repo.Update(ctx, *w); err != nil {
		t.Fatalf("update: %v", err)
	}
	stored, _ = repo.FindByID(ctx, "webinar-to-update")
	if stored.Seats != 200 || stored.Title != "Updated Title" {
		t.Fatalf("unexpected stored webinar: %+v", *stored)
	}
	if repo.Len() != 1 {
		t.Fatalf("expected 1 webinar, got %d", repo.Len())
	}
}

func TestWebinarRepository_UpdateUnknown(t *testing.T) {
	repo := NewWebinarRepository()
	if err := repo.Update(context.Background(), testWebinar("missing")); err != domain.ErrWebinarNotFound {
		t.Fatalf("expected ErrWebinarNotFound, got %v", err)
	}
}

func TestWebinarRepository_ListByOrganizer(t *testing.T) {
	late := testWebinar("w-late")
	late.OrganizerID = "alice"
	late.StartDate = late.StartDate.Add(48 * time.Hour)
	early := testWebinar("w-early")
	early.OrganizerID = "alice"
	other := testWebinar("w-other")

	repo := NewWebinarRepository(late, early, other)

	got, err := repo.ListByOrganizer(context.Background(), "alice")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 || got[0].ID != "w-early" || got[1].ID != "w-late" {
		t.Fatalf("unexpected list: %+v", got)
	}
}
