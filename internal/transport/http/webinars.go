package http

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/cimillas/webinar-api/internal/app"
	"github.com/cimillas/webinar-api/internal/domain"
)

type WebinarOrganizer interface {
	Execute(ctx context.Context, in app.OrganizeWebinarInput) (domain.Webinar, error)
}

type WebinarGetter interface {
	Execute(ctx context.Context, id string) (domain.Webinar, error)
}

type WebinarLister interface {
	Execute(ctx context.Context, user domain.User) ([]domain.Webinar, error)
}

type SeatsChanger interface {
	Execute(ctx context.Context, in app.ChangeSeatsInput) (domain.Webinar, error)
}

type DatesChanger interface {
	Execute(ctx context.Context, in app.ChangeDatesInput) (domain.Webinar, error)
}

// HandleOrganizeWebinar creates a webinar owned by the caller.
func HandleOrganizeWebinar(uc WebinarOrganizer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := userFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, codeUnauthorized, "unauthorized")
			return
		}

		var req organizeWebinarRequest
		if !decodeBody(w, r, &req) {
			return
		}
		start, end, ok := parseSchedule(w, req.StartDate, req.EndDate)
		if !ok {
			return
		}

		webinar, err := uc.Execute(r.Context(), app.OrganizeWebinarInput{
			User:      user,
			Title:     req.Title,
			StartDate: start,
			EndDate:   end,
			Seats:     req.Seats,
		})
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, toWebinarResponse(webinar))
	}
}

func HandleListWebinars(uc WebinarLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := userFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, codeUnauthorized, "unauthorized")
			return
		}
		webinars, err := uc.Execute(r.Context(), user)
		if err != nil {
			writeDomainError(w, err)
			return
		}
		resp := make([]webinarResponse, 0, len(webinars))
		for _, webinar := range webinars {
			resp = append(resp, toWebinarResponse(webinar))
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func HandleGetWebinar(uc WebinarGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		webinar, err := uc.Execute(r.Context(), mux.Vars(r)["id"])
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toWebinarResponse(webinar))
	}
}

// HandleChangeSeats raises the seat count of the webinar in the path.
func HandleChangeSeats(uc SeatsChanger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := userFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, codeUnauthorized, "unauthorized")
			return
		}

		var req changeSeatsRequest
		if !decodeBody(w, r, &req) {
			return
		}
		if req.Seats == nil {
			writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "seats is required")
			return
		}

		webinar, err := uc.Execute(r.Context(), app.ChangeSeatsInput{
			User:      user,
			WebinarID: mux.Vars(r)["id"],
			Seats:     *req.Seats,
		})
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toWebinarResponse(webinar))
	}
}

func HandleChangeDates(uc DatesChanger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, ok := userFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, codeUnauthorized, "unauthorized")
			return
		}

		var req changeDatesRequest
		if !decodeBody(w, r, &req) {
			return
		}
		start, end, ok := parseSchedule(w, req.StartDate, req.EndDate)
		if !ok {
			return
		}

		webinar, err := uc.Execute(r.Context(), app.ChangeDatesInput{
			User:      user,
			WebinarID: mux.Vars(r)["id"],
			StartDate: start,
			EndDate:   end,
		})
		if err != nil {
			writeDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toWebinarResponse(webinar))
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
		return false
	}
	return true
}

func parseSchedule(w http.ResponseWriter, rawStart, rawEnd string) (time.Time, time.Time, bool) {
	start, err := time.Parse(time.RFC3339, rawStart)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeInvalidDate, "invalid start_date format")
		return time.Time{}, time.Time{}, false
	}
	end, err := time.Parse(time.RFC3339, rawEnd)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeInvalidDate, "invalid end_date format")
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}

type organizeWebinarRequest struct {
	Title     string `json:"title"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Seats     int    `json:"seats"`
}

type changeSeatsRequest struct {
	Seats *int `json:"seats"`
}

type changeDatesRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type webinarResponse struct {
	ID          string    `json:"id"`
	OrganizerID string    `json:"organizer_id"`
	Title       string    `json:"title"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	Seats       int       `json:"seats"`
}

func toWebinarResponse(w domain.Webinar) webinarResponse {
	return webinarResponse{
		ID:          w.ID,
		OrganizerID: w.OrganizerID,
		Title:       w.Title,
		StartDate:   w.StartDate,
		EndDate:     w.EndDate,
		Seats:       w.Seats,
	}
}
