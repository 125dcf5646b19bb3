package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// Handlers groups the use cases served by the router.
type Handlers struct {
	Organize     WebinarOrganizer
	List         WebinarLister
	Get          WebinarGetter
	ChangeSeats  SeatsChanger
	ChangeDates  DatesChanger
	HealthChecks []HealthCheck
}

// NewRouter wires the webinar routes behind bearer authentication.
func NewRouter(h Handlers, auth *Authenticator) *mux.Router {
	r := mux.NewRouter()
	r.NotFoundHandler = NotFoundHandler()
	r.MethodNotAllowedHandler = MethodNotAllowedHandler()

	r.Handle("/health", HealthHandler(h.HealthChecks...)).Methods(http.MethodGet)

	api := r.PathPrefix("/webinars").Subrouter()
	api.Use(auth.RequireUser)
	api.Handle("", HandleOrganizeWebinar(h.Organize)).Methods(http.MethodPost)
	api.Handle("", HandleListWebinars(h.List)).Methods(http.MethodGet)
	api.Handle("/{id}", HandleGetWebinar(h.Get)).Methods(http.MethodGet)
	api.Handle("/{id}/seats", HandleChangeSeats(h.ChangeSeats)).Methods(http.MethodPost)
	api.Handle("/{id}/dates", HandleChangeDates(h.ChangeDates)).Methods(http.MethodPost)

	return r
}
