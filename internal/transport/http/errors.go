package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/cimillas/webinar-api/internal/domain"
)

const (
	codeMethodNotAllowed   = "method_not_allowed"
	codeNotFound           = "not_found"
	codeInvalidRequestBody = "invalid_request_body"
	codeInvalidDate        = "invalid_date"
	codeUnauthorized       = "unauthorized"
	codeForbidden          = "forbidden"
	codeWebinarNotFound    = "webinar_not_found"
	codeWebinarExists      = "webinar_already_exists"
	codeSeatsReduced       = "seats_reduced"
	codeTooManySeats       = "too_many_seats"
	codeNotEnoughSeats     = "not_enough_seats"
	codeTitleRequired      = "title_required"
	codeInvalidSchedule    = "invalid_schedule"
	codeTooEarly           = "too_early"
	codeInvalidID          = "invalid_id"
	codeValidationFailed   = "validation_failed"
	codeInternalError      = "internal_error"
)

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	payload, err := json.Marshal(errorResponse{
		Error: msg,
		Code:  code,
	})
	if err != nil {
		_, _ = w.Write([]byte(`{"error":"internal error","code":"internal_error"}`))
		return
	}
	_, _ = w.Write(payload)
}

var validationCodes = map[error]string{
	domain.ErrSeatsReduced:    codeSeatsReduced,
	domain.ErrTooManySeats:    codeTooManySeats,
	domain.ErrNotEnoughSeats:  codeNotEnoughSeats,
	domain.ErrTitleRequired:   codeTitleRequired,
	domain.ErrInvalidSchedule: codeInvalidSchedule,
	domain.ErrTooEarly:        codeTooEarly,
	domain.ErrInvalidID:       codeInvalidID,
}

// writeDomainError maps use case failures to status codes by error kind.
// Anything that is not a domain error is reported as an opaque 500.
func writeDomainError(w http.ResponseWriter, err error) {
	var derr *domain.Error
	if !errors.As(err, &derr) {
		writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
		return
	}

	switch derr.Kind {
	case domain.KindNotFound:
		writeError(w, http.StatusNotFound, codeWebinarNotFound, derr.Error())
	case domain.KindAuthorization:
		writeError(w, http.StatusForbidden, codeForbidden, derr.Error())
	case domain.KindConflict:
		writeError(w, http.StatusConflict, codeWebinarExists, derr.Error())
	case domain.KindValidation:
		code, ok := validationCodes[error(derr)]
		if !ok {
			code = codeValidationFailed
		}
		msg := derr.Error()
		if msg == "" {
			msg = "validation failed"
		}
		writeError(w, http.StatusBadRequest, code, msg)
	default:
		writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
