package domain

// ErrorKind groups domain errors by how callers should react to them.
type ErrorKind int

const (
	KindValidation ErrorKind = iota + 1
	KindNotFound
	KindAuthorization
	KindConflict
)

// Error is a domain failure with a user-facing message.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Is matches errors of the same kind when the target carries no message,
// so errors.Is(err, ErrValidation) holds for every validation failure.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Kind != e.Kind {
		return false
	}
	return t.Message == "" || t.Message == e.Message
}

var (
	ErrValidation = &Error{Kind: KindValidation}
	ErrNotFound   = &Error{Kind: KindNotFound}
	ErrNotAllowed = &Error{Kind: KindAuthorization}
	ErrConflict   = &Error{Kind: KindConflict}
)

var (
	ErrWebinarNotFound      = &Error{Kind: KindNotFound, Message: "Webinar not found"}
	ErrUserNotAllowed       = &Error{Kind: KindAuthorization, Message: "User is not allowed to update this webinar"}
	ErrSeatsReduced         = &Error{Kind: KindValidation, Message: "You cannot reduce the number of seats"}
	ErrTooManySeats         = &Error{Kind: KindValidation, Message: "Webinar must have at most 1000 seats"}
	ErrNotEnoughSeats       = &Error{Kind: KindValidation, Message: "Webinar must have at least 1 seat"}
	ErrTitleRequired        = &Error{Kind: KindValidation, Message: "Webinar title is required"}
	ErrInvalidSchedule      = &Error{Kind: KindValidation, Message: "Webinar must end after it starts"}
	ErrTooEarly             = &Error{Kind: KindValidation, Message: "The webinar must happen in at least 3 days"}
	ErrInvalidID            = &Error{Kind: KindValidation, Message: "Webinar id is required"}
	ErrWebinarAlreadyExists = &Error{Kind: KindConflict, Message: "Webinar already exists"}
)
