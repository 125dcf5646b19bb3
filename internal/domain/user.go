package domain

// User is the authenticated caller of a use case.
type User struct {
	ID string
}
