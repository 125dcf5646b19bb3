package app

import "github.com/google/uuid"

func newWebinarID() string {
	return uuid.NewString()
}
