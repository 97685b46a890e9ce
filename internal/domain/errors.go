package domain

import "errors"

// Sentinel errors shared by repositories, services, and controllers.
var (
	ErrNotFound           = errors.New("event not found")
	ErrForbidden          = errors.New("not authorized")
	ErrAlreadyJoined      = errors.New("already joined this event")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidToken       = errors.New("invalid token")
)
