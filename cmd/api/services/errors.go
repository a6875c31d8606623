package services

import "errors"

// Error taxonomy shared by all services. Handlers translate these to HTTP
// statuses at the request boundary; anything unmatched is a dependency
// failure and maps to 500. No error is retried anywhere.
var (
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("already exists")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
