package domain

import "errors"

// Sentinel errors shared across repositories and services.
var (
	// ErrNotFound is returned when a record does not exist in the store.
	ErrNotFound = errors.New("record not found")

	// ErrInvalidInput is returned for requests that fail validation.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidCredentials is returned when login fails. It deliberately does
	// not distinguish unknown emails from wrong passwords.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
