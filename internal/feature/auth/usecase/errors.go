// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by email or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when attempting to create or update a user
	// with an email that already belongs to another user.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrSessionNotFound is returned when the session store has no value for a key.
	ErrSessionNotFound = errors.New("session not found")

	// ErrNotAuthenticated is returned when an operation requires an
	// authenticated user and there is none.
	ErrNotAuthenticated = errors.New("not authenticated")
)
