package service

import "errors"

var (
	// ErrNotFound is returned when a requested record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrStoreNotConfigured is returned by write operations when no content
	// store is configured. Reads never return it; they fall back to the
	// compiled-in catalog instead.
	ErrStoreNotConfigured = errors.New("content store not configured")

	// ErrStorageNotConfigured is returned by uploads when no asset bucket
	// is configured.
	ErrStorageNotConfigured = errors.New("asset storage not configured")

	// ErrInvalidCredentials is returned on a failed login.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrInvalidInput is returned when a payload fails validation.
	ErrInvalidInput = errors.New("invalid input")
)
