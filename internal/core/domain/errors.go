package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrMissingAPIKey indicates no API key is configured.
	// Set BIGDATA_API_KEY or store a key via the config command.
	ErrMissingAPIKey = errors.New("API key not configured")

	// ErrRateLimited indicates the API rate limit was exceeded.
	ErrRateLimited = errors.New("rate limited")

	// ErrEmptyResponse indicates the API returned no usable data.
	ErrEmptyResponse = errors.New("empty response")
)
