package utils

import "github.com/google/uuid"

// RequestIDHeader carries the per-request correlation id.
const RequestIDHeader = "X-Request-ID"

// NewRequestID returns a time-ordered UUIDv7, falling back to a random
// UUIDv4 if the v7 generator fails.
func NewRequestID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
