package utils

import "github.com/google/uuid"

// NewRequestID returns a random (version 4) uuid used as X-Request-ID.
func NewRequestID() string {
	return uuid.NewString()
}
