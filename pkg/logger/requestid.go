package logger

import "github.com/google/uuid"

// generateRequestID produces an ID for requests arriving without an
// X-Request-ID header.
func generateRequestID() string {
	return uuid.NewString()
}
