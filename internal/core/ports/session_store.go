package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/session"
)

// SessionStore is the durable single-slot home of the in-flight preparation
// session. Save replaces any prior contents; Load returns nil (not an error)
// when the slot is empty or its payload cannot be parsed, so callers always
// get a safe "no session" default.
type SessionStore interface {
	// Save serializes the session and commits it to the slot.
	Save(ctx context.Context, s *session.PreparationSession) error

	// Load returns the last committed session, or nil when absent or corrupt.
	Load(ctx context.Context) (*session.PreparationSession, error)

	// Clear empties the slot.
	Clear(ctx context.Context) error
}
