package commands

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"fulfillment/internal/core/domain/model/session"
	"fulfillment/internal/core/ports"
)

var (
	// ErrSessionAlreadyActive is returned when a new preparation batch is
	// started while a session occupies the slot. The caller must resume or
	// explicitly discard the existing one; sessions are never merged.
	ErrSessionAlreadyActive = errors.New("a preparation session is already active")

	// ErrNoActiveSession is returned when an operation needs a session and
	// the slot is empty.
	ErrNoActiveSession = errors.New("no active preparation session")
)

// SessionRegistry owns the single in-flight preparation session. The
// in-memory session is the source of truth for every operation; the durable
// store is a crash-recovery mirror updated after every mutation.
//
// Autosave is best-effort: a failed store write is logged and swallowed, the
// next scan proceeds against the in-memory state. The durable copy is read
// exactly once, lazily, to recover a session after a restart; from then on
// memory is authoritative.
type SessionRegistry struct {
	mu     sync.Mutex
	store  ports.SessionStore
	logger *slog.Logger

	active *session.PreparationSession
	loaded bool
}

// NewSessionRegistry creates a registry backed by the given durable store.
func NewSessionRegistry(store ports.SessionStore, logger *slog.Logger) *SessionRegistry {
	return &SessionRegistry{
		store:  store,
		logger: logger.With("component", "session_registry"),
	}
}

// Put installs a new session into the slot. Fails with
// ErrSessionAlreadyActive when one is already in flight.
func (r *SessionRegistry) Put(ctx context.Context, s *session.PreparationSession) error {
	if err := s.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.ensureLoaded(ctx)
	if r.active != nil {
		return ErrSessionAlreadyActive
	}

	r.active = s
	r.autosave(ctx)
	return nil
}

// Peek returns the active session without mutating anything, or
// ErrNoActiveSession when the slot is empty.
func (r *SessionRegistry) Peek(ctx context.Context) (*session.PreparationSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.ensureLoaded(ctx)
	if r.active == nil {
		return nil, ErrNoActiveSession
	}
	return r.active, nil
}

// Mutate runs fn against the active session under the registry lock and
// autosaves afterwards. When fn fails, whatever it already applied stays in
// place and the error is surfaced; accumulated scan progress is never
// rolled back.
func (r *SessionRegistry) Mutate(ctx context.Context, fn func(*session.PreparationSession) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.ensureLoaded(ctx)
	if r.active == nil {
		return ErrNoActiveSession
	}

	err := fn(r.active)
	r.autosave(ctx)
	return err
}

// Finish runs fn against the active session and, only when fn succeeds,
// empties the slot (memory and store). Used by the save-all commit so a
// failed commit keeps the session intact for a retry.
func (r *SessionRegistry) Finish(ctx context.Context, fn func(*session.PreparationSession) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.ensureLoaded(ctx)
	if r.active == nil {
		return ErrNoActiveSession
	}

	if err := fn(r.active); err != nil {
		return err
	}

	r.active = nil
	r.clear(ctx)
	return nil
}

// Checkpoint re-saves the active session to the durable slot. Covers the
// window after a failed autosave; a no-op when nothing is active.
func (r *SessionRegistry) Checkpoint(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.ensureLoaded(ctx)
	if r.active == nil {
		return nil
	}
	return r.store.Save(ctx, r.active)
}

// StaleSince reports the last-mutation time of the active session, or false
// when none is active. Read-only, for the session watchdog.
func (r *SessionRegistry) StaleSince(ctx context.Context) (time.Time, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.ensureLoaded(ctx)
	if r.active == nil {
		return time.Time{}, false
	}
	return r.active.SavedAt(), true
}

// Discard empties the slot without side effects on order state. A no-op
// when nothing is active.
func (r *SessionRegistry) Discard(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.ensureLoaded(ctx)
	r.active = nil
	r.clear(ctx)
}

// ensureLoaded recovers a session from the durable slot on first use after
// startup. A missing or corrupt durable copy degrades to "no session".
func (r *SessionRegistry) ensureLoaded(ctx context.Context) {
	if r.loaded {
		return
	}
	r.loaded = true

	restored, err := r.store.Load(ctx)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to load persisted session", "error", err)
		return
	}
	if restored != nil {
		r.active = restored
		r.logger.InfoContext(ctx, "Recovered preparation session",
			"operator", restored.Operator(), "orders", restored.OrderCodes())
	}
}

func (r *SessionRegistry) autosave(ctx context.Context) {
	if r.active == nil {
		return
	}
	if err := r.store.Save(ctx, r.active); err != nil {
		r.logger.ErrorContext(ctx, "Session autosave failed", "error", err)
	}
}

func (r *SessionRegistry) clear(ctx context.Context) {
	if err := r.store.Clear(ctx); err != nil {
		r.logger.ErrorContext(ctx, "Session clear failed", "error", err)
	}
}
