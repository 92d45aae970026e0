package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/session"
)

// UpdateSessionInfoCommandHandler updates operator and notes on the active
// session.
type UpdateSessionInfoCommandHandler struct {
	registry *SessionRegistry
}

// NewUpdateSessionInfoCommandHandler creates a handler for session metadata.
func NewUpdateSessionInfoCommandHandler(registry *SessionRegistry) UpdateSessionInfoCommandHandler {
	return UpdateSessionInfoCommandHandler{
		registry: registry,
	}
}

// Handle processes the metadata update.
func (h UpdateSessionInfoCommandHandler) Handle(ctx context.Context, cmd UpdateSessionInfoCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.registry.Mutate(ctx, func(s *session.PreparationSession) error {
		s.SetOperator(cmd.Operator())
		s.SetNotes(cmd.Notes())
		return nil
	})
}
