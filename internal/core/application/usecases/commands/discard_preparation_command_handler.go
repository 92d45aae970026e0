package commands

import "context"

// DiscardPreparationCommandHandler drops the active session. All scan
// progress is lost; the orders stay in their current status.
type DiscardPreparationCommandHandler struct {
	registry *SessionRegistry
}

// NewDiscardPreparationCommandHandler creates a handler for abandoning batches.
func NewDiscardPreparationCommandHandler(registry *SessionRegistry) DiscardPreparationCommandHandler {
	return DiscardPreparationCommandHandler{
		registry: registry,
	}
}

// Handle processes the discard command.
func (h DiscardPreparationCommandHandler) Handle(ctx context.Context, cmd DiscardPreparationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	h.registry.Discard(ctx)
	return nil
}
