package commands

import (
	"errors"

	"fulfillment/internal/pkg/guard"
)

var ErrDiscardPreparationCommandIsNotConstructed = errors.New(
	"DiscardPreparationCommand must be created via NewDiscardPreparationCommand constructor",
)

// DiscardPreparationCommand abandons the active batch without touching any
// order. Discarding when no session is active is a no-op.
type DiscardPreparationCommand struct { //nolint:recvcheck //using for validation
	guard guard.ConstructorGuard
}

// NewDiscardPreparationCommand creates a command to abandon the active batch.
func NewDiscardPreparationCommand() (DiscardPreparationCommand, error) {
	return DiscardPreparationCommand{
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DiscardPreparationCommand) Validate() error {
	return c.guard.Validate(ErrDiscardPreparationCommandIsNotConstructed)
}
