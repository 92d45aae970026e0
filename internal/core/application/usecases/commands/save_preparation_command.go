package commands

import (
	"errors"

	"fulfillment/internal/pkg/guard"
)

var ErrSavePreparationCommandIsNotConstructed = errors.New(
	"SavePreparationCommand must be created via NewSavePreparationCommand constructor",
)

// SavePreparationCommand commits the active batch once every order in it is
// fully scanned.
type SavePreparationCommand struct { //nolint:recvcheck //using for validation
	guard guard.ConstructorGuard
}

// NewSavePreparationCommand creates a command to commit the active batch.
func NewSavePreparationCommand() (SavePreparationCommand, error) {
	return SavePreparationCommand{
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SavePreparationCommand) Validate() error {
	return c.guard.Validate(ErrSavePreparationCommandIsNotConstructed)
}
