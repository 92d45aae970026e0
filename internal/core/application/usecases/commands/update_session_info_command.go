package commands

import (
	"errors"

	"fulfillment/internal/pkg/guard"
)

var ErrUpdateSessionInfoCommandIsNotConstructed = errors.New(
	"UpdateSessionInfoCommand must be created via NewUpdateSessionInfoCommand constructor",
)

// UpdateSessionInfoCommand updates the operator name and free-text notes of
// the active session. Both fields may be empty.
type UpdateSessionInfoCommand struct { //nolint:recvcheck //using for validation
	operator string
	notes    string

	guard guard.ConstructorGuard
}

// NewUpdateSessionInfoCommand creates a command to update session metadata.
func NewUpdateSessionInfoCommand(operator, notes string) (UpdateSessionInfoCommand, error) {
	return UpdateSessionInfoCommand{
		operator: operator,
		notes:    notes,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateSessionInfoCommand) Validate() error {
	return c.guard.Validate(ErrUpdateSessionInfoCommandIsNotConstructed)
}

// Operator returns the operator name to set.
func (c UpdateSessionInfoCommand) Operator() string {
	return c.operator
}

// Notes returns the notes text to set.
func (c UpdateSessionInfoCommand) Notes() string {
	return c.notes
}
