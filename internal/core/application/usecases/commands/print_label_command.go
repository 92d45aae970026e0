package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrPrintLabelCommandIsNotConstructed = errors.New(
	"PrintLabelCommand must be created via NewPrintLabelCommand constructor",
)

// PrintLabelCommand represents a request to print (or reprint) the shipping
// label of an order.
type PrintLabelCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	employee string

	guard guard.ConstructorGuard
}

// NewPrintLabelCommand creates a command to print an order's shipping label.
func NewPrintLabelCommand(orderID kernel.UUID, employee string) (PrintLabelCommand, error) {
	cmd := PrintLabelCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return PrintLabelCommand{}, err
	}

	cmd.employee = employee
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PrintLabelCommand) Validate() error {
	return c.guard.Validate(ErrPrintLabelCommandIsNotConstructed)
}

// OrderID returns the identifier of the target order.
func (c PrintLabelCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Employee returns the operator printing the label.
func (c PrintLabelCommand) Employee() string {
	return c.employee
}

func (c *PrintLabelCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
