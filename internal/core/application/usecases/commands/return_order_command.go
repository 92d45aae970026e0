package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrReturnOrderCommandIsNotConstructed = errors.New(
	"ReturnOrderCommand must be created via NewReturnOrderCommand constructor",
)

// ReturnOrderCommand represents the intake of a shipped order coming back
// from the customer, with the operator's assessment of its condition.
type ReturnOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	condition string
	employee  string

	guard guard.ConstructorGuard
}

// NewReturnOrderCommand creates a command to accept a return.
func NewReturnOrderCommand(orderID kernel.UUID, condition, employee string) (ReturnOrderCommand, error) {
	cmd := ReturnOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return ReturnOrderCommand{}, err
	}

	cmd.condition = condition
	cmd.employee = employee
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReturnOrderCommand) Validate() error {
	return c.guard.Validate(ErrReturnOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the returned order.
func (c ReturnOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Condition returns the operator-assessed condition of the return.
func (c ReturnOrderCommand) Condition() string {
	return c.condition
}

// Employee returns the operator taking the return in.
func (c ReturnOrderCommand) Employee() string {
	return c.employee
}

func (c *ReturnOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
