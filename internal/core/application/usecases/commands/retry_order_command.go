package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrRetryOrderCommandIsNotConstructed = errors.New(
	"RetryOrderCommand must be created via NewRetryOrderCommand constructor",
)

// RetryOrderCommand represents putting a rejected order back into the
// fulfillment flow.
type RetryOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	employee string

	guard guard.ConstructorGuard
}

// NewRetryOrderCommand creates a command to retry a rejected order.
func NewRetryOrderCommand(orderID kernel.UUID, employee string) (RetryOrderCommand, error) {
	cmd := RetryOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return RetryOrderCommand{}, err
	}

	cmd.employee = employee
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RetryOrderCommand) Validate() error {
	return c.guard.Validate(ErrRetryOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to retry.
func (c RetryOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Employee returns the operator restarting the order.
func (c RetryOrderCommand) Employee() string {
	return c.employee
}

func (c *RetryOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
