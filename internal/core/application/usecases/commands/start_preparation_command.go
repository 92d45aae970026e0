package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrStartPreparationCommandIsNotConstructed = errors.New(
	"StartPreparationCommand must be created via NewStartPreparationCommand constructor",
)

// StartPreparationCommand represents opening a preparation batch over a set
// of orders. The sequence of IDs fixes the pick sequence of the batch.
type StartPreparationCommand struct { //nolint:recvcheck //using for validation
	orderIDs []kernel.UUID
	operator string

	guard guard.ConstructorGuard
}

// NewStartPreparationCommand creates a command to start a preparation batch.
func NewStartPreparationCommand(orderIDs []kernel.UUID, operator string) (StartPreparationCommand, error) {
	cmd := StartPreparationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderIDs(orderIDs); err != nil {
		return StartPreparationCommand{}, err
	}

	cmd.operator = operator
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c StartPreparationCommand) Validate() error {
	return c.guard.Validate(ErrStartPreparationCommandIsNotConstructed)
}

// OrderIDs returns the identifiers of the orders in pick sequence.
func (c StartPreparationCommand) OrderIDs() []kernel.UUID {
	ids := make([]kernel.UUID, len(c.orderIDs))
	copy(ids, c.orderIDs)
	return ids
}

// Operator returns the operator opening the batch.
func (c StartPreparationCommand) Operator() string {
	return c.operator
}

func (c *StartPreparationCommand) setOrderIDs(orderIDs []kernel.UUID) error {
	if len(orderIDs) == 0 {
		return errs.NewValueIsRequiredError("orderIDs")
	}
	for _, id := range orderIDs {
		if err := id.Validate(); err != nil {
			return err
		}
	}

	c.orderIDs = make([]kernel.UUID, len(orderIDs))
	copy(c.orderIDs, orderIDs)
	return nil
}
