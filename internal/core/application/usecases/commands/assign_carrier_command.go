package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrAssignCarrierCommandIsNotConstructed = errors.New(
		"AssignCarrierCommand must be created via NewAssignCarrierCommand constructor",
	)
	ErrCarrierNameIsRequired = errors.New("carrier is required")
)

// AssignCarrierCommand represents a request to assign a shipping carrier to
// a confirmed order, optionally with a tracking code.
type AssignCarrierCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	carrier      string
	trackingCode string
	employee     string

	guard guard.ConstructorGuard
}

// NewAssignCarrierCommand creates a command to assign a carrier.
// The carrier name must be non-empty; the tracking code is optional.
func NewAssignCarrierCommand(orderID kernel.UUID, carrier, trackingCode, employee string) (AssignCarrierCommand, error) {
	cmd := AssignCarrierCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCarrier(carrier),
	); err != nil {
		return AssignCarrierCommand{}, err
	}

	cmd.trackingCode = trackingCode
	cmd.employee = employee
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignCarrierCommand) Validate() error {
	return c.guard.Validate(ErrAssignCarrierCommandIsNotConstructed)
}

// OrderID returns the identifier of the target order.
func (c AssignCarrierCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Carrier returns the carrier name to assign.
func (c AssignCarrierCommand) Carrier() string {
	return c.carrier
}

// TrackingCode returns the optional carrier tracking code.
func (c AssignCarrierCommand) TrackingCode() string {
	return c.trackingCode
}

// Employee returns the operator performing the assignment.
func (c AssignCarrierCommand) Employee() string {
	return c.employee
}

func (c *AssignCarrierCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AssignCarrierCommand) setCarrier(carrier string) error {
	if carrier == "" {
		return ErrCarrierNameIsRequired
	}

	c.carrier = carrier
	return nil
}
