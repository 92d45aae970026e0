package commands

import (
	"context"
	"fmt"

	"fulfillment/internal/core/domain/model/operation"
)

// AssignCarrierCommandHandler assigns a carrier to a confirmed order and
// records the assignment in the operation log. The order status does not
// change; printing the label is what advances it.
type AssignCarrierCommandHandler struct {
	uowFactory FulfillmentUoWFactory
}

// NewAssignCarrierCommandHandler creates a handler for carrier assignment.
func NewAssignCarrierCommandHandler(uowFactory FulfillmentUoWFactory) AssignCarrierCommandHandler {
	return AssignCarrierCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the carrier assignment command. The order aggregate
// refuses assignment outside the Confirmed state.
func (h AssignCarrierCommandHandler) Handle(ctx context.Context, cmd AssignCarrierCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = o.AssignCarrier(cmd.Carrier(), cmd.TrackingCode()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	entry, err := operation.NewEntry(operation.NewEntryParams{
		Type:      operation.AssignCarrier,
		OrderCode: o.Code(),
		Carrier:   cmd.Carrier(),
		Employee:  cmd.Employee(),
		Details:   fmt.Sprintf("carrier %s assigned", cmd.Carrier()),
		Result:    operation.ResultSuccess,
	})
	if err != nil {
		return err
	}

	if err = uow.OperationLogRepository().Push(ctx, entry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
