package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/operation"
)

// RejectOrderCommandHandler moves an order to Rejected and writes a
// REJECT_ORDER log entry. The entry is recorded with a failed result so
// rejection shows up distinctly in the operation history.
type RejectOrderCommandHandler struct {
	uowFactory FulfillmentUoWFactory
}

// NewRejectOrderCommandHandler creates a handler for order rejection.
func NewRejectOrderCommandHandler(uowFactory FulfillmentUoWFactory) RejectOrderCommandHandler {
	return RejectOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the reject command.
func (h RejectOrderCommandHandler) Handle(ctx context.Context, cmd RejectOrderCommand) error {
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

	if err = o.Reject(cmd.Reason()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	entry, err := operation.NewEntry(operation.NewEntryParams{
		Type:      operation.RejectOrder,
		OrderCode: o.Code(),
		Carrier:   carrierName(o.Carrier()),
		Employee:  cmd.Employee(),
		Details:   cmd.Reason(),
		Result:    operation.ResultFailed,
	})
	if err != nil {
		return err
	}

	if err = uow.OperationLogRepository().Push(ctx, entry); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
