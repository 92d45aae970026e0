package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/operation"
)

// RetryOrderCommandHandler puts a rejected order back into Confirmed with
// its rejection and carrier assignment cleared, and writes a RETRY_ORDER
// log entry.
type RetryOrderCommandHandler struct {
	uowFactory FulfillmentUoWFactory
}

// NewRetryOrderCommandHandler creates a handler for retrying rejected orders.
func NewRetryOrderCommandHandler(uowFactory FulfillmentUoWFactory) RetryOrderCommandHandler {
	return RetryOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the retry command.
func (h RetryOrderCommandHandler) Handle(ctx context.Context, cmd RetryOrderCommand) error {
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

	if err = o.Retry(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	entry, err := operation.NewEntry(operation.NewEntryParams{
		Type:      operation.RetryOrder,
		OrderCode: o.Code(),
		Employee:  cmd.Employee(),
		Details:   "order returned to fulfillment",
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
