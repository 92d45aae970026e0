package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/operation"
)

// PrintLabelCommandHandler prints an order's shipping label. The first print
// moves the order into Preparing; reprints only refresh the timestamp.
// Every print is recorded in the operation log.
type PrintLabelCommandHandler struct {
	uowFactory FulfillmentUoWFactory
}

// NewPrintLabelCommandHandler creates a handler for label printing.
func NewPrintLabelCommandHandler(uowFactory FulfillmentUoWFactory) PrintLabelCommandHandler {
	return PrintLabelCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the print command. The aggregate requires an assigned
// carrier and refuses printing outside the Confirmed state (except reprints).
func (h PrintLabelCommandHandler) Handle(ctx context.Context, cmd PrintLabelCommand) error {
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

	reprint := o.LabelPrinted()
	if err = o.PrintLabel(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	details := "label printed"
	if reprint {
		details = "label reprinted"
	}

	entry, err := operation.NewEntry(operation.NewEntryParams{
		Type:      operation.PrintLabel,
		OrderCode: o.Code(),
		Carrier:   carrierName(o.Carrier()),
		Employee:  cmd.Employee(),
		Details:   details,
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
