package commands

import (
	"context"
	"fmt"

	"fulfillment/internal/core/domain/model/operation"
	"fulfillment/internal/core/ports"
)

// ReturnOrderCommandHandler takes a shipped order back: it restores the
// inventory through the ledger, puts the order back into Confirmed with the
// carrier cleared, and writes a RETURN_ORDER log entry.
//
// Like shipping, the ledger call happens before any mutation and a failure
// leaves the order Shipped so the intake can be retried.
type ReturnOrderCommandHandler struct {
	uowFactory FulfillmentUoWFactory
	ledger     ports.InventoryLedger
}

// NewReturnOrderCommandHandler creates a handler for return intake.
func NewReturnOrderCommandHandler(uowFactory FulfillmentUoWFactory, ledger ports.InventoryLedger) ReturnOrderCommandHandler {
	return ReturnOrderCommandHandler{
		uowFactory: uowFactory,
		ledger:     ledger,
	}
}

// Handle processes the return command.
func (h ReturnOrderCommandHandler) Handle(ctx context.Context, cmd ReturnOrderCommand) error {
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

	if _, err = o.Status().Return(); err != nil {
		return err
	}

	carrier := carrierName(o.Carrier())
	if _, err = h.ledger.RestoreFromReturn(ctx, o.Lines()); err != nil {
		return fmt.Errorf("inventory restore failed: %w", err)
	}

	if err = o.AcceptReturn(cmd.Condition()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	entry, err := operation.NewEntry(operation.NewEntryParams{
		Type:      operation.ReturnOrder,
		OrderCode: o.Code(),
		Carrier:   carrier,
		Employee:  cmd.Employee(),
		Details:   fmt.Sprintf("return accepted, condition: %s", cmd.Condition()),
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
