package commands

import (
	"context"
	"fmt"

	"fulfillment/internal/core/domain/model/operation"
	"fulfillment/internal/core/ports"
)

// ShipOrderCommandHandler ships a prepared order: it records the outbound
// inventory movement through the inventory ledger, advances the order to
// Shipped and writes a SHIP_ORDER log entry.
//
// The ledger is called exactly once, before any mutation. When the call
// fails the order stays Prepared and the operator can retry the action
// (fail-closed, no distributed transaction).
type ShipOrderCommandHandler struct {
	uowFactory FulfillmentUoWFactory
	ledger     ports.InventoryLedger
}

// NewShipOrderCommandHandler creates a handler for shipping operations.
func NewShipOrderCommandHandler(uowFactory FulfillmentUoWFactory, ledger ports.InventoryLedger) ShipOrderCommandHandler {
	return ShipOrderCommandHandler{
		uowFactory: uowFactory,
		ledger:     ledger,
	}
}

// Handle processes the ship command.
func (h ShipOrderCommandHandler) Handle(ctx context.Context, cmd ShipOrderCommand) error {
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

	// Dry-run the transition first so an ineligible order never reaches
	// the inventory ledger.
	if _, err = o.Status().Ship(); err != nil {
		return err
	}

	if _, err = h.ledger.DeductForShipment(ctx, o.Lines()); err != nil {
		return fmt.Errorf("inventory deduction failed: %w", err)
	}

	if err = o.Ship(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	entry, err := operation.NewEntry(operation.NewEntryParams{
		Type:      operation.ShipOrder,
		OrderCode: o.Code(),
		Carrier:   carrierName(o.Carrier()),
		Employee:  cmd.Employee(),
		Details:   fmt.Sprintf("shipped via %s", carrierName(o.Carrier())),
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
