package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/session"
)

// StartPreparationCommandHandler opens a preparation batch: it loads the
// requested orders, verifies each one is eligible for preparation, builds a
// fresh session and claims the single session slot.
type StartPreparationCommandHandler struct {
	uowFactory OrderUoWFactory
	registry   *SessionRegistry
}

// NewStartPreparationCommandHandler creates a handler for opening batches.
func NewStartPreparationCommandHandler(
	uowFactory OrderUoWFactory, registry *SessionRegistry,
) StartPreparationCommandHandler {
	return StartPreparationCommandHandler{
		uowFactory: uowFactory,
		registry:   registry,
	}
}

// Handle processes the start command.
func (h StartPreparationCommandHandler) Handle(ctx context.Context, cmd StartPreparationCommand) error {
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
	orders := make([]*order.Order, 0, len(cmd.OrderIDs()))
	for _, id := range cmd.OrderIDs() {
		o, err := orderRepo.Get(ctx, id)
		if err != nil {
			return err
		}

		// An order only enters a batch once its label is printed.
		if _, err = o.Status().CompletePreparation(); err != nil {
			return err
		}

		orders = append(orders, o)
	}

	sess, err := session.NewPreparationSession(orders, cmd.Operator())
	if err != nil {
		return err
	}

	if err = h.registry.Put(ctx, sess); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
