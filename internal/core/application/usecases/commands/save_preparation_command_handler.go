package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/operation"
	"fulfillment/internal/core/domain/model/session"
)

// SavePreparationCommandHandler commits the active batch. Every order of the
// batch moves to Prepared in one transaction, each with an ORDER_PREPARED
// log entry carrying the scan history and the final line counts. The session
// slot is released only after the transaction commits; on any failure the
// session stays active and the operator can fix the problem and save again.
type SavePreparationCommandHandler struct {
	uowFactory FulfillmentUoWFactory
	registry   *SessionRegistry
}

// NewSavePreparationCommandHandler creates a handler for committing batches.
func NewSavePreparationCommandHandler(
	uowFactory FulfillmentUoWFactory, registry *SessionRegistry,
) SavePreparationCommandHandler {
	return SavePreparationCommandHandler{
		uowFactory: uowFactory,
		registry:   registry,
	}
}

// Handle processes the save command.
func (h SavePreparationCommandHandler) Handle(ctx context.Context, cmd SavePreparationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.registry.Finish(ctx, func(sess *session.PreparationSession) error {
		if !sess.ReadyToCommit() {
			return session.ErrBatchIncomplete
		}

		uow := h.uowFactory.Create()
		if err := uow.Begin(ctx); err != nil {
			return err
		}

		defer func() {
			_ = uow.Rollback(ctx)
		}()

		orderRepo := uow.OrderRepository()
		logRepo := uow.OperationLogRepository()

		for _, code := range sess.OrderCodes() {
			state, ok := sess.State(code)
			if !ok {
				continue
			}

			o, err := orderRepo.GetByCode(ctx, code)
			if err != nil {
				return err
			}

			if err = o.CompletePreparation(state.Lines()); err != nil {
				return err
			}

			if err = orderRepo.Update(ctx, o); err != nil {
				return err
			}

			entry, err := operation.NewEntry(operation.NewEntryParams{
				Type:      operation.OrderPrepared,
				OrderCode: o.Code(),
				Carrier:   carrierName(o.Carrier()),
				Employee:  sess.Operator(),
				Details:   sess.Notes(),
				Result:    operation.ResultSuccess,
				ScanLogs:  state.ScanLogs(),
				Lines:     state.Lines(),
			})
			if err != nil {
				return err
			}

			if err = logRepo.Push(ctx, entry); err != nil {
				return err
			}
		}

		return uow.Commit(ctx)
	})
}
