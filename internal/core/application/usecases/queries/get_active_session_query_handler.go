package queries

import (
	"context"
	"errors"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/session"
)

// sessionSource exposes the active session without letting the query layer
// mutate it. The command layer's session registry satisfies this.
type sessionSource interface {
	Peek(ctx context.Context) (*session.PreparationSession, error)
}

// GetActiveSessionQueryHandler builds the console read model from the
// in-memory session rather than the database: the durable slot only exists
// for crash recovery and may lag behind.
type GetActiveSessionQueryHandler struct {
	source sessionSource
}

// NewGetActiveSessionQueryHandler creates a handler over the session source.
func NewGetActiveSessionQueryHandler(source sessionSource) GetActiveSessionQueryHandler {
	return GetActiveSessionQueryHandler{source: source}
}

// Handle executes the query.
func (h GetActiveSessionQueryHandler) Handle(
	ctx context.Context,
	query GetActiveSessionQuery,
) (GetActiveSessionQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetActiveSessionQueryResponse{}, err
	}

	sess, err := h.source.Peek(ctx)
	if errors.Is(err, commands.ErrNoActiveSession) {
		// An idle console is a regular answer, not a failure.
		return GetActiveSessionQueryResponse{}, nil
	}
	if err != nil {
		return GetActiveSessionQueryResponse{}, err
	}

	activeCode, _ := sess.ActiveOrderCode()
	response := GetActiveSessionQueryResponse{
		Active:          true,
		Operator:        sess.Operator(),
		Notes:           sess.Notes(),
		SavedAt:         sess.SavedAt(),
		ActiveOrderCode: activeCode,
		ReadyToCommit:   sess.ReadyToCommit(),
		Orders:          make([]SessionOrderResponse, 0, len(sess.OrderCodes())),
	}

	for _, code := range sess.OrderCodes() {
		state, ok := sess.State(code)
		if !ok {
			continue
		}

		orderResponse := SessionOrderResponse{
			Code:         code,
			OrderScanned: state.OrderScanned(),
			Completed:    state.Completed(),
		}

		for _, line := range state.Lines() {
			orderResponse.Lines = append(orderResponse.Lines, SessionLineResponse{
				SKU:          line.SKU(),
				Name:         line.Name(),
				RequestedQty: line.RequestedQty(),
				ScannedQty:   line.ScannedQty(),
			})
		}

		for _, log := range state.ScanLogs() {
			orderResponse.ScanLogs = append(orderResponse.ScanLogs, SessionScanLogResponse{
				Success: log.Success,
				Message: log.Message,
				Reason:  log.Reason,
				At:      log.At,
			})
		}

		response.Orders = append(response.Orders, orderResponse)
	}

	return response, nil
}
