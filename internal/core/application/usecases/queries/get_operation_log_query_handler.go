package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/operation"
	"fulfillment/internal/core/ports"
)

// GetOperationLogQueryHandler reads the append-only operation history.
type GetOperationLogQueryHandler struct {
	repo ports.OperationLogRepository
}

// NewGetOperationLogQueryHandler creates a handler for history reads.
func NewGetOperationLogQueryHandler(repo ports.OperationLogRepository) GetOperationLogQueryHandler {
	return GetOperationLogQueryHandler{repo: repo}
}

// Handle executes the query, newest entry first.
func (h GetOperationLogQueryHandler) Handle(
	ctx context.Context,
	query GetOperationLogQuery,
) ([]GetOperationLogQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var (
		records []*operation.Entry
		err     error
	)
	if query.OrderCode() != "" {
		records, err = h.repo.ListByOrder(ctx, query.OrderCode(), query.Limit())
	} else {
		records, err = h.repo.List(ctx, query.Limit())
	}
	if err != nil {
		return nil, err
	}

	entries := make([]GetOperationLogQueryResponse, 0, len(records))
	for _, record := range records {
		entries = append(entries, GetOperationLogQueryResponse{
			ID:        record.ID(),
			Type:      record.OperationType().String(),
			OrderCode: record.OrderCode(),
			Carrier:   record.Carrier(),
			Employee:  record.Employee(),
			Details:   record.Details(),
			Result:    record.Result().String(),
			CreatedAt: record.CreatedAt(),
		})
	}

	return entries, nil
}
