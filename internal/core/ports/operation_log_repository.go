package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/operation"
)

// OperationLogRepository is the append-only sink for operation log entries.
// Entries are never mutated or removed once pushed; readers always receive
// them newest first.
type OperationLogRepository interface {
	// Push appends an entry to the log, assigning an identifier when the
	// entry carries none.
	Push(ctx context.Context, entry *operation.Entry) error

	// List returns up to limit entries, most recent first.
	List(ctx context.Context, limit int) ([]*operation.Entry, error)

	// ListByOrder returns up to limit entries for one order, most recent first.
	ListByOrder(ctx context.Context, orderCode string, limit int) ([]*operation.Entry, error)
}
