package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

const defaultOperationLogLimit = 100

var ErrGetOperationLogQueryIsNotConstructed = errors.New(
	"GetOperationLogQuery must be created via NewGetOperationLogQuery constructor",
)

// GetOperationLogQuery pages through the operation history, newest entry
// first. An optional order code narrows the history to one order.
type GetOperationLogQuery struct {
	orderCode string
	limit     int

	guard guard.ConstructorGuard
}

// NewGetOperationLogQuery creates a query over the operation history.
// A zero limit falls back to the default page size; an empty orderCode
// selects the history of every order.
func NewGetOperationLogQuery(orderCode string, limit int) (GetOperationLogQuery, error) {
	if limit < 0 {
		return GetOperationLogQuery{}, errs.NewValueIsOutOfRangeError("limit", limit, 0, nil)
	}
	if limit == 0 {
		limit = defaultOperationLogLimit
	}

	return GetOperationLogQuery{
		orderCode: orderCode,
		limit:     limit,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOperationLogQuery) Validate() error {
	return q.guard.Validate(ErrGetOperationLogQueryIsNotConstructed)
}

// OrderCode returns the order filter, empty for no filter.
func (q GetOperationLogQuery) OrderCode() string {
	return q.orderCode
}

// Limit returns the page size.
func (q GetOperationLogQuery) Limit() int {
	return q.limit
}

// GetOperationLogQueryResponse is one entry of the operation history.
type GetOperationLogQueryResponse struct {
	ID        kernel.UUID
	Type      string
	OrderCode string
	Carrier   string
	Employee  string
	Details   string
	Result    string
	CreatedAt time.Time
}
