package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/guard"
)

var ErrGetOrdersByStatusQueryIsNotConstructed = errors.New(
	"GetOrdersByStatusQuery must be created via NewGetOrdersByStatusQuery constructor",
)

// GetOrdersByStatusQuery lists the orders sitting in one lifecycle status.
// The console renders one column per status from this query.
type GetOrdersByStatusQuery struct {
	status  order.Status
	carrier string

	guard guard.ConstructorGuard
}

// NewGetOrdersByStatusQuery creates a query for one status column. An empty
// carrier selects orders of every carrier.
func NewGetOrdersByStatusQuery(status order.Status, carrier string) (GetOrdersByStatusQuery, error) {
	if err := status.Validate(); err != nil {
		return GetOrdersByStatusQuery{}, err
	}

	return GetOrdersByStatusQuery{
		status:  status,
		carrier: carrier,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersByStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByStatusQueryIsNotConstructed)
}

// Status returns the lifecycle status to list.
func (q GetOrdersByStatusQuery) Status() order.Status {
	return q.status
}

// Carrier returns the carrier filter, empty for no filter.
func (q GetOrdersByStatusQuery) Carrier() string {
	return q.carrier
}

// GetOrdersByStatusQueryResponse is one row of a status column.
type GetOrdersByStatusQueryResponse struct {
	ID           kernel.UUID
	Code         string
	Carrier      string
	TrackingCode string
	LabelPrinted bool
	LineCount    int
}
