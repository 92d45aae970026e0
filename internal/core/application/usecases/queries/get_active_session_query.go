package queries

import (
	"errors"
	"time"

	"fulfillment/internal/pkg/guard"
)

var ErrGetActiveSessionQueryIsNotConstructed = errors.New(
	"GetActiveSessionQuery must be created via NewGetActiveSessionQuery constructor",
)

// GetActiveSessionQuery retrieves the state of the in-flight preparation
// batch for the console: which order is active, per-line progress and the
// scan history of every order.
type GetActiveSessionQuery struct {
	guard guard.ConstructorGuard
}

// NewGetActiveSessionQuery creates a query for the active batch.
func NewGetActiveSessionQuery() GetActiveSessionQuery {
	return GetActiveSessionQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetActiveSessionQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveSessionQueryIsNotConstructed)
}

// GetActiveSessionQueryResponse is the full read model of the active batch.
// Active is false when no session exists; the other fields are zero then.
type GetActiveSessionQueryResponse struct {
	Active          bool
	Operator        string
	Notes           string
	SavedAt         time.Time
	ActiveOrderCode string
	ReadyToCommit   bool
	Orders          []SessionOrderResponse
}

// SessionOrderResponse is the per-order slice of the batch read model.
type SessionOrderResponse struct {
	Code         string
	OrderScanned bool
	Completed    bool
	Lines        []SessionLineResponse
	ScanLogs     []SessionScanLogResponse
}

// SessionLineResponse is one product line with its scan progress.
type SessionLineResponse struct {
	SKU          string
	Name         string
	RequestedQty int
	ScannedQty   int
}

// SessionScanLogResponse is one scan attempt, success or failure.
type SessionScanLogResponse struct {
	Success bool
	Message string
	Reason  string
	At      time.Time
}
