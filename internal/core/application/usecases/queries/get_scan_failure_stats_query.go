package queries

import (
	"errors"

	"fulfillment/internal/pkg/guard"
)

var ErrGetScanFailureStatsQueryIsNotConstructed = errors.New(
	"GetScanFailureStatsQuery must be created via NewGetScanFailureStatsQuery constructor",
)

// GetScanFailureStatsQuery aggregates failed scans across committed
// preparations, grouped by failure reason. Floor supervisors use it to spot
// recurring picking problems (mislabeled stock, duplicate barcodes).
type GetScanFailureStatsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetScanFailureStatsQuery creates a query over scan failure history.
func NewGetScanFailureStatsQuery() GetScanFailureStatsQuery {
	return GetScanFailureStatsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetScanFailureStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetScanFailureStatsQueryIsNotConstructed)
}

// GetScanFailureStatsQueryResponse is the aggregated failure report.
type GetScanFailureStatsQueryResponse struct {
	TotalScans  int
	TotalFailed int
	ByReason    map[string]int
}
