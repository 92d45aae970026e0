package queries

import (
	"context"
	"encoding/json"

	"gorm.io/gorm"
)

// GetScanFailureStatsQueryHandler walks the scan-log snapshots frozen into
// ORDER_PREPARED log entries and counts failures per reason. The snapshots
// are small (one batch's worth of scans each), so the aggregation runs in
// memory instead of pushing jsonb arithmetic into the database.
type GetScanFailureStatsQueryHandler struct {
	db *gorm.DB
}

// NewGetScanFailureStatsQueryHandler creates a handler for failure stats.
func NewGetScanFailureStatsQueryHandler(db *gorm.DB) GetScanFailureStatsQueryHandler {
	return GetScanFailureStatsQueryHandler{db: db}
}

type scanLogRow struct {
	Success bool   `json:"success"`
	Reason  string `json:"reason"`
}

// Handle executes the query.
func (h GetScanFailureStatsQueryHandler) Handle(
	ctx context.Context,
	query GetScanFailureStatsQuery,
) (GetScanFailureStatsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetScanFailureStatsQueryResponse{}, err
	}

	response := GetScanFailureStatsQueryResponse{
		ByReason: make(map[string]int),
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT scan_logs
		FROM operation_log
		WHERE op_type = 'ORDER_PREPARED' AND scan_logs IS NOT NULL
	`).Rows()
	if err != nil {
		return GetScanFailureStatsQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var raw []byte
		if err = rows.Scan(&raw); err != nil {
			return GetScanFailureStatsQueryResponse{}, err
		}

		var logs []scanLogRow
		if err = json.Unmarshal(raw, &logs); err != nil {
			return GetScanFailureStatsQueryResponse{}, err
		}

		for _, log := range logs {
			response.TotalScans++
			if !log.Success {
				response.TotalFailed++
				response.ByReason[log.Reason]++
			}
		}
	}

	if err = rows.Err(); err != nil {
		return GetScanFailureStatsQueryResponse{}, err
	}

	return response, nil
}
