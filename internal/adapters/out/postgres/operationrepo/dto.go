// Package operationrepo persists the append-only operation log. Entries of
// type ORDER_PREPARED carry jsonb snapshots of the batch's scan history and
// final line counts; those columns stay NULL for every other type.
package operationrepo

import (
	"encoding/json"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/operation"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/session"

	"github.com/google/uuid"
)

// EntryDTO is the database row for one operation log entry.
type EntryDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OpType    string    `gorm:"index;not null"`
	OrderCode string    `gorm:"index;not null"`
	Carrier   string
	Employee  string
	Details   string
	Result    string    `gorm:"not null"`
	CreatedAt time.Time `gorm:"index;not null"`

	ScanLogs []byte `gorm:"type:jsonb"`
	Lines    []byte `gorm:"type:jsonb"`
}

// TableName overrides GORM's default naming to use "operation_log".
func (EntryDTO) TableName() string {
	return "operation_log"
}

// scanLogJSON is the jsonb shape of one scan attempt. Field names are part
// of the stored format; reporting queries parse them back.
type scanLogJSON struct {
	Success bool      `json:"success"`
	Message string    `json:"message"`
	Reason  string    `json:"reason,omitempty"`
	At      time.Time `json:"at"`
}

// lineJSON is the jsonb shape of one frozen product line.
type lineJSON struct {
	SKU          string `json:"sku"`
	Name         string `json:"name"`
	RequestedQty int    `json:"requested_qty"`
	ScannedQty   int    `json:"scanned_qty"`
}

// fromDomain converts a log entry to its database representation.
func fromDomain(entry *operation.Entry) (EntryDTO, error) {
	dto := EntryDTO{
		ID:        entry.ID().Bytes(),
		OpType:    entry.OperationType().String(),
		OrderCode: entry.OrderCode(),
		Carrier:   entry.Carrier(),
		Employee:  entry.Employee(),
		Details:   entry.Details(),
		Result:    entry.Result().String(),
		CreatedAt: entry.CreatedAt(),
	}

	if logs := entry.ScanLogs(); len(logs) > 0 {
		rows := make([]scanLogJSON, 0, len(logs))
		for _, log := range logs {
			rows = append(rows, scanLogJSON{
				Success: log.Success,
				Message: log.Message,
				Reason:  log.Reason,
				At:      log.At,
			})
		}
		raw, err := json.Marshal(rows)
		if err != nil {
			return EntryDTO{}, err
		}
		dto.ScanLogs = raw
	}

	if lines := entry.Lines(); len(lines) > 0 {
		rows := make([]lineJSON, 0, len(lines))
		for _, line := range lines {
			rows = append(rows, lineJSON{
				SKU:          line.SKU(),
				Name:         line.Name(),
				RequestedQty: line.RequestedQty(),
				ScannedQty:   line.ScannedQty(),
			})
		}
		raw, err := json.Marshal(rows)
		if err != nil {
			return EntryDTO{}, err
		}
		dto.Lines = raw
	}

	return dto, nil
}

// toDomain rehydrates a log entry from its database row.
func toDomain(dto EntryDTO) (*operation.Entry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	opType, err := operation.TypeFromString(dto.OpType)
	if err != nil {
		return nil, err
	}

	result, err := operation.ResultFromString(dto.Result)
	if err != nil {
		return nil, err
	}

	params := operation.NewEntryParams{
		Type:      opType,
		OrderCode: dto.OrderCode,
		Carrier:   dto.Carrier,
		Employee:  dto.Employee,
		Details:   dto.Details,
		Result:    result,
	}

	if len(dto.ScanLogs) > 0 {
		var rows []scanLogJSON
		if err = json.Unmarshal(dto.ScanLogs, &rows); err != nil {
			return nil, err
		}
		for _, row := range rows {
			params.ScanLogs = append(params.ScanLogs, session.ScanLogEntry{
				Success: row.Success,
				Message: row.Message,
				Reason:  row.Reason,
				At:      row.At,
			})
		}
	}

	if len(dto.Lines) > 0 {
		var rows []lineJSON
		if err = json.Unmarshal(dto.Lines, &rows); err != nil {
			return nil, err
		}
		for _, row := range rows {
			line, lineErr := order.RestoreProductLine(row.SKU, row.Name, row.RequestedQty, row.ScannedQty)
			if lineErr != nil {
				return nil, lineErr
			}
			params.Lines = append(params.Lines, line)
		}
	}

	return operation.RestoreEntry(id, params, dto.CreatedAt)
}
