// Package sessionstore persists the single preparation session slot. The
// table holds at most one row; Save upserts it, Load tolerates a corrupt
// payload by reporting "no session" so a bad write can never wedge startup.
package sessionstore

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/session"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// slotID is the fixed primary key of the single session row.
const slotID = 1

// SessionDTO is the single-row database slot.
type SessionDTO struct {
	ID      int    `gorm:"primaryKey"`
	Payload []byte `gorm:"type:jsonb;not null"`
	SavedAt time.Time
}

// TableName overrides GORM's default naming to use "preparation_sessions".
func (SessionDTO) TableName() string {
	return "preparation_sessions"
}

type sessionJSON struct {
	OrderCodes []string                  `json:"order_codes"`
	States     map[string]orderStateJSON `json:"states"`
	Operator   string                    `json:"operator"`
	Notes      string                    `json:"notes"`
	SavedAt    time.Time                 `json:"saved_at"`
}

type orderStateJSON struct {
	OrderScanned bool          `json:"order_scanned"`
	Lines        []lineJSON    `json:"lines"`
	ScanLogs     []scanLogJSON `json:"scan_logs"`
}

type lineJSON struct {
	SKU          string `json:"sku"`
	Name         string `json:"name"`
	RequestedQty int    `json:"requested_qty"`
	ScannedQty   int    `json:"scanned_qty"`
}

type scanLogJSON struct {
	Success bool      `json:"success"`
	Message string    `json:"message"`
	Reason  string    `json:"reason,omitempty"`
	At      time.Time `json:"at"`
}

// GormSessionStore implements ports.SessionStore on a single-row table.
type GormSessionStore struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewGormSessionStore creates a session store over the given connection.
func NewGormSessionStore(db *gorm.DB, logger *slog.Logger) *GormSessionStore {
	return &GormSessionStore{
		db:     db,
		logger: logger.With("component", "session_store"),
	}
}

// Save serializes the session and upserts the slot.
func (s *GormSessionStore) Save(ctx context.Context, sess *session.PreparationSession) error {
	if err := sess.Validate(); err != nil {
		return err
	}

	payload, err := json.Marshal(toJSON(sess))
	if err != nil {
		return err
	}

	dto := SessionDTO{
		ID:      slotID,
		Payload: payload,
		SavedAt: sess.SavedAt(),
	}

	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(&dto).Error
}

// Load rehydrates the saved session. An empty slot and an unreadable
// payload both come back as (nil, nil); the latter is logged.
func (s *GormSessionStore) Load(ctx context.Context) (*session.PreparationSession, error) {
	var dto SessionDTO
	err := s.db.WithContext(ctx).First(&dto, "id = ?", slotID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	sess, err := fromJSON(dto.Payload)
	if err != nil {
		s.logger.Warn("discarding unreadable session payload", "error", err)
		return nil, nil
	}

	return sess, nil
}

// Clear empties the slot. Clearing an empty slot is a no-op.
func (s *GormSessionStore) Clear(ctx context.Context) error {
	return s.db.WithContext(ctx).Delete(&SessionDTO{}, "id = ?", slotID).Error
}

func toJSON(sess *session.PreparationSession) sessionJSON {
	payload := sessionJSON{
		OrderCodes: sess.OrderCodes(),
		States:     make(map[string]orderStateJSON),
		Operator:   sess.Operator(),
		Notes:      sess.Notes(),
		SavedAt:    sess.SavedAt(),
	}

	for _, code := range sess.OrderCodes() {
		state, ok := sess.State(code)
		if !ok {
			continue
		}

		stateJSON := orderStateJSON{OrderScanned: state.OrderScanned()}
		for _, line := range state.Lines() {
			stateJSON.Lines = append(stateJSON.Lines, lineJSON{
				SKU:          line.SKU(),
				Name:         line.Name(),
				RequestedQty: line.RequestedQty(),
				ScannedQty:   line.ScannedQty(),
			})
		}
		for _, log := range state.ScanLogs() {
			stateJSON.ScanLogs = append(stateJSON.ScanLogs, scanLogJSON{
				Success: log.Success,
				Message: log.Message,
				Reason:  log.Reason,
				At:      log.At,
			})
		}
		payload.States[code] = stateJSON
	}

	return payload
}

func fromJSON(raw []byte) (*session.PreparationSession, error) {
	var payload sessionJSON
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, err
	}

	states := make(map[string]*session.OrderScanState, len(payload.States))
	for code, stateJSON := range payload.States {
		lines := make([]order.ProductLine, 0, len(stateJSON.Lines))
		for _, row := range stateJSON.Lines {
			line, err := order.RestoreProductLine(row.SKU, row.Name, row.RequestedQty, row.ScannedQty)
			if err != nil {
				return nil, err
			}
			lines = append(lines, line)
		}

		logs := make([]session.ScanLogEntry, 0, len(stateJSON.ScanLogs))
		for _, row := range stateJSON.ScanLogs {
			logs = append(logs, session.ScanLogEntry{
				Success: row.Success,
				Message: row.Message,
				Reason:  row.Reason,
				At:      row.At,
			})
		}

		states[code] = session.RestoreOrderScanState(stateJSON.OrderScanned, lines, logs)
	}

	return session.RestorePreparationSession(
		payload.OrderCodes, states, payload.Operator, payload.Notes, payload.SavedAt)
}
