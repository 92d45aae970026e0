package inventoryrepo

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	reasonShipment = "SHIPMENT"
	reasonReturn   = "RETURN"
)

// GormInventoryLedger implements ports.InventoryLedger on the movement
// table. Each call appends one movement per line and returns the summed
// snapshot for the touched SKUs, all inside one transaction.
type GormInventoryLedger struct {
	db *gorm.DB
}

// NewGormInventoryLedger creates a ledger over the given connection.
func NewGormInventoryLedger(db *gorm.DB) *GormInventoryLedger {
	return &GormInventoryLedger{db: db}
}

// DeductForShipment records the outbound movement of the given lines.
func (l *GormInventoryLedger) DeductForShipment(
	ctx context.Context, lines []order.ProductLine,
) (ports.InventorySnapshot, error) {
	return l.record(ctx, lines, reasonShipment, -1)
}

// RestoreFromReturn records the inbound movement of the given lines.
func (l *GormInventoryLedger) RestoreFromReturn(
	ctx context.Context, lines []order.ProductLine,
) (ports.InventorySnapshot, error) {
	return l.record(ctx, lines, reasonReturn, 1)
}

func (l *GormInventoryLedger) record(
	ctx context.Context, lines []order.ProductLine, reason string, sign int,
) (ports.InventorySnapshot, error) {
	snapshot := ports.InventorySnapshot{
		OnHand:  make(map[string]int, len(lines)),
		TakenAt: time.Now(),
	}

	skus := make([]string, 0, len(lines))
	movements := make([]MovementDTO, 0, len(lines))
	for _, line := range lines {
		skus = append(skus, line.SKU())
		movements = append(movements, MovementDTO{
			ID:        uuid.New(),
			SKU:       line.SKU(),
			Qty:       sign * line.RequestedQty(),
			Reason:    reason,
			CreatedAt: time.Now(),
		})
	}

	err := l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&movements).Error; err != nil {
			return err
		}

		rows, err := tx.Raw(`
			SELECT sku, COALESCE(SUM(qty), 0)
			FROM inventory_movements
			WHERE sku IN ?
			GROUP BY sku
		`, skus).Rows()
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var sku string
			var onHand int
			if err = rows.Scan(&sku, &onHand); err != nil {
				return err
			}
			snapshot.OnHand[sku] = onHand
		}

		return rows.Err()
	})
	if err != nil {
		return ports.InventorySnapshot{}, err
	}

	return snapshot, nil
}
