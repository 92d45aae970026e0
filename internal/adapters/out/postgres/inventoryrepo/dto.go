// Package inventoryrepo keeps per-SKU stock as an append-only movement
// ledger: shipments write negative quantities, returns positive ones, and
// on-hand is the sum per SKU. Movements are never updated or deleted.
package inventoryrepo

import (
	"time"

	"github.com/google/uuid"
)

// MovementDTO is one signed stock movement.
type MovementDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	SKU       string    `gorm:"index;not null"`
	Qty       int       `gorm:"not null"`
	Reason    string    `gorm:"not null"`
	CreatedAt time.Time `gorm:"index;not null"`
}

// TableName overrides GORM's default naming to use "inventory_movements".
func (MovementDTO) TableName() string {
	return "inventory_movements"
}
