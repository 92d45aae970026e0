package ports

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/order"
)

// InventorySnapshot is the authoritative per-SKU on-hand picture returned by
// the inventory ledger after a movement was recorded.
type InventorySnapshot struct {
	OnHand  map[string]int
	TakenAt time.Time
}

// InventoryLedger is the external collaborator owning inventory arithmetic.
// The core calls it exactly once per ship or return transition and treats
// the returned snapshot as authoritative; it never recomputes quantities
// itself. A failed call must leave order state untouched.
type InventoryLedger interface {
	// DeductForShipment records the outbound movement of the given lines.
	DeductForShipment(ctx context.Context, lines []order.ProductLine) (InventorySnapshot, error)

	// RestoreFromReturn records the inbound movement of the given lines.
	RestoreFromReturn(ctx context.Context, lines []order.ProductLine) (InventorySnapshot, error)
}
