// Package orderrepo maps order aggregates onto their relational form: one
// row per order plus one row per product line, keyed by order ID.
package orderrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is the database row for one order aggregate.
type OrderDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code         string    `gorm:"uniqueIndex;not null"`
	Carrier      *string
	TrackingCode string
	Status       int `gorm:"index"`
	LabelPrinted bool

	PrintedAt  *time.Time
	PreparedAt *time.Time
	ShippedAt  *time.Time
	ReturnedAt *time.Time
	RejectedAt *time.Time

	RejectReason    string
	ReturnCondition string

	Lines []LineDTO `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// LineDTO is the database row for one product line of an order.
type LineDTO struct {
	ID           int64     `gorm:"primaryKey;autoIncrement"`
	OrderID      uuid.UUID `gorm:"type:uuid;index;not null"`
	SKU          string    `gorm:"not null"`
	Name         string
	RequestedQty int
	ScannedQty   int
}

// TableName overrides GORM's default naming to use "order_lines".
func (LineDTO) TableName() string {
	return "order_lines"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(o *order.Order) OrderDTO {
	lines := make([]LineDTO, 0, len(o.Lines()))
	for _, line := range o.Lines() {
		lines = append(lines, LineDTO{
			OrderID:      o.ID().Bytes(),
			SKU:          line.SKU(),
			Name:         line.Name(),
			RequestedQty: line.RequestedQty(),
			ScannedQty:   line.ScannedQty(),
		})
	}

	return OrderDTO{
		ID:              o.ID().Bytes(),
		Code:            o.Code(),
		Carrier:         o.Carrier(),
		TrackingCode:    o.TrackingCode(),
		Status:          int(o.Status()),
		LabelPrinted:    o.LabelPrinted(),
		PrintedAt:       o.PrintedAt(),
		PreparedAt:      o.PreparedAt(),
		ShippedAt:       o.ShippedAt(),
		ReturnedAt:      o.ReturnedAt(),
		RejectedAt:      o.RejectedAt(),
		RejectReason:    o.RejectReason(),
		ReturnCondition: o.ReturnCondition(),
		Lines:           lines,
	}
}

// toDomain rehydrates an order aggregate from its database rows.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	lines := make([]order.ProductLine, 0, len(dto.Lines))
	for _, lineDTO := range dto.Lines {
		line, lineErr := order.RestoreProductLine(
			lineDTO.SKU, lineDTO.Name, lineDTO.RequestedQty, lineDTO.ScannedQty)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return order.RestoreOrder(order.RestoreOrderParams{
		ID:              id,
		Code:            dto.Code,
		Carrier:         dto.Carrier,
		Status:          order.Status(dto.Status),
		Lines:           lines,
		LabelPrinted:    dto.LabelPrinted,
		TrackingCode:    dto.TrackingCode,
		PrintedAt:       dto.PrintedAt,
		PreparedAt:      dto.PreparedAt,
		ShippedAt:       dto.ShippedAt,
		ReturnedAt:      dto.ReturnedAt,
		RejectedAt:      dto.RejectedAt,
		RejectReason:    dto.RejectReason,
		ReturnCondition: dto.ReturnCondition,
	})
}
