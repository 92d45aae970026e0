package queries

import (
	"context"
	"database/sql"

	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrdersByStatusQueryHandler reads order rows straight from the database.
type GetOrdersByStatusQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersByStatusQueryHandler creates a handler for status listings.
func NewGetOrdersByStatusQueryHandler(db *gorm.DB) GetOrdersByStatusQueryHandler {
	return GetOrdersByStatusQueryHandler{db: db}
}

// Handle executes the query. Rows come back sorted by order code.
func (h GetOrdersByStatusQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByStatusQuery,
) ([]GetOrdersByStatusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetOrdersByStatusQueryResponse, 0)

	sqlQuery := `
		SELECT
			o.id,
			o.code,
			o.carrier,
			o.tracking_code,
			o.label_printed,
			(SELECT COUNT(*) FROM order_lines l WHERE l.order_id = o.id) AS line_count
		FROM orders o
		WHERE o.status = ?`
	args := []any{int(query.Status())}
	if query.Carrier() != "" {
		sqlQuery += " AND o.carrier = ?"
		args = append(args, query.Carrier())
	}
	sqlQuery += " ORDER BY o.code"

	rows, err := h.db.WithContext(ctx).Raw(sqlQuery, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var row GetOrdersByStatusQueryResponse
		var id uuid.UUID
		var carrier sql.NullString

		err = rows.Scan(
			&id,
			&row.Code,
			&carrier,
			&row.TrackingCode,
			&row.LabelPrinted,
			&row.LineCount,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		row.ID = orderID
		row.Carrier = carrier.String

		orders = append(orders, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
