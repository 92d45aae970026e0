package operationrepo

import (
	"context"

	"fulfillment/internal/core/domain/model/operation"

	"gorm.io/gorm"
)

// GormOperationLogRepository implements OperationLogRepository using GORM.
// The log is append-only: there is no update or delete path.
type GormOperationLogRepository struct {
	db *gorm.DB
}

// NewGormOperationLogRepository creates a new GORM operation log repository.
func NewGormOperationLogRepository(db *gorm.DB) *GormOperationLogRepository {
	return &GormOperationLogRepository{db: db}
}

// Push appends an entry to the log, assigning an identifier when absent.
func (r *GormOperationLogRepository) Push(ctx context.Context, entry *operation.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	entry.EnsureID()
	dto, err := fromDomain(entry)
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).Create(&dto).Error
}

// List returns up to limit entries, most recent first.
func (r *GormOperationLogRepository) List(ctx context.Context, limit int) ([]*operation.Entry, error) {
	return r.list(ctx, "", limit)
}

// ListByOrder returns up to limit entries for one order, most recent first.
func (r *GormOperationLogRepository) ListByOrder(
	ctx context.Context, orderCode string, limit int,
) ([]*operation.Entry, error) {
	return r.list(ctx, orderCode, limit)
}

func (r *GormOperationLogRepository) list(
	ctx context.Context, orderCode string, limit int,
) ([]*operation.Entry, error) {
	db := r.db.WithContext(ctx).Order("created_at DESC, id DESC").Limit(limit)
	if orderCode != "" {
		db = db.Where("order_code = ?", orderCode)
	}

	var dtos []EntryDTO
	if err := db.Find(&dtos).Error; err != nil {
		return nil, err
	}

	entries := make([]*operation.Entry, 0, len(dtos))
	for _, dto := range dtos {
		entry, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, nil
}
