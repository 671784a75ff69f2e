package persistence

import (
	"context"
	"errors"

	"github.com/supplierhub/relay/internal/domain/relay"
	"github.com/supplierhub/relay/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

const maxSyncLogLimit = 200

// GormSyncLogRepository implements relay.SyncLogRepository using GORM
type GormSyncLogRepository struct {
	db *gorm.DB
}

// NewGormSyncLogRepository creates a new GORM-based sync log repository
func NewGormSyncLogRepository(db *gorm.DB) *GormSyncLogRepository {
	return &GormSyncLogRepository{db: db}
}

// Save inserts an entry. Entries are append-only.
func (r *GormSyncLogRepository) Save(ctx context.Context, entry *relay.SyncLog) error {
	if entry == nil {
		return errors.New("sync log entry is nil")
	}
	return r.db.WithContext(ctx).Create(models.SyncLogModelFromDomain(entry)).Error
}

// FindRecent returns the newest entries matching the filter
func (r *GormSyncLogRepository) FindRecent(ctx context.Context, filter relay.SyncLogFilter) ([]relay.SyncLog, error) {
	query := r.db.WithContext(ctx).Model(&models.SyncLogModel{})

	if filter.SupplierID != "" {
		query = query.Where("supplier_id = ?", filter.SupplierID)
	}
	if filter.Action != "" {
		query = query.Where("action = ?", filter.Action)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	limit := filter.Limit
	if limit <= 0 || limit > maxSyncLogLimit {
		limit = maxSyncLogLimit
	}

	var rows []models.SyncLogModel
	if err := query.Order("created_at DESC").Limit(limit).Find(&rows).Error; err != nil {
		return nil, err
	}

	entries := make([]relay.SyncLog, 0, len(rows))
	for i := range rows {
		entries = append(entries, *rows[i].ToDomain())
	}
	return entries, nil
}

// Ensure GormSyncLogRepository implements relay.SyncLogRepository
var _ relay.SyncLogRepository = (*GormSyncLogRepository)(nil)
