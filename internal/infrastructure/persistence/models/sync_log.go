package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/supplierhub/relay/internal/domain/relay"
)

// SyncLogModel is the persistence model for the relay audit trail
type SyncLogModel struct {
	ID             uuid.UUID        `gorm:"type:uuid;primary_key"`
	Action         relay.SyncAction `gorm:"type:varchar(32);not null;index:idx_sync_logs_action"`
	Platform       relay.Platform   `gorm:"type:varchar(32);not null"`
	SupplierID     string           `gorm:"type:varchar(100);not null;index:idx_sync_logs_supplier_created,priority:1"`
	RestaurantID   string           `gorm:"type:varchar(100)"`
	ReferenceID    string           `gorm:"type:varchar(100);index:idx_sync_logs_reference"`
	Status         relay.SyncStatus `gorm:"type:varchar(20);not null"`
	ItemsProcessed int              `gorm:"not null;default:0"`
	ItemsSucceeded int              `gorm:"not null;default:0"`
	ItemsFailed    int              `gorm:"not null;default:0"`
	ErrorMessage   string           `gorm:"type:text"`
	DurationMs     int64            `gorm:"not null;default:0"`
	CreatedAt      time.Time        `gorm:"not null;index:idx_sync_logs_supplier_created,priority:2;index:idx_sync_logs_created"`
}

// TableName returns the table name for GORM
func (SyncLogModel) TableName() string {
	return "sync_logs"
}

// ToDomain converts the persistence model to a domain SyncLog
func (m *SyncLogModel) ToDomain() *relay.SyncLog {
	return &relay.SyncLog{
		ID:             m.ID,
		Action:         m.Action,
		Platform:       m.Platform,
		SupplierID:     m.SupplierID,
		RestaurantID:   m.RestaurantID,
		ReferenceID:    m.ReferenceID,
		Status:         m.Status,
		ItemsProcessed: m.ItemsProcessed,
		ItemsSucceeded: m.ItemsSucceeded,
		ItemsFailed:    m.ItemsFailed,
		Error:          m.ErrorMessage,
		Duration:       time.Duration(m.DurationMs) * time.Millisecond,
		CreatedAt:      m.CreatedAt.UTC(),
	}
}

// FromDomain populates the persistence model from a domain SyncLog
func (m *SyncLogModel) FromDomain(e *relay.SyncLog) {
	m.ID = e.ID
	m.Action = e.Action
	m.Platform = e.Platform
	m.SupplierID = e.SupplierID
	m.RestaurantID = e.RestaurantID
	m.ReferenceID = e.ReferenceID
	m.Status = e.Status
	m.ItemsProcessed = e.ItemsProcessed
	m.ItemsSucceeded = e.ItemsSucceeded
	m.ItemsFailed = e.ItemsFailed
	m.ErrorMessage = e.Error
	m.DurationMs = e.Duration.Milliseconds()
	m.CreatedAt = e.CreatedAt
}

// SyncLogModelFromDomain creates a new persistence model from a domain SyncLog
func SyncLogModelFromDomain(e *relay.SyncLog) *SyncLogModel {
	m := &SyncLogModel{}
	m.FromDomain(e)
	return m
}
