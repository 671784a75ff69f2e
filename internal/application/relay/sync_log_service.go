package relay

import (
	"context"

	"github.com/supplierhub/relay/internal/domain/relay"
	"go.uber.org/zap"
)

const defaultSyncLogLimit = 50

// SyncLogService records and lists relay audit entries
type SyncLogService struct {
	repo   relay.SyncLogRepository
	logger *zap.Logger
}

// NewSyncLogService creates a new SyncLogService
func NewSyncLogService(repo relay.SyncLogRepository, logger *zap.Logger) *SyncLogService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SyncLogService{
		repo:   repo,
		logger: logger,
	}
}

// Record saves an entry. A failed save is logged and never reaches the caller
// of the relayed request.
func (s *SyncLogService) Record(ctx context.Context, entry *relay.SyncLog) {
	if err := s.repo.Save(ctx, entry); err != nil {
		s.logger.Error("Failed to save sync log",
			zap.String("action", string(entry.Action)),
			zap.String("supplier_id", entry.SupplierID),
			zap.String("reference_id", entry.ReferenceID),
			zap.Error(err),
		)
	}
}

// List returns the most recent entries matching the query, newest first
func (s *SyncLogService) List(ctx context.Context, q *ListSyncLogsQuery) ([]SyncLogResponse, error) {
	if err := validateCommand(q); err != nil {
		return nil, err
	}

	filter := relay.SyncLogFilter{
		SupplierID: q.SupplierID,
		Action:     relay.SyncAction(q.Action),
		Status:     relay.SyncStatus(q.Status),
		Limit:      q.Limit,
	}
	if filter.Limit == 0 {
		filter.Limit = defaultSyncLogLimit
	}

	entries, err := s.repo.FindRecent(ctx, filter)
	if err != nil {
		return nil, relay.NewInternalError(err)
	}

	result := make([]SyncLogResponse, 0, len(entries))
	for _, e := range entries {
		result = append(result, ToSyncLogResponse(e))
	}
	return result, nil
}
