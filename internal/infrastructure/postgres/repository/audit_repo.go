package repository

import (
	"context"

	"github.com/rekberinx/rekber-bot/internal/domain"
	"github.com/rekberinx/rekber-bot/internal/infrastructure/postgres/mappers"
	"gorm.io/gorm"
)

// DefaultAuditLogRepository is append-only. There is no read path: the trail
// exists for compliance, not for the UI.
type DefaultAuditLogRepository struct {
	DB *gorm.DB
}

func NewDefaultAuditLogRepository(db *gorm.DB) *DefaultAuditLogRepository {
	return &DefaultAuditLogRepository{DB: db}
}

func (r *DefaultAuditLogRepository) AppendAuditLog(ctx context.Context, entry *domain.AuditLogEntry) error {
	logModel := mappers.ToGORMAuditLog(entry)
	return r.DB.WithContext(ctx).Create(logModel).Error
}
