package repository

import (
	"context"

	"github.com/sjperalta/frequencia-api/internal/models"
	"gorm.io/gorm"
)

// AuditRepository is append-only: it exposes no update or delete.
type AuditRepository interface {
	Create(ctx context.Context, entry *models.AuditLog) error
	List(ctx context.Context, query *AuditQuery) ([]models.AuditLog, int64, error)
}

// AuditQuery filters the audit listing
type AuditQuery struct {
	UserEmail  string
	ActionType string
	Page       int
	PerPage    int
}

type auditRepository struct {
	db *gorm.DB
}

// NewAuditRepository creates a new audit repository
func NewAuditRepository(db *gorm.DB) AuditRepository {
	return &auditRepository{db: db}
}

func (r *auditRepository) Create(ctx context.Context, entry *models.AuditLog) error {
	return mapDBError(r.db.WithContext(ctx).Create(entry).Error)
}

func (r *auditRepository) List(ctx context.Context, query *AuditQuery) ([]models.AuditLog, int64, error) {
	var logs []models.AuditLog
	var total int64

	if query == nil {
		query = &AuditQuery{}
	}

	db := r.db.WithContext(ctx).Model(&models.AuditLog{})
	if query.UserEmail != "" {
		db = db.Where("user_email ILIKE ?", "%"+query.UserEmail+"%")
	}
	if query.ActionType != "" {
		db = db.Where("action_type = ?", query.ActionType)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, mapDBError(err)
	}

	err := paginate(db, query.Page, query.PerPage).
		Order("created_at DESC").
		Find(&logs).Error
	return logs, total, mapDBError(err)
}
