package services

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/sjperalta/frequencia-api/internal/jobs"
	"github.com/sjperalta/frequencia-api/internal/models"
	"github.com/sjperalta/frequencia-api/internal/repository"
	"github.com/sjperalta/frequencia-api/pkg/logger"
	"gorm.io/datatypes"
)

// AuditPageSize is the fixed page size of the audit listing
const AuditPageSize = 20

// Actor identifies who performed an action
type Actor struct {
	UserID uint
	Email  string
	Role   models.Role
	IP     string
}

// FieldChange records the old and new value of an edited field
type FieldChange struct {
	Old any `json:"old"`
	New any `json:"new"`
}

type AuditService struct {
	repo   repository.AuditRepository
	worker *jobs.Worker
}

func NewAuditService(repo repository.AuditRepository, worker *jobs.Worker) *AuditService {
	return &AuditService{repo: repo, worker: worker}
}

// Log records an audit entry
func (s *AuditService) Log(ctx context.Context, actor *Actor, action, entityType, entityID string, details map[string]any) error {
	entry := &models.AuditLog{ActionType: action}

	if actor != nil {
		if actor.UserID != 0 {
			id := actor.UserID
			entry.UserID = &id
		}
		entry.UserEmail = optionalString(actor.Email)
		entry.IPAddress = optionalString(actor.IP)
	}
	entry.EntityType = optionalString(entityType)
	entry.EntityID = optionalString(entityID)

	if details != nil {
		raw, err := json.Marshal(details)
		if err != nil {
			return err
		}
		entry.Details = datatypes.JSON(raw)
	}

	return s.repo.Create(ctx, entry)
}

// LogAsync records an audit entry in the background. Failures are only logged.
func (s *AuditService) LogAsync(actor *Actor, action, entityType, entityID string, details map[string]any) {
	job := func(ctx context.Context) error {
		return s.Log(ctx, actor, action, entityType, entityID, details)
	}
	if s.worker == nil {
		if err := job(context.Background()); err != nil {
			logger.Error("audit log failed", slog.String("action", action), slog.String("error", err.Error()))
		}
		return
	}
	if err := s.worker.EnqueueAsync("audit:"+action, job); err != nil {
		logger.Warn("audit log dropped", slog.String("action", action), slog.String("error", err.Error()))
	}
}

// AuditPage is one page of the audit listing
type AuditPage struct {
	Logs       []models.AuditLog `json:"logs"`
	Total      int64             `json:"total"`
	Page       int               `json:"page"`
	PerPage    int               `json:"per_page"`
	TotalPages int64             `json:"total_pages"`
}

// List retrieves audit logs newest first, filtered by email substring and exact action type
func (s *AuditService) List(ctx context.Context, page int, userEmail, actionType string) (*AuditPage, error) {
	if page < 1 {
		page = 1
	}
	logs, total, err := s.repo.List(ctx, &repository.AuditQuery{
		UserEmail:  userEmail,
		ActionType: actionType,
		Page:       page,
		PerPage:    AuditPageSize,
	})
	if err != nil {
		return nil, fromRepo(err)
	}
	if logs == nil {
		logs = []models.AuditLog{}
	}
	return &AuditPage{
		Logs:       logs,
		Total:      total,
		Page:       page,
		PerPage:    AuditPageSize,
		TotalPages: (total + AuditPageSize - 1) / AuditPageSize,
	}, nil
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
