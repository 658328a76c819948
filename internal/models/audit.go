package models

import (
	"time"

	"gorm.io/datatypes"
)

// AuditLog represents an append-only audit entry. Rows are never updated or deleted.
type AuditLog struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	UserID     *uint          `gorm:"index" json:"user_id"`
	UserEmail  *string        `gorm:"size:255;index" json:"user_email"`
	ActionType string         `gorm:"size:50;not null;index" json:"action_type"`
	EntityType *string        `gorm:"size:50" json:"entity_type"`
	EntityID   *string        `gorm:"size:64" json:"entity_id"`
	Details    datatypes.JSON `gorm:"type:jsonb" json:"details"`
	IPAddress  *string        `gorm:"size:45" json:"ip_address"`
	CreatedAt  time.Time      `gorm:"index" json:"created_at"`
}

// TableName specifies the table name for AuditLog
func (AuditLog) TableName() string {
	return "audit_logs"
}

// Audit action types
const (
	AuditUserCreated          = "user_created"
	AuditUserUpdated          = "user_updated"
	AuditUserDeleted          = "user_deleted"
	AuditRoleChanged          = "role_changed"
	AuditLogin                = "login"
	AuditLogout               = "logout"
	AuditColaboradorCreated   = "colaborador_created"
	AuditColaboradorUpdated   = "colaborador_updated"
	AuditColaboradorDeleted   = "colaborador_deleted"
	AuditAccessDenied         = "access_denied"
	AuditRegistroPontoCreated = "registro_ponto_created"
	AuditRegistroPontoUpdated = "registro_ponto_updated"
	AuditRegistroPontoDeleted = "registro_ponto_deleted"
	AuditFrequenciaGerada     = "frequencia_gerada"
	AuditFolhaAssinada        = "folha_assinada"
)

// Audit entity types
const (
	EntityUser          = "user"
	EntityColaborador   = "colaborador"
	EntityRegistroPonto = "registro_ponto"
	EntityFrequencia    = "frequencia"
)

// RedactedValue replaces secrets in audit details
const RedactedValue = "********"
