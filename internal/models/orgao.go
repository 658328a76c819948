package models

import (
	"time"
)

// Orgao represents an organizational unit (e.g. a government department)
type Orgao struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Nome      string    `gorm:"not null" json:"nome"`
	Sigla     *string   `json:"sigla"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for Orgao
func (Orgao) TableName() string {
	return "orgaos"
}

// Lotacao represents a workplace belonging to exactly one Orgao
type Lotacao struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Nome      string    `gorm:"not null" json:"nome"`
	OrgaoID   uint      `gorm:"not null;index" json:"orgao_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Associations
	Orgao *Orgao `gorm:"foreignKey:OrgaoID;constraint:OnDelete:RESTRICT" json:"orgao,omitempty"`
}

// TableName specifies the table name for Lotacao
func (Lotacao) TableName() string {
	return "lotacoes"
}
