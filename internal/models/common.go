package models

import (
	"time"
)

// RefreshToken represents a JWT refresh token
type RefreshToken struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	UserID    uint       `gorm:"not null;index" json:"user_id"`
	Token     string     `gorm:"uniqueIndex" json:"token"`
	ExpiresAt *time.Time `json:"expires_at"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`

	// Associations
	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName specifies the table name for RefreshToken
func (RefreshToken) TableName() string {
	return "refresh_tokens"
}

// IsExpired returns true if the refresh token has expired
func (r *RefreshToken) IsExpired() bool {
	if r.ExpiresAt == nil {
		return false
	}
	return time.Now().After(*r.ExpiresAt)
}

// DashboardStats summarizes the back office home screen
type DashboardStats struct {
	ColaboradoresAtivos   int64     `json:"colaboradores_ativos"`
	ColaboradoresInativos int64     `json:"colaboradores_inativos"`
	Orgaos                int64     `json:"orgaos"`
	FrequenciasGeradas    int64     `json:"frequencias_geradas"`
	MesAtual              string    `json:"mes_atual"`
	AtualizadoEm          time.Time `json:"atualizado_em"`
}

// PontoResumo groups one colaborador's punches of one day
type PontoResumo struct {
	ColaboradorID   uint     `json:"colaborador_id"`
	Nome            string   `json:"nome"`
	Matricula       string   `json:"matricula"`
	Data            string   `json:"data"`
	Entradas        []string `json:"entradas"`
	Saidas          []string `json:"saidas"`
	MinutosTrabalho int      `json:"minutos_trabalhados"`
	HorasTrabalho   string   `json:"horas_trabalhadas"`
	RegistroIDs     []uint   `json:"registro_ids"`
}
