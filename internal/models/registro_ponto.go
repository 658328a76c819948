package models

import (
	"time"
)

// RegistroPonto represents a single time-clock punch
type RegistroPonto struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	ColaboradorID     uint      `gorm:"not null;uniqueIndex:idx_registro_dia_sequencia,priority:1;index" json:"colaborador_id"`
	DataRegistro      string    `gorm:"size:10;not null;uniqueIndex:idx_registro_dia_sequencia,priority:2;index" json:"data_registro"`
	HoraRegistro      string    `gorm:"size:8;not null" json:"hora_registro"`
	TimestampRegistro time.Time `gorm:"not null;index" json:"timestamp_registro"`
	Tipo              string    `gorm:"size:10;not null" json:"tipo"`
	Sequencia         int       `gorm:"not null;uniqueIndex:idx_registro_dia_sequencia,priority:3" json:"sequencia"`
	CreatedAt         time.Time `json:"created_at"`

	// Associations
	Colaborador *Colaborador `gorm:"foreignKey:ColaboradorID;constraint:OnDelete:CASCADE" json:"colaborador,omitempty"`
}

// TableName specifies the table name for RegistroPonto
func (RegistroPonto) TableName() string {
	return "registros_ponto"
}

// Punch type constants
const (
	TipoEntrada = "entrada"
	TipoSaida   = "saida"
)

// Punch date/time layouts
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04:05"
)

// MaxRegistrosPorDia is the default daily punch cap per colaborador
const MaxRegistrosPorDia = 4

// IsValidTipo reports whether tipo is entrada or saida
func IsValidTipo(tipo string) bool {
	return tipo == TipoEntrada || tipo == TipoSaida
}

// NewRegistroPonto builds a punch whose date, time and timestamp all derive from the same instant
func NewRegistroPonto(colaboradorID uint, at time.Time, tipo string, sequencia int) *RegistroPonto {
	return &RegistroPonto{
		ColaboradorID:     colaboradorID,
		DataRegistro:      at.Format(DateLayout),
		HoraRegistro:      at.Format(TimeLayout),
		TimestampRegistro: at,
		Tipo:              tipo,
		Sequencia:         sequencia,
	}
}

// RegistroPontoResponse is the JSON shape returned by the punch endpoint
type RegistroPontoResponse struct {
	ID                uint      `json:"id"`
	ColaboradorID     uint      `json:"colaborador_id"`
	DataRegistro      string    `json:"data_registro"`
	HoraRegistro      string    `json:"hora_registro"`
	TimestampRegistro time.Time `json:"timestamp_registro"`
	Tipo              string    `json:"tipo"`
	Sequencia         int       `json:"sequencia"`
	CreatedAt         time.Time `json:"created_at"`
	ColaboradorNome   string    `json:"colaborador_nome,omitempty"`
}

// ToResponse converts RegistroPonto to RegistroPontoResponse
func (r *RegistroPonto) ToResponse() RegistroPontoResponse {
	resp := RegistroPontoResponse{
		ID:                r.ID,
		ColaboradorID:     r.ColaboradorID,
		DataRegistro:      r.DataRegistro,
		HoraRegistro:      r.HoraRegistro,
		TimestampRegistro: r.TimestampRegistro,
		Tipo:              r.Tipo,
		Sequencia:         r.Sequencia,
		CreatedAt:         r.CreatedAt,
	}
	if r.Colaborador != nil {
		resp.ColaboradorNome = r.Colaborador.NomeCompleto
	}
	return resp
}
