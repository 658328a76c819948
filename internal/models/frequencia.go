package models

import (
	"fmt"
	"strings"
	"time"
)

// FrequenciaGerada logs one attendance sheet generation
type FrequenciaGerada struct {
	ID                      uint       `gorm:"primaryKey" json:"id"`
	Mes                     int        `gorm:"not null;check:mes BETWEEN 1 AND 12" json:"mes"`
	Ano                     int        `gorm:"not null" json:"ano"`
	OrgaoID                 *uint      `gorm:"index" json:"orgao_id"`
	LotacaoID               *uint      `gorm:"index" json:"lotacao_id"`
	QuantidadeColaboradores int        `gorm:"not null" json:"quantidade_colaboradores"`
	GeradoEm                time.Time  `gorm:"not null;index" json:"gerado_em"`
	FolhaAssinadaURL        *string    `json:"folha_assinada_url"`
	AssinadaEm              *time.Time `json:"assinada_em"`
	CreatedAt               time.Time  `json:"created_at"`

	// Associations
	Orgao   *Orgao   `gorm:"foreignKey:OrgaoID;constraint:OnDelete:SET NULL" json:"orgao,omitempty"`
	Lotacao *Lotacao `gorm:"foreignKey:LotacaoID;constraint:OnDelete:SET NULL" json:"lotacao,omitempty"`
}

// TableName specifies the table name for FrequenciaGerada
func (FrequenciaGerada) TableName() string {
	return "frequencias_geradas"
}

// IsAssinada returns true once a signed scan was attached
func (f *FrequenciaGerada) IsAssinada() bool {
	return f.FolhaAssinadaURL != nil && *f.FolhaAssinadaURL != ""
}

var mesesLabels = [...]string{
	"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
	"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
}

// MesLabel returns the Portuguese month name for 1..12, or "" when out of range
func MesLabel(mes int) string {
	if mes < 1 || mes > 12 {
		return ""
	}
	return mesesLabels[mes-1]
}

// FrequenciaFileName builds the attendance sheet download name, e.g. frequencia_março_2024.pdf
func FrequenciaFileName(mesLabel string, ano int) string {
	return fmt.Sprintf("frequencia_%s_%d.pdf", strings.ToLower(mesLabel), ano)
}
