package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Colaborador represents an employee whose attendance is tracked
type Colaborador struct {
	ID                  uint      `gorm:"primaryKey" json:"id"`
	NomeCompleto        string    `gorm:"not null" json:"nome_completo"`
	Matricula           string    `gorm:"uniqueIndex;not null" json:"matricula"`
	OrgaoID             uint      `gorm:"not null;index" json:"orgao_id"`
	LotacaoID           *uint     `gorm:"index" json:"lotacao_id"`
	Cargo               string    `json:"cargo"`
	JornadaEntradaManha string    `gorm:"size:5;default:'08:00'" json:"jornada_entrada_manha"`
	JornadaSaidaManha   string    `gorm:"size:5;default:'12:00'" json:"jornada_saida_manha"`
	JornadaEntradaTarde string    `gorm:"size:5;default:'14:00'" json:"jornada_entrada_tarde"`
	JornadaSaidaTarde   string    `gorm:"size:5;default:'18:00'" json:"jornada_saida_tarde"`
	Ativo               bool      `gorm:"not null;default:true;index" json:"ativo"`
	SenhaPonto          *string   `gorm:"column:senha_ponto" json:"-"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`

	// Associations
	Orgao   *Orgao   `gorm:"foreignKey:OrgaoID;constraint:OnDelete:RESTRICT" json:"orgao,omitempty"`
	Lotacao *Lotacao `gorm:"foreignKey:LotacaoID;constraint:OnDelete:SET NULL" json:"lotacao,omitempty"`
}

// TableName specifies the table name for Colaborador
func (Colaborador) TableName() string {
	return "colaboradores"
}

// BeforeCreate fills the default daily schedule when none was given
func (c *Colaborador) BeforeCreate(tx *gorm.DB) error {
	if c.JornadaEntradaManha == "" {
		c.JornadaEntradaManha = "08:00"
	}
	if c.JornadaSaidaManha == "" {
		c.JornadaSaidaManha = "12:00"
	}
	if c.JornadaEntradaTarde == "" {
		c.JornadaEntradaTarde = "14:00"
	}
	if c.JornadaSaidaTarde == "" {
		c.JornadaSaidaTarde = "18:00"
	}
	return nil
}

// HasSenhaPonto reports whether a punch password was configured
func (c *Colaborador) HasSenhaPonto() bool {
	return c.SenhaPonto != nil && *c.SenhaPonto != ""
}

// Jornada returns the four schedule times in checkpoint order
func (c *Colaborador) Jornada() [4]string {
	return [4]string{
		c.JornadaEntradaManha,
		c.JornadaSaidaManha,
		c.JornadaEntradaTarde,
		c.JornadaSaidaTarde,
	}
}

// JornadaLabel renders the schedule on one line, e.g. "08:00 às 12:00 / 14:00 às 18:00"
func (c *Colaborador) JornadaLabel() string {
	return fmt.Sprintf("%s às %s / %s às %s",
		c.JornadaEntradaManha, c.JornadaSaidaManha, c.JornadaEntradaTarde, c.JornadaSaidaTarde)
}

// ColaboradorResponse is the JSON response format for colaboradores
type ColaboradorResponse struct {
	ID                  uint      `json:"id"`
	NomeCompleto        string    `json:"nome_completo"`
	Matricula           string    `json:"matricula"`
	OrgaoID             uint      `json:"orgao_id"`
	LotacaoID           *uint     `json:"lotacao_id"`
	Cargo               string    `json:"cargo"`
	JornadaEntradaManha string    `json:"jornada_entrada_manha"`
	JornadaSaidaManha   string    `json:"jornada_saida_manha"`
	JornadaEntradaTarde string    `json:"jornada_entrada_tarde"`
	JornadaSaidaTarde   string    `json:"jornada_saida_tarde"`
	Ativo               bool      `json:"ativo"`
	PossuiSenhaPonto    bool      `json:"possui_senha_ponto"`
	Orgao               *Orgao    `json:"orgao,omitempty"`
	Lotacao             *Lotacao  `json:"lotacao,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// ToResponse converts Colaborador to ColaboradorResponse
func (c *Colaborador) ToResponse() ColaboradorResponse {
	return ColaboradorResponse{
		ID:                  c.ID,
		NomeCompleto:        c.NomeCompleto,
		Matricula:           c.Matricula,
		OrgaoID:             c.OrgaoID,
		LotacaoID:           c.LotacaoID,
		Cargo:               c.Cargo,
		JornadaEntradaManha: c.JornadaEntradaManha,
		JornadaSaidaManha:   c.JornadaSaidaManha,
		JornadaEntradaTarde: c.JornadaEntradaTarde,
		JornadaSaidaTarde:   c.JornadaSaidaTarde,
		Ativo:               c.Ativo,
		PossuiSenhaPonto:    c.HasSenhaPonto(),
		Orgao:               c.Orgao,
		Lotacao:             c.Lotacao,
		CreatedAt:           c.CreatedAt,
		UpdatedAt:           c.UpdatedAt,
	}
}
