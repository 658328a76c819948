package repository

import (
	"gorm.io/gorm"
)

// Repositories holds all repository instances
type Repositories struct {
	Orgao         OrgaoRepository
	Lotacao       LotacaoRepository
	Colaborador   ColaboradorRepository
	RegistroPonto RegistroPontoRepository
	Frequencia    FrequenciaRepository
	User          UserRepository
	RefreshToken  RefreshTokenRepository
	Audit         AuditRepository
	Stats         StatsRepository
}

// NewRepositories creates all repository instances
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Orgao:         NewOrgaoRepository(db),
		Lotacao:       NewLotacaoRepository(db),
		Colaborador:   NewColaboradorRepository(db),
		RegistroPonto: NewRegistroPontoRepository(db),
		Frequencia:    NewFrequenciaRepository(db),
		User:          NewUserRepository(db),
		RefreshToken:  NewRefreshTokenRepository(db),
		Audit:         NewAuditRepository(db),
		Stats:         NewStatsRepository(db),
	}
}
