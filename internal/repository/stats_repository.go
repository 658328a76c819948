package repository

import (
	"context"

	"github.com/sjperalta/frequencia-api/internal/models"
	"gorm.io/gorm"
)

// StatsRepository aggregates the dashboard counters
type StatsRepository interface {
	GetDashboardStats(ctx context.Context) (*models.DashboardStats, error)
}

type statsRepository struct {
	db *gorm.DB
}

func NewStatsRepository(db *gorm.DB) StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) GetDashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	var stats models.DashboardStats
	db := r.db.WithContext(ctx)

	type ativoCount struct {
		Ativo bool
		Total int64
	}
	var counts []ativoCount
	err := db.Model(&models.Colaborador{}).
		Select("ativo, COUNT(*) AS total").
		Group("ativo").
		Scan(&counts).Error
	if err != nil {
		return nil, mapDBError(err)
	}
	for _, c := range counts {
		if c.Ativo {
			stats.ColaboradoresAtivos = c.Total
		} else {
			stats.ColaboradoresInativos = c.Total
		}
	}

	if err := db.Model(&models.Orgao{}).Count(&stats.Orgaos).Error; err != nil {
		return nil, mapDBError(err)
	}
	if err := db.Model(&models.FrequenciaGerada{}).Count(&stats.FrequenciasGeradas).Error; err != nil {
		return nil, mapDBError(err)
	}

	return &stats, nil
}
