package repository

import (
	"context"

	"github.com/sjperalta/frequencia-api/internal/models"
	"gorm.io/gorm"
)

// FrequenciaRepository defines the interface for generated-sheet log access
type FrequenciaRepository interface {
	FindByID(ctx context.Context, id uint) (*models.FrequenciaGerada, error)
	List(ctx context.Context, query *ListQuery) ([]models.FrequenciaGerada, int64, error)
	Create(ctx context.Context, frequencia *models.FrequenciaGerada) error
	Update(ctx context.Context, frequencia *models.FrequenciaGerada) error
}

type frequenciaRepository struct {
	db *gorm.DB
}

// NewFrequenciaRepository creates a new frequencia repository
func NewFrequenciaRepository(db *gorm.DB) FrequenciaRepository {
	return &frequenciaRepository{db: db}
}

func (r *frequenciaRepository) FindByID(ctx context.Context, id uint) (*models.FrequenciaGerada, error) {
	var f models.FrequenciaGerada
	err := r.db.WithContext(ctx).
		Preload("Orgao").
		Preload("Lotacao").
		First(&f, id).Error
	if err != nil {
		return nil, mapDBError(err)
	}
	return &f, nil
}

func (r *frequenciaRepository) List(ctx context.Context, query *ListQuery) ([]models.FrequenciaGerada, int64, error) {
	var frequencias []models.FrequenciaGerada
	var total int64

	if query == nil {
		query = NewListQuery()
	}

	db := r.db.WithContext(ctx).Model(&models.FrequenciaGerada{})
	if v := query.Filters["ano"]; v != "" {
		db = db.Where("ano = ?", v)
	}
	if v := query.Filters["mes"]; v != "" {
		db = db.Where("mes = ?", v)
	}
	if v := query.Filters["orgao_id"]; v != "" {
		db = db.Where("orgao_id = ?", v)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, mapDBError(err)
	}

	err := paginate(db, query.Page, query.PerPage).
		Preload("Orgao").
		Preload("Lotacao").
		Order("gerado_em DESC").
		Find(&frequencias).Error
	return frequencias, total, mapDBError(err)
}

func (r *frequenciaRepository) Create(ctx context.Context, frequencia *models.FrequenciaGerada) error {
	return mapDBError(r.db.WithContext(ctx).Omit("Orgao", "Lotacao").Create(frequencia).Error)
}

func (r *frequenciaRepository) Update(ctx context.Context, frequencia *models.FrequenciaGerada) error {
	return mapDBError(r.db.WithContext(ctx).Omit("Orgao", "Lotacao").Save(frequencia).Error)
}
