package repository

import (
	"context"

	"github.com/sjperalta/frequencia-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RegistroPontoRepository defines the interface for punch data access
type RegistroPontoRepository interface {
	// WithColaboradorLock runs fn in a transaction holding a row lock on the
	// colaborador, so punches of the same person are evaluated one at a time.
	WithColaboradorLock(ctx context.Context, colaboradorID uint, fn func(tx RegistroPontoRepository) error) error
	FindByID(ctx context.Context, id uint) (*models.RegistroPonto, error)
	FindByColaboradorAndDate(ctx context.Context, colaboradorID uint, data string) ([]models.RegistroPonto, error)
	List(ctx context.Context, query *RegistroQuery) ([]models.RegistroPonto, int64, error)
	Create(ctx context.Context, registro *models.RegistroPonto) error
	Update(ctx context.Context, registro *models.RegistroPonto) error
	Delete(ctx context.Context, id uint) error
	DeleteDay(ctx context.Context, colaboradorID uint, data string) (int64, error)
	Resequence(ctx context.Context, colaboradorID uint, data string) error
}

// RegistroQuery filters punch listings. Dates are inclusive YYYY-MM-DD bounds.
type RegistroQuery struct {
	ColaboradorID *uint
	OrgaoID       *uint
	LotacaoID     *uint
	DataInicio    string
	DataFim       string
	Page          int
	PerPage       int
}

type registroPontoRepository struct {
	db *gorm.DB
}

// NewRegistroPontoRepository creates a new punch repository
func NewRegistroPontoRepository(db *gorm.DB) RegistroPontoRepository {
	return &registroPontoRepository{db: db}
}

func (r *registroPontoRepository) WithColaboradorLock(ctx context.Context, colaboradorID uint, fn func(tx RegistroPontoRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var c models.Colaborador
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id").
			First(&c, colaboradorID).Error
		if err != nil {
			return mapDBError(err)
		}
		return fn(&registroPontoRepository{db: tx})
	})
}

func (r *registroPontoRepository) FindByID(ctx context.Context, id uint) (*models.RegistroPonto, error) {
	var registro models.RegistroPonto
	if err := r.db.WithContext(ctx).Preload("Colaborador").First(&registro, id).Error; err != nil {
		return nil, mapDBError(err)
	}
	return &registro, nil
}

func (r *registroPontoRepository) FindByColaboradorAndDate(ctx context.Context, colaboradorID uint, data string) ([]models.RegistroPonto, error) {
	var registros []models.RegistroPonto
	err := r.db.WithContext(ctx).
		Where("colaborador_id = ? AND data_registro = ?", colaboradorID, data).
		Order("timestamp_registro ASC, sequencia ASC").
		Find(&registros).Error
	return registros, mapDBError(err)
}

func (r *registroPontoRepository) List(ctx context.Context, query *RegistroQuery) ([]models.RegistroPonto, int64, error) {
	var registros []models.RegistroPonto
	var total int64

	if query == nil {
		query = &RegistroQuery{}
	}

	db := r.db.WithContext(ctx).Model(&models.RegistroPonto{}).
		Joins("JOIN colaboradores ON colaboradores.id = registros_ponto.colaborador_id")

	if query.ColaboradorID != nil {
		db = db.Where("registros_ponto.colaborador_id = ?", *query.ColaboradorID)
	}
	if query.OrgaoID != nil {
		db = db.Where("colaboradores.orgao_id = ?", *query.OrgaoID)
	}
	if query.LotacaoID != nil {
		db = db.Where("colaboradores.lotacao_id = ?", *query.LotacaoID)
	}
	if query.DataInicio != "" {
		db = db.Where("registros_ponto.data_registro >= ?", query.DataInicio)
	}
	if query.DataFim != "" {
		db = db.Where("registros_ponto.data_registro <= ?", query.DataFim)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, mapDBError(err)
	}

	err := paginate(db, query.Page, query.PerPage).
		Preload("Colaborador").
		Order("registros_ponto.data_registro DESC, registros_ponto.hora_registro DESC").
		Find(&registros).Error
	return registros, total, mapDBError(err)
}

func (r *registroPontoRepository) Create(ctx context.Context, registro *models.RegistroPonto) error {
	return mapDBError(r.db.WithContext(ctx).Omit("Colaborador").Create(registro).Error)
}

func (r *registroPontoRepository) Update(ctx context.Context, registro *models.RegistroPonto) error {
	return mapDBError(r.db.WithContext(ctx).Omit("Colaborador").Save(registro).Error)
}

func (r *registroPontoRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.RegistroPonto{}, id)
	if result.Error != nil {
		return mapDBError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *registroPontoRepository) DeleteDay(ctx context.Context, colaboradorID uint, data string) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("colaborador_id = ? AND data_registro = ?", colaboradorID, data).
		Delete(&models.RegistroPonto{})
	return result.RowsAffected, mapDBError(result.Error)
}

// Resequence renumbers a day's punches 1..n in time order. The first pass
// moves every row out of the 1..n range so the unique index never sees a
// transient collision.
func (r *registroPontoRepository) Resequence(ctx context.Context, colaboradorID uint, data string) error {
	db := r.db.WithContext(ctx)
	day := db.Model(&models.RegistroPonto{}).
		Where("colaborador_id = ? AND data_registro = ?", colaboradorID, data)

	if err := day.Update("sequencia", gorm.Expr("sequencia + ?", 1000)).Error; err != nil {
		return mapDBError(err)
	}

	var registros []models.RegistroPonto
	err := db.Where("colaborador_id = ? AND data_registro = ?", colaboradorID, data).
		Order("hora_registro ASC, id ASC").
		Find(&registros).Error
	if err != nil {
		return mapDBError(err)
	}

	for i, reg := range registros {
		err := db.Model(&models.RegistroPonto{}).
			Where("id = ?", reg.ID).
			Update("sequencia", i+1).Error
		if err != nil {
			return mapDBError(err)
		}
	}
	return nil
}
