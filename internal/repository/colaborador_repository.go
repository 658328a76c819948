package repository

import (
	"context"

	"github.com/sjperalta/frequencia-api/internal/models"
	"gorm.io/gorm"
)

// ColaboradorRepository defines the interface for colaborador data access
type ColaboradorRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Colaborador, error)
	FindActiveByMatricula(ctx context.Context, matricula string) (*models.Colaborador, error)
	List(ctx context.Context, query *ColaboradorQuery) ([]models.Colaborador, int64, error)
	Create(ctx context.Context, colaborador *models.Colaborador) error
	Update(ctx context.Context, colaborador *models.Colaborador) error
	SetAtivo(ctx context.Context, id uint, ativo bool) error
	SetSenhaPonto(ctx context.Context, id uint, hash string) error
	Delete(ctx context.Context, id uint) error
}

// ColaboradorQuery filters colaborador listings. Nil filters mean "all".
type ColaboradorQuery struct {
	IDs          []uint
	OrgaoID      *uint
	LotacaoID    *uint
	ApenasAtivos bool
	Search       string
	Page         int
	PerPage      int
}

type colaboradorRepository struct {
	db *gorm.DB
}

// NewColaboradorRepository creates a new colaborador repository
func NewColaboradorRepository(db *gorm.DB) ColaboradorRepository {
	return &colaboradorRepository{db: db}
}

func (r *colaboradorRepository) FindByID(ctx context.Context, id uint) (*models.Colaborador, error) {
	var c models.Colaborador
	err := r.db.WithContext(ctx).
		Preload("Orgao").
		Preload("Lotacao").
		First(&c, id).Error
	if err != nil {
		return nil, mapDBError(err)
	}
	return &c, nil
}

func (r *colaboradorRepository) FindActiveByMatricula(ctx context.Context, matricula string) (*models.Colaborador, error) {
	var c models.Colaborador
	err := r.db.WithContext(ctx).
		Where("matricula = ? AND ativo = ?", matricula, true).
		First(&c).Error
	if err != nil {
		return nil, mapDBError(err)
	}
	return &c, nil
}

func (r *colaboradorRepository) List(ctx context.Context, query *ColaboradorQuery) ([]models.Colaborador, int64, error) {
	var colaboradores []models.Colaborador
	var total int64

	if query == nil {
		query = &ColaboradorQuery{}
	}

	db := r.db.WithContext(ctx).Model(&models.Colaborador{})

	if len(query.IDs) > 0 {
		db = db.Where("id IN ?", query.IDs)
	}
	if query.OrgaoID != nil {
		db = db.Where("orgao_id = ?", *query.OrgaoID)
	}
	if query.LotacaoID != nil {
		db = db.Where("lotacao_id = ?", *query.LotacaoID)
	}
	if query.ApenasAtivos {
		db = db.Where("ativo = ?", true)
	}
	if query.Search != "" {
		search := "%" + query.Search + "%"
		db = db.Where("nome_completo ILIKE ? OR matricula ILIKE ? OR cargo ILIKE ?", search, search, search)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, mapDBError(err)
	}

	err := paginate(db, query.Page, query.PerPage).
		Preload("Orgao").
		Preload("Lotacao").
		Order("nome_completo").
		Find(&colaboradores).Error
	return colaboradores, total, mapDBError(err)
}

func (r *colaboradorRepository) Create(ctx context.Context, colaborador *models.Colaborador) error {
	return mapDBError(r.db.WithContext(ctx).Omit("Orgao", "Lotacao").Create(colaborador).Error)
}

func (r *colaboradorRepository) Update(ctx context.Context, colaborador *models.Colaborador) error {
	// senha_ponto is changed only through SetSenhaPonto
	return mapDBError(r.db.WithContext(ctx).
		Omit("Orgao", "Lotacao", "SenhaPonto").
		Save(colaborador).Error)
}

func (r *colaboradorRepository) SetAtivo(ctx context.Context, id uint, ativo bool) error {
	result := r.db.WithContext(ctx).Model(&models.Colaborador{}).
		Where("id = ?", id).
		Update("ativo", ativo)
	if result.Error != nil {
		return mapDBError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *colaboradorRepository) SetSenhaPonto(ctx context.Context, id uint, hash string) error {
	result := r.db.WithContext(ctx).Model(&models.Colaborador{}).
		Where("id = ?", id).
		Update("senha_ponto", hash)
	if result.Error != nil {
		return mapDBError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *colaboradorRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Colaborador{}, id)
	if result.Error != nil {
		return mapDBError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
