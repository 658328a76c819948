package repository

import (
	"context"

	"github.com/sjperalta/frequencia-api/internal/models"
	"gorm.io/gorm"
)

// OrgaoRepository defines the interface for orgao data access
type OrgaoRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Orgao, error)
	List(ctx context.Context) ([]models.Orgao, error)
	Create(ctx context.Context, orgao *models.Orgao) error
	Update(ctx context.Context, orgao *models.Orgao) error
	Delete(ctx context.Context, id uint) error
}

type orgaoRepository struct {
	db *gorm.DB
}

// NewOrgaoRepository creates a new orgao repository
func NewOrgaoRepository(db *gorm.DB) OrgaoRepository {
	return &orgaoRepository{db: db}
}

func (r *orgaoRepository) FindByID(ctx context.Context, id uint) (*models.Orgao, error) {
	var orgao models.Orgao
	if err := r.db.WithContext(ctx).First(&orgao, id).Error; err != nil {
		return nil, mapDBError(err)
	}
	return &orgao, nil
}

func (r *orgaoRepository) List(ctx context.Context) ([]models.Orgao, error) {
	var orgaos []models.Orgao
	err := r.db.WithContext(ctx).Order("nome").Find(&orgaos).Error
	return orgaos, mapDBError(err)
}

func (r *orgaoRepository) Create(ctx context.Context, orgao *models.Orgao) error {
	return mapDBError(r.db.WithContext(ctx).Create(orgao).Error)
}

func (r *orgaoRepository) Update(ctx context.Context, orgao *models.Orgao) error {
	return mapDBError(r.db.WithContext(ctx).Save(orgao).Error)
}

func (r *orgaoRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Orgao{}, id)
	if result.Error != nil {
		return mapDBError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// LotacaoRepository defines the interface for lotacao data access
type LotacaoRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Lotacao, error)
	List(ctx context.Context, orgaoID *uint) ([]models.Lotacao, error)
	Create(ctx context.Context, lotacao *models.Lotacao) error
	Update(ctx context.Context, lotacao *models.Lotacao) error
	Delete(ctx context.Context, id uint) error
}

type lotacaoRepository struct {
	db *gorm.DB
}

// NewLotacaoRepository creates a new lotacao repository
func NewLotacaoRepository(db *gorm.DB) LotacaoRepository {
	return &lotacaoRepository{db: db}
}

func (r *lotacaoRepository) FindByID(ctx context.Context, id uint) (*models.Lotacao, error) {
	var lotacao models.Lotacao
	if err := r.db.WithContext(ctx).Preload("Orgao").First(&lotacao, id).Error; err != nil {
		return nil, mapDBError(err)
	}
	return &lotacao, nil
}

func (r *lotacaoRepository) List(ctx context.Context, orgaoID *uint) ([]models.Lotacao, error) {
	var lotacoes []models.Lotacao
	db := r.db.WithContext(ctx).Preload("Orgao")
	if orgaoID != nil {
		db = db.Where("orgao_id = ?", *orgaoID)
	}
	err := db.Order("nome").Find(&lotacoes).Error
	return lotacoes, mapDBError(err)
}

func (r *lotacaoRepository) Create(ctx context.Context, lotacao *models.Lotacao) error {
	return mapDBError(r.db.WithContext(ctx).Omit("Orgao").Create(lotacao).Error)
}

func (r *lotacaoRepository) Update(ctx context.Context, lotacao *models.Lotacao) error {
	return mapDBError(r.db.WithContext(ctx).Omit("Orgao").Save(lotacao).Error)
}

func (r *lotacaoRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Lotacao{}, id)
	if result.Error != nil {
		return mapDBError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
