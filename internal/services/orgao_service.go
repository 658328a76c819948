package services

import (
	"context"
	"errors"
	"strings"

	"github.com/sjperalta/frequencia-api/internal/models"
	"github.com/sjperalta/frequencia-api/internal/repository"
)

// OrgaoRequest creates or updates an orgao
type OrgaoRequest struct {
	Nome  string  `json:"nome" binding:"required"`
	Sigla *string `json:"sigla"`
}

// LotacaoRequest creates or updates a lotacao
type LotacaoRequest struct {
	Nome    string `json:"nome" binding:"required"`
	OrgaoID uint   `json:"orgao_id" binding:"required"`
}

// OrgaoService manages orgaos and their lotacoes
type OrgaoService struct {
	orgaos   repository.OrgaoRepository
	lotacoes repository.LotacaoRepository
}

func NewOrgaoService(orgaos repository.OrgaoRepository, lotacoes repository.LotacaoRepository) *OrgaoService {
	return &OrgaoService{orgaos: orgaos, lotacoes: lotacoes}
}

func (s *OrgaoService) List(ctx context.Context) ([]models.Orgao, error) {
	orgaos, err := s.orgaos.List(ctx)
	if err != nil {
		return nil, fromRepo(err)
	}
	if orgaos == nil {
		orgaos = []models.Orgao{}
	}
	return orgaos, nil
}

func (s *OrgaoService) Get(ctx context.Context, id uint) (*models.Orgao, error) {
	orgao, err := s.orgaos.FindByID(ctx, id)
	return orgao, fromRepo(err)
}

func (s *OrgaoService) Create(ctx context.Context, req OrgaoRequest) (*models.Orgao, error) {
	orgao := &models.Orgao{}
	if err := applyOrgao(orgao, req); err != nil {
		return nil, err
	}
	if err := s.orgaos.Create(ctx, orgao); err != nil {
		return nil, fromRepo(err)
	}
	return orgao, nil
}

func (s *OrgaoService) Update(ctx context.Context, id uint, req OrgaoRequest) (*models.Orgao, error) {
	orgao, err := s.orgaos.FindByID(ctx, id)
	if err != nil {
		return nil, fromRepo(err)
	}
	if err := applyOrgao(orgao, req); err != nil {
		return nil, err
	}
	if err := s.orgaos.Update(ctx, orgao); err != nil {
		return nil, fromRepo(err)
	}
	return orgao, nil
}

// Delete removes an orgao. Orgaos still referenced by lotacoes or colaboradores are kept.
func (s *OrgaoService) Delete(ctx context.Context, id uint) error {
	return fromRepo(s.orgaos.Delete(ctx, id))
}

func applyOrgao(orgao *models.Orgao, req OrgaoRequest) error {
	nome := strings.TrimSpace(req.Nome)
	if nome == "" {
		return invalidInput("Nome do órgão é obrigatório.")
	}
	orgao.Nome = nome
	orgao.Sigla = nil
	if req.Sigla != nil {
		orgao.Sigla = optionalString(strings.TrimSpace(*req.Sigla))
	}
	return nil
}

// ListLotacoes returns lotacoes by nome, optionally of one orgao
func (s *OrgaoService) ListLotacoes(ctx context.Context, orgaoID *uint) ([]models.Lotacao, error) {
	lotacoes, err := s.lotacoes.List(ctx, orgaoID)
	if err != nil {
		return nil, fromRepo(err)
	}
	if lotacoes == nil {
		lotacoes = []models.Lotacao{}
	}
	return lotacoes, nil
}

func (s *OrgaoService) GetLotacao(ctx context.Context, id uint) (*models.Lotacao, error) {
	lotacao, err := s.lotacoes.FindByID(ctx, id)
	return lotacao, fromRepo(err)
}

func (s *OrgaoService) CreateLotacao(ctx context.Context, req LotacaoRequest) (*models.Lotacao, error) {
	lotacao := &models.Lotacao{}
	if err := s.applyLotacao(ctx, lotacao, req); err != nil {
		return nil, err
	}
	if err := s.lotacoes.Create(ctx, lotacao); err != nil {
		return nil, fromRepo(err)
	}
	return lotacao, nil
}

func (s *OrgaoService) UpdateLotacao(ctx context.Context, id uint, req LotacaoRequest) (*models.Lotacao, error) {
	lotacao, err := s.lotacoes.FindByID(ctx, id)
	if err != nil {
		return nil, fromRepo(err)
	}
	if err := s.applyLotacao(ctx, lotacao, req); err != nil {
		return nil, err
	}
	if err := s.lotacoes.Update(ctx, lotacao); err != nil {
		return nil, fromRepo(err)
	}
	return lotacao, nil
}

func (s *OrgaoService) DeleteLotacao(ctx context.Context, id uint) error {
	return fromRepo(s.lotacoes.Delete(ctx, id))
}

func (s *OrgaoService) applyLotacao(ctx context.Context, lotacao *models.Lotacao, req LotacaoRequest) error {
	nome := strings.TrimSpace(req.Nome)
	if nome == "" {
		return invalidInput("Nome da lotação é obrigatório.")
	}
	orgao, err := s.orgaos.FindByID(ctx, req.OrgaoID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return invalidInput("Órgão não encontrado.")
		}
		return fromRepo(err)
	}
	lotacao.Nome = nome
	lotacao.OrgaoID = orgao.ID
	lotacao.Orgao = orgao
	return nil
}
