package services

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/sjperalta/frequencia-api/internal/models"
	"github.com/sjperalta/frequencia-api/internal/repository"
)

const msgMatriculaDuplicada = "Já existe um colaborador com esta matrícula."

// ColaboradorRequest creates or updates a colaborador. Empty jornada times keep the defaults.
type ColaboradorRequest struct {
	NomeCompleto        string  `json:"nome_completo" binding:"required"`
	Matricula           string  `json:"matricula" binding:"required"`
	OrgaoID             uint    `json:"orgao_id" binding:"required"`
	LotacaoID           *uint   `json:"lotacao_id"`
	Cargo               string  `json:"cargo"`
	JornadaEntradaManha string  `json:"jornada_entrada_manha"`
	JornadaSaidaManha   string  `json:"jornada_saida_manha"`
	JornadaEntradaTarde string  `json:"jornada_entrada_tarde"`
	JornadaSaidaTarde   string  `json:"jornada_saida_tarde"`
	Ativo               *bool   `json:"ativo"`
	SenhaPonto          *string `json:"senha_ponto"`
}

// ColaboradorFilter selects colaboradores for listing
type ColaboradorFilter struct {
	OrgaoID      *uint
	LotacaoID    *uint
	ApenasAtivos bool
	Search       string
	Page         int
	PerPage      int
}

// ColaboradorService manages employees and their punch passwords
type ColaboradorService struct {
	repo     repository.ColaboradorRepository
	orgaos   repository.OrgaoRepository
	lotacoes repository.LotacaoRepository
	audit    *AuditService
}

func NewColaboradorService(repo repository.ColaboradorRepository, orgaos repository.OrgaoRepository, lotacoes repository.LotacaoRepository, audit *AuditService) *ColaboradorService {
	return &ColaboradorService{repo: repo, orgaos: orgaos, lotacoes: lotacoes, audit: audit}
}

func (s *ColaboradorService) List(ctx context.Context, f ColaboradorFilter) ([]models.ColaboradorResponse, int64, error) {
	colaboradores, total, err := s.repo.List(ctx, &repository.ColaboradorQuery{
		OrgaoID:      f.OrgaoID,
		LotacaoID:    f.LotacaoID,
		ApenasAtivos: f.ApenasAtivos,
		Search:       strings.TrimSpace(f.Search),
		Page:         f.Page,
		PerPage:      f.PerPage,
	})
	if err != nil {
		return nil, 0, fromRepo(err)
	}
	out := make([]models.ColaboradorResponse, len(colaboradores))
	for i := range colaboradores {
		out[i] = colaboradores[i].ToResponse()
	}
	return out, total, nil
}

func (s *ColaboradorService) Get(ctx context.Context, id uint) (*models.Colaborador, error) {
	c, err := s.repo.FindByID(ctx, id)
	return c, fromRepo(err)
}

// Create registers a colaborador. A punch password, when given, is stored hashed.
func (s *ColaboradorService) Create(ctx context.Context, actor *Actor, req ColaboradorRequest) (*models.Colaborador, error) {
	c := &models.Colaborador{Ativo: true}
	if err := s.apply(ctx, c, req); err != nil {
		return nil, err
	}
	if req.SenhaPonto != nil {
		hash, err := hashSenhaPonto(*req.SenhaPonto)
		if err != nil {
			return nil, err
		}
		c.SenhaPonto = &hash
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, mapColaboradorError(err)
	}

	s.audit.LogAsync(actor, models.AuditColaboradorCreated, models.EntityColaborador, idString(c.ID), map[string]any{
		"nome_completo": c.NomeCompleto,
		"matricula":     c.Matricula,
		"orgao_id":      c.OrgaoID,
		"lotacao_id":    c.LotacaoID,
		"cargo":         c.Cargo,
	})
	return s.Get(ctx, c.ID)
}

// Update edits a colaborador and records the changed fields
func (s *ColaboradorService) Update(ctx context.Context, actor *Actor, id uint, req ColaboradorRequest) (*models.Colaborador, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fromRepo(err)
	}
	before := *c

	if err := s.apply(ctx, c, req); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, mapColaboradorError(err)
	}

	changes := colaboradorChanges(&before, c)
	if req.SenhaPonto != nil {
		hash, err := hashSenhaPonto(*req.SenhaPonto)
		if err != nil {
			return nil, err
		}
		if err := s.repo.SetSenhaPonto(ctx, id, hash); err != nil {
			return nil, fromRepo(err)
		}
		changes["senha_ponto"] = FieldChange{Old: models.RedactedValue, New: models.RedactedValue}
	}

	if len(changes) > 0 {
		s.audit.LogAsync(actor, models.AuditColaboradorUpdated, models.EntityColaborador, idString(id), changes)
	}
	return s.Get(ctx, id)
}

// SetAtivo enables or disables a colaborador. Inactive colaboradores cannot punch.
func (s *ColaboradorService) SetAtivo(ctx context.Context, actor *Actor, id uint, ativo bool) (*models.Colaborador, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fromRepo(err)
	}
	if c.Ativo == ativo {
		return c, nil
	}
	if err := s.repo.SetAtivo(ctx, id, ativo); err != nil {
		return nil, fromRepo(err)
	}

	s.audit.LogAsync(actor, models.AuditColaboradorUpdated, models.EntityColaborador, idString(id), map[string]any{
		"ativo": FieldChange{Old: c.Ativo, New: ativo},
	})
	c.Ativo = ativo
	return c, nil
}

// SetSenhaPonto replaces the punch password
func (s *ColaboradorService) SetSenhaPonto(ctx context.Context, actor *Actor, id uint, senha string) error {
	hash, err := hashSenhaPonto(senha)
	if err != nil {
		return err
	}
	if err := s.repo.SetSenhaPonto(ctx, id, hash); err != nil {
		return fromRepo(err)
	}
	s.audit.LogAsync(actor, models.AuditColaboradorUpdated, models.EntityColaborador, idString(id), map[string]any{
		"senha_ponto": FieldChange{Old: models.RedactedValue, New: models.RedactedValue},
	})
	return nil
}

// Delete removes a colaborador together with its punches
func (s *ColaboradorService) Delete(ctx context.Context, actor *Actor, id uint) error {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return fromRepo(err)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fromRepo(err)
	}
	s.audit.LogAsync(actor, models.AuditColaboradorDeleted, models.EntityColaborador, idString(id), map[string]any{
		"nome_completo": c.NomeCompleto,
		"matricula":     c.Matricula,
	})
	return nil
}

func (s *ColaboradorService) apply(ctx context.Context, c *models.Colaborador, req ColaboradorRequest) error {
	nome := strings.TrimSpace(req.NomeCompleto)
	matricula := strings.TrimSpace(req.Matricula)
	if nome == "" || matricula == "" {
		return invalidInput("Nome completo e matrícula são obrigatórios.")
	}

	orgao, err := s.orgaos.FindByID(ctx, req.OrgaoID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return invalidInput("Órgão não encontrado.")
		}
		return fromRepo(err)
	}

	var lotacaoID *uint
	if req.LotacaoID != nil && *req.LotacaoID != 0 {
		lotacao, err := s.lotacoes.FindByID(ctx, *req.LotacaoID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return invalidInput("Lotação não encontrada.")
			}
			return fromRepo(err)
		}
		if lotacao.OrgaoID != orgao.ID {
			return invalidInput("A lotação não pertence ao órgão informado.")
		}
		lotacaoID = &lotacao.ID
	}

	jornada := [4]*string{&c.JornadaEntradaManha, &c.JornadaSaidaManha, &c.JornadaEntradaTarde, &c.JornadaSaidaTarde}
	for i, v := range []string{req.JornadaEntradaManha, req.JornadaSaidaManha, req.JornadaEntradaTarde, req.JornadaSaidaTarde} {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if !validJornadaTime(v) {
			return invalidInput("Horário de jornada inválido: %s (use HH:MM).", v)
		}
		*jornada[i] = v
	}

	c.NomeCompleto = nome
	c.Matricula = matricula
	c.OrgaoID = orgao.ID
	c.LotacaoID = lotacaoID
	c.Cargo = strings.TrimSpace(req.Cargo)
	if req.Ativo != nil {
		c.Ativo = *req.Ativo
	}
	// associations are reloaded after the write
	c.Orgao = nil
	c.Lotacao = nil
	return nil
}

func validJornadaTime(v string) bool {
	_, err := time.Parse("15:04", v)
	return err == nil && len(v) == 5
}

func hashSenhaPonto(senha string) (string, error) {
	if strings.TrimSpace(senha) == "" {
		return "", invalidInput("A senha de ponto não pode ser vazia.")
	}
	if passwordTooLong(senha) {
		return "", invalidInput("A senha de ponto deve ter no máximo %d bytes.", maxPasswordBytes)
	}
	hash, err := HashPassword(senha)
	if err != nil {
		return "", newError(ErrInternal, "Não foi possível definir a senha de ponto.")
	}
	return hash, nil
}

func mapColaboradorError(err error) error {
	if errors.Is(err, repository.ErrDuplicate) {
		return newError(ErrConflict, msgMatriculaDuplicada)
	}
	return fromRepo(err)
}

func colaboradorChanges(before, after *models.Colaborador) map[string]any {
	changes := map[string]any{}
	diff := func(field string, old, cur any) {
		if old != cur {
			changes[field] = FieldChange{Old: old, New: cur}
		}
	}
	diff("nome_completo", before.NomeCompleto, after.NomeCompleto)
	diff("matricula", before.Matricula, after.Matricula)
	diff("orgao_id", before.OrgaoID, after.OrgaoID)
	diff("lotacao_id", uintValue(before.LotacaoID), uintValue(after.LotacaoID))
	diff("cargo", before.Cargo, after.Cargo)
	diff("jornada_entrada_manha", before.JornadaEntradaManha, after.JornadaEntradaManha)
	diff("jornada_saida_manha", before.JornadaSaidaManha, after.JornadaSaidaManha)
	diff("jornada_entrada_tarde", before.JornadaEntradaTarde, after.JornadaEntradaTarde)
	diff("jornada_saida_tarde", before.JornadaSaidaTarde, after.JornadaSaidaTarde)
	diff("ativo", before.Ativo, after.Ativo)
	return changes
}

func uintValue(v *uint) any {
	if v == nil {
		return nil
	}
	return *v
}

func idString(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
