package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path"
	"time"

	"github.com/sjperalta/frequencia-api/internal/models"
	"github.com/sjperalta/frequencia-api/internal/repository"
	"github.com/sjperalta/frequencia-api/internal/storage"
	"github.com/sjperalta/frequencia-api/pkg/logger"
)

const folhaAssinadaPrefix = "folhas"

// GerarFrequenciaRequest selects who gets a sheet. Explicit ids win over the filters;
// nil filters mean "all".
type GerarFrequenciaRequest struct {
	Mes            int    `json:"mes" binding:"required"`
	Ano            int    `json:"ano" binding:"required"`
	OrgaoID        *uint  `json:"orgao_id"`
	LotacaoID      *uint  `json:"lotacao_id"`
	ColaboradorIDs []uint `json:"colaborador_ids"`
}

// FrequenciaService generates attendance sheets and keeps their signed scans
type FrequenciaService struct {
	repo          repository.FrequenciaRepository
	colaboradores repository.ColaboradorRepository
	orgaos        repository.OrgaoRepository
	store         storage.ObjectStorage
	images        *ImageService
	audit         *AuditService
	now           func() time.Time
}

func NewFrequenciaService(
	repo repository.FrequenciaRepository,
	colaboradores repository.ColaboradorRepository,
	orgaos repository.OrgaoRepository,
	store storage.ObjectStorage,
	images *ImageService,
	audit *AuditService,
) *FrequenciaService {
	return &FrequenciaService{
		repo:          repo,
		colaboradores: colaboradores,
		orgaos:        orgaos,
		store:         store,
		images:        images,
		audit:         audit,
		now:           time.Now,
	}
}

// Generate renders the month's sheets for the selected active colaboradores and logs the generation
func (s *FrequenciaService) Generate(ctx context.Context, actor *Actor, req GerarFrequenciaRequest) (*AttendanceSheet, *models.FrequenciaGerada, error) {
	if req.Mes < 1 || req.Mes > 12 {
		return nil, nil, invalidInput("Mês inválido.")
	}
	if req.Ano < 1 {
		return nil, nil, invalidInput("Ano inválido.")
	}

	query := &repository.ColaboradorQuery{ApenasAtivos: true}
	if len(req.ColaboradorIDs) > 0 {
		query.IDs = req.ColaboradorIDs
	} else {
		query.OrgaoID = req.OrgaoID
		query.LotacaoID = req.LotacaoID
	}
	colaboradores, _, err := s.colaboradores.List(ctx, query)
	if err != nil {
		return nil, nil, fromRepo(err)
	}
	if len(colaboradores) == 0 {
		return nil, nil, invalidInput("Nenhum colaborador ativo encontrado para os filtros selecionados.")
	}

	orgaoNome := ""
	if req.OrgaoID != nil {
		orgao, err := s.orgaos.FindByID(ctx, *req.OrgaoID)
		switch {
		case err == nil:
			orgaoNome = orgao.Nome
		case !errors.Is(err, repository.ErrNotFound):
			return nil, nil, fromRepo(err)
		}
	}

	sheet, err := GenerateAttendanceSheet(SheetInput{
		Colaboradores: colaboradores,
		Mes:           req.Mes,
		Ano:           req.Ano,
		MesLabel:      models.MesLabel(req.Mes),
		OrgaoNome:     orgaoNome,
	})
	if err != nil {
		return nil, nil, err
	}

	registro := &models.FrequenciaGerada{
		Mes:                     req.Mes,
		Ano:                     req.Ano,
		OrgaoID:                 req.OrgaoID,
		LotacaoID:               req.LotacaoID,
		QuantidadeColaboradores: len(colaboradores),
		GeradoEm:                s.now(),
	}
	if err := s.repo.Create(ctx, registro); err != nil {
		return nil, nil, fromRepo(err)
	}

	s.audit.LogAsync(actor, models.AuditFrequenciaGerada, models.EntityFrequencia, idString(registro.ID), map[string]any{
		"mes":                      req.Mes,
		"ano":                      req.Ano,
		"orgao_id":                 req.OrgaoID,
		"lotacao_id":               req.LotacaoID,
		"quantidade_colaboradores": len(colaboradores),
	})
	return sheet, registro, nil
}

// FrequenciaFilter narrows the generation log
type FrequenciaFilter struct {
	Mes     string
	Ano     string
	OrgaoID string
	Page    int
	PerPage int
}

// List returns the generation log newest first
func (s *FrequenciaService) List(ctx context.Context, f FrequenciaFilter) ([]models.FrequenciaGerada, int64, error) {
	q := repository.NewListQuery()
	if f.Page > 0 {
		q.Page = f.Page
	}
	if f.PerPage > 0 {
		q.PerPage = f.PerPage
	}
	q.Filters["mes"] = f.Mes
	q.Filters["ano"] = f.Ano
	q.Filters["orgao_id"] = f.OrgaoID

	list, total, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, 0, fromRepo(err)
	}
	if list == nil {
		list = []models.FrequenciaGerada{}
	}
	return list, total, nil
}

// SignedUpload is a signed sheet scan sent by the client
type SignedUpload struct {
	Reader      io.Reader
	FileName    string
	ContentType string
	Size        int64
}

// UploadSigned stores the signed scan of a generated sheet, replacing any previous one
func (s *FrequenciaService) UploadSigned(ctx context.Context, actor *Actor, id uint, up SignedUpload) (*models.FrequenciaGerada, error) {
	if !storage.IsValidContentType(up.ContentType) {
		return nil, invalidInput("Tipo de arquivo não permitido. Envie PDF, JPG ou PNG.")
	}
	if up.Size > storage.MaxFileSize {
		return nil, invalidInput("O arquivo excede o limite de 10 MB.")
	}

	registro, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fromRepo(err)
	}

	key, err := s.store.Put(io.LimitReader(up.Reader, storage.MaxFileSize), "folha"+storage.ExtensionFor(up.ContentType), folhaAssinadaPrefix)
	if err != nil {
		return nil, newError(ErrInternal, "Não foi possível salvar o arquivo.")
	}

	if storage.IsImage(up.ContentType) && s.images != nil {
		if _, err := s.images.Thumbnail(key); err != nil {
			// a missing preview does not fail the upload
			logger.FromContext(ctx).Warn("thumbnail failed", slog.String("key", key), slog.String("error", err.Error()))
		}
	}

	previous := registro.FolhaAssinadaURL
	now := s.now()
	registro.FolhaAssinadaURL = &key
	registro.AssinadaEm = &now
	if err := s.repo.Update(ctx, registro); err != nil {
		s.removeObject(ctx, key)
		return nil, fromRepo(err)
	}
	if previous != nil && *previous != "" && *previous != key {
		s.removeObject(ctx, *previous)
	}

	s.audit.LogAsync(actor, models.AuditFolhaAssinada, models.EntityFrequencia, idString(id), map[string]any{
		"arquivo":      up.FileName,
		"content_type": up.ContentType,
		"tamanho":      up.Size,
	})
	return registro, nil
}

// SignedFile is an open signed scan ready to be streamed
type SignedFile struct {
	File        *os.File
	FileName    string
	ContentType string
}

// OpenSigned opens the signed scan of a generated sheet. The caller closes the file.
func (s *FrequenciaService) OpenSigned(ctx context.Context, id uint) (*SignedFile, error) {
	registro, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fromRepo(err)
	}
	if !registro.IsAssinada() {
		return nil, newError(ErrNotFound, "Folha assinada não enviada.")
	}

	key := *registro.FolhaAssinadaURL
	f, err := s.store.Open(key)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, newError(ErrNotFound, "Folha assinada não encontrada.")
		}
		return nil, newError(ErrInternal, "Não foi possível abrir o arquivo.")
	}

	ext := path.Ext(key)
	return &SignedFile{
		File:        f,
		FileName:    "folha_assinada_" + idString(id) + ext,
		ContentType: contentTypeForExt(ext),
	}, nil
}

func (s *FrequenciaService) removeObject(ctx context.Context, key string) {
	for _, k := range []string{key, storage.ThumbnailKey(key)} {
		if !s.store.Exists(k) {
			continue
		}
		if err := s.store.Delete(k); err != nil {
			logger.FromContext(ctx).Warn("failed to remove stored object", slog.String("key", k), slog.String("error", err.Error()))
		}
	}
}

func contentTypeForExt(ext string) string {
	switch ext {
	case ".pdf":
		return "application/pdf"
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	default:
		return "application/octet-stream"
	}
}
