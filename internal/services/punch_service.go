package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/sjperalta/frequencia-api/internal/models"
	"github.com/sjperalta/frequencia-api/internal/repository"
	"github.com/sjperalta/frequencia-api/internal/statemachine"
	"github.com/sjperalta/frequencia-api/pkg/logger"
)

// maxPunchAttempts bounds the retries after a sequence collision
const maxPunchAttempts = 3

// dummyHash keeps the credential check timing uniform for unknown matriculas
var dummyHash, _ = HashPassword("senha-ponto-inexistente")

// PunchService records time-clock punches
type PunchService struct {
	colaboradorRepo repository.ColaboradorRepository
	registroRepo    repository.RegistroPontoRepository
	loc             *time.Location
	maxPerDay       int
	now             func() time.Time
}

// NewPunchService creates a punch recorder using the given timezone and daily cap
func NewPunchService(colaboradorRepo repository.ColaboradorRepository, registroRepo repository.RegistroPontoRepository, loc *time.Location, maxPerDay int) *PunchService {
	if loc == nil {
		loc = time.Local
	}
	if maxPerDay <= 0 {
		maxPerDay = models.MaxRegistrosPorDia
	}
	return &PunchService{
		colaboradorRepo: colaboradorRepo,
		registroRepo:    registroRepo,
		loc:             loc,
		maxPerDay:       maxPerDay,
		now:             time.Now,
	}
}

// PunchResult is returned after a successful punch
type PunchResult struct {
	Success       bool                         `json:"success"`
	Message       string                       `json:"message"`
	Registro      models.RegistroPontoResponse `json:"registro"`
	Tipo          string                       `json:"tipo"`
	RegistrosHoje int                          `json:"registros_hoje"`
}

// Registrar validates the punch credentials and records the next entrada/saida
func (s *PunchService) Registrar(ctx context.Context, matricula, senhaPonto string) (*PunchResult, error) {
	matricula = strings.TrimSpace(matricula)
	if matricula == "" || strings.TrimSpace(senhaPonto) == "" {
		return nil, invalidInput("Matrícula e senha são obrigatórios.")
	}

	colaborador, err := s.authenticate(ctx, matricula, senhaPonto)
	if err != nil {
		return nil, err
	}

	var (
		registro *models.RegistroPonto
		count    int
	)
	for attempt := 1; attempt <= maxPunchAttempts; attempt++ {
		registro, count, err = s.punch(ctx, colaborador.ID)
		if !errors.Is(err, repository.ErrDuplicate) {
			break
		}
		logger.FromContext(ctx).Warn("punch sequence collision, retrying",
			slog.Uint64("colaborador_id", uint64(colaborador.ID)),
			slog.Int("attempt", attempt))
	}

	switch {
	case err == nil:
	case errors.Is(err, statemachine.ErrDayComplete):
		return nil, newError(ErrDailyLimitExceeded, "Limite de %d registros por dia atingido.", s.maxPerDay)
	case errors.Is(err, repository.ErrDuplicate):
		return nil, newError(ErrConflict, "Registro simultâneo detectado. Tente novamente.")
	case errors.Is(err, repository.ErrNotFound):
		// deleted between authentication and lock
		return nil, ErrAuthenticationFailed
	default:
		return nil, fromRepo(err)
	}

	registro.Colaborador = colaborador
	logger.FromContext(ctx).Info("punch recorded",
		slog.Uint64("colaborador_id", uint64(colaborador.ID)),
		slog.String("tipo", registro.Tipo),
		slog.Int("sequencia", registro.Sequencia))

	return &PunchResult{
		Success: true,
		Message: fmt.Sprintf("Ponto registrado com sucesso às %s em %s",
			registro.TimestampRegistro.Format("15:04:05"),
			registro.TimestampRegistro.Format("02/01/2006")),
		Registro:      registro.ToResponse(),
		Tipo:          registro.Tipo,
		RegistrosHoje: count,
	}, nil
}

// authenticate finds an active colaborador whose punch password matches.
// Every failure yields the same error.
func (s *PunchService) authenticate(ctx context.Context, matricula, senhaPonto string) (*models.Colaborador, error) {
	colaborador, err := s.colaboradorRepo.FindActiveByMatricula(ctx, matricula)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			VerifyPassword(senhaPonto, dummyHash)
			return nil, ErrAuthenticationFailed
		}
		return nil, fromRepo(err)
	}
	if passwordTooLong(senhaPonto) {
		VerifyPassword("", dummyHash)
		return nil, ErrAuthenticationFailed
	}
	if !colaborador.HasSenhaPonto() || !VerifyPassword(senhaPonto, *colaborador.SenhaPonto) {
		return nil, ErrAuthenticationFailed
	}
	return colaborador, nil
}

// punch derives the type and inserts the record while holding the colaborador lock
func (s *PunchService) punch(ctx context.Context, colaboradorID uint) (*models.RegistroPonto, int, error) {
	var (
		registro *models.RegistroPonto
		count    int
	)

	err := s.registroRepo.WithColaboradorLock(ctx, colaboradorID, func(tx repository.RegistroPontoRepository) error {
		now := s.now().In(s.loc)
		today := now.Format(models.DateLayout)

		existing, err := tx.FindByColaboradorAndDate(ctx, colaboradorID, today)
		if err != nil {
			return err
		}

		machine := statemachine.NewPunchFSM(existing, s.maxPerDay)
		tipo, err := machine.Punch(ctx)
		if err != nil {
			return err
		}

		r := models.NewRegistroPonto(colaboradorID, now, tipo, nextSequencia(existing))
		if err := tx.Create(ctx, r); err != nil {
			return err
		}

		registro = r
		count = machine.Count()
		return nil
	})
	return registro, count, err
}
