package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/sjperalta/frequencia-api/internal/models"
	"github.com/sjperalta/frequencia-api/internal/repository"
	"github.com/sjperalta/frequencia-api/internal/statemachine"
)

const msgSequenciaInvalida = "Sequência de registros inválida: o dia deve alternar entrada/saída, começar com entrada e ter no máximo %d registros."

// RegistroService manages punches from the back office
type RegistroService struct {
	registroRepo    repository.RegistroPontoRepository
	colaboradorRepo repository.ColaboradorRepository
	audit           *AuditService
	loc             *time.Location
	maxPerDay       int
	now             func() time.Time
}

func NewRegistroService(registroRepo repository.RegistroPontoRepository, colaboradorRepo repository.ColaboradorRepository, audit *AuditService, loc *time.Location, maxPerDay int) *RegistroService {
	if loc == nil {
		loc = time.Local
	}
	if maxPerDay <= 0 {
		maxPerDay = models.MaxRegistrosPorDia
	}
	return &RegistroService{
		registroRepo:    registroRepo,
		colaboradorRepo: colaboradorRepo,
		audit:           audit,
		loc:             loc,
		maxPerDay:       maxPerDay,
		now:             time.Now,
	}
}

// RegistroFilter selects punches for listing and reports
type RegistroFilter struct {
	ColaboradorID *uint
	OrgaoID       *uint
	LotacaoID     *uint
	DataInicio    string
	DataFim       string
	Page          int
	PerPage       int
}

func (f RegistroFilter) validate() error {
	for _, d := range []string{f.DataInicio, f.DataFim} {
		if d == "" {
			continue
		}
		if _, err := time.Parse(models.DateLayout, d); err != nil {
			return invalidInput("Data inválida: %s (use AAAA-MM-DD).", d)
		}
	}
	if f.DataInicio != "" && f.DataFim != "" && f.DataInicio > f.DataFim {
		return invalidInput("A data inicial deve ser anterior à data final.")
	}
	return nil
}

func (f RegistroFilter) query() *repository.RegistroQuery {
	return &repository.RegistroQuery{
		ColaboradorID: f.ColaboradorID,
		OrgaoID:       f.OrgaoID,
		LotacaoID:     f.LotacaoID,
		DataInicio:    f.DataInicio,
		DataFim:       f.DataFim,
		Page:          f.Page,
		PerPage:       f.PerPage,
	}
}

// List returns punches newest first
func (s *RegistroService) List(ctx context.Context, filter RegistroFilter) ([]models.RegistroPontoResponse, int64, error) {
	if err := filter.validate(); err != nil {
		return nil, 0, err
	}
	registros, total, err := s.registroRepo.List(ctx, filter.query())
	if err != nil {
		return nil, 0, fromRepo(err)
	}
	out := make([]models.RegistroPontoResponse, len(registros))
	for i := range registros {
		out[i] = registros[i].ToResponse()
	}
	return out, total, nil
}

// Resumo groups the filtered punches per colaborador and day
func (s *RegistroService) Resumo(ctx context.Context, filter RegistroFilter) ([]models.PontoResumo, error) {
	if err := filter.validate(); err != nil {
		return nil, err
	}
	q := filter.query()
	q.Page, q.PerPage = 0, 0
	registros, _, err := s.registroRepo.List(ctx, q)
	if err != nil {
		return nil, fromRepo(err)
	}
	return SummarizeRegistros(registros), nil
}

// SummarizeRegistros groups punches by (colaborador, day), newest day first
func SummarizeRegistros(registros []models.RegistroPonto) []models.PontoResumo {
	type key struct {
		colaboradorID uint
		data          string
	}
	groups := make(map[key][]models.RegistroPonto)
	var order []key
	for _, r := range registros {
		k := key{r.ColaboradorID, r.DataRegistro}
		if _, ok := groups[k]; !ok {
			order = append(order, k)
		}
		groups[k] = append(groups[k], r)
	}

	out := make([]models.PontoResumo, 0, len(order))
	for _, k := range order {
		regs := groups[k]
		sort.SliceStable(regs, func(i, j int) bool {
			return regs[i].TimestampRegistro.Before(regs[j].TimestampRegistro)
		})

		resumo := models.PontoResumo{
			ColaboradorID: k.colaboradorID,
			Data:          k.data,
			Entradas:      []string{},
			Saidas:        []string{},
		}
		if c := regs[0].Colaborador; c != nil {
			resumo.Nome = c.NomeCompleto
			resumo.Matricula = c.Matricula
		}
		for _, r := range regs {
			resumo.RegistroIDs = append(resumo.RegistroIDs, r.ID)
			if r.Tipo == models.TipoEntrada {
				resumo.Entradas = append(resumo.Entradas, r.HoraRegistro)
			} else {
				resumo.Saidas = append(resumo.Saidas, r.HoraRegistro)
			}
		}
		resumo.MinutosTrabalho = WorkedMinutes(regs)
		resumo.HorasTrabalho = FormatWorked(resumo.MinutosTrabalho)
		out = append(out, resumo)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Data != out[j].Data {
			return out[i].Data > out[j].Data
		}
		return out[i].Nome < out[j].Nome
	})
	return out
}

// WorkedMinutes sums consecutive entrada→saida pairs of a day sorted by time.
// A trailing entrada without saida adds nothing.
func WorkedMinutes(regs []models.RegistroPonto) int {
	total := 0
	for i := 0; i+1 < len(regs); i += 2 {
		if regs[i].Tipo == models.TipoEntrada && regs[i+1].Tipo == models.TipoSaida {
			total += int(regs[i+1].TimestampRegistro.Sub(regs[i].TimestampRegistro) / time.Minute)
		}
	}
	return total
}

// FormatWorked renders minutes as "XhYYm"
func FormatWorked(minutes int) string {
	return fmt.Sprintf("%dh%02dm", minutes/60, minutes%60)
}

// ManualRegistroRequest is an admin-entered punch
type ManualRegistroRequest struct {
	ColaboradorID uint   `json:"colaborador_id" binding:"required"`
	Data          string `json:"data_registro" binding:"required"`
	Hora          string `json:"hora_registro" binding:"required"`
	Tipo          string `json:"tipo" binding:"required"`
}

// UpdateRegistroRequest changes the type or time of a punch
type UpdateRegistroRequest struct {
	Tipo *string `json:"tipo"`
	Hora *string `json:"hora_registro"`
}

// Create inserts an admin punch. The resulting day must still be a valid sequence.
func (s *RegistroService) Create(ctx context.Context, actor *Actor, req ManualRegistroRequest) (*models.RegistroPonto, error) {
	if !models.IsValidTipo(req.Tipo) {
		return nil, invalidInput("Tipo deve ser entrada ou saida.")
	}
	at, err := s.parseInstant(req.Data, req.Hora)
	if err != nil {
		return nil, err
	}
	if err := s.rejectFuture(at); err != nil {
		return nil, err
	}
	data := at.Format(models.DateLayout)

	colaborador, err := s.colaboradorRepo.FindByID(ctx, req.ColaboradorID)
	if err != nil {
		return nil, fromRepo(err)
	}

	var created *models.RegistroPonto
	err = s.registroRepo.WithColaboradorLock(ctx, colaborador.ID, func(tx repository.RegistroPontoRepository) error {
		existing, err := tx.FindByColaboradorAndDate(ctx, colaborador.ID, data)
		if err != nil {
			return err
		}

		r := models.NewRegistroPonto(colaborador.ID, at, req.Tipo, nextSequencia(existing))
		if err := s.validateDay(ctx, append(existing, *r)); err != nil {
			return err
		}
		if err := tx.Create(ctx, r); err != nil {
			return err
		}
		if err := tx.Resequence(ctx, colaborador.ID, data); err != nil {
			return err
		}
		created, err = tx.FindByID(ctx, r.ID)
		return err
	})
	if err != nil {
		return nil, s.mapManualError(err)
	}

	s.audit.LogAsync(actor, models.AuditRegistroPontoCreated, models.EntityRegistroPonto, idString(created.ID), map[string]any{
		"colaborador_id":   colaborador.ID,
		"colaborador_nome": colaborador.NomeCompleto,
		"data_registro":    created.DataRegistro,
		"hora_registro":    created.HoraRegistro,
		"tipo":             created.Tipo,
	})
	return created, nil
}

// Update edits the type and/or time of a punch, keeping the day valid
func (s *RegistroService) Update(ctx context.Context, actor *Actor, id uint, req UpdateRegistroRequest) (*models.RegistroPonto, error) {
	if req.Tipo == nil && req.Hora == nil {
		return nil, invalidInput("Informe tipo ou hora_registro.")
	}
	if req.Tipo != nil && !models.IsValidTipo(*req.Tipo) {
		return nil, invalidInput("Tipo deve ser entrada ou saida.")
	}

	current, err := s.registroRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fromRepo(err)
	}

	changes := map[string]any{}
	var updated *models.RegistroPonto
	err = s.registroRepo.WithColaboradorLock(ctx, current.ColaboradorID, func(tx repository.RegistroPontoRepository) error {
		day, err := tx.FindByColaboradorAndDate(ctx, current.ColaboradorID, current.DataRegistro)
		if err != nil {
			return err
		}

		idx := -1
		for i := range day {
			if day[i].ID == id {
				idx = i
				break
			}
		}
		if idx < 0 {
			return repository.ErrNotFound
		}

		target := day[idx]
		if req.Tipo != nil && *req.Tipo != target.Tipo {
			changes["tipo"] = FieldChange{Old: target.Tipo, New: *req.Tipo}
			target.Tipo = *req.Tipo
		}
		if req.Hora != nil {
			at, err := s.parseInstant(target.DataRegistro, *req.Hora)
			if err != nil {
				return err
			}
			if err := s.rejectFuture(at); err != nil {
				return err
			}
			if hora := at.Format(models.TimeLayout); hora != target.HoraRegistro {
				changes["hora_registro"] = FieldChange{Old: target.HoraRegistro, New: hora}
				target.HoraRegistro = hora
				target.TimestampRegistro = at
			}
		}
		day[idx] = target

		if err := s.validateDay(ctx, day); err != nil {
			return err
		}
		if err := tx.Update(ctx, &target); err != nil {
			return err
		}
		if err := tx.Resequence(ctx, target.ColaboradorID, target.DataRegistro); err != nil {
			return err
		}
		updated, err = tx.FindByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, s.mapManualError(err)
	}

	if len(changes) > 0 {
		changes["colaborador_id"] = updated.ColaboradorID
		changes["data_registro"] = updated.DataRegistro
		s.audit.LogAsync(actor, models.AuditRegistroPontoUpdated, models.EntityRegistroPonto, idString(id), changes)
	}
	return updated, nil
}

// Delete removes one punch and renumbers the rest of its day
func (s *RegistroService) Delete(ctx context.Context, actor *Actor, id uint) error {
	current, err := s.registroRepo.FindByID(ctx, id)
	if err != nil {
		return fromRepo(err)
	}

	err = s.registroRepo.WithColaboradorLock(ctx, current.ColaboradorID, func(tx repository.RegistroPontoRepository) error {
		if err := tx.Delete(ctx, id); err != nil {
			return err
		}
		return tx.Resequence(ctx, current.ColaboradorID, current.DataRegistro)
	})
	if err != nil {
		return fromRepo(err)
	}

	s.audit.LogAsync(actor, models.AuditRegistroPontoDeleted, models.EntityRegistroPonto, idString(id), map[string]any{
		"colaborador_id": current.ColaboradorID,
		"data_registro":  current.DataRegistro,
		"hora_registro":  current.HoraRegistro,
		"tipo":           current.Tipo,
	})
	return nil
}

// DeleteDay removes every punch of a colaborador on one date
func (s *RegistroService) DeleteDay(ctx context.Context, actor *Actor, colaboradorID uint, data string) (int64, error) {
	if _, err := time.Parse(models.DateLayout, data); err != nil {
		return 0, invalidInput("Data inválida: %s (use AAAA-MM-DD).", data)
	}

	var deleted int64
	err := s.registroRepo.WithColaboradorLock(ctx, colaboradorID, func(tx repository.RegistroPontoRepository) error {
		n, err := tx.DeleteDay(ctx, colaboradorID, data)
		deleted = n
		return err
	})
	if err != nil {
		return 0, fromRepo(err)
	}

	if deleted > 0 {
		s.audit.LogAsync(actor, models.AuditRegistroPontoDeleted, models.EntityRegistroPonto, "", map[string]any{
			"colaborador_id": colaboradorID,
			"data_registro":  data,
			"quantidade":     deleted,
		})
	}
	return deleted, nil
}

func (s *RegistroService) validateDay(ctx context.Context, day []models.RegistroPonto) error {
	sorted := make([]models.RegistroPonto, len(day))
	copy(sorted, day)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].HoraRegistro < sorted[j].HoraRegistro
	})
	return statemachine.ValidateDay(ctx, sorted, s.maxPerDay)
}

func (s *RegistroService) mapManualError(err error) error {
	if errors.Is(err, statemachine.ErrOutOfSequence) || errors.Is(err, statemachine.ErrDayComplete) {
		return newError(ErrInvalidInput, msgSequenciaInvalida, s.maxPerDay)
	}
	var svcErr *Error
	if errors.As(err, &svcErr) {
		return err
	}
	return fromRepo(err)
}

// parseInstant combines a YYYY-MM-DD date with HH:MM or HH:MM:SS in the server timezone
func (s *RegistroService) parseInstant(data, hora string) (time.Time, error) {
	hora = strings.TrimSpace(hora)
	if len(hora) == len("15:04") {
		hora += ":00"
	}
	at, err := time.ParseInLocation(models.DateLayout+" "+models.TimeLayout, strings.TrimSpace(data)+" "+hora, s.loc)
	if err != nil {
		return time.Time{}, invalidInput("Data ou hora inválida.")
	}
	return at, nil
}

// rejectFuture keeps admin punches at or before the current instant
func (s *RegistroService) rejectFuture(at time.Time) error {
	if at.After(s.now()) {
		return invalidInput("Não é possível registrar ponto em horário futuro.")
	}
	return nil
}

func nextSequencia(existing []models.RegistroPonto) int {
	max := 0
	for _, r := range existing {
		if r.Sequencia > max {
			max = r.Sequencia
		}
	}
	return max + 1
}
