package statemachine

import (
	"context"
	"errors"
	"fmt"

	"github.com/looplab/fsm"
	"github.com/sjperalta/frequencia-api/internal/models"
)

var (
	// ErrDayComplete is returned once a day already holds the maximum punches
	ErrDayComplete = errors.New("daily punch limit reached")
	// ErrOutOfSequence is returned when punches do not alternate entrada/saida
	ErrOutOfSequence = errors.New("punch out of sequence")
)

// PunchFSM tracks the entrada/saida alternation of one colaborador's day.
// A day with no punches behaves like one whose last punch was a saida.
type PunchFSM struct {
	fsm   *fsm.FSM
	count int
	max   int
}

func newPunchFSM(initial string, count, max int) *PunchFSM {
	return &PunchFSM{
		count: count,
		max:   max,
		fsm: fsm.NewFSM(
			initial,
			fsm.Events{
				{Name: models.TipoEntrada, Src: []string{models.TipoSaida}, Dst: models.TipoEntrada},
				{Name: models.TipoSaida, Src: []string{models.TipoEntrada}, Dst: models.TipoSaida},
			},
			fsm.Callbacks{},
		),
	}
}

// NewPunchFSM resumes the machine from a day's existing punches, ordered
// oldest first. Only the last punch decides the state.
func NewPunchFSM(registros []models.RegistroPonto, max int) *PunchFSM {
	state := models.TipoSaida
	if n := len(registros); n > 0 && registros[n-1].Tipo == models.TipoEntrada {
		state = models.TipoEntrada
	}
	return newPunchFSM(state, len(registros), max)
}

// NextTipo returns the type the next punch will get
func (p *PunchFSM) NextTipo() string {
	if p.fsm.Current() == models.TipoEntrada {
		return models.TipoSaida
	}
	return models.TipoEntrada
}

// Count returns the punches seen so far
func (p *PunchFSM) Count() int {
	return p.count
}

// Punch fires the next alternating event and returns its type
func (p *PunchFSM) Punch(ctx context.Context) (string, error) {
	tipo := p.NextTipo()
	if err := p.Apply(ctx, tipo); err != nil {
		return "", err
	}
	return tipo, nil
}

// Apply records a punch of the given type
func (p *PunchFSM) Apply(ctx context.Context, tipo string) error {
	if p.count >= p.max {
		return ErrDayComplete
	}
	if !p.fsm.Can(tipo) {
		return fmt.Errorf("%w: %s after %s", ErrOutOfSequence, tipo, p.fsm.Current())
	}
	if err := p.fsm.Event(ctx, tipo); err != nil {
		return fmt.Errorf("%w: %v", ErrOutOfSequence, err)
	}
	p.count++
	return nil
}

// ValidateDay replays a full day, oldest first, from the empty state.
// A valid day starts with entrada, alternates strictly and holds at most max punches.
func ValidateDay(ctx context.Context, registros []models.RegistroPonto, max int) error {
	machine := newPunchFSM(models.TipoSaida, 0, max)
	for _, r := range registros {
		if err := machine.Apply(ctx, r.Tipo); err != nil {
			return err
		}
	}
	return nil
}
