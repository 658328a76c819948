package services

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/sjperalta/frequencia-api/internal/models"
	"github.com/sjperalta/frequencia-api/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPunchService(t *testing.T, colabs ...models.Colaborador) (*PunchService, *memRegistroRepo) {
	t.Helper()
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)

	registros := &memRegistroRepo{}
	svc := NewPunchService(newMemColaboradorRepo(colabs...), registros, loc, models.MaxRegistrosPorDia)

	clock := time.Date(2024, 3, 11, 11, 0, 0, 0, time.UTC)
	var mu sync.Mutex
	svc.now = func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		clock = clock.Add(time.Minute)
		return clock
	}
	return svc, registros
}

func punchColaborador() models.Colaborador {
	return models.Colaborador{
		ID:           1,
		NomeCompleto: "Ana Souza",
		Matricula:    "12345",
		Ativo:        true,
		SenhaPonto:   mustHash("1234"),
	}
}

func TestPunchService_FirstPunchIsEntrada(t *testing.T) {
	svc, _ := newTestPunchService(t, punchColaborador())

	result, err := svc.Registrar(context.Background(), " 12345 ", "1234")
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, models.TipoEntrada, result.Tipo)
	assert.Equal(t, 1, result.RegistrosHoje)
	assert.Equal(t, "Ana Souza", result.Registro.ColaboradorNome)
	assert.Equal(t, 1, result.Registro.Sequencia)
	// 11:01 UTC is 08:01 in São Paulo
	assert.Equal(t, "2024-03-11", result.Registro.DataRegistro)
	assert.Equal(t, "08:01:00", result.Registro.HoraRegistro)
	assert.Equal(t, "Ponto registrado com sucesso às 08:01:00 em 11/03/2024", result.Message)
}

func TestPunchService_AlternatesAndCapsAtFour(t *testing.T) {
	svc, registros := newTestPunchService(t, punchColaborador())
	ctx := context.Background()

	want := []string{"entrada", "saida", "entrada", "saida"}
	for i, tipo := range want {
		result, err := svc.Registrar(ctx, "12345", "1234")
		require.NoError(t, err)
		assert.Equal(t, tipo, result.Tipo)
		assert.Equal(t, i+1, result.RegistrosHoje)
	}

	result, err := svc.Registrar(ctx, "12345", "1234")
	assert.Nil(t, result)
	assert.True(t, errors.Is(err, ErrDailyLimitExceeded))
	assert.Equal(t, "Limite de 4 registros por dia atingido.", err.Error())
	assert.Len(t, registros.all(), 4)
}

func TestPunchService_DateUsesConfiguredTimezone(t *testing.T) {
	svc, _ := newTestPunchService(t, punchColaborador())
	svc.now = func() time.Time { return time.Date(2024, 3, 10, 2, 30, 0, 0, time.UTC) }

	result, err := svc.Registrar(context.Background(), "12345", "1234")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-09", result.Registro.DataRegistro)
	assert.Equal(t, "23:30:00", result.Registro.HoraRegistro)
}

func TestPunchService_InvalidInput(t *testing.T) {
	svc, _ := newTestPunchService(t, punchColaborador())

	for _, creds := range [][2]string{{"", "1234"}, {"12345", ""}, {"   ", "1234"}, {"12345", "  "}} {
		_, err := svc.Registrar(context.Background(), creds[0], creds[1])
		assert.True(t, errors.Is(err, ErrInvalidInput), "creds %q", creds)
	}
}

func TestPunchService_AuthenticationFailuresAreIndistinguishable(t *testing.T) {
	inactive := punchColaborador()
	inactive.ID = 2
	inactive.Matricula = "99999"
	inactive.Ativo = false

	noPassword := punchColaborador()
	noPassword.ID = 3
	noPassword.Matricula = "55555"
	noPassword.SenhaPonto = nil

	svc, registros := newTestPunchService(t, punchColaborador(), inactive, noPassword)

	cases := map[string][2]string{
		"unknown matricula":  {"00000", "1234"},
		"wrong password":     {"12345", "4321"},
		"trailing space":     {"12345", "1234 "},
		"inactive colab":     {"99999", "1234"},
		"no punch password":  {"55555", "1234"},
		"matricula mismatch": {"1234", "1234"},
	}
	for name, creds := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Registrar(context.Background(), creds[0], creds[1])
			assert.ErrorIs(t, err, ErrAuthenticationFailed)
			assert.Equal(t, "Matrícula ou senha inválidas.", Message(err))
		})
	}
	assert.Empty(t, registros.all())
}

func TestPunchService_ConcurrentPunchesStayConsistent(t *testing.T) {
	svc, registros := newTestPunchService(t, punchColaborador())

	const attempts = 10
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		limited   int
	)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Registrar(context.Background(), "12345", "1234")
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				successes++
			case errors.Is(err, ErrDailyLimitExceeded):
				limited++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 4, successes)
	assert.Equal(t, attempts-4, limited)

	rows := registros.all()
	sort.Slice(rows, func(i, j int) bool { return rows[i].Sequencia < rows[j].Sequencia })
	require.Len(t, rows, 4)
	for i, r := range rows {
		assert.Equal(t, i+1, r.Sequencia)
		if i%2 == 0 {
			assert.Equal(t, models.TipoEntrada, r.Tipo)
		} else {
			assert.Equal(t, models.TipoSaida, r.Tipo)
		}
	}
}

func TestPunchService_RetriesSequenceCollision(t *testing.T) {
	svc, registros := newTestPunchService(t, punchColaborador())
	registros.createErrs = []error{repository.ErrDuplicate, repository.ErrDuplicate}

	result, err := svc.Registrar(context.Background(), "12345", "1234")
	require.NoError(t, err)
	assert.Equal(t, models.TipoEntrada, result.Tipo)
	assert.Equal(t, 3, registros.creates)
}

func TestPunchService_ExhaustedRetriesIsConflict(t *testing.T) {
	svc, registros := newTestPunchService(t, punchColaborador())
	registros.createErrs = []error{repository.ErrDuplicate, repository.ErrDuplicate, repository.ErrDuplicate}

	_, err := svc.Registrar(context.Background(), "12345", "1234")
	assert.ErrorIs(t, err, ErrConflict)
	assert.Empty(t, registros.all())
}

func TestPunchService_LongPasswordMustMatchExactly(t *testing.T) {
	senha := strings.Repeat("a", 72)
	colab := punchColaborador()
	colab.SenhaPonto = mustHash(senha)
	svc, registros := newTestPunchService(t, colab)

	_, err := svc.Registrar(context.Background(), "12345", senha+"WRONG-SUFFIX")
	assert.ErrorIs(t, err, ErrAuthenticationFailed)
	assert.Empty(t, registros.all())

	result, err := svc.Registrar(context.Background(), "12345", senha)
	require.NoError(t, err)
	assert.Equal(t, models.TipoEntrada, result.Tipo)
}

func TestPunchService_LastPunchIsChosenByTime(t *testing.T) {
	svc, registros := newTestPunchService(t, punchColaborador())
	ctx := context.Background()
	at := func(hora string) time.Time {
		ts, err := time.ParseInLocation("2006-01-02 15:04:05", "2024-03-11 "+hora, svc.loc)
		require.NoError(t, err)
		return ts
	}
	// numbering disagrees with the clock
	require.NoError(t, registros.Create(ctx, models.NewRegistroPonto(1, at("07:00:00"), models.TipoEntrada, 2)))
	require.NoError(t, registros.Create(ctx, models.NewRegistroPonto(1, at("07:30:00"), models.TipoSaida, 1)))

	result, err := svc.Registrar(ctx, "12345", "1234")
	require.NoError(t, err)
	assert.Equal(t, models.TipoEntrada, result.Tipo)
	assert.Equal(t, 3, result.Registro.Sequencia)
	assert.Equal(t, 3, result.RegistrosHoje)
}
