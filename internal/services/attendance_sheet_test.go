package services

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sjperalta/frequencia-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sheetColaborador(nome, matricula string, jornada [4]string) models.Colaborador {
	return models.Colaborador{
		NomeCompleto:        nome,
		Matricula:           matricula,
		Cargo:               "Analista",
		JornadaEntradaManha: jornada[0],
		JornadaSaidaManha:   jornada[1],
		JornadaEntradaTarde: jornada[2],
		JornadaSaidaTarde:   jornada[3],
		Ativo:               true,
	}
}

var jornadaPadrao = [4]string{"08:00", "12:00", "14:00", "18:00"}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 29, DaysInMonth(2, 2024))
	assert.Equal(t, 28, DaysInMonth(2, 2023))
	assert.Equal(t, 31, DaysInMonth(12, 2023))
	assert.Equal(t, 30, DaysInMonth(4, 2025))
	assert.Equal(t, 29, DaysInMonth(2, 2000))
	assert.Equal(t, 28, DaysInMonth(2, 1900))
}

func TestBuildSheetPages_LeapYearRowCount(t *testing.T) {
	colab := []models.Colaborador{sheetColaborador("Ana", "001", jornadaPadrao)}

	pages, err := BuildSheetPages(SheetInput{Colaboradores: colab, Mes: 2, Ano: 2024, MesLabel: "Fevereiro"})
	require.NoError(t, err)
	assert.Len(t, pages[0].Rows, 29)

	pages, err = BuildSheetPages(SheetInput{Colaboradores: colab, Mes: 2, Ano: 2023, MesLabel: "Fevereiro"})
	require.NoError(t, err)
	assert.Len(t, pages[0].Rows, 28)
}

func TestBuildSheetPages_WeekendRows(t *testing.T) {
	colab := []models.Colaborador{sheetColaborador("Ana", "001", jornadaPadrao)}

	// March 2024: the 2nd is a Saturday, the 3rd a Sunday, the 4th a Monday
	pages, err := BuildSheetPages(SheetInput{Colaboradores: colab, Mes: 3, Ano: 2024, MesLabel: "Março"})
	require.NoError(t, err)
	rows := pages[0].Rows

	assert.Equal(t, "Sáb", rows[1].Semana)
	assert.Equal(t, "Dom", rows[2].Semana)
	assert.Equal(t, "Seg", rows[3].Semana)

	weekends := 0
	for _, row := range rows {
		assert.Len(t, row.Cells, SheetColumnCount)
		for _, sig := range []int{3, 5, 7, 9} {
			assert.Empty(t, row.Cells[sig], "signature cells are blank")
		}
		if row.Weekend {
			weekends++
			for _, col := range []int{2, 4, 6, 8} {
				assert.Equal(t, WeekendPlaceholder, row.Cells[col])
			}
		}
	}
	assert.Equal(t, 10, weekends)
	assert.Equal(t, "02", rows[1].Cells[0])
}

func TestBuildSheetPages_OnePagePerColaborador(t *testing.T) {
	colabs := []models.Colaborador{
		sheetColaborador("Ana", "001", jornadaPadrao),
		sheetColaborador("Bruno", "002", [4]string{"07:00", "11:00", "13:00", "17:00"}),
		sheetColaborador("Carla", "003", [4]string{"09:00", "13:00", "15:00", "19:00"}),
	}
	colabs[1].Lotacao = &models.Lotacao{Nome: "Almoxarifado"}

	pages, err := BuildSheetPages(SheetInput{Colaboradores: colabs, Mes: 1, Ano: 2025, MesLabel: "Janeiro", OrgaoNome: "Secretaria de Saúde"})
	require.NoError(t, err)
	require.Len(t, pages, 3)

	for i, page := range pages {
		c := colabs[i]
		assert.Equal(t, c.NomeCompleto, page.Nome)
		assert.Equal(t, c.Matricula, page.Matricula)
		assert.Equal(t, c.JornadaLabel(), page.Jornada)
		assert.Equal(t, "Janeiro / 2025", page.Periodo)
		assert.Equal(t, "Secretaria de Saúde", page.Orgao)

		jornada := c.Jornada()
		for _, row := range page.Rows {
			if row.Weekend {
				continue
			}
			assert.Equal(t, jornada[0], row.Cells[2])
			assert.Equal(t, jornada[1], row.Cells[4])
			assert.Equal(t, jornada[2], row.Cells[6])
			assert.Equal(t, jornada[3], row.Cells[8])
		}
	}
	assert.Equal(t, "Almoxarifado", pages[1].Lotacao)
	assert.Empty(t, pages[0].Lotacao)
}

func TestBuildSheetPages_OrgaoFallbacks(t *testing.T) {
	own := sheetColaborador("Ana", "001", jornadaPadrao)
	own.Orgao = &models.Orgao{Nome: "Câmara Municipal"}
	none := sheetColaborador("Bruno", "002", jornadaPadrao)

	pages, err := BuildSheetPages(SheetInput{Colaboradores: []models.Colaborador{own, none}, Mes: 5, Ano: 2024})
	require.NoError(t, err)
	assert.Equal(t, "Câmara Municipal", pages[0].Orgao)
	assert.Equal(t, SheetOrgaoFallback, pages[1].Orgao)
	assert.Equal(t, "Maio / 2024", pages[0].Periodo)
}

func TestBuildSheetPages_InvalidInput(t *testing.T) {
	colab := []models.Colaborador{sheetColaborador("Ana", "001", jornadaPadrao)}

	tests := []struct {
		name string
		in   SheetInput
	}{
		{"no colaboradores", SheetInput{Mes: 1, Ano: 2024}},
		{"month zero", SheetInput{Colaboradores: colab, Mes: 0, Ano: 2024}},
		{"month thirteen", SheetInput{Colaboradores: colab, Mes: 13, Ano: 2024}},
		{"year zero", SheetInput{Colaboradores: colab, Mes: 1, Ano: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sheet, err := GenerateAttendanceSheet(tt.in)
			assert.Nil(t, sheet)
			assert.True(t, errors.Is(err, ErrInvalidInput))
		})
	}
}

func TestGenerateAttendanceSheet_RendersPDF(t *testing.T) {
	colabs := []models.Colaborador{
		sheetColaborador("João Conceição", "001", jornadaPadrao),
		sheetColaborador("Maria", "002", jornadaPadrao),
	}

	sheet, err := GenerateAttendanceSheet(SheetInput{Colaboradores: colabs, Mes: 3, Ano: 2024, MesLabel: "Março"})
	require.NoError(t, err)
	assert.Equal(t, "frequencia_março_2024.pdf", sheet.FileName)
	assert.True(t, bytes.HasPrefix(sheet.Content, []byte("%PDF-")))
	assert.Len(t, sheet.Pages, 2)
}
