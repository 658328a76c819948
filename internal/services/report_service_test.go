package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"
	"time"

	"github.com/sjperalta/frequencia-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleResumo() []models.PontoResumo {
	return []models.PontoResumo{
		{
			Nome:          "Ana Souza",
			Matricula:     "12345",
			Data:          "2024-03-11",
			Entradas:      []string{"08:00:00", "14:00:00"},
			Saidas:        []string{"12:00:00", "18:30:00"},
			HorasTrabalho: "8h30m",
		},
		{
			Nome:          "Bruno Lima",
			Matricula:     "67890",
			Data:          "2024-03-10",
			Entradas:      []string{"08:15:00"},
			Saidas:        []string{},
			HorasTrabalho: "0h00m",
		},
	}
}

func TestResumoCSV(t *testing.T) {
	content, err := ResumoCSV(sampleResumo())
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(content)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{"Nome", "Matrícula", "Data", "Entradas", "Saídas", "Horas Trabalhadas"}, records[0])
	assert.Equal(t, []string{"Ana Souza", "12345", "11/03/2024", "08:00:00; 14:00:00", "12:00:00; 18:30:00", "8h30m"}, records[1])
	assert.Equal(t, "", records[2][4])
}

func TestResumoCSV_Empty(t *testing.T) {
	content, err := ResumoCSV(nil)
	require.NoError(t, err)
	assert.Equal(t, "Nome,Matrícula,Data,Entradas,Saídas,Horas Trabalhadas\n", string(content))
}

func TestResumoXLSX(t *testing.T) {
	content, err := ResumoXLSX(sampleResumo())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(content))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Registros")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Horas Trabalhadas", rows[0][5])
	assert.Equal(t, "Bruno Lima", rows[2][0])
	assert.Equal(t, "10/03/2024", rows[2][2])
}

func TestReportService_RenderHTML(t *testing.T) {
	svc := &ReportService{now: func() time.Time { return time.Date(2024, 3, 12, 9, 30, 0, 0, time.UTC) }}

	html, err := svc.renderResumoHTML(sampleResumo(), RegistroFilter{DataInicio: "2024-03-01", DataFim: "2024-03-31"})
	require.NoError(t, err)

	out := string(html)
	assert.Contains(t, out, "Período: 01/03/2024 a 31/03/2024")
	assert.Contains(t, out, "<td>Ana Souza</td>")
	assert.Contains(t, out, "8h30m")
	assert.Contains(t, out, "Gerado em 12/03/2024 09:30")

	html, err = svc.renderResumoHTML(nil, RegistroFilter{})
	require.NoError(t, err)
	assert.Contains(t, string(html), "Nenhum registro encontrado.")
}

func TestReportService_ExportResumo(t *testing.T) {
	registros, repo, _ := newTestRegistroService(t)
	seedDay(t, repo, registros.loc, "2024-03-11", "08:00:00", "12:00:00")
	svc := NewReportService(registros)

	export, err := svc.ExportResumo(context.Background(), RegistroFilter{DataInicio: "2024-03-01", DataFim: "2024-03-31"}, "CSV")
	require.NoError(t, err)
	assert.Equal(t, "registros-ponto-2024-03-01-a-2024-03-31.csv", export.FileName)
	assert.Equal(t, "text/csv; charset=utf-8", export.ContentType)
	assert.Contains(t, string(export.Content), "4h00m")

	export, err = svc.ExportResumo(context.Background(), RegistroFilter{}, FormatXLSX)
	require.NoError(t, err)
	assert.Equal(t, "registros-ponto-inicio-a-hoje.xlsx", export.FileName)

	_, err = svc.ExportResumo(context.Background(), RegistroFilter{}, "docx")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
