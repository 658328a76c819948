package services

import (
	"bytes"
	"context"
	"embed"
	"encoding/csv"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/SebastiaanKlippert/go-wkhtmltopdf"
	"github.com/sjperalta/frequencia-api/internal/models"
	"github.com/xuri/excelize/v2"
)

//go:embed templates/reports/*.html
var reportTemplates embed.FS

// Export formats
const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
	FormatPDF  = "pdf"
)

const reportTitle = "Registros de Ponto"

var resumoHeader = []string{"Nome", "Matrícula", "Data", "Entradas", "Saídas", "Horas Trabalhadas"}

// Export is a rendered report ready to be sent as an attachment
type Export struct {
	FileName    string
	ContentType string
	Content     []byte
}

// ReportService exports the punch summary
type ReportService struct {
	registros *RegistroService
	now       func() time.Time
}

func NewReportService(registros *RegistroService) *ReportService {
	return &ReportService{registros: registros, now: time.Now}
}

// ExportResumo renders the per-day punch summary in the requested format
func (s *ReportService) ExportResumo(ctx context.Context, filter RegistroFilter, format string) (*Export, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = FormatCSV
	}
	if format != FormatCSV && format != FormatXLSX && format != FormatPDF {
		return nil, invalidInput("Formato inválido: use csv, xlsx ou pdf.")
	}

	resumo, err := s.registros.Resumo(ctx, filter)
	if err != nil {
		return nil, err
	}

	var content []byte
	contentType := ""
	switch format {
	case FormatCSV:
		content, err = ResumoCSV(resumo)
		contentType = "text/csv; charset=utf-8"
	case FormatXLSX:
		content, err = ResumoXLSX(resumo)
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case FormatPDF:
		content, err = s.resumoPDF(resumo, filter)
		contentType = "application/pdf"
	}
	if err != nil {
		return nil, fmt.Errorf("%w: export %s: %v", ErrInternal, format, err)
	}

	return &Export{
		FileName:    reportFileName(filter, format),
		ContentType: contentType,
		Content:     content,
	}, nil
}

func reportFileName(filter RegistroFilter, ext string) string {
	inicio, fim := filter.DataInicio, filter.DataFim
	if inicio == "" {
		inicio = "inicio"
	}
	if fim == "" {
		fim = "hoje"
	}
	return fmt.Sprintf("registros-ponto-%s-a-%s.%s", inicio, fim, ext)
}

// resumoLine is one summary row formatted for display
type resumoLine struct {
	Nome      string
	Matricula string
	Data      string
	Entradas  string
	Saidas    string
	Horas     string
}

func resumoLines(resumo []models.PontoResumo) []resumoLine {
	lines := make([]resumoLine, len(resumo))
	for i, r := range resumo {
		lines[i] = resumoLine{
			Nome:      r.Nome,
			Matricula: r.Matricula,
			Data:      displayDate(r.Data),
			Entradas:  strings.Join(r.Entradas, "; "),
			Saidas:    strings.Join(r.Saidas, "; "),
			Horas:     r.HorasTrabalho,
		}
	}
	return lines
}

// displayDate turns YYYY-MM-DD into DD/MM/YYYY, leaving anything else untouched
func displayDate(data string) string {
	t, err := time.Parse(models.DateLayout, data)
	if err != nil {
		return data
	}
	return t.Format("02/01/2006")
}

// ResumoCSV writes the summary as CSV with a header row
func ResumoCSV(resumo []models.PontoResumo) ([]byte, error) {
	b := &bytes.Buffer{}
	w := csv.NewWriter(b)

	if err := w.Write(resumoHeader); err != nil {
		return nil, err
	}
	for _, l := range resumoLines(resumo) {
		if err := w.Write([]string{l.Nome, l.Matricula, l.Data, l.Entradas, l.Saidas, l.Horas}); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

// ResumoXLSX writes the summary to a single-sheet workbook
func ResumoXLSX(resumo []models.PontoResumo) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Registros"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#1E407C"}, Pattern: 1},
	})
	if err != nil {
		return nil, err
	}

	for i, h := range resumoHeader {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}
	_ = f.SetCellStyle(sheet, "A1", "F1", headerStyle)

	for i, l := range resumoLines(resumo) {
		row := i + 2
		for col, v := range []string{l.Nome, l.Matricula, l.Data, l.Entradas, l.Saidas, l.Horas} {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}

	_ = f.SetColWidth(sheet, "A", "A", 36)
	_ = f.SetColWidth(sheet, "B", "C", 14)
	_ = f.SetColWidth(sheet, "D", "E", 22)
	_ = f.SetColWidth(sheet, "F", "F", 18)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type resumoReport struct {
	Titulo   string
	Periodo  string
	GeradoEm string
	Linhas   []resumoLine
}

// renderResumoHTML executes the report template
func (s *ReportService) renderResumoHTML(resumo []models.PontoResumo, filter RegistroFilter) ([]byte, error) {
	tmpl, err := template.ParseFS(reportTemplates, "templates/reports/registros_ponto.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse report template: %w", err)
	}

	periodo := "todos os registros"
	switch {
	case filter.DataInicio != "" && filter.DataFim != "":
		periodo = displayDate(filter.DataInicio) + " a " + displayDate(filter.DataFim)
	case filter.DataInicio != "":
		periodo = "a partir de " + displayDate(filter.DataInicio)
	case filter.DataFim != "":
		periodo = "até " + displayDate(filter.DataFim)
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, resumoReport{
		Titulo:   reportTitle,
		Periodo:  periodo,
		GeradoEm: s.now().Format("02/01/2006 15:04"),
		Linhas:   resumoLines(resumo),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to execute report template: %w", err)
	}
	return buf.Bytes(), nil
}

func (s *ReportService) resumoPDF(resumo []models.PontoResumo, filter RegistroFilter) ([]byte, error) {
	html, err := s.renderResumoHTML(resumo, filter)
	if err != nil {
		return nil, err
	}

	pdfg, err := wkhtmltopdf.NewPDFGenerator()
	if err != nil {
		return nil, fmt.Errorf("failed to create pdf generator: %w", err)
	}
	pdfg.Dpi.Set(300)
	pdfg.Orientation.Set(wkhtmltopdf.OrientationLandscape)
	pdfg.PageSize.Set(wkhtmltopdf.PageSizeA4)

	page := wkhtmltopdf.NewPageReader(bytes.NewReader(html))
	pdfg.AddPage(page)

	if err := pdfg.Create(); err != nil {
		return nil, fmt.Errorf("failed to create pdf: %w", err)
	}
	return pdfg.Bytes(), nil
}
