package services

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/sjperalta/frequencia-api/internal/models"
)

// Sheet layout constants
const (
	SheetTitle         = "FOLHA DE FREQUÊNCIA MENSAL"
	SheetOrgaoFallback = "Órgão não informado"
	WeekendPlaceholder = "-"
	SheetColumnCount   = 10
)

// SheetColumns are the day table headers. Each time column is followed by its signature cell.
var SheetColumns = [SheetColumnCount]string{
	"Dia", "Sem", "Ent. M", "Ass.", "Saí. M", "Ass.", "Ent. T", "Ass.", "Saí. T", "Ass.",
}

var weekdayAbbr = [...]string{"Dom", "Seg", "Ter", "Qua", "Qui", "Sex", "Sáb"}

var sheetColumnWidths = [SheetColumnCount]float64{10, 10, 15, 20, 15, 20, 15, 20, 15, 20}

// SheetInput holds everything needed to render one month of attendance sheets
type SheetInput struct {
	Colaboradores []models.Colaborador
	Mes           int
	Ano           int
	MesLabel      string
	// OrgaoNome is used for colaboradores without an orgao of their own
	OrgaoNome string
}

// SheetRow is one day of the table
type SheetRow struct {
	Dia     int
	Semana  string
	Weekend bool
	Cells   [SheetColumnCount]string
}

// SheetPage is the layout of one colaborador's page
type SheetPage struct {
	Orgao     string
	Periodo   string
	Nome      string
	Matricula string
	Cargo     string
	Lotacao   string
	Jornada   string
	Rows      []SheetRow
}

// AttendanceSheet is the rendered document
type AttendanceSheet struct {
	FileName string
	Content  []byte
	Pages    []SheetPage
}

// DaysInMonth returns the number of days of month/year, leap years included
func DaysInMonth(mes, ano int) int {
	// day 0 of the next month is the last day of this one
	return time.Date(ano, time.Month(mes)+1, 0, 12, 0, 0, 0, time.UTC).Day()
}

// BuildSheetPages computes the page layouts without rendering them
func BuildSheetPages(in SheetInput) ([]SheetPage, error) {
	if len(in.Colaboradores) == 0 {
		return nil, invalidInput("Selecione ao menos um colaborador.")
	}
	if in.Mes < 1 || in.Mes > 12 {
		return nil, invalidInput("Mês inválido.")
	}
	if in.Ano < 1 {
		return nil, invalidInput("Ano inválido.")
	}

	label := in.MesLabel
	if label == "" {
		label = models.MesLabel(in.Mes)
	}
	days := DaysInMonth(in.Mes, in.Ano)

	pages := make([]SheetPage, 0, len(in.Colaboradores))
	for i := range in.Colaboradores {
		c := &in.Colaboradores[i]

		page := SheetPage{
			Orgao:     sheetOrgaoName(c, in.OrgaoNome),
			Periodo:   fmt.Sprintf("%s / %d", label, in.Ano),
			Nome:      c.NomeCompleto,
			Matricula: c.Matricula,
			Cargo:     c.Cargo,
			Jornada:   c.JornadaLabel(),
			Rows:      make([]SheetRow, 0, days),
		}
		if c.Lotacao != nil {
			page.Lotacao = c.Lotacao.Nome
		}

		jornada := c.Jornada()
		for day := 1; day <= days; day++ {
			weekday := time.Date(in.Ano, time.Month(in.Mes), day, 12, 0, 0, 0, time.UTC).Weekday()
			weekend := weekday == time.Saturday || weekday == time.Sunday

			row := SheetRow{Dia: day, Semana: weekdayAbbr[weekday], Weekend: weekend}
			row.Cells[0] = fmt.Sprintf("%02d", day)
			row.Cells[1] = row.Semana
			for slot := 0; slot < 4; slot++ {
				// time cells sit at 2, 4, 6, 8; signature cells stay blank
				if weekend {
					row.Cells[2+slot*2] = WeekendPlaceholder
				} else {
					row.Cells[2+slot*2] = jornada[slot]
				}
			}
			page.Rows = append(page.Rows, row)
		}

		pages = append(pages, page)
	}
	return pages, nil
}

func sheetOrgaoName(c *models.Colaborador, fallback string) string {
	if c.Orgao != nil && c.Orgao.Nome != "" {
		return c.Orgao.Nome
	}
	if fallback != "" {
		return fallback
	}
	return SheetOrgaoFallback
}

// GenerateAttendanceSheet renders one A4 page per colaborador, in input order
func GenerateAttendanceSheet(in SheetInput) (*AttendanceSheet, error) {
	pages, err := BuildSheetPages(in)
	if err != nil {
		return nil, err
	}

	content, err := renderSheetPDF(pages)
	if err != nil {
		return nil, fmt.Errorf("%w: render attendance sheet: %v", ErrInternal, err)
	}

	label := in.MesLabel
	if label == "" {
		label = models.MesLabel(in.Mes)
	}
	return &AttendanceSheet{
		FileName: models.FrequenciaFileName(label, in.Ano),
		Content:  content,
		Pages:    pages,
	}, nil
}

const (
	sheetMargin    = 15.0
	sheetRowHeight = 5.0
	signatureWidth = 60.0
)

func renderSheetPDF(pages []SheetPage) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(sheetMargin, sheetMargin, sheetMargin)
	// every colaborador gets exactly one page
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetTitle(SheetTitle, true)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pageWidth, _ := pdf.GetPageSize()
	contentWidth := pageWidth - 2*sheetMargin

	for _, page := range pages {
		pdf.AddPage()
		pdf.SetTextColor(0, 0, 0)

		pdf.SetFont("Helvetica", "B", 12)
		pdf.SetXY(sheetMargin, 11)
		pdf.CellFormat(contentWidth, 6, tr(SheetTitle), "", 1, "C", false, 0, "")

		pdf.SetFont("Helvetica", "", 10)
		pdf.SetXY(sheetMargin, 21)
		pdf.CellFormat(contentWidth/2, 6, tr("Órgão: "+page.Orgao), "", 0, "L", false, 0, "")
		pdf.CellFormat(contentWidth/2, 6, tr("Período: "+page.Periodo), "", 1, "R", false, 0, "")

		y := 33.0
		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetXY(sheetMargin, y)
		pdf.CellFormat(contentWidth, 5, "DADOS DO SERVIDOR", "", 1, "L", false, 0, "")
		y += 6

		pdf.SetFont("Helvetica", "", 9)
		pdf.SetXY(sheetMargin, y)
		pdf.CellFormat(contentWidth, 5, tr("Nome: "+page.Nome), "", 1, "L", false, 0, "")
		y += 5
		pdf.SetXY(sheetMargin, y)
		pdf.CellFormat(contentWidth/2, 5, tr("Matrícula: "+page.Matricula), "", 0, "L", false, 0, "")
		pdf.CellFormat(contentWidth/2, 5, tr("Cargo: "+page.Cargo), "", 1, "L", false, 0, "")
		y += 5
		if page.Lotacao != "" {
			pdf.SetXY(sheetMargin, y)
			pdf.CellFormat(contentWidth, 5, tr("Lotação: "+page.Lotacao), "", 1, "L", false, 0, "")
			y += 5
		}
		pdf.SetXY(sheetMargin, y)
		pdf.CellFormat(contentWidth, 5, tr("Jornada: "+page.Jornada), "", 1, "L", false, 0, "")
		y += 8

		pdf.SetXY(sheetMargin, y)
		drawSheetTable(pdf, tr, page.Rows)

		signatureY := pdf.GetY() + 20
		pdf.SetFont("Helvetica", "", 8)
		pdf.SetTextColor(0, 0, 0)
		pdf.SetDrawColor(0, 0, 0)

		pdf.Line(sheetMargin, signatureY, sheetMargin+signatureWidth, signatureY)
		pdf.SetXY(sheetMargin, signatureY+1)
		pdf.CellFormat(signatureWidth, 4, "Assinatura do Servidor", "", 0, "C", false, 0, "")

		right := pageWidth - sheetMargin
		pdf.Line(right-signatureWidth, signatureY, right, signatureY)
		pdf.SetXY(right-signatureWidth, signatureY+1)
		pdf.CellFormat(signatureWidth, 4, "Assinatura da Chefia Imediata", "", 0, "C", false, 0, "")

		pdf.SetXY(sheetMargin, signatureY+12)
		pdf.CellFormat(contentWidth, 4, "Data: ____/____/________", "", 0, "C", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func drawSheetTable(pdf *gofpdf.Fpdf, tr func(string) string, rows []SheetRow) {
	pdf.SetFont("Helvetica", "B", 7)
	pdf.SetFillColor(30, 64, 124)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetDrawColor(180, 180, 180)
	for i, h := range SheetColumns {
		pdf.CellFormat(sheetColumnWidths[i], sheetRowHeight, tr(h), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 7)
	for _, row := range rows {
		if row.Weekend {
			pdf.SetFillColor(240, 240, 240)
			pdf.SetTextColor(150, 150, 150)
		} else {
			pdf.SetFillColor(255, 255, 255)
			pdf.SetTextColor(0, 0, 0)
		}
		pdf.SetX(sheetMargin)
		for i, cell := range row.Cells {
			pdf.CellFormat(sheetColumnWidths[i], sheetRowHeight, tr(cell), "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
	}
}
