package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sjperalta/frequencia-api/internal/middleware"
	"github.com/sjperalta/frequencia-api/internal/services"
)

// RegistroHandler serves punch management for the back office
type RegistroHandler struct {
	registroService *services.RegistroService
	reportService   *services.ReportService
}

func NewRegistroHandler(registroService *services.RegistroService, reportService *services.ReportService) *RegistroHandler {
	return &RegistroHandler{registroService: registroService, reportService: reportService}
}

// registroFilter reads the shared listing filters. It answers 400 itself on bad input.
func registroFilter(c *gin.Context) (services.RegistroFilter, bool) {
	var f services.RegistroFilter
	var ok bool
	if f.ColaboradorID, ok = optionalUintQuery(c, "colaborador_id"); !ok {
		return f, false
	}
	if f.OrgaoID, ok = optionalUintQuery(c, "orgao_id"); !ok {
		return f, false
	}
	if f.LotacaoID, ok = optionalUintQuery(c, "lotacao_id"); !ok {
		return f, false
	}
	f.DataInicio = c.Query("data_inicio")
	f.DataFim = c.Query("data_fim")
	return f, true
}

// @Summary List punches
// @Description Punches newest first, filtered by colaborador, orgao, lotacao and date range
// @Tags RegistrosPonto
// @Produce json
// @Param colaborador_id query int false "Colaborador"
// @Param orgao_id query int false "Orgao"
// @Param lotacao_id query int false "Lotacao"
// @Param data_inicio query string false "Start date (YYYY-MM-DD)"
// @Param data_fim query string false "End date (YYYY-MM-DD)"
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(50)
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /registros_ponto [get]
func (h *RegistroHandler) Index(c *gin.Context) {
	filter, ok := registroFilter(c)
	if !ok {
		return
	}
	filter.Page, filter.PerPage = pageParams(c, 50)

	registros, total, err := h.registroService.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"registros":  registros,
		"pagination": pagination(filter.Page, filter.PerPage, total),
	})
}

// @Summary Daily punch summary
// @Description Punches grouped by colaborador and day with worked hours
// @Tags RegistrosPonto
// @Produce json
// @Param colaborador_id query int false "Colaborador"
// @Param orgao_id query int false "Orgao"
// @Param lotacao_id query int false "Lotacao"
// @Param data_inicio query string false "Start date (YYYY-MM-DD)"
// @Param data_fim query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /registros_ponto/resumo [get]
func (h *RegistroHandler) Resumo(c *gin.Context) {
	filter, ok := registroFilter(c)
	if !ok {
		return
	}
	resumo, err := h.registroService.Resumo(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"resumo": resumo})
}

// @Summary Export punch summary
// @Description Downloads the daily summary as CSV, XLSX or PDF
// @Tags RegistrosPonto
// @Produce octet-stream
// @Param format query string false "csv, xlsx or pdf" default(csv)
// @Param data_inicio query string false "Start date (YYYY-MM-DD)"
// @Param data_fim query string false "End date (YYYY-MM-DD)"
// @Success 200 {file} file
// @Security BearerAuth
// @Router /registros_ponto/export [get]
func (h *RegistroHandler) Export(c *gin.Context) {
	filter, ok := registroFilter(c)
	if !ok {
		return
	}
	export, err := h.reportService.ExportResumo(c.Request.Context(), filter, c.DefaultQuery("format", services.FormatCSV))
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+export.FileName+`"`)
	c.Data(http.StatusOK, export.ContentType, export.Content)
}

// @Summary Create punch
// @Description Inserts a punch manually; the day must remain a valid sequence
// @Tags RegistrosPonto
// @Accept json
// @Produce json
// @Param request body services.ManualRegistroRequest true "Punch"
// @Success 201 {object} models.RegistroPontoResponse
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /registros_ponto [post]
func (h *RegistroHandler) Create(c *gin.Context) {
	var req services.ManualRegistroRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Informe colaborador_id, data_registro, hora_registro e tipo.")
		return
	}
	registro, err := h.registroService.Create(c.Request.Context(), middleware.GetActor(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"registro": registro.ToResponse()})
}

// @Summary Update punch
// @Tags RegistrosPonto
// @Accept json
// @Produce json
// @Param registro_id path int true "Punch ID"
// @Param request body services.UpdateRegistroRequest true "Changes"
// @Success 200 {object} models.RegistroPontoResponse
// @Security BearerAuth
// @Router /registros_ponto/{registro_id} [put]
func (h *RegistroHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "registro_id")
	if !ok {
		return
	}
	var req services.UpdateRegistroRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, msgCorpoInvalido)
		return
	}
	registro, err := h.registroService.Update(c.Request.Context(), middleware.GetActor(c), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"registro": registro.ToResponse()})
}

// @Summary Delete punch
// @Tags RegistrosPonto
// @Param registro_id path int true "Punch ID"
// @Success 204
// @Security BearerAuth
// @Router /registros_ponto/{registro_id} [delete]
func (h *RegistroHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "registro_id")
	if !ok {
		return
	}
	if err := h.registroService.Delete(c.Request.Context(), middleware.GetActor(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete a day of punches
// @Tags RegistrosPonto
// @Produce json
// @Param colaborador_id query int true "Colaborador"
// @Param data query string true "Day (YYYY-MM-DD)"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /registros_ponto [delete]
func (h *RegistroHandler) DeleteDay(c *gin.Context) {
	colaboradorID, ok := optionalUintQuery(c, "colaborador_id")
	if !ok {
		return
	}
	data := c.Query("data")
	if colaboradorID == nil || data == "" {
		badRequest(c, "Informe colaborador_id e data.")
		return
	}
	removed, err := h.registroService.DeleteDay(c.Request.Context(), middleware.GetActor(c), *colaboradorID, data)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"removidos": removed})
}
