package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sjperalta/frequencia-api/internal/middleware"
	"github.com/sjperalta/frequencia-api/internal/services"
	"github.com/sjperalta/frequencia-api/internal/storage"
)

// FrequenciaIDHeader returns the id of the generation log row with the PDF
const FrequenciaIDHeader = "X-Frequencia-ID"

type FrequenciaHandler struct {
	frequenciaService *services.FrequenciaService
}

func NewFrequenciaHandler(frequenciaService *services.FrequenciaService) *FrequenciaHandler {
	return &FrequenciaHandler{frequenciaService: frequenciaService}
}

// @Summary Generate attendance sheets
// @Description Renders one A4 page per selected active colaborador and downloads the PDF
// @Tags Frequencias
// @Accept json
// @Produce application/pdf
// @Param request body services.GerarFrequenciaRequest true "Selection"
// @Success 200 {file} file
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /frequencias [post]
func (h *FrequenciaHandler) Generate(c *gin.Context) {
	var req services.GerarFrequenciaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Informe mês e ano.")
		return
	}
	sheet, registro, err := h.frequenciaService.Generate(c.Request.Context(), middleware.GetActor(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+sheet.FileName+`"`)
	c.Header(FrequenciaIDHeader, strconv.FormatUint(uint64(registro.ID), 10))
	c.Data(http.StatusOK, "application/pdf", sheet.Content)
}

// @Summary List generated sheets
// @Tags Frequencias
// @Produce json
// @Param mes query int false "Month"
// @Param ano query int false "Year"
// @Param orgao_id query int false "Orgao"
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(20)
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /frequencias [get]
func (h *FrequenciaHandler) Index(c *gin.Context) {
	page, perPage := pageParams(c, 20)
	list, total, err := h.frequenciaService.List(c.Request.Context(), services.FrequenciaFilter{
		Mes:     c.Query("mes"),
		Ano:     c.Query("ano"),
		OrgaoID: c.Query("orgao_id"),
		Page:    page,
		PerPage: perPage,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"frequencias": list,
		"pagination":  pagination(page, perPage, total),
	})
}

// @Summary Upload signed sheet
// @Description Stores the signed scan (PDF, JPG or PNG, up to 10 MB) of a generated sheet
// @Tags Frequencias
// @Accept multipart/form-data
// @Produce json
// @Param frequencia_id path int true "Frequencia ID"
// @Param file formData file true "Signed scan"
// @Success 200 {object} models.FrequenciaGerada
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /frequencias/{frequencia_id}/folha_assinada [post]
func (h *FrequenciaHandler) UploadSigned(c *gin.Context) {
	id, ok := pathID(c, "frequencia_id")
	if !ok {
		return
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, storage.MaxFileSize+1<<20)

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		badRequest(c, "Envie o arquivo no campo file.")
		return
	}
	defer file.Close()

	registro, err := h.frequenciaService.UploadSigned(c.Request.Context(), middleware.GetActor(c), id, services.SignedUpload{
		Reader:      file,
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"frequencia": registro})
}

// @Summary Download signed sheet
// @Tags Frequencias
// @Produce octet-stream
// @Param frequencia_id path int true "Frequencia ID"
// @Success 200 {file} file
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /frequencias/{frequencia_id}/folha_assinada [get]
func (h *FrequenciaHandler) DownloadSigned(c *gin.Context) {
	id, ok := pathID(c, "frequencia_id")
	if !ok {
		return
	}
	signed, err := h.frequenciaService.OpenSigned(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	defer signed.File.Close()

	info, err := signed.File.Stat()
	if err != nil {
		respondError(c, err)
		return
	}
	c.DataFromReader(http.StatusOK, info.Size(), signed.ContentType, signed.File, map[string]string{
		"Content-Disposition": `attachment; filename="` + signed.FileName + `"`,
	})
}
