package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sjperalta/frequencia-api/internal/middleware"
	"github.com/sjperalta/frequencia-api/internal/services"
)

const msgCorpoInvalido = "Corpo da requisição inválido."

type OrgaoHandler struct {
	orgaoService *services.OrgaoService
}

func NewOrgaoHandler(orgaoService *services.OrgaoService) *OrgaoHandler {
	return &OrgaoHandler{orgaoService: orgaoService}
}

// @Summary List Orgaos
// @Tags Orgaos
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /orgaos [get]
func (h *OrgaoHandler) Index(c *gin.Context) {
	orgaos, err := h.orgaoService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orgaos": orgaos})
}

// @Summary Get Orgao
// @Tags Orgaos
// @Produce json
// @Param orgao_id path int true "Orgao ID"
// @Success 200 {object} models.Orgao
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /orgaos/{orgao_id} [get]
func (h *OrgaoHandler) Show(c *gin.Context) {
	id, ok := pathID(c, "orgao_id")
	if !ok {
		return
	}
	orgao, err := h.orgaoService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orgao": orgao})
}

// @Summary Create Orgao
// @Tags Orgaos
// @Accept json
// @Produce json
// @Param request body services.OrgaoRequest true "Orgao"
// @Success 201 {object} models.Orgao
// @Failure 400 {object} map[string]string
// @Security BearerAuth
// @Router /orgaos [post]
func (h *OrgaoHandler) Create(c *gin.Context) {
	var req services.OrgaoRequest
	if err := BindNestedOrFlat(c, "orgao", &req); err != nil {
		badRequest(c, msgCorpoInvalido)
		return
	}
	orgao, err := h.orgaoService.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"orgao": orgao})
}

// @Summary Update Orgao
// @Tags Orgaos
// @Accept json
// @Produce json
// @Param orgao_id path int true "Orgao ID"
// @Param request body services.OrgaoRequest true "Orgao"
// @Success 200 {object} models.Orgao
// @Security BearerAuth
// @Router /orgaos/{orgao_id} [put]
func (h *OrgaoHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "orgao_id")
	if !ok {
		return
	}
	var req services.OrgaoRequest
	if err := BindNestedOrFlat(c, "orgao", &req); err != nil {
		badRequest(c, msgCorpoInvalido)
		return
	}
	orgao, err := h.orgaoService.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orgao": orgao})
}

// @Summary Delete Orgao
// @Tags Orgaos
// @Param orgao_id path int true "Orgao ID"
// @Success 204
// @Failure 409 {object} map[string]string
// @Security BearerAuth
// @Router /orgaos/{orgao_id} [delete]
func (h *OrgaoHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "orgao_id")
	if !ok {
		return
	}
	if err := h.orgaoService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type LotacaoHandler struct {
	orgaoService *services.OrgaoService
}

func NewLotacaoHandler(orgaoService *services.OrgaoService) *LotacaoHandler {
	return &LotacaoHandler{orgaoService: orgaoService}
}

// @Summary List Lotacoes
// @Tags Lotacoes
// @Produce json
// @Param orgao_id query int false "Filter by orgao"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /lotacoes [get]
func (h *LotacaoHandler) Index(c *gin.Context) {
	orgaoID, ok := optionalUintQuery(c, "orgao_id")
	if !ok {
		return
	}
	lotacoes, err := h.orgaoService.ListLotacoes(c.Request.Context(), orgaoID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"lotacoes": lotacoes})
}

// @Summary Get Lotacao
// @Tags Lotacoes
// @Produce json
// @Param lotacao_id path int true "Lotacao ID"
// @Success 200 {object} models.Lotacao
// @Security BearerAuth
// @Router /lotacoes/{lotacao_id} [get]
func (h *LotacaoHandler) Show(c *gin.Context) {
	id, ok := pathID(c, "lotacao_id")
	if !ok {
		return
	}
	lotacao, err := h.orgaoService.GetLotacao(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"lotacao": lotacao})
}

// @Summary Create Lotacao
// @Tags Lotacoes
// @Accept json
// @Produce json
// @Param request body services.LotacaoRequest true "Lotacao"
// @Success 201 {object} models.Lotacao
// @Security BearerAuth
// @Router /lotacoes [post]
func (h *LotacaoHandler) Create(c *gin.Context) {
	var req services.LotacaoRequest
	if err := BindNestedOrFlat(c, "lotacao", &req); err != nil {
		badRequest(c, msgCorpoInvalido)
		return
	}
	lotacao, err := h.orgaoService.CreateLotacao(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"lotacao": lotacao})
}

// @Summary Update Lotacao
// @Tags Lotacoes
// @Accept json
// @Produce json
// @Param lotacao_id path int true "Lotacao ID"
// @Param request body services.LotacaoRequest true "Lotacao"
// @Success 200 {object} models.Lotacao
// @Security BearerAuth
// @Router /lotacoes/{lotacao_id} [put]
func (h *LotacaoHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "lotacao_id")
	if !ok {
		return
	}
	var req services.LotacaoRequest
	if err := BindNestedOrFlat(c, "lotacao", &req); err != nil {
		badRequest(c, msgCorpoInvalido)
		return
	}
	lotacao, err := h.orgaoService.UpdateLotacao(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"lotacao": lotacao})
}

// @Summary Delete Lotacao
// @Tags Lotacoes
// @Param lotacao_id path int true "Lotacao ID"
// @Success 204
// @Security BearerAuth
// @Router /lotacoes/{lotacao_id} [delete]
func (h *LotacaoHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "lotacao_id")
	if !ok {
		return
	}
	if err := h.orgaoService.DeleteLotacao(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type ColaboradorHandler struct {
	colaboradorService *services.ColaboradorService
}

func NewColaboradorHandler(colaboradorService *services.ColaboradorService) *ColaboradorHandler {
	return &ColaboradorHandler{colaboradorService: colaboradorService}
}

// @Summary List Colaboradores
// @Tags Colaboradores
// @Produce json
// @Param orgao_id query int false "Filter by orgao"
// @Param lotacao_id query int false "Filter by lotacao"
// @Param apenas_ativos query bool false "Only active colaboradores"
// @Param search query string false "Search by name or matricula"
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(50)
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /colaboradores [get]
func (h *ColaboradorHandler) Index(c *gin.Context) {
	orgaoID, ok := optionalUintQuery(c, "orgao_id")
	if !ok {
		return
	}
	lotacaoID, ok := optionalUintQuery(c, "lotacao_id")
	if !ok {
		return
	}
	apenasAtivos, _ := strconv.ParseBool(c.Query("apenas_ativos"))
	page, perPage := pageParams(c, 50)

	colaboradores, total, err := h.colaboradorService.List(c.Request.Context(), services.ColaboradorFilter{
		OrgaoID:      orgaoID,
		LotacaoID:    lotacaoID,
		ApenasAtivos: apenasAtivos,
		Search:       c.Query("search"),
		Page:         page,
		PerPage:      perPage,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"colaboradores": colaboradores,
		"pagination":    pagination(page, perPage, total),
	})
}

// @Summary Get Colaborador
// @Tags Colaboradores
// @Produce json
// @Param colaborador_id path int true "Colaborador ID"
// @Success 200 {object} models.ColaboradorResponse
// @Security BearerAuth
// @Router /colaboradores/{colaborador_id} [get]
func (h *ColaboradorHandler) Show(c *gin.Context) {
	id, ok := pathID(c, "colaborador_id")
	if !ok {
		return
	}
	colaborador, err := h.colaboradorService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"colaborador": colaborador.ToResponse()})
}

// @Summary Create Colaborador
// @Tags Colaboradores
// @Accept json
// @Produce json
// @Param request body services.ColaboradorRequest true "Colaborador"
// @Success 201 {object} models.ColaboradorResponse
// @Failure 409 {object} map[string]string
// @Security BearerAuth
// @Router /colaboradores [post]
func (h *ColaboradorHandler) Create(c *gin.Context) {
	var req services.ColaboradorRequest
	if err := BindNestedOrFlat(c, "colaborador", &req); err != nil {
		badRequest(c, msgCorpoInvalido)
		return
	}
	colaborador, err := h.colaboradorService.Create(c.Request.Context(), middleware.GetActor(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"colaborador": colaborador.ToResponse()})
}

// @Summary Update Colaborador
// @Tags Colaboradores
// @Accept json
// @Produce json
// @Param colaborador_id path int true "Colaborador ID"
// @Param request body services.ColaboradorRequest true "Colaborador"
// @Success 200 {object} models.ColaboradorResponse
// @Security BearerAuth
// @Router /colaboradores/{colaborador_id} [put]
func (h *ColaboradorHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "colaborador_id")
	if !ok {
		return
	}
	var req services.ColaboradorRequest
	if err := BindNestedOrFlat(c, "colaborador", &req); err != nil {
		badRequest(c, msgCorpoInvalido)
		return
	}
	colaborador, err := h.colaboradorService.Update(c.Request.Context(), middleware.GetActor(c), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"colaborador": colaborador.ToResponse()})
}

type toggleAtivoRequest struct {
	Ativo *bool `json:"ativo" binding:"required"`
}

// @Summary Toggle Colaborador status
// @Tags Colaboradores
// @Accept json
// @Produce json
// @Param colaborador_id path int true "Colaborador ID"
// @Success 200 {object} models.ColaboradorResponse
// @Security BearerAuth
// @Router /colaboradores/{colaborador_id}/ativo [patch]
func (h *ColaboradorHandler) SetAtivo(c *gin.Context) {
	id, ok := pathID(c, "colaborador_id")
	if !ok {
		return
	}
	var req toggleAtivoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Informe o campo ativo.")
		return
	}
	colaborador, err := h.colaboradorService.SetAtivo(c.Request.Context(), middleware.GetActor(c), id, *req.Ativo)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"colaborador": colaborador.ToResponse()})
}

type senhaPontoRequest struct {
	SenhaPonto string `json:"senha_ponto" binding:"required"`
}

// @Summary Set punch password
// @Tags Colaboradores
// @Accept json
// @Param colaborador_id path int true "Colaborador ID"
// @Success 204
// @Security BearerAuth
// @Router /colaboradores/{colaborador_id}/senha_ponto [put]
func (h *ColaboradorHandler) SetSenhaPonto(c *gin.Context) {
	id, ok := pathID(c, "colaborador_id")
	if !ok {
		return
	}
	var req senhaPontoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Informe a senha de ponto.")
		return
	}
	if err := h.colaboradorService.SetSenhaPonto(c.Request.Context(), middleware.GetActor(c), id, req.SenhaPonto); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Delete Colaborador
// @Tags Colaboradores
// @Param colaborador_id path int true "Colaborador ID"
// @Success 204
// @Failure 409 {object} map[string]string
// @Security BearerAuth
// @Router /colaboradores/{colaborador_id} [delete]
func (h *ColaboradorHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "colaborador_id")
	if !ok {
		return
	}
	if err := h.colaboradorService.Delete(c.Request.Context(), middleware.GetActor(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
