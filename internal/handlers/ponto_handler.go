package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sjperalta/frequencia-api/internal/services"
)

// PontoHandler serves the public time clock
type PontoHandler struct {
	punchService *services.PunchService
}

func NewPontoHandler(punchService *services.PunchService) *PontoHandler {
	return &PontoHandler{punchService: punchService}
}

// RegistrarPontoRequest carries the time-clock credentials
type RegistrarPontoRequest struct {
	Matricula  string `json:"matricula"`
	SenhaPonto string `json:"senha_ponto"`
}

// @Summary Register punch
// @Description Records the next entrada/saida of the colaborador identified by matricula and punch password
// @Tags Ponto
// @Accept json
// @Produce json
// @Param request body RegistrarPontoRequest true "Punch credentials"
// @Success 200 {object} services.PunchResult
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 429 {object} map[string]string
// @Router /ponto/registrar [post]
func (h *PontoHandler) Registrar(c *gin.Context) {
	var req RegistrarPontoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Matrícula e senha são obrigatórios.")
		return
	}

	result, err := h.punchService.Registrar(c.Request.Context(), req.Matricula, req.SenhaPonto)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
