package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/getsentry/sentry-go"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"
	"github.com/sjperalta/frequencia-api/internal/services"
	"github.com/sjperalta/frequencia-api/pkg/logger"
)

// Handlers holds all handler instances
type Handlers struct {
	Health      *HealthHandler
	Auth        *AuthHandler
	Ponto       *PontoHandler
	Orgao       *OrgaoHandler
	Lotacao     *LotacaoHandler
	Colaborador *ColaboradorHandler
	Registro    *RegistroHandler
	Frequencia  *FrequenciaHandler
	User        *UserHandler
	Audit       *AuditHandler
	Dashboard   *DashboardHandler
	Job         *JobHandler
}

// NewHandlers creates all handler instances
func NewHandlers(svcs *services.Services) *Handlers {
	return &Handlers{
		Health:      NewHealthHandler(),
		Auth:        NewAuthHandler(svcs.Auth),
		Ponto:       NewPontoHandler(svcs.Punch),
		Orgao:       NewOrgaoHandler(svcs.Orgao),
		Lotacao:     NewLotacaoHandler(svcs.Orgao),
		Colaborador: NewColaboradorHandler(svcs.Colaborador),
		Registro:    NewRegistroHandler(svcs.Registro, svcs.Report),
		Frequencia:  NewFrequenciaHandler(svcs.Frequencia),
		User:        NewUserHandler(svcs.User),
		Audit:       NewAuditHandler(svcs.Audit),
		Dashboard:   NewDashboardHandler(svcs.Dashboard),
		Job:         NewJobHandler(svcs.Job),
	}
}

// statusFor maps a service error category to its HTTP status
func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrInvalidInput), errors.Is(err, services.ErrDailyLimitExceeded):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrAuthenticationFailed):
		return http.StatusUnauthorized
	case errors.Is(err, services.ErrAuthorizationDenied):
		return http.StatusForbidden
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes {"error": message}. Internal errors are logged, reported
// to Sentry and replaced by a generic message.
func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logger.FromContext(c.Request.Context()).Error("request failed",
			slog.String("path", c.FullPath()),
			slog.String("error", err.Error()))
		if hub := sentrygin.GetHubFromContext(c); hub != nil {
			hub.CaptureException(err)
		} else {
			sentry.CaptureException(err)
		}
		_ = c.Error(err)
		c.JSON(status, gin.H{"error": services.ErrInternal.Error()})
		return
	}
	c.JSON(status, gin.H{"error": services.Message(err)})
}

// badRequest answers a malformed body or query
func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": message})
}

// pathID parses a positive numeric path parameter
func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		badRequest(c, "Identificador inválido.")
		return 0, false
	}
	return uint(id), true
}

// optionalUintQuery reads an optional numeric query parameter
func optionalUintQuery(c *gin.Context, name string) (*uint, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		badRequest(c, "Parâmetro inválido: "+name+".")
		return nil, false
	}
	id := uint(v)
	return &id, true
}

func pageParams(c *gin.Context, defaultPerPage int) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", strconv.Itoa(defaultPerPage)))
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 200 {
		perPage = defaultPerPage
	}
	return page, perPage
}

func pagination(page, perPage int, total int64) gin.H {
	return gin.H{
		"page":        page,
		"per_page":    perPage,
		"total":       total,
		"total_pages": (total + int64(perPage) - 1) / int64(perPage),
	}
}
