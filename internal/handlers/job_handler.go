package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sjperalta/frequencia-api/internal/services"
)

type JobHandler struct {
	jobService *services.JobService
}

func NewJobHandler(jobSvc *services.JobService) *JobHandler {
	return &JobHandler{
		jobService: jobSvc,
	}
}

// Status returns the current worker status
// @Summary Get background job status
// @Description Statistics about background jobs (active, completed, failed, queue length, last runs)
// @Tags Jobs
// @Produce json
// @Security BearerAuth
// @Success 200 {object} jobs.WorkerStats
// @Router /jobs/status [get]
func (h *JobHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, h.jobService.GetStatus())
}

type DashboardHandler struct {
	dashboardService *services.DashboardService
}

func NewDashboardHandler(dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// @Summary Dashboard counters
// @Description Active and inactive colaboradores, orgaos, generated sheets and current month
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.DashboardStats
// @Router /dashboard [get]
func (h *DashboardHandler) Index(c *gin.Context) {
	stats, err := h.dashboardService.Get(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

type AuditHandler struct {
	auditService *services.AuditService
}

func NewAuditHandler(auditService *services.AuditService) *AuditHandler {
	return &AuditHandler{auditService: auditService}
}

// @Summary List Audit Logs
// @Description Audit entries newest first, 20 per page
// @Tags Audit
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param user_email query string false "Filter by email (substring)"
// @Param action_type query string false "Filter by action type"
// @Success 200 {object} services.AuditPage
// @Security BearerAuth
// @Router /audits [get]
func (h *AuditHandler) Index(c *gin.Context) {
	page, _ := pageParams(c, services.AuditPageSize)
	result, err := h.auditService.List(c.Request.Context(), page, c.Query("user_email"), c.Query("action_type"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
