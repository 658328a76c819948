package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sjperalta/frequencia-api/internal/middleware"
	"github.com/sjperalta/frequencia-api/internal/repository"
	"github.com/sjperalta/frequencia-api/internal/services"
)

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// @Summary List Users
// @Description Get a paginated list of back-office users with their role
// @Tags Users
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page" default(20)
// @Param search_term query string false "Search by name or email"
// @Param role query string false "Filter by role"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /users [get]
func (h *UserHandler) Index(c *gin.Context) {
	query := repository.NewListQuery()
	query.Page, query.PerPage = pageParams(c, 20)
	query.Search = c.Query("search_term")
	query.Filters["role"] = c.Query("role")

	users, total, err := h.userService.List(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"users":      users,
		"pagination": pagination(query.Page, query.PerPage, total),
	})
}

// @Summary Get User
// @Tags Users
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {object} models.UserResponse
// @Failure 404 {object} map[string]string
// @Security BearerAuth
// @Router /users/{user_id} [get]
func (h *UserHandler) Show(c *gin.Context) {
	id, ok := pathID(c, "user_id")
	if !ok {
		return
	}
	user, err := h.userService.FindByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user.ToResponse()})
}

// @Summary Create or edit User
// @Description action "create" (default) provisions a user; action "edit" changes nome, email, password, role, departamento or ativo
// @Tags Users
// @Accept json
// @Produce json
// @Param request body services.UserRequest true "User Data"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Security BearerAuth
// @Router /users [post]
func (h *UserHandler) Manage(c *gin.Context) {
	var req services.UserRequest
	if err := BindNestedOrFlat(c, "user", &req); err != nil {
		badRequest(c, msgCorpoInvalido)
		return
	}

	user, err := h.userService.Manage(c.Request.Context(), middleware.GetActor(c), req)
	if err != nil {
		respondError(c, err)
		return
	}

	status := http.StatusCreated
	if req.Action == services.UserActionEdit {
		status = http.StatusOK
	}
	c.JSON(status, gin.H{
		"success": true,
		"user_id": user.ID,
		"user":    user.ToResponse(),
	})
}

type changeRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

// @Summary Change User role
// @Tags Users
// @Accept json
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {object} models.UserResponse
// @Failure 403 {object} map[string]string
// @Security BearerAuth
// @Router /users/{user_id}/role [put]
func (h *UserHandler) ChangeRole(c *gin.Context) {
	id, ok := pathID(c, "user_id")
	if !ok {
		return
	}
	var req changeRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Informe o papel.")
		return
	}
	user, err := h.userService.ChangeRole(c.Request.Context(), middleware.GetActor(c), id, req.Role)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user.ToResponse()})
}

// @Summary Delete User
// @Tags Users
// @Param user_id path int true "User ID"
// @Success 204
// @Failure 403 {object} map[string]string
// @Security BearerAuth
// @Router /users/{user_id} [delete]
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "user_id")
	if !ok {
		return
	}
	if err := h.userService.Delete(c.Request.Context(), middleware.GetActor(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
