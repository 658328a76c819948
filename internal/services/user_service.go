package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/sjperalta/frequencia-api/internal/jobs"
	"github.com/sjperalta/frequencia-api/internal/models"
	"github.com/sjperalta/frequencia-api/internal/repository"
	"github.com/sjperalta/frequencia-api/pkg/logger"
)

// User management actions
const (
	UserActionCreate = "create"
	UserActionEdit   = "edit"
)

const (
	minPasswordLength = 6

	msgSuperAdminOnly   = "Acesso negado. Apenas Super Admins podem gerenciar usuários."
	msgEmailDuplicado   = "Este email já está cadastrado."
	msgSenhaCurta       = "A senha deve ter pelo menos 6 caracteres."
	msgSenhaLonga       = "A senha deve ter no máximo 72 bytes."
	msgPapelInvalido    = "Papel inválido. Use 'admin', 'gestor' ou 'user'."
	msgSuperAdminIntoca = "O papel de um Super Admin não pode ser alterado."
)

// UserRequest is the body of the user management endpoint. Action defaults to create.
type UserRequest struct {
	Action       string  `json:"action"`
	UserID       uint    `json:"user_id"`
	Email        string  `json:"email"`
	Password     string  `json:"password"`
	Nome         string  `json:"nome"`
	Role         string  `json:"role"`
	Departamento *string `json:"departamento"`
	Ativo        *bool   `json:"ativo"`
}

// UserService handles back-office accounts
type UserService struct {
	repo   repository.UserRepository
	worker *jobs.Worker
	email  *EmailService
	audit  *AuditService
}

func NewUserService(repo repository.UserRepository, worker *jobs.Worker, email *EmailService, audit *AuditService) *UserService {
	return &UserService{
		repo:   repo,
		worker: worker,
		email:  email,
		audit:  audit,
	}
}

func (s *UserService) FindByID(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	return user, fromRepo(err)
}

func (s *UserService) List(ctx context.Context, query *repository.ListQuery) ([]models.UserResponse, int64, error) {
	users, total, err := s.repo.List(ctx, query)
	if err != nil {
		return nil, 0, fromRepo(err)
	}
	out := make([]models.UserResponse, len(users))
	for i := range users {
		out[i] = users[i].ToResponse()
	}
	return out, total, nil
}

// Manage dispatches on the request action
func (s *UserService) Manage(ctx context.Context, actor *Actor, req UserRequest) (*models.User, error) {
	switch strings.ToLower(strings.TrimSpace(req.Action)) {
	case "", UserActionCreate:
		return s.Create(ctx, actor, req)
	case UserActionEdit:
		return s.Edit(ctx, actor, req)
	default:
		return nil, invalidInput("Ação inválida. Use 'create' ou 'edit'.")
	}
}

// Create provisions a user with a single role
func (s *UserService) Create(ctx context.Context, actor *Actor, req UserRequest) (*models.User, error) {
	if err := requireSuperAdmin(actor); err != nil {
		return nil, err
	}

	email := normalizeEmail(req.Email)
	nome := strings.TrimSpace(req.Nome)
	if email == "" || req.Password == "" || nome == "" || req.Role == "" {
		return nil, invalidInput("Campos obrigatórios: email, password, nome, role")
	}
	role, err := assignableRole(req.Role)
	if err != nil {
		return nil, err
	}
	if err := validatePassword(req.Password); err != nil {
		return nil, err
	}

	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return nil, newError(ErrConflict, msgEmailDuplicado)
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, fromRepo(err)
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return nil, newError(ErrInternal, "Não foi possível definir a senha.")
	}

	user := &models.User{
		Email:             email,
		EncryptedPassword: hash,
		NomeCompleto:      nome,
		Departamento:      req.Departamento,
		Ativo:             true,
	}
	if err := s.repo.Create(ctx, user, role); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, newError(ErrConflict, msgEmailDuplicado)
		}
		return nil, fromRepo(err)
	}
	user.Role = &models.UserRole{UserID: user.ID, Role: role}

	s.audit.LogAsync(actor, models.AuditUserCreated, models.EntityUser, idString(user.ID), map[string]any{
		"created_email": email,
		"role":          role,
		"nome":          nome,
		"departamento":  req.Departamento,
	})
	s.sendWelcome(user)
	return user, nil
}

// Edit changes any of nome, email, password, role, departamento or ativo.
// Audit details carry {field: {old, new}} with passwords redacted.
func (s *UserService) Edit(ctx context.Context, actor *Actor, req UserRequest) (*models.User, error) {
	if err := requireSuperAdmin(actor); err != nil {
		return nil, err
	}
	if req.UserID == 0 {
		return nil, invalidInput("user_id é obrigatório.")
	}

	user, err := s.repo.FindByID(ctx, req.UserID)
	if err != nil {
		return nil, fromRepo(err)
	}

	changes := map[string]any{}

	if nome := strings.TrimSpace(req.Nome); nome != "" && nome != user.NomeCompleto {
		changes["nome"] = FieldChange{Old: user.NomeCompleto, New: nome}
		user.NomeCompleto = nome
	}

	if email := normalizeEmail(req.Email); email != "" && email != user.Email {
		if _, err := s.repo.FindByEmail(ctx, email); err == nil {
			return nil, newError(ErrConflict, msgEmailDuplicado)
		} else if !errors.Is(err, repository.ErrNotFound) {
			return nil, fromRepo(err)
		}
		changes["email"] = FieldChange{Old: user.Email, New: email}
		user.Email = email
	}

	if req.Password != "" {
		if err := validatePassword(req.Password); err != nil {
			return nil, err
		}
		hash, err := HashPassword(req.Password)
		if err != nil {
			return nil, newError(ErrInternal, "Não foi possível definir a senha.")
		}
		user.EncryptedPassword = hash
		changes["password"] = FieldChange{Old: models.RedactedValue, New: models.RedactedValue}
	}

	if req.Departamento != nil && stringValue(req.Departamento) != stringValue(user.Departamento) {
		changes["departamento"] = FieldChange{Old: stringValue(user.Departamento), New: *req.Departamento}
		user.Departamento = optionalString(strings.TrimSpace(*req.Departamento))
	}

	if req.Ativo != nil && *req.Ativo != user.Ativo {
		changes["ativo"] = FieldChange{Old: user.Ativo, New: *req.Ativo}
		user.Ativo = *req.Ativo
	}

	var newRole models.Role
	if req.Role != "" {
		role, err := assignableRole(req.Role)
		if err != nil {
			return nil, err
		}
		if role != user.CurrentRole() {
			if user.CurrentRole() == models.RoleSuperAdmin {
				return nil, newError(ErrAuthorizationDenied, msgSuperAdminIntoca)
			}
			changes["role"] = FieldChange{Old: user.CurrentRole(), New: role}
			newRole = role
		}
	}

	if len(changes) == 0 {
		return user, nil
	}

	if err := s.repo.Update(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, newError(ErrConflict, msgEmailDuplicado)
		}
		return nil, fromRepo(err)
	}
	if newRole != "" {
		if err := s.repo.ChangeRole(ctx, user.ID, newRole); err != nil {
			return nil, fromRepo(err)
		}
		user.Role = &models.UserRole{UserID: user.ID, Role: newRole}
	}

	changes["target_email"] = user.Email
	s.audit.LogAsync(actor, models.AuditUserUpdated, models.EntityUser, idString(user.ID), changes)
	return user, nil
}

// ChangeRole replaces the single role of a user atomically
func (s *UserService) ChangeRole(ctx context.Context, actor *Actor, userID uint, roleName string) (*models.User, error) {
	if err := requireSuperAdmin(actor); err != nil {
		return nil, err
	}
	role, err := assignableRole(roleName)
	if err != nil {
		return nil, err
	}

	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, fromRepo(err)
	}
	old := user.CurrentRole()
	if old == models.RoleSuperAdmin {
		return nil, newError(ErrAuthorizationDenied, msgSuperAdminIntoca)
	}
	if old == role {
		return user, nil
	}

	if err := s.repo.ChangeRole(ctx, userID, role); err != nil {
		return nil, fromRepo(err)
	}
	user.Role = &models.UserRole{UserID: userID, Role: role}

	s.audit.LogAsync(actor, models.AuditRoleChanged, models.EntityUser, idString(userID), map[string]any{
		"target_email": user.Email,
		"role":         FieldChange{Old: old, New: role},
	})
	return user, nil
}

// Delete removes a back-office account. Super admins and the caller's own account are kept.
func (s *UserService) Delete(ctx context.Context, actor *Actor, userID uint) error {
	if err := requireSuperAdmin(actor); err != nil {
		return err
	}
	if actor.UserID == userID {
		return invalidInput("Você não pode excluir a própria conta.")
	}

	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return fromRepo(err)
	}
	if user.CurrentRole() == models.RoleSuperAdmin {
		return newError(ErrAuthorizationDenied, "Um Super Admin não pode ser excluído.")
	}
	if err := s.repo.Delete(ctx, userID); err != nil {
		return fromRepo(err)
	}

	s.audit.LogAsync(actor, models.AuditUserDeleted, models.EntityUser, idString(userID), map[string]any{
		"deleted_email": user.Email,
		"role":          user.CurrentRole(),
	})
	return nil
}

func (s *UserService) sendWelcome(user *models.User) {
	if s.email == nil {
		return
	}
	job := func(ctx context.Context) error {
		return s.email.SendWelcome(ctx, user)
	}
	if s.worker == nil {
		if err := job(context.Background()); err != nil {
			logger.Warn("welcome email failed", slog.String("to", user.Email), slog.String("error", err.Error()))
		}
		return
	}
	if err := s.worker.EnqueueAsync("email:welcome", job); err != nil {
		logger.Warn("welcome email dropped", slog.String("to", user.Email), slog.String("error", err.Error()))
	}
}

func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return invalidInput(msgSenhaCurta)
	}
	if passwordTooLong(password) {
		return invalidInput(msgSenhaLonga)
	}
	return nil
}

func requireSuperAdmin(actor *Actor) error {
	if actor == nil || !actor.Role.AtLeast(models.RoleSuperAdmin) {
		return newError(ErrAuthorizationDenied, msgSuperAdminOnly)
	}
	return nil
}

func assignableRole(s string) (models.Role, error) {
	role, ok := models.ParseRole(strings.TrimSpace(s))
	if !ok || !role.Assignable() {
		return "", invalidInput(msgPapelInvalido)
	}
	return role, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
