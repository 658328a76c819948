package services

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/sjperalta/frequencia-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var superAdmin = &Actor{UserID: 1, Email: "root@example.com", Role: models.RoleSuperAdmin, IP: "10.0.0.2"}

func newTestUserService(users ...models.User) (*UserService, *memUserRepo, *memAuditRepo) {
	repo := newMemUserRepo(users...)
	audits := &memAuditRepo{}
	return NewUserService(repo, nil, nil, NewAuditService(audits, nil)), repo, audits
}

func auditDetails(t *testing.T, entry models.AuditLog) map[string]any {
	t.Helper()
	var details map[string]any
	require.NoError(t, json.Unmarshal(entry.Details, &details))
	return details
}

func TestUserService_CreateRequiresSuperAdmin(t *testing.T) {
	svc, repo, audits := newTestUserService()
	req := UserRequest{Email: "novo@example.com", Password: "segredo", Nome: "Novo", Role: "user"}

	for _, actor := range []*Actor{nil, testActor} {
		_, err := svc.Create(context.Background(), actor, req)
		assert.ErrorIs(t, err, ErrAuthorizationDenied)
		assert.Equal(t, msgSuperAdminOnly, Message(err))
	}
	assert.Empty(t, repo.rows)
	assert.Empty(t, audits.actions())
}

func TestUserService_Create(t *testing.T) {
	svc, repo, audits := newTestUserService()
	depto := "RH"

	user, err := svc.Manage(context.Background(), superAdmin, UserRequest{
		Email: "  Gestor@Example.com ", Password: "segredo", Nome: "Maria", Role: "gestor", Departamento: &depto,
	})
	require.NoError(t, err)

	assert.Equal(t, "gestor@example.com", user.Email)
	assert.Equal(t, models.RoleGestor, user.CurrentRole())
	assert.True(t, user.Ativo)
	assert.True(t, VerifyPassword("segredo", repo.rows[user.ID].EncryptedPassword))

	entry := audits.last()
	assert.Equal(t, models.AuditUserCreated, entry.ActionType)
	assert.Equal(t, "root@example.com", *entry.UserEmail)
	details := auditDetails(t, entry)
	assert.Equal(t, "gestor@example.com", details["created_email"])
	assert.Equal(t, "gestor", details["role"])
	assert.Equal(t, "Maria", details["nome"])
	assert.Equal(t, "RH", details["departamento"])
}

func TestUserService_CreateValidation(t *testing.T) {
	svc, _, _ := newTestUserService(models.User{ID: 5, Email: "existe@example.com"})

	tests := []struct {
		name string
		req  UserRequest
		kind error
		msg  string
	}{
		{"missing fields", UserRequest{Email: "a@example.com", Password: "segredo"}, ErrInvalidInput, "Campos obrigatórios: email, password, nome, role"},
		{"short password", UserRequest{Email: "a@example.com", Password: "123", Nome: "A", Role: "user"}, ErrInvalidInput, msgSenhaCurta},
		{"long password", UserRequest{Email: "a@example.com", Password: strings.Repeat("x", 73), Nome: "A", Role: "user"}, ErrInvalidInput, msgSenhaLonga},
		{"super_admin not assignable", UserRequest{Email: "a@example.com", Password: "segredo", Nome: "A", Role: "super_admin"}, ErrInvalidInput, msgPapelInvalido},
		{"unknown role", UserRequest{Email: "a@example.com", Password: "segredo", Nome: "A", Role: "chefe"}, ErrInvalidInput, msgPapelInvalido},
		{"duplicate email", UserRequest{Email: "EXISTE@example.com", Password: "segredo", Nome: "A", Role: "user"}, ErrConflict, msgEmailDuplicado},
		{"unknown action", UserRequest{Action: "remove"}, ErrInvalidInput, "Ação inválida. Use 'create' ou 'edit'."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Manage(context.Background(), superAdmin, tt.req)
			assert.ErrorIs(t, err, tt.kind)
			assert.Equal(t, tt.msg, Message(err))
		})
	}
}

func TestUserService_EditRecordsRedactedChanges(t *testing.T) {
	svc, repo, audits := newTestUserService(models.User{
		ID: 9, Email: "ana@example.com", NomeCompleto: "Ana", Ativo: true,
		Role: &models.UserRole{UserID: 9, Role: models.RoleUser},
	})

	user, err := svc.Manage(context.Background(), superAdmin, UserRequest{
		Action: "edit", UserID: 9, Nome: "Ana Souza", Password: "novasenha", Role: "admin",
	})
	require.NoError(t, err)
	assert.Equal(t, "Ana Souza", user.NomeCompleto)
	assert.Equal(t, models.RoleAdmin, repo.rows[9].CurrentRole())
	assert.True(t, VerifyPassword("novasenha", repo.rows[9].EncryptedPassword))

	entry := audits.last()
	assert.Equal(t, models.AuditUserUpdated, entry.ActionType)
	details := auditDetails(t, entry)
	assert.Equal(t, map[string]any{"old": "Ana", "new": "Ana Souza"}, details["nome"])
	assert.Equal(t, map[string]any{"old": "********", "new": "********"}, details["password"])
	assert.Equal(t, map[string]any{"old": "user", "new": "admin"}, details["role"])
	assert.NotContains(t, string(entry.Details), "novasenha")
}

func TestUserService_EditWithoutChangesIsNotAudited(t *testing.T) {
	svc, _, audits := newTestUserService(models.User{ID: 9, Email: "ana@example.com", NomeCompleto: "Ana"})

	_, err := svc.Edit(context.Background(), superAdmin, UserRequest{UserID: 9, Nome: "Ana", Email: "ANA@example.com"})
	require.NoError(t, err)
	assert.Empty(t, audits.actions())

	_, err = svc.Edit(context.Background(), superAdmin, UserRequest{UserID: 404, Nome: "X"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserService_ChangeRole(t *testing.T) {
	svc, repo, audits := newTestUserService(
		models.User{ID: 1, Email: "root@example.com", Role: &models.UserRole{UserID: 1, Role: models.RoleSuperAdmin}},
		models.User{ID: 2, Email: "bia@example.com", Role: &models.UserRole{UserID: 2, Role: models.RoleUser}},
	)
	ctx := context.Background()

	_, err := svc.ChangeRole(ctx, superAdmin, 2, "gestor")
	require.NoError(t, err)
	assert.Equal(t, models.RoleGestor, repo.rows[2].CurrentRole())
	assert.Equal(t, models.AuditRoleChanged, audits.last().ActionType)

	_, err = svc.ChangeRole(ctx, superAdmin, 1, "admin")
	assert.ErrorIs(t, err, ErrAuthorizationDenied)

	_, err = svc.ChangeRole(ctx, testActor, 2, "admin")
	assert.ErrorIs(t, err, ErrAuthorizationDenied)
}

func TestUserService_Delete(t *testing.T) {
	svc, repo, audits := newTestUserService(
		models.User{ID: 1, Email: "root@example.com", Role: &models.UserRole{UserID: 1, Role: models.RoleSuperAdmin}},
		models.User{ID: 2, Email: "bia@example.com"},
		models.User{ID: 3, Email: "outro@example.com", Role: &models.UserRole{UserID: 3, Role: models.RoleSuperAdmin}},
	)
	ctx := context.Background()

	assert.ErrorIs(t, svc.Delete(ctx, superAdmin, 1), ErrInvalidInput)
	assert.ErrorIs(t, svc.Delete(ctx, superAdmin, 3), ErrAuthorizationDenied)
	require.NoError(t, svc.Delete(ctx, superAdmin, 2))

	assert.NotContains(t, repo.rows, uint(2))
	assert.Equal(t, []string{models.AuditUserDeleted}, audits.actions())
}

func TestUserService_EditRejectsLongPassword(t *testing.T) {
	svc, repo, audits := newTestUserService(activeUser(5, "ana@example.com", "segredo", models.RoleUser))

	_, err := svc.Manage(context.Background(), superAdmin, UserRequest{
		Action: UserActionEdit, UserID: 5, Password: strings.Repeat("x", 100),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Equal(t, msgSenhaLonga, Message(err))
	assert.True(t, VerifyPassword("segredo", repo.rows[5].EncryptedPassword))
	assert.Empty(t, audits.actions())
}
