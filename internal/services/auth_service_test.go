package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sjperalta/frequencia-api/internal/config"
	"github.com/sjperalta/frequencia-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthService(users ...models.User) (*AuthService, *memRefreshTokenRepo, *memAuditRepo) {
	tokens := newMemRefreshTokenRepo()
	audits := &memAuditRepo{}
	cfg := &config.Config{JWTSecret: "test-secret", JWTExpirationHours: 24}
	return NewAuthService(newMemUserRepo(users...), tokens, NewAuditService(audits, nil), cfg), tokens, audits
}

func activeUser(id uint, email, password string, role models.Role) models.User {
	return models.User{
		ID: id, Email: email, EncryptedPassword: *mustHash(password), NomeCompleto: "Usuário", Ativo: true,
		Role: &models.UserRole{UserID: id, Role: role},
	}
}

func TestAuthService_Login(t *testing.T) {
	svc, tokens, audits := newTestAuthService(activeUser(3, "gestor@example.com", "segredo", models.RoleGestor))

	result, err := svc.Login(context.Background(), "Gestor@example.com", "segredo", "10.0.0.9")
	require.NoError(t, err)
	assert.Equal(t, models.RoleGestor, result.User.Role)
	assert.Contains(t, tokens.tokens, result.RefreshToken)

	claims := jwt.MapClaims{}
	_, err = jwt.ParseWithClaims(result.Token, claims, func(*jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	assert.Equal(t, "gestor@example.com", claims["email"])
	assert.Equal(t, "gestor", claims["role"])
	assert.EqualValues(t, 3, claims["user_id"])

	entry := audits.last()
	assert.Equal(t, models.AuditLogin, entry.ActionType)
	assert.Equal(t, "10.0.0.9", *entry.IPAddress)
}

func TestAuthService_LoginFailures(t *testing.T) {
	inactive := activeUser(4, "inativo@example.com", "segredo", models.RoleUser)
	inactive.Ativo = false
	svc, _, audits := newTestAuthService(activeUser(3, "ana@example.com", "segredo", models.RoleUser), inactive)
	ctx := context.Background()

	_, err := svc.Login(ctx, "ana@example.com", "errada", "")
	assert.ErrorIs(t, err, ErrAuthenticationFailed)
	assert.Equal(t, msgCredenciaisInvalidas, Message(err))

	_, err = svc.Login(ctx, "ninguem@example.com", "segredo", "")
	assert.ErrorIs(t, err, ErrAuthenticationFailed)
	assert.Equal(t, msgCredenciaisInvalidas, Message(err))

	_, err = svc.Login(ctx, "ana@example.com", "segredo"+strings.Repeat("!", 80), "")
	assert.ErrorIs(t, err, ErrAuthenticationFailed)
	assert.Equal(t, msgCredenciaisInvalidas, Message(err))

	_, err = svc.Login(ctx, "inativo@example.com", "segredo", "")
	assert.ErrorIs(t, err, ErrAuthenticationFailed)
	assert.Equal(t, msgContaInativa, Message(err))

	assert.Empty(t, audits.actions())
}

func TestAuthService_RefreshTokenRotates(t *testing.T) {
	svc, tokens, _ := newTestAuthService(activeUser(3, "ana@example.com", "segredo", models.RoleUser))
	ctx := context.Background()

	first, err := svc.Login(ctx, "ana@example.com", "segredo", "")
	require.NoError(t, err)

	second, err := svc.RefreshToken(ctx, first.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, first.RefreshToken, second.RefreshToken)
	assert.NotContains(t, tokens.tokens, first.RefreshToken)

	_, err = svc.RefreshToken(ctx, first.RefreshToken)
	assert.ErrorIs(t, err, ErrAuthenticationFailed)
}

func TestAuthService_RefreshTokenExpiredOrInactive(t *testing.T) {
	inactive := activeUser(4, "inativo@example.com", "segredo", models.RoleUser)
	inactive.Ativo = false
	svc, tokens, _ := newTestAuthService(activeUser(3, "ana@example.com", "segredo", models.RoleUser), inactive)
	ctx := context.Background()

	past := time.Now().Add(-time.Hour)
	tokens.tokens["velho"] = models.RefreshToken{UserID: 3, Token: "velho", ExpiresAt: &past}
	_, err := svc.RefreshToken(ctx, "velho")
	assert.ErrorIs(t, err, ErrAuthenticationFailed)
	assert.Equal(t, msgTokenExpirado, Message(err))
	assert.NotContains(t, tokens.tokens, "velho")

	tokens.tokens["inativo"] = models.RefreshToken{UserID: 4, Token: "inativo"}
	_, err = svc.RefreshToken(ctx, "inativo")
	assert.ErrorIs(t, err, ErrAuthenticationFailed)
	assert.Equal(t, msgContaInativa, Message(err))
}

func TestAuthService_Logout(t *testing.T) {
	svc, tokens, audits := newTestAuthService()
	tokens.tokens["abc"] = models.RefreshToken{UserID: 3, Token: "abc"}

	require.NoError(t, svc.Logout(context.Background(), &Actor{UserID: 3, Email: "ana@example.com"}, "abc"))
	assert.Empty(t, tokens.tokens)
	assert.Equal(t, []string{models.AuditLogout}, audits.actions())
}

func TestAuthService_PurgeExpiredTokens(t *testing.T) {
	svc, tokens, _ := newTestAuthService()
	past := time.Now().Add(-time.Minute)
	future := time.Now().Add(time.Hour)
	tokens.tokens["velho"] = models.RefreshToken{UserID: 3, Token: "velho", ExpiresAt: &past}
	tokens.tokens["novo"] = models.RefreshToken{UserID: 3, Token: "novo", ExpiresAt: &future}

	require.NoError(t, svc.PurgeExpiredTokens(context.Background()))
	assert.NotContains(t, tokens.tokens, "velho")
	assert.Contains(t, tokens.tokens, "novo")
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("segredo")
	require.NoError(t, err)
	assert.True(t, VerifyPassword("segredo", hash))
	assert.False(t, VerifyPassword("outra", hash))

	long := strings.Repeat("s", 72)
	longHash, err := HashPassword(long)
	require.NoError(t, err)
	assert.True(t, VerifyPassword(long, longHash))
	assert.False(t, VerifyPassword(long+"extra", longHash), "bytes past the bcrypt limit must not be ignored")
}
