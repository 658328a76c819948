package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sjperalta/frequencia-api/internal/config"
	"github.com/sjperalta/frequencia-api/internal/models"
	"github.com/sjperalta/frequencia-api/internal/repository"
	"github.com/sjperalta/frequencia-api/pkg/logger"
	"golang.org/x/crypto/bcrypt"
)

const refreshTokenTTL = 30 * 24 * time.Hour

// maxPasswordBytes is the longest input bcrypt reads in full
const maxPasswordBytes = 72

const (
	msgCredenciaisInvalidas = "Email ou senha inválidos."
	msgContaInativa         = "Conta inativa. Procure um administrador."
	msgTokenInvalido        = "Sessão inválida. Faça login novamente."
	msgTokenExpirado        = "Sessão expirada. Faça login novamente."
)

// AuthService handles authentication operations
type AuthService struct {
	userRepo         repository.UserRepository
	refreshTokenRepo repository.RefreshTokenRepository
	audit            *AuditService
	cfg              *config.Config
	now              func() time.Time
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepository, rtRepo repository.RefreshTokenRepository, audit *AuditService, cfg *config.Config) *AuthService {
	return &AuthService{
		userRepo:         userRepo,
		refreshTokenRepo: rtRepo,
		audit:            audit,
		cfg:              cfg,
		now:              time.Now,
	}
}

// LoginResult represents the result of a login attempt
type LoginResult struct {
	Token        string              `json:"token"`
	RefreshToken string              `json:"refresh_token"`
	User         models.UserResponse `json:"user"`
}

// Login authenticates a user and returns tokens
func (s *AuthService) Login(ctx context.Context, email, password, ip string) (*LoginResult, error) {
	user, err := s.userRepo.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, newError(ErrAuthenticationFailed, msgCredenciaisInvalidas)
		}
		return nil, fromRepo(err)
	}

	if passwordTooLong(password) || !VerifyPassword(password, user.EncryptedPassword) {
		return nil, newError(ErrAuthenticationFailed, msgCredenciaisInvalidas)
	}
	if !user.IsActive() {
		return nil, newError(ErrAuthenticationFailed, msgContaInativa)
	}

	result, err := s.issue(ctx, user)
	if err != nil {
		return nil, err
	}

	s.audit.LogAsync(actorFor(user, ip), models.AuditLogin, models.EntityUser, idString(user.ID), nil)
	return result, nil
}

// RefreshToken rotates a refresh token and returns new tokens
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*LoginResult, error) {
	rt, err := s.refreshTokenRepo.FindByToken(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, newError(ErrAuthenticationFailed, msgTokenInvalido)
		}
		return nil, fromRepo(err)
	}

	if rt.IsExpired() {
		s.deleteToken(ctx, refreshToken)
		return nil, newError(ErrAuthenticationFailed, msgTokenExpirado)
	}

	user, err := s.userRepo.FindByID(ctx, rt.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, newError(ErrAuthenticationFailed, msgTokenInvalido)
		}
		return nil, fromRepo(err)
	}
	if !user.IsActive() {
		return nil, newError(ErrAuthenticationFailed, msgContaInativa)
	}

	s.deleteToken(ctx, refreshToken)
	return s.issue(ctx, user)
}

// Logout invalidates a refresh token
func (s *AuthService) Logout(ctx context.Context, actor *Actor, refreshToken string) error {
	if refreshToken != "" {
		if err := s.refreshTokenRepo.Delete(ctx, refreshToken); err != nil {
			return fromRepo(err)
		}
	}
	var entityID string
	if actor != nil {
		entityID = idString(actor.UserID)
	}
	s.audit.LogAsync(actor, models.AuditLogout, models.EntityUser, entityID, nil)
	return nil
}

// PurgeExpiredTokens drops refresh tokens past their expiry
func (s *AuthService) PurgeExpiredTokens(ctx context.Context) error {
	removed, err := s.refreshTokenRepo.DeleteExpired(ctx, s.now())
	if err != nil {
		return err
	}
	if removed > 0 {
		logger.FromContext(ctx).Info("expired refresh tokens purged", slog.Int64("removed", removed))
	}
	return nil
}

func (s *AuthService) issue(ctx context.Context, user *models.User) (*LoginResult, error) {
	token, err := s.generateJWT(user)
	if err != nil {
		return nil, newError(ErrInternal, "Não foi possível gerar o token de acesso.")
	}
	refresh, err := s.generateRefreshToken(ctx, user.ID)
	if err != nil {
		return nil, newError(ErrInternal, "Não foi possível gerar o token de acesso.")
	}
	return &LoginResult{
		Token:        token,
		RefreshToken: refresh,
		User:         user.ToResponse(),
	}, nil
}

func (s *AuthService) deleteToken(ctx context.Context, token string) {
	if err := s.refreshTokenRepo.Delete(ctx, token); err != nil {
		logger.FromContext(ctx).Warn("failed to delete refresh token", slog.String("error", err.Error()))
	}
}

// generateJWT creates a new JWT token for a user
func (s *AuthService) generateJWT(user *models.User) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"role":    user.CurrentRole().String(),
		"exp":     now.Add(time.Duration(s.cfg.JWTExpirationHours) * time.Hour).Unix(),
		"iat":     now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

// generateRefreshToken creates and stores a random refresh token
func (s *AuthService) generateRefreshToken(ctx context.Context, userID uint) (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	token := hex.EncodeToString(buf)

	expiresAt := s.now().Add(refreshTokenTTL)
	rt := &models.RefreshToken{
		UserID:    userID,
		Token:     token,
		ExpiresAt: &expiresAt,
	}
	if err := s.refreshTokenRepo.Create(ctx, rt); err != nil {
		return "", err
	}
	return token, nil
}

func actorFor(user *models.User, ip string) *Actor {
	return &Actor{UserID: user.ID, Email: user.Email, Role: user.CurrentRole(), IP: ip}
}

// HashPassword hashes a password using bcrypt
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// VerifyPassword compares a password with a hash. Inputs longer than
// maxPasswordBytes never match, since bcrypt would compare only their prefix.
func VerifyPassword(password, hash string) bool {
	if passwordTooLong(password) {
		return false
	}
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

func passwordTooLong(password string) bool {
	return len(password) > maxPasswordBytes
}
