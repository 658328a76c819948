package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sjperalta/frequencia-api/internal/models"
	"github.com/sjperalta/frequencia-api/internal/services"
)

const (
	ctxUserID    = "userID"
	ctxUserEmail = "userEmail"
	ctxUserRole  = "userRole"
	ctxClaims    = "claims"
)

// Claims represents the JWT claims structure
type Claims struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Auth returns a middleware that validates JWT tokens
func Auth(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		tokenString := ""

		if authHeader == "" {
			// download links carry the token in the query string
			tokenString = c.Query("token")
			if tokenString == "" {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"error": "Autenticação necessária.",
				})
				return
			}
		} else {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"error": "Cabeçalho de autorização inválido.",
				})
				return
			}
			tokenString = parts[1]
		}

		claims, err := validateToken(tokenString, jwtSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": err.Error(),
			})
			return
		}

		c.Set(ctxUserID, claims.UserID)
		c.Set(ctxUserEmail, claims.Email)
		c.Set(ctxUserRole, claims.Role)
		c.Set(ctxClaims, claims)

		c.Next()
	}
}

// validateToken parses and validates a JWT token string
func validateToken(tokenString, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(secret), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, errors.New("Sessão expirada. Faça login novamente.")
		}
		return nil, errors.New("Token inválido.")
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("Token inválido.")
	}

	return claims, nil
}

// GetUserID extracts the user ID from the Gin context
func GetUserID(c *gin.Context) uint {
	userID, exists := c.Get(ctxUserID)
	if !exists {
		return 0
	}
	id, _ := userID.(uint)
	return id
}

// GetUserRole extracts the user role from the Gin context. Unknown roles rank below every guard.
func GetUserRole(c *gin.Context) models.Role {
	role, exists := c.Get(ctxUserRole)
	if !exists {
		return ""
	}
	s, _ := role.(string)
	parsed, _ := models.ParseRole(s)
	return parsed
}

// GetActor builds the audit actor of the authenticated request
func GetActor(c *gin.Context) *services.Actor {
	return &services.Actor{
		UserID: GetUserID(c),
		Email:  c.GetString(ctxUserEmail),
		Role:   GetUserRole(c),
		IP:     c.ClientIP(),
	}
}

// RequireRole admits callers whose role is at least min. Rejections are audit-logged in the background.
func RequireRole(min models.Role, audit *services.AuditService) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := GetActor(c)
		if actor.Role.AtLeast(min) {
			c.Next()
			return
		}

		if audit != nil {
			audit.LogAsync(actor, models.AuditAccessDenied, "", "", map[string]any{
				"method":        c.Request.Method,
				"path":          c.FullPath(),
				"role":          actor.Role,
				"required_role": min,
			})
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"error": "Você não tem permissão para acessar esta seção.",
		})
	}
}
