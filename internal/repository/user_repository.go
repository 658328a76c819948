package repository

import (
	"context"
	"time"

	"github.com/sjperalta/frequencia-api/internal/models"
	"gorm.io/gorm"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	FindByID(ctx context.Context, id uint) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User, role models.Role) error
	Update(ctx context.Context, user *models.User) error
	ChangeRole(ctx context.Context, userID uint, role models.Role) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, query *ListQuery) ([]models.User, int64, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) FindByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Preload("Role").First(&user, id).Error; err != nil {
		return nil, mapDBError(err)
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).
		Preload("Role").
		Where("LOWER(email) = LOWER(?)", email).
		First(&user).Error
	if err != nil {
		return nil, mapDBError(err)
	}
	return &user, nil
}

// Create inserts the user and its role atomically
func (r *userRepository) Create(ctx context.Context, user *models.User, role models.Role) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Role").Create(user).Error; err != nil {
			return mapDBError(err)
		}
		userRole := &models.UserRole{UserID: user.ID, Role: role}
		if err := tx.Create(userRole).Error; err != nil {
			return mapDBError(err)
		}
		user.Role = userRole
		return nil
	})
}

func (r *userRepository) Update(ctx context.Context, user *models.User) error {
	return mapDBError(r.db.WithContext(ctx).Omit("Role").Save(user).Error)
}

// ChangeRole replaces the user's role. Delete and insert share one
// transaction so the user is never left without a role.
func (r *userRepository) ChangeRole(ctx context.Context, userID uint, role models.Role) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.UserRole{}).Error; err != nil {
			return mapDBError(err)
		}
		return mapDBError(tx.Create(&models.UserRole{UserID: userID, Role: role}).Error)
	})
}

// Delete removes the user; role and refresh tokens cascade
func (r *userRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.User{}, id)
	if res.Error != nil {
		return mapDBError(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *userRepository) List(ctx context.Context, query *ListQuery) ([]models.User, int64, error) {
	var users []models.User
	var total int64

	if query == nil {
		query = NewListQuery()
	}

	db := r.db.WithContext(ctx).Model(&models.User{})

	if query.Search != "" {
		search := "%" + query.Search + "%"
		db = db.Where("nome_completo ILIKE ? OR email ILIKE ?", search, search)
	}
	if role := query.Filters["role"]; role != "" {
		db = db.Where("id IN (?)", r.db.Model(&models.UserRole{}).Select("user_id").Where("role = ?", role))
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, mapDBError(err)
	}

	db = orderBy(db, query, map[string]string{
		"email":         "email",
		"nome_completo": "nome_completo",
		"created_at":    "created_at",
	}, "created_at DESC")

	err := paginate(db, query.Page, query.PerPage).Preload("Role").Find(&users).Error
	return users, total, mapDBError(err)
}

// RefreshTokenRepository defines the interface for refresh token access
type RefreshTokenRepository interface {
	FindByToken(ctx context.Context, token string) (*models.RefreshToken, error)
	Create(ctx context.Context, rt *models.RefreshToken) error
	Delete(ctx context.Context, token string) error
	DeleteByUser(ctx context.Context, userID uint) error
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}

type refreshTokenRepository struct {
	db *gorm.DB
}

// NewRefreshTokenRepository creates a new refresh token repository
func NewRefreshTokenRepository(db *gorm.DB) RefreshTokenRepository {
	return &refreshTokenRepository{db: db}
}

func (r *refreshTokenRepository) FindByToken(ctx context.Context, token string) (*models.RefreshToken, error) {
	var rt models.RefreshToken
	if err := r.db.WithContext(ctx).Where("token = ?", token).First(&rt).Error; err != nil {
		return nil, mapDBError(err)
	}
	return &rt, nil
}

func (r *refreshTokenRepository) Create(ctx context.Context, rt *models.RefreshToken) error {
	return mapDBError(r.db.WithContext(ctx).Omit("User").Create(rt).Error)
}

func (r *refreshTokenRepository) Delete(ctx context.Context, token string) error {
	return mapDBError(r.db.WithContext(ctx).Where("token = ?", token).Delete(&models.RefreshToken{}).Error)
}

func (r *refreshTokenRepository) DeleteByUser(ctx context.Context, userID uint) error {
	return mapDBError(r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.RefreshToken{}).Error)
}

func (r *refreshTokenRepository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Where("expires_at IS NOT NULL AND expires_at < ?", before).Delete(&models.RefreshToken{})
	return result.RowsAffected, mapDBError(result.Error)
}
