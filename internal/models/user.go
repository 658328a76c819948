package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents a back-office account
type User struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	Email             string    `gorm:"uniqueIndex;not null" json:"email"`
	EncryptedPassword string    `gorm:"column:encrypted_password;not null" json:"-"`
	NomeCompleto      string    `json:"nome_completo"`
	Departamento      *string   `json:"departamento"`
	Ativo             bool      `gorm:"not null;default:true" json:"ativo"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`

	// Associations
	Role *UserRole `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"role,omitempty"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}

// IsActive returns true if the account may log in
func (u *User) IsActive() bool {
	return u.Ativo
}

// CurrentRole returns the assigned role, or RoleUser when none was assigned
func (u *User) CurrentRole() Role {
	if u.Role == nil {
		return RoleUser
	}
	return u.Role.Role
}

// UserRole holds the single role of a user
type UserRole struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"uniqueIndex;not null" json:"user_id"`
	Role      Role      `gorm:"size:20;not null" json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for UserRole
func (UserRole) TableName() string {
	return "user_roles"
}

// BeforeCreate hook for setting defaults
func (r *UserRole) BeforeCreate(tx *gorm.DB) error {
	if r.Role == "" {
		r.Role = RoleUser
	}
	return nil
}

// UserResponse is the JSON response format for users
type UserResponse struct {
	ID           uint      `json:"id"`
	Email        string    `json:"email"`
	NomeCompleto string    `json:"nome_completo"`
	Departamento *string   `json:"departamento"`
	Role         Role      `json:"role"`
	Ativo        bool      `json:"ativo"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ToResponse converts User to UserResponse
func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:           u.ID,
		Email:        u.Email,
		NomeCompleto: u.NomeCompleto,
		Departamento: u.Departamento,
		Role:         u.CurrentRole(),
		Ativo:        u.Ativo,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}
