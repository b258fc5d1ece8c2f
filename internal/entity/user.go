package entity

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string

const (
	UserRoleStudent UserRole = "student"
	UserRoleAdmin   UserRole = "admin"
)

// User carries both the credential and the athlete profile columns.
// EmailConfirmedAt gates login; IsVerified is flipped only by an
// administrator and gates folder and file actions. The two gates are
// independent.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash *string   `gorm:"type:text"`
	Role         UserRole  `gorm:"type:user_role;default:'student';not null"`

	FullName  string  `gorm:"type:varchar(255);not null"`
	StudentID *string `gorm:"type:varchar(50);uniqueIndex"`
	Phone     *string `gorm:"type:varchar(50)"`
	Course    *string `gorm:"type:varchar(255)"`
	YearLevel *string `gorm:"type:varchar(50)"`
	Sport     *string `gorm:"type:varchar(255)"`
	Position  *string `gorm:"type:varchar(255)"`

	// Admin profile fields.
	Department *string `gorm:"type:varchar(255)"`
	Title      *string `gorm:"type:varchar(255)"`

	ProfilePictureURL *string `gorm:"type:text"`
	IDPictureURL      *string `gorm:"type:text"`

	IsVerified       bool `gorm:"default:false"`
	EmailConfirmedAt *time.Time
	IsActive         bool `gorm:"default:true"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Sessions []Session
}
