package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session is a refresh-token session. RememberMe records the sign-in
// persistence choice: non-remembered sessions get a short expiry so a
// stale session is rejected (and revoked) on the next refresh.
type Session struct {
	ID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index"`
	User   User      `gorm:"constraint:OnDelete:CASCADE"`

	TokenHash string `gorm:"type:text;not null;index"`

	RememberMe bool    `gorm:"default:false"`
	IPAddress  *string `gorm:"type:varchar(45)"`
	UserAgent  *string `gorm:"type:text"`

	ExpiresAt time.Time
	RevokedAt *time.Time

	CreatedAt time.Time
}
