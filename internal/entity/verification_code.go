package entity

import (
	"time"

	"github.com/google/uuid"
)

type ChallengePurpose string

const (
	PurposeSignup   ChallengePurpose = "signup"
	PurposeRecovery ChallengePurpose = "recovery"
)

// VerificationCode is a one-time email challenge. The emailed link
// carries the full opaque token; the emailed text carries the 6-digit
// short code, which is the last 6 characters of that token. Either
// form redeems the challenge, exactly once.
type VerificationCode struct {
	ID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index"`
	User   User      `gorm:"constraint:OnDelete:CASCADE"`

	TokenHash string           `gorm:"type:text;not null;index"`
	CodeHash  string           `gorm:"type:text;not null;index"`
	Purpose   ChallengePurpose `gorm:"type:challenge_purpose;not null"`

	ExpiresAt time.Time
	UsedAt    *time.Time

	CreatedAt time.Time
}
