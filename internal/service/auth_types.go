package service

import (
	"context"
	"io"
	"time"

	"athletehub/internal/entity"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type AuthConfig struct {
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
	// ShortSessionTTL bounds sessions created without "remember me";
	// once past it the next refresh is refused, which is the forced
	// sign-out at bootstrap for non-persistent sessions.
	ShortSessionTTL time.Duration
	SignupCodeTTL   time.Duration
	RecoveryCodeTTL time.Duration
}

type EmailSender interface {
	SendSignupCode(ctx context.Context, email string, code string, token string) error
	SendRecoveryCode(ctx context.Context, email string, code string, token string) error
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(hash string, password string) bool
}

type AccessTokenIssuer interface {
	IssueAccessToken(user entity.User, sessionID uuid.UUID) (string, time.Duration, error)
}

// ChallengeIssuer mints one-time email challenges. The token is a
// full opaque credential whose last six characters are the short code,
// so a user holding only the emailed code can redeem the same
// challenge as a user who clicked the link.
type ChallengeIssuer interface {
	NewChallenge() (token string, code string, err error)
}

// ObjectStorage abstracts the two document buckets.
type ObjectStorage interface {
	Upload(ctx context.Context, bucket string, key string, r io.Reader, size int64, contentType string) error
	Download(ctx context.Context, bucket string, key string) (io.ReadCloser, error)
	PublicURL(bucket string, key string) string
	PresignedURL(ctx context.Context, bucket string, key string, ttl time.Duration) (string, error)
	Delete(ctx context.Context, bucket string, key string) error
}

type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func (RealClock) Now() time.Time {
	return time.Now()
}

type BcryptPasswordHasher struct {
	Cost int
}

func (h BcryptPasswordHasher) Hash(password string) (string, error) {
	cost := h.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

func (h BcryptPasswordHasher) Verify(hash string, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
