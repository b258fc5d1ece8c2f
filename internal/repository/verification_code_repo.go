package repository

import (
	"context"
	"errors"
	"time"

	"athletehub/internal/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VerificationCodeRepository interface {
	Create(ctx context.Context, code *entity.VerificationCode) error
	FindValidByToken(ctx context.Context, tokenHash string, purpose entity.ChallengePurpose) (*entity.VerificationCode, error)
	FindValidByCode(ctx context.Context, userID uuid.UUID, codeHash string, purpose entity.ChallengePurpose) (*entity.VerificationCode, error)
	MarkUsed(ctx context.Context, id uuid.UUID) error
}

type verificationCodeRepository struct {
	db *gorm.DB
}

func NewVerificationCodeRepository(db *gorm.DB) VerificationCodeRepository {
	return &verificationCodeRepository{db: db}
}

func (r *verificationCodeRepository) Create(ctx context.Context, c *entity.VerificationCode) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *verificationCodeRepository) FindValidByToken(
	ctx context.Context,
	tokenHash string,
	purpose entity.ChallengePurpose,
) (*entity.VerificationCode, error) {

	var code entity.VerificationCode
	err := r.db.WithContext(ctx).
		Where(`
			token_hash = ? AND
			purpose = ? AND
			used_at IS NULL AND
			expires_at > NOW()
		`, tokenHash, purpose).
		First(&code).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &code, err
}

func (r *verificationCodeRepository) FindValidByCode(
	ctx context.Context,
	userID uuid.UUID,
	codeHash string,
	purpose entity.ChallengePurpose,
) (*entity.VerificationCode, error) {

	var code entity.VerificationCode
	err := r.db.WithContext(ctx).
		Where(`
			user_id = ? AND
			code_hash = ? AND
			purpose = ? AND
			used_at IS NULL AND
			expires_at > NOW()
		`, userID, codeHash, purpose).
		First(&code).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &code, err
}

func (r *verificationCodeRepository) MarkUsed(ctx context.Context, id uuid.UUID) error {
	now := time.Now()
	return r.db.WithContext(ctx).
		Model(&entity.VerificationCode{}).
		Where("id = ?", id).
		Update("used_at", &now).
		Error
}
