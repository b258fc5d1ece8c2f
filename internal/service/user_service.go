package service

import (
	"context"

	"athletehub/internal/entity"
	"athletehub/internal/repository"

	"github.com/google/uuid"
)

// UserService covers the admin user surface: listing, lookup, and the
// verification flip that gates student folder and file actions.
type UserService struct {
	users        repository.UserRepository
	securityLogs repository.SecurityLogRepository
}

func NewUserService(users repository.UserRepository, securityLogs repository.SecurityLogRepository) *UserService {
	return &UserService{users: users, securityLogs: securityLogs}
}

func (s *UserService) List(ctx context.Context, limit, offset int) ([]entity.User, error) {
	return s.users.List(ctx, limit, offset)
}

func (s *UserService) Get(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *UserService) SetVerified(ctx context.Context, userID uuid.UUID, verified bool) (*entity.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if err := s.users.SetVerified(ctx, userID, verified); err != nil {
		return nil, err
	}
	user.IsVerified = verified

	if s.securityLogs != nil {
		_ = s.securityLogs.Log(ctx, &entity.SecurityLog{
			UserID: &userID,
			Action: entity.UserVerified,
		})
	}
	return user, nil
}
