package service

import (
	"context"
	"strings"

	"athletehub/internal/entity"
	"athletehub/internal/repository"

	"github.com/google/uuid"
)

type AnnouncementService struct {
	announcements repository.AnnouncementRepository
}

func NewAnnouncementService(announcements repository.AnnouncementRepository) *AnnouncementService {
	return &AnnouncementService{announcements: announcements}
}

func (s *AnnouncementService) Create(ctx context.Context, createdBy uuid.UUID, title, content string) (*entity.Announcement, error) {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(content) == "" {
		return nil, ErrInvalidInput
	}
	announcement := &entity.Announcement{
		Title:     strings.TrimSpace(title),
		Content:   strings.TrimSpace(content),
		CreatedBy: createdBy,
	}
	if err := s.announcements.Create(ctx, announcement); err != nil {
		return nil, err
	}
	return announcement, nil
}

func (s *AnnouncementService) List(ctx context.Context) ([]entity.Announcement, error) {
	return s.announcements.List(ctx)
}

func (s *AnnouncementService) Update(ctx context.Context, id uuid.UUID, title, content string) (*entity.Announcement, error) {
	announcement, err := s.announcements.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if announcement == nil {
		return nil, ErrAnnouncementNotFound
	}
	if strings.TrimSpace(title) != "" {
		announcement.Title = strings.TrimSpace(title)
	}
	if strings.TrimSpace(content) != "" {
		announcement.Content = strings.TrimSpace(content)
	}
	if err := s.announcements.Update(ctx, announcement); err != nil {
		return nil, err
	}
	return announcement, nil
}

func (s *AnnouncementService) Delete(ctx context.Context, id uuid.UUID) error {
	announcement, err := s.announcements.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if announcement == nil {
		return ErrAnnouncementNotFound
	}
	return s.announcements.Delete(ctx, id)
}
