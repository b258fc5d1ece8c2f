package repository

import (
	"context"
	"errors"

	"athletehub/internal/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AnnouncementRepository interface {
	Create(ctx context.Context, announcement *entity.Announcement) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Announcement, error)
	List(ctx context.Context) ([]entity.Announcement, error)
	Update(ctx context.Context, announcement *entity.Announcement) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type announcementRepository struct {
	db *gorm.DB
}

func NewAnnouncementRepository(db *gorm.DB) AnnouncementRepository {
	return &announcementRepository{db: db}
}

func (r *announcementRepository) Create(ctx context.Context, a *entity.Announcement) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *announcementRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Announcement, error) {
	var announcement entity.Announcement
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&announcement).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &announcement, err
}

func (r *announcementRepository) List(ctx context.Context) ([]entity.Announcement, error) {
	var announcements []entity.Announcement
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&announcements).Error
	if err != nil {
		return nil, err
	}
	return announcements, nil
}

func (r *announcementRepository) Update(ctx context.Context, a *entity.Announcement) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *announcementRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&entity.Announcement{}).
		Error
}
