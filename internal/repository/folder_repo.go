package repository

import (
	"context"
	"errors"

	"athletehub/internal/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FolderRepository interface {
	Create(ctx context.Context, folder *entity.Folder) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Folder, error)
	List(ctx context.Context) ([]entity.Folder, error)
	ListPublic(ctx context.Context) ([]entity.Folder, error)
	Update(ctx context.Context, folder *entity.Folder) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type folderRepository struct {
	db *gorm.DB
}

func NewFolderRepository(db *gorm.DB) FolderRepository {
	return &folderRepository{db: db}
}

func (r *folderRepository) Create(ctx context.Context, folder *entity.Folder) error {
	return r.db.WithContext(ctx).Create(folder).Error
}

func (r *folderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Folder, error) {
	var folder entity.Folder
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&folder).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &folder, err
}

func (r *folderRepository) List(ctx context.Context) ([]entity.Folder, error) {
	var folders []entity.Folder
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&folders).Error
	if err != nil {
		return nil, err
	}
	return folders, nil
}

func (r *folderRepository) ListPublic(ctx context.Context) ([]entity.Folder, error) {
	var folders []entity.Folder
	err := r.db.WithContext(ctx).
		Where("is_public = true").
		Order("created_at DESC").
		Find(&folders).Error
	if err != nil {
		return nil, err
	}
	return folders, nil
}

func (r *folderRepository) Update(ctx context.Context, folder *entity.Folder) error {
	return r.db.WithContext(ctx).Save(folder).Error
}

func (r *folderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&entity.Folder{}).
		Error
}
