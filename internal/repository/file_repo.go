package repository

import (
	"context"
	"errors"

	"athletehub/internal/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FileRepository interface {
	Create(ctx context.Context, file *entity.File) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.File, error)
	ListByFolder(ctx context.Context, folderID uuid.UUID) ([]entity.File, error)
	ListByStudentFolder(ctx context.Context, studentFolderID uuid.UUID) ([]entity.File, error)
	ListByStudentFolders(ctx context.Context, studentFolderIDs []uuid.UUID) ([]entity.File, error)
	ListByUploader(ctx context.Context, userID uuid.UUID) ([]entity.File, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type fileRepository struct {
	db *gorm.DB
}

func NewFileRepository(db *gorm.DB) FileRepository {
	return &fileRepository{db: db}
}

func (r *fileRepository) Create(ctx context.Context, f *entity.File) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *fileRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.File, error) {
	var file entity.File
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&file).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &file, err
}

func (r *fileRepository) ListByFolder(ctx context.Context, folderID uuid.UUID) ([]entity.File, error) {
	var files []entity.File
	err := r.db.WithContext(ctx).
		Where("folder_id = ?", folderID).
		Order("created_at DESC").
		Find(&files).Error
	if err != nil {
		return nil, err
	}
	return files, nil
}

func (r *fileRepository) ListByStudentFolder(ctx context.Context, studentFolderID uuid.UUID) ([]entity.File, error) {
	var files []entity.File
	err := r.db.WithContext(ctx).
		Where("student_folder_id = ?", studentFolderID).
		Order("created_at DESC").
		Find(&files).Error
	if err != nil {
		return nil, err
	}
	return files, nil
}

func (r *fileRepository) ListByStudentFolders(ctx context.Context, studentFolderIDs []uuid.UUID) ([]entity.File, error) {
	if len(studentFolderIDs) == 0 {
		return nil, nil
	}
	var files []entity.File
	err := r.db.WithContext(ctx).
		Where("student_folder_id IN ?", studentFolderIDs).
		Order("created_at DESC").
		Find(&files).Error
	if err != nil {
		return nil, err
	}
	return files, nil
}

func (r *fileRepository) ListByUploader(ctx context.Context, userID uuid.UUID) ([]entity.File, error) {
	var files []entity.File
	err := r.db.WithContext(ctx).
		Where("uploaded_by = ? AND student_folder_id IS NOT NULL", userID).
		Order("created_at DESC").
		Find(&files).Error
	if err != nil {
		return nil, err
	}
	return files, nil
}

func (r *fileRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&entity.File{}).
		Error
}
