package repository

import (
	"context"
	"errors"

	"athletehub/internal/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StudentFolderRepository interface {
	Create(ctx context.Context, folder *entity.StudentFolder) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.StudentFolder, error)
	FindByStudent(ctx context.Context, studentID uuid.UUID) (*entity.StudentFolder, error)
	ListBySportFolder(ctx context.Context, sportFolderID uuid.UUID) ([]entity.StudentFolder, error)
	Update(ctx context.Context, folder *entity.StudentFolder) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type studentFolderRepository struct {
	db *gorm.DB
}

func NewStudentFolderRepository(db *gorm.DB) StudentFolderRepository {
	return &studentFolderRepository{db: db}
}

func (r *studentFolderRepository) Create(ctx context.Context, f *entity.StudentFolder) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *studentFolderRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.StudentFolder, error) {
	var folder entity.StudentFolder
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&folder).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &folder, err
}

func (r *studentFolderRepository) FindByStudent(ctx context.Context, studentID uuid.UUID) (*entity.StudentFolder, error) {
	var folder entity.StudentFolder
	err := r.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		First(&folder).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &folder, err
}

func (r *studentFolderRepository) ListBySportFolder(ctx context.Context, sportFolderID uuid.UUID) ([]entity.StudentFolder, error) {
	var folders []entity.StudentFolder
	err := r.db.WithContext(ctx).
		Preload("Student").
		Where("sport_folder_id = ?", sportFolderID).
		Order("created_at ASC").
		Find(&folders).Error
	if err != nil {
		return nil, err
	}
	return folders, nil
}

func (r *studentFolderRepository) Update(ctx context.Context, f *entity.StudentFolder) error {
	return r.db.WithContext(ctx).Save(f).Error
}

func (r *studentFolderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&entity.StudentFolder{}).
		Error
}
