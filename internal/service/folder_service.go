package service

import (
	"context"
	"strings"

	"athletehub/internal/entity"
	"athletehub/internal/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// FolderService manages shared sport folders and the per-student
// subfolders inside them.
type FolderService struct {
	folders        repository.FolderRepository
	studentFolders repository.StudentFolderRepository
	files          repository.FileRepository
	users          repository.UserRepository
	storage        ObjectStorage
	logger         logrus.FieldLogger
}

func NewFolderService(
	folders repository.FolderRepository,
	studentFolders repository.StudentFolderRepository,
	files repository.FileRepository,
	users repository.UserRepository,
	storage ObjectStorage,
	logger logrus.FieldLogger,
) *FolderService {
	return &FolderService{
		folders:        folders,
		studentFolders: studentFolders,
		files:          files,
		users:          users,
		storage:        storage,
		logger:         logger,
	}
}

func (s *FolderService) CreateFolder(ctx context.Context, createdBy uuid.UUID, name, description string, isPublic bool) (*entity.Folder, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrInvalidInput
	}
	folder := &entity.Folder{
		Name:        strings.TrimSpace(name),
		Description: optionalString(description),
		CreatedBy:   createdBy,
		IsPublic:    isPublic,
	}
	if err := s.folders.Create(ctx, folder); err != nil {
		return nil, err
	}
	return folder, nil
}

// ListFolders returns every folder for admins and public folders for
// everyone else.
func (s *FolderService) ListFolders(ctx context.Context, admin bool) ([]entity.Folder, error) {
	if admin {
		return s.folders.List(ctx)
	}
	return s.folders.ListPublic(ctx)
}

func (s *FolderService) UpdateFolder(ctx context.Context, folderID uuid.UUID, name, description string, isPublic bool) (*entity.Folder, error) {
	folder, err := s.folders.FindByID(ctx, folderID)
	if err != nil {
		return nil, err
	}
	if folder == nil {
		return nil, ErrFolderNotFound
	}
	if strings.TrimSpace(name) != "" {
		folder.Name = strings.TrimSpace(name)
	}
	folder.Description = optionalString(description)
	folder.IsPublic = isPublic
	if err := s.folders.Update(ctx, folder); err != nil {
		return nil, err
	}
	return folder, nil
}

// DeleteFolder removes the folder, its student subfolders, and every
// contained file. Object removal is best-effort; rows go first.
func (s *FolderService) DeleteFolder(ctx context.Context, folderID uuid.UUID) error {
	folder, err := s.folders.FindByID(ctx, folderID)
	if err != nil {
		return err
	}
	if folder == nil {
		return ErrFolderNotFound
	}

	subfolders, err := s.studentFolders.ListBySportFolder(ctx, folderID)
	if err != nil {
		return err
	}
	for i := range subfolders {
		if err := s.deleteStudentFolderContents(ctx, subfolders[i].ID); err != nil {
			return err
		}
		if err := s.studentFolders.Delete(ctx, subfolders[i].ID); err != nil {
			return err
		}
	}

	shared, err := s.files.ListByFolder(ctx, folderID)
	if err != nil {
		return err
	}
	for i := range shared {
		if err := s.files.Delete(ctx, shared[i].ID); err != nil {
			return err
		}
		s.removeObject(ctx, shared[i].FilePath)
	}

	return s.folders.Delete(ctx, folderID)
}

// CreateStudentFolder enforces the two business rules from the student
// dashboard: the student must be admin-verified, and may hold at most
// one subfolder anywhere.
func (s *FolderService) CreateStudentFolder(ctx context.Context, studentID, sportFolderID uuid.UUID, name string) (*entity.StudentFolder, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrInvalidInput
	}

	student, err := s.users.FindByID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, ErrUserNotFound
	}
	if !student.IsVerified {
		return nil, ErrNotVerified
	}

	existing, err := s.studentFolders.FindByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrSubfolderExists
	}

	sportFolder, err := s.folders.FindByID(ctx, sportFolderID)
	if err != nil {
		return nil, err
	}
	if sportFolder == nil {
		return nil, ErrFolderNotFound
	}

	folder := &entity.StudentFolder{
		Name:          strings.TrimSpace(name),
		StudentID:     studentID,
		SportFolderID: sportFolderID,
	}
	if err := s.studentFolders.Create(ctx, folder); err != nil {
		return nil, err
	}
	return folder, nil
}

func (s *FolderService) ListStudentFolders(ctx context.Context, sportFolderID uuid.UUID) ([]entity.StudentFolder, error) {
	return s.studentFolders.ListBySportFolder(ctx, sportFolderID)
}

func (s *FolderService) FindStudentFolder(ctx context.Context, studentID uuid.UUID) (*entity.StudentFolder, error) {
	return s.studentFolders.FindByStudent(ctx, studentID)
}

// RenameStudentFolder is owner-only.
func (s *FolderService) RenameStudentFolder(ctx context.Context, actorID, folderID uuid.UUID, name string) (*entity.StudentFolder, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrInvalidInput
	}
	folder, err := s.studentFolders.FindByID(ctx, folderID)
	if err != nil {
		return nil, err
	}
	if folder == nil {
		return nil, ErrFolderNotFound
	}
	if folder.StudentID != actorID {
		return nil, ErrForbidden
	}
	folder.Name = strings.TrimSpace(name)
	if err := s.studentFolders.Update(ctx, folder); err != nil {
		return nil, err
	}
	return folder, nil
}

// DeleteStudentFolder removes the subfolder and its files. The owner
// or an administrator may delete it.
func (s *FolderService) DeleteStudentFolder(ctx context.Context, actorID uuid.UUID, admin bool, folderID uuid.UUID) error {
	folder, err := s.studentFolders.FindByID(ctx, folderID)
	if err != nil {
		return err
	}
	if folder == nil {
		return ErrFolderNotFound
	}
	if !admin && folder.StudentID != actorID {
		return ErrForbidden
	}

	if err := s.deleteStudentFolderContents(ctx, folderID); err != nil {
		return err
	}
	return s.studentFolders.Delete(ctx, folderID)
}

func (s *FolderService) deleteStudentFolderContents(ctx context.Context, folderID uuid.UUID) error {
	files, err := s.files.ListByStudentFolder(ctx, folderID)
	if err != nil {
		return err
	}
	for i := range files {
		if err := s.files.Delete(ctx, files[i].ID); err != nil {
			return err
		}
		s.removeObject(ctx, files[i].FilePath)
	}
	return nil
}

func (s *FolderService) removeObject(ctx context.Context, key string) {
	if s.storage == nil {
		return
	}
	if err := s.storage.Delete(ctx, BucketAthleteFiles, key); err != nil && s.logger != nil {
		s.logger.WithFields(logrus.Fields{"key": key, "error": err.Error()}).Warn("object removal failed")
	}
}
