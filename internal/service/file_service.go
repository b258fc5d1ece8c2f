package service

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"athletehub/internal/entity"
	"athletehub/internal/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	maxUploadSize   = 25 * 1024 * 1024
	presignedURLTTL = 15 * time.Minute
)

// FileService stores documents in the athlete-files bucket and tracks
// them as rows. Students upload only into their own subfolder and must
// be admin-verified first; admins upload into shared folders.
type FileService struct {
	files          repository.FileRepository
	folders        repository.FolderRepository
	studentFolders repository.StudentFolderRepository
	users          repository.UserRepository
	storage        ObjectStorage
	logger         logrus.FieldLogger
}

func NewFileService(
	files repository.FileRepository,
	folders repository.FolderRepository,
	studentFolders repository.StudentFolderRepository,
	users repository.UserRepository,
	storage ObjectStorage,
	logger logrus.FieldLogger,
) *FileService {
	return &FileService{
		files:          files,
		folders:        folders,
		studentFolders: studentFolders,
		users:          users,
		storage:        storage,
		logger:         logger,
	}
}

func (s *FileService) UploadToStudentFolder(ctx context.Context, studentID, folderID uuid.UUID, upload FileUpload) (*entity.File, error) {
	if err := validateUpload(upload); err != nil {
		return nil, err
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

	folder, err := s.studentFolders.FindByID(ctx, folderID)
	if err != nil {
		return nil, err
	}
	if folder == nil {
		return nil, ErrFolderNotFound
	}
	if folder.StudentID != studentID {
		return nil, ErrForbidden
	}

	sid := studentID.String()
	if student.StudentID != nil {
		sid = *student.StudentID
	}
	key := fmt.Sprintf("students/%s/%s/%s-%s", sid, folderID, uuid.New(), sanitizeName(upload.Filename))
	return s.storeFile(ctx, key, upload, studentID, nil, &folderID)
}

func (s *FileService) UploadToFolder(ctx context.Context, uploaderID, folderID uuid.UUID, upload FileUpload) (*entity.File, error) {
	if err := validateUpload(upload); err != nil {
		return nil, err
	}

	folder, err := s.folders.FindByID(ctx, folderID)
	if err != nil {
		return nil, err
	}
	if folder == nil {
		return nil, ErrFolderNotFound
	}

	key := fmt.Sprintf("shared/%s/%s-%s", folderID, uuid.New(), sanitizeName(upload.Filename))
	return s.storeFile(ctx, key, upload, uploaderID, &folderID, nil)
}

func (s *FileService) ListByFolder(ctx context.Context, folderID uuid.UUID) ([]entity.File, error) {
	return s.files.ListByFolder(ctx, folderID)
}

func (s *FileService) ListByStudentFolder(ctx context.Context, studentFolderID uuid.UUID) ([]entity.File, error) {
	return s.files.ListByStudentFolder(ctx, studentFolderID)
}

func (s *FileService) ListOwn(ctx context.Context, userID uuid.UUID) ([]entity.File, error) {
	return s.files.ListByUploader(ctx, userID)
}

// Download streams the stored object together with its row.
func (s *FileService) Download(ctx context.Context, fileID uuid.UUID) (*entity.File, io.ReadCloser, error) {
	file, err := s.files.FindByID(ctx, fileID)
	if err != nil {
		return nil, nil, err
	}
	if file == nil {
		return nil, nil, ErrFileNotFound
	}
	body, err := s.storage.Download(ctx, BucketAthleteFiles, file.FilePath)
	if err != nil {
		return nil, nil, err
	}
	return file, body, nil
}

// FileURL hands out a short-lived presigned URL, the fallback the
// dashboards use when streaming is not wanted.
func (s *FileService) FileURL(ctx context.Context, fileID uuid.UUID) (string, error) {
	file, err := s.files.FindByID(ctx, fileID)
	if err != nil {
		return "", err
	}
	if file == nil {
		return "", ErrFileNotFound
	}
	return s.storage.PresignedURL(ctx, BucketAthleteFiles, file.FilePath, presignedURLTTL)
}

// Delete removes row and object; the uploader or an administrator may
// delete.
func (s *FileService) Delete(ctx context.Context, actorID uuid.UUID, admin bool, fileID uuid.UUID) error {
	file, err := s.files.FindByID(ctx, fileID)
	if err != nil {
		return err
	}
	if file == nil {
		return ErrFileNotFound
	}
	if !admin && file.UploadedBy != actorID {
		return ErrForbidden
	}

	if err := s.files.Delete(ctx, fileID); err != nil {
		return err
	}
	if err := s.storage.Delete(ctx, BucketAthleteFiles, file.FilePath); err != nil && s.logger != nil {
		s.logger.WithFields(logrus.Fields{"key": file.FilePath, "error": err.Error()}).Warn("object removal failed")
	}
	return nil
}

func (s *FileService) storeFile(
	ctx context.Context,
	key string,
	upload FileUpload,
	uploadedBy uuid.UUID,
	folderID *uuid.UUID,
	studentFolderID *uuid.UUID,
) (*entity.File, error) {
	if err := s.storage.Upload(ctx, BucketAthleteFiles, key, upload.Reader, upload.Size, upload.ContentType); err != nil {
		return nil, err
	}

	file := &entity.File{
		Name:            sanitizeName(upload.Filename),
		OriginalName:    upload.Filename,
		FilePath:        key,
		FileSize:        upload.Size,
		MimeType:        upload.ContentType,
		FolderID:        folderID,
		StudentFolderID: studentFolderID,
		UploadedBy:      uploadedBy,
	}
	if err := s.files.Create(ctx, file); err != nil {
		// Orphaned object; remove it so storage does not drift.
		if derr := s.storage.Delete(ctx, BucketAthleteFiles, key); derr != nil && s.logger != nil {
			s.logger.WithFields(logrus.Fields{"key": key, "error": derr.Error()}).Warn("orphan cleanup failed")
		}
		return nil, err
	}
	return file, nil
}

func validateUpload(upload FileUpload) error {
	if upload.Reader == nil || strings.TrimSpace(upload.Filename) == "" {
		return ErrInvalidInput
	}
	if upload.Size <= 0 || upload.Size > maxUploadSize {
		return ErrInvalidInput
	}
	return nil
}

func sanitizeName(filename string) string {
	name := strings.TrimSpace(filename)
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	if name == "" {
		return "file"
	}
	return name
}
