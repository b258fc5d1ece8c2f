package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"athletehub/internal/entity"

	"github.com/google/uuid"
)

func pdfUpload() FileUpload {
	return FileUpload{Reader: strings.NewReader("%PDF"), Size: 4, Filename: "waiver.pdf", ContentType: "application/pdf"}
}

func TestUploadToStudentFolderGates(t *testing.T) {
	owner := verifiedStudent()
	folderID := uuid.New()
	studentFolders := &stubStudentFolderRepo{
		FindByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.StudentFolder, error) {
			return &entity.StudentFolder{ID: folderID, StudentID: owner.ID}, nil
		},
	}

	t.Run("unverified student is refused", func(t *testing.T) {
		unverified := verifiedStudent()
		unverified.IsVerified = false
		svc := NewFileService(&stubFileRepo{}, &stubFolderRepo{}, studentFolders, &stubUserRepo{
			FindByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.User, error) { return unverified, nil },
		}, &stubStorage{}, nil)

		_, err := svc.UploadToStudentFolder(context.Background(), unverified.ID, folderID, pdfUpload())
		if !errors.Is(err, ErrNotVerified) {
			t.Fatalf("got %v, want ErrNotVerified", err)
		}
	})

	t.Run("foreign subfolder is refused", func(t *testing.T) {
		stranger := verifiedStudent()
		svc := NewFileService(&stubFileRepo{}, &stubFolderRepo{}, studentFolders, &stubUserRepo{
			FindByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.User, error) { return stranger, nil },
		}, &stubStorage{}, nil)

		_, err := svc.UploadToStudentFolder(context.Background(), stranger.ID, folderID, pdfUpload())
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("got %v, want ErrForbidden", err)
		}
	})

	t.Run("oversized upload is refused before any lookup", func(t *testing.T) {
		svc := NewFileService(&stubFileRepo{}, &stubFolderRepo{}, &stubStudentFolderRepo{}, &stubUserRepo{
			FindByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.User, error) {
				t.Fatal("lookup ran before validation")
				return nil, nil
			},
		}, &stubStorage{}, nil)

		upload := pdfUpload()
		upload.Size = maxUploadSize + 1
		if _, err := svc.UploadToStudentFolder(context.Background(), owner.ID, folderID, upload); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("got %v, want ErrInvalidInput", err)
		}
	})
}

func TestUploadToStudentFolderStoresRowAndObject(t *testing.T) {
	owner := verifiedStudent()
	sid := "2021-00123"
	owner.StudentID = &sid
	folderID := uuid.New()

	users := &stubUserRepo{
		FindByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.User, error) { return owner, nil },
	}
	studentFolders := &stubStudentFolderRepo{
		FindByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.StudentFolder, error) {
			return &entity.StudentFolder{ID: folderID, StudentID: owner.ID}, nil
		},
	}
	var row *entity.File
	files := &stubFileRepo{
		CreateFn: func(ctx context.Context, file *entity.File) error {
			file.ID = uuid.New()
			row = file
			return nil
		},
	}
	storage := &stubStorage{}
	svc := NewFileService(files, &stubFolderRepo{}, studentFolders, users, storage, nil)

	file, err := svc.UploadToStudentFolder(context.Background(), owner.ID, folderID, pdfUpload())
	if err != nil {
		t.Fatal(err)
	}
	if row == nil || file.StudentFolderID == nil || *file.StudentFolderID != folderID {
		t.Fatal("row not bound to the subfolder")
	}
	if !strings.HasPrefix(file.FilePath, "students/"+sid+"/") {
		t.Fatalf("object key %q not under the student prefix", file.FilePath)
	}
	if len(storage.uploads) != 1 {
		t.Fatal("object not uploaded")
	}
	for key := range storage.uploads {
		if !strings.HasPrefix(key, BucketAthleteFiles+"/") {
			t.Fatalf("wrong bucket: %s", key)
		}
	}
}

func TestStoreFileCleansUpOrphanObject(t *testing.T) {
	owner := verifiedStudent()
	folderID := uuid.New()
	users := &stubUserRepo{
		FindByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.User, error) { return owner, nil },
	}
	studentFolders := &stubStudentFolderRepo{
		FindByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.StudentFolder, error) {
			return &entity.StudentFolder{ID: folderID, StudentID: owner.ID}, nil
		},
	}
	files := &stubFileRepo{
		CreateFn: func(ctx context.Context, file *entity.File) error { return errors.New("insert failed") },
	}
	storage := &stubStorage{}
	svc := NewFileService(files, &stubFolderRepo{}, studentFolders, users, storage, nil)

	if _, err := svc.UploadToStudentFolder(context.Background(), owner.ID, folderID, pdfUpload()); err == nil {
		t.Fatal("row failure must surface")
	}
	if len(storage.deleted) != 1 {
		t.Fatal("orphaned object not removed")
	}
}

func TestFileDeletePermissions(t *testing.T) {
	uploader := uuid.New()
	file := &entity.File{ID: uuid.New(), UploadedBy: uploader, FilePath: "students/a/b/c.pdf"}
	files := &stubFileRepo{
		FindByIDFn: func(ctx context.Context, id uuid.UUID) (*entity.File, error) { return file, nil },
		DeleteFn:   func(ctx context.Context, id uuid.UUID) error { return nil },
	}

	t.Run("stranger is refused", func(t *testing.T) {
		svc := NewFileService(files, &stubFolderRepo{}, &stubStudentFolderRepo{}, &stubUserRepo{}, &stubStorage{}, nil)
		if err := svc.Delete(context.Background(), uuid.New(), false, file.ID); !errors.Is(err, ErrForbidden) {
			t.Fatalf("got %v, want ErrForbidden", err)
		}
	})

	t.Run("uploader deletes row and object", func(t *testing.T) {
		storage := &stubStorage{}
		svc := NewFileService(files, &stubFolderRepo{}, &stubStudentFolderRepo{}, &stubUserRepo{}, storage, nil)
		if err := svc.Delete(context.Background(), uploader, false, file.ID); err != nil {
			t.Fatal(err)
		}
		if len(storage.deleted) != 1 {
			t.Fatal("object not removed")
		}
	})

	t.Run("admin override", func(t *testing.T) {
		storage := &stubStorage{}
		svc := NewFileService(files, &stubFolderRepo{}, &stubStudentFolderRepo{}, &stubUserRepo{}, storage, nil)
		if err := svc.Delete(context.Background(), uuid.New(), true, file.ID); err != nil {
			t.Fatal(err)
		}
	})
}

func TestSanitizeName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"waiver.pdf", "waiver.pdf"},
		{"../../etc/passwd", ".._.._etc_passwd"},
		{"a\\b.txt", "a_b.txt"},
		{"  ", "file"},
	}
	for _, tc := range cases {
		if got := sanitizeName(tc.in); got != tc.want {
			t.Errorf("sanitizeName(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
