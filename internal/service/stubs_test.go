package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"time"

	"athletehub/internal/entity"

	"github.com/google/uuid"
)

type stubUserRepo struct {
	CreateFn          func(ctx context.Context, user *entity.User) error
	FindByIDFn        func(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByEmailFn     func(ctx context.Context, email string) (*entity.User, error)
	FindByStudentIDFn func(ctx context.Context, studentID string) (*entity.User, error)
	UpdateFn          func(ctx context.Context, user *entity.User) error
	ConfirmEmailFn    func(ctx context.Context, userID uuid.UUID) error
	SetVerifiedFn     func(ctx context.Context, userID uuid.UUID, verified bool) error
	ListFn            func(ctx context.Context, limit, offset int) ([]entity.User, error)
	ListByRoleFn      func(ctx context.Context, role entity.UserRole) ([]entity.User, error)
}

func (s *stubUserRepo) Create(ctx context.Context, user *entity.User) error {
	if s.CreateFn == nil {
		return errors.New("unexpected Create")
	}
	return s.CreateFn(ctx, user)
}

func (s *stubUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	if s.FindByIDFn == nil {
		return nil, nil
	}
	return s.FindByIDFn(ctx, id)
}

func (s *stubUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if s.FindByEmailFn == nil {
		return nil, nil
	}
	return s.FindByEmailFn(ctx, email)
}

func (s *stubUserRepo) FindByStudentID(ctx context.Context, studentID string) (*entity.User, error) {
	if s.FindByStudentIDFn == nil {
		return nil, nil
	}
	return s.FindByStudentIDFn(ctx, studentID)
}

func (s *stubUserRepo) Update(ctx context.Context, user *entity.User) error {
	if s.UpdateFn == nil {
		return nil
	}
	return s.UpdateFn(ctx, user)
}

func (s *stubUserRepo) ConfirmEmail(ctx context.Context, userID uuid.UUID) error {
	if s.ConfirmEmailFn == nil {
		return errors.New("unexpected ConfirmEmail")
	}
	return s.ConfirmEmailFn(ctx, userID)
}

func (s *stubUserRepo) SetVerified(ctx context.Context, userID uuid.UUID, verified bool) error {
	if s.SetVerifiedFn == nil {
		return errors.New("unexpected SetVerified")
	}
	return s.SetVerifiedFn(ctx, userID, verified)
}

func (s *stubUserRepo) List(ctx context.Context, limit, offset int) ([]entity.User, error) {
	if s.ListFn == nil {
		return nil, nil
	}
	return s.ListFn(ctx, limit, offset)
}

func (s *stubUserRepo) ListByRole(ctx context.Context, role entity.UserRole) ([]entity.User, error) {
	if s.ListByRoleFn == nil {
		return nil, nil
	}
	return s.ListByRoleFn(ctx, role)
}

type stubSessionRepo struct {
	CreateFn          func(ctx context.Context, session *entity.Session) error
	FindByTokenHashFn func(ctx context.Context, hash string) (*entity.Session, error)
	RotateTokenFn     func(ctx context.Context, sessionID uuid.UUID, newHash string, newExpiry time.Time) error
	RevokeFn          func(ctx context.Context, sessionID uuid.UUID) error
	RevokeAllByUserFn func(ctx context.Context, userID uuid.UUID) error
}

func (s *stubSessionRepo) Create(ctx context.Context, session *entity.Session) error {
	if s.CreateFn == nil {
		return errors.New("unexpected session Create")
	}
	return s.CreateFn(ctx, session)
}

func (s *stubSessionRepo) FindByTokenHash(ctx context.Context, hash string) (*entity.Session, error) {
	if s.FindByTokenHashFn == nil {
		return nil, nil
	}
	return s.FindByTokenHashFn(ctx, hash)
}

func (s *stubSessionRepo) RotateToken(ctx context.Context, sessionID uuid.UUID, newHash string, newExpiry time.Time) error {
	if s.RotateTokenFn == nil {
		return errors.New("unexpected RotateToken")
	}
	return s.RotateTokenFn(ctx, sessionID, newHash, newExpiry)
}

func (s *stubSessionRepo) Revoke(ctx context.Context, sessionID uuid.UUID) error {
	if s.RevokeFn == nil {
		return errors.New("unexpected Revoke")
	}
	return s.RevokeFn(ctx, sessionID)
}

func (s *stubSessionRepo) RevokeAllByUser(ctx context.Context, userID uuid.UUID) error {
	if s.RevokeAllByUserFn == nil {
		return nil
	}
	return s.RevokeAllByUserFn(ctx, userID)
}

func (s *stubSessionRepo) CleanupExpired(ctx context.Context) error {
	return nil
}

type stubChallengeRepo struct {
	CreateFn           func(ctx context.Context, code *entity.VerificationCode) error
	FindValidByTokenFn func(ctx context.Context, tokenHash string, purpose entity.ChallengePurpose) (*entity.VerificationCode, error)
	FindValidByCodeFn  func(ctx context.Context, userID uuid.UUID, codeHash string, purpose entity.ChallengePurpose) (*entity.VerificationCode, error)
	MarkUsedFn         func(ctx context.Context, id uuid.UUID) error
}

func (s *stubChallengeRepo) Create(ctx context.Context, code *entity.VerificationCode) error {
	if s.CreateFn == nil {
		return errors.New("unexpected challenge Create")
	}
	return s.CreateFn(ctx, code)
}

func (s *stubChallengeRepo) FindValidByToken(ctx context.Context, tokenHash string, purpose entity.ChallengePurpose) (*entity.VerificationCode, error) {
	if s.FindValidByTokenFn == nil {
		return nil, nil
	}
	return s.FindValidByTokenFn(ctx, tokenHash, purpose)
}

func (s *stubChallengeRepo) FindValidByCode(ctx context.Context, userID uuid.UUID, codeHash string, purpose entity.ChallengePurpose) (*entity.VerificationCode, error) {
	if s.FindValidByCodeFn == nil {
		return nil, nil
	}
	return s.FindValidByCodeFn(ctx, userID, codeHash, purpose)
}

func (s *stubChallengeRepo) MarkUsed(ctx context.Context, id uuid.UUID) error {
	if s.MarkUsedFn == nil {
		return errors.New("unexpected MarkUsed")
	}
	return s.MarkUsedFn(ctx, id)
}

type stubFolderRepo struct {
	CreateFn     func(ctx context.Context, folder *entity.Folder) error
	FindByIDFn   func(ctx context.Context, id uuid.UUID) (*entity.Folder, error)
	ListFn       func(ctx context.Context) ([]entity.Folder, error)
	ListPublicFn func(ctx context.Context) ([]entity.Folder, error)
	UpdateFn     func(ctx context.Context, folder *entity.Folder) error
	DeleteFn     func(ctx context.Context, id uuid.UUID) error
}

func (s *stubFolderRepo) Create(ctx context.Context, folder *entity.Folder) error {
	if s.CreateFn == nil {
		return errors.New("unexpected folder Create")
	}
	return s.CreateFn(ctx, folder)
}

func (s *stubFolderRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Folder, error) {
	if s.FindByIDFn == nil {
		return nil, nil
	}
	return s.FindByIDFn(ctx, id)
}

func (s *stubFolderRepo) List(ctx context.Context) ([]entity.Folder, error) {
	if s.ListFn == nil {
		return nil, nil
	}
	return s.ListFn(ctx)
}

func (s *stubFolderRepo) ListPublic(ctx context.Context) ([]entity.Folder, error) {
	if s.ListPublicFn == nil {
		return nil, nil
	}
	return s.ListPublicFn(ctx)
}

func (s *stubFolderRepo) Update(ctx context.Context, folder *entity.Folder) error {
	if s.UpdateFn == nil {
		return nil
	}
	return s.UpdateFn(ctx, folder)
}

func (s *stubFolderRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if s.DeleteFn == nil {
		return errors.New("unexpected folder Delete")
	}
	return s.DeleteFn(ctx, id)
}

type stubStudentFolderRepo struct {
	CreateFn            func(ctx context.Context, folder *entity.StudentFolder) error
	FindByIDFn          func(ctx context.Context, id uuid.UUID) (*entity.StudentFolder, error)
	FindByStudentFn     func(ctx context.Context, studentID uuid.UUID) (*entity.StudentFolder, error)
	ListBySportFolderFn func(ctx context.Context, sportFolderID uuid.UUID) ([]entity.StudentFolder, error)
	UpdateFn            func(ctx context.Context, folder *entity.StudentFolder) error
	DeleteFn            func(ctx context.Context, id uuid.UUID) error
}

func (s *stubStudentFolderRepo) Create(ctx context.Context, folder *entity.StudentFolder) error {
	if s.CreateFn == nil {
		return errors.New("unexpected student folder Create")
	}
	return s.CreateFn(ctx, folder)
}

func (s *stubStudentFolderRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.StudentFolder, error) {
	if s.FindByIDFn == nil {
		return nil, nil
	}
	return s.FindByIDFn(ctx, id)
}

func (s *stubStudentFolderRepo) FindByStudent(ctx context.Context, studentID uuid.UUID) (*entity.StudentFolder, error) {
	if s.FindByStudentFn == nil {
		return nil, nil
	}
	return s.FindByStudentFn(ctx, studentID)
}

func (s *stubStudentFolderRepo) ListBySportFolder(ctx context.Context, sportFolderID uuid.UUID) ([]entity.StudentFolder, error) {
	if s.ListBySportFolderFn == nil {
		return nil, nil
	}
	return s.ListBySportFolderFn(ctx, sportFolderID)
}

func (s *stubStudentFolderRepo) Update(ctx context.Context, folder *entity.StudentFolder) error {
	if s.UpdateFn == nil {
		return nil
	}
	return s.UpdateFn(ctx, folder)
}

func (s *stubStudentFolderRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if s.DeleteFn == nil {
		return errors.New("unexpected student folder Delete")
	}
	return s.DeleteFn(ctx, id)
}

type stubFileRepo struct {
	CreateFn               func(ctx context.Context, file *entity.File) error
	FindByIDFn             func(ctx context.Context, id uuid.UUID) (*entity.File, error)
	ListByFolderFn         func(ctx context.Context, folderID uuid.UUID) ([]entity.File, error)
	ListByStudentFolderFn  func(ctx context.Context, studentFolderID uuid.UUID) ([]entity.File, error)
	ListByStudentFoldersFn func(ctx context.Context, studentFolderIDs []uuid.UUID) ([]entity.File, error)
	ListByUploaderFn       func(ctx context.Context, userID uuid.UUID) ([]entity.File, error)
	DeleteFn               func(ctx context.Context, id uuid.UUID) error
}

func (s *stubFileRepo) Create(ctx context.Context, file *entity.File) error {
	if s.CreateFn == nil {
		return errors.New("unexpected file Create")
	}
	return s.CreateFn(ctx, file)
}

func (s *stubFileRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.File, error) {
	if s.FindByIDFn == nil {
		return nil, nil
	}
	return s.FindByIDFn(ctx, id)
}

func (s *stubFileRepo) ListByFolder(ctx context.Context, folderID uuid.UUID) ([]entity.File, error) {
	if s.ListByFolderFn == nil {
		return nil, nil
	}
	return s.ListByFolderFn(ctx, folderID)
}

func (s *stubFileRepo) ListByStudentFolder(ctx context.Context, studentFolderID uuid.UUID) ([]entity.File, error) {
	if s.ListByStudentFolderFn == nil {
		return nil, nil
	}
	return s.ListByStudentFolderFn(ctx, studentFolderID)
}

func (s *stubFileRepo) ListByStudentFolders(ctx context.Context, studentFolderIDs []uuid.UUID) ([]entity.File, error) {
	if s.ListByStudentFoldersFn == nil {
		return nil, nil
	}
	return s.ListByStudentFoldersFn(ctx, studentFolderIDs)
}

func (s *stubFileRepo) ListByUploader(ctx context.Context, userID uuid.UUID) ([]entity.File, error) {
	if s.ListByUploaderFn == nil {
		return nil, nil
	}
	return s.ListByUploaderFn(ctx, userID)
}

func (s *stubFileRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if s.DeleteFn == nil {
		return errors.New("unexpected file Delete")
	}
	return s.DeleteFn(ctx, id)
}

type stubSecurityLogRepo struct {
	logs []entity.SecurityLog
}

func (s *stubSecurityLogRepo) Log(ctx context.Context, log *entity.SecurityLog) error {
	s.logs = append(s.logs, *log)
	return nil
}

type stubEmailSender struct {
	signupCalls   int
	recoveryCalls int
	lastEmail     string
	lastCode      string
	lastToken     string
	err           error
}

func (s *stubEmailSender) SendSignupCode(ctx context.Context, email, code, token string) error {
	s.signupCalls++
	s.lastEmail, s.lastCode, s.lastToken = email, code, token
	return s.err
}

func (s *stubEmailSender) SendRecoveryCode(ctx context.Context, email, code, token string) error {
	s.recoveryCalls++
	s.lastEmail, s.lastCode, s.lastToken = email, code, token
	return s.err
}

// plainHasher keeps test passwords readable.
type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (plainHasher) Verify(hash, password string) bool {
	return hash == "hashed:"+password
}

type stubAccessIssuer struct{}

func (stubAccessIssuer) IssueAccessToken(user entity.User, sessionID uuid.UUID) (string, time.Duration, error) {
	return "access-" + sessionID.String(), 15 * time.Minute, nil
}

type fixedChallenger struct {
	token string
	code  string
	err   error
}

func (c fixedChallenger) NewChallenge() (string, string, error) {
	return c.token, c.code, c.err
}

type stubStorage struct {
	uploads   map[string]int64
	deleted   []string
	uploadErr error
}

func (s *stubStorage) Upload(ctx context.Context, bucket, key string, r io.Reader, size int64, contentType string) error {
	if s.uploadErr != nil {
		return s.uploadErr
	}
	if s.uploads == nil {
		s.uploads = map[string]int64{}
	}
	s.uploads[bucket+"/"+key] = size
	return nil
}

func (s *stubStorage) Download(ctx context.Context, bucket, key string) (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader([]byte("data"))), nil
}

func (s *stubStorage) PublicURL(bucket, key string) string {
	return "http://storage.local/" + bucket + "/" + key
}

func (s *stubStorage) PresignedURL(ctx context.Context, bucket, key string, ttl time.Duration) (string, error) {
	return "http://storage.local/presigned/" + bucket + "/" + key, nil
}

func (s *stubStorage) Delete(ctx context.Context, bucket, key string) error {
	s.deleted = append(s.deleted, bucket+"/"+key)
	return nil
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}
