package service

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"athletehub/internal/entity"
	"athletehub/internal/repository"
	"athletehub/internal/utils"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
)

const dummyPasswordHash = "$2a$10$CwTycUXWue0Thq9StjUM0uJ8yQbWc1x9uxw2sQ2sXUNx5x9xJ9F2S"

type AuthService struct {
	users        repository.UserRepository
	sessions     repository.SessionRepository
	challenges   repository.VerificationCodeRepository
	securityLogs repository.SecurityLogRepository

	emailSender  EmailSender
	passwordHash PasswordHasher
	accessTokens AccessTokenIssuer
	challenger   ChallengeIssuer
	storage      ObjectStorage
	clock        Clock
	logger       logrus.FieldLogger
	config       AuthConfig
}

func NewAuthService(
	users repository.UserRepository,
	sessions repository.SessionRepository,
	challenges repository.VerificationCodeRepository,
	securityLogs repository.SecurityLogRepository,
	emailSender EmailSender,
	passwordHash PasswordHasher,
	accessTokens AccessTokenIssuer,
	challenger ChallengeIssuer,
	storage ObjectStorage,
	clock Clock,
	logger logrus.FieldLogger,
	config AuthConfig,
) *AuthService {
	return &AuthService{
		users:        users,
		sessions:     sessions,
		challenges:   challenges,
		securityLogs: securityLogs,
		emailSender:  emailSender,
		passwordHash: passwordHash,
		accessTokens: accessTokens,
		challenger:   challenger,
		storage:      storage,
		clock:        clock,
		logger:       logger,
		config:       config,
	}
}

// Register creates the account, writes the profile columns and the ID
// picture as best-effort sub-steps, and emails a signup challenge.
// Validation failures happen before any write; the account only
// becomes usable after ConfirmSignup.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*RegistrationResult, error) {
	if err := validateRegistration(&input); err != nil {
		return nil, err
	}

	email := utils.NormalizeEmail(input.Email)
	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if existing.EmailConfirmedAt != nil {
			return nil, ErrEmailAlreadyRegistered
		}
		// Unconfirmed re-registration resends the code.
		if err := s.sendChallenge(ctx, existing, entity.PurposeSignup); err != nil {
			return nil, err
		}
		return &RegistrationResult{Email: email}, nil
	}

	if input.Role == entity.UserRoleStudent {
		taken, err := s.users.FindByStudentID(ctx, strings.TrimSpace(input.StudentID))
		if err != nil {
			return nil, err
		}
		if taken != nil {
			return nil, ErrStudentIDTaken
		}
	}

	hash, err := s.passwordHash.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Email:        email,
		PasswordHash: &hash,
		Role:         input.Role,
		FullName:     strings.TrimSpace(input.FullName),
		IsActive:     true,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	// Profile enrichment is best-effort: the account already exists,
	// a failed metadata write must not fail the signup.
	user.StudentID = optionalString(input.StudentID)
	user.Phone = optionalString(input.Phone)
	user.Course = optionalString(input.Course)
	user.YearLevel = optionalString(input.YearLevel)
	user.Sport = optionalString(input.Sport)
	user.Position = optionalString(input.Position)
	user.Department = optionalString(input.Department)
	user.Title = optionalString(input.Title)
	if err := s.users.Update(ctx, user); err != nil {
		s.logf("profile enrichment failed", logrus.Fields{"user_id": user.ID, "error": err.Error()})
	}

	result := &RegistrationResult{Email: email, IDPictureStaged: true}
	if input.IDPicture != nil {
		if err := s.uploadIDPicture(ctx, user, input); err != nil {
			s.logf("id picture upload failed", logrus.Fields{"user_id": user.ID, "error": err.Error()})
			result.IDPictureStaged = false
			result.IDPictureMessage = "ID picture could not be stored; upload it again after confirming your email"
		}
	}

	if err := s.sendChallenge(ctx, user, entity.PurposeSignup); err != nil {
		return nil, err
	}

	_ = s.logSecurity(ctx, &user.ID, nil, entity.SignupStarted, map[string]any{"email": email})
	return result, nil
}

// ConfirmSignup redeems a signup challenge. A bare 6-digit code is
// bound to the given email; anything longer is treated as the full
// token from the emailed link and needs no email at all.
func (s *AuthService) ConfirmSignup(ctx context.Context, input ConfirmSignupInput) error {
	code := strings.TrimSpace(input.Code)
	challenge, err := s.resolveChallenge(ctx, input.Email, code, entity.PurposeSignup)
	if err != nil {
		return err
	}

	if err := s.users.ConfirmEmail(ctx, challenge.UserID); err != nil {
		return err
	}
	if err := s.challenges.MarkUsed(ctx, challenge.ID); err != nil {
		return err
	}
	_ = s.logSecurity(ctx, &challenge.UserID, nil, entity.SignupConfirmed, nil)
	return nil
}

func (s *AuthService) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	if strings.TrimSpace(input.Email) == "" || strings.TrimSpace(input.Password) == "" {
		return nil, ErrInvalidInput
	}

	email := utils.NormalizeEmail(input.Email)
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil || user.PasswordHash == nil {
		_ = s.passwordHash.Verify(dummyPasswordHash, input.Password)
		_ = s.logSecurity(ctx, nil, input.IPAddress, entity.LoginFailed, map[string]any{"email": email})
		return nil, ErrInvalidCredentials
	}

	if !s.passwordHash.Verify(*user.PasswordHash, input.Password) {
		_ = s.logSecurity(ctx, &user.ID, input.IPAddress, entity.LoginFailed, map[string]any{"email": email})
		return nil, ErrInvalidCredentials
	}

	if user.EmailConfirmedAt == nil {
		return nil, ErrEmailNotConfirmed
	}

	result, err := s.createSessionAndTokens(ctx, user, input.Remember, input.IPAddress, input.UserAgent)
	if err != nil {
		return nil, err
	}

	_ = s.logSecurity(ctx, &user.ID, input.IPAddress, entity.LoginSuccess, map[string]any{"remember": input.Remember})
	return result, nil
}

func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*LoginResult, error) {
	if strings.TrimSpace(refreshToken) == "" {
		return nil, ErrInvalidInput
	}

	session, err := s.sessions.FindByTokenHash(ctx, utils.HashToken(refreshToken))
	if err != nil {
		return nil, err
	}
	if session == nil {
		// Expired or revoked; non-remembered sessions land here once
		// past the short TTL, which is the forced sign-out policy.
		return nil, ErrInvalidToken
	}

	user, err := s.users.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	newRefreshToken, newRefreshHash, newRefreshExpiry, err := s.buildRefreshToken(session.RememberMe)
	if err != nil {
		return nil, err
	}
	if err := s.sessions.RotateToken(ctx, session.ID, newRefreshHash, newRefreshExpiry); err != nil {
		return nil, err
	}

	accessToken, expiresIn, err := s.accessTokens.IssueAccessToken(*user, session.ID)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		AccessToken:      accessToken,
		ExpiresIn:        int64(expiresIn.Seconds()),
		RefreshToken:     newRefreshToken,
		RefreshExpiresIn: int64(newRefreshExpiry.Sub(s.now()).Seconds()),
		Remember:         session.RememberMe,
		User:             user,
	}, nil
}

func (s *AuthService) Logout(ctx context.Context, sessionID uuid.UUID, userID *uuid.UUID, ipAddress *string) error {
	if err := s.sessions.Revoke(ctx, sessionID); err != nil {
		return err
	}
	_ = s.logSecurity(ctx, userID, ipAddress, entity.Logout, nil)
	return nil
}

func (s *AuthService) LogoutAll(ctx context.Context, userID uuid.UUID, ipAddress *string) error {
	if err := s.sessions.RevokeAllByUser(ctx, userID); err != nil {
		return err
	}
	_ = s.logSecurity(ctx, &userID, ipAddress, entity.SessionRevoked, map[string]any{"scope": "all"})
	return nil
}

// ForgotPassword always succeeds from the caller's point of view so
// that the response never reveals whether the email is registered.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	if strings.TrimSpace(email) == "" {
		return ErrInvalidInput
	}

	user, err := s.users.FindByEmail(ctx, utils.NormalizeEmail(email))
	if err != nil {
		return err
	}
	if user == nil || user.EmailConfirmedAt == nil {
		return nil
	}

	if err := s.sendChallenge(ctx, user, entity.PurposeRecovery); err != nil {
		return err
	}
	_ = s.logSecurity(ctx, &user.ID, nil, entity.Reset, map[string]any{"step": "requested"})
	return nil
}

// ResetPassword finishes the recovery flow. Resolution order: a value
// longer than six characters is the full token; a bare 6-digit code is
// honored only against a live challenge bound to exactly the given
// email, and a miss tells the user to fall back to the token or link
// rather than guessing further.
func (s *AuthService) ResetPassword(ctx context.Context, input ResetPasswordInput) error {
	if len(input.NewPassword) < 6 {
		return ErrPasswordTooShort
	}
	if input.NewPassword != input.ConfirmPassword {
		return ErrPasswordMismatch
	}

	code := strings.TrimSpace(input.Code)
	challenge, err := s.resolveChallenge(ctx, input.Email, code, entity.PurposeRecovery)
	if err != nil {
		return err
	}

	user, err := s.users.FindByID(ctx, challenge.UserID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	hash, err := s.passwordHash.Hash(input.NewPassword)
	if err != nil {
		return err
	}
	user.PasswordHash = &hash
	if err := s.users.Update(ctx, user); err != nil {
		return err
	}
	if err := s.challenges.MarkUsed(ctx, challenge.ID); err != nil {
		return err
	}

	_ = s.sessions.RevokeAllByUser(ctx, user.ID)
	_ = s.logSecurity(ctx, &user.ID, nil, entity.Reset, map[string]any{"step": "completed"})
	return nil
}

// UploadProfilePicture stores the picture and persists its public URL
// on the profile row.
func (s *AuthService) UploadProfilePicture(ctx context.Context, userID uuid.UUID, upload FileUpload) (string, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", ErrUserNotFound
	}

	key := fmt.Sprintf("%s/%s%s", userID, userID, fileExt(upload.Filename))
	if err := s.storage.Upload(ctx, BucketProfilePictures, key, upload.Reader, upload.Size, upload.ContentType); err != nil {
		return "", err
	}

	url := s.storage.PublicURL(BucketProfilePictures, key)
	user.ProfilePictureURL = &url
	if err := s.users.Update(ctx, user); err != nil {
		return "", err
	}
	return url, nil
}

func (s *AuthService) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	return s.users.FindByID(ctx, userID)
}

func (s *AuthService) RevokeUserSessions(ctx context.Context, userID uuid.UUID) error {
	return s.sessions.RevokeAllByUser(ctx, userID)
}

// resolveChallenge applies the code-or-token resolution shared by the
// signup and recovery flows.
func (s *AuthService) resolveChallenge(
	ctx context.Context,
	email string,
	code string,
	purpose entity.ChallengePurpose,
) (*entity.VerificationCode, error) {
	notUsable := ErrInvalidCode
	if purpose == entity.PurposeRecovery {
		notUsable = ErrCodeNotUsable
	}

	switch {
	case len(code) > CodeLength:
		challenge, err := s.challenges.FindValidByToken(ctx, utils.HashToken(code), purpose)
		if err != nil {
			return nil, err
		}
		if challenge == nil {
			return nil, ErrInvalidToken
		}
		// A token presented together with an email must belong to it.
		if strings.TrimSpace(email) != "" {
			user, err := s.users.FindByID(ctx, challenge.UserID)
			if err != nil {
				return nil, err
			}
			if user == nil || user.Email != utils.NormalizeEmail(email) {
				return nil, ErrInvalidToken
			}
		}
		return challenge, nil

	case len(code) == CodeLength && utils.IsDigits(code):
		if strings.TrimSpace(email) == "" {
			return nil, ErrInvalidInput
		}
		user, err := s.users.FindByEmail(ctx, utils.NormalizeEmail(email))
		if err != nil {
			return nil, err
		}
		if user == nil {
			return nil, notUsable
		}
		challenge, err := s.challenges.FindValidByCode(ctx, user.ID, utils.HashToken(code), purpose)
		if err != nil {
			return nil, err
		}
		if challenge == nil {
			return nil, notUsable
		}
		return challenge, nil

	default:
		return nil, ErrInvalidInput
	}
}

func (s *AuthService) uploadIDPicture(ctx context.Context, user *entity.User, input RegisterInput) error {
	key := fmt.Sprintf("id-pictures/%d-%s%s",
		s.now().Unix(), strings.TrimSpace(input.StudentID), fileExt(input.IDPicture.Filename))
	if err := s.storage.Upload(ctx, BucketProfilePictures, key,
		input.IDPicture.Reader, input.IDPicture.Size, input.IDPicture.ContentType); err != nil {
		return err
	}

	url := s.storage.PublicURL(BucketProfilePictures, key)
	user.IDPictureURL = &url
	return s.users.Update(ctx, user)
}

func (s *AuthService) sendChallenge(ctx context.Context, user *entity.User, purpose entity.ChallengePurpose) error {
	token, code, err := s.challenger.NewChallenge()
	if err != nil {
		return err
	}

	ttl := s.signupCodeTTL()
	if purpose == entity.PurposeRecovery {
		ttl = s.recoveryCodeTTL()
	}
	challenge := &entity.VerificationCode{
		UserID:    user.ID,
		TokenHash: utils.HashToken(token),
		CodeHash:  utils.HashToken(code),
		Purpose:   purpose,
		ExpiresAt: s.now().Add(ttl),
	}
	if err := s.challenges.Create(ctx, challenge); err != nil {
		return err
	}

	if s.emailSender == nil {
		return nil
	}
	if purpose == entity.PurposeRecovery {
		return s.emailSender.SendRecoveryCode(ctx, user.Email, code, token)
	}
	return s.emailSender.SendSignupCode(ctx, user.Email, code, token)
}

func (s *AuthService) createSessionAndTokens(
	ctx context.Context,
	user *entity.User,
	remember bool,
	ipAddress *string,
	userAgent *string,
) (*LoginResult, error) {
	refreshToken, refreshHash, refreshExpiry, err := s.buildRefreshToken(remember)
	if err != nil {
		return nil, err
	}

	session := &entity.Session{
		UserID:     user.ID,
		TokenHash:  refreshHash,
		RememberMe: remember,
		IPAddress:  ipAddress,
		UserAgent:  userAgent,
		ExpiresAt:  refreshExpiry,
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, err
	}

	accessToken, expiresIn, err := s.accessTokens.IssueAccessToken(*user, session.ID)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		AccessToken:      accessToken,
		ExpiresIn:        int64(expiresIn.Seconds()),
		RefreshToken:     refreshToken,
		RefreshExpiresIn: int64(refreshExpiry.Sub(s.now()).Seconds()),
		Remember:         remember,
		User:             user,
	}, nil
}

func (s *AuthService) buildRefreshToken(remember bool) (string, string, time.Time, error) {
	rawToken, err := utils.GenerateRandomToken(48)
	if err != nil {
		return "", "", time.Time{}, err
	}
	ttl := s.shortSessionTTL()
	if remember {
		ttl = s.refreshTokenTTL()
	}
	expiresAt := s.now().Add(ttl)
	return rawToken, utils.HashToken(rawToken), expiresAt, nil
}

func (s *AuthService) logSecurity(
	ctx context.Context,
	userID *uuid.UUID,
	ipAddress *string,
	action entity.SecurityAction,
	metadata map[string]any,
) error {
	if s.securityLogs == nil {
		return nil
	}
	var payload datatypes.JSON
	if metadata != nil {
		bytes, err := json.Marshal(metadata)
		if err != nil {
			return err
		}
		payload = datatypes.JSON(bytes)
	}

	log := &entity.SecurityLog{
		UserID:    userID,
		IPAddress: ipAddress,
		Action:    action,
		Metadata:  payload,
	}
	return s.securityLogs.Log(ctx, log)
}

func (s *AuthService) logf(message string, fields logrus.Fields) {
	if s.logger == nil {
		return
	}
	s.logger.WithFields(fields).Warn(message)
}

func (s *AuthService) now() time.Time {
	if s.clock == nil {
		return time.Now()
	}
	return s.clock.Now()
}

func (s *AuthService) signupCodeTTL() time.Duration {
	if s.config.SignupCodeTTL > 0 {
		return s.config.SignupCodeTTL
	}
	return 24 * time.Hour
}

func (s *AuthService) recoveryCodeTTL() time.Duration {
	if s.config.RecoveryCodeTTL > 0 {
		return s.config.RecoveryCodeTTL
	}
	return 30 * time.Minute
}

func (s *AuthService) refreshTokenTTL() time.Duration {
	if s.config.RefreshTokenTTL > 0 {
		return s.config.RefreshTokenTTL
	}
	return 30 * 24 * time.Hour
}

func (s *AuthService) shortSessionTTL() time.Duration {
	if s.config.ShortSessionTTL > 0 {
		return s.config.ShortSessionTTL
	}
	return 12 * time.Hour
}

func validateRegistration(input *RegisterInput) error {
	if strings.TrimSpace(input.Email) == "" || input.Password == "" || strings.TrimSpace(input.FullName) == "" {
		return ErrInvalidInput
	}
	if input.Password != input.ConfirmPassword {
		return ErrPasswordMismatch
	}
	if len(input.Password) < 6 {
		return ErrPasswordTooShort
	}
	if input.Role == "" {
		input.Role = entity.UserRoleStudent
	}
	if input.Role != entity.UserRoleStudent && input.Role != entity.UserRoleAdmin {
		return ErrInvalidInput
	}
	if input.Role == entity.UserRoleStudent {
		if strings.TrimSpace(input.StudentID) == "" {
			return ErrStudentIDRequired
		}
		if input.IDPicture == nil {
			return ErrIDPictureRequired
		}
	}
	return nil
}

func optionalString(value string) *string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func fileExt(filename string) string {
	ext := filepath.Ext(filename)
	if ext == "" {
		return ".bin"
	}
	return strings.ToLower(ext)
}
