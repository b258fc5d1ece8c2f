package service

import (
	"io"

	"athletehub/internal/entity"
)

// FileUpload is an incoming multipart file, read once.
type FileUpload struct {
	Reader      io.Reader
	Size        int64
	Filename    string
	ContentType string
}

type RegisterInput struct {
	Email           string
	Password        string
	ConfirmPassword string
	FullName        string
	Role            entity.UserRole
	StudentID       string
	Phone           string
	Course          string
	YearLevel       string
	Sport           string
	Position        string
	Department      string
	Title           string
	IDPicture       *FileUpload
}

// RegistrationResult reports the awaiting-code step: the email the
// challenge was sent to, and whether the ID picture upload degraded
// to a retry-later remediation.
type RegistrationResult struct {
	Email            string
	IDPictureStaged  bool
	IDPictureMessage string
}

type ConfirmSignupInput struct {
	Email string
	Code  string
}

type LoginInput struct {
	Email     string
	Password  string
	Remember  bool
	IPAddress *string
	UserAgent *string
}

type LoginResult struct {
	AccessToken      string
	ExpiresIn        int64
	RefreshToken     string
	RefreshExpiresIn int64
	Remember         bool
	User             *entity.User
}

type ResetPasswordInput struct {
	Email           string
	Code            string
	NewPassword     string
	ConfirmPassword string
}
