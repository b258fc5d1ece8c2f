package service

import "errors"

var (
	ErrInvalidInput           = errors.New("invalid input")
	ErrPasswordMismatch       = errors.New("passwords do not match")
	ErrPasswordTooShort       = errors.New("password must be at least 6 characters")
	ErrStudentIDRequired      = errors.New("student id is required")
	ErrIDPictureRequired      = errors.New("an id picture is required")
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrStudentIDTaken         = errors.New("student id already registered")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrEmailNotConfirmed      = errors.New("email not confirmed")
	ErrInvalidCode            = errors.New("invalid or expired code")
	ErrCodeNotUsable          = errors.New("code not recognized; use the full token or the link from your email")
	ErrInvalidToken           = errors.New("invalid or expired token")
	ErrUserNotFound           = errors.New("user not found")
	ErrNotVerified            = errors.New("account pending verification by an administrator")
	ErrForbidden              = errors.New("forbidden")
	ErrSubfolderExists        = errors.New("you can only have one subfolder; delete the existing one first")
	ErrFolderNotFound         = errors.New("folder not found")
	ErrFileNotFound           = errors.New("file not found")
	ErrAnnouncementNotFound   = errors.New("announcement not found")
)
