package dto

import (
	"time"

	"athletehub/internal/entity"
)

type ConfirmSignupRequest struct {
	Email string `json:"email" validate:"omitempty,email"`
	Code  string `json:"code" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Remember bool   `json:"remember"`
}

type LoginResponse struct {
	AccessToken      string        `json:"access_token,omitempty"`
	ExpiresIn        int64         `json:"expires_in,omitempty"`
	RefreshToken     string        `json:"refresh_token,omitempty"`
	RefreshExpiresIn int64         `json:"refresh_expires_in,omitempty"`
	User             *UserResponse `json:"user,omitempty"`
}

type RegisterResponse struct {
	Email   string `json:"email"`
	Message string `json:"message"`
}

type PasswordForgotRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type PasswordResetRequest struct {
	Email           string `json:"email" validate:"omitempty,email"`
	Code            string `json:"code" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
}

type ProfilePictureResponse struct {
	URL string `json:"url"`
}

type UserResponse struct {
	ID                string     `json:"id"`
	Email             string     `json:"email"`
	Role              string     `json:"role"`
	FullName          string     `json:"full_name"`
	StudentID         *string    `json:"student_id,omitempty"`
	Phone             *string    `json:"phone,omitempty"`
	Course            *string    `json:"course,omitempty"`
	YearLevel         *string    `json:"year_level,omitempty"`
	Sport             *string    `json:"sport,omitempty"`
	Position          *string    `json:"position,omitempty"`
	Department        *string    `json:"department,omitempty"`
	Title             *string    `json:"title,omitempty"`
	ProfilePictureURL *string    `json:"profile_picture_url,omitempty"`
	IDPictureURL      *string    `json:"id_picture_url,omitempty"`
	IsVerified        bool       `json:"is_verified"`
	EmailConfirmedAt  *time.Time `json:"email_confirmed_at,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

func UserResponseFromEntity(user *entity.User) UserResponse {
	return UserResponse{
		ID:                user.ID.String(),
		Email:             user.Email,
		Role:              string(user.Role),
		FullName:          user.FullName,
		StudentID:         user.StudentID,
		Phone:             user.Phone,
		Course:            user.Course,
		YearLevel:         user.YearLevel,
		Sport:             user.Sport,
		Position:          user.Position,
		Department:        user.Department,
		Title:             user.Title,
		ProfilePictureURL: user.ProfilePictureURL,
		IDPictureURL:      user.IDPictureURL,
		IsVerified:        user.IsVerified,
		EmailConfirmedAt:  user.EmailConfirmedAt,
		CreatedAt:         user.CreatedAt,
		UpdatedAt:         user.UpdatedAt,
	}
}

func UserResponsesFromEntities(users []entity.User) []UserResponse {
	responses := make([]UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, UserResponseFromEntity(&users[i]))
	}
	return responses
}
