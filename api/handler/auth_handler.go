package handler

import (
	"errors"
	"net/http"
	"time"

	"athletehub/api/middleware"
	"athletehub/internal/dto"
	"athletehub/internal/entity"
	"athletehub/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type AuthHandler struct {
	Service           *service.AuthService
	Validate          *validator.Validate
	RefreshCookieName string
	CookieDomain      string
	SecureCookies     bool
	SameSite          http.SameSite
}

func NewAuthHandler(svc *service.AuthService, validate *validator.Validate) *AuthHandler {
	return &AuthHandler{
		Service:           svc,
		Validate:          validate,
		RefreshCookieName: "refresh_token",
		SecureCookies:     true,
		SameSite:          http.SameSiteStrictMode,
	}
}

// Register accepts the sign-up form as multipart so the ID picture
// rides along with the fields.
func (h *AuthHandler) Register(c echo.Context) error {
	input := service.RegisterInput{
		Email:           c.FormValue("email"),
		Password:        c.FormValue("password"),
		ConfirmPassword: c.FormValue("confirm_password"),
		FullName:        c.FormValue("full_name"),
		Role:            entity.UserRole(c.FormValue("role")),
		StudentID:       c.FormValue("student_id"),
		Phone:           c.FormValue("phone"),
		Course:          c.FormValue("course"),
		YearLevel:       c.FormValue("year_level"),
		Sport:           c.FormValue("sport"),
		Position:        c.FormValue("position"),
		Department:      c.FormValue("department"),
		Title:           c.FormValue("title"),
	}

	if header, err := c.FormFile("id_picture"); err == nil {
		upload, file, err := openUpload(header)
		if err != nil {
			return writeError(c, http.StatusBadRequest, err)
		}
		defer file.Close()
		input.IDPicture = upload
	}

	result, err := h.Service.Register(c.Request().Context(), input)
	if err != nil {
		return writeServiceError(c, err)
	}

	message := "Account created! Check your email for the confirmation code."
	if result.IDPictureMessage != "" {
		message = message + " " + result.IDPictureMessage
	}
	return c.JSON(http.StatusCreated, dto.RegisterResponse{Email: result.Email, Message: message})
}

func (h *AuthHandler) ConfirmSignup(c echo.Context) error {
	var req dto.ConfirmSignupRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := h.validate(req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	input := service.ConfirmSignupInput{Email: req.Email, Code: req.Code}
	if err := h.Service.ConfirmSignup(c.Request().Context(), input); err != nil {
		return writeServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := h.validate(req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	input := service.LoginInput{
		Email:     req.Email,
		Password:  req.Password,
		Remember:  req.Remember,
		IPAddress: stringPtr(c.RealIP()),
		UserAgent: stringPtr(c.Request().UserAgent()),
	}
	result, err := h.Service.Login(c.Request().Context(), input)
	if err != nil {
		return writeServiceError(c, err)
	}
	h.setRefreshCookie(c, result)
	return c.JSON(http.StatusOK, mapLoginResponse(result))
}

func (h *AuthHandler) Refresh(c echo.Context) error {
	refreshToken := h.readRefreshCookie(c)
	if refreshToken == "" {
		return writeError(c, http.StatusUnauthorized, errors.New("missing refresh token"))
	}
	result, err := h.Service.Refresh(c.Request().Context(), refreshToken)
	if err != nil {
		h.clearRefreshCookie(c)
		return writeServiceError(c, err)
	}
	h.setRefreshCookie(c, result)
	return c.JSON(http.StatusOK, mapLoginResponse(result))
}

func (h *AuthHandler) Logout(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, errors.New("unauthorized"))
	}
	sessionID, ok := middleware.SessionIDFromContext(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, errors.New("unauthorized"))
	}
	if err := h.Service.Logout(c.Request().Context(), sessionID, &userID, stringPtr(c.RealIP())); err != nil {
		return writeServiceError(c, err)
	}
	h.clearRefreshCookie(c)
	return c.NoContent(http.StatusNoContent)
}

func (h *AuthHandler) LogoutAll(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, errors.New("unauthorized"))
	}
	if err := h.Service.LogoutAll(c.Request().Context(), userID, stringPtr(c.RealIP())); err != nil {
		return writeServiceError(c, err)
	}
	h.clearRefreshCookie(c)
	return c.NoContent(http.StatusNoContent)
}

func (h *AuthHandler) PasswordForgot(c echo.Context) error {
	var req dto.PasswordForgotRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := h.validate(req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := h.Service.ForgotPassword(c.Request().Context(), req.Email); err != nil {
		return writeServiceError(c, err)
	}
	return c.NoContent(http.StatusAccepted)
}

func (h *AuthHandler) PasswordReset(c echo.Context) error {
	var req dto.PasswordResetRequest
	if err := decodeJSON(c, &req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	if err := h.validate(req); err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	input := service.ResetPasswordInput{
		Email:           req.Email,
		Code:            req.Code,
		NewPassword:     req.NewPassword,
		ConfirmPassword: req.ConfirmPassword,
	}
	if err := h.Service.ResetPassword(c.Request().Context(), input); err != nil {
		return writeServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *AuthHandler) Me(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, errors.New("unauthorized"))
	}
	user, err := h.Service.GetCurrentUser(c.Request().Context(), userID)
	if err != nil {
		return writeServiceError(c, err)
	}
	if user == nil {
		return writeError(c, http.StatusNotFound, errors.New("user not found"))
	}
	return c.JSON(http.StatusOK, dto.UserResponseFromEntity(user))
}

func (h *AuthHandler) UploadProfilePicture(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return writeError(c, http.StatusUnauthorized, errors.New("unauthorized"))
	}
	header, err := c.FormFile("picture")
	if err != nil {
		return writeError(c, http.StatusBadRequest, errors.New("missing picture"))
	}
	upload, file, err := openUpload(header)
	if err != nil {
		return writeError(c, http.StatusBadRequest, err)
	}
	defer file.Close()

	url, err := h.Service.UploadProfilePicture(c.Request().Context(), userID, *upload)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, dto.ProfilePictureResponse{URL: url})
}

func (h *AuthHandler) validate(payload any) error {
	if h.Validate == nil {
		return nil
	}
	return h.Validate.Struct(payload)
}

// setRefreshCookie honors the remember choice: a non-remembered
// session gets a session cookie (MaxAge 0) so it dies with the
// browser, a remembered one is persisted for the refresh lifetime.
func (h *AuthHandler) setRefreshCookie(c echo.Context, result *service.LoginResult) {
	if result.RefreshToken == "" {
		return
	}
	cookie := &http.Cookie{
		Name:     h.RefreshCookieName,
		Value:    result.RefreshToken,
		Path:     "/",
		Domain:   h.CookieDomain,
		HttpOnly: true,
		Secure:   h.SecureCookies,
		SameSite: h.SameSite,
	}
	if result.Remember {
		maxAge := int(result.RefreshExpiresIn)
		if maxAge < 0 {
			maxAge = 0
		}
		cookie.MaxAge = maxAge
		cookie.Expires = time.Now().Add(time.Duration(result.RefreshExpiresIn) * time.Second)
	}
	c.SetCookie(cookie)
}

func (h *AuthHandler) clearRefreshCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     h.RefreshCookieName,
		Value:    "",
		Path:     "/",
		Domain:   h.CookieDomain,
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.SecureCookies,
		SameSite: h.SameSite,
	})
}

func (h *AuthHandler) readRefreshCookie(c echo.Context) string {
	cookie, err := c.Cookie(h.RefreshCookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

func mapLoginResponse(result *service.LoginResult) *dto.LoginResponse {
	if result == nil {
		return &dto.LoginResponse{}
	}
	response := &dto.LoginResponse{
		AccessToken: result.AccessToken,
		ExpiresIn:   result.ExpiresIn,
	}
	if result.User != nil {
		user := dto.UserResponseFromEntity(result.User)
		response.User = &user
	}
	return response
}
