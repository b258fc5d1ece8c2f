package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/resend/resend-go/v2"
)

// ResendEmailSender delivers verification and recovery emails through
// Resend. Each mail carries both the 6-digit code and a deep link with
// the full token, so either redemption path works.
type ResendEmailSender struct {
	Client      *resend.Client
	From        string
	AppBaseURL  string
	ConfirmPath string
	ResetPath   string
}

func NewResendEmailSender(apiKey string, from string, appBaseURL string) *ResendEmailSender {
	if strings.TrimSpace(apiKey) == "" || strings.TrimSpace(from) == "" {
		return &ResendEmailSender{}
	}
	return &ResendEmailSender{
		Client:      resend.NewClient(apiKey),
		From:        from,
		AppBaseURL:  strings.TrimRight(appBaseURL, "/"),
		ConfirmPath: "/confirm-email",
		ResetPath:   "/reset-password",
	}
}

func (s *ResendEmailSender) SendSignupCode(ctx context.Context, email string, code string, token string) error {
	link := s.buildURL(s.ConfirmPath, token, "signup")
	subject := "Confirm your email"
	html := fmt.Sprintf(
		"<p>Your confirmation code is <strong>%s</strong>.</p><p>Or confirm directly: <a href=\"%s\">Confirm Email</a></p>",
		code, link)
	text := fmt.Sprintf("Your confirmation code is %s. Or confirm directly: %s", code, link)
	return s.send(ctx, email, subject, html, text)
}

func (s *ResendEmailSender) SendRecoveryCode(ctx context.Context, email string, code string, token string) error {
	link := s.buildURL(s.ResetPath, token, "recovery")
	subject := "Reset your password"
	html := fmt.Sprintf(
		"<p>Your password reset code is <strong>%s</strong>.</p><p>Or reset directly: <a href=\"%s\">Reset Password</a></p>",
		code, link)
	text := fmt.Sprintf("Your password reset code is %s. Or reset directly: %s", code, link)
	return s.send(ctx, email, subject, html, text)
}

// buildURL appends the token as a fragment the way the hosted links
// do, so the front end can consume and strip it exactly once.
func (s *ResendEmailSender) buildURL(path string, token string, kind string) string {
	base := s.AppBaseURL
	if base == "" {
		return token
	}
	if path == "" {
		path = "/"
	}
	fragment := url.Values{}
	fragment.Set("access_token", token)
	fragment.Set("type", kind)
	return fmt.Sprintf("%s%s#%s", base, path, fragment.Encode())
}

func (s *ResendEmailSender) send(_ context.Context, to string, subject string, html string, text string) error {
	if s.Client == nil {
		return errors.New("email sender not configured")
	}
	_, err := s.Client.Emails.Send(&resend.SendEmailRequest{
		From:    s.From,
		To:      []string{to},
		Subject: subject,
		Html:    html,
		Text:    text,
	})
	return err
}
