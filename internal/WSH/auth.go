package wsh

import (
	"context"
	"net/http"
	"strings"

	"basketball-league-admin/internal/apiclient"
	"basketball-league-admin/internal/notify"
)

// Passwords proxies the backend's reset flow; tokens never touch the console.
type Passwords interface {
	ForgotPassword(ctx context.Context, email string) (string, error)
	ResetPassword(ctx context.Context, req apiclient.ResetPasswordRequest) (string, error)
}

func (s *Server) forgotPassword(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email string `json:"email"`
	}
	if err := decode(r, &body); err != nil || strings.TrimSpace(body.Email) == "" {
		badRequest(w, "email")
		return
	}
	message, err := s.Passwords.ForgotPassword(r.Context(), strings.TrimSpace(body.Email))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, Response{Notification: &notify.Notification{Level: notify.LevelSuccess, Message: message}})
}

func (s *Server) resetPassword(w http.ResponseWriter, r *http.Request) {
	var req apiclient.ResetPasswordRequest
	if err := decode(r, &req); err != nil {
		badRequest(w, "body")
		return
	}
	if req.Token == "" || req.Email == "" || req.Password == "" {
		badRequest(w, "token, email, password")
		return
	}
	if req.Password != req.PasswordConfirmation {
		badRequest(w, "password_confirmation")
		return
	}
	message, err := s.Passwords.ResetPassword(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, Response{Notification: &notify.Notification{Level: notify.LevelSuccess, Message: message}})
}
