package apiclient

import (
	"context"
	"net/http"
)

type ResetPasswordRequest struct {
	Token                string `json:"token"`
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
}

// ForgotPassword triggers the reset e-mail and returns the backend's message.
func (c *Client) ForgotPassword(ctx context.Context, email string) (string, error) {
	var out messageBody
	err := c.do(ctx, http.MethodPost, "/forgot-password", nil, map[string]string{"email": email}, &out)
	return out.Message, err
}

func (c *Client) ResetPassword(ctx context.Context, req ResetPasswordRequest) (string, error) {
	var out messageBody
	err := c.do(ctx, http.MethodPost, "/reset-password", nil, req, &out)
	return out.Message, err
}
