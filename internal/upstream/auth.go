package upstream

import (
	"context"

	"github.com/spec-kit/course-admin/internal/domain"
)

// LoginRequest payload for administrator login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the confirmed identity and the opaque bearer token.
type LoginResponse struct {
	Administrator domain.Administrator `json:"user"`
	Token         string               `json:"token"`
}

// SignupRequest payload for registering a new administrator account.
type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Surname  string `json:"surname"`
}

// Login exchanges credentials for an identity and token. No session state is
// touched here; the caller decides what to do with the result.
func (c *Client) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	var resp LoginResponse
	if err := c.post(ctx, "/auth/login", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Signup registers a new administrator account.
func (c *Client) Signup(ctx context.Context, req SignupRequest) error {
	return c.post(ctx, "/auth/signup", req, nil)
}

// RequestPasswordReset asks the platform to start a reset flow for email.
func (c *Client) RequestPasswordReset(ctx context.Context, email string) error {
	body := struct {
		Email string `json:"email"`
	}{Email: email}
	return c.post(ctx, "/auth/password/reset", body, nil)
}
