package upstream

import (
	"context"

	"github.com/spec-kit/course-admin/internal/domain"
)

// UpdateProfileRequest payload for the settings screen.
type UpdateProfileRequest struct {
	Name    string `json:"name"`
	Surname string `json:"surname"`
	Image   string `json:"image,omitempty"`
}

// Profile fetches the caller's own administrator record.
func (c *Client) Profile(ctx context.Context) (*domain.Administrator, error) {
	var resp struct {
		Data domain.Administrator `json:"data"`
	}
	if err := c.get(ctx, "/profile", nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// UpdateProfile changes the caller's own record and returns the new version.
func (c *Client) UpdateProfile(ctx context.Context, req UpdateProfileRequest) (*domain.Administrator, error) {
	var resp struct {
		Data domain.Administrator `json:"data"`
	}
	if err := c.put(ctx, "/profile", req, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}
