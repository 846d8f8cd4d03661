package upstream

import (
	"context"
	"net/url"

	"github.com/spec-kit/course-admin/internal/domain"
)

// UserListFilter narrows the users list. Empty fields are omitted.
type UserListFilter struct {
	Search string
	Gender string
	Status string
	Plan   string
}

// CreateUserRequest payload for adding a learner account.
type CreateUserRequest struct {
	Name     string `json:"name"`
	Surname  string `json:"surname"`
	Email    string `json:"email"`
	Gender   string `json:"gender,omitempty"`
	Password string `json:"password"`
	Premium  bool   `json:"premium"`
}

// ListUsers fetches learner accounts matching the filter.
func (c *Client) ListUsers(ctx context.Context, filter UserListFilter) ([]domain.User, error) {
	query := url.Values{}
	if filter.Search != "" {
		query.Set("search", filter.Search)
	}
	if filter.Gender != "" {
		query.Set("gender", filter.Gender)
	}
	if filter.Status != "" {
		query.Set("status", filter.Status)
	}
	if filter.Plan != "" {
		query.Set("plan", filter.Plan)
	}

	var resp struct {
		Data []domain.User `json:"data"`
	}
	if err := c.get(ctx, "/users", query, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// CreateUser adds a learner account.
func (c *Client) CreateUser(ctx context.Context, req CreateUserRequest) error {
	return c.post(ctx, "/users", req, nil)
}

// ToggleUserPremium flips the premium plan flag.
func (c *Client) ToggleUserPremium(ctx context.Context, id string) error {
	return c.put(ctx, "/users/"+id+"/premium", nil, nil)
}

// ToggleUserStatus flips between active and suspended.
func (c *Client) ToggleUserStatus(ctx context.Context, id string) error {
	return c.put(ctx, "/users/"+id+"/status", nil, nil)
}

// DeleteUser removes a learner account.
func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.delete(ctx, "/users/"+id)
}
