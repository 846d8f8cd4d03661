package upstream

import (
	"context"

	"github.com/spec-kit/course-admin/internal/domain"
)

// DashboardStats fetches the landing screen aggregates.
func (c *Client) DashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	var resp struct {
		Data domain.DashboardStats `json:"data"`
	}
	if err := c.get(ctx, "/analytics", nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}
