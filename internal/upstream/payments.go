package upstream

import (
	"context"

	"github.com/spec-kit/course-admin/internal/domain"
)

// ListPayments fetches the payment ledger.
func (c *Client) ListPayments(ctx context.Context) ([]domain.Payment, error) {
	var resp struct {
		Data []domain.Payment `json:"data"`
	}
	if err := c.get(ctx, "/payments", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}
