package upstream

import (
	"context"

	"github.com/spec-kit/course-admin/internal/domain"
)

// ListReviews fetches learner feedback.
func (c *Client) ListReviews(ctx context.Context) ([]domain.Review, error) {
	var resp struct {
		Data []domain.Review `json:"data"`
	}
	if err := c.get(ctx, "/reviews", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// DeleteReview removes a review.
func (c *Client) DeleteReview(ctx context.Context, id string) error {
	return c.delete(ctx, "/reviews/"+id)
}
