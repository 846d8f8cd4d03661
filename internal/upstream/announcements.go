package upstream

import (
	"context"

	"github.com/spec-kit/course-admin/internal/domain"
)

// AnnouncementInput payload for publishing a notice.
type AnnouncementInput struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// ListAnnouncements fetches all notices.
func (c *Client) ListAnnouncements(ctx context.Context) ([]domain.Announcement, error) {
	var resp struct {
		Data []domain.Announcement `json:"data"`
	}
	if err := c.get(ctx, "/announcements", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// CreateAnnouncement publishes a notice.
func (c *Client) CreateAnnouncement(ctx context.Context, input AnnouncementInput) error {
	return c.post(ctx, "/announcements", input, nil)
}

// ToggleAnnouncement flips a notice between active and inactive.
func (c *Client) ToggleAnnouncement(ctx context.Context, id string) error {
	return c.patch(ctx, "/announcements/toggle/"+id, nil, nil)
}

// DeleteAnnouncement removes a notice.
func (c *Client) DeleteAnnouncement(ctx context.Context, id string) error {
	return c.delete(ctx, "/announcements/"+id)
}
