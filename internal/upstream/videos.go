package upstream

import (
	"context"

	"github.com/spec-kit/course-admin/internal/domain"
)

// VideoInput payload for registering an uploaded video. Upload mechanics are
// the platform's concern; the dashboard only submits metadata.
type VideoInput struct {
	Title        string `json:"title"`
	URL          string `json:"url"`
	CategorySlug string `json:"categorySlug,omitempty"`
	DurationSec  int    `json:"durationSec,omitempty"`
}

// VideoCategoryInput payload for creating a category.
type VideoCategoryInput struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// ListVideos fetches all lessons.
func (c *Client) ListVideos(ctx context.Context) ([]domain.Video, error) {
	var resp struct {
		Data []domain.Video `json:"data"`
	}
	if err := c.get(ctx, "/videos", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// ListCategoryVideos fetches lessons in one category.
func (c *Client) ListCategoryVideos(ctx context.Context, slug string) ([]domain.Video, error) {
	var resp struct {
		Data []domain.Video `json:"data"`
	}
	if err := c.get(ctx, "/videos/category/"+slug, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// CreateVideo registers video metadata.
func (c *Client) CreateVideo(ctx context.Context, input VideoInput) error {
	return c.post(ctx, "/videos", input, nil)
}

// DeleteVideo removes a lesson.
func (c *Client) DeleteVideo(ctx context.Context, id string) error {
	return c.delete(ctx, "/videos/"+id)
}

// ListVideoCategories fetches all categories.
func (c *Client) ListVideoCategories(ctx context.Context) ([]domain.VideoCategory, error) {
	var resp struct {
		Data []domain.VideoCategory `json:"data"`
	}
	if err := c.get(ctx, "/video-categories", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// CreateVideoCategory adds a category.
func (c *Client) CreateVideoCategory(ctx context.Context, input VideoCategoryInput) error {
	return c.post(ctx, "/video-categories", input, nil)
}

// DeleteVideoCategory removes a category.
func (c *Client) DeleteVideoCategory(ctx context.Context, id string) error {
	return c.delete(ctx, "/video-categories/"+id)
}
