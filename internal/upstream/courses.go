package upstream

import (
	"context"

	"github.com/spec-kit/course-admin/internal/domain"
)

// CourseInput payload for creating or updating a course.
type CourseInput struct {
	Title       string  `json:"title"`
	Slug        string  `json:"slug"`
	Description string  `json:"description,omitempty"`
	Category    string  `json:"category,omitempty"`
	Price       float64 `json:"price"`
	Published   bool    `json:"published"`
}

// ListCourses fetches the catalog.
func (c *Client) ListCourses(ctx context.Context) ([]domain.Course, error) {
	var resp struct {
		Data []domain.Course `json:"data"`
	}
	if err := c.get(ctx, "/courses", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// GetCourse fetches one course for the editor screen.
func (c *Client) GetCourse(ctx context.Context, id string) (*domain.Course, error) {
	var resp struct {
		Data domain.Course `json:"data"`
	}
	if err := c.get(ctx, "/courses/"+id, nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// CreateCourse adds a course to the catalog.
func (c *Client) CreateCourse(ctx context.Context, input CourseInput) error {
	return c.post(ctx, "/courses", input, nil)
}

// UpdateCourse replaces a course's editable fields.
func (c *Client) UpdateCourse(ctx context.Context, id string, input CourseInput) error {
	return c.put(ctx, "/courses/"+id, input, nil)
}

// DeleteCourse removes a course.
func (c *Client) DeleteCourse(ctx context.Context, id string) error {
	return c.delete(ctx, "/courses/"+id)
}
