package handlers

import (
	"net/url"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/course-admin/internal/domain"
	"github.com/spec-kit/course-admin/internal/upstream"
)

// VideosHandler serves the lesson library screen, including categories.
type VideosHandler struct {
	client *upstream.Client
	log    *zap.Logger
}

// NewVideosHandler constructs handler.
func NewVideosHandler(client *upstream.Client, log *zap.Logger) *VideosHandler {
	return &VideosHandler{client: client, log: log}
}

// Index GET /videos. An optional ?category=slug narrows the listing.
func (h *VideosHandler) Index(c *fiber.Ctx) error {
	store, err := currentStore(c)
	if err != nil {
		return err
	}

	slug := c.Query("category")
	data := screenData(c, store, fiber.Map{"Category": slug})
	client := h.client.Authed(store.Credential())

	var videos []domain.Video
	if slug != "" {
		videos, err = client.ListCategoryVideos(c.UserContext(), slug)
	} else {
		videos, err = client.ListVideos(c.UserContext())
	}
	if err != nil {
		return failScreen(c, "videos", data, err)
	}

	categories, err := client.ListVideoCategories(c.UserContext())
	if err != nil {
		return failScreen(c, "videos", data, err)
	}

	data["Videos"] = videos
	data["Categories"] = categories
	return c.Render("videos", data, mainLayout)
}

// Create POST /videos.
func (h *VideosHandler) Create(c *fiber.Ctx) error {
	store, err := currentStore(c)
	if err != nil {
		return err
	}

	var form VideoForm
	if err := c.BodyParser(&form); err != nil {
		return c.Redirect("/videos?flash="+url.QueryEscape("invalid form"), fiber.StatusSeeOther)
	}
	if err := validate.Struct(form); err != nil {
		return c.Redirect("/videos?flash="+url.QueryEscape(formMessage(err)), fiber.StatusSeeOther)
	}

	err = h.client.Authed(store.Credential()).CreateVideo(c.UserContext(), upstream.VideoInput{
		Title:        form.Title,
		URL:          form.URL,
		CategorySlug: form.CategorySlug,
		DurationSec:  form.DurationSec,
	})
	if err != nil {
		return failRedirect(c, "/videos", err)
	}
	return c.Redirect("/videos", fiber.StatusSeeOther)
}

// Delete POST /videos/:id/delete.
func (h *VideosHandler) Delete(c *fiber.Ctx) error {
	store, err := currentStore(c)
	if err != nil {
		return err
	}
	if err := h.client.Authed(store.Credential()).DeleteVideo(c.UserContext(), c.Params("id")); err != nil {
		return failRedirect(c, "/videos", err)
	}
	return c.Redirect("/videos", fiber.StatusSeeOther)
}

// CreateCategory POST /video-categories.
func (h *VideosHandler) CreateCategory(c *fiber.Ctx) error {
	store, err := currentStore(c)
	if err != nil {
		return err
	}

	var form VideoCategoryForm
	if err := c.BodyParser(&form); err != nil {
		return c.Redirect("/videos?flash="+url.QueryEscape("invalid form"), fiber.StatusSeeOther)
	}
	if err := validate.Struct(form); err != nil {
		return c.Redirect("/videos?flash="+url.QueryEscape(formMessage(err)), fiber.StatusSeeOther)
	}

	err = h.client.Authed(store.Credential()).CreateVideoCategory(c.UserContext(), upstream.VideoCategoryInput{
		Name: form.Name,
		Slug: form.Slug,
	})
	if err != nil {
		return failRedirect(c, "/videos", err)
	}
	return c.Redirect("/videos", fiber.StatusSeeOther)
}

// DeleteCategory POST /video-categories/:id/delete.
func (h *VideosHandler) DeleteCategory(c *fiber.Ctx) error {
	store, err := currentStore(c)
	if err != nil {
		return err
	}
	if err := h.client.Authed(store.Credential()).DeleteVideoCategory(c.UserContext(), c.Params("id")); err != nil {
		return failRedirect(c, "/videos", err)
	}
	return c.Redirect("/videos", fiber.StatusSeeOther)
}
