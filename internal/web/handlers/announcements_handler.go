package handlers

import (
	"net/url"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/course-admin/internal/upstream"
)

// AnnouncementsHandler serves the notices screen.
type AnnouncementsHandler struct {
	client *upstream.Client
	log    *zap.Logger
}

// NewAnnouncementsHandler constructs handler.
func NewAnnouncementsHandler(client *upstream.Client, log *zap.Logger) *AnnouncementsHandler {
	return &AnnouncementsHandler{client: client, log: log}
}

// Index GET /announcements.
func (h *AnnouncementsHandler) Index(c *fiber.Ctx) error {
	store, err := currentStore(c)
	if err != nil {
		return err
	}

	data := screenData(c, store, nil)
	announcements, err := h.client.Authed(store.Credential()).ListAnnouncements(c.UserContext())
	if err != nil {
		return failScreen(c, "announcements", data, err)
	}
	data["Announcements"] = announcements
	return c.Render("announcements", data, mainLayout)
}

// Create POST /announcements.
func (h *AnnouncementsHandler) Create(c *fiber.Ctx) error {
	store, err := currentStore(c)
	if err != nil {
		return err
	}

	var form AnnouncementForm
	if err := c.BodyParser(&form); err != nil {
		return c.Redirect("/announcements?flash="+url.QueryEscape("invalid form"), fiber.StatusSeeOther)
	}
	if err := validate.Struct(form); err != nil {
		return c.Redirect("/announcements?flash="+url.QueryEscape(formMessage(err)), fiber.StatusSeeOther)
	}

	err = h.client.Authed(store.Credential()).CreateAnnouncement(c.UserContext(), upstream.AnnouncementInput{
		Title: form.Title,
		Body:  form.Body,
	})
	if err != nil {
		return failRedirect(c, "/announcements", err)
	}
	return c.Redirect("/announcements", fiber.StatusSeeOther)
}

// Toggle POST /announcements/:id/toggle.
func (h *AnnouncementsHandler) Toggle(c *fiber.Ctx) error {
	store, err := currentStore(c)
	if err != nil {
		return err
	}
	if err := h.client.Authed(store.Credential()).ToggleAnnouncement(c.UserContext(), c.Params("id")); err != nil {
		return failRedirect(c, "/announcements", err)
	}
	return c.Redirect("/announcements", fiber.StatusSeeOther)
}

// Delete POST /announcements/:id/delete.
func (h *AnnouncementsHandler) Delete(c *fiber.Ctx) error {
	store, err := currentStore(c)
	if err != nil {
		return err
	}
	if err := h.client.Authed(store.Credential()).DeleteAnnouncement(c.UserContext(), c.Params("id")); err != nil {
		return failRedirect(c, "/announcements", err)
	}
	return c.Redirect("/announcements", fiber.StatusSeeOther)
}
