package handlers

import (
	"net/url"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/course-admin/internal/upstream"
)

// SettingsHandler serves the administrator's own profile screen.
type SettingsHandler struct {
	client *upstream.Client
	log    *zap.Logger
}

// NewSettingsHandler constructs handler.
func NewSettingsHandler(client *upstream.Client, log *zap.Logger) *SettingsHandler {
	return &SettingsHandler{client: client, log: log}
}

// Index GET /settings. Re-reads the profile so edits made elsewhere show up;
// when the platform is unreachable the cached session record still renders.
func (h *SettingsHandler) Index(c *fiber.Ctx) error {
	store, err := currentStore(c)
	if err != nil {
		return err
	}

	data := screenData(c, store, nil)
	profile, err := h.client.Authed(store.Credential()).Profile(c.UserContext())
	if err != nil {
		if upstream.IsUnauthorized(err) {
			return failScreen(c, "settings", data, err)
		}
		h.log.Warn("profile refresh failed", zap.Error(err))
		return c.Render("settings", data, mainLayout)
	}
	if err := store.UpdateAdministrator(c.UserContext(), profile); err != nil {
		return err
	}
	data["Administrator"] = profile
	return c.Render("settings", data, mainLayout)
}

// Update POST /settings. The returned record replaces the cached
// administrator so every screen shows the new name immediately.
func (h *SettingsHandler) Update(c *fiber.Ctx) error {
	store, err := currentStore(c)
	if err != nil {
		return err
	}

	var form ProfileForm
	if err := c.BodyParser(&form); err != nil {
		return c.Redirect("/settings?flash="+url.QueryEscape("invalid form"), fiber.StatusSeeOther)
	}
	if err := validate.Struct(form); err != nil {
		return c.Redirect("/settings?flash="+url.QueryEscape(formMessage(err)), fiber.StatusSeeOther)
	}

	updated, err := h.client.Authed(store.Credential()).UpdateProfile(c.UserContext(), upstream.UpdateProfileRequest{
		Name:    form.Name,
		Surname: form.Surname,
		Image:   form.Image,
	})
	if err != nil {
		return failRedirect(c, "/settings", err)
	}
	if err := store.UpdateAdministrator(c.UserContext(), updated); err != nil {
		return err
	}
	return c.Redirect("/settings?flash="+url.QueryEscape("profile saved"), fiber.StatusSeeOther)
}
