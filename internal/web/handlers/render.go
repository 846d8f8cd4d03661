package handlers

import (
	"errors"
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/course-admin/internal/guard"
	"github.com/spec-kit/course-admin/internal/session"
	"github.com/spec-kit/course-admin/internal/upstream"
	apperrors "github.com/spec-kit/course-admin/pkg/util"
)

const mainLayout = "layouts/main"

func currentStore(c *fiber.Ctx) (*session.Store, error) {
	store, ok := guard.StoreFromContext(c)
	if !ok {
		return nil, apperrors.NewInternalError(errors.New("session store missing from request"))
	}
	return store, nil
}

// screenData seeds the fields every protected template expects.
func screenData(c *fiber.Ctx, store *session.Store, extra fiber.Map) fiber.Map {
	data := fiber.Map{
		"Administrator": store.Administrator(),
		"Path":          c.Path(),
		"Flash":         c.Query("flash"),
	}
	for k, v := range extra {
		data[k] = v
	}
	return data
}

// failScreen surfaces an upstream failure inline on the current screen. On a
// 401 the session has already been cleared by the client's unauthorized
// hook; only the redirect to the login screen remains.
func failScreen(c *fiber.Ctx, view string, data fiber.Map, err error) error {
	if upstream.IsUnauthorized(err) {
		return c.Redirect(guard.LoginPath, fiber.StatusSeeOther)
	}
	data["Error"] = upstream.UserMessage(err, "the request could not be completed")
	return c.Render(view, data, mainLayout)
}

// failRedirect sends a failed mutation back to its screen with a flash
// message, or to login when the token was rejected.
func failRedirect(c *fiber.Ctx, target string, err error) error {
	if upstream.IsUnauthorized(err) {
		return c.Redirect(guard.LoginPath, fiber.StatusSeeOther)
	}
	msg := upstream.UserMessage(err, "the request could not be completed")
	return c.Redirect(target+"?flash="+url.QueryEscape(msg), fiber.StatusSeeOther)
}

// NotFound renders the catch-all screen.
func NotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).Render("not_found", fiber.Map{"Path": c.Path()})
}
