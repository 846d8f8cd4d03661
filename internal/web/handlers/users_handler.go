package handlers

import (
	"net/url"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/course-admin/internal/upstream"
)

// UsersHandler serves the user management screen.
type UsersHandler struct {
	client *upstream.Client
	log    *zap.Logger
}

// NewUsersHandler constructs handler.
func NewUsersHandler(client *upstream.Client, log *zap.Logger) *UsersHandler {
	return &UsersHandler{client: client, log: log}
}

// Index GET /users.
func (h *UsersHandler) Index(c *fiber.Ctx) error {
	store, err := currentStore(c)
	if err != nil {
		return err
	}

	filter := upstream.UserListFilter{
		Search: c.Query("search"),
		Gender: c.Query("gender"),
		Status: c.Query("status"),
		Plan:   c.Query("plan"),
	}
	data := screenData(c, store, fiber.Map{"Filter": filter})

	users, err := h.client.Authed(store.Credential()).ListUsers(c.UserContext(), filter)
	if err != nil {
		return failScreen(c, "users", data, err)
	}
	data["Users"] = users
	return c.Render("users", data, mainLayout)
}

// Create POST /users.
func (h *UsersHandler) Create(c *fiber.Ctx) error {
	store, err := currentStore(c)
	if err != nil {
		return err
	}

	var form CreateUserForm
	if err := c.BodyParser(&form); err != nil {
		return c.Redirect("/users?flash="+url.QueryEscape("invalid form"), fiber.StatusSeeOther)
	}
	if err := validate.Struct(form); err != nil {
		return c.Redirect("/users?flash="+url.QueryEscape(formMessage(err)), fiber.StatusSeeOther)
	}

	err = h.client.Authed(store.Credential()).CreateUser(c.UserContext(), upstream.CreateUserRequest{
		Name:     form.Name,
		Surname:  form.Surname,
		Email:    form.Email,
		Gender:   form.Gender,
		Password: form.Password,
		Premium:  form.Premium,
	})
	if err != nil {
		return failRedirect(c, "/users", err)
	}
	return c.Redirect("/users", fiber.StatusSeeOther)
}

// TogglePremium POST /users/:id/premium.
func (h *UsersHandler) TogglePremium(c *fiber.Ctx) error {
	store, err := currentStore(c)
	if err != nil {
		return err
	}
	if err := h.client.Authed(store.Credential()).ToggleUserPremium(c.UserContext(), c.Params("id")); err != nil {
		return failRedirect(c, "/users", err)
	}
	return c.Redirect("/users", fiber.StatusSeeOther)
}

// ToggleStatus POST /users/:id/status.
func (h *UsersHandler) ToggleStatus(c *fiber.Ctx) error {
	store, err := currentStore(c)
	if err != nil {
		return err
	}
	if err := h.client.Authed(store.Credential()).ToggleUserStatus(c.UserContext(), c.Params("id")); err != nil {
		return failRedirect(c, "/users", err)
	}
	return c.Redirect("/users", fiber.StatusSeeOther)
}

// Delete POST /users/:id/delete.
func (h *UsersHandler) Delete(c *fiber.Ctx) error {
	store, err := currentStore(c)
	if err != nil {
		return err
	}
	if err := h.client.Authed(store.Credential()).DeleteUser(c.UserContext(), c.Params("id")); err != nil {
		return failRedirect(c, "/users", err)
	}
	return c.Redirect("/users", fiber.StatusSeeOther)
}
