package handlers

import (
	"net/http"
	"net/url"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/course-admin/internal/upstream"
)

// AuthHandler serves the public auth screens and drives the session store.
type AuthHandler struct {
	client *upstream.Client
	log    *zap.Logger
}

// NewAuthHandler constructs handler.
func NewAuthHandler(client *upstream.Client, log *zap.Logger) *AuthHandler {
	return &AuthHandler{client: client, log: log}
}

// LoginPage GET /login.
func (h *AuthHandler) LoginPage(c *fiber.Ctx) error {
	store, err := currentStore(c)
	if err != nil {
		return err
	}
	if store.Authenticated() {
		return c.Redirect("/", fiber.StatusSeeOther)
	}
	return c.Render("login", fiber.Map{"Flash": c.Query("flash")})
}

// Login POST /login. On success the session is replaced and the one pending
// return path, if any, decides the redirect target.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	store, err := currentStore(c)
	if err != nil {
		return err
	}

	var form LoginForm
	if err := c.BodyParser(&form); err != nil {
		return c.Status(http.StatusBadRequest).Render("login", fiber.Map{"Error": "invalid form"})
	}
	if err := validate.Struct(form); err != nil {
		return c.Status(http.StatusBadRequest).Render("login", fiber.Map{
			"Error": formMessage(err),
			"Email": form.Email,
		})
	}

	ctx := c.UserContext()
	resp, err := h.client.Login(ctx, upstream.LoginRequest{Email: form.Email, Password: form.Password})
	if err != nil {
		h.log.Info("login rejected", zap.String("email", form.Email))
		return c.Status(http.StatusUnauthorized).Render("login", fiber.Map{
			"Error": upstream.UserMessage(err, "server error"),
			"Email": form.Email,
		})
	}

	if err := store.Login(ctx, &resp.Administrator, resp.Token); err != nil {
		return err
	}

	target, err := store.ConsumeReturnPath(ctx)
	if err != nil {
		return err
	}
	if target == "" {
		target = "/"
	}
	return c.Redirect(target, fiber.StatusSeeOther)
}

// Logout POST /logout. Safe to call when already logged out.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	store, err := currentStore(c)
	if err != nil {
		return err
	}
	if err := store.Logout(c.UserContext()); err != nil {
		return err
	}
	return c.Redirect("/login", fiber.StatusSeeOther)
}

// SignupPage GET /signup.
func (h *AuthHandler) SignupPage(c *fiber.Ctx) error {
	return c.Render("signup", fiber.Map{})
}

// Signup POST /signup.
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var form SignupForm
	if err := c.BodyParser(&form); err != nil {
		return c.Status(http.StatusBadRequest).Render("signup", fiber.Map{"Error": "invalid form"})
	}
	if err := validate.Struct(form); err != nil {
		return c.Status(http.StatusBadRequest).Render("signup", fiber.Map{
			"Error":   formMessage(err),
			"Email":   form.Email,
			"Name":    form.Name,
			"Surname": form.Surname,
		})
	}

	err := h.client.Signup(c.UserContext(), upstream.SignupRequest{
		Email:    form.Email,
		Password: form.Password,
		Name:     form.Name,
		Surname:  form.Surname,
	})
	if err != nil {
		return c.Status(http.StatusBadRequest).Render("signup", fiber.Map{
			"Error":   upstream.UserMessage(err, "server error"),
			"Email":   form.Email,
			"Name":    form.Name,
			"Surname": form.Surname,
		})
	}
	return c.Redirect("/login?flash="+url.QueryEscape("account created, sign in"), fiber.StatusSeeOther)
}

// ForgotPasswordPage GET /forgot-password.
func (h *AuthHandler) ForgotPasswordPage(c *fiber.Ctx) error {
	return c.Render("forgot_password", fiber.Map{})
}

// ForgotPassword POST /forgot-password.
func (h *AuthHandler) ForgotPassword(c *fiber.Ctx) error {
	var form ForgotPasswordForm
	if err := c.BodyParser(&form); err != nil {
		return c.Status(http.StatusBadRequest).Render("forgot_password", fiber.Map{"Error": "invalid form"})
	}
	if err := validate.Struct(form); err != nil {
		return c.Status(http.StatusBadRequest).Render("forgot_password", fiber.Map{
			"Error": formMessage(err),
			"Email": form.Email,
		})
	}

	if err := h.client.RequestPasswordReset(c.UserContext(), form.Email); err != nil {
		return c.Status(http.StatusBadRequest).Render("forgot_password", fiber.Map{
			"Error": upstream.UserMessage(err, "server error"),
			"Email": form.Email,
		})
	}
	return c.Render("forgot_password", fiber.Map{
		"Notice": "if the address exists, a reset link is on its way",
	})
}
