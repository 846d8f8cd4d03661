// Package stubapi is a self-contained stand-in for the platform admin API.
// It serves the same routes and envelopes from in-memory fixtures so the
// dashboard can run without the real platform.
package stubapi

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/course-admin/internal/config"
)

// New builds the stub fiber app.
func New(cfg config.StubConfig, log *zap.Logger) (*fiber.App, error) {
	store, err := NewStore(cfg)
	if err != nil {
		return nil, err
	}
	tokens := NewTokenManager(cfg.JWTSecret, cfg.TokenTTLMinutes)
	h := NewHandlers(store, tokens, cfg, log)

	app := fiber.New(fiber.Config{AppName: "course-admin-stub"})

	api := app.Group("/api/admin")
	api.Post("/auth/login", h.Login)
	api.Post("/auth/signup", h.Signup)
	api.Post("/auth/password/reset", h.PasswordReset)

	authed := api.Group("", h.RequireToken)
	authed.Get("/profile", h.Profile)
	authed.Put("/profile", h.UpdateProfile)
	authed.Get("/analytics", h.Analytics)

	authed.Get("/users", h.ListUsers)
	authed.Post("/users", h.CreateUser)
	authed.Put("/users/:id/premium", h.ToggleUserPremium)
	authed.Put("/users/:id/status", h.ToggleUserStatus)
	authed.Delete("/users/:id", h.DeleteUser)

	authed.Get("/courses", h.ListCourses)
	authed.Post("/courses", h.CreateCourse)
	authed.Get("/courses/:id", h.GetCourse)
	authed.Put("/courses/:id", h.UpdateCourse)
	authed.Delete("/courses/:id", h.DeleteCourse)

	authed.Get("/videos", h.ListVideos)
	authed.Post("/videos", h.CreateVideo)
	authed.Get("/videos/category/:slug", h.ListCategoryVideos)
	authed.Delete("/videos/:id", h.DeleteVideo)
	authed.Get("/video-categories", h.ListVideoCategories)
	authed.Post("/video-categories", h.CreateVideoCategory)
	authed.Delete("/video-categories/:id", h.DeleteVideoCategory)

	authed.Get("/payments", h.ListPayments)

	authed.Get("/reviews", h.ListReviews)
	authed.Delete("/reviews/:id", h.DeleteReview)

	companies := authed.Group("/companies", h.RequireMainRole)
	companies.Get("/", h.ListCompanies)
	companies.Post("/", h.CreateCompany)
	companies.Get("/:id/stats", h.CompanyStats)
	companies.Patch("/toggle/:id", h.ToggleCompany)
	companies.Post("/admins", h.CreateCompanyAdmin)
	companies.Put("/:id", h.UpdateCompany)
	companies.Delete("/:id", h.DeleteCompany)

	authed.Get("/announcements", h.ListAnnouncements)
	authed.Post("/announcements", h.CreateAnnouncement)
	authed.Patch("/announcements/toggle/:id", h.ToggleAnnouncement)
	authed.Delete("/announcements/:id", h.DeleteAnnouncement)

	return app, nil
}
