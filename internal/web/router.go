package web

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/course-admin/internal/guard"
	"github.com/spec-kit/course-admin/internal/web/handlers"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Session       *guard.SessionMiddleware
	Guard         *guard.Guard
	Health        *handlers.HealthHandler
	Auth          *handlers.AuthHandler
	Dashboard     *handlers.DashboardHandler
	Users         *handlers.UsersHandler
	Courses       *handlers.CoursesHandler
	Videos        *handlers.VideosHandler
	Payments      *handlers.PaymentsHandler
	Reviews       *handlers.ReviewsHandler
	Companies     *handlers.CompaniesHandler
	Announcements *handlers.AnnouncementsHandler
	Settings      *handlers.SettingsHandler
}

// RegisterRoutes wires all screens. Public paths carry only the session
// middleware; protected paths are wrapped by the route guard, and the
// companies screen requires a main-platform operator.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Use("/static", StaticHandler())

	// Probes sit above the session middleware so they never mint cookies.
	if cfg.Health != nil {
		app.Get("/health/live", cfg.Health.Live)
		app.Get("/health/ready", cfg.Health.Ready)
	}

	app.Use(cfg.Session.Handle)

	app.Get("/login", cfg.Auth.LoginPage)
	app.Post("/login", cfg.Auth.Login)
	app.Post("/logout", cfg.Auth.Logout)
	app.Get("/signup", cfg.Auth.SignupPage)
	app.Post("/signup", cfg.Auth.Signup)
	app.Get("/forgot-password", cfg.Auth.ForgotPasswordPage)
	app.Post("/forgot-password", cfg.Auth.ForgotPassword)

	protected := app.Group("", cfg.Guard.RequireAdministrator())
	protected.Get("/", cfg.Dashboard.Index)

	protected.Get("/users", cfg.Users.Index)
	protected.Post("/users", cfg.Users.Create)
	protected.Post("/users/:id/premium", cfg.Users.TogglePremium)
	protected.Post("/users/:id/status", cfg.Users.ToggleStatus)
	protected.Post("/users/:id/delete", cfg.Users.Delete)

	protected.Get("/courses", cfg.Courses.Index)
	protected.Post("/courses", cfg.Courses.Create)
	protected.Get("/courses/:id", cfg.Courses.Edit)
	protected.Post("/courses/:id", cfg.Courses.Update)
	protected.Post("/courses/:id/delete", cfg.Courses.Delete)

	protected.Get("/videos", cfg.Videos.Index)
	protected.Post("/videos", cfg.Videos.Create)
	protected.Post("/videos/:id/delete", cfg.Videos.Delete)
	protected.Post("/video-categories", cfg.Videos.CreateCategory)
	protected.Post("/video-categories/:id/delete", cfg.Videos.DeleteCategory)

	protected.Get("/payments", cfg.Payments.Index)

	protected.Get("/reviews", cfg.Reviews.Index)
	protected.Post("/reviews/:id/delete", cfg.Reviews.Delete)

	protected.Get("/announcements", cfg.Announcements.Index)
	protected.Post("/announcements", cfg.Announcements.Create)
	protected.Post("/announcements/:id/toggle", cfg.Announcements.Toggle)
	protected.Post("/announcements/:id/delete", cfg.Announcements.Delete)

	protected.Get("/settings", cfg.Settings.Index)
	protected.Post("/settings", cfg.Settings.Update)

	companies := app.Group("/companies", cfg.Guard.RequireMainAdministrator())
	companies.Get("/", cfg.Companies.Index)
	companies.Post("/", cfg.Companies.Create)
	companies.Post("/:id", cfg.Companies.Update)
	companies.Post("/:id/delete", cfg.Companies.Delete)
	companies.Post("/:id/toggle", cfg.Companies.ToggleStatus)
	companies.Post("/:id/admins", cfg.Companies.CreateAdmin)

	app.Use(handlers.NotFound)
}
