package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/course-admin/internal/upstream"
)

// DashboardHandler serves the landing screen.
type DashboardHandler struct {
	client *upstream.Client
	log    *zap.Logger
}

// NewDashboardHandler constructs handler.
func NewDashboardHandler(client *upstream.Client, log *zap.Logger) *DashboardHandler {
	return &DashboardHandler{client: client, log: log}
}

// Index GET /.
func (h *DashboardHandler) Index(c *fiber.Ctx) error {
	store, err := currentStore(c)
	if err != nil {
		return err
	}

	data := screenData(c, store, nil)
	stats, err := h.client.Authed(store.Credential()).DashboardStats(c.UserContext())
	if err != nil {
		return failScreen(c, "dashboard", data, err)
	}
	data["Stats"] = stats
	return c.Render("dashboard", data, mainLayout)
}
