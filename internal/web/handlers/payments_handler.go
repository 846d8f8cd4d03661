package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/course-admin/internal/upstream"
)

// PaymentsHandler serves the read-only payment ledger.
type PaymentsHandler struct {
	client *upstream.Client
	log    *zap.Logger
}

// NewPaymentsHandler constructs handler.
func NewPaymentsHandler(client *upstream.Client, log *zap.Logger) *PaymentsHandler {
	return &PaymentsHandler{client: client, log: log}
}

// Index GET /payments.
func (h *PaymentsHandler) Index(c *fiber.Ctx) error {
	store, err := currentStore(c)
	if err != nil {
		return err
	}

	data := screenData(c, store, nil)
	payments, err := h.client.Authed(store.Credential()).ListPayments(c.UserContext())
	if err != nil {
		return failScreen(c, "payments", data, err)
	}
	data["Payments"] = payments
	return c.Render("payments", data, mainLayout)
}
