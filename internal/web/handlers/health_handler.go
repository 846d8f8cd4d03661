package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

// StoragePinger reports whether the durable session storage is reachable.
type StoragePinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler responds to liveness and readiness probes.
type HealthHandler struct {
	serviceName string
	version     string
	backendName string
	backend     StoragePinger
}

// NewHealthHandler returns a new handler instance. A nil backend (the
// in-memory medium) is always considered reachable.
func NewHealthHandler(serviceName, version, backendName string, backend StoragePinger) *HealthHandler {
	return &HealthHandler{
		serviceName: serviceName,
		version:     version,
		backendName: backendName,
		backend:     backend,
	}
}

// Live reports service liveness.
func (h *HealthHandler) Live(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "alive",
		"service": h.serviceName,
		"version": h.version,
	})
}

// Ready reports service readiness by checking the session storage medium.
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	depStatus := fiber.Map{}
	ready := true

	if h.backend == nil {
		depStatus[h.backendName] = "ok"
	} else {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		if err := h.backend.Ping(ctx); err != nil {
			depStatus[h.backendName] = err.Error()
			ready = false
		} else {
			depStatus[h.backendName] = "ok"
		}
	}

	if ready {
		return c.JSON(fiber.Map{
			"status":       "ready",
			"dependencies": depStatus,
		})
	}

	return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
		"error": fiber.Map{
			"code":    "DEPENDENCY_UNAVAILABLE",
			"message": "one or more dependencies unavailable",
			"details": depStatus,
		},
	})
}
