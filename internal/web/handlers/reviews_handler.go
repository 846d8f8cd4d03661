package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/course-admin/internal/upstream"
)

// ReviewsHandler serves the learner feedback screen.
type ReviewsHandler struct {
	client *upstream.Client
	log    *zap.Logger
}

// NewReviewsHandler constructs handler.
func NewReviewsHandler(client *upstream.Client, log *zap.Logger) *ReviewsHandler {
	return &ReviewsHandler{client: client, log: log}
}

// Index GET /reviews.
func (h *ReviewsHandler) Index(c *fiber.Ctx) error {
	store, err := currentStore(c)
	if err != nil {
		return err
	}

	data := screenData(c, store, nil)
	reviews, err := h.client.Authed(store.Credential()).ListReviews(c.UserContext())
	if err != nil {
		return failScreen(c, "reviews", data, err)
	}
	data["Reviews"] = reviews
	return c.Render("reviews", data, mainLayout)
}

// Delete POST /reviews/:id/delete.
func (h *ReviewsHandler) Delete(c *fiber.Ctx) error {
	store, err := currentStore(c)
	if err != nil {
		return err
	}
	if err := h.client.Authed(store.Credential()).DeleteReview(c.UserContext(), c.Params("id")); err != nil {
		return failRedirect(c, "/reviews", err)
	}
	return c.Redirect("/reviews", fiber.StatusSeeOther)
}
