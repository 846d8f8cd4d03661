package observability

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/gofiber/fiber/v2"
)

func TestRequestLoggerFeedsCounters(t *testing.T) {
	metrics := NewMetrics()

	app := fiber.New()
	app.Use(RequestLogger(zap.NewNop(), metrics))
	app.Get("/payments", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	for i := 0; i < 3; i++ {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/payments", nil))
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	}

	assert.Equal(t, int64(3), metrics.RequestTotal("/payments", fiber.MethodGet, http.StatusOK))
	assert.Equal(t, int64(0), metrics.RequestTotal("/payments", fiber.MethodGet, http.StatusNotFound))
	assert.Equal(t, int64(0), metrics.RequestTotal("/users", fiber.MethodGet, http.StatusOK))
}

func TestRequestTotalOnNilMetrics(t *testing.T) {
	var metrics *Metrics
	assert.Equal(t, int64(0), metrics.RequestTotal("/payments", fiber.MethodGet, http.StatusOK))
}
