package guard

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/course-admin/internal/config"
	"github.com/spec-kit/course-admin/internal/domain"
	"github.com/spec-kit/course-admin/internal/session"
)

func sessionConfig() config.SessionConfig {
	return config.SessionConfig{
		Backend:    "memory",
		CookieName: "dashboard_session",
		KeyPrefix:  "dashboard",
	}
}

func newGuardedApp(t *testing.T, storage session.Storage, guardCfg config.GuardConfig) *fiber.App {
	t.Helper()

	app := fiber.New()
	sm := NewSessionMiddleware(storage, sessionConfig(), nil)
	g := NewGuard(guardCfg, nil)

	app.Use(sm.Handle)
	app.Get("/users", g.RequireAdministrator(), func(c *fiber.Ctx) error {
		return c.SendString("users screen")
	})
	app.Get("/companies", g.RequireMainAdministrator(), func(c *fiber.Ctx) error {
		return c.SendString("companies screen")
	})
	return app
}

func seedSession(t *testing.T, storage session.Storage, sid string, admin domain.Administrator, token string) {
	t.Helper()
	blob, err := json.Marshal(admin)
	require.NoError(t, err)
	require.NoError(t, storage.Set(context.Background(), "dashboard:"+sid+":admin-user", string(blob)))
	require.NoError(t, storage.Set(context.Background(), "dashboard:"+sid+":admin-token", token))
}

func requestWithSession(method, target, sid string) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	if sid != "" {
		req.AddCookie(&http.Cookie{Name: "dashboard_session", Value: sid})
	}
	return req
}

func TestGuardRedirectsUnauthenticatedAndRecordsPath(t *testing.T) {
	storage := session.NewMemoryStorage()
	app := newGuardedApp(t, storage, config.GuardConfig{})

	resp, err := app.Test(requestWithSession(http.MethodGet, "/users", "sid1"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))

	path, err := storage.Get(context.Background(), "dashboard:sid1:admin-return-after-login")
	require.NoError(t, err)
	assert.Equal(t, "/users", path)
}

func TestGuardRendersChildrenWhenAuthenticated(t *testing.T) {
	storage := session.NewMemoryStorage()
	seedSession(t, storage, "sid1", domain.Administrator{ID: "adm-1", Email: "a@b.c", IsAdmin: true}, "tok")
	app := newGuardedApp(t, storage, config.GuardConfig{})

	resp, err := app.Test(requestWithSession(http.MethodGet, "/users", "sid1"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// No pending path is recorded for an admitted visit.
	_, err = storage.Get(context.Background(), "dashboard:sid1:admin-return-after-login")
	assert.ErrorIs(t, err, session.ErrNotFound)
}

func TestMainGuardDeniesCompanyOperators(t *testing.T) {
	storage := session.NewMemoryStorage()
	companyID := "comp-1"
	seedSession(t, storage, "sid1", domain.Administrator{
		ID:        "adm-2",
		Email:     "scoped@b.c",
		IsAdmin:   true,
		AdminRole: domain.AdminRoleCompany,
		CompanyID: &companyID,
	}, "tok")
	app := newGuardedApp(t, storage, config.GuardConfig{})

	resp, err := app.Test(requestWithSession(http.MethodGet, "/companies", "sid1"))
	require.NoError(t, err)
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))

	path, err := storage.Get(context.Background(), "dashboard:sid1:admin-return-after-login")
	require.NoError(t, err)
	assert.Equal(t, "/companies", path)
}

func TestMainGuardAdmitsMainAndLegacyRoles(t *testing.T) {
	for _, role := range []domain.AdminRole{domain.AdminRoleMain, ""} {
		storage := session.NewMemoryStorage()
		seedSession(t, storage, "sid1", domain.Administrator{
			ID:        "adm-1",
			Email:     "a@b.c",
			IsAdmin:   true,
			AdminRole: role,
		}, "tok")
		app := newGuardedApp(t, storage, config.GuardConfig{})

		resp, err := app.Test(requestWithSession(http.MethodGet, "/companies", "sid1"))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode, "role %q should be admitted", role)
	}
}

func TestDemoModePassesThrough(t *testing.T) {
	storage := session.NewMemoryStorage()
	app := newGuardedApp(t, storage, config.GuardConfig{DemoMode: true})

	resp, err := app.Test(requestWithSession(http.MethodGet, "/users", ""))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestSessionMiddlewareIssuesCookie(t *testing.T) {
	storage := session.NewMemoryStorage()
	app := newGuardedApp(t, storage, config.GuardConfig{DemoMode: true})

	resp, err := app.Test(requestWithSession(http.MethodGet, "/users", ""))
	require.NoError(t, err)

	var found bool
	for _, cookie := range resp.Cookies() {
		if cookie.Name == "dashboard_session" && cookie.Value != "" {
			found = true
		}
	}
	assert.True(t, found, "expected a session cookie to be issued")
}
