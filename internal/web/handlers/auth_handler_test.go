package handlers_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/course-admin/internal/config"
	"github.com/spec-kit/course-admin/internal/guard"
	"github.com/spec-kit/course-admin/internal/session"
	"github.com/spec-kit/course-admin/internal/upstream"
	"github.com/spec-kit/course-admin/internal/web"
	"github.com/spec-kit/course-admin/internal/web/handlers"
)

const (
	testCookie = "dashboard_session"
	testPrefix = "dashboard"
	testSID    = "sid-test"
)

func storageKey(suffix string) string {
	return testPrefix + ":" + testSID + ":" + suffix
}

func newDashboard(t *testing.T, platform http.Handler) (*fiber.App, *session.MemoryStorage) {
	t.Helper()

	srv := httptest.NewServer(platform)
	t.Cleanup(srv.Close)

	storage := session.NewMemoryStorage()
	logger := zap.NewNop()

	client := upstream.NewClient(config.UpstreamConfig{BaseURL: srv.URL, TimeoutSeconds: 5}, logger)
	client.SetUnauthorizedHook(func(ctx context.Context) {
		if store, ok := session.FromContext(ctx); ok {
			_ = store.Logout(ctx)
		}
	})

	app := fiber.New(fiber.Config{Views: web.NewEngine()})
	sessionCfg := config.SessionConfig{CookieName: testCookie, KeyPrefix: testPrefix}
	web.RegisterRoutes(app, web.RouteConfig{
		Session:       guard.NewSessionMiddleware(storage, sessionCfg, logger),
		Guard:         guard.NewGuard(config.GuardConfig{}, logger),
		Health:        handlers.NewHealthHandler("course-admin", "test", "memory", nil),
		Auth:          handlers.NewAuthHandler(client, logger),
		Dashboard:     handlers.NewDashboardHandler(client, logger),
		Users:         handlers.NewUsersHandler(client, logger),
		Courses:       handlers.NewCoursesHandler(client, logger),
		Videos:        handlers.NewVideosHandler(client, logger),
		Payments:      handlers.NewPaymentsHandler(client, logger),
		Reviews:       handlers.NewReviewsHandler(client, logger),
		Companies:     handlers.NewCompaniesHandler(client, logger),
		Announcements: handlers.NewAnnouncementsHandler(client, logger),
		Settings:      handlers.NewSettingsHandler(client, logger),
	})
	return app, storage
}

func formRequest(path string, form url.Values) *http.Request {
	req := httptest.NewRequest(fiber.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	req.AddCookie(&http.Cookie{Name: testCookie, Value: testSID})
	return req
}

func seedSession(t *testing.T, storage *session.MemoryStorage) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, storage.Set(ctx, storageKey("admin-user"),
		`{"id":"adm-1","email":"admin@videoadmin.com","isAdmin":true,"adminRole":"main"}`))
	require.NoError(t, storage.Set(ctx, storageKey("admin-token"), "tok-valid"))
}

func TestLoginRedirectsToPendingPath(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"user":{"id":"adm-1","email":"admin@videoadmin.com","isAdmin":true,"adminRole":"main"},"token":"tok-1"}`))
	})
	app, storage := newDashboard(t, mux)

	ctx := context.Background()
	require.NoError(t, storage.Set(ctx, storageKey("admin-return-after-login"), "/payments"))

	form := url.Values{"email": {"admin@videoadmin.com"}, "password": {"admin123"}}
	resp, err := app.Test(formRequest("/login", form))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/payments", resp.Header.Get("Location"))

	_, err = storage.Get(ctx, storageKey("admin-user"))
	assert.NoError(t, err, "identity should be persisted")
	_, err = storage.Get(ctx, storageKey("admin-token"))
	assert.NoError(t, err, "credential should be persisted")
	_, err = storage.Get(ctx, storageKey("admin-return-after-login"))
	assert.ErrorIs(t, err, session.ErrNotFound, "pending path must be consumed")
}

func TestLoginWithoutPendingPathLandsOnDashboard(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"user":{"id":"adm-1","email":"admin@videoadmin.com","isAdmin":true},"token":"tok-1"}`))
	})
	app, _ := newDashboard(t, mux)

	form := url.Values{"email": {"admin@videoadmin.com"}, "password": {"admin123"}}
	resp, err := app.Test(formRequest("/login", form))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))
}

func TestLoginFailureRendersMessage(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"code":"INVALID_CREDENTIALS","message":"email or password is incorrect"}}`))
	})
	app, storage := newDashboard(t, mux)

	form := url.Values{"email": {"admin@videoadmin.com"}, "password": {"wrong"}}
	resp, err := app.Test(formRequest("/login", form))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "email or password is incorrect")
	assert.Equal(t, 0, storage.Len(), "rejected login must not persist anything")
}

func TestLoginRejectsInvalidForm(t *testing.T) {
	app, _ := newDashboard(t, http.NewServeMux())

	form := url.Values{"email": {"not-an-email"}, "password": {"x"}}
	resp, err := app.Test(formRequest("/login", form))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestLogoutClearsSession(t *testing.T) {
	app, storage := newDashboard(t, http.NewServeMux())
	seedSession(t, storage)

	resp, err := app.Test(formRequest("/logout", url.Values{}))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
	assert.Equal(t, 0, storage.Len())
}

func TestRejectedCredentialClearsSessionEverywhere(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /analytics", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"code":"UNAUTHORIZED","message":"invalid or expired token"}}`))
	})
	app, storage := newDashboard(t, mux)
	seedSession(t, storage)

	req := httptest.NewRequest(fiber.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: testCookie, Value: testSID})
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))

	ctx := context.Background()
	_, err = storage.Get(ctx, storageKey("admin-user"))
	assert.ErrorIs(t, err, session.ErrNotFound, "identity must be wiped after a 401")
	_, err = storage.Get(ctx, storageKey("admin-token"))
	assert.ErrorIs(t, err, session.ErrNotFound, "credential must be wiped after a 401")
}

func TestSettingsUpdateRefreshesSessionIdentity(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("PUT /profile", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"id":"adm-1","email":"admin@videoadmin.com","isAdmin":true,"adminRole":"main","name":"New","surname":"Name"}}`))
	})
	app, storage := newDashboard(t, mux)
	seedSession(t, storage)

	form := url.Values{"name": {"New"}, "surname": {"Name"}}
	resp, err := app.Test(formRequest("/settings", form))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)

	ctx := context.Background()
	record, err := storage.Get(ctx, storageKey("admin-user"))
	require.NoError(t, err)
	assert.Contains(t, record, `"name":"New"`)
	token, err := storage.Get(ctx, storageKey("admin-token"))
	require.NoError(t, err)
	assert.Equal(t, "tok-valid", token, "profile update must not touch the credential")
}

func TestProtectedScreenRedirectsAnonymousVisitor(t *testing.T) {
	app, storage := newDashboard(t, http.NewServeMux())

	req := httptest.NewRequest(fiber.MethodGet, "/payments", nil)
	req.AddCookie(&http.Cookie{Name: testCookie, Value: testSID})
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))

	pending, err := storage.Get(context.Background(), storageKey("admin-return-after-login"))
	require.NoError(t, err)
	assert.Equal(t, "/payments", pending)
}
