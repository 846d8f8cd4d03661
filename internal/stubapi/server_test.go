package stubapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/course-admin/internal/config"
	"github.com/spec-kit/course-admin/internal/domain"
)

func testConfig() config.StubConfig {
	return config.StubConfig{
		JWTSecret:       "test-secret",
		TokenTTLMinutes: 5,
		BcryptCost:      4,
		AdminEmail:      "admin@videoadmin.com",
		AdminPassword:   "admin123",
	}
}

func newStub(t *testing.T) *fiber.App {
	t.Helper()
	app, err := New(testConfig(), zap.NewNop())
	require.NoError(t, err)
	return app
}

func login(t *testing.T, app *fiber.App, email, password string) (string, *http.Response) {
	t.Helper()
	payload, _ := json.Marshal(fiber.Map{"email": email, "password": password})
	req := httptest.NewRequest(fiber.MethodPost, "/api/admin/auth/login", bytes.NewReader(payload))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	if resp.StatusCode != http.StatusOK {
		return "", resp
	}

	var body struct {
		User  domain.Administrator `json:"user"`
		Token string               `json:"token"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	resp.Body.Close()
	assert.Equal(t, email, body.User.Email)
	assert.NotEmpty(t, body.Token)
	return body.Token, resp
}

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("secret", 5)
	admin := domain.Administrator{ID: "adm-1", Email: "admin@videoadmin.com", IsAdmin: true, AdminRole: domain.AdminRoleMain}

	token, expires, err := tm.GenerateToken(admin)
	require.NoError(t, err)
	assert.False(t, expires.IsZero())

	claims, err := tm.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "adm-1", claims.Subject)
	assert.Equal(t, "admin@videoadmin.com", claims.Email)
	assert.Equal(t, domain.AdminRoleMain, claims.AdminRole)
}

func TestTokenRejectsWrongSecret(t *testing.T) {
	token, _, err := NewTokenManager("one", 5).GenerateToken(domain.Administrator{ID: "adm-1"})
	require.NoError(t, err)

	_, err = NewTokenManager("two", 5).ParseToken(token)
	assert.Error(t, err)
}

func TestLoginIssuesWorkingToken(t *testing.T) {
	app := newStub(t)
	token, _ := login(t, app, "admin@videoadmin.com", "admin123")

	req := httptest.NewRequest(fiber.MethodGet, "/api/admin/analytics", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Data domain.DashboardStats `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Greater(t, body.Data.TotalUsers, 0)
}

func TestLoginRejectsBadPassword(t *testing.T) {
	app := newStub(t)
	_, resp := login(t, app, "admin@videoadmin.com", "nope")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "INVALID_CREDENTIALS", body.Error.Code)
}

func TestProtectedRouteRequiresToken(t *testing.T) {
	app := newStub(t)

	req := httptest.NewRequest(fiber.MethodGet, "/api/admin/users", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestCompanyRoutesRequireMainRole(t *testing.T) {
	app := newStub(t)
	adminToken, _ := login(t, app, "admin@videoadmin.com", "admin123")

	// Register a company-scoped account through signup.
	payload, _ := json.Marshal(fiber.Map{
		"email": "scoped@example.com", "password": "longenough", "name": "Scoped", "surname": "Admin",
	})
	req := httptest.NewRequest(fiber.MethodPost, "/api/admin/auth/signup", bytes.NewReader(payload))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	scopedToken, _ := login(t, app, "scoped@example.com", "longenough")

	req = httptest.NewRequest(fiber.MethodGet, "/api/admin/companies", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+scopedToken)
	resp, err = app.Test(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	req = httptest.NewRequest(fiber.MethodGet, "/api/admin/companies", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+adminToken)
	resp, err = app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestUserToggleEndpoints(t *testing.T) {
	app := newStub(t)
	token, _ := login(t, app, "admin@videoadmin.com", "admin123")

	req := httptest.NewRequest(fiber.MethodGet, "/api/admin/users?plan=premium", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)

	var body struct {
		Data []domain.User `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	resp.Body.Close()
	require.NotEmpty(t, body.Data)
	id := body.Data[0].ID

	req = httptest.NewRequest(fiber.MethodPut, "/api/admin/users/"+id+"/premium", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	resp, err = app.Test(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	req = httptest.NewRequest(fiber.MethodGet, "/api/admin/users?plan=premium", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	resp, err = app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	for _, u := range body.Data {
		assert.NotEqual(t, id, u.ID, "toggled user should no longer be premium")
	}
}
