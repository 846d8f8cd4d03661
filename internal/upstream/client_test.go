package upstream

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/course-admin/internal/config"
)

func newTestClient(baseURL string) *Client {
	return NewClient(config.UpstreamConfig{BaseURL: baseURL, TimeoutSeconds: 5}, nil)
}

func TestAuthedAttachesBearerHeader(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[]}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL).Authed("tok-123")
	_, err := client.ListPayments(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
}

func TestNoCredentialSendsNoAuthHeader(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{"user":{"id":"adm-1","email":"a@b.c","isAdmin":true},"token":"tok"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	resp, err := client.Login(context.Background(), LoginRequest{Email: "a@b.c", Password: "pw"})
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
	assert.Equal(t, "tok", resp.Token)
	assert.Equal(t, "adm-1", resp.Administrator.ID)
}

func TestUnauthorizedInvokesHookAndReturnsAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"code":"UNAUTHORIZED","message":"invalid token"}}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	hookCalls := 0
	client.SetUnauthorizedHook(func(context.Context) {
		hookCalls++
	})

	// The hook fires no matter which resource issued the call.
	_, err := client.Authed("stale").ListUsers(context.Background(), UserListFilter{})
	require.Error(t, err)
	assert.True(t, IsUnauthorized(err))
	assert.Equal(t, "invalid token", UserMessage(err, "fallback"))

	err = client.Authed("stale").DeleteReview(context.Background(), "rev-1")
	require.Error(t, err)
	assert.True(t, IsUnauthorized(err))

	assert.Equal(t, 2, hookCalls)
}

func TestErrorMessageFallbackEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"email already registered"}`))
	}))
	defer server.Close()

	err := newTestClient(server.URL).Signup(context.Background(), SignupRequest{Email: "a@b.c"})
	require.Error(t, err)
	assert.False(t, IsUnauthorized(err))
	assert.Equal(t, "email already registered", UserMessage(err, "fallback"))
}

func TestListUsersEncodesFilters(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		_, _ = w.Write([]byte(`{"data":[{"id":"u1","name":"Jo","surname":"Doe","email":"jo@x.y","status":"active","plan":"free","createdAt":"2026-01-02T15:04:05Z"}]}`))
	}))
	defer server.Close()

	users, err := newTestClient(server.URL).Authed("tok").ListUsers(context.Background(), UserListFilter{
		Search: "jo",
		Status: "active",
	})
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "u1", users[0].ID)
	assert.Contains(t, gotQuery, "search=jo")
	assert.Contains(t, gotQuery, "status=active")
	assert.NotContains(t, gotQuery, "plan=")
}
