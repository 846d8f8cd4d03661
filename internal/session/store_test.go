package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/course-admin/internal/domain"
)

func testAdministrator() *domain.Administrator {
	companyID := "comp-1"
	return &domain.Administrator{
		ID:        "adm-1",
		Email:     "admin@videoadmin.com",
		IsAdmin:   true,
		AdminRole: domain.AdminRoleMain,
		CompanyID: &companyID,
		Name:      "Ada",
		Surname:   "Operator",
	}
}

func TestLoginThenRestoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	storage := NewMemoryStorage()

	store := NewStore(storage, nil)
	require.NoError(t, store.Restore(ctx))
	require.NoError(t, store.Login(ctx, testAdministrator(), "tok-123"))

	// Simulate a reload: a fresh store over the same storage.
	reloaded := NewStore(storage, nil)
	require.NoError(t, reloaded.Restore(ctx))

	require.True(t, reloaded.Authenticated())
	assert.Equal(t, "tok-123", reloaded.Credential())
	assert.Equal(t, testAdministrator(), reloaded.Administrator())
}

func TestRestoreWithEmptyStorageSettlesLoggedOut(t *testing.T) {
	ctx := context.Background()
	store := NewStore(NewMemoryStorage(), nil)

	assert.Equal(t, StateUnchecked, store.State())
	require.NoError(t, store.Restore(ctx))

	assert.True(t, store.Settled())
	assert.False(t, store.Authenticated())
	assert.Nil(t, store.Administrator())
	assert.Empty(t, store.Credential())
}

func TestRestoreFailsClosedOnCorruptBlob(t *testing.T) {
	ctx := context.Background()
	storage := NewMemoryStorage()
	require.NoError(t, storage.Set(ctx, "admin-user", "{not json"))
	require.NoError(t, storage.Set(ctx, "admin-token", "tok-123"))

	store := NewStore(storage, nil)
	require.NoError(t, store.Restore(ctx))

	assert.True(t, store.Settled())
	assert.False(t, store.Authenticated())

	_, err := storage.Get(ctx, "admin-user")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = storage.Get(ctx, "admin-token")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRestoreClearsHalfPresentRecord(t *testing.T) {
	ctx := context.Background()
	storage := NewMemoryStorage()
	require.NoError(t, storage.Set(ctx, "admin-token", "tok-123"))

	store := NewStore(storage, nil)
	require.NoError(t, store.Restore(ctx))

	assert.False(t, store.Authenticated())
	_, err := storage.Get(ctx, "admin-token")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLogoutIsIdempotent(t *testing.T) {
	ctx := context.Background()
	storage := NewMemoryStorage()
	store := NewStore(storage, nil)
	require.NoError(t, store.Restore(ctx))
	require.NoError(t, store.Login(ctx, testAdministrator(), "tok-123"))

	require.NoError(t, store.Logout(ctx))
	require.NoError(t, store.Logout(ctx))

	assert.False(t, store.Authenticated())
	assert.Zero(t, storage.Len())
}

func TestUpdateAdministratorKeepsCredential(t *testing.T) {
	ctx := context.Background()
	storage := NewMemoryStorage()
	store := NewStore(storage, nil)
	require.NoError(t, store.Restore(ctx))
	require.NoError(t, store.Login(ctx, testAdministrator(), "tok-123"))

	renamed := testAdministrator()
	renamed.Name = "Grace"
	require.NoError(t, store.UpdateAdministrator(ctx, renamed))

	reloaded := NewStore(storage, nil)
	require.NoError(t, reloaded.Restore(ctx))
	assert.Equal(t, "Grace", reloaded.Administrator().Name)
	assert.Equal(t, "tok-123", reloaded.Credential())
}

func TestReturnPathIsOneShot(t *testing.T) {
	ctx := context.Background()
	store := NewStore(NewMemoryStorage(), nil)
	require.NoError(t, store.Restore(ctx))

	require.NoError(t, store.SetReturnPath(ctx, "/payments"))
	require.NoError(t, store.SetReturnPath(ctx, "/users")) // last write wins

	path, err := store.ConsumeReturnPath(ctx)
	require.NoError(t, err)
	assert.Equal(t, "/users", path)

	path, err = store.ConsumeReturnPath(ctx)
	require.NoError(t, err)
	assert.Empty(t, path)
}

func TestNamespacedStorageIsolatesSessions(t *testing.T) {
	ctx := context.Background()
	backing := NewMemoryStorage()

	first := NewStore(Namespaced(backing, "dashboard:a:"), nil)
	second := NewStore(Namespaced(backing, "dashboard:b:"), nil)
	require.NoError(t, first.Restore(ctx))
	require.NoError(t, second.Restore(ctx))

	require.NoError(t, first.Login(ctx, testAdministrator(), "tok-a"))

	require.NoError(t, second.Restore(ctx))
	assert.False(t, second.Authenticated())
	assert.True(t, first.Authenticated())
}
