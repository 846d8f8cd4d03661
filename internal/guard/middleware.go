// Package guard gates access to protected dashboard screens based on the
// session store's state.
package guard

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/course-admin/internal/config"
	"github.com/spec-kit/course-admin/internal/session"
	apperrors "github.com/spec-kit/course-admin/pkg/util"
)

const storeKey = "session_store"

// SessionMiddleware identifies the browser session and restores its store
// before any guard decision runs. That ordering is the contract: a guard
// never sees an unsettled store.
type SessionMiddleware struct {
	storage    session.Storage
	log        *zap.Logger
	cookieName string
	keyPrefix  string
}

// NewSessionMiddleware constructs the middleware over the durable storage.
func NewSessionMiddleware(storage session.Storage, cfg config.SessionConfig, log *zap.Logger) *SessionMiddleware {
	return &SessionMiddleware{
		storage:    storage,
		log:        log,
		cookieName: cfg.CookieName,
		keyPrefix:  cfg.KeyPrefix,
	}
}

// Handle ensures a session cookie, restores the session store and stashes
// it in request locals and the request context.
func (m *SessionMiddleware) Handle(c *fiber.Ctx) error {
	sid := c.Cookies(m.cookieName)
	if sid == "" {
		sid = uuid.NewString()
		c.Cookie(&fiber.Cookie{
			Name:     m.cookieName,
			Value:    sid,
			Path:     "/",
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
		})
	}

	prefix := fmt.Sprintf("%s:%s:", m.keyPrefix, sid)
	store := session.NewStore(session.Namespaced(m.storage, prefix), m.log)
	if err := store.Restore(c.UserContext()); err != nil {
		return apperrors.NewInternalError(err)
	}

	c.Locals(storeKey, store)
	c.SetUserContext(session.NewContext(c.UserContext(), store))
	return c.Next()
}

// StoreFromContext retrieves the session store for the current request.
func StoreFromContext(c *fiber.Ctx) (*session.Store, bool) {
	val := c.Locals(storeKey)
	if val == nil {
		return nil, false
	}
	store, ok := val.(*session.Store)
	return store, ok
}
