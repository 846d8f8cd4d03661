package guard

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/course-admin/internal/config"
	apperrors "github.com/spec-kit/course-admin/pkg/util"
)

// LoginPath is where denied visits are redirected.
const LoginPath = "/login"

// Guard wraps protected routes. The enforcing behavior is the production
// default; DemoMode renders protected content without checks.
type Guard struct {
	demoMode bool
	log      *zap.Logger
}

// NewGuard builds a guard from configuration.
func NewGuard(cfg config.GuardConfig, log *zap.Logger) *Guard {
	if cfg.DemoMode && log != nil {
		log.Warn("route guard running in demo mode; protected screens are open")
	}
	return &Guard{demoMode: cfg.DemoMode, log: log}
}

// RequireAdministrator admits any authenticated administrator. A settled
// session without credentials records the visited path for one post-login
// replay, then redirects to the login screen.
func (g *Guard) RequireAdministrator() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if g.demoMode {
			return c.Next()
		}
		store, ok := StoreFromContext(c)
		if !ok || !store.Settled() {
			return apperrors.NewInternalError(errors.New("session store not restored"))
		}
		if !store.Authenticated() {
			return g.deny(c)
		}
		return c.Next()
	}
}

// RequireMainAdministrator additionally requires a main-platform operator.
// Company-scoped operators are denied the same way as unauthenticated
// visitors. Administrators without a role tag predate role scoping and are
// admitted.
func (g *Guard) RequireMainAdministrator() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if g.demoMode {
			return c.Next()
		}
		store, ok := StoreFromContext(c)
		if !ok || !store.Settled() {
			return apperrors.NewInternalError(errors.New("session store not restored"))
		}
		if !store.Authenticated() || !store.Administrator().IsMain() {
			return g.deny(c)
		}
		return c.Next()
	}
}

func (g *Guard) deny(c *fiber.Ctx) error {
	store, _ := StoreFromContext(c)
	if err := store.SetReturnPath(c.UserContext(), c.Path()); err != nil {
		return apperrors.NewInternalError(err)
	}
	if g.log != nil {
		g.log.Info("protected visit denied", zap.String("path", c.Path()))
	}
	return c.Redirect(LoginPath, fiber.StatusSeeOther)
}
