package middleware

import (
	"server/config"
	"server/internal/database"
	"server/internal/logger"
	. "server/internal/models"
	"server/internal/repositories"

	"github.com/gofiber/fiber/v2"
)

const SessionCookie = "session_id"

type Middleware struct {
	db          database.DB
	config      config.Config
	userRepo    repositories.UserRepository
	sessionRepo repositories.SessionRepository
	log         logger.Logger
}

func New(
	db database.DB,
	config config.Config,
	userRepo repositories.UserRepository,
	sessionRepo repositories.SessionRepository,
) Middleware {
	return Middleware{
		db:          db,
		config:      config,
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		log:         logger.New("middleware"),
	}
}

// Session resolves the session cookie into a user and stores both in
// locals. Requests without a valid session pass through anonymously.
func (m Middleware) Session(c *fiber.Ctx) error {
	sessionID := c.Cookies(SessionCookie)
	if sessionID == "" {
		return c.Next()
	}

	session, err := m.sessionRepo.Get(c.UserContext(), sessionID)
	if err != nil {
		// Expired or unknown session: clear the cookie and continue.
		c.ClearCookie(SessionCookie)
		return c.Next()
	}

	user, err := m.userRepo.GetByID(c.UserContext(), session.UserID)
	if err != nil {
		m.log.Function("Session").Er("session user not found", err, "userID", session.UserID)
		return c.Next()
	}

	c.Locals("user", *user)
	c.Locals("sessionID", session.ID)
	return c.Next()
}

// RequireAuth rejects requests that did not resolve to a user.
func (m Middleware) RequireAuth(c *fiber.Ctx) error {
	if _, ok := c.Locals("user").(User); !ok {
		return c.Status(fiber.StatusUnauthorized).
			JSON(fiber.Map{"message": "error", "error": "authentication required"})
	}
	return c.Next()
}

// RequireAdmin rejects non-admin users.
func (m Middleware) RequireAdmin(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(User)
	if !ok || !user.IsAdmin {
		return c.Status(fiber.StatusForbidden).
			JSON(fiber.Map{"message": "error", "error": "admin access required"})
	}
	return c.Next()
}

// CurrentUser pulls the authenticated user out of locals.
func CurrentUser(c *fiber.Ctx) (User, bool) {
	user, ok := c.Locals("user").(User)
	return user, ok
}
