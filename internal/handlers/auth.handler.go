package handlers

import (
	"errors"

	"server/config"
	"server/internal/app"
	authController "server/internal/controllers/auth"
	"server/internal/handlers/middleware"
	"server/internal/logger"
	. "server/internal/models"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	Handler
	controller *authController.AuthController
	config     config.Config
}

func NewAuthHandler(app app.App, router fiber.Router) *AuthHandler {
	log := logger.New("handlers").File("auth_handler")
	return &AuthHandler{
		controller: app.AuthController,
		config:     app.Config,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *AuthHandler) Register() {
	auth := h.router.Group("/auth")
	auth.Post("/register", h.register)
	auth.Post("/login", h.login)
	auth.Post("/logout", h.logout)
	auth.Post("/forgot-password", h.forgotPassword)
	auth.Get("/me", h.middleware.RequireAuth, h.me)

	users := h.router.Group("/users", h.middleware.RequireAuth)
	users.Get("/", h.me)
}

func (h *AuthHandler) setSessionCookie(c *fiber.Ctx, session *Session) {
	c.Cookie(&fiber.Cookie{
		Name:     middleware.SessionCookie,
		Value:    session.ID,
		Expires:  session.ExpiresAt,
		HTTPOnly: true,
		Secure:   h.config.CookieSecure,
		SameSite: "Lax",
		Path:     "/",
	})
}

func (h *AuthHandler) register(c *fiber.Ctx) error {
	log := h.log.Function("register")

	var request RegisterRequest
	if err := c.BodyParser(&request); err != nil {
		log.Er("failed to parse register request", err)
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"message": "error", "error": "invalid request body"})
	}

	user, session, fieldErrors, err := h.controller.Register(c.UserContext(), request)
	if err != nil {
		if errors.Is(err, authController.ErrEmailTaken) {
			return c.Status(fiber.StatusConflict).
				JSON(fiber.Map{"message": "error", "error": "email is already registered"})
		}
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"message": "error", "error": "registration failed"})
	}
	if len(fieldErrors) > 0 {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"message": "error", "errors": fieldErrors})
	}

	h.setSessionCookie(c, session)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "success", "user": user})
}

func (h *AuthHandler) login(c *fiber.Ctx) error {
	log := h.log.Function("login")

	var request LoginRequest
	if err := c.BodyParser(&request); err != nil {
		log.Er("failed to parse login request", err)
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"message": "error", "error": "invalid request body"})
	}

	user, session, fieldErrors, err := h.controller.Login(c.UserContext(), request)
	if err != nil {
		if errors.Is(err, authController.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).
				JSON(fiber.Map{"message": "error", "error": "invalid email or password"})
		}
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"message": "error", "error": "login failed"})
	}
	if len(fieldErrors) > 0 {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"message": "error", "errors": fieldErrors})
	}

	h.setSessionCookie(c, session)
	return c.JSON(fiber.Map{"message": "success", "user": user})
}

func (h *AuthHandler) logout(c *fiber.Ctx) error {
	sessionID, _ := c.Locals("sessionID").(string)
	if err := h.controller.Logout(c.UserContext(), sessionID); err != nil {
		h.log.Function("logout").Er("failed to delete session", err)
	}
	c.ClearCookie(middleware.SessionCookie)
	return c.JSON(fiber.Map{"message": "success"})
}

func (h *AuthHandler) forgotPassword(c *fiber.Ctx) error {
	log := h.log.Function("forgotPassword")

	var request ForgotPasswordRequest
	if err := c.BodyParser(&request); err != nil {
		log.Er("failed to parse forgot password request", err)
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"message": "error", "error": "invalid request body"})
	}

	fieldErrors, err := h.controller.ForgotPassword(c.UserContext(), request)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"message": "error", "error": "request failed"})
	}
	if len(fieldErrors) > 0 {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"message": "error", "errors": fieldErrors})
	}

	// Same response whether or not the account exists.
	return c.JSON(fiber.Map{"message": "success"})
}

func (h *AuthHandler) me(c *fiber.Ctx) error {
	user, _ := middleware.CurrentUser(c)
	return c.JSON(fiber.Map{"message": "success", "user": user})
}
