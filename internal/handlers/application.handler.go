package handlers

import (
	"errors"

	"server/internal/app"
	applicationController "server/internal/controllers/application"
	"server/internal/handlers/middleware"
	"server/internal/logger"

	"github.com/gofiber/fiber/v2"
)

type ApplicationHandler struct {
	Handler
	controller *applicationController.ApplicationController
}

func NewApplicationHandler(app app.App, router fiber.Router) *ApplicationHandler {
	log := logger.New("handlers").File("application_handler")
	return &ApplicationHandler{
		controller: app.ApplicationController,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *ApplicationHandler) Register() {
	h.router.Get("/status", h.middleware.RequireAuth, h.status)

	admin := h.router.Group("/admin/applications", h.middleware.RequireAuth, h.middleware.RequireAdmin)
	admin.Patch("/:userId/status", h.updateStatus)
}

func (h *ApplicationHandler) status(c *fiber.Ctx) error {
	user, _ := middleware.CurrentUser(c)

	response, err := h.controller.Status(c.UserContext(), user.ID)
	if err != nil {
		if errors.Is(err, applicationController.ErrNotSubmitted) {
			return c.Status(fiber.StatusNotFound).
				JSON(fiber.Map{"message": "error", "error": "no application found"})
		}
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"message": "error", "error": "failed to load status"})
	}

	return c.JSON(fiber.Map{"message": "success", "status": response})
}

func (h *ApplicationHandler) updateStatus(c *fiber.Ctx) error {
	log := h.log.Function("updateStatus")

	var request struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&request); err != nil {
		log.Er("failed to parse status update", err)
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"message": "error", "error": "invalid request body"})
	}

	application, err := h.controller.UpdateStatus(c.UserContext(), c.Params("userId"), request.Status)
	if err != nil {
		switch {
		case errors.Is(err, applicationController.ErrInvalidStatus):
			return c.Status(fiber.StatusBadRequest).
				JSON(fiber.Map{"message": "error", "error": "invalid status"})
		case errors.Is(err, applicationController.ErrNotSubmitted):
			return c.Status(fiber.StatusNotFound).
				JSON(fiber.Map{"message": "error", "error": "no application found"})
		default:
			return c.Status(fiber.StatusInternalServerError).
				JSON(fiber.Map{"message": "error", "error": "failed to update status"})
		}
	}

	return c.JSON(fiber.Map{"message": "success", "application": application})
}
