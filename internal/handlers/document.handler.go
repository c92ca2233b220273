package handlers

import (
	"errors"

	"server/internal/app"
	documentController "server/internal/controllers/documents"
	"server/internal/handlers/middleware"
	"server/internal/logger"

	"github.com/gofiber/fiber/v2"
)

type DocumentHandler struct {
	Handler
	controller *documentController.DocumentController
}

func NewDocumentHandler(app app.App, router fiber.Router) *DocumentHandler {
	log := logger.New("handlers").File("document_handler")
	return &DocumentHandler{
		controller: app.DocumentController,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *DocumentHandler) Register() {
	docs := h.router.Group("/documents", h.middleware.RequireAuth)
	docs.Get("/", h.checklist)
	docs.Post("/:documentId", h.upload)
	docs.Get("/:documentId/can-advance", h.canAdvance)

	admin := h.router.Group("/admin/documents", h.middleware.RequireAuth, h.middleware.RequireAdmin)
	admin.Patch("/:userId/:documentId", h.review)
}

func (h *DocumentHandler) checklist(c *fiber.Ctx) error {
	user, _ := middleware.CurrentUser(c)

	checklist, err := h.controller.Checklist(c.UserContext(), user.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"message": "error", "error": "failed to load checklist"})
	}

	return c.JSON(fiber.Map{
		"message":            "success",
		"checklist":          checklist,
		"completionRatio":    checklist.CompletionRatio(),
		"readyForSubmission": checklist.ReadyForSubmission(),
	})
}

func (h *DocumentHandler) upload(c *fiber.Ctx) error {
	log := h.log.Function("upload")
	user, _ := middleware.CurrentUser(c)
	documentID := c.Params("documentId")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"message": "error", "error": "file is required"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Er("failed to open upload", err, "userID", user.ID)
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"message": "error", "error": "failed to read file"})
	}
	defer file.Close()

	record, err := h.controller.Upload(c.UserContext(), user.ID, documentID, fileHeader.Filename, file)
	if err != nil {
		if errors.Is(err, documentController.ErrUnknownDocument) {
			return c.Status(fiber.StatusNotFound).
				JSON(fiber.Map{"message": "error", "error": "unknown document type"})
		}
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"message": "error", "error": err.Error()})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "success", "document": record})
}

func (h *DocumentHandler) canAdvance(c *fiber.Ctx) error {
	user, _ := middleware.CurrentUser(c)

	canAdvance, err := h.controller.CanAdvancePast(c.UserContext(), user.ID, c.Params("documentId"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"message": "error", "error": "failed to load checklist"})
	}

	return c.JSON(fiber.Map{"message": "success", "canAdvance": canAdvance})
}

func (h *DocumentHandler) review(c *fiber.Ctx) error {
	log := h.log.Function("review")

	var request struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&request); err != nil {
		log.Er("failed to parse review request", err)
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"message": "error", "error": "invalid request body"})
	}

	err := h.controller.Review(c.UserContext(), c.Params("userId"), c.Params("documentId"), request.Status)
	if err != nil {
		if errors.Is(err, documentController.ErrUnknownDocument) {
			return c.Status(fiber.StatusNotFound).
				JSON(fiber.Map{"message": "error", "error": "unknown document type"})
		}
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"message": "error", "error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "success"})
}
