package handlers

import (
	"errors"

	"server/internal/app"
	"server/internal/handlers/middleware"
	"server/internal/logger"
	. "server/internal/models"
	"server/internal/wizard"

	"github.com/gofiber/fiber/v2"
)

type WizardHandler struct {
	Handler
	controller *wizard.Controller
}

func NewWizardHandler(app app.App, router fiber.Router) *WizardHandler {
	log := logger.New("handlers").File("wizard_handler")
	return &WizardHandler{
		controller: app.WizardController,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *WizardHandler) Register() {
	group := h.router.Group("/wizard", h.middleware.RequireAuth)
	group.Get("/", h.state)
	group.Post("/advance", h.advance)
	group.Post("/retreat", h.retreat)
	group.Post("/skip", h.skip)
	group.Post("/resume", h.resume)

	questionnaire := h.router.Group("/questionnaire", h.middleware.RequireAuth)
	questionnaire.Get("/", h.questionnaire)
	questionnaire.Post("/draft", h.saveDraft)
	questionnaire.Post("/answer", h.answerQuestion)
}

func (h *WizardHandler) state(c *fiber.Ctx) error {
	user, _ := middleware.CurrentUser(c)

	state, err := h.controller.State(c.UserContext(), user.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"message": "error", "error": "failed to load wizard state"})
	}

	return c.JSON(fiber.Map{"message": "success", "state": state, "steps": wizard.Steps})
}

// advance validates and saves the current step's payload, then moves the
// cursor. The request body is the payload for whatever step the user is on.
func (h *WizardHandler) advance(c *fiber.Ctx) error {
	log := h.log.Function("advance")
	user, _ := middleware.CurrentUser(c)

	state, err := h.controller.State(c.UserContext(), user.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"message": "error", "error": "failed to load wizard state"})
	}

	form, err := h.controller.BuildForm(user.ID, state.CurrentStep, c.Body())
	if err != nil {
		log.Er("failed to build step form", err, "userID", user.ID, "step", state.CurrentStep)
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"message": "error", "error": "invalid step payload"})
	}

	state, fieldErrors, err := h.controller.Advance(c.UserContext(), user.ID, form)
	if err != nil {
		if errors.Is(err, wizard.ErrAlreadySubmitted) {
			return c.Status(fiber.StatusConflict).
				JSON(fiber.Map{"message": "error", "error": "application already submitted"})
		}
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"message": "error", "error": "failed to advance"})
	}
	if len(fieldErrors) > 0 {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"message": "error", "errors": fieldErrors, "state": state})
	}

	return c.JSON(fiber.Map{"message": "success", "state": state})
}

func (h *WizardHandler) retreat(c *fiber.Ctx) error {
	user, _ := middleware.CurrentUser(c)

	state, err := h.controller.Retreat(c.UserContext(), user.ID)
	if err != nil {
		if errors.Is(err, wizard.ErrAlreadySubmitted) {
			return c.Status(fiber.StatusConflict).
				JSON(fiber.Map{"message": "error", "error": "application already submitted"})
		}
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"message": "error", "error": "failed to go back"})
	}

	return c.JSON(fiber.Map{"message": "success", "state": state})
}

func (h *WizardHandler) skip(c *fiber.Ctx) error {
	user, _ := middleware.CurrentUser(c)

	state, err := h.controller.Skip(c.UserContext(), user.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"message": "error", "error": "failed to skip"})
	}

	return c.JSON(fiber.Map{"message": "success", "state": state})
}

func (h *WizardHandler) resume(c *fiber.Ctx) error {
	user, _ := middleware.CurrentUser(c)

	state, err := h.controller.Resume(c.UserContext(), user.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"message": "error", "error": "failed to resume"})
	}

	return c.JSON(fiber.Map{"message": "success", "state": state})
}

func (h *WizardHandler) questionnaire(c *fiber.Ctx) error {
	user, _ := middleware.CurrentUser(c)

	answers, isDraft, err := h.controller.Questionnaire(c.UserContext(), user.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"message": "error", "error": "failed to load questionnaire"})
	}

	return c.JSON(fiber.Map{
		"message":   "success",
		"questions": Questions,
		"answers":   answers,
		"isDraft":   isDraft,
	})
}

func (h *WizardHandler) saveDraft(c *fiber.Ctx) error {
	log := h.log.Function("saveDraft")
	user, _ := middleware.CurrentUser(c)

	var input wizard.QuestionnaireInput
	if err := c.BodyParser(&input); err != nil {
		log.Er("failed to parse draft", err, "userID", user.ID)
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"message": "error", "error": "invalid request body"})
	}

	fieldErrors, err := h.controller.SaveDraft(c.UserContext(), user.ID, input)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"message": "error", "error": "failed to save draft"})
	}
	if len(fieldErrors) > 0 {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"message": "error", "errors": fieldErrors})
	}

	return c.JSON(fiber.Map{"message": "success"})
}

func (h *WizardHandler) answerQuestion(c *fiber.Ctx) error {
	log := h.log.Function("answerQuestion")
	user, _ := middleware.CurrentUser(c)

	var request struct {
		QuestionID string `json:"questionId"`
		Value      string `json:"value"`
	}
	if err := c.BodyParser(&request); err != nil {
		log.Er("failed to parse answer", err, "userID", user.ID)
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"message": "error", "error": "invalid request body"})
	}

	fieldErrors, err := h.controller.AnswerQuestion(c.UserContext(), user.ID, request.QuestionID, request.Value)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"message": "error", "error": "failed to save answer"})
	}
	if len(fieldErrors) > 0 {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"message": "error", "errors": fieldErrors})
	}

	return c.JSON(fiber.Map{"message": "success"})
}
