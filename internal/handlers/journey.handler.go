package handlers

import (
	"errors"
	"io"
	"mime/multipart"

	"server/internal/app"
	journeyController "server/internal/controllers/journey"
	"server/internal/handlers/middleware"
	"server/internal/logger"

	"github.com/gofiber/fiber/v2"
)

type JourneyHandler struct {
	Handler
	controller *journeyController.JourneyController
}

func NewJourneyHandler(app app.App, router fiber.Router) *JourneyHandler {
	log := logger.New("handlers").File("journey_handler")
	return &JourneyHandler{
		controller: app.JourneyController,
		Handler: Handler{
			log:        log,
			router:     router,
			middleware: app.Middleware,
		},
	}
}

func (h *JourneyHandler) Register() {
	onboarding := h.router.Group("/onboarding", h.middleware.RequireAuth)
	onboarding.Get("/", h.getOnboarding)
	onboarding.Post("/", h.completeOnboarding)

	journal := h.router.Group("/journal", h.middleware.RequireAuth)
	journal.Get("/", h.journal)
	journal.Get("/day/:date", h.day)

	appointments := h.router.Group("/appointments", h.middleware.RequireAuth)
	appointments.Get("/", h.listAppointments)
	appointments.Post("/", h.createAppointment)

	milestones := h.router.Group("/milestones", h.middleware.RequireAuth)
	milestones.Get("/", h.listMilestones)
	milestones.Post("/", h.createMilestone)
}

func notOnboardedResponse(c *fiber.Ctx) error {
	return c.Status(fiber.StatusPreconditionFailed).
		JSON(fiber.Map{"message": "error", "error": "onboarding has not been completed"})
}

// openFormFile returns the named multipart file when present, or nils when
// the field was simply not sent.
func openFormFile(c *fiber.Ctx, field string) (string, io.ReadCloser, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		return "", nil, nil
	}
	file, err := fileHeader.Open()
	if err != nil {
		return "", nil, err
	}
	return fileHeader.Filename, file, nil
}

func formValue(form *multipart.Form, field string) string {
	values := form.Value[field]
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

func (h *JourneyHandler) getOnboarding(c *fiber.Ctx) error {
	user, _ := middleware.CurrentUser(c)

	record, err := h.controller.OnboardingRecord(c.UserContext(), user.ID)
	if err != nil {
		if errors.Is(err, journeyController.ErrNotOnboarded) {
			return c.Status(fiber.StatusNotFound).
				JSON(fiber.Map{"message": "error", "error": "onboarding has not been completed"})
		}
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"message": "error", "error": "failed to load onboarding"})
	}

	return c.JSON(fiber.Map{"message": "success", "onboarding": record})
}

func (h *JourneyHandler) completeOnboarding(c *fiber.Ctx) error {
	log := h.log.Function("completeOnboarding")
	user, _ := middleware.CurrentUser(c)

	var input journeyController.OnboardingInput
	if err := c.BodyParser(&input); err != nil {
		log.Er("failed to parse onboarding request", err, "userID", user.ID)
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"message": "error", "error": "invalid request body"})
	}

	record, fieldErrors, err := h.controller.CompleteOnboarding(c.UserContext(), user.ID, input)
	if err != nil {
		if errors.Is(err, journeyController.ErrAlreadyOnboarded) {
			return c.Status(fiber.StatusConflict).
				JSON(fiber.Map{"message": "error", "error": "onboarding already completed"})
		}
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"message": "error", "error": "failed to save onboarding"})
	}
	if len(fieldErrors) > 0 {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"message": "error", "errors": fieldErrors})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "success", "onboarding": record})
}

func (h *JourneyHandler) journal(c *fiber.Ctx) error {
	user, _ := middleware.CurrentUser(c)

	view, err := h.controller.Journal(c.UserContext(), user.ID)
	if err != nil {
		if errors.Is(err, journeyController.ErrNotOnboarded) {
			return notOnboardedResponse(c)
		}
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"message": "error", "error": "failed to load journal"})
	}

	return c.JSON(fiber.Map{"message": "success", "journal": view})
}

func (h *JourneyHandler) day(c *fiber.Ctx) error {
	user, _ := middleware.CurrentUser(c)

	detail, err := h.controller.Day(c.UserContext(), user.ID, c.Params("date"))
	if err != nil {
		if errors.Is(err, journeyController.ErrNotOnboarded) {
			return notOnboardedResponse(c)
		}
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"message": "error", "error": "failed to load day"})
	}

	return c.JSON(fiber.Map{"message": "success", "day": detail})
}

func (h *JourneyHandler) listAppointments(c *fiber.Ctx) error {
	user, _ := middleware.CurrentUser(c)

	appointments, err := h.controller.ListAppointments(c.UserContext(), user.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"message": "error", "error": "failed to load appointments"})
	}

	return c.JSON(fiber.Map{"message": "success", "appointments": appointments})
}

func (h *JourneyHandler) createAppointment(c *fiber.Ctx) error {
	log := h.log.Function("createAppointment")
	user, _ := middleware.CurrentUser(c)

	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"message": "error", "error": "multipart form required"})
	}

	input := journeyController.AppointmentInput{
		AppointmentDate: formValue(form, "appointmentDate"),
		DoctorName:      formValue(form, "doctorName"),
		Notes:           formValue(form, "notes"),
	}

	audiogramName, audiogram, err := openFormFile(c, "audiogram")
	if err != nil {
		log.Er("failed to open audiogram", err, "userID", user.ID)
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"message": "error", "error": "failed to read audiogram"})
	}
	if audiogram != nil {
		defer audiogram.Close()
	}

	appointment, fieldErrors, err := h.controller.CreateAppointment(
		c.UserContext(), user.ID, input, audiogramName, readerOrNil(audiogram))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"message": "error", "error": "failed to create appointment"})
	}
	if len(fieldErrors) > 0 {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"message": "error", "errors": fieldErrors})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "success", "appointment": appointment})
}

func (h *JourneyHandler) listMilestones(c *fiber.Ctx) error {
	user, _ := middleware.CurrentUser(c)

	milestones, err := h.controller.ListMilestones(c.UserContext(), user.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"message": "error", "error": "failed to load milestones"})
	}

	return c.JSON(fiber.Map{"message": "success", "milestones": milestones})
}

func (h *JourneyHandler) createMilestone(c *fiber.Ctx) error {
	log := h.log.Function("createMilestone")
	user, _ := middleware.CurrentUser(c)

	form, err := c.MultipartForm()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"message": "error", "error": "multipart form required"})
	}

	input := journeyController.MilestoneInput{
		Title: formValue(form, "title"),
		Date:  formValue(form, "date"),
		Score: formValue(form, "score"),
		Notes: formValue(form, "notes"),
	}

	mediaName, media, err := openFormFile(c, "media")
	if err != nil {
		log.Er("failed to open milestone media", err, "userID", user.ID)
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"message": "error", "error": "failed to read media"})
	}
	if media != nil {
		defer media.Close()
	}

	milestone, fieldErrors, err := h.controller.CreateMilestone(
		c.UserContext(), user.ID, input, mediaName, readerOrNil(media))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).
			JSON(fiber.Map{"message": "error", "error": "failed to create milestone"})
	}
	if len(fieldErrors) > 0 {
		return c.Status(fiber.StatusBadRequest).
			JSON(fiber.Map{"message": "error", "errors": fieldErrors})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "success", "milestone": milestone})
}

// readerOrNil keeps a typed nil ReadCloser from sneaking into an io.Reader
// interface value.
func readerOrNil(rc io.ReadCloser) io.Reader {
	if rc == nil {
		return nil
	}
	return rc
}
