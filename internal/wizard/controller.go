package wizard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"server/internal/documents"
	"server/internal/logger"
	. "server/internal/models"
	"server/internal/repositories"
	"server/internal/schema"
	"server/internal/services"

	"gorm.io/gorm"
)

var (
	ErrAlreadySubmitted = errors.New("application already submitted")
	ErrStepMismatch     = errors.New("form step does not match current step")
)

// Controller drives the onboarding wizard: one cursor per user, moved only
// by Advance, Retreat, and Skip. Step payloads are validated and persisted
// before the cursor moves.
type Controller struct {
	applications repositories.ApplicationRepository
	onboarding   repositories.OnboardingRepository
	documents    repositories.DocumentRepository
	tx           *services.TransactionService
	log          logger.Logger
}

func NewController(
	applications repositories.ApplicationRepository,
	onboarding repositories.OnboardingRepository,
	docs repositories.DocumentRepository,
	tx *services.TransactionService,
) *Controller {
	return &Controller{
		applications: applications,
		onboarding:   onboarding,
		documents:    docs,
		tx:           tx,
		log:          logger.New("wizardController"),
	}
}

// State returns the user's wizard state, creating one at the first step when
// the user has never entered the wizard.
func (c *Controller) State(ctx context.Context, userID string) (*WizardState, error) {
	log := c.log.Function("State")

	state, err := c.applications.GetWizardState(ctx, userID)
	if err == nil {
		return state, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	state = &WizardState{UserID: userID, CurrentStep: StepOverview}
	if saveErr := c.applications.SaveWizardState(ctx, state); saveErr != nil {
		return nil, log.Err("failed to initialize wizard state", saveErr, "userID", userID)
	}

	return state, nil
}

// BuildForm decodes the raw step payload into the form for that step.
func (c *Controller) BuildForm(userID string, step int, payload []byte) (StepForm, error) {
	switch step {
	case StepOverview:
		return overviewForm{}, nil
	case StepProfile:
		var input ProfileInput
		if len(payload) > 0 {
			if err := json.Unmarshal(payload, &input); err != nil {
				return nil, fmt.Errorf("invalid profile payload: %w", err)
			}
		}
		return profileForm{userID: userID, input: input, repo: c.onboarding}, nil
	case StepQuestionnaire:
		var input QuestionnaireInput
		if len(payload) > 0 {
			if err := json.Unmarshal(payload, &input); err != nil {
				return nil, fmt.Errorf("invalid questionnaire payload: %w", err)
			}
		}
		if input.Answers == nil {
			input.Answers = map[string]string{}
		}
		return questionnaireForm{userID: userID, input: input, repo: c.onboarding}, nil
	case StepDocuments:
		return documentsForm{userID: userID, checklist: c.checklistFor}, nil
	case StepReview:
		return reviewForm{userID: userID, onboarding: c.onboarding, checklist: c.checklistFor}, nil
	default:
		return nil, fmt.Errorf("unknown wizard step %d", step)
	}
}

// Advance validates and persists the form for the current step, then moves
// the cursor forward. Advancing past the review step submits the
// application: the state flips to submitted and a pending application row is
// created, both inside one transaction.
func (c *Controller) Advance(ctx context.Context, userID string, form StepForm) (*WizardState, schema.FieldErrors, error) {
	log := c.log.Function("Advance")

	state, err := c.State(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	if state.Submitted {
		return nil, nil, ErrAlreadySubmitted
	}
	if form.Step() != state.CurrentStep {
		return nil, nil, fmt.Errorf("%w: form %d, current %d", ErrStepMismatch, form.Step(), state.CurrentStep)
	}

	if fieldErrors := form.Validate(ctx); len(fieldErrors) > 0 {
		return state, fieldErrors, nil
	}
	if err := form.Save(ctx); err != nil {
		return nil, nil, log.Err("failed to save step", err, "userID", userID, "step", form.Step())
	}

	if state.CurrentStep == StepReview {
		return c.submit(ctx, state)
	}

	state.CurrentStep++
	if err := c.applications.SaveWizardState(ctx, state); err != nil {
		return nil, nil, err
	}

	return state, nil, nil
}

func (c *Controller) submit(ctx context.Context, state *WizardState) (*WizardState, schema.FieldErrors, error) {
	log := c.log.Function("submit")

	err := c.tx.Execute(ctx, func(txCtx context.Context) error {
		application := &Application{UserID: state.UserID, Status: StatusPending}
		if err := c.applications.Create(txCtx, application); err != nil {
			return err
		}

		state.Submitted = true
		return c.applications.SaveWizardState(txCtx, state)
	})
	if err != nil {
		return nil, nil, log.Err("failed to submit application", err, "userID", state.UserID)
	}

	log.Info("application submitted", "userID", state.UserID)
	return state, nil, nil
}

// Retreat moves the cursor back one step, never below the first step.
func (c *Controller) Retreat(ctx context.Context, userID string) (*WizardState, error) {
	state, err := c.State(ctx, userID)
	if err != nil {
		return nil, err
	}
	if state.Submitted {
		return nil, ErrAlreadySubmitted
	}
	if state.CurrentStep > StepOverview {
		state.CurrentStep--
		if err := c.applications.SaveWizardState(ctx, state); err != nil {
			return nil, err
		}
	}

	return state, nil
}

// Skip marks the wizard as skipped without moving the cursor, so the user
// can resume where they left off.
func (c *Controller) Skip(ctx context.Context, userID string) (*WizardState, error) {
	state, err := c.State(ctx, userID)
	if err != nil {
		return nil, err
	}
	if state.Skipped {
		return state, nil
	}

	state.Skipped = true
	if err := c.applications.SaveWizardState(ctx, state); err != nil {
		return nil, err
	}

	return state, nil
}

// Resume clears the skipped flag when the user re-enters the wizard.
func (c *Controller) Resume(ctx context.Context, userID string) (*WizardState, error) {
	state, err := c.State(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !state.Skipped {
		return state, nil
	}

	state.Skipped = false
	if err := c.applications.SaveWizardState(ctx, state); err != nil {
		return nil, err
	}

	return state, nil
}

// SaveDraft persists a partial questionnaire: only the answered questions
// are validated, and the response stays a draft.
func (c *Controller) SaveDraft(ctx context.Context, userID string, input QuestionnaireInput) (schema.FieldErrors, error) {
	log := c.log.Function("SaveDraft")

	if input.Answers == nil {
		input.Answers = map[string]string{}
	}
	if fieldErrors := schema.QuestionnaireDraft().Validate(input.Answers); len(fieldErrors) > 0 {
		return fieldErrors, nil
	}

	response, err := c.onboarding.GetQuestionnaire(ctx, userID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		response = &QuestionnaireResponse{UserID: userID, IsDraft: true}
	}

	// Answers are only mutable until the questionnaire step is completed; a
	// finalized response cannot be regressed to a draft.
	if !response.IsDraft {
		return schema.FieldErrors{"questionnaire": "Questionnaire has already been submitted"}, nil
	}

	for id, value := range input.Answers {
		response.SetAnswer(id, value)
	}
	if input.AudioRecordingURL != "" {
		response.AudioRecordingURL = &input.AudioRecordingURL
	}

	if err := c.onboarding.SaveQuestionnaire(ctx, response); err != nil {
		return nil, log.Err("failed to save draft", err, "userID", userID)
	}

	return nil, nil
}

// AnswerQuestion records a single answer, validating only that question.
// This backs the one-question-at-a-time paging of the questionnaire.
func (c *Controller) AnswerQuestion(ctx context.Context, userID, questionID, value string) (schema.FieldErrors, error) {
	if _, ok := QuestionByID(questionID); !ok {
		return schema.FieldErrors{questionID: "Unknown question"}, nil
	}

	fieldErrors := schema.Questionnaire().ValidateField(questionID, map[string]string{questionID: value})
	if len(fieldErrors) > 0 {
		return fieldErrors, nil
	}

	return c.SaveDraft(ctx, userID, QuestionnaireInput{Answers: map[string]string{questionID: value}})
}

// Questionnaire returns the saved answers and whether they are still a
// draft. A user with no saved response gets an empty draft.
func (c *Controller) Questionnaire(ctx context.Context, userID string) (map[string]string, bool, error) {
	response, err := c.onboarding.GetQuestionnaire(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return map[string]string{}, true, nil
		}
		return nil, false, err
	}
	return response.Answers(), response.IsDraft, nil
}

func (c *Controller) checklistFor(ctx context.Context, userID string) (documents.Checklist, error) {
	records, err := c.documents.ListByUser(ctx, userID)
	if err != nil {
		return documents.Checklist{}, err
	}
	return documents.BuildChecklist(records), nil
}
