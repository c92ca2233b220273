package journeyController

import (
	"context"
	"errors"
	"io"
	"strconv"
	"time"

	"server/internal/journal"
	"server/internal/logger"
	. "server/internal/models"
	"server/internal/repositories"
	"server/internal/schema"
	"server/internal/storage"

	"gorm.io/gorm"
)

var (
	// ErrNotOnboarded gates the journal behind the post-approval onboarding
	// record: without an activation date there is nothing to count from.
	ErrNotOnboarded = errors.New("onboarding has not been completed")
	// ErrAlreadyOnboarded keeps the device record write-once.
	ErrAlreadyOnboarded = errors.New("onboarding already completed")
)

type OnboardingInput struct {
	UsesProduct    string `json:"usesProduct"`
	SurgeryDate    string `json:"surgeryDate"`
	ActivationDate string `json:"activationDate"`
}

type AppointmentInput struct {
	AppointmentDate string `json:"appointmentDate"`
	DoctorName      string `json:"doctorName"`
	Notes           string `json:"notes"`
}

type MilestoneInput struct {
	Title string `json:"title"`
	Date  string `json:"date"`
	Score string `json:"score"`
	Notes string `json:"notes"`
}

// JournalView is the full journal page payload.
type JournalView struct {
	Record     *OnboardingRecord  `json:"record"`
	HearingAge journal.HearingAge `json:"hearingAge"`
	Calendar   []journal.Day      `json:"calendar"`
	Surveys    []journal.Survey   `json:"surveys"`
	Tips       []journal.Tip      `json:"tips"`
}

type JourneyController struct {
	onboardingRepo repositories.OnboardingRepository
	journalRepo    repositories.JournalRepository
	store          storage.Store
	now            func() time.Time
	log            logger.Logger
}

func New(
	onboardingRepo repositories.OnboardingRepository,
	journalRepo repositories.JournalRepository,
	store storage.Store,
) *JourneyController {
	return &JourneyController{
		onboardingRepo: onboardingRepo,
		journalRepo:    journalRepo,
		store:          store,
		now:            time.Now,
		log:            logger.New("JourneyController"),
	}
}

// WithClock overrides the time source, used by tests to pin the counter.
func (jc *JourneyController) WithClock(now func() time.Time) *JourneyController {
	jc.now = now
	return jc
}

// CompleteOnboarding records the device details after approval. One record
// per user; a second submission is rejected.
func (jc *JourneyController) CompleteOnboarding(
	ctx context.Context,
	userID string,
	input OnboardingInput,
) (*OnboardingRecord, schema.FieldErrors, error) {
	log := jc.log.Function("CompleteOnboarding")

	fieldErrors := schema.Onboarding().Validate(map[string]string{
		"usesProduct":    input.UsesProduct,
		"surgeryDate":    input.SurgeryDate,
		"activationDate": input.ActivationDate,
	})
	if len(fieldErrors) > 0 {
		return nil, fieldErrors, nil
	}

	if _, err := jc.onboardingRepo.GetRecord(ctx, userID); err == nil {
		log.Warn("onboarding already completed", "userID", userID)
		return nil, nil, ErrAlreadyOnboarded
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, err
	}

	record := &OnboardingRecord{
		UserID:         userID,
		UsesProduct:    input.UsesProduct,
		ActivationDate: input.ActivationDate,
	}
	if input.SurgeryDate != "" {
		record.SurgeryDate = &input.SurgeryDate
	}

	if err := jc.onboardingRepo.CreateRecord(ctx, record); err != nil {
		return nil, nil, err
	}

	log.Info("onboarding completed", "userID", userID)
	return record, nil, nil
}

// OnboardingRecord returns the device record, or ErrNotOnboarded.
func (jc *JourneyController) OnboardingRecord(ctx context.Context, userID string) (*OnboardingRecord, error) {
	record, err := jc.onboardingRepo.GetRecord(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotOnboarded
		}
		return nil, err
	}
	return record, nil
}

// Journal assembles the hearing-age counter, highlighted calendar and side
// content in one payload.
func (jc *JourneyController) Journal(ctx context.Context, userID string) (*JournalView, error) {
	log := jc.log.Function("Journal")

	record, err := jc.OnboardingRecord(ctx, userID)
	if err != nil {
		return nil, err
	}

	hearingAge, err := journal.ComputeHearingAge(record.ActivationDate, jc.now())
	if err != nil {
		return nil, log.Err("invalid activation date", err, "userID", userID)
	}

	appointments, err := jc.journalRepo.ListAppointments(ctx, userID)
	if err != nil {
		return nil, err
	}
	milestones, err := jc.journalRepo.ListMilestones(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &JournalView{
		Record:     record,
		HearingAge: hearingAge,
		Calendar:   journal.BuildCalendar(record.SurgeryDate, record.ActivationDate, appointments, milestones),
		Surveys:    journal.Surveys,
		Tips:       journal.Tips,
	}, nil
}

// Day returns the detail panel for a single calendar date.
func (jc *JourneyController) Day(ctx context.Context, userID, date string) (journal.DayDetail, error) {
	record, err := jc.OnboardingRecord(ctx, userID)
	if err != nil {
		return journal.DayDetail{}, err
	}

	appointments, err := jc.journalRepo.ListAppointments(ctx, userID)
	if err != nil {
		return journal.DayDetail{}, err
	}
	milestones, err := jc.journalRepo.ListMilestones(ctx, userID)
	if err != nil {
		return journal.DayDetail{}, err
	}

	return journal.DetailsFor(date, record.SurgeryDate, record.ActivationDate, appointments, milestones), nil
}

func (jc *JourneyController) ListAppointments(ctx context.Context, userID string) ([]*Appointment, error) {
	return jc.journalRepo.ListAppointments(ctx, userID)
}

// CreateAppointment validates and stores a visit, optionally attaching an
// uploaded audiogram.
func (jc *JourneyController) CreateAppointment(
	ctx context.Context,
	userID string,
	input AppointmentInput,
	audiogramName string,
	audiogram io.Reader,
) (*Appointment, schema.FieldErrors, error) {
	log := jc.log.Function("CreateAppointment")

	fieldErrors := schema.Appointment().Validate(map[string]string{
		"appointmentDate": input.AppointmentDate,
		"doctorName":      input.DoctorName,
		"notes":           input.Notes,
	})
	if len(fieldErrors) > 0 {
		return nil, fieldErrors, nil
	}

	appointment := &Appointment{
		UserID:          userID,
		AppointmentDate: input.AppointmentDate,
		DoctorName:      input.DoctorName,
	}
	if input.Notes != "" {
		appointment.Notes = &input.Notes
	}

	if audiogram != nil && audiogramName != "" {
		fileURL, err := jc.store.Save(userID, audiogramName, audiogram)
		if err != nil {
			return nil, nil, log.Err("failed to store audiogram", err, "userID", userID)
		}
		appointment.AudiogramURL = &fileURL
	}

	if err := jc.journalRepo.CreateAppointment(ctx, appointment); err != nil {
		return nil, nil, err
	}

	return appointment, nil, nil
}

func (jc *JourneyController) ListMilestones(ctx context.Context, userID string) ([]*Milestone, error) {
	return jc.journalRepo.ListMilestones(ctx, userID)
}

// CreateMilestone validates and stores a progress entry, optionally with an
// attached photo or video.
func (jc *JourneyController) CreateMilestone(
	ctx context.Context,
	userID string,
	input MilestoneInput,
	mediaName string,
	media io.Reader,
) (*Milestone, schema.FieldErrors, error) {
	log := jc.log.Function("CreateMilestone")

	fieldErrors := schema.Milestone().Validate(map[string]string{
		"title": input.Title,
		"date":  input.Date,
		"score": input.Score,
		"notes": input.Notes,
	})
	if len(fieldErrors) > 0 {
		return nil, fieldErrors, nil
	}

	score, _ := strconv.Atoi(input.Score)
	milestone := &Milestone{
		UserID: userID,
		Title:  input.Title,
		Date:   input.Date,
		Score:  score,
		Notes:  input.Notes,
	}

	if media != nil && mediaName != "" {
		fileURL, err := jc.store.Save(userID, mediaName, media)
		if err != nil {
			return nil, nil, log.Err("failed to store milestone media", err, "userID", userID)
		}
		milestone.MediaURL = &fileURL
	}

	if err := jc.journalRepo.CreateMilestone(ctx, milestone); err != nil {
		return nil, nil, err
	}

	return milestone, nil, nil
}
