package wizard

import (
	"context"

	"server/internal/documents"
	. "server/internal/models"
	"server/internal/repositories"
	"server/internal/schema"
)

// StepForm is the capability set every wizard step exposes. The controller
// sequences steps purely through this interface; the concrete forms are the
// tagged variants behind it.
type StepForm interface {
	Step() int
	Validate(ctx context.Context) schema.FieldErrors
	Value() any
	Save(ctx context.Context) error
}

// overviewForm has no payload; advancing from the overview only moves the
// cursor.
type overviewForm struct{}

func (overviewForm) Step() int                                   { return StepOverview }
func (overviewForm) Validate(context.Context) schema.FieldErrors { return nil }
func (overviewForm) Value() any                                  { return nil }
func (overviewForm) Save(context.Context) error                  { return nil }

type ProfileInput struct {
	InsuredFirstName      string `json:"insuredFirstName"`
	InsuredLastName       string `json:"insuredLastName"`
	BeneficiaryFirstName  string `json:"beneficiaryFirstName"`
	BeneficiaryMiddleName string `json:"beneficiaryMiddleName"`
	BeneficiaryLastName   string `json:"beneficiaryLastName"`
	BeneficiarySuffix     string `json:"beneficiarySuffix"`
	BeneficiaryDob        string `json:"beneficiaryDob"`
	BeneficiaryGender     string `json:"beneficiaryGender"`
	AddressStreet         string `json:"addressStreet"`
	AddressLine2          string `json:"addressLine2"`
	AddressCity           string `json:"addressCity"`
	AddressState          string `json:"addressState"`
	AddressZip            string `json:"addressZip"`
	AddressCountry        string `json:"addressCountry"`
	RelationshipToInsured string `json:"relationshipToInsured"`
	Allocation            string `json:"allocation"`
}

func (in ProfileInput) values() map[string]string {
	return map[string]string{
		"insuredFirstName":      in.InsuredFirstName,
		"insuredLastName":       in.InsuredLastName,
		"beneficiaryFirstName":  in.BeneficiaryFirstName,
		"beneficiaryMiddleName": in.BeneficiaryMiddleName,
		"beneficiaryLastName":   in.BeneficiaryLastName,
		"beneficiarySuffix":     in.BeneficiarySuffix,
		"beneficiaryDob":        in.BeneficiaryDob,
		"beneficiaryGender":     in.BeneficiaryGender,
		"addressStreet":         in.AddressStreet,
		"addressLine2":          in.AddressLine2,
		"addressCity":           in.AddressCity,
		"addressState":          in.AddressState,
		"addressZip":            in.AddressZip,
		"addressCountry":        in.AddressCountry,
		"relationshipToInsured": in.RelationshipToInsured,
		"allocation":            in.Allocation,
	}
}

type profileForm struct {
	userID string
	input  ProfileInput
	repo   repositories.OnboardingRepository
}

func (profileForm) Step() int { return StepProfile }

func (f profileForm) Validate(context.Context) schema.FieldErrors {
	return schema.Beneficiary().Validate(f.input.values())
}

func (f profileForm) Value() any { return f.input }

func (f profileForm) Save(ctx context.Context) error {
	profile := &BeneficiaryProfile{
		UserID:                f.userID,
		InsuredFirstName:      f.input.InsuredFirstName,
		InsuredLastName:       f.input.InsuredLastName,
		BeneficiaryFirstName:  f.input.BeneficiaryFirstName,
		BeneficiaryMiddleName: optional(f.input.BeneficiaryMiddleName),
		BeneficiaryLastName:   f.input.BeneficiaryLastName,
		BeneficiarySuffix:     optional(f.input.BeneficiarySuffix),
		BeneficiaryDob:        f.input.BeneficiaryDob,
		BeneficiaryGender:     f.input.BeneficiaryGender,
		AddressStreet:         f.input.AddressStreet,
		AddressLine2:          optional(f.input.AddressLine2),
		AddressCity:           f.input.AddressCity,
		AddressState:          f.input.AddressState,
		AddressZip:            f.input.AddressZip,
		AddressCountry:        f.input.AddressCountry,
		RelationshipToInsured: f.input.RelationshipToInsured,
		Allocation:            f.input.Allocation,
		// Single beneficiary: the total mirrors the one allocation.
		TotalAllocation: f.input.Allocation,
	}
	return f.repo.SaveProfile(ctx, profile)
}

type QuestionnaireInput struct {
	Answers           map[string]string `json:"answers"`
	AudioRecordingURL string            `json:"audioRecordingUrl"`
}

type questionnaireForm struct {
	userID string
	input  QuestionnaireInput
	repo   repositories.OnboardingRepository
}

func (questionnaireForm) Step() int { return StepQuestionnaire }

func (f questionnaireForm) Validate(context.Context) schema.FieldErrors {
	return schema.Questionnaire().Validate(f.input.Answers)
}

func (f questionnaireForm) Value() any { return f.input }

// Save persists the full response and finalizes it; drafts go through the
// controller's SaveDraft instead.
func (f questionnaireForm) Save(ctx context.Context) error {
	response := &QuestionnaireResponse{UserID: f.userID, IsDraft: false}
	for id, value := range f.input.Answers {
		response.SetAnswer(id, value)
	}
	response.AudioRecordingURL = optional(f.input.AudioRecordingURL)
	return f.repo.SaveQuestionnaire(ctx, response)
}

// checklistLoader builds the current document checklist for a user.
type checklistLoader func(ctx context.Context, userID string) (documents.Checklist, error)

// documentsForm gates the step on the checklist; uploads themselves happen
// through the documents endpoint before the step is advanced.
type documentsForm struct {
	userID    string
	checklist checklistLoader
}

func (documentsForm) Step() int { return StepDocuments }

func (f documentsForm) Validate(ctx context.Context) schema.FieldErrors {
	view, err := f.checklist(ctx, f.userID)
	if err != nil {
		return schema.FieldErrors{"documents": "Unable to load the document checklist"}
	}
	if view.ReadyForSubmission() {
		return nil
	}

	errs := schema.FieldErrors{}
	for _, id := range view.MissingRequired() {
		errs[id] = "This document is required"
	}
	return errs
}

func (f documentsForm) Value() any { return nil }

func (f documentsForm) Save(context.Context) error { return nil }

// reviewForm re-checks every prior step before submission.
type reviewForm struct {
	userID     string
	onboarding repositories.OnboardingRepository
	checklist  checklistLoader
}

func (reviewForm) Step() int { return StepReview }

func (f reviewForm) Validate(ctx context.Context) schema.FieldErrors {
	errs := schema.FieldErrors{}

	if _, err := f.onboarding.GetProfile(ctx, f.userID); err != nil {
		errs["profile"] = "Beneficiary profile is incomplete"
	}

	response, err := f.onboarding.GetQuestionnaire(ctx, f.userID)
	if err != nil || response.IsDraft || response.AnsweredCount() < len(Questions) {
		errs["questionnaire"] = "Questionnaire has not been submitted"
	}

	view, err := f.checklist(ctx, f.userID)
	if err != nil || !view.ReadyForSubmission() {
		errs["documents"] = "Required documents are missing"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func (f reviewForm) Value() any { return nil }

func (f reviewForm) Save(context.Context) error { return nil }

func optional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
