package schema

import "server/internal/models"

// Per-entity schemas. Messages follow the original intake forms so the
// client can surface them inline unchanged.

func Registration() Schema {
	return New(
		Rule{Field: "email", Required: true, Message: "Please enter a valid email address", Checks: []Check{Email()}},
		Rule{Field: "password", Required: true, Message: "Password must be at least 8 characters", Checks: []Check{MinLen(8, "Password must be at least 8 characters")}},
		Rule{Field: "retypePassword", Required: true, Message: "Please retype your password"},
		Rule{Field: "firstName", Required: true, Message: "First name is required"},
		Rule{Field: "lastName", Required: true, Message: "Last name is required"},
		Rule{Field: "guardianName"},
		Rule{Field: "guardianPhone"},
	).WithCrossChecks(
		FieldsEqual("password", "retypePassword", "Passwords do not match"),
	)
}

func Login() Schema {
	return New(
		Rule{Field: "email", Required: true, Message: "Please enter a valid email address", Checks: []Check{Email()}},
		Rule{Field: "password", Required: true, Message: "Password is required"},
	)
}

func ForgotPassword() Schema {
	return New(
		Rule{Field: "email", Required: true, Message: "Please enter a valid email address", Checks: []Check{Email()}},
	)
}

func Onboarding() Schema {
	return New(
		Rule{Field: "usesProduct", Required: true, Message: "Please select an option", Checks: []Check{OneOf([]string{models.UsesProductYes, models.UsesProductWantToUse})}},
		Rule{Field: "surgeryDate", Checks: []Check{ISODate()}},
		Rule{Field: "activationDate", Required: true, Message: "Activation date is required", Checks: []Check{ISODate()}},
	)
}

func Beneficiary() Schema {
	return New(
		Rule{Field: "insuredFirstName", Required: true, Message: "First name is required"},
		Rule{Field: "insuredLastName", Required: true, Message: "Last name is required"},
		Rule{Field: "beneficiaryFirstName", Required: true, Message: "First name is required"},
		Rule{Field: "beneficiaryMiddleName"},
		Rule{Field: "beneficiaryLastName", Required: true, Message: "Last name is required"},
		Rule{Field: "beneficiarySuffix"},
		Rule{Field: "beneficiaryDob", Required: true, Message: "Date of birth is required", Checks: []Check{ISODate()}},
		Rule{Field: "beneficiaryGender", Required: true, Message: "Please select a gender", Checks: []Check{OneOf(models.Genders)}},
		Rule{Field: "addressStreet", Required: true, Message: "Street address is required"},
		Rule{Field: "addressLine2"},
		Rule{Field: "addressCity", Required: true, Message: "City is required"},
		Rule{Field: "addressState", Required: true, Message: "State / province is required"},
		Rule{Field: "addressZip", Required: true, Message: "Postal / zip code is required"},
		Rule{Field: "addressCountry", Required: true, Message: "Country is required"},
		Rule{Field: "relationshipToInsured", Required: true, Message: "Please select a relationship", Checks: []Check{OneOf(models.Relationships)}},
		Rule{Field: "allocation", Required: true, Message: "Allocation is required", Checks: []Check{IntRange(0, 100)}},
	)
}

// Questionnaire builds one rule per catalog question so the same schema
// serves full submission and single-question validation.
func Questionnaire() Schema {
	rules := make([]Rule, 0, len(models.Questions))
	for _, q := range models.Questions {
		rules = append(rules, Rule{
			Field:    q.ID,
			Required: true,
			Message:  "Please select an answer",
			Checks:   []Check{OneOf(q.Options)},
		})
	}
	return New(rules...)
}

// QuestionnaireDraft keeps the option checks but drops required-ness, so a
// draft may hold any subset of answers.
func QuestionnaireDraft() Schema {
	rules := make([]Rule, 0, len(models.Questions))
	for _, q := range models.Questions {
		rules = append(rules, Rule{
			Field:  q.ID,
			Checks: []Check{OneOf(q.Options)},
		})
	}
	return New(rules...)
}

func Appointment() Schema {
	return New(
		Rule{Field: "appointmentDate", Required: true, Message: "Appointment date is required", Checks: []Check{ISODate()}},
		Rule{Field: "doctorName", Required: true, Message: "Doctor name is required"},
		Rule{Field: "notes"},
	)
}

func Milestone() Schema {
	return New(
		Rule{Field: "title", Required: true, Message: "Milestone title is required"},
		Rule{Field: "date", Required: true, Message: "Date is required", Checks: []Check{ISODate()}},
		Rule{Field: "score", Required: true, Message: "Score is required", Checks: []Check{IntRange(1, 10)}},
		Rule{Field: "notes"},
	)
}
