package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegistration_RetypePasswordMismatch(t *testing.T) {
	values := map[string]string{
		"email":          "parent@example.com",
		"password":       "supersecret",
		"retypePassword": "supersecre",
		"firstName":      "Lina",
		"lastName":       "Haddad",
	}

	errs := Registration().Validate(values)

	assert.True(t, errs.Has("retypePassword"), "mismatch must attach to the retype field")
	assert.Equal(t, "Passwords do not match", errs["retypePassword"])
	assert.False(t, errs.Has("password"), "password itself is valid")
}

func TestRegistration_Valid(t *testing.T) {
	values := map[string]string{
		"email":          "parent@example.com",
		"password":       "supersecret",
		"retypePassword": "supersecret",
		"firstName":      "Lina",
		"lastName":       "Haddad",
	}

	assert.Nil(t, Registration().Validate(values))
}

func TestRegistration_FieldRules(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(map[string]string)
		errorField string
	}{
		{
			name:       "invalid email format",
			mutate:     func(v map[string]string) { v["email"] = "not-an-email" },
			errorField: "email",
		},
		{
			name:       "missing email",
			mutate:     func(v map[string]string) { v["email"] = "" },
			errorField: "email",
		},
		{
			name:       "short password",
			mutate:     func(v map[string]string) { v["password"] = "short"; v["retypePassword"] = "short" },
			errorField: "password",
		},
		{
			name:       "missing first name",
			mutate:     func(v map[string]string) { v["firstName"] = "" },
			errorField: "firstName",
		},
		{
			name:       "missing last name",
			mutate:     func(v map[string]string) { v["lastName"] = "  " },
			errorField: "lastName",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := map[string]string{
				"email":          "parent@example.com",
				"password":       "supersecret",
				"retypePassword": "supersecret",
				"firstName":      "Lina",
				"lastName":       "Haddad",
			}
			tt.mutate(values)

			errs := Registration().Validate(values)
			assert.True(t, errs.Has(tt.errorField), "expected error on %s, got %v", tt.errorField, errs)
		})
	}
}

func TestBeneficiary_AllocationBounds(t *testing.T) {
	tests := []struct {
		name       string
		allocation string
		wantError  bool
	}{
		{name: "zero", allocation: "0", wantError: false},
		{name: "full", allocation: "100", wantError: false},
		{name: "mid", allocation: "45", wantError: false},
		{name: "over", allocation: "101", wantError: true},
		{name: "negative", allocation: "-1", wantError: true},
		{name: "not a number", allocation: "all", wantError: true},
		{name: "empty", allocation: "", wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := validBeneficiaryValues()
			values["allocation"] = tt.allocation

			errs := Beneficiary().Validate(values)
			if tt.wantError {
				assert.True(t, errs.Has("allocation"), "expected allocation error, got %v", errs)
			} else {
				assert.False(t, errs.Has("allocation"), "unexpected allocation error: %v", errs)
			}
		})
	}
}

func TestBeneficiary_OptionalFieldsSkipped(t *testing.T) {
	values := validBeneficiaryValues()
	delete(values, "beneficiaryMiddleName")
	delete(values, "beneficiarySuffix")
	delete(values, "addressLine2")

	assert.Nil(t, Beneficiary().Validate(values))
}

func TestBeneficiary_DateAndEnumRules(t *testing.T) {
	values := validBeneficiaryValues()
	values["beneficiaryDob"] = "01/02/2020"
	values["beneficiaryGender"] = "other"
	values["relationshipToInsured"] = "Cousin"

	errs := Beneficiary().Validate(values)
	assert.True(t, errs.Has("beneficiaryDob"))
	assert.True(t, errs.Has("beneficiaryGender"))
	assert.True(t, errs.Has("relationshipToInsured"))
}

func TestOnboarding_SurgeryDateOptional(t *testing.T) {
	errs := Onboarding().Validate(map[string]string{
		"usesProduct":    "yes",
		"activationDate": "2024-01-01",
	})
	assert.Nil(t, errs)

	errs = Onboarding().Validate(map[string]string{
		"usesProduct":    "yes",
		"surgeryDate":    "not-a-date",
		"activationDate": "2024-01-01",
	})
	assert.True(t, errs.Has("surgeryDate"))
}

func TestOnboarding_ActivationRequired(t *testing.T) {
	errs := Onboarding().Validate(map[string]string{
		"usesProduct": "want_to_use",
	})
	assert.Equal(t, "Activation date is required", errs["activationDate"])
}

func TestQuestionnaire_ValidateField(t *testing.T) {
	values := map[string]string{"q9_caregiver": "both"}

	assert.Nil(t, Questionnaire().ValidateField("q9_caregiver", values))

	values["q9_caregiver"] = "uncle"
	errs := Questionnaire().ValidateField("q9_caregiver", values)
	assert.True(t, errs.Has("q9_caregiver"))

	// Validating one field ignores the other eleven being empty.
	values["q9_caregiver"] = "mother"
	assert.Nil(t, Questionnaire().ValidateField("q9_caregiver", values))
}

func TestQuestionnaireDraft_AllowsPartialAnswers(t *testing.T) {
	values := map[string]string{
		"q1_education": "bachelors",
		"q2_work":      "full_time",
	}
	assert.Nil(t, QuestionnaireDraft().Validate(values))

	values["q3_hobbies"] = "gaming"
	errs := QuestionnaireDraft().Validate(values)
	assert.True(t, errs.Has("q3_hobbies"), "draft still rejects unknown option codes")
}

func TestQuestionnaire_RejectsIncomplete(t *testing.T) {
	values := map[string]string{
		"q1_education": "bachelors",
		"q2_work":      "full_time",
	}
	errs := Questionnaire().Validate(values)
	assert.Len(t, errs, 10, "every unanswered question gets an error")
}

func TestAppointment(t *testing.T) {
	errs := Appointment().Validate(map[string]string{
		"appointmentDate": "2025-03-14",
		"doctorName":      "Dr. Mansour",
	})
	assert.Nil(t, errs)

	errs = Appointment().Validate(map[string]string{"appointmentDate": "soon"})
	assert.True(t, errs.Has("appointmentDate"))
	assert.True(t, errs.Has("doctorName"))
}

func TestMilestone_ScoreBounds(t *testing.T) {
	values := map[string]string{
		"title": "Said 'Mama' for the first time",
		"date":  "2025-06-01",
		"score": "11",
	}
	errs := Milestone().Validate(values)
	assert.True(t, errs.Has("score"))

	values["score"] = "10"
	assert.Nil(t, Milestone().Validate(values))
}

func TestFieldErrors_Error(t *testing.T) {
	errs := FieldErrors{"email": "Please enter a valid email address"}
	assert.Contains(t, errs.Error(), "email")
}

func validBeneficiaryValues() map[string]string {
	return map[string]string{
		"insuredFirstName":      "Samir",
		"insuredLastName":       "Haddad",
		"beneficiaryFirstName":  "Maya",
		"beneficiaryMiddleName": "",
		"beneficiaryLastName":   "Haddad",
		"beneficiarySuffix":     "",
		"beneficiaryDob":        "2020-02-01",
		"beneficiaryGender":     "female",
		"addressStreet":         "12 Palm Street",
		"addressLine2":          "",
		"addressCity":           "Dubai",
		"addressState":          "Dubai",
		"addressZip":            "00000",
		"addressCountry":        "UAE",
		"relationshipToInsured": "Child",
		"allocation":            "100",
	}
}
