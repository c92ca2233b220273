package models

const (
	StatusPending    = "pending"
	StatusReview     = "review"
	StatusApproved   = "approved"
	StatusDeclined   = "declined"
	StatusSuccessful = "successful" // alias of approved in the view layer
)

var ApplicationStatuses = []string{
	StatusPending,
	StatusReview,
	StatusApproved,
	StatusDeclined,
	StatusSuccessful,
}

// Application is created when the wizard's review step is submitted. Status
// transitions are review-team driven, never client driven.
type Application struct {
	BaseUUIDModel
	UserID string `gorm:"type:varchar(64);not null;uniqueIndex" json:"userId"`
	Status string `gorm:"type:varchar(20);not null"             json:"status"`
}

func IsValidApplicationStatus(status string) bool {
	for _, s := range ApplicationStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// WizardState is the persisted position in the application wizard, one row
// per user so the flow is resumable across sessions.
type WizardState struct {
	BaseUUIDModel
	UserID      string `gorm:"type:varchar(64);not null;uniqueIndex" json:"userId"`
	CurrentStep int    `gorm:"not null;default:1"                    json:"currentStep"`
	Submitted   bool   `gorm:"not null;default:false"                json:"submitted"`
	Skipped     bool   `gorm:"not null;default:false"                json:"skipped"`
}
