// Package status maps an application status to the client-facing view
// model. The view is a pure function of the status value; transition
// authority lives with the review endpoint.
package status

import . "server/internal/models"

type StepState string

const (
	StepCompleted StepState = "completed"
	StepUpcoming  StepState = "upcoming"
	StepError     StepState = "error"
)

// ProgressStep is one node of the 3-step Submitted/Review/Decision bar.
type ProgressStep struct {
	Number int       `json:"number"`
	Label  string    `json:"label"`
	State  StepState `json:"state"`
}

type View struct {
	Status      string `json:"status"`
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Message     string `json:"message"`
	Step        int    `json:"step"`
	// CanContinueOnboarding gates the post-approval wizard entry point.
	CanContinueOnboarding bool           `json:"canContinueOnboarding"`
	Progress              []ProgressStep `json:"progress"`
}

var progressLabels = []string{"Submitted", "Review", "Decision"}

// ViewFor builds the display tuple for a status. Unknown statuses fall back
// to the pending view.
func ViewFor(applicationStatus string) View {
	var view View

	switch applicationStatus {
	case StatusReview:
		view = View{
			Status:      StatusReview,
			Icon:        "file-text",
			Title:       "Under Review",
			Description: "Your application is currently being reviewed by our specialists.",
			Message:     "We are currently assessing your application and medical records. This process typically takes 3-5 business days.",
			Step:        2,
		}
	case StatusApproved, StatusSuccessful:
		view = View{
			Status:                applicationStatus,
			Icon:                  "check-circle",
			Title:                 "Application Approved",
			Description:           "Congratulations! Your application has been approved.",
			Message:               "We are pleased to inform you that your application has been successful. You can now proceed to the next steps.",
			Step:                  3,
			CanContinueOnboarding: true,
		}
	case StatusDeclined:
		view = View{
			Status:      StatusDeclined,
			Icon:        "x-circle",
			Title:       "Application Declined",
			Description: "Unfortunately, your application could not be processed at this time.",
			Message:     "Please contact our support team for more information regarding your application status.",
			Step:        3,
		}
	default:
		view = View{
			Status:      StatusPending,
			Icon:        "clock",
			Title:       "Application Pending",
			Description: "Your application has been submitted and is awaiting initial review.",
			Message:     "Thank you for submitting your application. Our team will review your documents shortly.",
			Step:        1,
		}
	}

	view.Progress = progressFor(view.Step, applicationStatus == StatusDeclined)
	return view
}

func progressFor(step int, declined bool) []ProgressStep {
	steps := make([]ProgressStep, 0, len(progressLabels))
	for i, label := range progressLabels {
		num := i + 1
		state := StepUpcoming
		switch {
		case declined && num == 3:
			// A declined decision is an error terminal, never "completed".
			state = StepError
		case num <= step:
			// The reached step renders as completed; only future steps are
			// upcoming.
			state = StepCompleted
		}
		steps = append(steps, ProgressStep{Number: num, Label: label, State: state})
	}
	return steps
}
