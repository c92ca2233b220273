// Package wizard drives the application intake flow: a fixed, resumable
// sequence of steps, each gated on its own validated payload.
package wizard

const (
	StepOverview      = 1
	StepProfile       = 2
	StepQuestionnaire = 3
	StepDocuments     = 4
	StepReview        = 5

	StepCount = 5
)

type StepInfo struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

var Steps = []StepInfo{
	{ID: StepOverview, Title: "Overview", Description: "Process Overview"},
	{ID: StepProfile, Title: "Profile", Description: "Basic Information"},
	{ID: StepQuestionnaire, Title: "Questionnaire", Description: "Parent Readiness"},
	{ID: StepDocuments, Title: "Documents", Description: "Upload Required Files"},
	{ID: StepReview, Title: "Review", Description: "Review & Submit"},
}
