package applicationController

import (
	"context"
	"errors"

	"server/internal/events"
	"server/internal/logger"
	. "server/internal/models"
	"server/internal/repositories"
	"server/internal/status"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrNotSubmitted  = errors.New("application has not been submitted")
	ErrInvalidStatus = errors.New("invalid application status")
)

// StatusResponse is the application status joined with its display view.
type StatusResponse struct {
	Application *Application `json:"application"`
	View        status.View  `json:"view"`
}

type ApplicationController struct {
	applicationRepo repositories.ApplicationRepository
	eventBus        *events.EventBus
	log             logger.Logger
}

func New(
	applicationRepo repositories.ApplicationRepository,
	eventBus *events.EventBus,
) *ApplicationController {
	return &ApplicationController{
		applicationRepo: applicationRepo,
		eventBus:        eventBus,
		log:             logger.New("ApplicationController"),
	}
}

// Status returns the user's application with its view model.
func (ac *ApplicationController) Status(ctx context.Context, userID string) (*StatusResponse, error) {
	application, err := ac.applicationRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotSubmitted
		}
		return nil, err
	}

	return &StatusResponse{
		Application: application,
		View:        status.ViewFor(application.Status),
	}, nil
}

// UpdateStatus is the review-team transition. The new status is broadcast
// so connected clients refresh without polling.
func (ac *ApplicationController) UpdateStatus(
	ctx context.Context,
	userID string,
	newStatus string,
) (*Application, error) {
	log := ac.log.Function("UpdateStatus")

	if !IsValidApplicationStatus(newStatus) {
		return nil, ErrInvalidStatus
	}

	application, err := ac.applicationRepo.UpdateStatus(ctx, userID, newStatus)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotSubmitted
		}
		return nil, err
	}

	eventID, _ := uuid.NewV7()
	if err := ac.eventBus.PublishStatusChange(eventID.String(), userID, newStatus); err != nil {
		log.Warn("failed to publish status change", "userID", userID, "status", newStatus, "error", err)
	}

	log.Info("application status updated", "userID", userID, "status", newStatus)
	return application, nil
}
