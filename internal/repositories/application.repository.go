package repositories

import (
	"context"
	"server/internal/database"
	"server/internal/logger"
	. "server/internal/models"
	"server/internal/services"

	"gorm.io/gorm"
)

type ApplicationRepository interface {
	GetByUserID(ctx context.Context, userID string) (*Application, error)
	Create(ctx context.Context, application *Application) error
	UpdateStatus(ctx context.Context, userID, status string) (*Application, error)

	GetWizardState(ctx context.Context, userID string) (*WizardState, error)
	SaveWizardState(ctx context.Context, state *WizardState) error
}

type applicationRepository struct {
	db  database.DB
	log logger.Logger
}

func NewApplication(db database.DB) ApplicationRepository {
	return &applicationRepository{
		db:  db,
		log: logger.New("applicationRepository"),
	}
}

func (r *applicationRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := services.GetTransaction(ctx); ok {
		return tx
	}
	return r.db.SQLWithContext(ctx)
}

func (r *applicationRepository) GetByUserID(ctx context.Context, userID string) (*Application, error) {
	log := r.log.Function("GetByUserID")

	var application Application
	if err := r.getDB(ctx).First(&application, "user_id = ?", userID).Error; err != nil {
		return nil, log.Err("failed to get application", err, "userID", userID)
	}

	return &application, nil
}

func (r *applicationRepository) Create(ctx context.Context, application *Application) error {
	log := r.log.Function("Create")

	if err := r.getDB(ctx).Create(application).Error; err != nil {
		return log.Err("failed to create application", err, "userID", application.UserID)
	}

	return nil
}

func (r *applicationRepository) UpdateStatus(ctx context.Context, userID, status string) (*Application, error) {
	log := r.log.Function("UpdateStatus")

	application, err := r.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	application.Status = status
	if err := r.getDB(ctx).Save(application).Error; err != nil {
		return nil, log.Err("failed to update application status", err, "userID", userID, "status", status)
	}

	return application, nil
}

func (r *applicationRepository) GetWizardState(ctx context.Context, userID string) (*WizardState, error) {
	log := r.log.Function("GetWizardState")

	var state WizardState
	if err := r.getDB(ctx).First(&state, "user_id = ?", userID).Error; err != nil {
		return nil, log.Err("failed to get wizard state", err, "userID", userID)
	}

	return &state, nil
}

func (r *applicationRepository) SaveWizardState(ctx context.Context, state *WizardState) error {
	log := r.log.Function("SaveWizardState")

	if err := r.getDB(ctx).Save(state).Error; err != nil {
		return log.Err("failed to save wizard state", err, "userID", state.UserID)
	}

	return nil
}
