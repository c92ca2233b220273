package applicationController

import (
	"context"
	"testing"

	"server/config"
	"server/internal/database"
	"server/internal/events"
	. "server/internal/models"
	"server/internal/repositories"
	"server/internal/status"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestController(t *testing.T) (*ApplicationController, *events.EventBus, repositories.ApplicationRepository) {
	t.Helper()

	gormDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, gormDB.AutoMigrate(&Application{}, &WizardState{}))

	db := database.DB{SQL: gormDB}
	repo := repositories.NewApplication(db)
	bus := events.New(nil, config.Config{})

	return New(repo, bus), bus, repo
}

func TestStatus_NotSubmitted(t *testing.T) {
	controller, _, _ := newTestController(t)

	_, err := controller.Status(context.Background(), "user-1")
	assert.ErrorIs(t, err, ErrNotSubmitted)
}

func TestStatus_ReturnsView(t *testing.T) {
	controller, _, repo := newTestController(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &Application{UserID: "user-1", Status: StatusReview}))

	response, err := controller.Status(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, StatusReview, response.Application.Status)
	assert.Equal(t, "Under Review", response.View.Title)
	assert.Equal(t, 2, response.View.Step)
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	controller, _, _ := newTestController(t)

	_, err := controller.UpdateStatus(context.Background(), "user-1", "escalated")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateStatus_MissingApplication(t *testing.T) {
	controller, _, _ := newTestController(t)

	_, err := controller.UpdateStatus(context.Background(), "user-1", StatusApproved)
	assert.ErrorIs(t, err, ErrNotSubmitted)
}

func TestUpdateStatus_PersistsAndPublishes(t *testing.T) {
	controller, bus, repo := newTestController(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &Application{UserID: "user-1", Status: StatusPending}))

	received := make(chan events.Event, 1)
	bus.Subscribe(events.StatusChannel, func(event events.Event) {
		received <- event
	})

	application, err := controller.UpdateStatus(ctx, "user-1", StatusApproved)
	require.NoError(t, err)
	assert.Equal(t, StatusApproved, application.Status)

	// With no cache client the bus dispatches inline.
	event := <-received
	assert.Equal(t, "status_change", event.Type)
	assert.Equal(t, "user-1", event.UserID)
	assert.Equal(t, StatusApproved, event.Data["status"])

	stored, err := repo.GetByUserID(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, StatusApproved, stored.Status)

	view := status.ViewFor(stored.Status)
	assert.True(t, view.CanContinueOnboarding)
}
