package repositories

import (
	"context"
	"server/internal/database"
	"server/internal/logger"
	. "server/internal/models"
	"server/internal/services"

	"gorm.io/gorm"
)

// JournalRepository covers the append-only journal collections. There is no
// update or delete: appointments and milestones are immutable once created.
type JournalRepository interface {
	ListAppointments(ctx context.Context, userID string) ([]*Appointment, error)
	CreateAppointment(ctx context.Context, appointment *Appointment) error

	ListMilestones(ctx context.Context, userID string) ([]*Milestone, error)
	CreateMilestone(ctx context.Context, milestone *Milestone) error
}

type journalRepository struct {
	db  database.DB
	log logger.Logger
}

func NewJournal(db database.DB) JournalRepository {
	return &journalRepository{
		db:  db,
		log: logger.New("journalRepository"),
	}
}

func (r *journalRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := services.GetTransaction(ctx); ok {
		return tx
	}
	return r.db.SQLWithContext(ctx)
}

func (r *journalRepository) ListAppointments(ctx context.Context, userID string) ([]*Appointment, error) {
	log := r.log.Function("ListAppointments")

	var appointments []*Appointment
	if err := r.getDB(ctx).
		Where("user_id = ?", userID).
		Order("appointment_date ASC").
		Find(&appointments).Error; err != nil {
		return nil, log.Err("failed to list appointments", err, "userID", userID)
	}

	return appointments, nil
}

func (r *journalRepository) CreateAppointment(ctx context.Context, appointment *Appointment) error {
	log := r.log.Function("CreateAppointment")

	if err := r.getDB(ctx).Create(appointment).Error; err != nil {
		return log.Err("failed to create appointment", err, "userID", appointment.UserID)
	}

	return nil
}

func (r *journalRepository) ListMilestones(ctx context.Context, userID string) ([]*Milestone, error) {
	log := r.log.Function("ListMilestones")

	var milestones []*Milestone
	if err := r.getDB(ctx).
		Where("user_id = ?", userID).
		Order("date ASC").
		Find(&milestones).Error; err != nil {
		return nil, log.Err("failed to list milestones", err, "userID", userID)
	}

	return milestones, nil
}

func (r *journalRepository) CreateMilestone(ctx context.Context, milestone *Milestone) error {
	log := r.log.Function("CreateMilestone")

	if err := r.getDB(ctx).Create(milestone).Error; err != nil {
		return log.Err("failed to create milestone", err, "userID", milestone.UserID)
	}

	return nil
}
