package repositories

import (
	"context"
	"server/internal/database"
	"server/internal/logger"
	. "server/internal/models"
	"server/internal/services"

	"gorm.io/gorm"
)

type DocumentRepository interface {
	ListByUser(ctx context.Context, userID string) ([]*DocumentRecord, error)
	// Save upserts on (user, documentType) so re-uploading replaces the
	// previous file reference.
	Save(ctx context.Context, record *DocumentRecord) error
	UpdateStatus(ctx context.Context, userID, documentType, status string) error
}

type documentRepository struct {
	db  database.DB
	log logger.Logger
}

func NewDocument(db database.DB) DocumentRepository {
	return &documentRepository{
		db:  db,
		log: logger.New("documentRepository"),
	}
}

func (r *documentRepository) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := services.GetTransaction(ctx); ok {
		return tx
	}
	return r.db.SQLWithContext(ctx)
}

func (r *documentRepository) ListByUser(ctx context.Context, userID string) ([]*DocumentRecord, error) {
	log := r.log.Function("ListByUser")

	var records []*DocumentRecord
	if err := r.getDB(ctx).Where("user_id = ?", userID).Find(&records).Error; err != nil {
		return nil, log.Err("failed to list documents", err, "userID", userID)
	}

	return records, nil
}

func (r *documentRepository) Save(ctx context.Context, record *DocumentRecord) error {
	log := r.log.Function("Save")

	var existing DocumentRecord
	err := r.getDB(ctx).
		First(&existing, "user_id = ? AND document_type = ?", record.UserID, record.DocumentType).Error
	switch {
	case err == nil:
		record.BaseUUIDModel = existing.BaseUUIDModel
		if saveErr := r.getDB(ctx).Save(record).Error; saveErr != nil {
			return log.Err("failed to update document", saveErr,
				"userID", record.UserID, "documentType", record.DocumentType)
		}
	case err == gorm.ErrRecordNotFound:
		if createErr := r.getDB(ctx).Create(record).Error; createErr != nil {
			return log.Err("failed to create document", createErr,
				"userID", record.UserID, "documentType", record.DocumentType)
		}
	default:
		return log.Err("failed to look up document", err,
			"userID", record.UserID, "documentType", record.DocumentType)
	}

	return nil
}

func (r *documentRepository) UpdateStatus(ctx context.Context, userID, documentType, status string) error {
	log := r.log.Function("UpdateStatus")

	var record DocumentRecord
	if err := r.getDB(ctx).
		First(&record, "user_id = ? AND document_type = ?", userID, documentType).Error; err != nil {
		return log.Err("document not found", err, "userID", userID, "documentType", documentType)
	}

	record.Status = status
	if err := r.getDB(ctx).Save(&record).Error; err != nil {
		return log.Err("failed to update document status", err,
			"userID", userID, "documentType", documentType)
	}

	return nil
}
