package documentController

import (
	"context"
	"errors"
	"io"

	"server/internal/documents"
	"server/internal/logger"
	. "server/internal/models"
	"server/internal/repositories"
	"server/internal/storage"
)

var ErrUnknownDocument = errors.New("unknown document type")

type DocumentController struct {
	documentRepo repositories.DocumentRepository
	store        storage.Store
	log          logger.Logger
}

func New(documentRepo repositories.DocumentRepository, store storage.Store) *DocumentController {
	return &DocumentController{
		documentRepo: documentRepo,
		store:        store,
		log:          logger.New("DocumentController"),
	}
}

// Checklist returns the full catalog joined with the user's uploads.
func (dc *DocumentController) Checklist(ctx context.Context, userID string) (documents.Checklist, error) {
	records, err := dc.documentRepo.ListByUser(ctx, userID)
	if err != nil {
		return documents.Checklist{}, err
	}
	return documents.BuildChecklist(records), nil
}

// Upload stores the file and marks the catalog slot submitted. Re-uploading
// a slot replaces the previous file reference.
func (dc *DocumentController) Upload(
	ctx context.Context,
	userID string,
	documentID string,
	fileName string,
	content io.Reader,
) (*DocumentRecord, error) {
	log := dc.log.Function("Upload")

	if _, ok := documents.CatalogItemByID(documentID); !ok {
		return nil, ErrUnknownDocument
	}
	if err := documents.ValidateUploadFilename(fileName); err != nil {
		return nil, err
	}

	fileURL, err := dc.store.Save(userID, fileName, content)
	if err != nil {
		return nil, log.Err("failed to store upload", err, "userID", userID, "documentID", documentID)
	}

	record := &DocumentRecord{
		UserID:       userID,
		DocumentType: documentID,
		FileURL:      fileURL,
		FileName:     fileName,
		Status:       DocumentSubmitted,
	}
	if err := dc.documentRepo.Save(ctx, record); err != nil {
		return nil, err
	}

	log.Info("document uploaded", "userID", userID, "documentID", documentID)
	return record, nil
}

// CanAdvancePast backs the single-document navigation: required slots need
// an upload before moving on, optional slots never block.
func (dc *DocumentController) CanAdvancePast(ctx context.Context, userID, documentID string) (bool, error) {
	checklist, err := dc.Checklist(ctx, userID)
	if err != nil {
		return false, err
	}
	return checklist.CanAdvancePast(documentID), nil
}

// Review updates a slot's status during application review.
func (dc *DocumentController) Review(ctx context.Context, userID, documentID, status string) error {
	if _, ok := documents.CatalogItemByID(documentID); !ok {
		return ErrUnknownDocument
	}
	switch status {
	case DocumentPending, DocumentSubmitted, DocumentApproved, DocumentMissing:
	default:
		return errors.New("invalid document status")
	}
	return dc.documentRepo.UpdateStatus(ctx, userID, documentID, status)
}
