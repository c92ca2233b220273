package documents

import (
	"errors"
	"path/filepath"
	"strings"

	. "server/internal/models"
)

var allowedExtensions = map[string]bool{
	".pdf":  true,
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

// ValidateUploadFilename enforces the intake file-type allow-list.
func ValidateUploadFilename(fileName string) error {
	ext := strings.ToLower(filepath.Ext(fileName))
	if !allowedExtensions[ext] {
		return errors.New("only .pdf, .jpg, .jpeg and .png files are allowed")
	}
	return nil
}

// ChecklistItem is a catalog slot joined with the user's upload state.
type ChecklistItem struct {
	CatalogItem
	Status   string `json:"status"`
	FileName string `json:"fileName,omitempty"`
}

// Checklist is the per-user view over the full catalog, in catalog order.
type Checklist struct {
	Items []ChecklistItem `json:"items"`
}

// BuildChecklist merges uploaded records onto the catalog. Slots with no
// record stay pending.
func BuildChecklist(records []*DocumentRecord) Checklist {
	byType := make(map[string]*DocumentRecord, len(records))
	for _, rec := range records {
		byType[rec.DocumentType] = rec
	}

	items := make([]ChecklistItem, 0, len(Catalog))
	for _, slot := range Catalog {
		item := ChecklistItem{CatalogItem: slot, Status: DocumentPending}
		if rec, ok := byType[slot.ID]; ok {
			item.Status = rec.Status
			item.FileName = rec.FileName
		}
		items = append(items, item)
	}

	return Checklist{Items: items}
}

func (c Checklist) isComplete(status string) bool {
	return status == DocumentSubmitted || status == DocumentApproved
}

// CompletionRatio is (submitted+approved)/total. It can only grow within a
// session since there is no un-upload operation.
func (c Checklist) CompletionRatio() float64 {
	if len(c.Items) == 0 {
		return 0
	}
	complete := 0
	for _, item := range c.Items {
		if c.isComplete(item.Status) {
			complete++
		}
	}
	return float64(complete) / float64(len(c.Items))
}

// CanAdvancePast reports whether the single-document flow may move past the
// given slot: required slots need an upload, optional slots never block.
func (c Checklist) CanAdvancePast(documentID string) bool {
	for _, item := range c.Items {
		if item.ID == documentID {
			return !item.Required || c.isComplete(item.Status)
		}
	}
	return false
}

// ReadyForSubmission requires every required slot to be submitted or
// approved. Optional slots do not gate submission.
func (c Checklist) ReadyForSubmission() bool {
	for _, item := range c.Items {
		if item.Required && !c.isComplete(item.Status) {
			return false
		}
	}
	return true
}

// MissingRequired lists the required slot ids still blocking submission.
func (c Checklist) MissingRequired() []string {
	var missing []string
	for _, item := range c.Items {
		if item.Required && !c.isComplete(item.Status) {
			missing = append(missing, item.ID)
		}
	}
	return missing
}
