package models

const (
	DocumentPending   = "pending"
	DocumentSubmitted = "submitted"
	DocumentApproved  = "approved"
	DocumentMissing   = "missing"
)

// DocumentRecord is one uploaded (or reviewed) file for a catalog slot.
// DocumentType keys into the fixed catalog in internal/documents.
type DocumentRecord struct {
	BaseUUIDModel
	UserID       string `gorm:"type:varchar(64);not null;index:idx_documents_user_type,unique" json:"userId"`
	DocumentType string `gorm:"type:varchar(50);not null;index:idx_documents_user_type,unique" json:"documentType"`
	FileURL      string `gorm:"type:varchar(500);not null" json:"fileUrl"`
	FileName     string `gorm:"type:varchar(255);not null" json:"fileName"`
	Status       string `gorm:"type:varchar(20);not null;default:pending" json:"status"`
}

type Appointment struct {
	BaseUUIDModel
	UserID          string  `gorm:"type:varchar(64);not null;index" json:"userId"`
	AppointmentDate string  `gorm:"type:varchar(10);not null"       json:"appointmentDate"`
	DoctorName      string  `gorm:"type:varchar(200);not null"      json:"doctorName"`
	Notes           *string `gorm:"type:text"                       json:"notes,omitempty"`
	AudiogramURL    *string `gorm:"type:varchar(500)"               json:"audiogramUrl,omitempty"`
}

type Milestone struct {
	BaseUUIDModel
	UserID   string  `gorm:"type:varchar(64);not null;index" json:"userId"`
	Title    string  `gorm:"type:varchar(255);not null"      json:"title"`
	Date     string  `gorm:"type:varchar(10);not null"       json:"date"`
	Score    int     `gorm:"not null"                        json:"score"` // 1-10
	Notes    string  `gorm:"type:text"                       json:"notes"`
	MediaURL *string `gorm:"type:varchar(500)"               json:"mediaUrl,omitempty"`
}
