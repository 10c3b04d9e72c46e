package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Upload status constants. The ingestion pipeline owns the status lifecycle;
// only completed and partial uploads contribute rows toward a user's usage.
const (
	UploadStatusPending    = "pending"
	UploadStatusProcessing = "processing"
	UploadStatusCompleted  = "completed"
	UploadStatusPartial    = "partial"
	UploadStatusFailed     = "failed"
)

// UploadStatuses lists every status the ingestion pipeline can record.
func UploadStatuses() []string {
	return []string{
		UploadStatusPending,
		UploadStatusProcessing,
		UploadStatusCompleted,
		UploadStatusPartial,
		UploadStatusFailed,
	}
}

// CountedUploadStatuses lists the statuses whose row counts count toward a
// user's record usage.
func CountedUploadStatuses() []string {
	return []string{UploadStatusCompleted, UploadStatusPartial}
}

// FileUpload records a single bulk-record file upload and the number of rows
// it contributed. These records are written by the ingestion pipeline and are
// read-only from the quota service's perspective.
//
// swagger:model
type FileUpload struct {
	// The upload record identifier
	//
	// readOnly: true
	ID *string `gorm:"type:uuid;primaryKey" json:"id,omitempty"`

	// The name of the uploaded file
	FileName string `gorm:"type:text" json:"file_name"`

	// The identifier of the user who uploaded the file
	UploadedByID *string `gorm:"type:text;not null;index" json:"-"`

	// The user who uploaded the file
	UploadedBy *User `json:"uploaded_by,omitempty"`

	// The number of rows the file contributed
	TotalRows int64 `gorm:"not null" json:"total_rows"`

	// The processing status of the upload
	Status string `gorm:"type:text;not null" json:"status"`

	// The date and time the upload was recorded
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name to use in the database.
func (u *FileUpload) TableName() string {
	return "file_uploads"
}

// BeforeCreate assigns the record identifier.
func (u *FileUpload) BeforeCreate(tx *gorm.DB) error {
	if u.ID == nil {
		id := uuid.NewString()
		u.ID = &id
	}
	return nil
}
