package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StorageSetting defines the record-count ceiling for a single role. At most
// one active setting exists per role; the unique index on the role column
// backs the conditional upsert that maintains that invariant.
//
// swagger:model
type StorageSetting struct {
	// The storage setting identifier
	//
	// readOnly: true
	ID *string `gorm:"type:uuid;primaryKey" json:"id,omitempty"`

	// The role the setting applies to
	//
	// required: true
	Role Role `gorm:"type:text;not null;uniqueIndex" json:"role"`

	// The maximum number of records the role may store
	//
	// required: true
	TotalRecordLimit int64 `gorm:"not null" json:"total_record_limit"`

	// A brief description of the setting
	//
	// required: true
	Description string `gorm:"type:text;not null" json:"description"`

	// Whether the setting is currently authoritative for the role
	IsActive bool `gorm:"not null;default:true" json:"is_active"`

	// The identifier of the user who last changed the setting
	UpdatedByID *string `gorm:"type:text" json:"-"`

	// The user who last changed the setting
	UpdatedBy *User `json:"updated_by,omitempty"`

	// The date and time the setting was last modified
	LastModifiedAt *time.Time `gorm:"autoUpdateTime" json:"last_modified_at,omitempty"`
}

// TableName specifies the table name to use in the database.
func (s *StorageSetting) TableName() string {
	return "storage_settings"
}

// BeforeCreate assigns the record identifier.
func (s *StorageSetting) BeforeCreate(tx *gorm.DB) error {
	if s.ID == nil {
		id := uuid.NewString()
		s.ID = &id
	}
	return nil
}
