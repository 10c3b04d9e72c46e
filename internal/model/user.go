package model

// User is a local mirror of an administrator identity. The identity provider
// owns these records; they're upserted here so that audit references on
// storage settings can be resolved to a name and email address.
//
// swagger:model
type User struct {
	// The user identifier assigned by the identity provider
	//
	// readOnly: true
	ID *string `gorm:"type:text;primaryKey" json:"id,omitempty"`

	// The username
	//
	// required: true
	Username string `gorm:"type:text;not null;unique" json:"username"`

	// The user's email address
	Email string `gorm:"type:text;not null" json:"email"`

	// The user's display name
	Name string `gorm:"type:text" json:"name"`

	// The user's administrative role
	Role Role `gorm:"type:text;not null" json:"role"`
}
