package model

// UsageSnapshot combines a role's record ceiling with a user's current usage.
// Snapshots are computed per request and never stored, since the underlying
// upload records can change between requests.
//
// swagger:model
type UsageSnapshot struct {
	// The role whose setting was applied
	Role Role `json:"role"`

	// The maximum number of records the role may store
	TotalRecordLimit int64 `json:"total_record_limit"`

	// The number of records the user has stored
	UsedRecords int64 `json:"used_records"`

	// The number of records the user may still store
	RemainingRecords int64 `json:"remaining_records"`

	// A brief description of the setting
	Description string `json:"description"`
}

// NewUsageSnapshot builds the snapshot for a setting and a usage total. The
// remaining record count clamps at zero when a user is over quota.
func NewUsageSnapshot(setting *StorageSetting, usedRecords int64) *UsageSnapshot {
	remaining := setting.TotalRecordLimit - usedRecords
	if remaining < 0 {
		remaining = 0
	}
	return &UsageSnapshot{
		Role:             setting.Role,
		TotalRecordLimit: setting.TotalRecordLimit,
		UsedRecords:      usedRecords,
		RemainingRecords: remaining,
		Description:      setting.Description,
	}
}
