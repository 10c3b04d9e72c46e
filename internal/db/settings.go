package db

import (
	"context"
	"fmt"

	"github.com/batchrecords/rqs/internal/model"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrSettingNotFound indicates that no active storage setting exists for a
// role. This is a data-absence condition, distinct from an invalid role.
var ErrSettingNotFound = errors.New("no active storage setting exists for the role")

// ListStorageSettings lists storage settings in ascending role order, each
// enriched with the identity of the user who last changed it. Inactive
// settings are omitted unless includeInactive is set. The role set is small
// and fixed, so the result is not paginated.
func ListStorageSettings(ctx context.Context, db *gorm.DB, includeInactive bool) ([]model.StorageSetting, error) {
	wrapMsg := "unable to list the storage settings"

	settings := make([]model.StorageSetting, 0)
	query := db.WithContext(ctx).
		Preload("UpdatedBy").
		Order("role ASC")
	if !includeInactive {
		query = query.Where("is_active = ?", true)
	}
	err := query.Find(&settings).Error
	if err != nil {
		return nil, errors.Wrap(err, wrapMsg)
	}

	return settings, nil
}

// GetActiveStorageSetting looks up the single active storage setting for a
// role, enriched with the identity of the user who last changed it. Fails
// with ErrSettingNotFound if the role has no active setting.
func GetActiveStorageSetting(ctx context.Context, db *gorm.DB, role model.Role) (*model.StorageSetting, error) {
	wrapMsg := fmt.Sprintf("unable to look up the storage setting for role '%s'", role)

	var setting model.StorageSetting
	err := db.WithContext(ctx).
		Preload("UpdatedBy").
		Where("role = ?", role).
		Where("is_active = ?", true).
		First(&setting).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSettingNotFound
	} else if err != nil {
		return nil, errors.Wrap(err, wrapMsg)
	}

	return &setting, nil
}

// UpsertStorageSetting either inserts a new storage setting or updates the
// existing row for the same role in place, refreshing the limit, description,
// active flag, and change attribution. The write is a single conditional
// insert against the unique role index, so concurrent upserts for the same
// role cannot lose an update.
func UpsertStorageSetting(ctx context.Context, db *gorm.DB, setting *model.StorageSetting) error {
	wrapMsg := "unable to save the storage setting"

	err := db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{
				Name: "role",
			},
		},
		DoUpdates: clause.AssignmentColumns([]string{
			"total_record_limit",
			"description",
			"is_active",
			"updated_by_id",
			"last_modified_at",
		}),
	}).Create(setting).Error
	if err != nil {
		return errors.Wrap(err, wrapMsg)
	}

	return nil
}
