package db

import (
	"context"

	"github.com/batchrecords/rqs/internal/model"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SaveUser inserts the user or refreshes the identity fields mirrored from
// the caller's token claims if a record with the same identifier exists.
func SaveUser(ctx context.Context, db *gorm.DB, user *model.User) error {
	wrapMsg := "unable to look up or add the user"

	err := db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"username",
				"email",
				"name",
				"role",
			}),
		}).
		Create(user).Error
	if err != nil {
		return errors.Wrap(err, wrapMsg)
	}

	return nil
}

// GetUserByUsername looks up the user with the given username. Returns nil
// without an error if the user doesn't exist.
func GetUserByUsername(ctx context.Context, db *gorm.DB, username string) (*model.User, error) {
	wrapMsg := "unable to look up the user"

	var user model.User
	err := db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	} else if err != nil {
		return nil, errors.Wrap(err, wrapMsg)
	}

	return &user, nil
}
