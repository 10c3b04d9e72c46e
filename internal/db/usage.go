package db

import (
	"context"

	"github.com/batchrecords/rqs/internal/model"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// UserRecordUsage sums the row counts of a user's uploads that count toward
// the quota. Uploads that failed or are still being processed contribute
// nothing. A user with no matching uploads has a usage of zero; absence of
// usage is not an error. The sum is computed fresh on every call because the
// underlying upload records can change between requests.
func UserRecordUsage(ctx context.Context, db *gorm.DB, userID string) (int64, error) {
	wrapMsg := "unable to compute the record usage"

	var total int64
	err := db.WithContext(ctx).
		Model(&model.FileUpload{}).
		Select("COALESCE(SUM(total_rows), 0)").
		Where("uploaded_by_id = ?", userID).
		Where("status IN ?", model.CountedUploadStatuses()).
		Scan(&total).Error
	if err != nil {
		return 0, errors.Wrap(err, wrapMsg)
	}

	return total, nil
}

// RecordFileUpload appends a single upload record on behalf of the ingestion
// pipeline.
func RecordFileUpload(ctx context.Context, db *gorm.DB, upload *model.FileUpload) error {
	wrapMsg := "unable to record the file upload"

	err := db.WithContext(ctx).Create(upload).Error
	if err != nil {
		return errors.Wrap(err, wrapMsg)
	}

	return nil
}
