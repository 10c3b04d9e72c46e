package db

import (
	"fmt"
	"testing"

	"github.com/batchrecords/rqs/internal/model"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory database for a single test.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	gormdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = gormdb.AutoMigrate(&model.User{}, &model.StorageSetting{}, &model.FileUpload{})
	require.NoError(t, err)

	return gormdb
}

// addTestUser inserts a user to attribute settings and uploads to.
func addTestUser(t *testing.T, gormdb *gorm.DB, id, username string, role model.Role) *model.User {
	t.Helper()

	user := model.User{
		ID:       &id,
		Username: username,
		Email:    username + "@example.org",
		Name:     username,
		Role:     role,
	}
	require.NoError(t, gormdb.Create(&user).Error)
	return &user
}

// addTestUpload inserts an upload record with the given row count and status.
func addTestUpload(t *testing.T, gormdb *gorm.DB, user *model.User, totalRows int64, status string) {
	t.Helper()

	upload := model.FileUpload{
		FileName:     "records.csv",
		UploadedByID: user.ID,
		TotalRows:    totalRows,
		Status:       status,
	}
	require.NoError(t, gormdb.Create(&upload).Error)
}
