package controllers

import (
	"database/sql"
	"net/http"

	"github.com/batchrecords/rqs/internal/db"
	"github.com/batchrecords/rqs/internal/model"
	"github.com/batchrecords/rqs/logging"
	"github.com/labstack/echo/v4"
	"github.com/nats-io/nats.go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var log = logging.GetLogger().WithFields(logrus.Fields{"package": "controllers"})

// Server defines the REST and NATS API of the record quota service.
type Server struct {
	Router   *echo.Echo
	DB       *sql.DB
	GORMDB   *gorm.DB
	NATSConn *nats.EncodedConn
	Service  string
	Title    string
	Version  string
}

// ErrUserNotFound indicates that a username has no matching user record.
var ErrUserNotFound = errors.New("user not found")

var (
	errInvalidRowCount     = errors.New("the row count may not be negative")
	errInvalidUploadStatus = errors.New("invalid upload status")
)

// httpStatusCode maps a failure to the status code it should be reported
// with. Anything unrecognized is treated as a storage fault.
func httpStatusCode(err error) int {
	switch {
	case errors.Is(err, model.ErrInvalidRole):
		return http.StatusBadRequest
	case errors.Is(err, db.ErrSettingNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrUserNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// failureResponse reports a failure to the caller. Storage faults are logged
// server-side and reported with a generic message so that no database detail
// leaks; caller-input and data-absence conditions are reported as-is and are
// not logged as errors.
func failureResponse(ctx echo.Context, log *logrus.Entry, err error) error {
	status := httpStatusCode(err)
	if status == http.StatusInternalServerError {
		log.Error(err)
		return model.Error(ctx, "unexpected storage failure", status)
	}
	log.Debug(err)
	return model.Error(ctx, err.Error(), status)
}
