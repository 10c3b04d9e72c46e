package controllers

import (
	"context"
	"net/http"

	"github.com/batchrecords/rqs/internal/auth"
	"github.com/batchrecords/rqs/internal/db"
	"github.com/batchrecords/rqs/internal/model"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

// usageSnapshot computes the usage snapshot for a role and user. The setting
// lookup and the usage sum are independent sequential reads over disjoint
// tables; a record limit changing between the two reads is tolerated. Either
// both reads succeed or the whole computation fails.
func (s Server) usageSnapshot(ctx context.Context, role model.Role, userID string) (*model.UsageSnapshot, error) {
	setting, err := db.GetActiveStorageSetting(ctx, s.GORMDB, role)
	if err != nil {
		return nil, err
	}

	usedRecords, err := db.UserRecordUsage(ctx, s.GORMDB, userID)
	if err != nil {
		return nil, err
	}

	return model.NewUsageSnapshot(setting, usedRecords), nil
}

// swagger:route GET /v1/usage usage getOwnUsage
//
// Get Own Usage
//
// Returns the caller's usage snapshot: the record limit for the caller's
// role, the number of records the caller has stored, and the remaining
// capacity.
//
// responses:
//   200: usageSnapshotDetails
//   404: notFoundResponse
//   500: internalServerErrorResponse

// GetUsageSnapshot is the handler for the GET /v1/usage endpoint.
func (s Server) GetUsageSnapshot(ctx echo.Context) error {
	log := log.WithFields(logrus.Fields{"context": "getting own usage"})

	context := ctx.Request().Context()

	principal, err := auth.GetPrincipal(ctx)
	if err != nil {
		return model.Error(ctx, err.Error(), http.StatusUnauthorized)
	}

	log = log.WithFields(logrus.Fields{"user": principal.Username, "role": principal.Role})

	snapshot, err := s.usageSnapshot(context, principal.Role, principal.ID)
	if err != nil {
		return failureResponse(ctx, log, err)
	}

	log.Debugf("user has %d of %d records used", snapshot.UsedRecords, snapshot.TotalRecordLimit)

	return model.Success(ctx, snapshot, http.StatusOK)
}

// swagger:route GET /v1/usage/{username} usage getUserUsage
//
// Get a User's Usage
//
// Returns the usage snapshot for the given user, computed against the record
// limit for that user's role.
//
// responses:
//   200: usageSnapshotDetails
//   400: badRequestResponse
//   404: notFoundResponse
//   500: internalServerErrorResponse

// GetUserUsageSnapshot is the handler for the GET /v1/usage/{username}
// endpoint.
func (s Server) GetUserUsageSnapshot(ctx echo.Context) error {
	log := log.WithFields(logrus.Fields{"context": "getting user usage"})

	context := ctx.Request().Context()

	username := ctx.Param("username")
	if username == "" {
		return model.Error(ctx, "invalid username", http.StatusBadRequest)
	}

	log = log.WithFields(logrus.Fields{"user": username})

	user, err := db.GetUserByUsername(context, s.GORMDB, username)
	if err != nil {
		return failureResponse(ctx, log, err)
	}
	if user == nil {
		return failureResponse(ctx, log, ErrUserNotFound)
	}

	snapshot, err := s.usageSnapshot(context, user.Role, *user.ID)
	if err != nil {
		return failureResponse(ctx, log, err)
	}

	log.Debugf("user has %d of %d records used", snapshot.UsedRecords, snapshot.TotalRecordLimit)

	return model.Success(ctx, snapshot, http.StatusOK)
}
