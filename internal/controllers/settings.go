package controllers

import (
	"net/http"

	"github.com/batchrecords/rqs/internal/auth"
	"github.com/batchrecords/rqs/internal/db"
	"github.com/batchrecords/rqs/internal/httpmodel"
	"github.com/batchrecords/rqs/internal/model"
	"github.com/batchrecords/rqs/internal/query"
	"github.com/cyverse-de/echo-middleware/v2/params"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// extractRole extracts and validates the role path parameter. Validation
// failures never reach the database.
func extractRole(ctx echo.Context) (model.Role, error) {
	value, err := params.ValidatedPathParam(ctx, "role", "required")
	if err != nil {
		return "", model.ErrInvalidRole
	}
	return model.ParseRole(value)
}

// swagger:route GET /v1/settings settings listStorageSettings
//
// List Storage Settings
//
// Lists the per-role storage settings, ordered by role. Only active settings
// are returned unless the include-inactive query parameter is set.
//
// responses:
//   200: storageSettingListing
//   400: badRequestResponse
//   500: internalServerErrorResponse

// ListStorageSettings is the handler for the GET /v1/settings endpoint.
func (s Server) ListStorageSettings(ctx echo.Context) error {
	log := log.WithFields(logrus.Fields{"context": "listing storage settings"})

	context := ctx.Request().Context()

	// Extract and validate the optional inactive-settings toggle.
	defaultIncludeInactive := false
	includeInactive, err := query.ValidateBooleanQueryParam(ctx, "include-inactive", &defaultIncludeInactive)
	if err != nil {
		return model.Error(ctx, err.Error(), http.StatusBadRequest)
	}

	settings, err := db.ListStorageSettings(context, s.GORMDB, includeInactive)
	if err != nil {
		return failureResponse(ctx, log, err)
	}

	log.Debug("found storage settings to return")

	return model.Success(ctx, settings, http.StatusOK)
}

// swagger:route GET /v1/settings/{role} settings getStorageSetting
//
// Get Storage Setting
//
// Returns the active storage setting for the given role, including the
// identity of the user who last changed it.
//
// responses:
//   200: storageSettingDetails
//   400: badRequestResponse
//   404: notFoundResponse
//   500: internalServerErrorResponse

// GetStorageSetting is the handler for the GET /v1/settings/{role} endpoint.
func (s Server) GetStorageSetting(ctx echo.Context) error {
	log := log.WithFields(logrus.Fields{"context": "getting storage setting"})

	context := ctx.Request().Context()

	// Extract and validate the role.
	role, err := extractRole(ctx)
	if err != nil {
		return model.Error(ctx, err.Error(), http.StatusBadRequest)
	}

	log = log.WithFields(logrus.Fields{"role": role})

	// Look up the setting.
	setting, err := db.GetActiveStorageSetting(context, s.GORMDB, role)
	if err != nil {
		return failureResponse(ctx, log, err)
	}

	log.Debug("found storage setting to return")

	return model.Success(ctx, setting, http.StatusOK)
}

// swagger:route PUT /v1/settings/{role} settings updateStorageSetting
//
// Update Storage Setting
//
// Updates the storage setting for the given role, creating it if it doesn't
// exist yet. The saved setting is always marked active and records the
// caller as the updater.
//
// responses:
//   200: storageSettingDetails
//   400: badRequestResponse
//   500: internalServerErrorResponse

// UpdateStorageSetting is the handler for the PUT /v1/settings/{role}
// endpoint.
func (s Server) UpdateStorageSetting(ctx echo.Context) error {
	var err error

	log := log.WithFields(logrus.Fields{"context": "updating storage setting"})

	context := ctx.Request().Context()

	// The authenticated caller is recorded as the updater.
	principal, err := auth.GetPrincipal(ctx)
	if err != nil {
		return model.Error(ctx, err.Error(), http.StatusUnauthorized)
	}

	// Extract and validate the role.
	role, err := extractRole(ctx)
	if err != nil {
		return model.Error(ctx, err.Error(), http.StatusBadRequest)
	}

	log = log.WithFields(logrus.Fields{"role": role, "user": principal.Username})

	// Extract and validate the request body before touching the database.
	var body httpmodel.SettingUpdate
	if err = ctx.Bind(&body); err != nil {
		return model.Error(ctx, "invalid request body", http.StatusBadRequest)
	}
	if fields := body.Validate(); len(fields) != 0 {
		return model.ErrorFields(ctx, "invalid request body", fields, http.StatusBadRequest)
	}

	log.Debug("extracted and validated the request body")

	// Save the setting, making sure that the updater reference resolves.
	setting := body.ToDBModel(role, principal.ID)
	err = s.GORMDB.Transaction(func(tx *gorm.DB) error {
		user := model.User{
			ID:       &principal.ID,
			Username: principal.Username,
			Email:    principal.Email,
			Name:     principal.Name,
			Role:     principal.Role,
		}
		if err := db.SaveUser(context, tx, &user); err != nil {
			return err
		}
		return db.UpsertStorageSetting(context, tx, &setting)
	})
	if err != nil {
		return failureResponse(ctx, log, err)
	}

	log.Debugf("set the record limit for role %s to %d", role, setting.TotalRecordLimit)

	// Return the saved setting with the updater identity filled in.
	saved, err := db.GetActiveStorageSetting(context, s.GORMDB, role)
	if err != nil {
		return failureResponse(ctx, log, err)
	}

	return model.Success(ctx, saved, http.StatusOK)
}
