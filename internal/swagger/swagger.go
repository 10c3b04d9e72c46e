// Package api RQS
//
// Documentation of the RQS Api
//
//	Schemes: http
//	BasePath: /
//	Version: V1
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//
// swagger:meta
package swagger

import (
	"github.com/batchrecords/rqs/internal/controllers"
	"github.com/batchrecords/rqs/internal/model"
)

// Note: the comments in this package don't conform to the convention of including the name of the entity that the
// comment describes. The reason for this is because the comments appear as-is in the API documentation. Confusing
// documentation is produced when the structure names appear in the API documentation.

// Error
//
// Having the same object definition for multiple HTTP response status codes seems to confuse ReDoc, so we're using
// aliases as a workaround.
//
// swagger:response errorResponse
type ErrorResponse struct {

	// in: body
	Body model.ErrorResponse
}

// Bad Request
//
// swagger:response badRequestResponse
type BadRequestResponse struct {
	ErrorResponse
}

// Unauthorized
//
// swagger:response unauthorizedResponse
type UnauthorizedResponse struct {
	ErrorResponse
}

// Forbidden
//
// swagger:response forbiddenResponse
type ForbiddenResponse struct {
	ErrorResponse
}

// Not Found
//
// swagger:response notFoundResponse
type NotFoundResponse struct {
	ErrorResponse
}

// Internal Server Error
//
// swagger:response internalServerErrorResponse
type InternalServerErrorResponse struct {
	ErrorResponse
}

// Service Information
//
// swagger:response serviceInfo
type ServiceInfoResponse struct {

	// in: body
	Body controllers.ServiceInfo
}

// Storage Setting Listing
//
// swagger:response storageSettingListing
type StorageSettingListing struct {

	// in: body
	Body struct {
		model.SuccessResponse

		// The storage settings
		Result []model.StorageSetting `json:"result"`
	}
}

// Storage Setting Details
//
// swagger:response storageSettingDetails
type StorageSettingDetails struct {

	// in: body
	Body struct {
		model.SuccessResponse

		// The storage setting
		Result model.StorageSetting `json:"result"`
	}
}

// Usage Snapshot Details
//
// swagger:response usageSnapshotDetails
type UsageSnapshotDetails struct {

	// in: body
	Body struct {
		model.SuccessResponse

		// The usage snapshot
		Result model.UsageSnapshot `json:"result"`
	}
}

// swagger:parameters getStorageSetting updateStorageSetting
type RolePathParameter struct {

	// The role the storage setting applies to
	//
	// in: path
	// required: true
	// enum: admin,superAdmin,superSuperAdmin
	Role string `json:"role"`
}

// swagger:parameters getUserUsage
type UsernamePathParameter struct {

	// The username to compute the usage snapshot for
	//
	// in: path
	// required: true
	Username string `json:"username"`
}

// swagger:parameters listStorageSettings
type IncludeInactiveParameter struct {

	// True if inactive storage settings should be included in the listing
	//
	// in: query
	// required: false
	IncludeInactive bool `json:"include-inactive"`
}
