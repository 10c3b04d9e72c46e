package controllers

import (
	"net/http"

	"github.com/batchrecords/rqs/internal/model"
	"github.com/labstack/echo/v4"
)

// ServiceInfo describes the service and API version.
//
// swagger:model
type ServiceInfo struct {
	// The service name
	Service string `json:"service"`

	// The service title
	Title string `json:"title"`

	// The service version
	Version string `json:"version"`

	// The API version
	APIVersion string `json:"api_version,omitempty"`
}

// swagger:route GET / misc getRoot
//
// Service Information
//
// Returns information about the service. The base URL doubles as a health
// check endpoint.
//
// responses:
//   200: serviceInfo

// RootHandler is the handler for the GET / endpoint.
func (s Server) RootHandler(ctx echo.Context) error {
	resp := ServiceInfo{
		Service: s.Service,
		Title:   s.Title,
		Version: s.Version,
	}
	return model.Success(ctx, resp, http.StatusOK)
}

// swagger:route GET /v1 misc getV1Root
//
// API Version Information
//
// Returns information about version 1 of the API.
//
// responses:
//   200: serviceInfo

// V1RootHandler is the handler for the GET /v1 endpoint.
func (s Server) V1RootHandler(ctx echo.Context) error {
	resp := ServiceInfo{
		Service:    s.Service,
		Title:      s.Title,
		Version:    s.Version,
		APIVersion: "v1",
	}
	return model.Success(ctx, resp, http.StatusOK)
}
