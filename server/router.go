package server

import (
	"github.com/batchrecords/rqs/internal/auth"
	"github.com/batchrecords/rqs/internal/controllers"
	"github.com/batchrecords/rqs/internal/model"
	"github.com/cyverse-de/echo-middleware/v2/redoc"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
	echolog "github.com/spirosoik/echo-logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
)

func InitRouter() *echo.Echo {
	log := log.WithFields(logrus.Fields{"context": "router"})

	// Create the web server.
	e := echo.New()

	// Set a custom logger.
	echoLogger := echolog.NewLoggerMiddleware(log)
	e.Logger = echoLogger

	// Add middleware.
	e.Use(otelecho.Middleware("RQS"))
	e.Use(echoLogger.Hook())
	e.Use(middleware.Recover())
	e.Use(redoc.Serve(redoc.Opts{Title: "RQS Record Quota Service"}))

	return e
}

func registerSettingsEndpoints(settings *echo.Group, s *controllers.Server) {
	// Lists the per-role storage settings.
	settings.GET("", s.ListStorageSettings, auth.RequireRoles(model.RoleSuperSuperAdmin))

	// Gets the active storage setting for a role.
	settings.GET("/:role", s.GetStorageSetting, auth.RequireRoles(model.Roles()...))

	// Updates or creates the storage setting for a role.
	settings.PUT("/:role", s.UpdateStorageSetting, auth.RequireRoles(model.RoleSuperSuperAdmin))
}

func registerUsageEndpoints(usage *echo.Group, s *controllers.Server) {
	// Gets the caller's own usage snapshot.
	usage.GET("", s.GetUsageSnapshot, auth.RequireRoles(model.Roles()...))

	// Gets the usage snapshot for another user.
	usage.GET("/:username", s.GetUserUsageSnapshot, auth.RequireRoles(model.RoleSuperSuperAdmin))
}

func RegisterHandlers(s controllers.Server, jwtSecret []byte) {

	// The base URL acts as a health check endpoint.
	s.Router.GET("/", s.RootHandler)

	// API version 1 endpoints. Everything below /v1 except the version info
	// endpoint requires an authenticated caller.
	v1 := s.Router.Group("/v1")
	v1.GET("", s.V1RootHandler)

	authenticate := auth.Middleware(jwtSecret)

	settings := v1.Group("/settings", authenticate)
	registerSettingsEndpoints(settings, &s)

	usage := v1.Group("/usage", authenticate)
	registerUsageEndpoints(usage, &s)
}
