package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/batchrecords/rqs/internal/auth"
	"github.com/batchrecords/rqs/internal/model"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestServer builds a server backed by a fresh in-memory database.
func newTestServer(t *testing.T) Server {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	gormdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = gormdb.AutoMigrate(&model.User{}, &model.StorageSetting{}, &model.FileUpload{})
	require.NoError(t, err)

	return Server{
		Router:  echo.New(),
		GORMDB:  gormdb,
		Service: "rqs",
		Title:   "RQS Record Quota Service",
		Version: "1.0.0",
	}
}

func testPrincipal(id, username string, role model.Role) *auth.Principal {
	return &auth.Principal{
		ID:       id,
		Username: username,
		Email:    username + "@example.org",
		Name:     username,
		Role:     role,
	}
}

func addTestUser(t *testing.T, gormdb *gorm.DB, principal *auth.Principal) *model.User {
	t.Helper()

	user := model.User{
		ID:       &principal.ID,
		Username: principal.Username,
		Email:    principal.Email,
		Name:     principal.Name,
		Role:     principal.Role,
	}
	require.NoError(t, gormdb.Create(&user).Error)
	return &user
}

func addTestUpload(t *testing.T, gormdb *gorm.DB, userID string, totalRows int64, status string) {
	t.Helper()

	upload := model.FileUpload{
		FileName:     "records.csv",
		UploadedByID: &userID,
		TotalRows:    totalRows,
		Status:       status,
	}
	require.NoError(t, gormdb.Create(&upload).Error)
}

// newRequestContext builds an echo context for a handler invocation. The body
// is sent as JSON when present; the principal is stored the same way the auth
// middleware would store it.
func newRequestContext(
	s Server, method, target, body string, principal *auth.Principal,
) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	ctx := s.Router.NewContext(req, rec)
	if principal != nil {
		auth.SetPrincipal(ctx, principal)
	}
	return ctx, rec
}

// settingEnvelope is the decoded response envelope for setting endpoints.
type settingEnvelope struct {
	Success bool                  `json:"success"`
	Message string                `json:"message"`
	Errors  []model.FieldError    `json:"errors"`
	Result  *model.StorageSetting `json:"result"`
}

// snapshotEnvelope is the decoded response envelope for usage endpoints.
type snapshotEnvelope struct {
	Success bool                 `json:"success"`
	Message string               `json:"message"`
	Result  *model.UsageSnapshot `json:"result"`
}

func decodeSetting(t *testing.T, rec *httptest.ResponseRecorder) settingEnvelope {
	t.Helper()

	var envelope settingEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return envelope
}

func decodeSnapshot(t *testing.T, rec *httptest.ResponseRecorder) snapshotEnvelope {
	t.Helper()

	var envelope snapshotEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return envelope
}

func settingCount(t *testing.T, gormdb *gorm.DB) int64 {
	t.Helper()

	var count int64
	require.NoError(t, gormdb.Model(&model.StorageSetting{}).Count(&count).Error)
	return count
}

// upsertSetting drives the update handler for a role.
func upsertSetting(
	t *testing.T, s Server, principal *auth.Principal, role, body string,
) (*httptest.ResponseRecorder, error) {
	t.Helper()

	ctx, rec := newRequestContext(s, http.MethodPut, "/v1/settings/"+role, body, principal)
	ctx.SetPath("/v1/settings/:role")
	ctx.SetParamNames("role")
	ctx.SetParamValues(role)
	return rec, s.UpdateStorageSetting(ctx)
}
