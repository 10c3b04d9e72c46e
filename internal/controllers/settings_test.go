package controllers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/batchrecords/rqs/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validSettingBody = `{"total_record_limit": 5000, "description": "record ceiling for admins"}`

func TestUpdateStorageSetting(t *testing.T) {
	s := newTestServer(t)
	principal := testPrincipal("user-1", "alice", model.RoleSuperSuperAdmin)

	rec, err := upsertSetting(t, s, principal, "admin", validSettingBody)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, rec.Code)

	envelope := decodeSetting(t, rec)
	assert.True(t, envelope.Success)
	require.NotNil(t, envelope.Result)
	assert.Equal(t, model.RoleAdmin, envelope.Result.Role)
	assert.Equal(t, int64(5000), envelope.Result.TotalRecordLimit)
	assert.Equal(t, "record ceiling for admins", envelope.Result.Description)
	assert.True(t, envelope.Result.IsActive)
	require.NotNil(t, envelope.Result.UpdatedBy)
	assert.Equal(t, "alice", envelope.Result.UpdatedBy.Username)
	assert.Equal(t, "alice@example.org", envelope.Result.UpdatedBy.Email)

	assert.Equal(t, int64(1), settingCount(t, s.GORMDB))
}

func TestUpdateStorageSettingIsIdempotent(t *testing.T) {
	s := newTestServer(t)
	principal := testPrincipal("user-1", "alice", model.RoleSuperSuperAdmin)

	rec, err := upsertSetting(t, s, principal, "admin", validSettingBody)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, rec.Code)
	first := decodeSetting(t, rec)

	rec, err = upsertSetting(t, s, principal, "admin", validSettingBody)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, rec.Code)
	second := decodeSetting(t, rec)

	// Same stored record, not a second one.
	assert.Equal(t, int64(1), settingCount(t, s.GORMDB))
	require.NotNil(t, first.Result)
	require.NotNil(t, second.Result)
	assert.Equal(t, *first.Result.ID, *second.Result.ID)
}

func TestUpdateStorageSettingValidation(t *testing.T) {
	testCases := []struct {
		name   string
		body   string
		fields []string
	}{
		{
			name:   "limit below the range",
			body:   `{"total_record_limit": 999, "description": "record ceiling for admins"}`,
			fields: []string{"total_record_limit"},
		},
		{
			name:   "limit above the range",
			body:   `{"total_record_limit": 10000001, "description": "record ceiling for admins"}`,
			fields: []string{"total_record_limit"},
		},
		{
			name:   "description too short",
			body:   `{"total_record_limit": 5000, "description": "too short"}`,
			fields: []string{"description"},
		},
		{
			name:   "empty body",
			body:   `{}`,
			fields: []string{"total_record_limit", "description"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestServer(t)
			principal := testPrincipal("user-1", "alice", model.RoleSuperSuperAdmin)

			rec, err := upsertSetting(t, s, principal, "admin", tc.body)
			require.NoError(t, err)
			require.Equal(t, http.StatusBadRequest, rec.Code)

			envelope := decodeSetting(t, rec)
			assert.False(t, envelope.Success)
			require.Len(t, envelope.Errors, len(tc.fields))
			for i, field := range tc.fields {
				assert.Equal(t, field, envelope.Errors[i].Field)
			}

			// Validation failures must not write anything.
			assert.Equal(t, int64(0), settingCount(t, s.GORMDB))
		})
	}
}

func TestUpdateStorageSettingValidationLeavesPriorStateUntouched(t *testing.T) {
	s := newTestServer(t)
	principal := testPrincipal("user-1", "alice", model.RoleSuperSuperAdmin)

	rec, err := upsertSetting(t, s, principal, "admin", validSettingBody)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, err = upsertSetting(t, s, principal, "admin", `{"total_record_limit": 1, "description": "x"}`)
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// The previously stored values survive the rejected update.
	ctx, rec := newRequestContext(s, http.MethodGet, "/v1/settings/admin", "", principal)
	ctx.SetPath("/v1/settings/:role")
	ctx.SetParamNames("role")
	ctx.SetParamValues("admin")
	require.NoError(t, s.GetStorageSetting(ctx))
	require.Equal(t, http.StatusOK, rec.Code)

	envelope := decodeSetting(t, rec)
	require.NotNil(t, envelope.Result)
	assert.Equal(t, int64(5000), envelope.Result.TotalRecordLimit)
	assert.Equal(t, "record ceiling for admins", envelope.Result.Description)
}

func TestUpdateStorageSettingInvalidRole(t *testing.T) {
	s := newTestServer(t)
	principal := testPrincipal("user-1", "alice", model.RoleSuperSuperAdmin)

	rec, err := upsertSetting(t, s, principal, "manager", validSettingBody)
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	envelope := decodeSetting(t, rec)
	assert.False(t, envelope.Success)
	assert.Equal(t, "invalid role", envelope.Message)
	assert.Equal(t, int64(0), settingCount(t, s.GORMDB))
}

func TestGetStorageSettingNotFound(t *testing.T) {
	s := newTestServer(t)
	principal := testPrincipal("user-1", "alice", model.RoleAdmin)

	ctx, rec := newRequestContext(s, http.MethodGet, "/v1/settings/superAdmin", "", principal)
	ctx.SetPath("/v1/settings/:role")
	ctx.SetParamNames("role")
	ctx.SetParamValues("superAdmin")
	require.NoError(t, s.GetStorageSetting(ctx))

	require.Equal(t, http.StatusNotFound, rec.Code)
	envelope := decodeSetting(t, rec)
	assert.False(t, envelope.Success)
}

func TestGetStorageSettingInvalidRole(t *testing.T) {
	s := newTestServer(t)
	principal := testPrincipal("user-1", "alice", model.RoleAdmin)

	ctx, rec := newRequestContext(s, http.MethodGet, "/v1/settings/root", "", principal)
	ctx.SetPath("/v1/settings/:role")
	ctx.SetParamNames("role")
	ctx.SetParamValues("root")
	require.NoError(t, s.GetStorageSetting(ctx))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	envelope := decodeSetting(t, rec)
	assert.False(t, envelope.Success)
	assert.Equal(t, "invalid role", envelope.Message)
}

func TestListStorageSettings(t *testing.T) {
	s := newTestServer(t)
	principal := testPrincipal("user-1", "alice", model.RoleSuperSuperAdmin)

	for role, limit := range map[string]string{
		"superSuperAdmin": "9000000",
		"admin":           "5000",
		"superAdmin":      "50000",
	} {
		body := `{"total_record_limit": ` + limit + `, "description": "record ceiling for ` + role + `"}`
		rec, err := upsertSetting(t, s, principal, role, body)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	ctx, rec := newRequestContext(s, http.MethodGet, "/v1/settings", "", principal)
	require.NoError(t, s.ListStorageSettings(ctx))
	require.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Success bool                   `json:"success"`
		Result  []model.StorageSetting `json:"result"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.True(t, envelope.Success)
	require.Len(t, envelope.Result, 3)
	assert.Equal(t, model.RoleAdmin, envelope.Result[0].Role)
	assert.Equal(t, model.RoleSuperAdmin, envelope.Result[1].Role)
	assert.Equal(t, model.RoleSuperSuperAdmin, envelope.Result[2].Role)
}
