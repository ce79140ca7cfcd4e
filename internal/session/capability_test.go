package session

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"muebles-backend/internal/constants"
)

func TestHasCapability(t *testing.T) {
	tests := []struct {
		role   string
		action string
		want   bool
	}{
		{constants.RoleAdmin, constants.ActionOrdersDelete, true},
		{constants.RoleAdmin, constants.ActionPlanAllocate, true},
		{constants.RoleOffice, constants.ActionPlanAllocate, true},
		{constants.RoleOffice, constants.ActionOrdersDelete, false},
		{constants.RoleFloor, constants.ActionProgressUpdate, true},
		{constants.RoleFloor, constants.ActionOrdersWrite, false},
		{constants.RoleDispatch, constants.ActionOrdersDispatch, true},
		{constants.RoleDispatch, constants.ActionProgressUpdate, false},
		{"", constants.ActionOrdersWrite, false},
		{"UNKNOWN", constants.ActionOrdersWrite, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, HasCapability(tt.role, tt.action),
			"role=%s action=%s", tt.role, tt.action)
	}
}

func TestRequireCapability(t *testing.T) {
	handler := RequireCapability(constants.ActionPlanAllocate)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}),
	)

	req := httptest.NewRequest(http.MethodPost, "/api/plan/allocate", nil)
	req.Header.Set(RoleHeader, constants.RoleOffice)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)

	req = httptest.NewRequest(http.MethodPost, "/api/plan/allocate", nil)
	req.Header.Set(RoleHeader, constants.RoleFloor)
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusForbidden, rr.Code)
}
