package allocate

import (
	"context"
	"errors"
	"log/slog"
	allocatesvc "muebles-backend/internal/service/allocate"
	"muebles-backend/internal/storage"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockPlanAllocator struct {
	mock.Mock
}

func (m *MockPlanAllocator) Run(ctx context.Context, date time.Time, instructions []storage.PlanInstruction) (*allocatesvc.RunResult, error) {
	args := m.Called(ctx, date, instructions)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*allocatesvc.RunResult), args.Error(1)
}

func TestAllocatePlanOperation_Success(t *testing.T) {
	mockService := new(MockPlanAllocator)

	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	mockService.On("Run", mock.Anything, date, mock.Anything).Return(&allocatesvc.RunResult{
		RunID:       "run-1",
		Created:     2,
		Diagnostics: []string{"short by 1 of SOFA AZUL for JUAN"},
	}, nil)

	handler := AllocatePlanOperation(slog.Default(), mockService)

	body := `{"date":"2026-03-02","instructions":[
		{"product_name":"SOFA GRIS","worker_name":"JUAN","quantity":2},
		{"product_name":"SOFA AZUL","worker_name":"JUAN","quantity":1}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/plan/allocate", strings.NewReader(body))
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp Response
	err := render.DecodeJSON(strings.NewReader(rr.Body.String()), &resp)
	assert.NoError(t, err)
	assert.Equal(t, "run-1", resp.RunID)
	assert.Equal(t, 2, resp.Created)
	assert.Equal(t, []string{"short by 1 of SOFA AZUL for JUAN"}, resp.Diagnostics)

	mockService.AssertExpectations(t)
}

func TestAllocatePlanOperation_InvalidDate(t *testing.T) {
	mockService := new(MockPlanAllocator)
	handler := AllocatePlanOperation(slog.Default(), mockService)

	body := `{"date":"02-03-2026","instructions":[{"product_name":"X","worker_name":"Y","quantity":1}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/plan/allocate", strings.NewReader(body))
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	mockService.AssertNotCalled(t, "Run", mock.Anything, mock.Anything, mock.Anything)
}

func TestAllocatePlanOperation_EmptyInstructions(t *testing.T) {
	mockService := new(MockPlanAllocator)
	handler := AllocatePlanOperation(slog.Default(), mockService)

	req := httptest.NewRequest(http.MethodPost, "/api/plan/allocate",
		strings.NewReader(`{"date":"2026-03-02","instructions":[]}`))
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestAllocatePlanOperation_LoadFailure(t *testing.T) {
	mockService := new(MockPlanAllocator)
	mockService.On("Run", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("pending orders: db gone"))

	handler := AllocatePlanOperation(slog.Default(), mockService)

	body := `{"date":"2026-03-02","instructions":[{"product_name":"SOFA","worker_name":"JUAN","quantity":1}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/plan/allocate", strings.NewReader(body))
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
