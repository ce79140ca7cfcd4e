package get

import (
	"context"
	"errors"
	"log/slog"
	"muebles-backend/internal/storage"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockWorkers struct {
	mock.Mock
}

func (m *MockWorkers) GetAllWorkers(ctx context.Context) ([]storage.Worker, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]storage.Worker), args.Error(1)
}

func TestGetWorkers_Success(t *testing.T) {
	mockStorage := new(MockWorkers)

	mockStorage.On("GetAllWorkers", mock.Anything).Return([]storage.Worker{
		{ID: 1, Name: "JUAN PEREZ", Role: "FLOOR", Position: "tapicero"},
		{ID: 2, Name: "MARIA LOPEZ", Role: "FLOOR", Position: "carpintera"},
	}, nil)

	handler := GetWorkers(slog.Default(), mockStorage)

	req := httptest.NewRequest(http.MethodGet, "/api/workers/all", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var workers []storage.Worker
	err := render.DecodeJSON(strings.NewReader(rr.Body.String()), &workers)
	assert.NoError(t, err)
	assert.Len(t, workers, 2)
	assert.Equal(t, "JUAN PEREZ", workers[0].Name)

	mockStorage.AssertExpectations(t)
}

func TestGetWorkers_StorageFailure(t *testing.T) {
	mockStorage := new(MockWorkers)
	mockStorage.On("GetAllWorkers", mock.Anything).Return(nil, errors.New("db gone"))

	handler := GetWorkers(slog.Default(), mockStorage)

	req := httptest.NewRequest(http.MethodGet, "/api/workers/all", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
