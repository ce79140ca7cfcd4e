package get

import (
	"context"
	"log/slog"
	"muebles-backend/internal/storage"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockGetOrders struct {
	mock.Mock
}

func (m *MockGetOrders) GetOrders(ctx context.Context, filter storage.OrderFilter) ([]*storage.Order, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*storage.Order), args.Error(1)
}

func TestGetOrdersFilter_StatusKeepsMonthFilter(t *testing.T) {
	mockStorage := new(MockGetOrders)

	mockStorage.On("GetOrders", mock.Anything, storage.OrderFilter{
		Year:   2026,
		Month:  3,
		Status: storage.OrderStatusPending,
	}).Return([]*storage.Order{}, nil)

	handler := GetOrdersFilter(slog.Default(), mockStorage)

	req := httptest.NewRequest(http.MethodGet,
		"/api/orders?year=2026&month=3&status=PENDING", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	mockStorage.AssertExpectations(t)
}

func TestGetOrdersFilter_StatusAloneIsEnough(t *testing.T) {
	mockStorage := new(MockGetOrders)

	mockStorage.On("GetOrders", mock.Anything, storage.OrderFilter{
		Status: storage.OrderStatusShipped,
	}).Return([]*storage.Order{}, nil)

	handler := GetOrdersFilter(slog.Default(), mockStorage)

	req := httptest.NewRequest(http.MethodGet, "/api/orders?status=SHIPPED", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	mockStorage.AssertExpectations(t)
}

func TestGetOrdersFilter_MissingMonthWithoutSearchOrStatus(t *testing.T) {
	mockStorage := new(MockGetOrders)
	handler := GetOrdersFilter(slog.Default(), mockStorage)

	req := httptest.NewRequest(http.MethodGet, "/api/orders?year=2026", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	mockStorage.AssertNotCalled(t, "GetOrders", mock.Anything, mock.Anything)
}

func TestGetOrdersFilter_InvalidYear(t *testing.T) {
	mockStorage := new(MockGetOrders)
	handler := GetOrdersFilter(slog.Default(), mockStorage)

	req := httptest.NewRequest(http.MethodGet, "/api/orders?year=abc&month=3", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
