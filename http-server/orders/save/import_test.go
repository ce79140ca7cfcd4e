package save

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

type MockImportStorage struct {
	mock.Mock
}

func (m *MockImportStorage) ImportOrders(ctx context.Context, rows []storage.ImportRow) (storage.ImportResult, error) {
	args := m.Called(ctx, rows)
	return args.Get(0).(storage.ImportResult), args.Error(1)
}

func TestImportOrdersOperation_MergeCounts(t *testing.T) {
	mockStorage := new(MockImportStorage)

	mockStorage.On("ImportOrders", mock.Anything, mock.MatchedBy(func(rows []storage.ImportRow) bool {
		return len(rows) == 2
	})).Return(storage.ImportResult{Inserted: 1, Updated: 1}, nil)

	handler := ImportOrdersOperation(slog.Default(), mockStorage)

	body := `{"rows":[
		{"order_num":"PO-1","client":"HOTEL SOL","product":"SOFA GRIS","quantity":2},
		{"order_num":"PO-2","client":"CASA LUNA","product":"MESA ROBLE","quantity":1,"priority":true}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/orders/import", strings.NewReader(body))
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var resp ImportResponse
	err := render.DecodeJSON(strings.NewReader(rr.Body.String()), &resp)
	assert.NoError(t, err)
	assert.Equal(t, 1, resp.Inserted)
	assert.Equal(t, 1, resp.Updated)

	mockStorage.AssertExpectations(t)
}

func TestImportOrdersOperation_EmptyRows(t *testing.T) {
	mockStorage := new(MockImportStorage)
	handler := ImportOrdersOperation(slog.Default(), mockStorage)

	req := httptest.NewRequest(http.MethodPost, "/api/orders/import",
		strings.NewReader(`{"rows":[]}`))
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	mockStorage.AssertNotCalled(t, "ImportOrders", mock.Anything, mock.Anything)
}

func TestImportOrdersOperation_StorageFailure(t *testing.T) {
	mockStorage := new(MockImportStorage)
	mockStorage.On("ImportOrders", mock.Anything, mock.Anything).
		Return(storage.ImportResult{}, errors.New("deadlock"))

	handler := ImportOrdersOperation(slog.Default(), mockStorage)

	body := `{"rows":[{"order_num":"PO-1","client":"HOTEL SOL","product":"SOFA GRIS","quantity":2}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/orders/import", strings.NewReader(body))
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
