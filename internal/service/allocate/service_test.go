package allocate

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"muebles-backend/internal/storage"
)

type MockAllocatorStorage struct {
	mock.Mock
}

func (m *MockAllocatorStorage) GetPendingOrders(ctx context.Context) ([]storage.PendingOrder, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]storage.PendingOrder), args.Error(1)
}

func (m *MockAllocatorStorage) GetAllWorkers(ctx context.Context) ([]storage.Worker, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]storage.Worker), args.Error(1)
}

func (m *MockAllocatorStorage) GetCatalogProducts(ctx context.Context) ([]storage.CatalogProduct, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]storage.CatalogProduct), args.Error(1)
}

func (m *MockAllocatorStorage) SaveAssignment(ctx context.Context, a storage.NewAssignment) (int64, error) {
	args := m.Called(ctx, a)
	return args.Get(0).(int64), args.Error(1)
}

func TestRun_Success(t *testing.T) {
	mockStorage := new(MockAllocatorStorage)

	pool := []storage.PendingOrder{
		newPendingOrder(1, "SOFA GRIS", 1),
		newPendingOrder(2, "SOFA GRIS", 2),
	}

	mockStorage.On("GetPendingOrders", mock.Anything).Return(pool, nil)
	mockStorage.On("GetAllWorkers", mock.Anything).Return(testWorkers(), nil)
	mockStorage.On("GetCatalogProducts", mock.Anything).Return([]storage.CatalogProduct{}, nil)
	mockStorage.On("SaveAssignment", mock.Anything, mock.Anything).Return(int64(100), nil).Once()
	mockStorage.On("SaveAssignment", mock.Anything, mock.Anything).Return(int64(101), nil).Once()

	service := NewService(mockStorage)

	result, err := service.Run(context.Background(), planDate, []storage.PlanInstruction{
		{ProductName: "SOFA GRIS", WorkerName: "JUAN", Quantity: 2},
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, result.RunID)
	assert.Equal(t, 2, result.Created)
	assert.Len(t, result.Assignments, 2)
	assert.Empty(t, result.Failures)
	assert.Empty(t, result.Diagnostics)
	assert.Equal(t, storage.AssignmentStatusPending, result.Assignments[0].Status)
	assert.Equal(t, 0, result.Assignments[0].UnitsCompleted)

	mockStorage.AssertExpectations(t)
}

func TestRun_PoolLoadFailureAbortsBeforeAnyWrite(t *testing.T) {
	mockStorage := new(MockAllocatorStorage)

	mockStorage.On("GetPendingOrders", mock.Anything).Return(nil, errors.New("db gone"))
	mockStorage.On("GetAllWorkers", mock.Anything).Return(testWorkers(), nil).Maybe()
	mockStorage.On("GetCatalogProducts", mock.Anything).Return([]storage.CatalogProduct{}, nil).Maybe()

	service := NewService(mockStorage)

	result, err := service.Run(context.Background(), planDate, []storage.PlanInstruction{
		{ProductName: "SOFA GRIS", WorkerName: "JUAN", Quantity: 1},
	})

	assert.Error(t, err)
	assert.Nil(t, result)
	mockStorage.AssertNotCalled(t, "SaveAssignment", mock.Anything, mock.Anything)
}

func TestRun_DuplicateWriteDoesNotAbortBatch(t *testing.T) {
	mockStorage := new(MockAllocatorStorage)

	pool := []storage.PendingOrder{
		newPendingOrder(1, "SOFA GRIS", 1),
		newPendingOrder(2, "SOFA GRIS", 2),
		newPendingOrder(3, "SOFA GRIS", 3),
	}

	mockStorage.On("GetPendingOrders", mock.Anything).Return(pool, nil)
	mockStorage.On("GetAllWorkers", mock.Anything).Return(testWorkers(), nil)
	mockStorage.On("GetCatalogProducts", mock.Anything).Return([]storage.CatalogProduct{}, nil)

	mockStorage.On("SaveAssignment", mock.Anything,
		mock.MatchedBy(func(a storage.NewAssignment) bool { return a.OrderID == 1 })).
		Return(int64(100), nil)
	mockStorage.On("SaveAssignment", mock.Anything,
		mock.MatchedBy(func(a storage.NewAssignment) bool { return a.OrderID == 2 })).
		Return(int64(0), storage.ErrDuplicateAssignment)
	mockStorage.On("SaveAssignment", mock.Anything,
		mock.MatchedBy(func(a storage.NewAssignment) bool { return a.OrderID == 3 })).
		Return(int64(102), nil)

	service := NewService(mockStorage)

	result, err := service.Run(context.Background(), planDate, []storage.PlanInstruction{
		{ProductName: "SOFA GRIS", WorkerName: "JUAN", Quantity: 3},
	})

	assert.NoError(t, err)
	assert.Equal(t, 2, result.Created)
	assert.Len(t, result.Failures, 1)
	assert.Equal(t, int64(2), result.Failures[0].OrderID)

	mockStorage.AssertExpectations(t)
}

func TestRun_DiagnosticsSurviveIntoResult(t *testing.T) {
	mockStorage := new(MockAllocatorStorage)

	mockStorage.On("GetPendingOrders", mock.Anything).Return([]storage.PendingOrder{}, nil)
	mockStorage.On("GetAllWorkers", mock.Anything).Return(testWorkers(), nil)
	mockStorage.On("GetCatalogProducts", mock.Anything).Return([]storage.CatalogProduct{}, nil)

	service := NewService(mockStorage)

	result, err := service.Run(context.Background(), time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), []storage.PlanInstruction{
		{ProductName: "SOFA AZUL", WorkerName: "PEDRO", Quantity: 1},
	})

	assert.NoError(t, err)
	assert.Zero(t, result.Created)
	assert.Equal(t, []string{"unknown worker: PEDRO"}, result.Diagnostics)
}
