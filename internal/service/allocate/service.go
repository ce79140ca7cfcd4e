package allocate

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"muebles-backend/internal/storage"
)

type AllocatorStorage interface {
	GetPendingOrders(ctx context.Context) ([]storage.PendingOrder, error)
	GetAllWorkers(ctx context.Context) ([]storage.Worker, error)
	GetCatalogProducts(ctx context.Context) ([]storage.CatalogProduct, error)
	SaveAssignment(ctx context.Context, a storage.NewAssignment) (int64, error)
}

type Service struct {
	storage AllocatorStorage
}

func NewService(storage AllocatorStorage) *Service {
	return &Service{storage: storage}
}

// RunResult is the aggregate summary of one allocation run. Row-level
// write failures and diagnostics accumulate here; they never abort
// the run.
type RunResult struct {
	RunID       string                 `json:"run_id"`
	Created     int                    `json:"created"`
	Assignments []storage.Assignment   `json:"assignments"`
	Failures    []storage.WriteFailure `json:"failures"`
	Diagnostics []string               `json:"diagnostics"`
}

// Run loads the pending pool, the worker roster and the product
// catalog, allocates the instructions against them, then persists the
// proposed assignments one by one. A load failure aborts the run
// before any write; a single failed write (typically a duplicate for
// the same order and date) is recorded and the rest of the batch
// continues. Partially persisted runs are left as-is for manual
// correction.
func (s *Service) Run(ctx context.Context, date time.Time, instructions []storage.PlanInstruction) (*RunResult, error) {
	const op = "service.allocate.Run"

	var (
		pool    []storage.PendingOrder
		workers []storage.Worker
		catalog []storage.CatalogProduct
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		pool, err = s.storage.GetPendingOrders(gCtx)
		if err != nil {
			return fmt.Errorf("pending orders: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		workers, err = s.storage.GetAllWorkers(gCtx)
		if err != nil {
			return fmt.Errorf("workers: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		catalog, err = s.storage.GetCatalogProducts(gCtx)
		if err != nil {
			return fmt.Errorf("catalog: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	allocated := Allocate(pool, workers, instructions, date, NewCatalogMatcher(catalog))

	result := &RunResult{
		RunID:       uuid.NewString(),
		Diagnostics: allocated.Diagnostics,
	}

	for _, a := range allocated.Assignments {
		id, err := s.storage.SaveAssignment(ctx, a)
		if err != nil {
			result.Failures = append(result.Failures, storage.WriteFailure{
				OrderID: a.OrderID,
				Reason:  err.Error(),
			})
			continue
		}

		result.Created++
		result.Assignments = append(result.Assignments, storage.Assignment{
			ID:             id,
			OrderID:        a.OrderID,
			WorkerID:       a.WorkerID,
			Date:           a.Date,
			Status:         storage.AssignmentStatusPending,
			UnitsTotal:     a.UnitsTotal,
			UnitsCompleted: 0,
		})
	}

	return result, nil
}
