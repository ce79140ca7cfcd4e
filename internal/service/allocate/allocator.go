package allocate

import (
	"fmt"
	"time"

	"muebles-backend/internal/storage"
)

// Result of one allocation pass: the proposed assignments plus the
// operator-facing diagnostics for instructions that could not be
// (fully) satisfied.
type Result struct {
	Assignments []storage.NewAssignment
	Diagnostics []string
}

type slot struct {
	order    storage.PendingOrder
	consumed bool
}

// Allocate walks the instructions in the order they were given and
// consumes matching orders from the pool in pool order (priority
// first, then oldest intake first). The pool must already be sorted
// that way; Allocate never re-sorts it.
//
// An order consumed by an earlier instruction is unavailable to every
// later one in the same run. An unknown worker skips the instruction
// entirely; a shortfall keeps the partial matches (no rollback).
func Allocate(pool []storage.PendingOrder, workers []storage.Worker, instructions []storage.PlanInstruction, date time.Time, matcher ProductMatcher) Result {
	var res Result

	slots := make([]slot, len(pool))
	for i, o := range pool {
		slots[i] = slot{order: o}
	}

	for _, inst := range instructions {
		if inst.WorkerName == "" || inst.ProductName == "" || inst.Quantity <= 0 {
			res.Diagnostics = append(res.Diagnostics,
				fmt.Sprintf("invalid instruction: product=%q worker=%q quantity=%d",
					inst.ProductName, inst.WorkerName, inst.Quantity))
			continue
		}

		worker, ok := resolveWorker(workers, inst.WorkerName)
		if !ok {
			res.Diagnostics = append(res.Diagnostics,
				fmt.Sprintf("unknown worker: %s", inst.WorkerName))
			continue
		}

		matched := 0
		for i := range slots {
			if matched == inst.Quantity {
				break
			}
			if slots[i].consumed {
				continue
			}
			if !matcher.Match(slots[i].order, inst.ProductName) {
				continue
			}

			slots[i].consumed = true
			matched++
			res.Assignments = append(res.Assignments, storage.NewAssignment{
				OrderID:    slots[i].order.ID,
				WorkerID:   worker.ID,
				Date:       date,
				UnitsTotal: slots[i].order.Quantity,
			})
		}

		if matched < inst.Quantity {
			res.Diagnostics = append(res.Diagnostics,
				fmt.Sprintf("short by %d of %s for %s",
					inst.Quantity-matched, inst.ProductName, inst.WorkerName))
		}
	}

	return res
}

func resolveWorker(workers []storage.Worker, name string) (storage.Worker, bool) {
	for _, w := range workers {
		if containsFold(w.Name, name) {
			return w, true
		}
	}
	return storage.Worker{}, false
}
