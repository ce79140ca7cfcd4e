package storage

import "time"

const (
	AssignmentStatusPending = "PENDING"
	AssignmentStatusDone    = "DONE"
)

type Assignment struct {
	ID             int64     `json:"id"`
	OrderID        int64     `json:"order_id"`
	WorkerID       int64     `json:"worker_id"`
	Date           time.Time `json:"date"`
	Status         string    `json:"status"`
	UnitsTotal     int       `json:"units_total"`
	UnitsCompleted int       `json:"units_completed"`
}

// WithProgress returns the assignment after applying a signed delta
// to its completed units. The result is clamped to [0, UnitsTotal];
// status is DONE exactly when the assignment is full, so a decrement
// below full reverts it to PENDING.
func (a Assignment) WithProgress(delta int) Assignment {
	newCompleted := a.UnitsCompleted + delta
	if newCompleted < 0 {
		newCompleted = 0
	}
	if newCompleted > a.UnitsTotal {
		newCompleted = a.UnitsTotal
	}

	a.UnitsCompleted = newCompleted
	if newCompleted == a.UnitsTotal {
		a.Status = AssignmentStatusDone
	} else {
		a.Status = AssignmentStatusPending
	}

	return a
}

// NewAssignment is a proposed assignment produced by the allocator,
// not yet persisted.
type NewAssignment struct {
	OrderID    int64     `json:"order_id"`
	WorkerID   int64     `json:"worker_id"`
	Date       time.Time `json:"date"`
	UnitsTotal int       `json:"units_total"`
}

// AssignmentRow is the production-floor board view: an assignment
// joined with its order and worker names.
type AssignmentRow struct {
	Assignment
	OrderNum   string `json:"order_num"`
	Product    string `json:"product"`
	WorkerName string `json:"worker_name"`
}
