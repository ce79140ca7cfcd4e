package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"

	"muebles-backend/internal/storage"
)

const duplicateEntryErrNo = 1062

// SaveAssignment inserts a single assignment row. The table carries a
// uniqueness constraint on (order_id, date); a violation is returned
// as storage.ErrDuplicateAssignment so the writer can count it and
// continue with the rest of the batch.
func (s *Storage) SaveAssignment(ctx context.Context, a storage.NewAssignment) (int64, error) {
	const op = "storage.mysql.SaveAssignment"

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO assignments (order_id, worker_id, date, status, units_total, units_completed)
		VALUES (?, ?, ?, ?, ?, 0)`,
		a.OrderID, a.WorkerID, a.Date, storage.AssignmentStatusPending, a.UnitsTotal,
	)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == duplicateEntryErrNo {
			return 0, fmt.Errorf("%s: order id=%d: %w", op, a.OrderID, storage.ErrDuplicateAssignment)
		}
		return 0, fmt.Errorf("%s: failed to insert assignment for order id=%d: %w", op, a.OrderID, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%s: last insert id: %w", op, err)
	}

	return id, nil
}

func (s *Storage) GetAssignmentsByDate(ctx context.Context, date time.Time) ([]storage.AssignmentRow, error) {
	const op = "storage.mysql.GetAssignmentsByDate"

	stmt := `
		SELECT a.id, a.order_id, a.worker_id, a.date, a.status, a.units_total, a.units_completed,
		       o.order_num, o.product, w.name
		FROM assignments a
		JOIN orders o ON o.id = a.order_id
		JOIN workers w ON w.id = a.worker_id
		WHERE a.date = ?
		ORDER BY w.name ASC, o.intake_date ASC`

	rows, err := s.db.QueryContext(ctx, stmt, date)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to query assignments: %w", op, err)
	}
	defer rows.Close()

	var result []storage.AssignmentRow
	for rows.Next() {
		var row storage.AssignmentRow

		err := rows.Scan(&row.ID, &row.OrderID, &row.WorkerID, &row.Date, &row.Status,
			&row.UnitsTotal, &row.UnitsCompleted, &row.OrderNum, &row.Product, &row.WorkerName)
		if err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}

		result = append(result, row)
	}

	return result, rows.Err()
}

func (s *Storage) GetAssignment(ctx context.Context, id int64) (*storage.Assignment, error) {
	const op = "storage.mysql.GetAssignment"

	stmt := `
		SELECT id, order_id, worker_id, date, status, units_total, units_completed
		FROM assignments
		WHERE id = ?`

	a := &storage.Assignment{}
	err := s.db.QueryRowContext(ctx, stmt, id).Scan(
		&a.ID, &a.OrderID, &a.WorkerID, &a.Date, &a.Status, &a.UnitsTotal, &a.UnitsCompleted,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: assignment id=%d: %w", op, id, storage.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: query failed: %w", op, err)
	}

	return a, nil
}

// ApplyProgress applies a signed delta to an assignment's completed
// units and cascades the DONE transition to the referenced order.
// Both writes run in one transaction so a half-applied cascade cannot
// be observed.
func (s *Storage) ApplyProgress(ctx context.Context, id int64, delta int) (*storage.Assignment, error) {
	const op = "storage.mysql.ApplyProgress"

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: begin transaction: %w", op, err)
	}
	defer tx.Rollback()

	a := &storage.Assignment{}
	err = tx.QueryRowContext(ctx, `
		SELECT id, order_id, worker_id, date, status, units_total, units_completed
		FROM assignments
		WHERE id = ?
		FOR UPDATE`, id).Scan(
		&a.ID, &a.OrderID, &a.WorkerID, &a.Date, &a.Status, &a.UnitsTotal, &a.UnitsCompleted,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: assignment id=%d: %w", op, id, storage.ErrNotFound)
		}
		return nil, fmt.Errorf("%s: query failed: %w", op, err)
	}

	wasDone := a.Status == storage.AssignmentStatusDone
	*a = a.WithProgress(delta)

	_, err = tx.ExecContext(ctx, `
		UPDATE assignments SET units_completed = ?, status = ? WHERE id = ?`,
		a.UnitsCompleted, a.Status, a.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to update assignment id=%d: %w", op, a.ID, err)
	}

	isDone := a.Status == storage.AssignmentStatusDone
	switch {
	case isDone && !wasDone:
		// Order completion stamp carries the worker's name for
		// traceability.
		_, err = tx.ExecContext(ctx, `
			UPDATE orders o
			JOIN workers w ON w.id = ?
			SET o.status = ?, o.completed_at = ?, o.completed_by = w.name
			WHERE o.id = ?`,
			a.WorkerID, storage.OrderStatusDone, time.Now().UTC(), a.OrderID,
		)
	case !isDone && wasDone:
		// Decrementing below full un-does the DONE state.
		_, err = tx.ExecContext(ctx, `
			UPDATE orders SET status = ?, completed_at = NULL, completed_by = NULL WHERE id = ?`,
			storage.OrderStatusPending, a.OrderID,
		)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: failed to cascade order status for order id=%d: %w", op, a.OrderID, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("%s: commit transaction: %w", op, err)
	}

	return a, nil
}
