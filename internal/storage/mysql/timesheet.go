package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"muebles-backend/internal/storage"
)

// ClockIn opens a time entry for the worker. A worker with an open
// entry (no clock_out yet) cannot clock in again.
func (s *Storage) ClockIn(ctx context.Context, workerID int64, at time.Time) (int64, error) {
	const op = "storage.mysql.ClockIn"

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("%s: begin transaction: %w", op, err)
	}
	defer tx.Rollback()

	// FOR UPDATE holds the worker's open entries until commit, so two
	// concurrent clock-ins cannot both pass the check.
	var open int64
	err = tx.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM time_entries WHERE worker_id = ? AND clock_out IS NULL FOR UPDATE`,
		workerID,
	).Scan(&open)
	if err != nil {
		return 0, fmt.Errorf("%s: failed to check open entries for worker id=%d: %w", op, workerID, err)
	}
	if open > 0 {
		return 0, fmt.Errorf("%s: worker id=%d: %w", op, workerID, storage.ErrAlreadyClockedIn)
	}

	date := time.Date(at.Year(), at.Month(), at.Day(), 0, 0, 0, 0, time.UTC)
	res, err := tx.ExecContext(ctx, `
		INSERT INTO time_entries (worker_id, date, clock_in) VALUES (?, ?, ?)`,
		workerID, date, at,
	)
	if err != nil {
		return 0, fmt.Errorf("%s: failed to insert time entry for worker id=%d: %w", op, workerID, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%s: last insert id: %w", op, err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("%s: commit transaction: %w", op, err)
	}

	return id, nil
}

func (s *Storage) ClockOut(ctx context.Context, workerID int64, at time.Time) error {
	const op = "storage.mysql.ClockOut"

	res, err := s.db.ExecContext(ctx, `
		UPDATE time_entries SET clock_out = ? WHERE worker_id = ? AND clock_out IS NULL`,
		at, workerID,
	)
	if err != nil {
		return fmt.Errorf("%s: failed to close time entry for worker id=%d: %w", op, workerID, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: rows affected: %w", op, err)
	}
	if affected == 0 {
		return fmt.Errorf("%s: worker id=%d: %w", op, workerID, storage.ErrNotClockedIn)
	}

	return nil
}

func (s *Storage) GetTimeEntries(ctx context.Context, workerID int64, from, to time.Time) ([]storage.TimeEntry, error) {
	const op = "storage.mysql.GetTimeEntries"

	stmt := `
		SELECT id, worker_id, date, clock_in, clock_out
		FROM time_entries
		WHERE date >= ? AND date < ?`
	args := []interface{}{from, to}

	if workerID != 0 {
		stmt += ` AND worker_id = ?`
		args = append(args, workerID)
	}

	stmt += ` ORDER BY clock_in ASC`

	rows, err := s.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to query time entries: %w", op, err)
	}
	defer rows.Close()

	var entries []storage.TimeEntry
	for rows.Next() {
		var e storage.TimeEntry
		var clockOut sql.NullTime

		err := rows.Scan(&e.ID, &e.WorkerID, &e.Date, &e.ClockIn, &clockOut)
		if err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}

		if clockOut.Valid {
			e.ClockOut = &clockOut.Time
		}

		entries = append(entries, e)
	}

	return entries, rows.Err()
}
