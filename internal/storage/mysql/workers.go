package mysql

import (
	"context"
	"fmt"

	"muebles-backend/internal/storage"
)

func (s *Storage) GetAllWorkers(ctx context.Context) ([]storage.Worker, error) {
	const op = "storage.mysql.GetAllWorkers"

	stmt := `
		SELECT id, name, role, position
		FROM workers
		WHERE is_active = TRUE
		ORDER BY name ASC`

	rows, err := s.db.QueryContext(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to query workers: %w", op, err)
	}
	defer rows.Close()

	var workers []storage.Worker
	for rows.Next() {
		var w storage.Worker

		err := rows.Scan(&w.ID, &w.Name, &w.Role, &w.Position)
		if err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}

		workers = append(workers, w)
	}

	return workers, rows.Err()
}

func (s *Storage) SaveWorker(ctx context.Context, req storage.SaveWorker) (int64, error) {
	const op = "storage.mysql.SaveWorker"

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO workers (name, role, position, is_active)
		VALUES (?, ?, ?, TRUE)`,
		req.Name, req.Role, req.Position,
	)
	if err != nil {
		return 0, fmt.Errorf("%s: failed to insert worker %s: %w", op, req.Name, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%s: last insert id: %w", op, err)
	}

	return id, nil
}

func (s *Storage) UpdateWorker(ctx context.Context, id int64, req storage.SaveWorker) error {
	const op = "storage.mysql.UpdateWorker"

	res, err := s.db.ExecContext(ctx, `
		UPDATE workers SET name = ?, role = ?, position = ? WHERE id = ?`,
		req.Name, req.Role, req.Position, id,
	)
	if err != nil {
		return fmt.Errorf("%s: failed to update worker id=%d: %w", op, id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: rows affected: %w", op, err)
	}
	if affected == 0 {
		return fmt.Errorf("%s: worker id=%d: %w", op, id, storage.ErrNotFound)
	}

	return nil
}
