package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"muebles-backend/internal/storage"
)

// GetPendingOrders loads the allocation pool. The two-column ordering
// is the FIFO contract the allocator depends on: priority orders
// first, then oldest intake first.
func (s *Storage) GetPendingOrders(ctx context.Context) ([]storage.PendingOrder, error) {
	const op = "storage.mysql.GetPendingOrders"

	stmt := `
		SELECT id, order_num, product, sku, quantity, priority, intake_date
		FROM orders
		WHERE status = ?
		ORDER BY priority DESC, intake_date ASC`

	rows, err := s.db.QueryContext(ctx, stmt, storage.OrderStatusPending)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to query pending orders: %w", op, err)
	}
	defer rows.Close()

	var pool []storage.PendingOrder
	for rows.Next() {
		var o storage.PendingOrder
		var sku sql.NullString

		err := rows.Scan(&o.ID, &o.OrderNum, &o.Product, &sku, &o.Quantity, &o.Priority, &o.IntakeDate)
		if err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}

		if sku.Valid {
			o.SKU = &sku.String
		}

		pool = append(pool, o)
	}

	return pool, rows.Err()
}

func (s *Storage) GetOrders(ctx context.Context, filter storage.OrderFilter) ([]*storage.Order, error) {
	const op = "storage.mysql.GetOrders"

	stmt := `
		SELECT id, order_num, client, product, sku, quantity, status, priority,
		       intake_date, completed_at, completed_by
		FROM orders
		WHERE 1=1`
	var args []interface{}

	if filter.Search != "" {
		stmt += ` AND (order_num LIKE ? OR client LIKE ?)`
		args = append(args, "%"+filter.Search+"%", "%"+filter.Search+"%")
	} else if filter.Year != 0 && filter.Month != 0 {
		startOfMonth := time.Date(filter.Year, time.Month(filter.Month), 1, 0, 0, 0, 0, time.UTC)
		endOfMonth := startOfMonth.AddDate(0, 1, 0)
		stmt += ` AND intake_date >= ? AND intake_date < ?`
		args = append(args, startOfMonth, endOfMonth)
	}

	if filter.Status != "" {
		stmt += ` AND status = ?`
		args = append(args, filter.Status)
	}

	stmt += ` ORDER BY priority DESC, intake_date ASC`

	rows, err := s.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to query orders: %w", op, err)
	}
	defer rows.Close()

	var orders []*storage.Order
	for rows.Next() {
		order := &storage.Order{}
		var sku, completedBy sql.NullString
		var completedAt sql.NullTime

		err := rows.Scan(&order.ID, &order.OrderNum, &order.Client, &order.Product,
			&sku, &order.Quantity, &order.Status, &order.Priority,
			&order.IntakeDate, &completedAt, &completedBy)
		if err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}

		if sku.Valid {
			order.SKU = &sku.String
		}
		if completedAt.Valid {
			order.CompletedAt = &completedAt.Time
		}
		if completedBy.Valid {
			order.CompletedBy = &completedBy.String
		}

		orders = append(orders, order)
	}

	return orders, rows.Err()
}

func (s *Storage) SaveOrder(ctx context.Context, req storage.SaveOrder) (int64, error) {
	const op = "storage.mysql.SaveOrder"

	intake, err := time.Parse("2006-01-02", req.IntakeDate)
	if err != nil {
		intake = time.Now().UTC()
	}

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO orders (order_num, client, product, sku, quantity, status, priority, intake_date)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		req.OrderNum, req.Client, req.Product, req.SKU, req.Quantity,
		storage.OrderStatusPending, req.Priority, intake,
	)
	if err != nil {
		return 0, fmt.Errorf("%s: failed to insert order %s: %w", op, req.OrderNum, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%s: last insert id: %w", op, err)
	}

	return id, nil
}

// ImportOrders merges already-parsed import rows: rows whose order_num
// exists (unique index) update the existing order, the rest are
// inserted as PENDING. One upsert per row; the driver cannot be
// trusted to distinguish "matched but unchanged" from "not matched"
// with a plain UPDATE, so re-uploading an unchanged sheet must go
// through ON DUPLICATE KEY UPDATE. The whole merge runs in one
// transaction so a re-run after a failure starts from a clean state.
func (s *Storage) ImportOrders(ctx context.Context, rows []storage.ImportRow) (storage.ImportResult, error) {
	const op = "storage.mysql.ImportOrders"

	var result storage.ImportResult

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return result, fmt.Errorf("%s: begin transaction: %w", op, err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO orders (order_num, client, product, sku, quantity, status, priority, intake_date)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			client = VALUES(client),
			product = VALUES(product),
			sku = VALUES(sku),
			quantity = VALUES(quantity),
			priority = VALUES(priority)`)
	if err != nil {
		return result, fmt.Errorf("%s: prepare upsert: %w", op, err)
	}
	defer stmt.Close()

	now := time.Now().UTC()
	for _, row := range rows {
		res, err := stmt.ExecContext(ctx, row.OrderNum, row.Client, row.Product, row.SKU,
			row.Quantity, storage.OrderStatusPending, row.Priority, now)
		if err != nil {
			return result, fmt.Errorf("%s: failed to upsert order %s: %w", op, row.OrderNum, err)
		}

		affected, err := res.RowsAffected()
		if err != nil {
			return result, fmt.Errorf("%s: rows affected: %w", op, err)
		}

		if upsertInserted(affected) {
			result.Inserted++
		} else {
			result.Updated++
		}
	}

	if err := tx.Commit(); err != nil {
		return result, fmt.Errorf("%s: commit transaction: %w", op, err)
	}

	return result, nil
}

// upsertInserted classifies the affected-rows count of an
// INSERT ... ON DUPLICATE KEY UPDATE: MySQL reports 1 for a fresh
// insert, 2 for an update that changed values and 0 for an update
// that matched an identical row. 0 and 2 are both "the order was
// already there".
func upsertInserted(affected int64) bool {
	return affected == 1
}

func (s *Storage) UpdateOrderStatus(ctx context.Context, id int64, status string) error {
	const op = "storage.mysql.UpdateOrderStatus"

	res, err := s.db.ExecContext(ctx, `UPDATE orders SET status = ? WHERE id = ?`, status, id)
	if err != nil {
		return fmt.Errorf("%s: failed to update status for order id=%d: %w", op, id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: rows affected: %w", op, err)
	}
	if affected == 0 {
		return fmt.Errorf("%s: order id=%d: %w", op, id, storage.ErrNotFound)
	}

	return nil
}

// DeleteOrder is admin-only; orders are otherwise never deleted.
func (s *Storage) DeleteOrder(ctx context.Context, id int64) error {
	const op = "storage.mysql.DeleteOrder"

	res, err := s.db.ExecContext(ctx, `DELETE FROM orders WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("%s: failed to delete order id=%d: %w", op, id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: rows affected: %w", op, err)
	}
	if affected == 0 {
		return fmt.Errorf("%s: order id=%d: %w", op, id, storage.ErrNotFound)
	}

	return nil
}
