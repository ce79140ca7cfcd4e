package mysql

import (
	"context"
	"database/sql"
	"fmt"

	"muebles-backend/internal/storage"
)

func (s *Storage) GetStockItems(ctx context.Context, category string) ([]storage.StockItem, error) {
	const op = "storage.mysql.GetStockItems"

	stmt := `SELECT id, name, category, unit, quantity, location FROM stock_items`
	var args []interface{}

	if category != "" {
		stmt += ` WHERE category = ?`
		args = append(args, category)
	}

	stmt += ` ORDER BY name ASC`

	rows, err := s.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to query stock items: %w", op, err)
	}
	defer rows.Close()

	var items []storage.StockItem
	for rows.Next() {
		var item storage.StockItem
		var location sql.NullString

		err := rows.Scan(&item.ID, &item.Name, &item.Category, &item.Unit, &item.Quantity, &location)
		if err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}

		if location.Valid {
			item.Location = &location.String
		}

		items = append(items, item)
	}

	return items, rows.Err()
}
