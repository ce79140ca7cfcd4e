package mysql

import (
	"context"
	"fmt"

	"muebles-backend/internal/storage"
)

func (s *Storage) GetCatalogProducts(ctx context.Context) ([]storage.CatalogProduct, error) {
	const op = "storage.mysql.GetCatalogProducts"

	rows, err := s.db.QueryContext(ctx, `SELECT id, sku, name FROM catalog_products ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to query catalog: %w", op, err)
	}
	defer rows.Close()

	var products []storage.CatalogProduct
	for rows.Next() {
		var p storage.CatalogProduct

		err := rows.Scan(&p.ID, &p.SKU, &p.Name)
		if err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}

		products = append(products, p)
	}

	return products, rows.Err()
}

func (s *Storage) SaveCatalogProduct(ctx context.Context, req storage.SaveCatalogProduct) (int64, error) {
	const op = "storage.mysql.SaveCatalogProduct"

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO catalog_products (sku, name) VALUES (?, ?)`,
		req.SKU, req.Name,
	)
	if err != nil {
		return 0, fmt.Errorf("%s: failed to insert catalog product %s: %w", op, req.SKU, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%s: last insert id: %w", op, err)
	}

	return id, nil
}

func (s *Storage) UpdateCatalogProduct(ctx context.Context, id int64, req storage.SaveCatalogProduct) error {
	const op = "storage.mysql.UpdateCatalogProduct"

	res, err := s.db.ExecContext(ctx, `
		UPDATE catalog_products SET sku = ?, name = ? WHERE id = ?`,
		req.SKU, req.Name, id,
	)
	if err != nil {
		return fmt.Errorf("%s: failed to update catalog product id=%d: %w", op, id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: rows affected: %w", op, err)
	}
	if affected == 0 {
		return fmt.Errorf("%s: catalog product id=%d: %w", op, id, storage.ErrNotFound)
	}

	return nil
}
