package database

import (
	"context"
	"errors"

	"go-stall-management/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type OrderStore struct {
	pool *pgxpool.Pool
}

func NewOrderStore(pool *pgxpool.Pool) *OrderStore {
	return &OrderStore{pool: pool}
}

func (s *OrderStore) Insert(ctx context.Context, order models.Order) (int, error) {
	itemsRaw, err := models.EncodeItems(order.Items)
	if err != nil {
		return 0, err
	}
	var id int
	err = s.pool.QueryRow(ctx,
		`INSERT INTO orders (table_label, name, items, total, song, image_path, timestamp, processed, table_size, consent_privacy, consent_terms)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING id`,
		order.Table, order.Name, itemsRaw, order.Total, order.Song, order.Image_path,
		order.Timestamp, order.Processed, order.Table_size, order.Consent_privacy, order.Consent_terms).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (s *OrderStore) List(ctx context.Context) ([]models.Order, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, table_label, name, items, total, song, image_path, timestamp, processed, table_size, consent_privacy, consent_terms
		 FROM orders ORDER BY timestamp`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		var o models.Order
		var itemsRaw string
		if err := rows.Scan(&o.ID, &o.Table, &o.Name, &itemsRaw, &o.Total, &o.Song, &o.Image_path,
			&o.Timestamp, &o.Processed, &o.Table_size, &o.Consent_privacy, &o.Consent_terms); err != nil {
			return nil, err
		}
		items, err := models.DecodeItems(itemsRaw)
		if err != nil {
			return nil, err
		}
		o.Items = items
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (s *OrderStore) ToggleProcessed(ctx context.Context, id int) (bool, error) {
	var processed bool
	err := s.pool.QueryRow(ctx,
		`UPDATE orders SET processed = NOT processed WHERE id = $1 RETURNING processed`, id).Scan(&processed)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, models.ErrOrderNotFound
	}
	if err != nil {
		return false, err
	}
	return processed, nil
}

// ServeItem rewrites one item's served_by attribution. The row is locked for
// the duration of the transaction so concurrent rewrites of the item blob
// cannot drop each other's updates.
func (s *OrderStore) ServeItem(ctx context.Context, id, index int, admin string) (bool, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return false, err
	}
	defer tx.Rollback(ctx)

	var itemsRaw string
	var processed bool
	err = tx.QueryRow(ctx, `SELECT items, processed FROM orders WHERE id = $1 FOR UPDATE`, id).Scan(&itemsRaw, &processed)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, models.ErrOrderNotFound
	}
	if err != nil {
		return false, err
	}

	items, err := models.DecodeItems(itemsRaw)
	if err != nil {
		return false, err
	}
	if err := models.ServeItem(items, index, admin); err != nil {
		return false, err
	}
	encoded, err := models.EncodeItems(items)
	if err != nil {
		return false, err
	}
	if _, err := tx.Exec(ctx, `UPDATE orders SET items = $1 WHERE id = $2`, encoded, id); err != nil {
		return false, err
	}
	return processed, tx.Commit(ctx)
}

// Complete attributes every unserved item to "system" and marks the order
// processed, under the same row lock as ServeItem.
func (s *OrderStore) Complete(ctx context.Context, id int) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var itemsRaw string
	err = tx.QueryRow(ctx, `SELECT items FROM orders WHERE id = $1 FOR UPDATE`, id).Scan(&itemsRaw)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.ErrOrderNotFound
	}
	if err != nil {
		return err
	}

	items, err := models.DecodeItems(itemsRaw)
	if err != nil {
		return err
	}
	models.CompleteItems(items)
	encoded, err := models.EncodeItems(items)
	if err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `UPDATE orders SET items = $1, processed = TRUE WHERE id = $2`, encoded, id); err != nil {
		return err
	}
	return tx.Commit(ctx)
}
