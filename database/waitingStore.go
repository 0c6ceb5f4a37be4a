package database

import (
	"context"
	"errors"

	"go-stall-management/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type WaitingStore struct {
	pool *pgxpool.Pool
}

func NewWaitingStore(pool *pgxpool.Pool) *WaitingStore {
	return &WaitingStore{pool: pool}
}

func (s *WaitingStore) Insert(ctx context.Context, entry models.Waiting) (models.Waiting, error) {
	err := s.pool.QueryRow(ctx,
		`INSERT INTO waiting (name, phone, table_size, timestamp, consent)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		entry.Name, entry.Phone, entry.Table_size, entry.Timestamp, entry.Consent).Scan(&entry.ID)
	if err != nil {
		return models.Waiting{}, err
	}
	return entry, nil
}

func (s *WaitingStore) List(ctx context.Context) ([]models.Waiting, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, name, phone, table_size, timestamp, consent FROM waiting ORDER BY timestamp`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []models.Waiting{}
	for rows.Next() {
		var e models.Waiting
		if err := rows.Scan(&e.ID, &e.Name, &e.Phone, &e.Table_size, &e.Timestamp, &e.Consent); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *WaitingStore) Get(ctx context.Context, id int) (models.Waiting, error) {
	var e models.Waiting
	err := s.pool.QueryRow(ctx,
		`SELECT id, name, phone, table_size, timestamp, consent FROM waiting WHERE id = $1`, id).
		Scan(&e.ID, &e.Name, &e.Phone, &e.Table_size, &e.Timestamp, &e.Consent)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Waiting{}, models.ErrEntryNotFound
	}
	if err != nil {
		return models.Waiting{}, err
	}
	return e, nil
}

func (s *WaitingStore) Delete(ctx context.Context, id int) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM waiting WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrEntryNotFound
	}
	return nil
}
