package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"border-blur/internal/models"
)

// Repository persists assembled borough boundaries in PostgreSQL.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL repository.
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// EnsureSchema creates the boundary table if it does not exist.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	query := `
	CREATE TABLE IF NOT EXISTS region_boundaries (
		name TEXT PRIMARY KEY,
		full_ring JSONB NOT NULL,
		simplified_ring JSONB NOT NULL,
		loaded_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	`
	if _, err := r.db.Exec(ctx, query); err != nil {
		return fmt.Errorf("repository: failed to create schema: %w", err)
	}
	return nil
}

// SaveBoundaries upserts one record per borough in a single transaction, so
// a partial refresh never mixes old and new boundary sets.
func (r *Repository) SaveBoundaries(ctx context.Context, records []models.BoundaryRecord) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("repository: failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	sql := `
		INSERT INTO region_boundaries (name, full_ring, simplified_ring, loaded_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (name) DO UPDATE SET
			full_ring = EXCLUDED.full_ring,
			simplified_ring = EXCLUDED.simplified_ring,
			loaded_at = EXCLUDED.loaded_at
	`
	for _, rec := range records {
		full, err := json.Marshal(rec.FullRing)
		if err != nil {
			return fmt.Errorf("repository: failed to encode full ring for %s: %w", rec.Name, err)
		}
		simplified, err := json.Marshal(rec.SimplifiedRing)
		if err != nil {
			return fmt.Errorf("repository: failed to encode simplified ring for %s: %w", rec.Name, err)
		}
		if _, err := tx.Exec(ctx, sql, rec.Name, full, simplified); err != nil {
			return fmt.Errorf("repository: failed to upsert boundary %s: %w", rec.Name, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("repository: failed to commit boundaries: %w", err)
	}
	return nil
}

// LoadBoundaries reads every persisted boundary record.
func (r *Repository) LoadBoundaries(ctx context.Context) ([]models.BoundaryRecord, error) {
	rows, err := r.db.Query(ctx, `SELECT name, full_ring, simplified_ring FROM region_boundaries ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to query boundaries: %w", err)
	}
	defer rows.Close()

	var records []models.BoundaryRecord
	for rows.Next() {
		var rec models.BoundaryRecord
		var full, simplified []byte
		if err := rows.Scan(&rec.Name, &full, &simplified); err != nil {
			return nil, fmt.Errorf("repository: failed to scan boundary: %w", err)
		}
		if err := json.Unmarshal(full, &rec.FullRing); err != nil {
			return nil, fmt.Errorf("repository: failed to decode full ring for %s: %w", rec.Name, err)
		}
		if err := json.Unmarshal(simplified, &rec.SimplifiedRing); err != nil {
			return nil, fmt.Errorf("repository: failed to decode simplified ring for %s: %w", rec.Name, err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating rows: %w", err)
	}
	return records, nil
}
