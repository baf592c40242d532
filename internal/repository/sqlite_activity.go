package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/yatri/internal/domain"
)

// SQLiteActivityRepo implements ActivityRepo using a SQLite database.
type SQLiteActivityRepo struct {
	db *sql.DB
}

// NewSQLiteActivityRepo creates a new SQLiteActivityRepo.
func NewSQLiteActivityRepo(db *sql.DB) *SQLiteActivityRepo {
	return &SQLiteActivityRepo{db: db}
}

func (r *SQLiteActivityRepo) ListByDestination(ctx context.Context, destination string) ([]domain.Activity, error) {
	query := `SELECT id, name, category, tier, rating, lat, lon
		FROM activities WHERE destination = ? ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, destination)
	if err != nil {
		return nil, fmt.Errorf("listing activities: %w", err)
	}
	defer rows.Close()

	var out []domain.Activity
	for rows.Next() {
		var a domain.Activity
		if err := rows.Scan(&a.ID, &a.Name, &a.Category, &a.Tier, &a.Rating,
			&a.Location.Lat, &a.Location.Lon); err != nil {
			return nil, fmt.Errorf("scanning activity: %w", err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating activities: %w", err)
	}
	return out, nil
}

func (r *SQLiteActivityRepo) Seed(ctx context.Context, destination string, activities []domain.Activity) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting seed transaction: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT OR REPLACE INTO activities
		(id, destination, name, category, tier, rating, lat, lon, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	now := time.Now().UTC().Format(time.RFC3339)
	for _, a := range activities {
		if _, err := tx.ExecContext(ctx, query,
			a.ID, destination, a.Name, string(a.Category), string(a.Tier),
			a.Rating, a.Location.Lat, a.Location.Lon, now,
		); err != nil {
			return fmt.Errorf("inserting activity %s: %w", a.ID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing seed: %w", err)
	}
	return nil
}
