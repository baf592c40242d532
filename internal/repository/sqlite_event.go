package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/yatri/internal/domain"
)

// SQLiteEventRepo implements EventRepo using a SQLite database.
type SQLiteEventRepo struct {
	db *sql.DB
}

// NewSQLiteEventRepo creates a new SQLiteEventRepo.
func NewSQLiteEventRepo(db *sql.DB) *SQLiteEventRepo {
	return &SQLiteEventRepo{db: db}
}

// ListUpcoming returns approved events starting strictly after from, matching
// how the planner filters its event pool.
func (r *SQLiteEventRepo) ListUpcoming(ctx context.Context, destination string, from time.Time) ([]domain.Event, error) {
	query := `SELECT id, title, description, category, price, start_time, end_time, lat, lon
		FROM events
		WHERE destination = ? AND approved = 1 AND start_time > ?
		ORDER BY start_time, id`
	rows, err := r.db.QueryContext(ctx, query, destination, from.UTC().Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("listing upcoming events: %w", err)
	}
	defer rows.Close()

	var out []domain.Event
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating events: %w", err)
	}
	return out, nil
}

func scanEvent(rows *sql.Rows) (*domain.Event, error) {
	var e domain.Event
	var start, end string
	if err := rows.Scan(&e.ID, &e.Title, &e.Description, &e.Category, &e.Price,
		&start, &end, &e.Location.Lat, &e.Location.Lon); err != nil {
		return nil, fmt.Errorf("scanning event: %w", err)
	}
	var err error
	if e.StartTime, err = time.Parse(time.RFC3339, start); err != nil {
		return nil, fmt.Errorf("parsing event start time: %w", err)
	}
	if e.EndTime, err = time.Parse(time.RFC3339, end); err != nil {
		return nil, fmt.Errorf("parsing event end time: %w", err)
	}
	return &e, nil
}

func (r *SQLiteEventRepo) Seed(ctx context.Context, destination string, events []domain.Event) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting seed transaction: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT OR REPLACE INTO events
		(id, destination, title, description, category, price, start_time, end_time, lat, lon, approved, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, 1, ?)`
	now := time.Now().UTC().Format(time.RFC3339)
	for _, e := range events {
		if _, err := tx.ExecContext(ctx, query,
			e.ID, destination, e.Title, e.Description, string(e.Category), int64(e.Price),
			e.StartTime.UTC().Format(time.RFC3339), e.EndTime.UTC().Format(time.RFC3339),
			e.Location.Lat, e.Location.Lon, now,
		); err != nil {
			return fmt.Errorf("inserting event %s: %w", e.ID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing seed: %w", err)
	}
	return nil
}
