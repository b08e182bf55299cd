package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/gardenplan/internal/db"
	"github.com/alexanderramin/gardenplan/internal/domain"
)

// SQLiteGardenRepo implements GardenRepo using a SQLite database.
type SQLiteGardenRepo struct {
	db db.DBTX
}

func NewSQLiteGardenRepo(db db.DBTX) *SQLiteGardenRepo {
	return &SQLiteGardenRepo{db: db}
}

func (r *SQLiteGardenRepo) Get(ctx context.Context) (*GardenRecord, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT name, grid_width, grid_height, current_week, updated_at FROM garden WHERE id = 1`)

	var g GardenRecord
	var updatedAt string
	err := row.Scan(&g.Name, &g.GridSize.Width, &g.GridSize.Height, &g.CurrentWeek, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("garden: %w", domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("scanning garden: %w", err)
	}
	if t, err := time.Parse(time.RFC3339, updatedAt); err == nil {
		g.UpdatedAt = t
	}
	return &g, nil
}

func (r *SQLiteGardenRepo) Upsert(ctx context.Context, g GardenRecord) error {
	query := `INSERT INTO garden (id, name, grid_width, grid_height, current_week, updated_at)
		VALUES (1, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			grid_width = excluded.grid_width,
			grid_height = excluded.grid_height,
			current_week = excluded.current_week,
			updated_at = excluded.updated_at`
	_, err := r.db.ExecContext(ctx, query,
		g.Name, g.GridSize.Width, g.GridSize.Height, g.CurrentWeek, nowUTC())
	if err != nil {
		return fmt.Errorf("saving garden: %w", err)
	}
	return nil
}
