package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/gardenplan/internal/db"
	"github.com/alexanderramin/gardenplan/internal/domain"
)

// SQLitePlantingRepo implements PlantingRepo using a SQLite database.
// Plantings reference plants by name without a foreign key, so a planting
// may outlive its plant.
type SQLitePlantingRepo struct {
	db db.DBTX
}

func NewSQLitePlantingRepo(db db.DBTX) *SQLitePlantingRepo {
	return &SQLitePlantingRepo{db: db}
}

func (r *SQLitePlantingRepo) Create(ctx context.Context, slotID string, p domain.Planting, seq int) error {
	query := `INSERT INTO plantings (slot_id, seq, plant, start_week, end_week) VALUES (?, ?, ?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query, slotID, seq, p.Plant, p.StartWeek, p.EndWeek); err != nil {
		return fmt.Errorf("inserting planting: %w", err)
	}
	return nil
}

func (r *SQLitePlantingRepo) ListBySlot(ctx context.Context, slotID string) ([]domain.Planting, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT slot_id, plant, start_week, end_week FROM plantings WHERE slot_id = ? ORDER BY seq`, slotID)
	if err != nil {
		return nil, fmt.Errorf("listing plantings: %w", err)
	}
	recs, err := collectPlantings(rows)
	if err != nil {
		return nil, err
	}
	var out []domain.Planting
	for _, rec := range recs {
		out = append(out, rec.Planting)
	}
	return out, nil
}

func (r *SQLitePlantingRepo) ListAll(ctx context.Context) ([]PlantingRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT slot_id, plant, start_week, end_week FROM plantings ORDER BY slot_id, seq`)
	if err != nil {
		return nil, fmt.Errorf("listing plantings: %w", err)
	}
	return collectPlantings(rows)
}

// CountByPlant reports how many plantings reference plant by name.
func (r *SQLitePlantingRepo) CountByPlant(ctx context.Context, plant string) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM plantings WHERE plant = ?`, plant).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting plantings: %w", err)
	}
	return n, nil
}

func collectPlantings(rows *sql.Rows) ([]PlantingRecord, error) {
	defer rows.Close()

	var out []PlantingRecord
	for rows.Next() {
		var rec PlantingRecord
		p := &rec.Planting
		if err := rows.Scan(&rec.SlotID, &p.Plant, &p.StartWeek, &p.EndWeek); err != nil {
			return nil, fmt.Errorf("scanning planting: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating plantings: %w", err)
	}
	return out, nil
}
