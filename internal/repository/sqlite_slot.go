package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/gardenplan/internal/db"
	"github.com/alexanderramin/gardenplan/internal/domain"
)

// SQLiteSlotRepo implements SlotRepo using a SQLite database.
type SQLiteSlotRepo struct {
	db db.DBTX
}

func NewSQLiteSlotRepo(db db.DBTX) *SQLiteSlotRepo {
	return &SQLiteSlotRepo{db: db}
}

func (r *SQLiteSlotRepo) Create(ctx context.Context, bedID string, s domain.Slot, seq int) error {
	query := `INSERT INTO slots (id, bed_id, seq, number, x, y, width, height) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		s.ID, bedID, seq, s.Number, s.Position.X, s.Position.Y, s.Size.Width, s.Size.Height)
	if err != nil {
		return fmt.Errorf("inserting slot: %w", err)
	}
	return nil
}

func (r *SQLiteSlotRepo) ListByBed(ctx context.Context, bedID string) ([]domain.Slot, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT bed_id, id, number, x, y, width, height FROM slots WHERE bed_id = ? ORDER BY seq`, bedID)
	if err != nil {
		return nil, fmt.Errorf("listing slots: %w", err)
	}
	recs, err := collectSlots(rows)
	if err != nil {
		return nil, err
	}
	var slots []domain.Slot
	for _, rec := range recs {
		slots = append(slots, rec.Slot)
	}
	return slots, nil
}

// ListAll returns every slot ordered by bed and position within the bed.
func (r *SQLiteSlotRepo) ListAll(ctx context.Context) ([]SlotRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT bed_id, id, number, x, y, width, height FROM slots ORDER BY bed_id, seq`)
	if err != nil {
		return nil, fmt.Errorf("listing slots: %w", err)
	}
	return collectSlots(rows)
}

func collectSlots(rows *sql.Rows) ([]SlotRecord, error) {
	defer rows.Close()

	var out []SlotRecord
	for rows.Next() {
		var rec SlotRecord
		s := &rec.Slot
		if err := rows.Scan(&rec.BedID, &s.ID, &s.Number, &s.Position.X, &s.Position.Y, &s.Size.Width, &s.Size.Height); err != nil {
			return nil, fmt.Errorf("scanning slot: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating slots: %w", err)
	}
	return out, nil
}
