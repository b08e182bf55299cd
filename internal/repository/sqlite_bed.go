package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/gardenplan/internal/db"
	"github.com/alexanderramin/gardenplan/internal/domain"
)

// SQLiteBedRepo implements BedRepo. It stores bed geometry only; slots live
// in SQLiteSlotRepo.
type SQLiteBedRepo struct {
	db db.DBTX
}

func NewSQLiteBedRepo(db db.DBTX) *SQLiteBedRepo {
	return &SQLiteBedRepo{db: db}
}

func (r *SQLiteBedRepo) Create(ctx context.Context, b domain.Bed, seq int) error {
	query := `INSERT INTO beds (id, seq, name, x, y, width, height) VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		b.ID, seq, b.Name, b.Position.X, b.Position.Y, b.Size.Width, b.Size.Height)
	if err != nil {
		return fmt.Errorf("inserting bed: %w", err)
	}
	return nil
}

func (r *SQLiteBedRepo) GetByID(ctx context.Context, id string) (domain.Bed, error) {
	row := r.db.QueryRowContext(ctx, `SELECT id, name, x, y, width, height FROM beds WHERE id = ?`, id)
	b, err := scanBed(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Bed{}, fmt.Errorf("bed %s: %w", id, domain.ErrNotFound)
	}
	return b, err
}

func (r *SQLiteBedRepo) List(ctx context.Context) ([]domain.Bed, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, x, y, width, height FROM beds ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("listing beds: %w", err)
	}
	defer rows.Close()

	var beds []domain.Bed
	for rows.Next() {
		b, err := scanBed(rows)
		if err != nil {
			return nil, err
		}
		beds = append(beds, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating beds: %w", err)
	}
	return beds, nil
}

// DeleteAll removes every bed; slots and plantings go with them.
func (r *SQLiteBedRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM beds`); err != nil {
		return fmt.Errorf("clearing beds: %w", err)
	}
	return nil
}

func scanBed(s scanner) (domain.Bed, error) {
	var b domain.Bed
	err := s.Scan(&b.ID, &b.Name, &b.Position.X, &b.Position.Y, &b.Size.Width, &b.Size.Height)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return b, fmt.Errorf("scanning bed: %w", err)
	}
	return b, err
}
