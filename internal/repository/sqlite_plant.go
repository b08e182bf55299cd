package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/gardenplan/internal/db"
	"github.com/alexanderramin/gardenplan/internal/domain"
)

// SQLitePlantRepo implements PlantRepo using a SQLite database.
type SQLitePlantRepo struct {
	db db.DBTX
}

func NewSQLitePlantRepo(db db.DBTX) *SQLitePlantRepo {
	return &SQLitePlantRepo{db: db}
}

const plantColumns = `name, image, planting_months, harvest_months, water_need, sun_need,
	incompatible_plants, companion_plants, growth_duration, spacing_cm, plant_family, season, succession_interval`

func (r *SQLitePlantRepo) Create(ctx context.Context, p domain.Plant, seq int) error {
	planting, err := encodeList(p.PlantingMonths)
	if err != nil {
		return fmt.Errorf("encoding planting months: %w", err)
	}
	harvest, err := encodeList(p.HarvestMonths)
	if err != nil {
		return fmt.Errorf("encoding harvest months: %w", err)
	}
	incompatible, err := encodeList(p.IncompatiblePlants)
	if err != nil {
		return fmt.Errorf("encoding incompatible plants: %w", err)
	}
	companion, err := encodeList(p.CompanionPlants)
	if err != nil {
		return fmt.Errorf("encoding companion plants: %w", err)
	}

	query := `INSERT INTO plants (seq, ` + plantColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		seq,
		p.Name,
		p.Image,
		planting,
		harvest,
		int(p.WaterNeed),
		int(p.SunNeed),
		incompatible,
		companion,
		p.GrowthDuration,
		p.SpacingCm,
		p.PlantFamily,
		string(p.Season),
		p.SuccessionInterval,
	)
	if err != nil {
		return fmt.Errorf("inserting plant: %w", err)
	}
	return nil
}

func (r *SQLitePlantRepo) GetByName(ctx context.Context, name string) (domain.Plant, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+plantColumns+` FROM plants WHERE name = ?`, name)
	p, err := scanPlant(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Plant{}, fmt.Errorf("plant %q: %w", name, domain.ErrNotFound)
	}
	return p, err
}

func (r *SQLitePlantRepo) List(ctx context.Context) ([]domain.Plant, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+plantColumns+` FROM plants ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("listing plants: %w", err)
	}
	defer rows.Close()

	var plants []domain.Plant
	for rows.Next() {
		p, err := scanPlant(rows)
		if err != nil {
			return nil, err
		}
		plants = append(plants, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating plants: %w", err)
	}
	return plants, nil
}

func (r *SQLitePlantRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM plants`); err != nil {
		return fmt.Errorf("clearing plants: %w", err)
	}
	return nil
}

func scanPlant(s scanner) (domain.Plant, error) {
	var p domain.Plant
	var planting, harvest, incompatible, companion, season string
	var water, sun int
	err := s.Scan(
		&p.Name,
		&p.Image,
		&planting,
		&harvest,
		&water,
		&sun,
		&incompatible,
		&companion,
		&p.GrowthDuration,
		&p.SpacingCm,
		&p.PlantFamily,
		&season,
		&p.SuccessionInterval,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return p, err
		}
		return p, fmt.Errorf("scanning plant: %w", err)
	}
	p.WaterNeed = domain.Need(water)
	p.SunNeed = domain.Need(sun)
	p.Season = domain.Season(season)

	if p.PlantingMonths, err = decodeList[int](planting, "planting_months"); err != nil {
		return p, err
	}
	if p.HarvestMonths, err = decodeList[int](harvest, "harvest_months"); err != nil {
		return p, err
	}
	if p.IncompatiblePlants, err = decodeList[string](incompatible, "incompatible_plants"); err != nil {
		return p, err
	}
	if p.CompanionPlants, err = decodeList[string](companion, "companion_plants"); err != nil {
		return p, err
	}
	return p, nil
}
