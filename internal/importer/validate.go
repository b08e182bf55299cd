package importer

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/gardenplan/internal/domain"
)

// ValidationError collects every problem found in an import document.
type ValidationError struct {
	Errs []error
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "import validation failed (%d errors):", len(e.Errs))
	for _, err := range e.Errs {
		b.WriteString("\n  - ")
		b.WriteString(err.Error())
	}
	return b.String()
}

func (e *ValidationError) Unwrap() error { return domain.ErrFormat }

// ValidateGardenExport checks a decoded document before conversion and
// returns all validation errors found. Plant-only documents are lenient:
// entries without a name or image are dropped during conversion instead.
func ValidateGardenExport(e *GardenExport) []error {
	if e.Kind() == PlantsOnly {
		return nil
	}
	var errs []error

	errs = append(errs, validateGarden(e.Garden)...)
	errs = append(errs, validatePlants(e.Plants)...)

	if e.CurrentWeek != 0 && (e.CurrentWeek < domain.MinWeek || e.CurrentWeek > domain.MaxWeek) {
		errs = append(errs, fmt.Errorf("currentWeek %d must be between %d and %d", e.CurrentWeek, domain.MinWeek, domain.MaxWeek))
	}
	return errs
}

func validateGarden(g *GardenSchema) []error {
	var errs []error

	if g.GridSize.Width < domain.MinGridSize || g.GridSize.Width > domain.MaxGridSize {
		errs = append(errs, fmt.Errorf("garden.gridSize.width %d must be between %d and %d", g.GridSize.Width, domain.MinGridSize, domain.MaxGridSize))
	}
	if g.GridSize.Height < domain.MinGridSize || g.GridSize.Height > domain.MaxGridSize {
		errs = append(errs, fmt.Errorf("garden.gridSize.height %d must be between %d and %d", g.GridSize.Height, domain.MinGridSize, domain.MaxGridSize))
	}

	bedIDs := make(map[string]bool)
	slotIDs := make(map[string]bool)
	for i, b := range g.Beds {
		prefix := fmt.Sprintf("garden.beds[%d]", i)
		if b.ID == "" {
			errs = append(errs, fmt.Errorf("%s.id is required", prefix))
		} else if bedIDs[b.ID] {
			errs = append(errs, fmt.Errorf("%s.id %q is duplicated", prefix, b.ID))
		}
		bedIDs[b.ID] = true
		errs = append(errs, validateSize(prefix, b.Size)...)

		for j, s := range b.Slots {
			sp := fmt.Sprintf("%s.slots[%d]", prefix, j)
			if s.ID == "" {
				errs = append(errs, fmt.Errorf("%s.id is required", sp))
			} else if slotIDs[s.ID] {
				errs = append(errs, fmt.Errorf("%s.id %q is duplicated", sp, s.ID))
			}
			slotIDs[s.ID] = true
			errs = append(errs, validateSize(sp, s.Size)...)
			errs = append(errs, validatePlantings(sp, s.Plantings)...)
		}
	}
	return errs
}

func validateSize(prefix string, s SizeSchema) []error {
	if s.Width < 1 || s.Height < 1 {
		return []error{fmt.Errorf("%s.size %dx%d must be at least 1x1", prefix, s.Width, s.Height)}
	}
	return nil
}

func validatePlantings(prefix string, plantings []PlantingSchema) []error {
	var errs []error
	var accepted []domain.Planting
	for k, p := range plantings {
		pp := fmt.Sprintf("%s.plantings[%d]", prefix, k)
		if p.Plant == "" {
			errs = append(errs, fmt.Errorf("%s.plant is required", pp))
		}
		if p.StartWeek < domain.MinWeek || p.EndWeek > domain.MaxWeek || p.StartWeek > p.EndWeek {
			errs = append(errs, fmt.Errorf("%s weeks %d-%d must satisfy %d <= start <= end <= %d",
				pp, p.StartWeek, p.EndWeek, domain.MinWeek, domain.MaxWeek))
			continue
		}
		if conflict, ok := domain.Overlaps(accepted, p.StartWeek, p.EndWeek); ok {
			errs = append(errs, fmt.Errorf("%s weeks %d-%d overlap %s (%s)", pp, p.StartWeek, p.EndWeek,
				conflict.Plant, domain.FormatWeekRange(conflict.StartWeek, conflict.EndWeek)))
			continue
		}
		accepted = append(accepted, domain.Planting{Plant: p.Plant, StartWeek: p.StartWeek, EndWeek: p.EndWeek})
	}
	return errs
}

func validatePlants(plants []PlantSchema) []error {
	var errs []error
	seen := make(map[string]bool)
	for i, p := range plants {
		prefix := fmt.Sprintf("plants[%d]", i)
		if strings.TrimSpace(p.Name) == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", prefix))
			continue
		}
		if seen[p.Name] {
			errs = append(errs, fmt.Errorf("%s.name %q is duplicated", prefix, p.Name))
		}
		seen[p.Name] = true
		if p.Season != "" && !domain.ValidSeasons[p.Season] {
			errs = append(errs, fmt.Errorf("%s.season: invalid value %q", prefix, p.Season))
		}
	}
	return errs
}
