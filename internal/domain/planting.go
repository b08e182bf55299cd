package domain

import "fmt"

// Planting occupies a slot for the inclusive week range [StartWeek, EndWeek].
// Plant refers to a library entry by name and may dangle.
type Planting struct {
	Plant     string
	StartWeek int
	EndWeek   int
}

// ActiveIn reports whether the planting covers week.
func (p Planting) ActiveIn(week int) bool {
	return week >= p.StartWeek && week <= p.EndWeek
}

// Intersects reports whether the inclusive range [start, end] shares at least
// one week with p.
func (p Planting) Intersects(start, end int) bool {
	return start <= p.EndWeek && end >= p.StartWeek
}

// Weeks is the number of weeks the planting covers.
func (p Planting) Weeks() int {
	return p.EndWeek - p.StartWeek + 1
}

// ValidateWeek rejects weeks outside the planning calendar.
func ValidateWeek(week int) error {
	if week < MinWeek || week > MaxWeek {
		return fmt.Errorf("week %d must be between %d and %d: %w", week, MinWeek, MaxWeek, ErrRange)
	}
	return nil
}

// ComputePlantingPeriod returns the planting a plant would occupy when sown
// in startWeek. The end week is clamped to the last week of the year.
func ComputePlantingPeriod(startWeek int, plant Plant) (Planting, error) {
	if err := ValidateWeek(startWeek); err != nil {
		return Planting{}, err
	}
	if plant.GrowthDuration < 1 {
		return Planting{}, fmt.Errorf("plant %q has growth duration %d, need at least 1 week: %w",
			plant.Name, plant.GrowthDuration, ErrRange)
	}
	return Planting{
		Plant:     plant.Name,
		StartWeek: startWeek,
		EndWeek:   min(MaxWeek, startWeek+plant.GrowthDuration-1),
	}, nil
}

// Overlaps returns the first existing planting whose range intersects
// [start, end].
func Overlaps(existing []Planting, start, end int) (Planting, bool) {
	for _, p := range existing {
		if p.Intersects(start, end) {
			return p, true
		}
	}
	return Planting{}, false
}

// ActivePlantingForWeek returns the first planting in list order that covers
// week.
func ActivePlantingForWeek(plantings []Planting, week int) (Planting, bool) {
	for _, p := range plantings {
		if p.ActiveIn(week) {
			return p, true
		}
	}
	return Planting{}, false
}

// FormatWeekRange renders a range as "W3-W12", or "W7" for a single week.
func FormatWeekRange(start, end int) string {
	if start == end {
		return fmt.Sprintf("W%d", start)
	}
	return fmt.Sprintf("W%d-W%d", start, end)
}
