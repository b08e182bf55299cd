package domain

import "fmt"

type Season string

const (
	SeasonSpring Season = "spring"
	SeasonSummer Season = "summer"
	SeasonFall   Season = "fall"
	SeasonWinter Season = "winter"
)

// ValidSeasons is the canonical set of accepted season strings.
var ValidSeasons = map[string]bool{
	"spring": true, "summer": true, "fall": true, "winter": true,
}

// ParseSeason converts a string into a Season, rejecting unknown values.
func ParseSeason(s string) (Season, error) {
	if !ValidSeasons[s] {
		return "", fmt.Errorf("season %q must be one of spring, summer, fall, winter: %w", s, ErrRange)
	}
	return Season(s), nil
}

// Need is the advisory 1-3 scale used for water and sun requirements.
type Need int

const (
	NeedLow    Need = 1
	NeedMedium Need = 2
	NeedHigh   Need = 3
)

func (n Need) Valid() bool {
	return n >= NeedLow && n <= NeedHigh
}

func (n Need) String() string {
	switch n {
	case NeedLow:
		return "low"
	case NeedMedium:
		return "medium"
	case NeedHigh:
		return "high"
	default:
		return fmt.Sprintf("need(%d)", int(n))
	}
}

// Grid and calendar bounds.
const (
	MinGridSize = 3
	MaxGridSize = 50
	MinWeek     = 1
	MaxWeek     = 52
)
