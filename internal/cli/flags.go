package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/gardenplan/internal/domain"
	"github.com/spf13/pflag"
)

var (
	_ pflag.Value = (*pointValue)(nil)
	_ pflag.Value = (*weekValue)(nil)
)

// pointValue is a grid cell flag written as "x,y".
type pointValue struct {
	pos domain.Position
	set bool
}

func (v *pointValue) String() string {
	if !v.set {
		return ""
	}
	return fmt.Sprintf("%d,%d", v.pos.X, v.pos.Y)
}

func (v *pointValue) Set(s string) error {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return fmt.Errorf("want x,y, got %q", s)
	}
	x, errX := strconv.Atoi(strings.TrimSpace(parts[0]))
	y, errY := strconv.Atoi(strings.TrimSpace(parts[1]))
	if errX != nil || errY != nil {
		return fmt.Errorf("want whole numbers x,y, got %q", s)
	}
	if x < 0 || y < 0 {
		return fmt.Errorf("cell %d,%d must not be negative", x, y)
	}
	v.pos = domain.Position{X: x, Y: y}
	v.set = true
	return nil
}

func (v *pointValue) Type() string { return "x,y" }

// weekValue is a week-of-year flag. "12" and "W12" are both accepted.
type weekValue struct {
	week int
}

func (v *weekValue) String() string {
	if v.week == 0 {
		return ""
	}
	return strconv.Itoa(v.week)
}

func (v *weekValue) Set(s string) error {
	w, err := parseWeek(s)
	if err != nil {
		return err
	}
	v.week = w
	return nil
}

func (v *weekValue) Type() string { return "week" }

// or returns the flag value, or fallback when the flag was not given.
func (v *weekValue) or(fallback int) int {
	if v.week == 0 {
		return fallback
	}
	return v.week
}

func parseWeek(s string) (int, error) {
	trimmed := strings.TrimPrefix(strings.TrimPrefix(strings.TrimSpace(s), "W"), "w")
	w, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, fmt.Errorf("week %q is not a number", s)
	}
	if err := domain.ValidateWeek(w); err != nil {
		return 0, err
	}
	return w, nil
}

// rectFlags turns --from/--to into a rectangle. A missing --to means a
// single cell.
func rectFlags(from, to *pointValue) (domain.Rect, error) {
	if !from.set {
		return domain.Rect{}, fmt.Errorf("--from is required")
	}
	end := from.pos
	if to.set {
		end = to.pos
	}
	return domain.NormalizeRectangle(from.pos, end), nil
}

func addRectFlags(fs *pflag.FlagSet, from, to *pointValue, what string) {
	fs.Var(from, "from", fmt.Sprintf("First corner cell of the %s", what))
	fs.Var(to, "to", fmt.Sprintf("Opposite corner cell of the %s (defaults to --from)", what))
}
