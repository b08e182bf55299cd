package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/gardenplan/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
	ColorSoil   = lipgloss.Color("#504945")
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)

	// StyleCursor marks the selected cell in the interactive viewer.
	StyleCursor = lipgloss.NewStyle().Reverse(true)
)

// BorderStyle colors a grid edge by what it separates.
func BorderStyle(kind domain.BorderKind) lipgloss.Style {
	switch kind {
	case domain.BorderSlot:
		return StyleGreen
	case domain.BorderBed:
		return StyleYellow
	default:
		return StyleDim
	}
}

// NeedBadge renders a water or sun need as filled dots, e.g. "●●○".
func NeedBadge(n domain.Need) string {
	if !n.Valid() {
		return StyleDim.Render("---")
	}
	filled := strings.Repeat("●", int(n))
	empty := strings.Repeat("○", int(domain.NeedHigh)-int(n))
	style := StyleBlue
	if n == domain.NeedHigh {
		style = StyleYellow
	}
	return style.Render(filled) + StyleDim.Render(empty)
}

// SeasonBadge renders a season name in its own color.
func SeasonBadge(s domain.Season) string {
	switch s {
	case domain.SeasonSpring:
		return StyleGreen.Render("spring")
	case domain.SeasonSummer:
		return StyleYellow.Render("summer")
	case domain.SeasonFall:
		return StyleHeader.Render("fall")
	case domain.SeasonWinter:
		return StyleBlue.Render("winter")
	default:
		return StyleDim.Render("--")
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}
