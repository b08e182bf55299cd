package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/gardenplan/internal/cli/formatter"
	"github.com/alexanderramin/gardenplan/internal/domain"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// gardenHuhTheme returns a huh theme using the Gruvbox palette.
func gardenHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// plantFormValues backs the interactive plant form. Numeric fields stay
// strings until toPlant so the inputs can be edited freely.
type plantFormValues struct {
	Name      string
	Image     string
	Growth    string
	Water     domain.Need
	Sun       domain.Need
	Season    string
	Family    string
	Spacing   string
	Companion string
	Avoid     string
}

func newPlantFormValues() *plantFormValues {
	return &plantFormValues{
		Water:  domain.NeedMedium,
		Sun:    domain.NeedMedium,
		Season: string(domain.SeasonSpring),
	}
}

// newPlantForm collects a new library plant. Names already in the library
// are rejected by the name field.
func newPlantForm(v *plantFormValues, existing domain.PlantLibrary) *huh.Form {
	needOptions := []huh.Option[domain.Need]{
		huh.NewOption("low", domain.NeedLow),
		huh.NewOption("medium", domain.NeedMedium),
		huh.NewOption("high", domain.NeedHigh),
	}
	seasonOptions := []huh.Option[string]{
		huh.NewOption("spring", string(domain.SeasonSpring)),
		huh.NewOption("summer", string(domain.SeasonSummer)),
		huh.NewOption("fall", string(domain.SeasonFall)),
		huh.NewOption("winter", string(domain.SeasonWinter)),
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Plant Name").
				Value(&v.Name).
				Validate(validateNewPlantName(existing)),
			huh.NewInput().
				Title("Icon (emoji)").
				Placeholder("🌱").
				Value(&v.Image),
			huh.NewInput().
				Title("Growth Duration (weeks)").
				Placeholder("8").
				Value(&v.Growth).
				Validate(validateGrowthWeeks),
		),
		huh.NewGroup(
			huh.NewSelect[domain.Need]().Title("Water Need").Options(needOptions...).Value(&v.Water),
			huh.NewSelect[domain.Need]().Title("Sun Need").Options(needOptions...).Value(&v.Sun),
			huh.NewSelect[string]().Title("Season").Options(seasonOptions...).Value(&v.Season),
		),
		huh.NewGroup(
			huh.NewInput().Title("Family").Placeholder("Brassicaceae").Value(&v.Family),
			huh.NewInput().Title("Spacing (cm)").Value(&v.Spacing).Validate(validateSpacing),
			huh.NewInput().Title("Good Neighbours (comma separated)").Value(&v.Companion),
			huh.NewInput().Title("Bad Neighbours (comma separated)").Value(&v.Avoid),
		),
	).WithTheme(gardenHuhTheme()).WithShowHelp(false)
}

// toPlant converts validated form input into a plant record.
func (v *plantFormValues) toPlant() domain.Plant {
	growth, _ := strconv.Atoi(strings.TrimSpace(v.Growth))
	spacing, _ := strconv.Atoi(strings.TrimSpace(v.Spacing))
	return domain.Plant{
		Name:               strings.TrimSpace(v.Name),
		Image:              strings.TrimSpace(v.Image),
		WaterNeed:          v.Water,
		SunNeed:            v.Sun,
		Season:             domain.Season(v.Season),
		PlantFamily:        strings.TrimSpace(v.Family),
		GrowthDuration:     growth,
		SpacingCm:          spacing,
		CompanionPlants:    splitNameList(v.Companion),
		IncompatiblePlants: splitNameList(v.Avoid),
	}
}

func validateNewPlantName(existing domain.PlantLibrary) func(string) error {
	return func(s string) error {
		name := strings.TrimSpace(s)
		if name == "" {
			return fmt.Errorf("name is required")
		}
		if existing.Has(name) {
			return fmt.Errorf("%s is already in the library", name)
		}
		return nil
	}
}

func validateGrowthWeeks(s string) error {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v < 1 || v > domain.MaxWeek {
		return fmt.Errorf("enter a number of weeks between 1 and %d", domain.MaxWeek)
	}
	return nil
}

func validateSpacing(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v < 0 {
		return fmt.Errorf("enter a non-negative number")
	}
	return nil
}

// splitNameList splits a comma separated list, dropping blanks.
func splitNameList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
