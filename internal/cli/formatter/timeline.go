package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/gardenplan/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// RenderTimeline draws one row per slot and two columns per week between
// from and to inclusive. The current week column is highlighted.
func RenderTimeline(st domain.GardenState, from, to, current int) string {
	refs := st.Garden.SlotRefs()
	if len(refs) == 0 {
		return Dim("No slots yet. Add a bed and a slot to see the timeline.") + "\n"
	}
	from = max(from, domain.MinWeek)
	to = min(to, domain.MaxWeek)

	labelWidth := lipgloss.Width("Slot")
	for _, ref := range refs {
		labelWidth = max(labelWidth, lipgloss.Width(ref.Label()))
	}

	var b strings.Builder
	b.WriteString(StyleHeader.Render(padRight("Slot", labelWidth)))
	b.WriteString(" ")
	for w := from; w <= to; w += 4 {
		span := min(4, to-w+1) * cellWidth
		b.WriteString(StyleHeader.Render(padRight(fmt.Sprintf("W%d", w), span)))
	}
	b.WriteString("\n")

	for _, ref := range refs {
		b.WriteString(padRight(ref.Label(), labelWidth))
		b.WriteString(" ")
		for w := from; w <= to; w++ {
			cell := Dim("· ")
			if p, ok := domain.ActivePlantingForWeek(ref.Slot.Plantings, w); ok {
				if plant, found := st.Plants.Get(p.Plant); found {
					cell = PlantGlyph(plant)
				} else {
					cell = StyleRed.Render("??")
				}
			}
			if w == current {
				cell = StyleCursor.Render(StripANSI(cell))
			}
			b.WriteString(cell)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// FormatPlantings lists every planting with its slot, weeks and whether it
// is past, active or upcoming relative to week.
func FormatPlantings(st domain.GardenState, week int) string {
	var rows [][]string
	for _, ref := range st.Garden.SlotRefs() {
		for _, p := range ref.Slot.Plantings {
			name := p.Plant
			if plant, ok := st.Plants.Get(p.Plant); ok {
				name = PlantGlyph(plant) + " " + name
			} else {
				name = StyleRed.Render("?? " + name)
			}
			rows = append(rows, []string{
				ref.Label(),
				name,
				domain.FormatWeekRange(p.StartWeek, p.EndWeek),
				plantingPhase(p, week),
			})
		}
	}
	if len(rows) == 0 {
		return Dim("Nothing planted.") + "\n"
	}
	return RenderTable([]string{"SLOT", "PLANT", "WEEKS", "STATUS"}, rows)
}

func plantingPhase(p domain.Planting, week int) string {
	switch {
	case p.ActiveIn(week):
		return StyleGreen.Render("growing")
	case week < p.StartWeek:
		return StyleBlue.Render(fmt.Sprintf("in %dw", p.StartWeek-week))
	default:
		return Dim("harvested")
	}
}

func padRight(s string, width int) string {
	return s + strings.Repeat(" ", max(0, width-lipgloss.Width(s)))
}
