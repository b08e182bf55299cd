package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/gardenplan/internal/domain"
)

// FormatSummary renders the garden header shown above the grid and by
// "status".
func FormatSummary(s domain.Summary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n", Bold(s.GardenName), Dim(fmt.Sprintf("%dx%d grid", s.GridSize.Width, s.GridSize.Height)))
	fmt.Fprintf(&b, "Week %s of %d\n", StyleHeader.Render(strconv.Itoa(s.CurrentWeek)), domain.MaxWeek)
	fmt.Fprintf(&b, "%s, %s, %s, %s in library\n",
		Plural(s.Beds, "bed", "beds"),
		Plural(s.Slots, "slot", "slots"),
		Plural(s.Plantings, "planting", "plantings"),
		Plural(s.Plants, "plant", "plants"),
	)
	return b.String()
}

func FormatBedList(g domain.Garden) string {
	rows := make([][]string, 0, len(g.Beds))
	for _, bed := range g.Beds {
		r := bed.Rect()
		where := fmt.Sprintf("%d,%d", r.X, r.Y)
		if !g.GridSize.InBounds(r.X, r.Y) || !g.GridSize.InBounds(r.X+r.Width-1, r.Y+r.Height-1) {
			where += " " + StyleRed.Render("(off grid)")
		}
		rows = append(rows, []string{
			TruncID(bed.ID),
			bed.Name,
			where,
			fmt.Sprintf("%dx%d", r.Width, r.Height),
			strconv.Itoa(len(bed.Slots)),
		})
	}
	return RenderTable([]string{"ID", "NAME", "AT", "SIZE", "SLOTS"}, rows)
}

func FormatSlotList(st domain.GardenState, refs []domain.SlotRef) string {
	rows := make([][]string, 0, len(refs))
	for _, ref := range refs {
		current := Dim("--")
		if p, ok := domain.ActivePlantingForWeek(ref.Slot.Plantings, st.CurrentWeek); ok {
			current = p.Plant + " " + Dim(domain.FormatWeekRange(p.StartWeek, p.EndWeek))
		}
		r := ref.Slot.Rect()
		rows = append(rows, []string{
			TruncID(ref.Slot.ID),
			ref.BedName,
			"#" + ref.Slot.Number,
			fmt.Sprintf("%d,%d", r.X, r.Y),
			fmt.Sprintf("%dx%d", r.Width, r.Height),
			strconv.Itoa(len(ref.Slot.Plantings)),
			current,
		})
	}
	return RenderTable([]string{"ID", "BED", "SLOT", "AT", "SIZE", "PLANTINGS", "NOW"}, rows)
}

func FormatPlantList(plants []domain.Plant) string {
	rows := make([][]string, 0, len(plants))
	for _, p := range plants {
		rows = append(rows, []string{
			PlantGlyph(p),
			p.Name,
			fmt.Sprintf("%dw", p.GrowthDuration),
			NeedBadge(p.WaterNeed),
			NeedBadge(p.SunNeed),
			SeasonBadge(p.Season),
			FormatMonths(p.PlantingMonths),
			FormatMonths(p.HarvestMonths),
		})
	}
	return RenderTable([]string{"", "NAME", "GROWS", "WATER", "SUN", "SEASON", "SOW", "HARVEST"}, rows)
}

// FormatPlantDetail renders every field of one plant record in a box, with
// the number of plantings that use it.
func FormatPlantDetail(p domain.Plant, plantings int) string {
	lines := []string{
		fmt.Sprintf("Family       %s", valueOrDash(p.PlantFamily)),
		fmt.Sprintf("Season       %s", SeasonBadge(p.Season)),
		fmt.Sprintf("Growth       %s", Plural(p.GrowthDuration, "week", "weeks")),
		fmt.Sprintf("Succession   every %s", Plural(p.SuccessionInterval, "week", "weeks")),
		fmt.Sprintf("Spacing      %d cm", p.SpacingCm),
		fmt.Sprintf("Water        %s", NeedBadge(p.WaterNeed)),
		fmt.Sprintf("Sun          %s", NeedBadge(p.SunNeed)),
		fmt.Sprintf("Sow          %s", FormatMonths(p.PlantingMonths)),
		fmt.Sprintf("Harvest      %s", FormatMonths(p.HarvestMonths)),
		fmt.Sprintf("Companions   %s", FormatList(p.CompanionPlants)),
		fmt.Sprintf("Avoid        %s", FormatList(p.IncompatiblePlants)),
		fmt.Sprintf("Planted      %s", Plural(plantings, "time", "times")),
	}
	return RenderBox(PlantGlyph(p)+" "+p.Name, strings.Join(lines, "\n")) + "\n"
}

// FormatBedDetail renders a bed and each slot's schedule in a box.
func FormatBedDetail(b domain.Bed) string {
	lines := []string{
		fmt.Sprintf("Id         %s", Dim(b.ID)),
		fmt.Sprintf("Position   %d,%d size %dx%d", b.Position.X, b.Position.Y, b.Size.Width, b.Size.Height),
	}
	if len(b.Slots) == 0 {
		lines = append(lines, "", Dim("No slots yet."))
	}
	for _, sl := range b.Slots {
		lines = append(lines, "", fmt.Sprintf("#%s at %d,%d size %dx%d", sl.Number,
			sl.Position.X, sl.Position.Y, sl.Size.Width, sl.Size.Height))
		if len(sl.Plantings) == 0 {
			lines = append(lines, "  "+Dim("empty"))
		}
		for _, p := range sl.Plantings {
			lines = append(lines, fmt.Sprintf("  %s %s", p.Plant, Dim(domain.FormatWeekRange(p.StartWeek, p.EndWeek))))
		}
	}
	return RenderBox(b.Name, strings.Join(lines, "\n")) + "\n"
}

// FormatCheck renders garden consistency findings for week.
func FormatCheck(week int, dangling []domain.DanglingPlanting, offGrid []domain.Bed, conflicts []domain.CompanionConflict) string {
	if len(dangling) == 0 && len(offGrid) == 0 && len(conflicts) == 0 {
		return StyleGreen.Render("✔ No problems found.") + "\n"
	}

	var b strings.Builder
	if len(dangling) > 0 {
		b.WriteString(Header("Missing plants") + "\n")
		for _, d := range dangling {
			fmt.Fprintf(&b, "  %s %s %s in %s\n", StyleRed.Render("✖"), d.Planting.Plant,
				Dim(domain.FormatWeekRange(d.Planting.StartWeek, d.Planting.EndWeek)), d.Slot.Label())
		}
	}
	if len(offGrid) > 0 {
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString(Header("Beds outside the grid") + "\n")
		for _, bed := range offGrid {
			r := bed.Rect()
			fmt.Fprintf(&b, "  %s %s at %d,%d size %dx%d\n", StyleYellow.Render("▲"), bed.Name, r.X, r.Y, r.Width, r.Height)
		}
	}
	if len(conflicts) > 0 {
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString(Header(fmt.Sprintf("Incompatible neighbours in week %d", week)) + "\n")
		for _, c := range conflicts {
			fmt.Fprintf(&b, "  %s %s and %s in %s\n", StyleYellow.Render("▲"), c.A, c.B, c.BedName)
		}
	}
	return b.String()
}

func valueOrDash(s string) string {
	if s == "" {
		return "--"
	}
	return s
}
