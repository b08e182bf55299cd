package formatter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alexanderramin/gardenplan/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// cellWidth is the visible width of one grid cell; plant emoji are two
// columns wide.
const cellWidth = 2

// GridOptions tweaks RenderGrid.
type GridOptions struct {
	// Cursor highlights one cell when set.
	Cursor *domain.Position
	// HideLegend drops the plant legend under the grid.
	HideLegend bool
}

// RenderGrid draws the garden for week as a character grid. Bed edges are
// yellow, slot edges green. Column and row numbers match the x,y arguments
// the CLI accepts.
func RenderGrid(st domain.GardenState, week int, opts GridOptions) string {
	g := st.Garden
	w, h := g.GridSize.Width, g.GridSize.Height

	var b strings.Builder

	// Column numbers.
	b.WriteString("   ")
	for x := 0; x < w; x++ {
		fmt.Fprintf(&b, " %-*d", cellWidth, x)
	}
	header := trimLine(b.String())
	b.Reset()
	b.WriteString(header + "\n")

	for y := 0; y <= h; y++ {
		b.WriteString(trimLine("   " + borderLine(g, y)))
		b.WriteString("\n")
		if y == h {
			break
		}
		var row strings.Builder
		fmt.Fprintf(&row, "%2d ", y)
		for x := 0; x <= w; x++ {
			if k := verticalKind(g, x, y); k != domain.BorderNone {
				row.WriteString(BorderStyle(k).Render("│"))
			} else {
				row.WriteString(" ")
			}
			if x == w {
				break
			}
			cell := cellGlyph(st, x, y, week)
			if opts.Cursor != nil && opts.Cursor.X == x && opts.Cursor.Y == y {
				cell = StyleCursor.Render(StripANSI(cell))
			}
			row.WriteString(cell)
		}
		b.WriteString(trimLine(row.String()))
		b.WriteString("\n")
	}

	if !opts.HideLegend {
		if legend := gridLegend(st, week); legend != "" {
			b.WriteString("\n")
			b.WriteString(legend)
			b.WriteString("\n")
		}
	}
	return b.String()
}

// PlantGlyph is the two-column marker of a plant: its image when that is a
// single wide symbol, otherwise the first two letters of its name.
func PlantGlyph(p domain.Plant) string {
	if p.Image != "" && lipgloss.Width(p.Image) == cellWidth {
		return p.Image
	}
	return padGlyph(p.Name)
}

func padGlyph(name string) string {
	r := []rune(name)
	if len(r) > cellWidth {
		r = r[:cellWidth]
	}
	s := string(r)
	return s + strings.Repeat(" ", max(0, cellWidth-lipgloss.Width(s)))
}

func cellGlyph(st domain.GardenState, x, y, week int) string {
	if at, ok := st.PlantAtCell(x, y, week); ok {
		if !at.Resolved {
			return StyleRed.Render("??")
		}
		return PlantGlyph(at.Plant)
	}
	if _, ok := domain.CellOwnerSlot(x, y, st.Garden.Beds); ok {
		return StyleDim.Render("··")
	}
	if _, ok := domain.CellOwnerBed(x, y, st.Garden.Beds); ok {
		return lipgloss.NewStyle().Foreground(ColorSoil).Render("░░")
	}
	return "  "
}

// horizontalKind classifies the edge above row y in column x.
func horizontalKind(g domain.Garden, x, y int) domain.BorderKind {
	if x < 0 || x >= g.GridSize.Width {
		return domain.BorderNone
	}
	k := domain.BorderNone
	if y < g.GridSize.Height {
		k = max(k, domain.CellBorder(x, y, domain.EdgeTop, g.Beds, g.GridSize))
	}
	if y > 0 {
		k = max(k, domain.CellBorder(x, y-1, domain.EdgeBottom, g.Beds, g.GridSize))
	}
	return k
}

// verticalKind classifies the edge left of column x in row y.
func verticalKind(g domain.Garden, x, y int) domain.BorderKind {
	if y < 0 || y >= g.GridSize.Height {
		return domain.BorderNone
	}
	k := domain.BorderNone
	if x < g.GridSize.Width {
		k = max(k, domain.CellBorder(x, y, domain.EdgeLeft, g.Beds, g.GridSize))
	}
	if x > 0 {
		k = max(k, domain.CellBorder(x-1, y, domain.EdgeRight, g.Beds, g.GridSize))
	}
	return k
}

func borderLine(g domain.Garden, y int) string {
	var b strings.Builder
	for x := 0; x <= g.GridSize.Width; x++ {
		left := horizontalKind(g, x-1, y)
		right := horizontalKind(g, x, y)
		up := verticalKind(g, x, y-1)
		down := verticalKind(g, x, y)
		b.WriteString(junction(left, right, up, down))
		if x == g.GridSize.Width {
			break
		}
		if right != domain.BorderNone {
			b.WriteString(BorderStyle(right).Render(strings.Repeat("─", cellWidth)))
		} else {
			b.WriteString(strings.Repeat(" ", cellWidth))
		}
	}
	return b.String()
}

var junctions = map[[4]bool]string{
	{true, true, false, false}:  "─",
	{true, false, false, false}: "─",
	{false, true, false, false}: "─",
	{false, false, true, true}:  "│",
	{false, false, true, false}: "│",
	{false, false, false, true}: "│",
	{false, true, false, true}:  "┌",
	{true, false, false, true}:  "┐",
	{false, true, true, false}:  "└",
	{true, false, true, false}:  "┘",
	{true, true, false, true}:   "┬",
	{true, true, true, false}:   "┴",
	{false, true, true, true}:   "├",
	{true, false, true, true}:   "┤",
	{true, true, true, true}:    "┼",
}

func junction(left, right, up, down domain.BorderKind) string {
	key := [4]bool{left != domain.BorderNone, right != domain.BorderNone, up != domain.BorderNone, down != domain.BorderNone}
	ch, ok := junctions[key]
	if !ok {
		return StyleDim.Render("·")
	}
	return BorderStyle(max(left, right, up, down)).Render(ch)
}

func gridLegend(st domain.GardenState, week int) string {
	seen := map[string]bool{}
	var names []string
	for _, ref := range st.Garden.SlotRefs() {
		if p, ok := domain.ActivePlantingForWeek(ref.Slot.Plantings, week); ok && !seen[p.Plant] {
			seen[p.Plant] = true
			names = append(names, p.Plant)
		}
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		if plant, ok := st.Plants.Get(name); ok {
			parts = append(parts, PlantGlyph(plant)+" "+name)
		} else {
			parts = append(parts, StyleRed.Render("?? "+name+" (missing)"))
		}
	}
	return strings.Join(parts, "  ")
}

// trimLine drops trailing blanks so plain output has no ragged whitespace.
func trimLine(s string) string {
	return strings.TrimRight(s, " ")
}
