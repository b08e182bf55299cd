package domain

// Position is a cell coordinate. x grows rightward, y downward, both 0-based.
type Position struct {
	X int
	Y int
}

// Size is a rectangle extent in cells.
type Size struct {
	Width  int
	Height int
}

// Rect is an axis-aligned rectangle of cells.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Contains reports whether cell (x, y) falls inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

func (r Rect) Position() Position { return Position{X: r.X, Y: r.Y} }
func (r Rect) Size() Size         { return Size{Width: r.Width, Height: r.Height} }

// NormalizeRectangle turns two arbitrary corner cells into a rectangle that
// covers both, inclusive.
func NormalizeRectangle(start, end Position) Rect {
	minX, maxX := start.X, end.X
	if minX > maxX {
		minX, maxX = maxX, minX
	}
	minY, maxY := start.Y, end.Y
	if minY > maxY {
		minY, maxY = maxY, minY
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX + 1, Height: maxY - minY + 1}
}

// InBounds reports whether (x, y) lies on the grid.
func (g GridSize) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// CellOwnerBed returns the first bed in list order whose rectangle contains
// (x, y).
func CellOwnerBed(x, y int, beds []Bed) (Bed, bool) {
	for _, b := range beds {
		if b.Rect().Contains(x, y) {
			return b, true
		}
	}
	return Bed{}, false
}

// CellSlot pairs a slot with the bed that holds it.
type CellSlot struct {
	Bed  Bed
	Slot Slot
}

// CellOwnerSlot scans beds in order, then each bed's slots in order, and
// returns the first slot whose absolute rectangle contains (x, y).
func CellOwnerSlot(x, y int, beds []Bed) (CellSlot, bool) {
	for _, b := range beds {
		for _, s := range b.Slots {
			if s.Rect().Contains(x, y) {
				return CellSlot{Bed: b, Slot: s}, true
			}
		}
	}
	return CellSlot{}, false
}

type Edge int

const (
	EdgeTop Edge = iota
	EdgeRight
	EdgeBottom
	EdgeLeft
)

// Edges lists the four sides in render order.
var Edges = []Edge{EdgeTop, EdgeRight, EdgeBottom, EdgeLeft}

func (e Edge) offset() (dx, dy int) {
	switch e {
	case EdgeTop:
		return 0, -1
	case EdgeRight:
		return 1, 0
	case EdgeBottom:
		return 0, 1
	default:
		return -1, 0
	}
}

// BorderKind classifies a cell edge for rendering.
type BorderKind int

const (
	BorderNone BorderKind = iota
	BorderBed
	BorderSlot
)

// CellBorder decides whether the given edge of cell (x, y) is drawn as a bed
// or slot boundary. The edge is a boundary when the neighbouring cell is off
// the grid or owned by a different bed (or slot). Slot boundaries take
// precedence over bed boundaries.
func CellBorder(x, y int, edge Edge, beds []Bed, grid GridSize) BorderKind {
	dx, dy := edge.offset()
	nx, ny := x+dx, y+dy
	outside := !grid.InBounds(nx, ny)

	if own, ok := CellOwnerSlot(x, y, beds); ok {
		if outside {
			return BorderSlot
		}
		other, ok := CellOwnerSlot(nx, ny, beds)
		if !ok || other.Slot.ID != own.Slot.ID {
			return BorderSlot
		}
	}
	if own, ok := CellOwnerBed(x, y, beds); ok {
		if outside {
			return BorderBed
		}
		other, ok := CellOwnerBed(nx, ny, beds)
		if !ok || other.ID != own.ID {
			return BorderBed
		}
	}
	return BorderNone
}
