package domain

import "fmt"

// SlotRef locates a slot inside its bed.
type SlotRef struct {
	BedID   string
	BedName string
	Slot    Slot
}

// Label is a human-readable slot name such as "North bed #2".
func (r SlotRef) Label() string {
	return fmt.Sprintf("%s #%s", r.BedName, r.Slot.Number)
}

// SlotRefs flattens every slot of the garden in bed order.
func (g Garden) SlotRefs() []SlotRef {
	var out []SlotRef
	for _, b := range g.Beds {
		for _, s := range b.Slots {
			out = append(out, SlotRef{BedID: b.ID, BedName: b.Name, Slot: s.Clone()})
		}
	}
	return out
}

// FindSlot locates a slot by bed and slot id.
func (g Garden) FindSlot(bedID, slotID string) (Slot, bool) {
	b, ok := g.FindBed(bedID)
	if !ok {
		return Slot{}, false
	}
	return b.FindSlot(slotID)
}

// PlantAt resolves what occupies cell (x, y) in week: the slot, its active
// planting and the library plant when it still exists.
type PlantAt struct {
	Slot     SlotRef
	Planting Planting
	Plant    Plant
	Resolved bool
}

// PlantAtCell answers which plant, if any, occupies a cell in week.
func (s GardenState) PlantAtCell(x, y, week int) (PlantAt, bool) {
	cs, ok := CellOwnerSlot(x, y, s.Garden.Beds)
	if !ok {
		return PlantAt{}, false
	}
	p, ok := ActivePlantingForWeek(cs.Slot.Plantings, week)
	if !ok {
		return PlantAt{}, false
	}
	plant, resolved := s.Plants.Get(p.Plant)
	return PlantAt{
		Slot:     SlotRef{BedID: cs.Bed.ID, BedName: cs.Bed.Name, Slot: cs.Slot},
		Planting: p,
		Plant:    plant,
		Resolved: resolved,
	}, true
}

// ResolvePlanting looks up the library plant a planting refers to.
func (s GardenState) ResolvePlanting(p Planting) (Plant, bool) {
	return s.Plants.Get(p.Plant)
}

// Summary counts the main entities of a state.
type Summary struct {
	GardenName  string
	GridSize    GridSize
	Beds        int
	Slots       int
	Plantings   int
	Plants      int
	CurrentWeek int
}

func (s GardenState) Summary() Summary {
	sum := Summary{
		GardenName:  s.Garden.Name,
		GridSize:    s.Garden.GridSize,
		Beds:        len(s.Garden.Beds),
		Plants:      s.Plants.Len(),
		CurrentWeek: s.CurrentWeek,
	}
	for _, b := range s.Garden.Beds {
		sum.Slots += len(b.Slots)
		for _, sl := range b.Slots {
			sum.Plantings += len(sl.Plantings)
		}
	}
	return sum
}

// DanglingPlanting is a planting whose plant is missing from the library.
type DanglingPlanting struct {
	Slot     SlotRef
	Planting Planting
}

// DanglingPlantings lists plantings that refer to unknown plants, in garden
// order.
func (s GardenState) DanglingPlantings() []DanglingPlanting {
	var out []DanglingPlanting
	for _, ref := range s.Garden.SlotRefs() {
		for _, p := range ref.Slot.Plantings {
			if !s.Plants.Has(p.Plant) {
				out = append(out, DanglingPlanting{Slot: ref, Planting: p})
			}
		}
	}
	return out
}

// OutOfBoundsBeds lists beds that no longer fit the grid, for example after
// shrinking it.
func (s GardenState) OutOfBoundsBeds() []Bed {
	var out []Bed
	g := s.Garden.GridSize
	for _, b := range s.Garden.Beds {
		r := b.Rect()
		if !g.InBounds(r.X, r.Y) || !g.InBounds(r.X+r.Width-1, r.Y+r.Height-1) {
			out = append(out, b.Clone())
		}
	}
	return out
}

// CompanionConflict names two incompatible plants growing in the same bed.
type CompanionConflict struct {
	BedName string
	A, B    string
}

// CompanionConflicts reports pairs of incompatible plants growing in the same
// bed during week.
func (s GardenState) CompanionConflicts(week int) []CompanionConflict {
	var out []CompanionConflict
	for _, b := range s.Garden.Beds {
		var active []string
		for _, sl := range b.Slots {
			if p, ok := ActivePlantingForWeek(sl.Plantings, week); ok {
				active = append(active, p.Plant)
			}
		}
		for i := 0; i < len(active); i++ {
			for j := i + 1; j < len(active); j++ {
				a, aok := s.Plants.Get(active[i])
				bp, bok := s.Plants.Get(active[j])
				if (aok && a.IsIncompatibleWith(active[j])) || (bok && bp.IsIncompatibleWith(active[i])) {
					out = append(out, CompanionConflict{BedName: b.Name, A: active[i], B: active[j]})
				}
			}
		}
	}
	return out
}
