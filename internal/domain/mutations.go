package domain

import (
	"fmt"
	"slices"
	"strings"
)

// All mutations take the receiver by value, work on a deep copy and return
// the new state. On error the receiver is returned unchanged.

// UpdateGarden replaces the garden wholesale. The replacement must pass
// Garden.Validate.
func (s GardenState) UpdateGarden(g Garden) (GardenState, error) {
	if err := g.Validate(); err != nil {
		return s, err
	}
	next := s.Clone()
	next.Garden = g.Clone()
	return next, nil
}

// RenameGarden changes the garden's display name.
func (s GardenState) RenameGarden(name string) (GardenState, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return s, fmt.Errorf("garden name is required: %w", ErrFormat)
	}
	next := s.Clone()
	next.Garden.Name = name
	return next, nil
}

// SetGridSize resizes the grid. Beds outside the new bounds are kept.
func (s GardenState) SetGridSize(width, height int) (GardenState, error) {
	gs := GridSize{Width: width, Height: height}
	if err := gs.Validate(); err != nil {
		return s, err
	}
	next := s.Clone()
	next.Garden.GridSize = gs
	return next, nil
}

func (s GardenState) SetCurrentWeek(week int) (GardenState, error) {
	if err := ValidateWeek(week); err != nil {
		return s, err
	}
	next := s.Clone()
	next.CurrentWeek = week
	return next, nil
}

func validateExtent(kind string, sz Size) error {
	if sz.Width < 1 || sz.Height < 1 {
		return fmt.Errorf("%s size %dx%d must be at least 1x1: %w", kind, sz.Width, sz.Height, ErrRange)
	}
	return nil
}

// AddBed appends a bed. Its id must be set and unique.
func (s GardenState) AddBed(b Bed) (GardenState, error) {
	if b.ID == "" {
		return s, fmt.Errorf("bed id is required: %w", ErrFormat)
	}
	if s.Garden.bedIndex(b.ID) >= 0 {
		return s, fmt.Errorf("bed %s already exists: %w", b.ID, ErrDuplicate)
	}
	if err := validateExtent("bed", b.Size); err != nil {
		return s, err
	}
	next := s.Clone()
	next.Garden.Beds = append(next.Garden.Beds, b.Clone())
	return s.checked(next)
}

// UpdateBed replaces the bed with id, slots included. The id itself never
// changes.
func (s GardenState) UpdateBed(id string, b Bed) (GardenState, error) {
	i := s.Garden.bedIndex(id)
	if i < 0 {
		return s, fmt.Errorf("bed %s: %w", id, ErrNotFound)
	}
	if err := validateExtent("bed", b.Size); err != nil {
		return s, err
	}
	next := s.Clone()
	b = b.Clone()
	b.ID = id
	next.Garden.Beds[i] = b
	return s.checked(next)
}

// DeleteBed removes the bed with id together with its slots. Unknown ids are
// ignored.
func (s GardenState) DeleteBed(id string) GardenState {
	next := s.Clone()
	next.Garden.Beds = deleteWhere(next.Garden.Beds, func(b Bed) bool { return b.ID == id })
	return next
}

// AddSlot appends a slot to the bed. Slot ids are unique across the garden.
func (s GardenState) AddSlot(bedID string, sl Slot) (GardenState, error) {
	i := s.Garden.bedIndex(bedID)
	if i < 0 {
		return s, fmt.Errorf("bed %s: %w", bedID, ErrNotFound)
	}
	if sl.ID == "" {
		return s, fmt.Errorf("slot id is required: %w", ErrFormat)
	}
	if s.Garden.hasSlotID(sl.ID) {
		return s, fmt.Errorf("slot %s already exists: %w", sl.ID, ErrDuplicate)
	}
	if err := validateExtent("slot", sl.Size); err != nil {
		return s, err
	}
	next := s.Clone()
	next.Garden.Beds[i].Slots = append(next.Garden.Beds[i].Slots, sl.Clone())
	return s.checked(next)
}

// UpdateSlot replaces the slot wholesale, plantings included.
func (s GardenState) UpdateSlot(bedID, slotID string, sl Slot) (GardenState, error) {
	bi, si, err := s.slotIndex(bedID, slotID)
	if err != nil {
		return s, err
	}
	if err := validateExtent("slot", sl.Size); err != nil {
		return s, err
	}
	next := s.Clone()
	sl = sl.Clone()
	sl.ID = slotID
	next.Garden.Beds[bi].Slots[si] = sl
	return s.checked(next)
}

// DeleteSlot removes a slot. Unknown bed or slot ids are ignored.
func (s GardenState) DeleteSlot(bedID, slotID string) GardenState {
	next := s.Clone()
	i := next.Garden.bedIndex(bedID)
	if i < 0 {
		return next
	}
	next.Garden.Beds[i].Slots = deleteWhere(next.Garden.Beds[i].Slots, func(sl Slot) bool { return sl.ID == slotID })
	return next
}

// AddPlanting schedules p in a slot. It fails if the range is invalid or
// intersects an existing planting in the same slot.
func (s GardenState) AddPlanting(bedID, slotID string, p Planting) (GardenState, error) {
	if err := validatePlantingWeeks(p); err != nil {
		return s, err
	}
	bi, si, err := s.slotIndex(bedID, slotID)
	if err != nil {
		return s, err
	}
	if conflict, ok := Overlaps(s.Garden.Beds[bi].Slots[si].Plantings, p.StartWeek, p.EndWeek); ok {
		return s, &OverlapError{SlotID: slotID, StartWeek: p.StartWeek, EndWeek: p.EndWeek, Conflict: conflict}
	}
	next := s.Clone()
	slot := &next.Garden.Beds[bi].Slots[si]
	slot.Plantings = append(slot.Plantings, p)
	return next, nil
}

// RemovePlanting drops the planting that starts in startWeek. Missing beds,
// slots or plantings leave the state as it was.
func (s GardenState) RemovePlanting(bedID, slotID string, startWeek int) GardenState {
	next := s.Clone()
	bi, si, err := next.slotIndex(bedID, slotID)
	if err != nil {
		return next
	}
	slot := &next.Garden.Beds[bi].Slots[si]
	slot.Plantings = deleteWhere(slot.Plantings, func(p Planting) bool { return p.StartWeek == startWeek })
	return next
}

// ClearAllPlantings empties every slot's schedule. Geometry and the plant
// library are untouched.
func (s GardenState) ClearAllPlantings() GardenState {
	next := s.Clone()
	for bi := range next.Garden.Beds {
		for si := range next.Garden.Beds[bi].Slots {
			next.Garden.Beds[bi].Slots[si].Plantings = nil
		}
	}
	return next
}

// AddPlant inserts a new library entry.
func (s GardenState) AddPlant(p Plant) (GardenState, error) {
	if strings.TrimSpace(p.Name) == "" {
		return s, fmt.Errorf("plant name is required: %w", ErrFormat)
	}
	if s.Plants.Has(p.Name) {
		return s, fmt.Errorf("plant %q already exists: %w", p.Name, ErrDuplicate)
	}
	next := s.Clone()
	next.Plants.put(p)
	return next, nil
}

// UpdatePlant replaces the entry stored under originalName, possibly renaming
// it. Plantings keep referring to the old name.
func (s GardenState) UpdatePlant(originalName string, p Plant) (GardenState, error) {
	if !s.Plants.Has(originalName) {
		return s, fmt.Errorf("plant %q: %w", originalName, ErrNotFound)
	}
	if strings.TrimSpace(p.Name) == "" {
		return s, fmt.Errorf("plant name is required: %w", ErrFormat)
	}
	if p.Name != originalName && s.Plants.Has(p.Name) {
		return s, fmt.Errorf("plant %q already exists: %w", p.Name, ErrDuplicate)
	}
	next := s.Clone()
	next.Plants.rename(originalName, p)
	return next, nil
}

// DeletePlant removes a library entry. Plantings that reference it are kept.
func (s GardenState) DeletePlant(name string) GardenState {
	next := s.Clone()
	next.Plants.remove(name)
	return next
}

// checked returns next if its garden is still valid, otherwise s and the
// violation.
func (s GardenState) checked(next GardenState) (GardenState, error) {
	if err := next.Garden.Validate(); err != nil {
		return s, err
	}
	return next, nil
}

func (s GardenState) slotIndex(bedID, slotID string) (int, int, error) {
	bi := s.Garden.bedIndex(bedID)
	if bi < 0 {
		return -1, -1, fmt.Errorf("bed %s: %w", bedID, ErrNotFound)
	}
	si := slices.IndexFunc(s.Garden.Beds[bi].Slots, func(sl Slot) bool { return sl.ID == slotID })
	if si < 0 {
		return -1, -1, fmt.Errorf("slot %s in bed %s: %w", slotID, bedID, ErrNotFound)
	}
	return bi, si, nil
}

// deleteWhere filters in place and normalises an empty result to nil.
func deleteWhere[T any](s []T, del func(T) bool) []T {
	s = slices.DeleteFunc(s, del)
	if len(s) == 0 {
		return nil
	}
	return s
}
