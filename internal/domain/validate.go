package domain

import "fmt"

// Validate checks the structural invariants every stored garden holds: the
// grid is in range, bed and slot ids are present and unique, every extent is
// at least 1x1 and no slot schedules two plantings in the same week.
func (g Garden) Validate() error {
	if err := g.GridSize.Validate(); err != nil {
		return err
	}
	bedIDs := make(map[string]bool, len(g.Beds))
	slotIDs := make(map[string]bool)
	for _, b := range g.Beds {
		if b.ID == "" {
			return fmt.Errorf("bed %q has no id: %w", b.Name, ErrFormat)
		}
		if bedIDs[b.ID] {
			return fmt.Errorf("bed %s appears twice: %w", b.ID, ErrDuplicate)
		}
		bedIDs[b.ID] = true
		if err := validateExtent("bed "+b.ID, b.Size); err != nil {
			return err
		}
		for _, sl := range b.Slots {
			if sl.ID == "" {
				return fmt.Errorf("slot #%s in bed %s has no id: %w", sl.Number, b.ID, ErrFormat)
			}
			if slotIDs[sl.ID] {
				return fmt.Errorf("slot %s appears twice: %w", sl.ID, ErrDuplicate)
			}
			slotIDs[sl.ID] = true
			if err := validateExtent("slot "+sl.ID, sl.Size); err != nil {
				return err
			}
			if err := sl.validatePlantings(); err != nil {
				return err
			}
		}
	}
	return nil
}

// validatePlantings checks each planting's weeks and that no two plantings in
// the slot intersect.
func (s Slot) validatePlantings() error {
	for i, p := range s.Plantings {
		if err := validatePlantingWeeks(p); err != nil {
			return fmt.Errorf("slot %s planting %s: %w", s.ID, p.Plant, err)
		}
		if conflict, ok := Overlaps(s.Plantings[:i], p.StartWeek, p.EndWeek); ok {
			return &OverlapError{SlotID: s.ID, StartWeek: p.StartWeek, EndWeek: p.EndWeek, Conflict: conflict}
		}
	}
	return nil
}

func validatePlantingWeeks(p Planting) error {
	if err := ValidateWeek(p.StartWeek); err != nil {
		return err
	}
	if err := ValidateWeek(p.EndWeek); err != nil {
		return err
	}
	if p.StartWeek > p.EndWeek {
		return fmt.Errorf("start week %d is after end week %d: %w", p.StartWeek, p.EndWeek, ErrRange)
	}
	return nil
}
