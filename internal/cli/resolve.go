package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/gardenplan/internal/domain"
)

// resolveBed finds a bed by, in order: exact id, case-insensitive name,
// or id prefix (with or without the "bed-" part).
func resolveBed(g domain.Garden, input string) (domain.Bed, error) {
	if input == "" {
		return domain.Bed{}, fmt.Errorf("bed is required")
	}
	if b, ok := g.FindBed(input); ok {
		return b, nil
	}

	var named []domain.Bed
	for _, b := range g.Beds {
		if strings.EqualFold(b.Name, input) {
			named = append(named, b)
		}
	}
	switch len(named) {
	case 1:
		return named[0], nil
	case 0:
	default:
		return domain.Bed{}, fmt.Errorf("bed name %q is ambiguous (%d beds); use the id", input, len(named))
	}

	var matches []domain.Bed
	for _, b := range g.Beds {
		if strings.HasPrefix(b.ID, input) || strings.HasPrefix(b.ID, "bed-"+input) {
			matches = append(matches, b)
		}
	}
	switch len(matches) {
	case 0:
		return domain.Bed{}, fmt.Errorf("bed %q: %w", input, domain.ErrNotFound)
	case 1:
		return matches[0], nil
	default:
		return domain.Bed{}, fmt.Errorf("bed id prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

// resolveSlot finds a slot of b by exact id, slot number ("2" or "#2"), or
// id prefix.
func resolveSlot(b domain.Bed, input string) (domain.Slot, error) {
	if input == "" {
		return domain.Slot{}, fmt.Errorf("slot is required")
	}
	if s, ok := b.FindSlot(input); ok {
		return s, nil
	}

	number := strings.TrimPrefix(input, "#")
	for _, s := range b.Slots {
		if s.Number == number {
			return s, nil
		}
	}

	var matches []domain.Slot
	for _, s := range b.Slots {
		if strings.HasPrefix(s.ID, input) || strings.HasPrefix(s.ID, "slot-"+input) {
			matches = append(matches, s)
		}
	}
	switch len(matches) {
	case 0:
		return domain.Slot{}, fmt.Errorf("slot %q in bed %s: %w", input, b.Name, domain.ErrNotFound)
	case 1:
		return matches[0], nil
	default:
		return domain.Slot{}, fmt.Errorf("slot id prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

// resolveBedSlot resolves a bed then one of its slots.
func resolveBedSlot(g domain.Garden, bedInput, slotInput string) (domain.Bed, domain.Slot, error) {
	b, err := resolveBed(g, bedInput)
	if err != nil {
		return domain.Bed{}, domain.Slot{}, err
	}
	s, err := resolveSlot(b, slotInput)
	if err != nil {
		return domain.Bed{}, domain.Slot{}, err
	}
	return b, s, nil
}
