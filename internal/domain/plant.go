package domain

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Plant is a library entry describing a crop. Name is its identity.
type Plant struct {
	Name               string
	Image              string
	PlantingMonths     []int
	HarvestMonths      []int
	WaterNeed          Need
	SunNeed            Need
	IncompatiblePlants []string
	CompanionPlants    []string
	GrowthDuration     int
	SpacingCm          int
	PlantFamily        string
	Season             Season
	SuccessionInterval int
}

// Clone returns a copy that shares no slices with p.
func (p Plant) Clone() Plant {
	p.PlantingMonths = slices.Clone(p.PlantingMonths)
	p.HarvestMonths = slices.Clone(p.HarvestMonths)
	p.IncompatiblePlants = slices.Clone(p.IncompatiblePlants)
	p.CompanionPlants = slices.Clone(p.CompanionPlants)
	return p
}

// Validate checks the advisory ranges of a plant record. Only a missing name
// blocks insertion into the library; the rest guards interactive input.
func (p Plant) Validate() error {
	var errs []error
	if strings.TrimSpace(p.Name) == "" {
		errs = append(errs, fmt.Errorf("plant name is required: %w", ErrFormat))
	}
	if p.GrowthDuration < 1 || p.GrowthDuration > MaxWeek {
		errs = append(errs, fmt.Errorf("growth duration %d must be between 1 and %d weeks: %w", p.GrowthDuration, MaxWeek, ErrRange))
	}
	if !p.WaterNeed.Valid() {
		errs = append(errs, fmt.Errorf("water need %d must be between 1 and 3: %w", p.WaterNeed, ErrRange))
	}
	if !p.SunNeed.Valid() {
		errs = append(errs, fmt.Errorf("sun need %d must be between 1 and 3: %w", p.SunNeed, ErrRange))
	}
	if p.SpacingCm < 0 {
		errs = append(errs, fmt.Errorf("spacing %d cm must not be negative: %w", p.SpacingCm, ErrRange))
	}
	if p.SuccessionInterval < 0 {
		errs = append(errs, fmt.Errorf("succession interval %d must not be negative: %w", p.SuccessionInterval, ErrRange))
	}
	for _, m := range slices.Concat(p.PlantingMonths, p.HarvestMonths) {
		if m < 1 || m > 12 {
			errs = append(errs, fmt.Errorf("month %d must be between 1 and 12: %w", m, ErrRange))
			break
		}
	}
	return errors.Join(errs...)
}

// IsCompanionOf reports whether other appears in p's companion list.
func (p Plant) IsCompanionOf(other string) bool {
	return slices.Contains(p.CompanionPlants, other)
}

// IsIncompatibleWith reports whether other appears in p's incompatible list.
func (p Plant) IsIncompatibleWith(other string) bool {
	return slices.Contains(p.IncompatiblePlants, other)
}

// PlantLibrary maps plant names to records and remembers insertion order so
// listings and exports are stable.
type PlantLibrary struct {
	byName map[string]Plant
	order  []string
}

// NewPlantLibrary builds a library from plants. Later duplicates replace
// earlier ones in place.
func NewPlantLibrary(plants ...Plant) PlantLibrary {
	lib := PlantLibrary{byName: make(map[string]Plant, len(plants))}
	for _, p := range plants {
		lib.put(p)
	}
	return lib
}

func (l PlantLibrary) Len() int { return len(l.order) }

func (l PlantLibrary) Has(name string) bool {
	_, ok := l.byName[name]
	return ok
}

// Get returns a copy of the named plant.
func (l PlantLibrary) Get(name string) (Plant, bool) {
	p, ok := l.byName[name]
	if !ok {
		return Plant{}, false
	}
	return p.Clone(), true
}

// Names returns plant names in library order.
func (l PlantLibrary) Names() []string {
	return slices.Clone(l.order)
}

// All returns copies of every plant in library order.
func (l PlantLibrary) All() []Plant {
	out := make([]Plant, 0, len(l.order))
	for _, name := range l.order {
		out = append(out, l.byName[name].Clone())
	}
	return out
}

// Clone returns a deep copy of the library.
func (l PlantLibrary) Clone() PlantLibrary {
	return NewPlantLibrary(l.All()...)
}

func (l *PlantLibrary) put(p Plant) {
	if l.byName == nil {
		l.byName = make(map[string]Plant)
	}
	if _, ok := l.byName[p.Name]; !ok {
		l.order = append(l.order, p.Name)
	}
	l.byName[p.Name] = p.Clone()
}

func (l *PlantLibrary) rename(oldName string, p Plant) {
	idx := slices.Index(l.order, oldName)
	delete(l.byName, oldName)
	l.order[idx] = p.Name
	l.byName[p.Name] = p.Clone()
}

func (l *PlantLibrary) remove(name string) {
	if _, ok := l.byName[name]; !ok {
		return
	}
	delete(l.byName, name)
	l.order = slices.DeleteFunc(l.order, func(n string) bool { return n == name })
	if len(l.order) == 0 {
		l.order = nil
	}
}
