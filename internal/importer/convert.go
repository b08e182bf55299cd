package importer

import (
	"slices"

	"github.com/alexanderramin/gardenplan/internal/domain"
)

// Convert turns a decoded document into domain values. Call
// ValidateGardenExport first; Convert assumes a full document is valid.
func Convert(e *GardenExport) *Payload {
	out := &Payload{Kind: e.Kind(), CurrentWeek: e.CurrentWeek}
	if e.Garden != nil {
		out.Garden = gardenFromSchema(e.Garden)
	}
	for _, ps := range e.Plants {
		if out.Kind == PlantsOnly && (ps.Name == "" || ps.Image == "") {
			out.Rejected++
			continue
		}
		out.Plants = append(out.Plants, plantFromSchema(ps))
	}
	return out
}

// FromState builds the export document for a state.
func FromState(s domain.GardenState) GardenExport {
	g := s.Garden
	gs := &GardenSchema{
		Name:     g.Name,
		GridSize: SizeSchema{Width: g.GridSize.Width, Height: g.GridSize.Height},
		Beds:     make([]BedSchema, 0, len(g.Beds)),
	}
	for _, b := range g.Beds {
		bs := BedSchema{
			ID:       b.ID,
			Name:     b.Name,
			Position: PositionSchema{X: b.Position.X, Y: b.Position.Y},
			Size:     SizeSchema{Width: b.Size.Width, Height: b.Size.Height},
			Slots:    make([]SlotSchema, 0, len(b.Slots)),
		}
		for _, sl := range b.Slots {
			ss := SlotSchema{
				ID:        sl.ID,
				Number:    sl.Number,
				Position:  PositionSchema{X: sl.Position.X, Y: sl.Position.Y},
				Size:      SizeSchema{Width: sl.Size.Width, Height: sl.Size.Height},
				Plantings: make([]PlantingSchema, 0, len(sl.Plantings)),
			}
			for _, p := range sl.Plantings {
				ss.Plantings = append(ss.Plantings, PlantingSchema{Plant: p.Plant, StartWeek: p.StartWeek, EndWeek: p.EndWeek})
			}
			bs.Slots = append(bs.Slots, ss)
		}
		gs.Beds = append(gs.Beds, bs)
	}

	plants := make([]PlantSchema, 0, s.Plants.Len())
	for _, p := range s.Plants.All() {
		plants = append(plants, plantToSchema(p))
	}
	return GardenExport{Garden: gs, Plants: plants, CurrentWeek: s.CurrentWeek}
}

// State rebuilds a full state from a FullGarden payload.
func (p *Payload) State() domain.GardenState {
	return domain.GardenState{
		Garden:      p.Garden.Clone(),
		Plants:      domain.NewPlantLibrary(p.Plants...),
		CurrentWeek: p.CurrentWeek,
	}
}

func gardenFromSchema(gs *GardenSchema) domain.Garden {
	g := domain.Garden{
		Name:     gs.Name,
		GridSize: domain.GridSize{Width: gs.GridSize.Width, Height: gs.GridSize.Height},
	}
	for _, bs := range gs.Beds {
		b := domain.Bed{
			ID:       bs.ID,
			Name:     bs.Name,
			Position: domain.Position{X: bs.Position.X, Y: bs.Position.Y},
			Size:     domain.Size{Width: bs.Size.Width, Height: bs.Size.Height},
		}
		for _, ss := range bs.Slots {
			sl := domain.Slot{
				ID:       ss.ID,
				Number:   ss.Number,
				Position: domain.Position{X: ss.Position.X, Y: ss.Position.Y},
				Size:     domain.Size{Width: ss.Size.Width, Height: ss.Size.Height},
			}
			for _, ps := range ss.Plantings {
				sl.Plantings = append(sl.Plantings, domain.Planting{Plant: ps.Plant, StartWeek: ps.StartWeek, EndWeek: ps.EndWeek})
			}
			b.Slots = append(b.Slots, sl)
		}
		g.Beds = append(g.Beds, b)
	}
	return g
}

func plantFromSchema(ps PlantSchema) domain.Plant {
	return domain.Plant{
		Name:               ps.Name,
		Image:              ps.Image,
		PlantingMonths:     slices.Clone(ps.PlantingMonths),
		HarvestMonths:      slices.Clone(ps.HarvestMonths),
		WaterNeed:          domain.Need(ps.WaterNeed),
		SunNeed:            domain.Need(ps.SunNeed),
		IncompatiblePlants: slices.Clone(ps.IncompatiblePlants),
		CompanionPlants:    slices.Clone(ps.CompanionPlants),
		GrowthDuration:     ps.GrowthDuration,
		SpacingCm:          ps.SpacingCm,
		PlantFamily:        ps.PlantFamily,
		Season:             domain.Season(ps.Season),
		SuccessionInterval: ps.SuccessionInterval,
	}
}

func plantToSchema(p domain.Plant) PlantSchema {
	return PlantSchema{
		Name:               p.Name,
		Image:              p.Image,
		PlantingMonths:     slices.Clone(p.PlantingMonths),
		HarvestMonths:      slices.Clone(p.HarvestMonths),
		WaterNeed:          int(p.WaterNeed),
		SunNeed:            int(p.SunNeed),
		IncompatiblePlants: slices.Clone(p.IncompatiblePlants),
		CompanionPlants:    slices.Clone(p.CompanionPlants),
		GrowthDuration:     p.GrowthDuration,
		SpacingCm:          p.SpacingCm,
		PlantFamily:        p.PlantFamily,
		Season:             string(p.Season),
		SuccessionInterval: p.SuccessionInterval,
	}
}
