package domain

import "fmt"

// Command is a state-changing intent. The set is closed: only types in this
// package implement it.
type Command interface {
	Name() string
	command()
}

type UpdateGarden struct{ Garden Garden }
type RenameGarden struct{ NewName string }
type AddPlant struct{ Plant Plant }
type UpdatePlant struct {
	OriginalName string
	Plant        Plant
}
type DeletePlant struct{ PlantName string }
type SetCurrentWeek struct{ Week int }
type UpdateGridSize struct{ Width, Height int }
type AddBed struct{ Bed Bed }
type UpdateBed struct {
	BedID string
	Bed   Bed
}
type DeleteBed struct{ BedID string }
type AddSlot struct {
	BedID string
	Slot  Slot
}
type UpdateSlot struct {
	BedID  string
	SlotID string
	Slot   Slot
}
type DeleteSlot struct{ BedID, SlotID string }
type AddPlanting struct {
	BedID    string
	SlotID   string
	Planting Planting
}
type RemovePlanting struct {
	BedID     string
	SlotID    string
	StartWeek int
}
type ClearAllPlantings struct{}

func (UpdateGarden) Name() string      { return "update_garden" }
func (RenameGarden) Name() string      { return "rename_garden" }
func (AddPlant) Name() string          { return "add_plant" }
func (UpdatePlant) Name() string       { return "update_plant" }
func (DeletePlant) Name() string       { return "delete_plant" }
func (SetCurrentWeek) Name() string    { return "set_current_week" }
func (UpdateGridSize) Name() string    { return "update_grid_size" }
func (AddBed) Name() string            { return "add_bed" }
func (UpdateBed) Name() string         { return "update_bed" }
func (DeleteBed) Name() string         { return "delete_bed" }
func (AddSlot) Name() string           { return "add_slot" }
func (UpdateSlot) Name() string        { return "update_slot" }
func (DeleteSlot) Name() string        { return "delete_slot" }
func (AddPlanting) Name() string       { return "add_planting" }
func (RemovePlanting) Name() string    { return "remove_planting" }
func (ClearAllPlantings) Name() string { return "clear_all_plantings" }

func (UpdateGarden) command()      {}
func (RenameGarden) command()      {}
func (AddPlant) command()          {}
func (UpdatePlant) command()       {}
func (DeletePlant) command()       {}
func (SetCurrentWeek) command()    {}
func (UpdateGridSize) command()    {}
func (AddBed) command()            {}
func (UpdateBed) command()         {}
func (DeleteBed) command()         {}
func (AddSlot) command()           {}
func (UpdateSlot) command()        {}
func (DeleteSlot) command()        {}
func (AddPlanting) command()       {}
func (RemovePlanting) command()    {}
func (ClearAllPlantings) command() {}

// Apply maps a command to its mutation. It is deterministic and never
// changes s.
func Apply(s GardenState, cmd Command) (GardenState, error) {
	switch c := cmd.(type) {
	case UpdateGarden:
		return s.UpdateGarden(c.Garden)
	case RenameGarden:
		return s.RenameGarden(c.NewName)
	case AddPlant:
		return s.AddPlant(c.Plant)
	case UpdatePlant:
		return s.UpdatePlant(c.OriginalName, c.Plant)
	case DeletePlant:
		return s.DeletePlant(c.PlantName), nil
	case SetCurrentWeek:
		return s.SetCurrentWeek(c.Week)
	case UpdateGridSize:
		return s.SetGridSize(c.Width, c.Height)
	case AddBed:
		return s.AddBed(c.Bed)
	case UpdateBed:
		return s.UpdateBed(c.BedID, c.Bed)
	case DeleteBed:
		return s.DeleteBed(c.BedID), nil
	case AddSlot:
		return s.AddSlot(c.BedID, c.Slot)
	case UpdateSlot:
		return s.UpdateSlot(c.BedID, c.SlotID, c.Slot)
	case DeleteSlot:
		return s.DeleteSlot(c.BedID, c.SlotID), nil
	case AddPlanting:
		return s.AddPlanting(c.BedID, c.SlotID, c.Planting)
	case RemovePlanting:
		return s.RemovePlanting(c.BedID, c.SlotID, c.StartWeek), nil
	case ClearAllPlantings:
		return s.ClearAllPlantings(), nil
	case nil:
		return s, fmt.Errorf("nil command: %w", ErrFormat)
	default:
		return s, fmt.Errorf("unknown command %T: %w", cmd, ErrFormat)
	}
}

// ApplyAll applies cmds in order. If any command fails the original state is
// returned along with the error, so the batch is all-or-nothing.
func ApplyAll(s GardenState, cmds ...Command) (GardenState, error) {
	next := s
	for _, cmd := range cmds {
		var err error
		next, err = Apply(next, cmd)
		if err != nil {
			return s, fmt.Errorf("%s: %w", CommandName(cmd), err)
		}
	}
	return next, nil
}

// CommandName is cmd.Name() with a placeholder for a nil command.
func CommandName(cmd Command) string {
	if cmd == nil {
		return "nil"
	}
	return cmd.Name()
}
