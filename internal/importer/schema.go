package importer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexanderramin/gardenplan/internal/domain"
)

// GardenExport is the whole-garden JSON document. A document with only
// "plants" is a plant-only import.
type GardenExport struct {
	Garden      *GardenSchema `json:"garden,omitempty"`
	Plants      []PlantSchema `json:"plants"`
	CurrentWeek int           `json:"currentWeek"`
}

type GardenSchema struct {
	Name     string      `json:"name"`
	GridSize SizeSchema  `json:"gridSize"`
	Beds     []BedSchema `json:"beds"`
}

type PositionSchema struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type SizeSchema struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

type BedSchema struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Position PositionSchema `json:"position"`
	Size     SizeSchema     `json:"size"`
	Slots    []SlotSchema   `json:"slots"`
}

type SlotSchema struct {
	ID        string           `json:"id"`
	Number    string           `json:"number"`
	Position  PositionSchema   `json:"position"`
	Size      SizeSchema       `json:"size"`
	Plantings []PlantingSchema `json:"plantings"`
}

type PlantingSchema struct {
	Plant     string `json:"plant"`
	StartWeek int    `json:"startWeek"`
	EndWeek   int    `json:"endWeek"`
}

type PlantSchema struct {
	Name               string   `json:"name"`
	Image              string   `json:"image"`
	PlantingMonths     []int    `json:"plantingMonths"`
	HarvestMonths      []int    `json:"harvestMonths"`
	WaterNeed          int      `json:"waterNeed"`
	SunNeed            int      `json:"sunNeed"`
	IncompatiblePlants []string `json:"incompatiblePlants"`
	CompanionPlants    []string `json:"companionPlants"`
	GrowthDuration     int      `json:"growthDuration"`
	SpacingCm          int      `json:"spacingCm"`
	PlantFamily        string   `json:"plantFamily"`
	Season             string   `json:"season"`
	SuccessionInterval int      `json:"successionInterval"`
}

// PayloadKind tells how an import applies to the current state.
type PayloadKind int

const (
	// FullGarden replaces the garden, the plant library and the current week.
	FullGarden PayloadKind = iota + 1
	// PlantsOnly appends plants to the library and leaves the layout alone.
	PlantsOnly
)

func (k PayloadKind) String() string {
	switch k {
	case FullGarden:
		return "garden"
	case PlantsOnly:
		return "plants"
	default:
		return "unknown"
	}
}

// Kind reports which import path the document takes.
func (e *GardenExport) Kind() PayloadKind {
	if e.Garden != nil {
		return FullGarden
	}
	return PlantsOnly
}

// Payload is a decoded and validated import, expressed in domain types.
type Payload struct {
	Kind        PayloadKind
	Garden      domain.Garden
	Plants      []domain.Plant
	CurrentWeek int
	// Rejected counts plant rows dropped for lacking a name or image.
	Rejected int
}

// DecodeJSON reads a garden document and checks its top-level shape. It does
// not validate field values; see ValidateGardenExport.
func DecodeJSON(r io.Reader) (*GardenExport, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading import: %w", err)
	}

	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		return nil, fmt.Errorf("parsing import: %v: %w", err, domain.ErrFormat)
	}
	_, hasGarden := keys["garden"]
	_, hasPlants := keys["plants"]
	if !hasPlants {
		return nil, fmt.Errorf("import must contain \"plants\" (and optionally \"garden\"): %w", domain.ErrFormat)
	}
	if hasGarden && bytes.Equal(bytes.TrimSpace(keys["garden"]), []byte("null")) {
		return nil, fmt.Errorf("import \"garden\" must be an object: %w", domain.ErrFormat)
	}

	var export GardenExport
	if err := json.Unmarshal(data, &export); err != nil {
		return nil, fmt.Errorf("parsing import: %v: %w", err, domain.ErrFormat)
	}
	return &export, nil
}

// EncodeJSON writes the whole-garden document, indented.
func EncodeJSON(w io.Writer, s domain.GardenState) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(FromState(s)); err != nil {
		return fmt.Errorf("encoding garden: %w", err)
	}
	return nil
}

// ParseJSON decodes, validates and converts a JSON import.
func ParseJSON(r io.Reader) (*Payload, error) {
	export, err := DecodeJSON(r)
	if err != nil {
		return nil, err
	}
	if errs := ValidateGardenExport(export); len(errs) > 0 {
		return nil, &ValidationError{Errs: errs}
	}
	return Convert(export), nil
}

// LoadFile reads an import file, choosing the format by extension.
func LoadFile(path string) (*Payload, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return ParseJSON(f)
	case ".csv":
		return DecodeCSV(f)
	default:
		return nil, fmt.Errorf("unsupported import file type %q (want .json or .csv): %w", ext, domain.ErrFormat)
	}
}
