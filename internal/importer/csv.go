package importer

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/alexanderramin/gardenplan/internal/domain"
)

// PlantsCSVFileName is the default name for a plant library export.
const PlantsCSVFileName = "plants_database.csv"

// CSVColumns is the column order written by EncodeCSV. DecodeCSV reads the
// order from the header instead.
var CSVColumns = []string{
	"name", "image", "plantingMonths", "harvestMonths", "waterNeed",
	"sunNeed", "incompatiblePlants", "companionPlants", "growthDuration",
	"spacingCm", "plantFamily", "season", "successionInterval",
}

const listSep = ";"

var whitespaceRun = regexp.MustCompile(`\s+`)

// ExportFileName derives the JSON export file name from a garden name.
func ExportFileName(gardenName string) string {
	return whitespaceRun.ReplaceAllString(gardenName, "_") + "_garden_setup.json"
}

// EncodeCSV writes plants with every field quoted. List fields are joined
// with ";".
func EncodeCSV(w io.Writer, plants []domain.Plant) error {
	bw := bufio.NewWriter(w)
	writeRow := func(fields []string) {
		for i, f := range fields {
			if i > 0 {
				bw.WriteByte(',')
			}
			bw.WriteByte('"')
			bw.WriteString(strings.ReplaceAll(f, `"`, `""`))
			bw.WriteByte('"')
		}
		bw.WriteByte('\n')
	}

	writeRow(CSVColumns)
	for _, p := range plants {
		writeRow([]string{
			p.Name,
			p.Image,
			joinInts(p.PlantingMonths),
			joinInts(p.HarvestMonths),
			strconv.Itoa(int(p.WaterNeed)),
			strconv.Itoa(int(p.SunNeed)),
			strings.Join(p.IncompatiblePlants, listSep),
			strings.Join(p.CompanionPlants, listSep),
			strconv.Itoa(p.GrowthDuration),
			strconv.Itoa(p.SpacingCm),
			p.PlantFamily,
			string(p.Season),
			strconv.Itoa(p.SuccessionInterval),
		})
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("writing csv: %w", err)
	}
	return nil
}

// DecodeCSV reads a plant library CSV. Column order comes from the header.
// Rows with the wrong number of fields, or without a name or image, are
// counted in Rejected. Unparseable numbers become 0.
func DecodeCSV(r io.Reader) (*Payload, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.LazyQuotes = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("csv must have a header and at least one data row: %w", domain.ErrFormat)
	}
	if err != nil {
		return nil, fmt.Errorf("reading csv header: %v: %w", err, domain.ErrFormat)
	}
	for i := range header {
		header[i] = strings.TrimSpace(strings.TrimPrefix(header[i], "\ufeff"))
	}

	out := &Payload{Kind: PlantsOnly}
	rows := 0
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading csv: %v: %w", err, domain.ErrFormat)
		}
		if isBlank(rec) {
			continue
		}
		rows++
		if len(rec) != len(header) {
			out.Rejected++
			continue
		}
		p := plantFromRecord(header, rec)
		if p.Name == "" || p.Image == "" {
			out.Rejected++
			continue
		}
		out.Plants = append(out.Plants, p)
	}
	if rows == 0 {
		return nil, fmt.Errorf("csv must have a header and at least one data row: %w", domain.ErrFormat)
	}
	return out, nil
}

func plantFromRecord(header, rec []string) domain.Plant {
	var p domain.Plant
	for i, col := range header {
		v := strings.TrimSpace(rec[i])
		switch col {
		case "name":
			p.Name = v
		case "image":
			p.Image = v
		case "plantingMonths":
			p.PlantingMonths = splitInts(v)
		case "harvestMonths":
			p.HarvestMonths = splitInts(v)
		case "waterNeed":
			p.WaterNeed = domain.Need(atoi(v))
		case "sunNeed":
			p.SunNeed = domain.Need(atoi(v))
		case "incompatiblePlants":
			p.IncompatiblePlants = splitNames(v)
		case "companionPlants":
			p.CompanionPlants = splitNames(v)
		case "growthDuration":
			p.GrowthDuration = atoi(v)
		case "spacingCm":
			p.SpacingCm = atoi(v)
		case "plantFamily":
			p.PlantFamily = v
		case "season":
			p.Season = domain.Season(v)
		case "successionInterval":
			p.SuccessionInterval = atoi(v)
		}
	}
	return p
}

func atoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

func joinInts(vals []int) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, listSep)
}

func splitInts(s string) []int {
	out := []int{}
	if s == "" {
		return out
	}
	for _, part := range strings.Split(s, listSep) {
		out = append(out, atoi(strings.TrimSpace(part)))
	}
	return out
}

func splitNames(s string) []string {
	out := []string{}
	if s == "" {
		return out
	}
	for _, part := range strings.Split(s, listSep) {
		out = append(out, strings.TrimSpace(part))
	}
	return out
}

func isBlank(rec []string) bool {
	for _, f := range rec {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
