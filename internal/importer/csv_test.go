package importer

import (
	"bytes"
	"strings"
	"testing"

	"github.com/alexanderramin/gardenplan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeCSV_QuotesEveryField(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, EncodeCSV(&buf, domain.DefaultPlants()[:1]))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, `"name","image","plantingMonths","harvestMonths","waterNeed","sunNeed","incompatiblePlants","companionPlants","growthDuration","spacingCm","plantFamily","season","successionInterval"`, lines[0])
	assert.Equal(t, `"carrot","🥕","3;4;5","6;7;8","2","3","fennel","lettuce","10","5","Apiaceae","spring","2"`, lines[1])
}

func TestCSVRoundTrip(t *testing.T) {
	plants := domain.DefaultPlants()
	plants = append(plants, domain.Plant{
		Name:               `bean, "runner"`,
		Image:              "🫘",
		PlantingMonths:     []int{5},
		HarvestMonths:      []int{8, 9},
		WaterNeed:          domain.NeedHigh,
		SunNeed:            domain.NeedHigh,
		IncompatiblePlants: []string{"onion", "garlic"},
		CompanionPlants:    []string{"carrot"},
		GrowthDuration:     12,
		SpacingCm:          15,
		PlantFamily:        "Fabaceae",
		Season:             domain.SeasonSummer,
		SuccessionInterval: 0,
	})

	var buf bytes.Buffer
	require.NoError(t, EncodeCSV(&buf, plants))

	p, err := DecodeCSV(&buf)
	require.NoError(t, err)
	assert.Equal(t, 0, p.Rejected)
	assert.Equal(t, plants, p.Plants)
}

func TestDecodeCSV_HeaderOrderAndCoercion(t *testing.T) {
	body := strings.Join([]string{
		`image,name,growthDuration,plantingMonths,companionPlants,waterNeed`,
		`🧅,onion,abc,3; 4,carrot;beet,2`,
		`🥔,potato,14,,,`,
	}, "\n")

	p, err := DecodeCSV(strings.NewReader(body))
	require.NoError(t, err)
	require.Len(t, p.Plants, 2)

	onion := p.Plants[0]
	assert.Equal(t, "onion", onion.Name)
	assert.Equal(t, "🧅", onion.Image)
	assert.Equal(t, 0, onion.GrowthDuration, "unparseable numbers become 0")
	assert.Equal(t, []int{3, 4}, onion.PlantingMonths)
	assert.Equal(t, []string{"carrot", "beet"}, onion.CompanionPlants)
	assert.Equal(t, domain.NeedMedium, onion.WaterNeed)

	potato := p.Plants[1]
	assert.Equal(t, 14, potato.GrowthDuration)
	assert.Empty(t, potato.PlantingMonths)
}

func TestDecodeCSV_SkipsBadRows(t *testing.T) {
	body := strings.Join([]string{
		`name,image,growthDuration`,
		`kale,🥬,9`,
		`short,row`,
		`,🌱,3`,
		`noimage,,3`,
		`,,`,
	}, "\n")

	p, err := DecodeCSV(strings.NewReader(body))
	require.NoError(t, err)
	require.Len(t, p.Plants, 1)
	assert.Equal(t, "kale", p.Plants[0].Name)
	assert.Equal(t, 3, p.Rejected)
}

func TestDecodeCSV_RequiresDataRow(t *testing.T) {
	_, err := DecodeCSV(strings.NewReader(""))
	assert.ErrorIs(t, err, domain.ErrFormat)

	_, err = DecodeCSV(strings.NewReader("name,image\n"))
	assert.ErrorIs(t, err, domain.ErrFormat)
}
