package cli

import (
	"testing"

	"github.com/alexanderramin/gardenplan/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointValue(t *testing.T) {
	var v pointValue
	assert.Equal(t, "", v.String())

	require.NoError(t, v.Set("3, 4"))
	assert.True(t, v.set)
	assert.Equal(t, domain.Position{X: 3, Y: 4}, v.pos)
	assert.Equal(t, "3,4", v.String())

	for _, bad := range []string{"3", "a,b", "1,2,3", "-1,0"} {
		var p pointValue
		assert.Error(t, p.Set(bad), bad)
	}
}

func TestWeekValue(t *testing.T) {
	var v weekValue
	assert.Equal(t, 7, v.or(7))

	require.NoError(t, v.Set("W12"))
	assert.Equal(t, 12, v.or(7))
	require.NoError(t, v.Set("w3"))
	assert.Equal(t, 3, v.week)

	assert.ErrorIs(t, v.Set("0"), domain.ErrRange)
	assert.ErrorIs(t, v.Set("53"), domain.ErrRange)
	assert.Error(t, v.Set("soon"))
}

func TestRectFlags(t *testing.T) {
	var from, to pointValue
	_, err := rectFlags(&from, &to)
	assert.Error(t, err)

	require.NoError(t, from.Set("4,3"))
	r, err := rectFlags(&from, &to)
	require.NoError(t, err)
	assert.Equal(t, domain.Rect{X: 4, Y: 3, Width: 1, Height: 1}, r)

	require.NoError(t, to.Set("1,5"))
	r, err = rectFlags(&from, &to)
	require.NoError(t, err)
	assert.Equal(t, domain.Rect{X: 1, Y: 3, Width: 4, Height: 3}, r)
}
