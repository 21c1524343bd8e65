package gridmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestHeading_Reverse checks that every heading reverses to its opposite and back.
func TestHeading_Reverse(t *testing.T) {
	assert.Equal(t, South, North.Reverse())
	assert.Equal(t, West, East.Reverse())
	assert.Equal(t, North, South.Reverse())
	assert.Equal(t, East, West.Reverse())
	for _, h := range Headings() {
		assert.Equal(t, h, h.Reverse().Reverse(), "double reverse of %v", h)
	}
}

// TestHeading_Turns checks the clockwise and counter-clockwise rotations.
func TestHeading_Turns(t *testing.T) {
	assert.Equal(t, East, North.TurnRight())
	assert.Equal(t, North, West.TurnRight())
	assert.Equal(t, West, North.TurnLeft())
	assert.Equal(t, South, West.TurnLeft())
	for _, h := range Headings() {
		assert.Equal(t, h, h.TurnRight().TurnLeft())
		assert.Equal(t, h.Reverse(), h.TurnRight().TurnRight())
	}
}

// TestHeading_Rotations covers 0, 1 and 2 quarter turns.
func TestHeading_Rotations(t *testing.T) {
	for _, h := range Headings() {
		assert.Equal(t, 0, h.Rotations(h))
		assert.Equal(t, 1, h.Rotations(h.TurnRight()))
		assert.Equal(t, 1, h.Rotations(h.TurnLeft()))
		assert.Equal(t, 2, h.Rotations(h.Reverse()))
	}
}

// TestHeading_GlyphAndString checks the display helpers.
func TestHeading_GlyphAndString(t *testing.T) {
	assert.Equal(t, "^>v<", string([]byte{North.Glyph(), East.Glyph(), South.Glyph(), West.Glyph()}))
	assert.Equal(t, "NESW", North.String()+East.String()+South.String()+West.String())
	assert.Equal(t, "Heading(9)", Heading(9).String())
}

// TestParseHeading accepts compass letters in either case.
func TestParseHeading(t *testing.T) {
	for in, want := range map[string]Heading{"N": North, "e": East, "S": South, "w": West} {
		got, err := ParseHeading(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseHeading("up")
	assert.Error(t, err)
}

// TestCoord_StepAndManhattan checks single steps and distances.
func TestCoord_StepAndManhattan(t *testing.T) {
	c := Coord{X: 2, Y: 3}
	assert.Equal(t, Coord{X: 2, Y: 2}, c.Step(North))
	assert.Equal(t, Coord{X: 3, Y: 3}, c.Step(East))
	assert.Equal(t, Coord{X: 2, Y: 4}, c.Step(South))
	assert.Equal(t, Coord{X: 1, Y: 3}, c.Step(West))
	assert.Equal(t, 0, c.Manhattan(c))
	assert.Equal(t, 7, c.Manhattan(Coord{X: -1, Y: 7}))
	assert.Equal(t, c.Manhattan(Coord{X: 9, Y: 0}), Coord{X: 9, Y: 0}.Manhattan(c))
	assert.Equal(t, "(2,3)", c.String())
}

// TestOverride_IsInternal ensures a pristine grid and its override share rows.
func TestOverride_IsInternal(t *testing.T) {
	base, err := Parse("S..E")
	require.NoError(t, err)
	hyp, err := base.WithOverride(Coord{X: 2, Y: 0}, Wall)
	require.NoError(t, err)
	require.NotNil(t, hyp.patch)
	assert.Same(t, &base.cells[0][0], &hyp.cells[0][0], "rows should be shared")
	assert.Nil(t, base.patch)
}
