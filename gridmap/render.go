package gridmap

import (
	"strings"

	"github.com/zyedidia/generic/mapset"
)

// String draws the grid, one row per line, with a trailing newline.
func (g *Grid) String() string {
	return g.Render(mapset.New[Coord](), 0)
}

// Render draws the grid with every coordinate in marks replaced by glyph.
// Start and goal cells keep their own characters.
func (g *Grid) Render(marks mapset.Set[Coord], glyph byte) string {
	var b strings.Builder
	b.Grow((g.width + 1) * g.height)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			c := Coord{X: x, Y: y}
			t := g.CellAt(c)
			if marks.Has(c) && t != Start && t != Goal {
				b.WriteByte(glyph)
				continue
			}
			b.WriteByte(byte(t))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
