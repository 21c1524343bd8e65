// Package gridmap defines the core types of the maze map: tags,
// coordinates, headings and the Grid itself.
package gridmap

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Tag is the content of a single cell.
type Tag byte

const (
	// Wall blocks movement.
	Wall Tag = '#'
	// Floor is an open cell.
	Floor Tag = '.'
	// Start marks the start cell; it is passable.
	Start Tag = 'S'
	// Goal marks the goal cell; it is passable.
	Goal Tag = 'E'
)

// Valid reports whether t is one of Wall, Floor, Start or Goal.
func (t Tag) Valid() bool {
	switch t {
	case Wall, Floor, Start, Goal:
		return true
	}
	return false
}

// Coord is a 0-indexed cell position. X grows rightward, Y grows downward.
type Coord struct {
	X, Y int
}

// Nowhere is a coordinate that lies outside every grid.
var Nowhere = Coord{X: -1, Y: -1}

// Step returns the neighbor of c one cell away in heading h.
func (c Coord) Step(h Heading) Coord {
	d := h.Delta()
	return Coord{X: c.X + d[0], Y: c.Y + d[1]}
}

// Manhattan returns the manhattan distance between c and o.
func (c Coord) Manhattan(o Coord) int {
	return absDiff(c.X, o.X) + absDiff(c.Y, o.Y)
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

func absDiff[T constraints.Signed](a, b T) T {
	if a < b {
		return b - a
	}
	return a - b
}

// Heading is one of the four compass directions.
type Heading int

const (
	// North points toward decreasing Y.
	North Heading = iota
	// East points toward increasing X.
	East
	// South points toward increasing Y.
	South
	// West points toward decreasing X.
	West
)

var headingDeltas = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Headings returns all four headings in clockwise order starting at North.
func Headings() []Heading {
	return []Heading{North, East, South, West}
}

// Delta returns the (dx, dy) offset of a single step in heading h.
func (h Heading) Delta() [2]int {
	return headingDeltas[h&3]
}

// Reverse returns the opposite heading.
func (h Heading) Reverse() Heading { return (h + 2) & 3 }

// TurnRight returns h rotated 90° clockwise.
func (h Heading) TurnRight() Heading { return (h + 1) & 3 }

// TurnLeft returns h rotated 90° counter-clockwise.
func (h Heading) TurnLeft() Heading { return (h + 3) & 3 }

// Rotations returns the number of quarter turns needed to face to:
// 0 when equal, 2 when reversed, 1 otherwise.
func (h Heading) Rotations(to Heading) int {
	switch {
	case h == to:
		return 0
	case h.Reverse() == to:
		return 2
	default:
		return 1
	}
}

// Glyph returns the arrow character used when drawing h.
func (h Heading) Glyph() byte {
	return "^>v<"[h&3]
}

func (h Heading) String() string {
	switch h {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	case West:
		return "W"
	}
	return fmt.Sprintf("Heading(%d)", int(h))
}

// ParseHeading converts a compass letter (N, E, S, W, either case) into a Heading.
func ParseHeading(s string) (Heading, error) {
	switch s {
	case "N", "n":
		return North, nil
	case "E", "e":
		return East, nil
	case "S", "s":
		return South, nil
	case "W", "w":
		return West, nil
	}
	return 0, fmt.Errorf("gridmap: unknown heading %q", s)
}

// override replaces the tag of a single cell without copying the base rows.
type override struct {
	at  Coord
	tag Tag
}

// Grid is an immutable rectangular maze map.
// Cells[y][x] holds the tag at (x, y); an optional override shadows one cell.
type Grid struct {
	width, height int
	cells         [][]Tag
	patch         *override
}
