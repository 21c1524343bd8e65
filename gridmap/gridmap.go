// Package gridmap provides an immutable maze map built from text.
//
// Cells tagged Wall block movement; Floor, Start and Goal cells are passable.
package gridmap

import (
	"fmt"
	"strings"
)

// New constructs a Grid from a non-empty, rectangular matrix of tags.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if rows has no rows or no columns,
// ErrNonRectangular if any row length differs, and ErrUnknownTag
// (wrapped with the offending position) for tags outside the alphabet.
// Complexity: O(W×H) time and memory.
func New(rows [][]Tag) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	cells := make([][]Tag, h)
	for y := 0; y < h; y++ {
		for x, t := range rows[y] {
			if !t.Valid() {
				return nil, fmt.Errorf("%w: %q at %v", ErrUnknownTag, rune(t), Coord{X: x, Y: y})
			}
		}
		cells[y] = make([]Tag, w)
		copy(cells[y], rows[y])
	}

	return &Grid{width: w, height: h, cells: cells}, nil
}

// Parse builds a Grid from text, one row per line.
// Carriage returns and leading or trailing blank lines are ignored.
func Parse(text string) (*Grid, error) {
	lines := strings.Split(strings.ReplaceAll(text, "\r", ""), "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	rows := make([][]Tag, len(lines))
	for y, line := range lines {
		rows[y] = []Tag(line)
	}

	return New(rows)
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// CellAt returns the tag at c. It panics if c is outside the grid.
func (g *Grid) CellAt(c Coord) Tag {
	if !g.InBounds(c) {
		panic(fmt.Sprintf("gridmap: CellAt%v outside %dx%d grid", c, g.width, g.height))
	}
	if g.patch != nil && g.patch.at == c {
		return g.patch.tag
	}
	return g.cells[c.Y][c.X]
}

// Passable reports whether c is inside the grid and not a wall.
func (g *Grid) Passable(c Coord) bool {
	return g.InBounds(c) && g.CellAt(c) != Wall
}

// Locate returns every coordinate holding tag, in row-major order.
func (g *Grid) Locate(tag Tag) []Coord {
	var out []Coord
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			c := Coord{X: x, Y: y}
			if g.CellAt(c) == tag {
				out = append(out, c)
			}
		}
	}
	return out
}

// Endpoints returns the unique start and goal cells.
func (g *Grid) Endpoints() (start, goal Coord, err error) {
	if start, err = g.StartCell(); err != nil {
		return Nowhere, Nowhere, err
	}
	if goal, err = g.GoalCell(); err != nil {
		return Nowhere, Nowhere, err
	}
	return start, goal, nil
}

// StartCell returns the unique start cell.
func (g *Grid) StartCell() (Coord, error) {
	return g.locateOne(Start, ErrNoStart, ErrMultipleStarts)
}

// GoalCell returns the unique goal cell.
func (g *Grid) GoalCell() (Coord, error) {
	return g.locateOne(Goal, ErrNoGoal, ErrMultipleGoals)
}

func (g *Grid) locateOne(tag Tag, none, many error) (Coord, error) {
	found := g.Locate(tag)
	switch {
	case len(found) == 0:
		return Nowhere, none
	case len(found) > 1:
		return Nowhere, fmt.Errorf("%w: found %d", many, len(found))
	}
	return found[0], nil
}

// WithOverride returns a grid identical to g except that c holds tag.
// The rows of a pristine g are shared; if g already carries an override
// it is folded into a fresh copy first, so at most one cell is ever shadowed.
func (g *Grid) WithOverride(c Coord, tag Tag) (*Grid, error) {
	if !g.InBounds(c) {
		return nil, fmt.Errorf("%w: %v", ErrOutOfBounds, c)
	}
	if !tag.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTag, rune(tag))
	}
	cells := g.cells
	if g.patch != nil {
		cells = make([][]Tag, g.height)
		for y := range cells {
			cells[y] = make([]Tag, g.width)
			copy(cells[y], g.cells[y])
		}
		cells[g.patch.at.Y][g.patch.at.X] = g.patch.tag
	}

	return &Grid{
		width:  g.width,
		height: g.height,
		cells:  cells,
		patch:  &override{at: c, tag: tag},
	}, nil
}
