// Package gridmap treats a rectangular block of text as a maze map.
//
// What:
//
//   - Grid wraps a rectangular matrix of Tags (wall, floor, start, goal).
//   - Coord and Heading give the integer geometry used to walk it.
//   - Parse builds a Grid from one text row per line ('#', '.', 'S', 'E').
//   - Endpoints locates the unique start and goal cells.
//   - WithOverride derives a hypothetical grid that differs in one cell
//     while sharing every row with its base.
//   - Region flood-fills the passable cells reachable from a coordinate.
//   - Render draws the grid with a set of marked cells.
//
// Complexity:
//
//   - Parse, New, Locate, Endpoints: O(W×H) time.
//   - CellAt, InBounds, Passable:     O(1).
//   - WithOverride:                   O(1) for a pristine base, O(W×H) when
//     the base already carries an override.
//   - Region:                         O(W×H) time and memory.
//
// Errors:
//
//   - ErrEmptyGrid:      input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrUnknownTag:     a character is not one of '#', '.', 'S', 'E'.
//   - ErrNoStart, ErrNoGoal, ErrMultipleStarts, ErrMultipleGoals:
//     Endpoints could not find exactly one start and one goal.
//   - ErrOutOfBounds:    an override targets a cell outside the grid.
//
// CellAt panics on coordinates outside the grid; callers bounds-check with
// InBounds (or use Passable) first.
package gridmap
