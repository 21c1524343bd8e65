package gridmap

import "errors"

var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("gridmap: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridmap: all rows must have the same length")
	// ErrUnknownTag indicates a cell character outside the maze alphabet.
	ErrUnknownTag = errors.New("gridmap: unknown cell character")
	// ErrNoStart indicates the grid has no start cell.
	ErrNoStart = errors.New("gridmap: no start cell")
	// ErrNoGoal indicates the grid has no goal cell.
	ErrNoGoal = errors.New("gridmap: no goal cell")
	// ErrMultipleStarts indicates more than one start cell.
	ErrMultipleStarts = errors.New("gridmap: more than one start cell")
	// ErrMultipleGoals indicates more than one goal cell.
	ErrMultipleGoals = errors.New("gridmap: more than one goal cell")
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("gridmap: coordinate out of bounds")
)
