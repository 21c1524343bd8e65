// Package turnsearch defines the search state, path records, configuration
// options and sentinel errors of the turn-penalised grid search.
package turnsearch

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/mazepath/gridmap"
)

// Sentinel errors returned by the search.
var (
	// ErrNilGrid indicates that a nil *gridmap.Grid was passed in.
	ErrNilGrid = errors.New("turnsearch: grid is nil")

	// ErrBadEndpoint indicates an explicit start or goal outside the grid or on a wall.
	ErrBadEndpoint = errors.New("turnsearch: endpoint is outside the grid or on a wall")

	// ErrUnreachable indicates that no route leads from the start to the goal.
	ErrUnreachable = errors.New("turnsearch: goal is unreachable")

	// ErrExpansionLimit indicates that the search expanded more states than allowed.
	ErrExpansionLimit = errors.New("turnsearch: expansion limit exceeded")

	// ErrBadTurnPenalty indicates a turn penalty below 0 or above MaxTurnPenalty.
	ErrBadTurnPenalty = errors.New("turnsearch: turn penalty must be in [0, MaxTurnPenalty]")

	// ErrCostOverflow indicates a grid so large that route costs under the
	// configured penalty could exceed math.MaxInt64.
	ErrCostOverflow = errors.New("turnsearch: route costs would overflow int64")

	// ErrBadMaxExpansions indicates a negative expansion cap.
	ErrBadMaxExpansions = errors.New("turnsearch: MaxExpansions must be non-negative")
)

const (
	// DefaultTurnPenalty is the cost of a single quarter turn.
	DefaultTurnPenalty int64 = 1000

	// MaxTurnPenalty is the largest accepted turn penalty. With it, costs
	// stay exact on any grid of fewer than 2^31 states.
	MaxTurnPenalty int64 = math.MaxInt32
)

// State is a search node: a cell and the heading it is faced in.
type State struct {
	Pos    gridmap.Coord
	Facing gridmap.Heading
}

func (s State) String() string {
	return fmt.Sprintf("%v%s", s.Pos, s.Facing)
}

// Path is a partial or complete route.
//
// Cells[i] was entered facing Headings[i]; Cells[0] is the start cell and
// Headings[0] the start heading. The last element of both equals State.
// Cost always equals Recost(penalty) for the penalty it was built with.
type Path struct {
	State    State
	Cost     int64
	Cells    []gridmap.Coord
	Headings []gridmap.Heading
}

// newPath returns the single-cell path standing at s.
func newPath(s State) Path {
	return Path{
		State:    s,
		Cells:    []gridmap.Coord{s.Pos},
		Headings: []gridmap.Heading{s.Facing},
	}
}

// extend returns a copy of p advanced to next at the given edge cost.
// The receiver's history is never shared with the result.
func (p Path) extend(next State, edge int64) Path {
	cells := make([]gridmap.Coord, len(p.Cells), len(p.Cells)+1)
	copy(cells, p.Cells)
	headings := make([]gridmap.Heading, len(p.Headings), len(p.Headings)+1)
	copy(headings, p.Headings)

	return Path{
		State:    next,
		Cost:     p.Cost + edge,
		Cells:    append(cells, next.Pos),
		Headings: append(headings, next.Facing),
	}
}

// Steps returns the number of forward moves in p.
func (p Path) Steps() int { return len(p.Cells) - 1 }

// Turns returns the number of quarter turns in p.
func (p Path) Turns() int {
	n := 0
	for i := 1; i < len(p.Headings); i++ {
		n += p.Headings[i-1].Rotations(p.Headings[i])
	}
	return n
}

// Recost recomputes the cost of p from its cell and heading sequences.
func (p Path) Recost(penalty int64) int64 {
	return int64(p.Steps()) + penalty*int64(p.Turns())
}

// Options configures the search.
//
// TurnPenalty   – cost added per quarter turn. 0 ≤ p ≤ MaxTurnPenalty. Default 1000.
// StartHeading  – heading at the start cell. Default East.
// Start, Goal   – explicit endpoints; used when HasStart / HasGoal is set,
// otherwise the grid's S and E cells are used.
// StartReentry  – if true, routes may pass back over the start cell.
// MaxExpansions – cap on expanded states; 0 means unlimited.
// OnExpand      – optional hook called with each expanded state and its cost.
type Options struct {
	TurnPenalty   int64
	StartHeading  gridmap.Heading
	Start         gridmap.Coord
	HasStart      bool
	Goal          gridmap.Coord
	HasGoal       bool
	StartReentry  bool
	MaxExpansions int
	OnExpand      func(s State, cost int64)
}

// Option represents a functional option for configuring the search.
type Option func(*Options)

// WithTurnPenalty sets the cost of a single quarter turn.
// Values outside [0, MaxTurnPenalty] panic with ErrBadTurnPenalty.
func WithTurnPenalty(p int64) Option {
	return func(o *Options) {
		if p < 0 || p > MaxTurnPenalty {
			panic(ErrBadTurnPenalty.Error())
		}
		o.TurnPenalty = p
	}
}

// WithStartHeading sets the heading the walker faces at the start cell.
func WithStartHeading(h gridmap.Heading) Option {
	return func(o *Options) {
		o.StartHeading = h
	}
}

// From sets an explicit start cell instead of the grid's S tag.
func From(c gridmap.Coord) Option {
	return func(o *Options) {
		o.Start = c
		o.HasStart = true
	}
}

// To sets an explicit goal cell instead of the grid's E tag.
func To(c gridmap.Coord) Option {
	return func(o *Options) {
		o.Goal = c
		o.HasGoal = true
	}
}

// WithStartReentry lets routes step back onto the start cell.
func WithStartReentry() Option {
	return func(o *Options) {
		o.StartReentry = true
	}
}

// WithMaxExpansions caps the number of expanded states per pass.
// Zero disables the cap; negative values panic with ErrBadMaxExpansions.
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic(ErrBadMaxExpansions.Error())
		}
		o.MaxExpansions = n
	}
}

// WithOnExpand registers fn to be called for every expanded state.
func WithOnExpand(fn func(s State, cost int64)) Option {
	return func(o *Options) {
		o.OnExpand = fn
	}
}

// DefaultOptions returns the defaults: penalty 1000, facing East, endpoints
// from the grid tags, start re-entry forbidden, no expansion cap.
func DefaultOptions() Options {
	return Options{
		TurnPenalty:  DefaultTurnPenalty,
		StartHeading: gridmap.East,
		Start:        gridmap.Nowhere,
		Goal:         gridmap.Nowhere,
	}
}
