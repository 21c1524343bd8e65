package turnsearch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazepath/gridmap"
	"github.com/katalvlaran/mazepath/turnsearch"
)

func TestOptimalCells_Samples(t *testing.T) {
	cases := []struct {
		name    string
		maze    string
		penalty int64
		want    int
	}{
		{"SmallMaze", smallMaze, turnsearch.DefaultTurnPenalty, 45},
		{"LargerMaze", largerMaze, turnsearch.DefaultTurnPenalty, 64},
		{"SmallMazeCheapTurns", smallMaze, 1, 37},
		{"LargerMazeCheapTurns", largerMaze, 1, 41},
		{"OneTurnCorridor", oneTurnCorridor, turnsearch.DefaultTurnPenalty, 8},
		{"Ring", ring, turnsearch.DefaultTurnPenalty, 7},
		{"Adjacent", "####\n#SE#\n####", turnsearch.DefaultTurnPenalty, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := turnsearch.CountOptimalCells(mustParse(t, tc.maze), turnsearch.WithTurnPenalty(tc.penalty))
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestOptimalCells_ContainsEndpoints(t *testing.T) {
	for _, maze := range []string{smallMaze, largerMaze, oneTurnCorridor, ring} {
		g := mustParse(t, maze)
		s, e, err := g.Endpoints()
		require.NoError(t, err)

		cells, err := turnsearch.OptimalCells(g)
		require.NoError(t, err)
		assert.True(t, cells.Has(s), "start missing")
		assert.True(t, cells.Has(e), "goal missing")
		cells.Each(func(c gridmap.Coord) {
			assert.True(t, g.Passable(c), "wall %v in result", c)
		})
	}
}

func TestOptimalCells_ZeroPenaltyRingUsesBothSides(t *testing.T) {
	// Without a turn cost both ways around the block tie.
	got, err := turnsearch.CountOptimalCells(mustParse(t, ring), turnsearch.WithTurnPenalty(0))
	require.NoError(t, err)
	assert.Equal(t, 12, got)
}

func TestOptimalCells_IncludesShortestRoute(t *testing.T) {
	g := mustParse(t, largerMaze)
	route, err := turnsearch.ShortestRoute(g)
	require.NoError(t, err)
	cells, err := turnsearch.OptimalCells(g)
	require.NoError(t, err)
	for _, c := range route.Cells {
		assert.True(t, cells.Has(c), "route cell %v not in optimal set", c)
	}
}

func TestOptimalCells_StartReentry(t *testing.T) {
	g := mustParse(t, loopBehind)

	_, err := turnsearch.OptimalCells(g)
	assert.ErrorIs(t, err, turnsearch.ErrUnreachable)

	got, err := turnsearch.CountOptimalCells(g, turnsearch.WithStartReentry())
	require.NoError(t, err)
	assert.Equal(t, 12, got)
}

func TestOptimalCells_Unreachable(t *testing.T) {
	for _, maze := range []string{"#####\n#S#E#\n#####", "######\n#E.S.#\n######"} {
		cells, err := turnsearch.OptimalCells(mustParse(t, maze))
		assert.ErrorIs(t, err, turnsearch.ErrUnreachable)
		assert.Equal(t, 0, cells.Size())

		n, err := turnsearch.CountOptimalCells(mustParse(t, maze))
		assert.ErrorIs(t, err, turnsearch.ErrUnreachable)
		assert.Zero(t, n)
	}
}

func TestOptimalCells_ExpansionLimit(t *testing.T) {
	_, err := turnsearch.OptimalCells(mustParse(t, smallMaze), turnsearch.WithMaxExpansions(10))
	assert.ErrorIs(t, err, turnsearch.ErrExpansionLimit)
}

// TestOptimalCells_WallingNeverLowersCost blocks each optimal cell in turn on
// a hypothetical grid: the cheapest cost can only stay or rise.
func TestOptimalCells_WallingNeverLowersCost(t *testing.T) {
	g := mustParse(t, smallMaze)
	s, e, err := g.Endpoints()
	require.NoError(t, err)
	best, err := turnsearch.MinCost(g)
	require.NoError(t, err)
	cells, err := turnsearch.OptimalCells(g)
	require.NoError(t, err)

	cells.Each(func(c gridmap.Coord) {
		if c == s || c == e {
			return
		}
		blocked, err := g.WithOverride(c, gridmap.Wall)
		require.NoError(t, err)
		cost, err := turnsearch.MinCost(blocked)
		if err != nil {
			assert.ErrorIs(t, err, turnsearch.ErrUnreachable)
			return
		}
		assert.GreaterOrEqual(t, cost, best, "walling %v lowered the cost", c)
	})
}
