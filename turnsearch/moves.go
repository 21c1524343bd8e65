package turnsearch

import "github.com/katalvlaran/mazepath/gridmap"

// NextStates returns the states reachable from s in a single step: straight
// ahead or after a quarter turn either way. Reversing is never offered.
// A candidate is kept only if its cell is inside g, not a wall and not avoid;
// pass gridmap.Nowhere to avoid nothing.
//
// Candidates come out in N, E, S, W order minus exclusions; callers must not
// rely on that order.
func NextStates(g *gridmap.Grid, s State, avoid gridmap.Coord) []State {
	back := s.Facing.Reverse()
	out := make([]State, 0, 3)
	for _, h := range gridmap.Headings() {
		if h == back {
			continue
		}
		to := s.Pos.Step(h)
		if to == avoid || !g.Passable(to) {
			continue
		}
		out = append(out, State{Pos: to, Facing: h})
	}
	return out
}

// EdgeCost returns the cost of stepping once after turning from one heading
// to another: 1 plus penalty for each quarter turn.
func EdgeCost(from, to gridmap.Heading, penalty int64) int64 {
	return 1 + penalty*int64(from.Rotations(to))
}
