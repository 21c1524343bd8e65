// Package turnsearch implements a uniform-cost search over (cell, heading)
// states of a gridmap.Grid.
//
// Notes on implementation choices:
//
//   - Endpoints are resolved and validated before any search work.
//   - A heading-blind flood fill rejects goals in another region up front.
//   - The heap uses lazy deletion: improved costs are pushed as duplicates and
//     stale entries are skipped once their state is finalized.
//   - A best-cost map prunes pushes that cannot improve a known cost.
package turnsearch

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/mazepath/gridmap"
)

// problem is a validated query: grid, endpoints and options.
type problem struct {
	g     *gridmap.Grid
	opts  Options
	start gridmap.Coord
	goal  gridmap.Coord
	avoid gridmap.Coord
}

// prepare applies opts and resolves the endpoints.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. the penalty must be non-negative (ErrBadTurnPenalty) and no route
//     cost on g may overflow int64 (ErrCostOverflow).
//  3. the start is From(...) if given, else the unique S cell.
//  4. the goal is To(...) if given, else the unique E cell.
//  5. explicit endpoints must be passable cells (ErrBadEndpoint).
func prepare(g *gridmap.Grid, opts []Option) (*problem, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return nil, ErrNilGrid
	}
	if cfg.TurnPenalty < 0 {
		return nil, ErrBadTurnPenalty
	}
	if states := 4 * int64(g.Width()) * int64(g.Height()); !penaltyFits(cfg.TurnPenalty, states) {
		return nil, fmt.Errorf("%w: penalty %d on %dx%d grid", ErrCostOverflow, cfg.TurnPenalty, g.Width(), g.Height())
	}

	p := &problem{g: g, opts: cfg}
	var err error
	if cfg.HasStart {
		if !g.Passable(cfg.Start) {
			return nil, fmt.Errorf("%w: start %v", ErrBadEndpoint, cfg.Start)
		}
		p.start = cfg.Start
	} else if p.start, err = g.StartCell(); err != nil {
		return nil, err
	}
	if cfg.HasGoal {
		if !g.Passable(cfg.Goal) {
			return nil, fmt.Errorf("%w: goal %v", ErrBadEndpoint, cfg.Goal)
		}
		p.goal = cfg.Goal
	} else if p.goal, err = g.GoalCell(); err != nil {
		return nil, err
	}

	p.avoid = p.start
	if cfg.StartReentry {
		p.avoid = gridmap.Nowhere
	}
	return p, nil
}

// penaltyFits reports whether every cost the search can compute over the
// given number of states stays within int64. A finalized cost follows at
// most states-1 edges, and one more edge is added on relaxation; each edge
// costs at most 1+2·penalty.
func penaltyFits(penalty, states int64) bool {
	return penalty <= (math.MaxInt64/states-1)/2
}

// seed is the state the walker starts in.
func (p *problem) seed() State {
	return State{Pos: p.start, Facing: p.opts.StartHeading}
}

// next lists the successors of s for this problem.
func (p *problem) next(s State) []State {
	return NextStates(p.g, s, p.avoid)
}

// cost returns the edge cost from s to t under the configured penalty.
func (p *problem) cost(s, t State) int64 {
	return EdgeCost(s.Facing, t.Facing, p.opts.TurnPenalty)
}

// connected reports whether goal shares a region with start, ignoring headings.
func (p *problem) connected() bool {
	return p.g.Region(p.start).Has(p.goal)
}

// expansion counts expansions and reports them to the hook.
type expansion struct {
	p     *problem
	count int
}

// visit records one expansion of s at cost and enforces MaxExpansions.
func (e *expansion) visit(s State, cost int64) error {
	e.count++
	if limit := e.p.opts.MaxExpansions; limit > 0 && e.count > limit {
		return fmt.Errorf("%w: %d", ErrExpansionLimit, limit)
	}
	if e.p.opts.OnExpand != nil {
		e.p.opts.OnExpand(s, cost)
	}
	return nil
}

// MinCost returns the cheapest cost from the start, facing the start heading,
// to any state located on the goal cell.
//
// Returns ErrUnreachable if the goal cannot be reached, and the validation
// errors described in prepare.
//
// Complexity:
//
//   - Time:  O(S log S), S = 4·W·H states.
//   - Space: O(S).
func MinCost(g *gridmap.Grid, opts ...Option) (int64, error) {
	p, err := prepare(g, opts)
	if err != nil {
		return 0, err
	}
	_, cost, err := p.search(false)
	return cost, err
}

// ShortestRoute returns one cheapest Path from the start to the goal.
// When several paths tie, which one is returned is unspecified.
func ShortestRoute(g *gridmap.Grid, opts ...Option) (Path, error) {
	p, err := prepare(g, opts)
	if err != nil {
		return Path{}, err
	}
	r, _, err := p.search(true)
	if err != nil {
		return Path{}, err
	}
	return r.route(), nil
}

// runner holds the mutable state of a single cheapest-cost pass.
type runner struct {
	p    *problem
	best map[State]int64 // best known cost per state
	done map[State]bool  // states whose cost is final
	prev map[State]State // predecessor per state, nil unless routing
	pq   statePQ
	exp  expansion
	end  State // goal state once found
}

// search runs the uniform-cost pass and returns the runner and the goal cost.
func (p *problem) search(track bool) (*runner, int64, error) {
	if !p.connected() {
		return nil, 0, fmt.Errorf("%w: %v is walled off from %v", ErrUnreachable, p.goal, p.start)
	}
	r := &runner{
		p:    p,
		best: make(map[State]int64),
		done: make(map[State]bool),
		exp:  expansion{p: p},
	}
	if track {
		r.prev = make(map[State]State)
	}

	seed := p.seed()
	r.best[seed] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &stateItem{state: seed, cost: 0})

	for r.pq.Len() > 0 {
		// 1) Pop the cheapest entry.
		item := heap.Pop(&r.pq).(*stateItem)
		s, d := item.state, item.cost

		// 2) Skip stale duplicates of finalized states.
		if r.done[s] {
			continue
		}
		r.done[s] = true

		// 3) The first goal pop is optimal: pops are non-decreasing in cost.
		if s.Pos == p.goal {
			r.end = s
			return r, d, nil
		}

		// 4) Relax the successors.
		if err := r.relax(s, d); err != nil {
			return nil, 0, err
		}
	}

	// 5) Queue exhausted without touching the goal.
	return nil, 0, fmt.Errorf("%w: no heading-respecting route from %v to %v", ErrUnreachable, p.start, p.goal)
}

// relax pushes every successor of s whose cost improves on the best known one.
func (r *runner) relax(s State, d int64) error {
	if err := r.exp.visit(s, d); err != nil {
		return err
	}
	for _, t := range r.p.next(s) {
		if r.done[t] {
			continue
		}
		nd := d + r.p.cost(s, t)
		// Equal costs are not re-pushed; one predecessor per state is enough.
		if b, ok := r.best[t]; ok && b <= nd {
			continue
		}
		r.best[t] = nd
		if r.prev != nil {
			r.prev[t] = s
		}
		heap.Push(&r.pq, &stateItem{state: t, cost: nd})
	}
	return nil
}

// route rebuilds the path to r.end from the predecessor map.
func (r *runner) route() Path {
	seed := r.p.seed()
	var rev []State
	for s := r.end; s != seed; s = r.prev[s] {
		rev = append(rev, s)
	}

	path := newPath(seed)
	for i := len(rev) - 1; i >= 0; i-- {
		path = path.extend(rev[i], r.p.cost(path.State, rev[i]))
	}
	return path
}
