package turnsearch

import (
	"container/heap"
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/mazepath/gridmap"
)

// OptimalCells returns every cell that lies on at least one cheapest route
// from the start to the goal. The start and goal cells are always included.
//
// It first computes the minimum cost with the same search as MinCost, then
// runs a second pass over whole Path records:
//
//  1. pop paths in increasing cost order; stop once the cost exceeds the minimum.
//  2. drop a path whose state was already reached at a strictly lower cost.
//     Equal costs are kept so that every tying route is enumerated.
//  3. a path arriving at the goal contributes all of its cells and is not extended.
//  4. otherwise push each successor whose cost stays within the minimum.
//
// Returns ErrUnreachable rather than an empty set when the goal cannot be reached.
func OptimalCells(g *gridmap.Grid, opts ...Option) (mapset.Set[gridmap.Coord], error) {
	p, err := prepare(g, opts)
	if err != nil {
		return mapset.Set[gridmap.Coord]{}, err
	}
	_, ceiling, err := p.search(false)
	if err != nil {
		return mapset.Set[gridmap.Coord]{}, err
	}
	return p.optimalCells(ceiling)
}

// CountOptimalCells returns the size of OptimalCells.
func CountOptimalCells(g *gridmap.Grid, opts ...Option) (int, error) {
	cells, err := OptimalCells(g, opts...)
	if err != nil {
		return 0, err
	}
	return cells.Size(), nil
}

// optimalCells runs the path-record pass bounded by ceiling.
func (p *problem) optimalCells(ceiling int64) (mapset.Set[gridmap.Coord], error) {
	cells := mapset.New[gridmap.Coord]()
	best := make(map[State]int64)
	exp := expansion{p: p}

	var pq pathPQ
	heap.Init(&pq)
	heap.Push(&pq, newPath(p.seed()))

	for pq.Len() > 0 {
		// 1) Pop the cheapest path and stop once it costs more than the minimum.
		cur := heap.Pop(&pq).(Path)
		if cur.Cost > ceiling {
			break
		}

		// 2) Drop it if its state was reached strictly cheaper. Ties pass.
		if b, ok := best[cur.State]; ok && b < cur.Cost {
			continue
		}
		best[cur.State] = cur.Cost

		// 3) A cheapest arrival contributes its whole history.
		if cur.State.Pos == p.goal {
			if cur.Cost == ceiling {
				for _, c := range cur.Cells {
					cells.Put(c)
				}
			}
			continue
		}

		// 4) Extend by every successor still within the minimum.
		if err := exp.visit(cur.State, cur.Cost); err != nil {
			return mapset.Set[gridmap.Coord]{}, err
		}
		for _, t := range p.next(cur.State) {
			edge := p.cost(cur.State, t)
			nc := cur.Cost + edge
			if nc > ceiling {
				continue
			}
			if b, ok := best[t]; ok && b < nc {
				continue
			}
			heap.Push(&pq, cur.extend(t, edge))
		}
	}

	if cells.Size() == 0 {
		return mapset.Set[gridmap.Coord]{}, fmt.Errorf("%w: no route of cost %d", ErrUnreachable, ceiling)
	}
	return cells, nil
}
