package gridmap

import "github.com/zyedidia/generic/mapset"

// Region returns every passable cell 4-connected to from, including from
// itself. The result is empty when from is a wall or outside the grid.
// Headings are ignored, so Region is a superset of what a heading-aware
// search can reach.
//
// Time:   O(W·H).
// Memory: O(W·H) for the visited set and queue.
func (g *Grid) Region(from Coord) mapset.Set[Coord] {
	seen := mapset.New[Coord]()
	if !g.Passable(from) {
		return seen
	}
	queue := []Coord{from}
	seen.Put(from)
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, h := range Headings() {
			v := u.Step(h)
			if !g.Passable(v) || seen.Has(v) {
				continue
			}
			seen.Put(v)
			queue = append(queue, v)
		}
	}
	return seen
}
