// Package turnsearch finds cheapest routes through a gridmap.Grid when
// changing heading costs extra.
//
// Overview:
//
//   - A search node is a State: a cell together with the heading it is
//     faced in. The same cell reached facing two different headings is two
//     different nodes.
//   - From a State the walker may step forward or turn 90° and step; it may
//     never reverse in place. Walls and (by default) the start cell are never
//     entered.
//   - A forward step costs 1. Each quarter turn adds the turn penalty
//     (1000 unless configured), so a step after a 90° turn costs 1+penalty.
//
// Queries:
//
//   - MinCost: the cheapest total cost from the start, facing east, to any
//     State located on the goal cell (uniform-cost search).
//   - ShortestRoute: the same cost plus one cheapest Path. Which of several
//     equally cheap paths is returned is not specified.
//   - OptimalCells: the set of every cell lying on at least one cheapest
//     path. It runs MinCost first and then a second pass that only keeps
//     partial paths whose cost does not exceed the minimum.
//
// Options:
//
//   - WithTurnPenalty(p):   cost added per quarter turn (0 ≤ p ≤ MaxTurnPenalty).
//   - WithStartHeading(h):  initial heading (East by default).
//   - From(c), To(c):       explicit endpoints instead of the S and E tags.
//   - WithStartReentry():   allow routes that pass back over the start cell.
//   - WithMaxExpansions(n): fail with ErrExpansionLimit after n expansions.
//   - WithOnExpand(fn):     hook called for every expanded State.
//
// Complexity:
//
//   - MinCost:      O(S log S) with S = 4·W·H states, lazy decrease-key.
//   - OptimalCells: output-sensitive; every equally cheap partial path is
//     kept, each carrying its own cell history. With a large penalty ties are
//     rare. With a small or zero penalty an open room of side n holds
//     exponentially many equally cheap staircase paths, and the second pass
//     grows with them (a 12×12 empty room already takes about half a second
//     at penalty 0). Use WithMaxExpansions to bound such inputs.
//
// Errors (sentinel):
//
//   - ErrNilGrid        if the grid pointer is nil.
//   - ErrBadEndpoint    if an explicit endpoint is outside the grid or a wall.
//   - ErrUnreachable    if no route reaches the goal.
//   - ErrExpansionLimit if WithMaxExpansions was exceeded.
//   - ErrCostOverflow   if the grid is too large for the turn penalty.
//   - gridmap endpoint errors (ErrNoStart, ErrMultipleGoals, ...) when the
//     endpoints are taken from the grid tags.
package turnsearch
