// Package mazepath finds cheapest routes through character mazes where
// turning costs far more than walking.
//
// 🚀 What is mazepath?
//
//	A small, dependency-light toolkit that brings together:
//		• gridmap:    an immutable maze map parsed from text ('#', '.', 'S', 'E')
//		• turnsearch: uniform-cost search over (cell, heading) states
//		• config:     .env / environment settings for the command
//		• cmd/mazepath: read a maze, print the answers
//
// ✨ The rules
//
//   - The walker starts on S facing east and wants to reach E.
//   - A step forward costs 1; every quarter turn adds the turn penalty
//     (1000 by default). Reversing in place is not allowed.
//   - MinCost returns the cheapest score; OptimalCells returns every cell
//     that lies on at least one route with that score.
//
// Quick ASCII example:
//
//	#######
//	#####E#
//	#####.#
//	#####.#
//	#S....#
//	#######
//
// costs 7 steps + 1 turn = 1007.
//
//	go get github.com/katalvlaran/mazepath
package mazepath
