// Package aockit is a small in-memory toolkit of graph and grid algorithms
// for puzzle solvers: parse the input, build a graph or hand over a grid,
// ask for the answer.
//
// What is in the box?
//
//	coord/ - Coord (X, Y) values, cardinal Direction and eight-way Compass
//	         headings, saturating arithmetic and a total Coord ordering
//	graph/ - arena-backed directed multigraph with stable integer IDs:
//	         Dijkstra, all shortest paths, BFS, path counting, topological
//	         sort, fixed-size clique enumeration and Bron–Kerbosch
//	grid/  - Dijkstra over [][]T with a caller-supplied step-cost function,
//	         jagged-aware bounds helpers, connected regions and grid→graph
//	         conversion
//
// Conventions:
//
//   - X is the column and Y the row; a cell is g[c.Y][c.X] and Up is (0,-1).
//   - Failures are sentinel errors (graph.ErrNoPath, grid.ErrOutOfBounds, …)
//     wrapped with context; check them with errors.Is.
//   - Nothing logs unless a zerolog.Logger is passed with WithLogger.
//   - Every call is synchronous and runs to completion; there is no internal
//     locking.
//
// Quick ASCII example:
//
//	    A─1─B
//	    │   │
//	    1   1
//	    │   │
//	    C─1─D
//
//	g.AllShortestPaths(A, D) → [[A B D] [A C D]]
//
//	go get github.com/katalvlaran/aockit
package aockit
