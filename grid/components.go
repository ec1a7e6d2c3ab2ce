package grid

import "github.com/katalvlaran/aockit/coord"

// Components partitions every cell of g into connected regions. Two
// neighbouring cells (under conn) belong to the same region when
// same(a, b) holds for their values; same must be symmetric.
//
// Regions are listed in the row-major order of their first cell, and each
// region lists its cells in breadth-first order from that cell.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func Components[T any](g [][]T, conn Connectivity, same func(a, b T) bool) [][]coord.Coord {
	seen := make([][]bool, len(g))
	for y, row := range g {
		seen[y] = make([]bool, len(row))
	}
	var comps [][]coord.Coord

	for y, row := range g {
		for x := range row {
			if seen[y][x] {
				continue
			}
			// BFS to collect component
			c0 := coord.New(int64(x), int64(y))
			queue := []coord.Coord{c0}
			seen[y][x] = true

			for qi := 0; qi < len(queue); qi++ {
				u := queue[qi]
				uv := g[u.Y][u.X]
				for _, v := range Neighbors(g, u, conn) {
					if seen[v.Y][v.X] || !same(uv, g[v.Y][v.X]) {
						continue
					}
					seen[v.Y][v.X] = true
					queue = append(queue, v)
				}
			}
			comps = append(comps, queue)
		}
	}

	return comps
}

// Perimeter counts the sides of region cells that do not touch another cell
// of the same region, including sides on the grid edge. region is typically
// one entry of Components.
// Complexity: O(len(region)).
func Perimeter(region []coord.Coord) int {
	in := make(map[coord.Coord]struct{}, len(region))
	for _, c := range region {
		in[c] = struct{}{}
	}
	sides := 0
	for _, c := range region {
		for _, n := range c.Neighbors4() {
			if _, ok := in[n]; !ok {
				sides++
			}
		}
	}

	return sides
}
