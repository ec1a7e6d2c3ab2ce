package grid

import (
	"fmt"

	"github.com/emirpasic/gods/trees/binaryheap"

	"github.com/katalvlaran/aockit/coord"
)

// Dijkstra returns a cheapest path from start to end, inclusive of both
// cells, together with its total cost.
//
// Moves are restricted to the four cardinal neighbours. Each step is priced
// by cost; a step priced Impassable is never taken, and an accumulated cost
// that saturates to Impassable counts as no improvement. Heap ties are
// broken by coord.Compare so equal-cost runs are deterministic.
//
// When start == end the path is [start] with cost 0, which is distinct from
// ErrNoPath.
//
// Errors:
//
//   - ErrNilCostFunc  if cost is nil.
//   - ErrBadMaxCost   if WithMaxCost was given a negative cap.
//   - ErrOutOfBounds  if start or end lies outside g.
//   - ErrNegativeCost if cost returns a negative step.
//   - ErrNoPath       if end cannot be reached within MaxCost.
//
// Complexity: O(W×H log(W×H)) time, O(W×H) memory.
func Dijkstra[T any](g [][]T, start, end coord.Coord, cost CostFunc[T], opts ...Option) ([]coord.Coord, int64, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cost == nil {
		return nil, 0, ErrNilCostFunc
	}
	if cfg.MaxCost < 0 {
		return nil, 0, ErrBadMaxCost
	}
	if !InBounds(g, start) {
		return nil, 0, fmt.Errorf("%w: start %s", ErrOutOfBounds, start)
	}
	if !InBounds(g, end) {
		return nil, 0, fmt.Errorf("%w: end %s", ErrOutOfBounds, end)
	}
	if start == end {
		return []coord.Coord{start}, 0, nil
	}

	s := newSearch(g, cost, cfg.MaxCost)
	if err := s.run(start, end); err != nil {
		return nil, 0, err
	}
	total := s.dist[end.Y][end.X]
	if !s.done[end.Y][end.X] {
		cfg.Logger.Debug().
			Stringer("start", start).
			Stringer("end", end).
			Int("explored", s.explored).
			Msg("grid: end unreachable")
		return nil, 0, fmt.Errorf("%w: %s→%s", ErrNoPath, start, end)
	}

	path, err := s.path(start, end)
	if err != nil {
		return nil, 0, err
	}
	cfg.Logger.Debug().
		Stringer("start", start).
		Stringer("end", end).
		Int64("cost", total).
		Int("steps", len(path)-1).
		Int("explored", s.explored).
		Msg("grid: path found")

	return path, total, nil
}

// search holds the per-call tables. dist and done mirror the row lengths of
// the grid, so jagged grids are indexed safely.
type search[T any] struct {
	g        [][]T
	cost     CostFunc[T]
	maxCost  int64
	dist     [][]int64
	done     [][]bool
	prev     map[coord.Coord]coord.Coord
	pq       *binaryheap.Heap
	explored int
}

// frontier is a heap entry: a cell and the cost it was pushed with.
type frontier struct {
	at   coord.Coord
	cost int64
}

// byCostThenCoord orders frontier entries by cost, then by coordinate.
func byCostThenCoord(a, b interface{}) int {
	x, y := a.(frontier), b.(frontier)
	switch {
	case x.cost < y.cost:
		return -1
	case x.cost > y.cost:
		return 1
	}

	return coord.Compare(x.at, y.at)
}

func newSearch[T any](g [][]T, cost CostFunc[T], maxCost int64) *search[T] {
	s := &search[T]{
		g:       g,
		cost:    cost,
		maxCost: maxCost,
		dist:    make([][]int64, len(g)),
		done:    make([][]bool, len(g)),
		prev:    make(map[coord.Coord]coord.Coord),
		pq:      binaryheap.NewWith(byCostThenCoord),
	}
	for y, row := range g {
		s.dist[y] = make([]int64, len(row))
		s.done[y] = make([]bool, len(row))
		for x := range s.dist[y] {
			s.dist[y][x] = Impassable
		}
	}

	return s
}

// run pops cells in cost order until end is finalized or the heap drains.
func (s *search[T]) run(start, end coord.Coord) error {
	s.dist[start.Y][start.X] = 0
	s.pq.Push(frontier{at: start, cost: 0})

	for !s.pq.Empty() {
		item, _ := s.pq.Pop()
		cur := item.(frontier)
		// Stale entry left behind by a later, cheaper push.
		if s.done[cur.at.Y][cur.at.X] {
			continue
		}
		s.done[cur.at.Y][cur.at.X] = true
		s.explored++
		if cur.at == end {
			return nil
		}
		if err := s.relax(cur.at, cur.cost); err != nil {
			return err
		}
	}

	return nil
}

// relax prices the four cardinal steps out of cur.
func (s *search[T]) relax(cur coord.Coord, acc int64) error {
	for _, d := range coord.Cardinals {
		next := cur.Step(d)
		if !InBounds(s.g, next) || s.done[next.Y][next.X] {
			continue
		}
		step := s.cost(s.g, cur, acc, next)
		if step == Impassable {
			continue
		}
		if step < 0 {
			return fmt.Errorf("%w: %s→%s cost=%d", ErrNegativeCost, cur, next, step)
		}
		total := coord.SaturatingAdd(acc, step)
		if total == Impassable || total > s.maxCost || total >= s.dist[next.Y][next.X] {
			continue
		}
		s.dist[next.Y][next.X] = total
		s.prev[next] = cur
		s.pq.Push(frontier{at: next, cost: total})
	}

	return nil
}

// path walks the predecessor table back from end. A chain that stops short
// of start is reported as ErrNoPath rather than returned partially.
func (s *search[T]) path(start, end coord.Coord) ([]coord.Coord, error) {
	rev := []coord.Coord{end}
	for cur := end; cur != start; {
		p, ok := s.prev[cur]
		if !ok {
			return nil, fmt.Errorf("%w: broken chain at %s", ErrNoPath, cur)
		}
		rev = append(rev, p)
		cur = p
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev, nil
}
