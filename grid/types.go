package grid

import (
	"errors"
	"math"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/aockit/coord"
)

// Sentinel errors for grid operations.
var (
	// ErrOutOfBounds indicates a start or end coordinate outside the grid.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
	// ErrNoPath indicates the end cell cannot be reached from the start cell.
	ErrNoPath = errors.New("grid: no path between cells")
	// ErrNilCostFunc indicates a search was started without a cost function.
	ErrNilCostFunc = errors.New("grid: cost function is nil")
	// ErrNegativeCost indicates the cost function returned a negative step.
	ErrNegativeCost = errors.New("grid: negative step cost")
	// ErrBadMaxCost indicates MaxCost was set to a negative value.
	ErrBadMaxCost = errors.New("grid: MaxCost must be non-negative")
)

// Impassable is the step cost that marks a neighbour as blocked.
const Impassable int64 = math.MaxInt64

// CostFunc returns the cost of stepping from current to next, given the
// cost already accumulated to reach current. Return Impassable to forbid
// the step. next is always inside the grid.
type CostFunc[T any] func(g [][]T, current coord.Coord, accumulated int64, next coord.Coord) int64

// Connectivity selects neighbour connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Options configures a grid search.
//
// Logger  – receives one debug event per search. Default zerolog.Nop().
// MaxCost – cells whose accumulated cost would exceed this are not expanded.
//
//	Must be ≥ 0. Default is Impassable (no cap).
type Options struct {
	Logger  zerolog.Logger
	MaxCost int64
}

// Option represents a functional option for configuring a search.
type Option func(*Options)

// DefaultOptions returns Options with no cost cap and a silent logger.
func DefaultOptions() Options {
	return Options{
		Logger:  zerolog.Nop(),
		MaxCost: Impassable,
	}
}

// WithLogger routes search summaries to l.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithMaxCost caps the accumulated cost the search will explore.
// An end cell beyond the cap is reported as ErrNoPath.
func WithMaxCost(limit int64) Option {
	return func(o *Options) {
		o.MaxCost = limit
	}
}
