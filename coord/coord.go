package coord

import (
	"fmt"
	"math"
	"math/bits"
)

// Coord is a point or cell in 2D integer space.
// It may hold negative components, e.g. as an intermediate result of
// direction arithmetic; use AsUnsigned before indexing.
type Coord struct {
	X, Y int64
}

// New constructs a Coord. No validation is performed.
func New(x, y int64) Coord {
	return Coord{X: x, Y: y}
}

// Add returns c+o component-wise, saturating at the int64 limits.
func (c Coord) Add(o Coord) Coord {
	return Coord{X: SaturatingAdd(c.X, o.X), Y: SaturatingAdd(c.Y, o.Y)}
}

// Sub returns c-o component-wise, saturating at the int64 limits.
func (c Coord) Sub(o Coord) Coord {
	return Coord{X: SaturatingSub(c.X, o.X), Y: SaturatingSub(c.Y, o.Y)}
}

// Scale multiplies both components by k, saturating at the int64 limits.
func (c Coord) Scale(k int64) Coord {
	return Coord{X: SaturatingMul(c.X, k), Y: SaturatingMul(c.Y, k)}
}

// Unit returns the component-wise sign of c, each component in {-1, 0, 1}.
func (c Coord) Unit() Coord {
	return Coord{X: sign(c.X), Y: sign(c.Y)}
}

// Step returns the neighbour of c one move in direction d.
func (c Coord) Step(d Direction) Coord {
	return c.Add(d.Delta())
}

// Move returns c moved n steps in direction d.
func (c Coord) Move(d Direction, n int64) Coord {
	return c.Add(d.Delta().Scale(n))
}

// Neighbors4 returns the four cardinal neighbours in Cardinals order.
func (c Coord) Neighbors4() [4]Coord {
	var out [4]Coord
	for i, d := range Cardinals {
		out[i] = c.Step(d)
	}

	return out
}

// Neighbors8 returns the eight surrounding cells in Compasses order.
func (c Coord) Neighbors8() [8]Coord {
	var out [8]Coord
	for i, d := range Compasses {
		out[i] = c.Add(d.Delta())
	}

	return out
}

// Manhattan returns the L1 distance |dx|+|dy| between c and o.
// The result saturates at math.MaxUint64 and never panics.
func (c Coord) Manhattan(o Coord) uint64 {
	dx := absDiff(c.X, o.X)
	dy := absDiff(c.Y, o.Y)
	sum, carry := bits.Add64(dx, dy, 0)
	if carry != 0 {
		return math.MaxUint64
	}

	return sum
}

// Euclidean returns the L2 distance between c and o.
func (c Coord) Euclidean(o Coord) float64 {
	return math.Hypot(float64(absDiff(c.X, o.X)), float64(absDiff(c.Y, o.Y)))
}

// Norm returns the Euclidean distance of c from the origin.
func (c Coord) Norm() float64 {
	return c.Euclidean(Coord{})
}

// AsUnsigned returns the components as slice indices.
// ok is false when either component is negative.
func (c Coord) AsUnsigned() (x, y uint, ok bool) {
	if c.X < 0 || c.Y < 0 {
		return 0, 0, false
	}

	return uint(c.X), uint(c.Y), true
}

// Compare orders a and b by squared Euclidean norm from the origin, then by
// X, then by Y. It returns -1, 0 or +1.
func Compare(a, b Coord) int {
	ahi, alo := sqNorm(a)
	bhi, blo := sqNorm(b)
	switch {
	case ahi != bhi:
		return cmpU64(ahi, bhi)
	case alo != blo:
		return cmpU64(alo, blo)
	case a.X != b.X:
		return cmpI64(a.X, b.X)
	default:
		return cmpI64(a.Y, b.Y)
	}
}

// Less reports whether c sorts before o under Compare.
func (c Coord) Less(o Coord) bool {
	return Compare(c, o) < 0
}

// String formats c as "(x, y)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

// sqNorm returns x²+y² as a 128-bit value (hi, lo). Each square is below
// 2^127 so the sum cannot overflow 128 bits.
func sqNorm(c Coord) (hi, lo uint64) {
	ax, ay := absDiff(c.X, 0), absDiff(c.Y, 0)
	xhi, xlo := bits.Mul64(ax, ax)
	yhi, ylo := bits.Mul64(ay, ay)
	lo, carry := bits.Add64(xlo, ylo, 0)
	hi, _ = bits.Add64(xhi, yhi, carry)

	return hi, lo
}

// absDiff returns |a-b| without overflow: the true difference of two int64
// values always fits in a uint64.
func absDiff(a, b int64) uint64 {
	if a >= b {
		return uint64(a) - uint64(b)
	}

	return uint64(b) - uint64(a)
}

func sign(v int64) int64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

func cmpU64(a, b uint64) int {
	if a < b {
		return -1
	}
	return 1
}

func cmpI64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
