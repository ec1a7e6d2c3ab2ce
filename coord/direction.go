package coord

import (
	"errors"
	"fmt"
	"strings"
)

// ErrBadDirection indicates a string that names no Direction.
var ErrBadDirection = errors.New("coord: unknown direction")

// Direction is one of the four cardinal moves on a grid.
// The zero value is Up; values are ordered clockwise.
type Direction uint8

const (
	// Up moves one row towards Y=0.
	Up Direction = iota
	// Right moves one column towards +X.
	Right
	// Down moves one row towards +Y.
	Down
	// Left moves one column towards X=0.
	Left
)

// Cardinals lists the directions in clockwise order starting at Up.
var Cardinals = [4]Direction{Up, Right, Down, Left}

var directionDeltas = [4]Coord{
	Up:    {X: 0, Y: -1},
	Right: {X: 1, Y: 0},
	Down:  {X: 0, Y: 1},
	Left:  {X: -1, Y: 0},
}

// Delta returns the unit coordinate offset of d.
// Values outside the enumeration yield the zero Coord.
func (d Direction) Delta() Coord {
	if int(d) >= len(directionDeltas) {
		return Coord{}
	}

	return directionDeltas[d]
}

// Invert returns the opposite direction.
func (d Direction) Invert() Direction {
	return (d + 2) % 4
}

// RotateRight turns d a quarter clockwise: Up→Right→Down→Left→Up.
func (d Direction) RotateRight() Direction {
	return (d + 1) % 4
}

// RotateLeft turns d a quarter counter-clockwise.
func (d Direction) RotateLeft() Direction {
	return (d + 3) % 4
}

// Compass returns the eight-way heading that matches d.
func (d Direction) Compass() Compass {
	return Compass(d%4) * 2
}

// String returns the lower-case name of d.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	}

	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// ParseDirection accepts the single-letter and long forms used in puzzle
// inputs ("u", "up", "R", "Right", ...), case-insensitively.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "u", "up":
		return Up, nil
	case "r", "right":
		return Right, nil
	case "d", "down":
		return Down, nil
	case "l", "left":
		return Left, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrBadDirection, s)
}

// Compass is one of the eight headings around a cell, ordered clockwise
// from N.
type Compass uint8

const (
	N Compass = iota
	NE
	E
	SE
	S
	SW
	W
	NW
)

// Compasses lists every heading in clockwise order starting at N.
var Compasses = [8]Compass{N, NE, E, SE, S, SW, W, NW}

// Diagonals lists the four diagonal headings.
var Diagonals = [4]Compass{NE, SE, SW, NW}

var compassDeltas = [8]Coord{
	N:  {X: 0, Y: -1},
	NE: {X: 1, Y: -1},
	E:  {X: 1, Y: 0},
	SE: {X: 1, Y: 1},
	S:  {X: 0, Y: 1},
	SW: {X: -1, Y: 1},
	W:  {X: -1, Y: 0},
	NW: {X: -1, Y: -1},
}

var compassNames = [8]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

// Delta returns the unit coordinate offset of c.
// Values outside the enumeration yield the zero Coord.
func (c Compass) Delta() Coord {
	if int(c) >= len(compassDeltas) {
		return Coord{}
	}

	return compassDeltas[c]
}

// Invert returns the opposite heading.
func (c Compass) Invert() Compass {
	return (c + 4) % 8
}

// RotateRight turns c by 45° clockwise (N→NE).
func (c Compass) RotateRight() Compass {
	return (c + 1) % 8
}

// RotateLeft turns c by 45° counter-clockwise (N→NW).
func (c Compass) RotateLeft() Compass {
	return (c + 7) % 8
}

// IsDiagonal reports whether c is one of NE, SE, SW, NW.
func (c Compass) IsDiagonal() bool {
	return c%2 == 1
}

// Cardinal converts c to a Direction; ok is false for diagonals.
func (c Compass) Cardinal() (Direction, bool) {
	if c.IsDiagonal() || int(c) >= len(compassDeltas) {
		return 0, false
	}

	return Direction(c / 2), true
}

// String returns the upper-case abbreviation of c ("N", "SW", ...).
func (c Compass) String() string {
	if int(c) >= len(compassNames) {
		return fmt.Sprintf("Compass(%d)", uint8(c))
	}

	return compassNames[c]
}
