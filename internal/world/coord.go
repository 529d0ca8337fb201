// Package world provides the hex grid of editable terrain cells: coordinates,
// adjacency, cell state with its river and road rules, and the dirty-region
// protocol that tells renderers which chunks to rebuild.
package world

import (
	"fmt"
	"math"
)

// Coord is a cube coordinate on the hex grid. Only X and Z are stored;
// Y is derived so that X+Y+Z == 0 always holds.
type Coord struct {
	X int `json:"x"`
	Z int `json:"z"`
}

// NewCoord builds a coordinate from its X and Z cube components.
func NewCoord(x, z int) Coord {
	return Coord{X: x, Z: z}
}

// Y returns the implicit third cube component.
func (c Coord) Y() int {
	return -c.X - c.Z
}

// FromOffset converts a staggered (col, row) layout position into a cube
// coordinate. Odd rows are shifted half a cell to the right of even rows.
func FromOffset(col, row int) Coord {
	return Coord{X: col - row/2, Z: row}
}

// Offset converts back to the staggered (col, row) layout.
func (c Coord) Offset() (col, row int) {
	return c.X + c.Z/2, c.Z
}

// FromPosition returns the coordinate of the cell containing a world position.
// Rounding happens in cube space; if the rounded components do not sum to
// zero, the one with the largest rounding error is rebuilt from the others.
func FromPosition(p Vec3) Coord {
	x := p.X / (InnerRadius * 2)
	y := -x

	offset := p.Z / (OuterRadius * 3)
	x -= offset
	y -= offset

	iX := int(math.RoundToEven(x))
	iY := int(math.RoundToEven(y))
	iZ := int(math.RoundToEven(-x - y))

	if iX+iY+iZ != 0 {
		dX := math.Abs(x - float64(iX))
		dY := math.Abs(y - float64(iY))
		dZ := math.Abs(-x - y - float64(iZ))

		if dX > dY && dX > dZ {
			iX = -iY - iZ
		} else if dZ > dY {
			iZ = -iX - iY
		}
	}

	return Coord{X: iX, Z: iZ}
}

// neighborOffsets are the cube deltas for each Direction, matching the
// grid wiring (rows grow toward +Z, which is north).
var neighborOffsets = [6]Coord{
	NE: {X: 0, Z: 1},
	E:  {X: 1, Z: 0},
	SE: {X: 1, Z: -1},
	SW: {X: 0, Z: -1},
	W:  {X: -1, Z: 0},
	NW: {X: -1, Z: 1},
}

// Neighbor returns the adjacent coordinate in direction d.
func (c Coord) Neighbor(d Direction) Coord {
	return c.Step(d, 1)
}

// Step moves n cells in direction d.
func (c Coord) Step(d Direction, n int) Coord {
	o := neighborOffsets[d]
	return Coord{X: c.X + o.X*n, Z: c.Z + o.Z*n}
}

// Distance returns the hex distance between two coordinates.
func Distance(a, b Coord) int {
	dx := abs(a.X - b.X)
	dy := abs(a.Y() - b.Y())
	dz := abs(a.Z - b.Z)
	return max(dx, dy, dz)
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d, %d)", c.X, c.Y(), c.Z)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
