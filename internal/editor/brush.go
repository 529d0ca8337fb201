package editor

import "github.com/talgya/hexmap/internal/world"

// MaxBrushSize is the largest brush radius, in cells.
const MaxBrushSize = 64

// Brush returns every coordinate within size steps of center. Rows below the
// center widen toward it and rows above narrow away from it, which together
// trace a hexagon in cube space. Coordinates may fall outside the grid;
// Grid.Cell returns nil for those. size is clamped to [0, MaxBrushSize].
func Brush(center world.Coord, size int) []world.Coord {
	size = min(max(size, 0), MaxBrushSize)
	cx, cz := center.X, center.Z
	coords := make([]world.Coord, 0, 3*size*(size+1)+1)

	for r, z := 0, cz-size; z <= cz; z, r = z+1, r+1 {
		for x := cx - r; x <= cx+size; x++ {
			coords = append(coords, world.NewCoord(x, z))
		}
	}
	for r, z := 0, cz+size; z > cz; z, r = z-1, r+1 {
		for x := cx - size; x <= cx+r; x++ {
			coords = append(coords, world.NewCoord(x, z))
		}
	}
	return coords
}
