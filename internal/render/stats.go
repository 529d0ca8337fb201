package render

import "github.com/talgya/hexmap/internal/world"

// Stats counts terrain features on a grid.
type Stats struct {
	Cells        int
	Underwater   int
	RiverCells   int
	RoadCells    int
	Walled       int
	MinElevation int
	MaxElevation int
}

// Collect walks every cell of g.
func Collect(g *world.Grid) Stats {
	var s Stats
	for i, c := range g.Cells() {
		s.Cells++
		if c.IsUnderwater() {
			s.Underwater++
		}
		if c.HasRiver() {
			s.RiverCells++
		}
		if c.HasRoads() {
			s.RoadCells++
		}
		if c.Walled() {
			s.Walled++
		}
		e := c.Elevation()
		if i == 0 || e < s.MinElevation {
			s.MinElevation = e
		}
		if i == 0 || e > s.MaxElevation {
			s.MaxElevation = e
		}
	}
	return s
}
