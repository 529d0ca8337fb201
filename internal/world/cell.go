package world

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Cell is one hex tile. All mutation goes through its setters, which keep
// rivers and roads legal and report the chunks that need rebuilding.
//
// Neighbor and chunk pointers are non-owning; the Grid owns every Cell and Chunk.
type Cell struct {
	coord    Coord
	position Vec3

	elevation  int
	waterLevel int

	urbanLevel, farmLevel, plantLevel int

	walled bool
	color  colorful.Color

	chunk     *Chunk
	neighbors [6]*Cell
	roads     [6]bool

	hasIncomingRiver, hasOutgoingRiver bool
	incomingRiver, outgoingRiver       Direction

	sampler Sampler
}

func newCell(coord Coord, position Vec3, sampler Sampler) *Cell {
	return &Cell{
		coord:     coord,
		position:  position,
		elevation: ElevationUnset,
		sampler:   sampler,
	}
}

// Coord returns the cell's hex coordinate.
func (c *Cell) Coord() Coord { return c.coord }

// Position returns the cell center in world space. Y reflects elevation plus perturbation.
func (c *Cell) Position() Vec3 { return c.position }

// Chunk returns the chunk that renders this cell, or nil before the grid assigns one.
func (c *Cell) Chunk() *Chunk { return c.chunk }

// Neighbor returns the adjacent cell in direction d, or nil at the grid edge.
func (c *Cell) Neighbor(d Direction) *Cell { return c.neighbors[d] }

// setNeighbor links c and other symmetrically.
func (c *Cell) setNeighbor(d Direction, other *Cell) {
	c.neighbors[d] = other
	other.neighbors[d.Opposite()] = c
}

// mustNeighbor returns the neighbor in direction d. Asking across an
// unwired edge is a caller bug, not an editing mistake.
func (c *Cell) mustNeighbor(d Direction) *Cell {
	n := c.neighbors[d]
	if n == nil {
		panic(fmt.Sprintf("world: cell %s has no neighbor %s", c.coord, d))
	}
	return n
}

func (c *Cell) Elevation() int  { return c.elevation }
func (c *Cell) WaterLevel() int { return c.waterLevel }
func (c *Cell) UrbanLevel() int { return c.urbanLevel }
func (c *Cell) FarmLevel() int  { return c.farmLevel }
func (c *Cell) PlantLevel() int { return c.plantLevel }
func (c *Cell) Walled() bool    { return c.walled }

func (c *Cell) Color() colorful.Color { return c.color }

// IsUnderwater reports whether the water surface is above the cell's ground.
func (c *Cell) IsUnderwater() bool {
	return c.waterLevel > c.elevation
}

// ElevationDifference returns the absolute elevation step to the neighbor in direction d.
// Panics if there is no neighbor in that direction.
func (c *Cell) ElevationDifference(d Direction) int {
	return abs(c.elevation - c.mustNeighbor(d).elevation)
}

// EdgeType classifies the edge toward the neighbor in direction d.
// Panics if there is no neighbor in that direction.
func (c *Cell) EdgeType(d Direction) EdgeType {
	return EdgeTypeFor(c.elevation, c.mustNeighbor(d).elevation)
}

// EdgeTypeWith classifies the connection between c and any other cell.
func (c *Cell) EdgeTypeWith(other *Cell) EdgeType {
	return EdgeTypeFor(c.elevation, other.elevation)
}

// StreamBedY is the world height of a river bed running through the cell.
func (c *Cell) StreamBedY() float64 {
	return (float64(c.elevation) + StreamBedElevationOffset) * ElevationStep
}

// RiverSurfaceY is the world height of a river surface in the cell.
func (c *Cell) RiverSurfaceY() float64 {
	return (float64(c.elevation) + WaterElevationOffset) * ElevationStep
}

// WaterSurfaceY is the world height of standing water in the cell.
func (c *Cell) WaterSurfaceY() float64 {
	return (float64(c.waterLevel) + WaterElevationOffset) * ElevationStep
}

// SetElevation raises or lowers the cell. Rivers that would now flow uphill
// (and do not end in water) are removed, as are roads across steps greater
// than one. Neighboring chunks are refreshed too since shared edges change.
func (c *Cell) SetElevation(elevation int) Edit {
	var e Edit
	if c.elevation == elevation {
		return e
	}
	e.Changed = true
	c.elevation = elevation

	c.position.Y = float64(elevation) * ElevationStep
	if c.sampler != nil {
		c.position.Y += (c.sampler.Sample(c.position).Y*2 - 1) * ElevationPerturbStrength
	}

	c.validateRivers(&e)

	for _, d := range Directions {
		if c.roads[d] && c.ElevationDifference(d) > 1 {
			c.setRoad(d, false, &e)
		}
	}

	c.refresh(&e)
	return e
}

// SetWaterLevel changes the standing water level and revalidates rivers.
func (c *Cell) SetWaterLevel(level int) Edit {
	var e Edit
	if c.waterLevel == level {
		return e
	}
	e.Changed = true
	c.waterLevel = level
	c.validateRivers(&e)
	c.refresh(&e)
	return e
}

func (c *Cell) SetColor(color colorful.Color) Edit {
	var e Edit
	if c.color == color {
		return e
	}
	e.Changed = true
	c.color = color
	c.refresh(&e)
	return e
}

func (c *Cell) SetWalled(walled bool) Edit {
	var e Edit
	if c.walled == walled {
		return e
	}
	e.Changed = true
	c.walled = walled
	c.refresh(&e)
	return e
}

// Feature densities only affect decorations inside the cell, so only the
// cell's own chunk is refreshed.

func (c *Cell) SetUrbanLevel(level int) Edit {
	return c.setLevel(&c.urbanLevel, level)
}

func (c *Cell) SetFarmLevel(level int) Edit {
	return c.setLevel(&c.farmLevel, level)
}

func (c *Cell) SetPlantLevel(level int) Edit {
	return c.setLevel(&c.plantLevel, level)
}

func (c *Cell) setLevel(field *int, level int) Edit {
	var e Edit
	if *field == level {
		return e
	}
	e.Changed = true
	*field = level
	c.refreshSelfOnly(&e)
	return e
}

// refresh marks the cell's chunk and every different chunk holding a neighbor.
// A cell not yet assigned to a chunk signals nothing.
func (c *Cell) refresh(e *Edit) {
	if c.chunk == nil {
		return
	}
	e.mark(c.chunk)
	for _, n := range c.neighbors {
		if n != nil && n.chunk != c.chunk {
			e.mark(n.chunk)
		}
	}
}

func (c *Cell) refreshSelfOnly(e *Edit) {
	e.mark(c.chunk)
}
