package world

import "math"

// Hex geometry for pointy-top cells laid out in staggered rows.
const (
	// Center to corner.
	OuterRadius = 10.0
	// Center to edge midpoint (outer * √3/2).
	InnerRadius = OuterRadius * 0.866025404
)

// Vertical metrics. Elevation and water levels are integer steps; world
// heights are derived from them. ElevationPerturbStrength is the largest
// vertical offset noise adds, in world units.
const (
	ElevationStep            = 3.0
	ElevationPerturbStrength = 1.5
	StreamBedElevationOffset = -1.75
	WaterElevationOffset     = -0.5
)

// Chunk tiling and noise sampling defaults.
const (
	ChunkSizeX = 5
	ChunkSizeZ = 5

	NoiseScale    = 0.003
	HashGridSize  = 256
	HashGridScale = 0.25
)

// ElevationUnset is the elevation of a cell that has never been assigned one.
const ElevationUnset = math.MinInt

// Vec3 is a point in world space. Y is up; the grid lies in the XZ plane.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Vec4 is a four-channel sample, as returned by a noise source.
type Vec4 struct {
	X, Y, Z, W float64
}

// EdgeType classifies the connection between two adjacent cells.
type EdgeType uint8

const (
	EdgeFlat  EdgeType = iota // Same elevation
	EdgeSlope                 // One step apart
	EdgeCliff                 // Two or more steps apart
)

// EdgeTypeFor returns the edge type between two elevations.
func EdgeTypeFor(elevation1, elevation2 int) EdgeType {
	if elevation1 == elevation2 {
		return EdgeFlat
	}
	delta := elevation2 - elevation1
	if delta == 1 || delta == -1 {
		return EdgeSlope
	}
	return EdgeCliff
}

// String returns a human-readable name for an edge type.
func (t EdgeType) String() string {
	switch t {
	case EdgeFlat:
		return "Flat"
	case EdgeSlope:
		return "Slope"
	case EdgeCliff:
		return "Cliff"
	default:
		return "Unknown"
	}
}
