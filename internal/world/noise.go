package world

import (
	"math/rand"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// Sampler provides deterministic perturbation noise for a world position.
// Each channel of the result is in [0, 1].
type Sampler interface {
	Sample(p Vec3) Vec4
}

// SimplexSampler samples four independent simplex layers in the XZ plane.
type SimplexSampler struct {
	layers [4]opensimplex.Noise
	scale  float64
}

// NewSimplexSampler creates a sampler whose layers are seeded seed..seed+3.
// scale converts world units to noise space; NoiseScale is the usual value.
func NewSimplexSampler(seed int64, scale float64) *SimplexSampler {
	s := &SimplexSampler{scale: scale}
	for i := range s.layers {
		s.layers[i] = opensimplex.NewNormalized(seed + int64(i))
	}
	return s
}

// Sample returns the four noise channels at p.
func (s *SimplexSampler) Sample(p Vec3) Vec4 {
	x, z := p.X*s.scale, p.Z*s.scale
	return Vec4{
		X: s.layers[0].Eval2(x, z),
		Y: s.layers[1].Eval2(x, z),
		Z: s.layers[2].Eval2(x, z),
		W: s.layers[3].Eval2(x, z),
	}
}

// Hash is one entry of the hash grid: five independent values in [0, 0.999).
type Hash struct {
	A, B, C, D, E float64
}

// HashGrid is a seeded table of random values tiled over the world, used by
// renderers to vary features per location without storing state in cells.
type HashGrid struct {
	seed  int64
	cells []Hash
}

// NewHashGrid fills a HashGridSize×HashGridSize table from seed.
func NewHashGrid(seed int64) *HashGrid {
	rng := rand.New(rand.NewSource(seed))
	g := &HashGrid{
		seed:  seed,
		cells: make([]Hash, HashGridSize*HashGridSize),
	}
	for i := range g.cells {
		g.cells[i] = Hash{
			A: rng.Float64() * 0.999,
			B: rng.Float64() * 0.999,
			C: rng.Float64() * 0.999,
			D: rng.Float64() * 0.999,
			E: rng.Float64() * 0.999,
		}
	}
	return g
}

// Seed returns the seed the grid was built from.
func (g *HashGrid) Seed() int64 {
	return g.seed
}

// Sample returns the hash for the tile containing p. The table wraps in both axes.
func (g *HashGrid) Sample(p Vec3) Hash {
	x := int(p.X*HashGridScale) % HashGridSize
	if x < 0 {
		x += HashGridSize
	}
	z := int(p.Z*HashGridScale) % HashGridSize
	if z < 0 {
		z += HashGridSize
	}
	return g.cells[x+z*HashGridSize]
}
