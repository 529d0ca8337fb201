// Terrain seeding using layered simplex noise.
// Sculpts elevations and water through the public Cell setters, then traces
// rivers downhill from the highest ground, so every rule still applies.
package world

import (
	"math"
	"math/rand"
	"sort"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// SculptConfig holds terrain seeding parameters.
type SculptConfig struct {
	Seed         int64   // Noise and river source seed (0 = random)
	MaxElevation int     // Highest elevation step produced
	SeaLevel     int     // Water level applied to every cell
	Octaves      int     // Noise layers summed per sample
	Frequency    float64 // Base frequency in world units
	Persistence  float64 // Amplitude falloff per octave
	Rivers       int     // Maximum rivers traced
}

// DefaultSculptConfig returns gentle rolling terrain with a few rivers.
func DefaultSculptConfig() SculptConfig {
	return SculptConfig{
		Seed:         0,
		MaxElevation: 6,
		SeaLevel:     1,
		Octaves:      4,
		Frequency:    0.01,
		Persistence:  0.5,
		Rivers:       4,
	}
}

// Sculpt reshapes the whole grid from noise and returns the merged edit.
func Sculpt(g *Grid, cfg SculptConfig) Edit {
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Int63()
	}
	noise := opensimplex.NewNormalized(seed)

	var result Edit
	for _, cell := range g.cells {
		p := cell.position
		v := octaveNoise(noise, p.X, p.Z, cfg.Octaves, cfg.Frequency, cfg.Persistence)
		elevation := int(math.Round(v * float64(cfg.MaxElevation)))
		result.Merge(cell.SetElevation(elevation))
		result.Merge(cell.SetWaterLevel(cfg.SeaLevel))
	}

	result.Merge(placeRivers(g, cfg, seed))
	return result
}

// placeRivers picks sources among the highest dry cells and traces each downhill.
func placeRivers(g *Grid, cfg SculptConfig, seed int64) Edit {
	rng := rand.New(rand.NewSource(seed + 100))

	threshold := int(math.Ceil(float64(cfg.MaxElevation) * 0.65))
	var sources []*Cell
	for _, cell := range g.cells {
		if cell.elevation >= threshold && !cell.IsUnderwater() {
			sources = append(sources, cell)
		}
	}

	// Shuffle, then prefer higher sources; ties keep shuffled order.
	rng.Shuffle(len(sources), func(i, j int) {
		sources[i], sources[j] = sources[j], sources[i]
	})
	sort.SliceStable(sources, func(i, j int) bool {
		return sources[i].elevation > sources[j].elevation
	})
	if len(sources) > cfg.Rivers {
		sources = sources[:cfg.Rivers]
	}

	var result Edit
	for _, start := range sources {
		result.Merge(traceRiver(start))
	}
	return result
}

// traceRiver follows the steepest descent from start until it reaches water
// or runs out of downhill path. It never touches cells that already carry a
// river, so earlier rivers stay intact.
func traceRiver(start *Cell) Edit {
	var result Edit
	if start.HasRiver() {
		return result
	}

	current := start
	for {
		if current.IsUnderwater() {
			break
		}

		var best *Cell
		var bestDir Direction
		bestElev := current.elevation
		for _, d := range Directions {
			n := current.neighbors[d]
			if n == nil || n.HasRiver() {
				continue
			}
			if n.elevation < bestElev {
				best, bestDir, bestElev = n, d, n.elevation
			}
		}
		if best == nil {
			break // No downhill path; a lake would form here.
		}

		e := current.SetOutgoingRiver(bestDir)
		result.Merge(e)
		if !e.Changed {
			break
		}
		current = best
	}
	return result
}

// octaveNoise generates fractal noise by layering multiple frequencies.
func octaveNoise(noise opensimplex.Noise, x, y float64, octaves int, frequency, persistence float64) float64 {
	total := 0.0
	amplitude := 1.0
	maxVal := 0.0

	for i := 0; i < octaves; i++ {
		total += noise.Eval2(x*frequency, y*frequency) * amplitude
		maxVal += amplitude
		amplitude *= persistence
		frequency *= 2
	}

	if maxVal == 0 {
		return 0
	}
	return total / maxVal
}
