package world

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

// countingRegion records notifications from a chunk.
type countingRegion struct {
	dirty   int
	visible bool
}

func (r *countingRegion) MarkDirty()                { r.dirty++ }
func (r *countingRegion) SetUIVisible(visible bool) { r.visible = visible }

// newTestGrid builds an unperturbed grid and returns the external regions
// by chunk index.
func newTestGrid(t *testing.T, chunksX, chunksZ, sizeX, sizeZ int) (*Grid, []*countingRegion) {
	t.Helper()
	regions := make([]*countingRegion, chunksX*chunksZ)
	g, err := NewGrid(Config{
		ChunkCountX:  chunksX,
		ChunkCountZ:  chunksZ,
		ChunkSizeX:   sizeX,
		ChunkSizeZ:   sizeZ,
		Seed:         7,
		DefaultColor: colorful.Color{R: 1, G: 1, B: 1},
		NewRegion: func(i int) Region {
			regions[i] = &countingRegion{}
			return regions[i]
		},
	})
	if err != nil {
		t.Fatalf("NewGrid() failed: %v", err)
	}
	return g, regions
}

func mustCell(t *testing.T, g *Grid, col, row int) *Cell {
	t.Helper()
	c := g.CellAtOffset(col, row)
	if c == nil {
		t.Fatalf("no cell at (%d, %d)", col, row)
	}
	return c
}

func mustValidate(t *testing.T, g *Grid) {
	t.Helper()
	if err := g.Validate(); err != nil {
		t.Fatalf("grid invariants violated:\n%v", err)
	}
}
