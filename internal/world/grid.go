package world

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidSize is returned for non-positive chunk counts or chunk sizes.
var ErrInvalidSize = errors.New("grid dimensions must be positive")

// Config holds everything a Grid needs at construction. Nothing is read
// from package-level state.
type Config struct {
	ChunkCountX int // Chunks per row
	ChunkCountZ int // Chunk rows
	ChunkSizeX  int // Cells per chunk row
	ChunkSizeZ  int // Cell rows per chunk

	Seed         int64          // Seeds the hash grid
	DefaultColor colorful.Color // Initial color of every cell

	// Sampler perturbs cell heights. Nil disables perturbation.
	Sampler Sampler

	// NewRegion, if set, supplies the external region for each chunk index.
	NewRegion func(index int) Region
}

// DefaultConfig returns a 4×3 chunk grid with simplex perturbation.
func DefaultConfig() Config {
	const seed = 1234
	return Config{
		ChunkCountX:  4,
		ChunkCountZ:  3,
		ChunkSizeX:   ChunkSizeX,
		ChunkSizeZ:   ChunkSizeZ,
		Seed:         seed,
		DefaultColor: colorful.Color{R: 1, G: 1, B: 1},
		Sampler:      NewSimplexSampler(seed, NoiseScale),
	}
}

// Grid owns all cells and chunks and is the only place that maps
// coordinates to cells. Adjacency is wired once, at construction.
type Grid struct {
	width, height            int // Cells per row, rows
	chunkCountX, chunkCountZ int
	chunkSizeX, chunkSizeZ   int

	cells  []*Cell
	chunks []*Chunk
	hash   *HashGrid
}

// NewGrid builds and wires a grid of ChunkCountX*ChunkSizeX by
// ChunkCountZ*ChunkSizeZ cells, all at elevation 0 in the default color.
func NewGrid(cfg Config) (*Grid, error) {
	if cfg.ChunkCountX <= 0 || cfg.ChunkCountZ <= 0 || cfg.ChunkSizeX <= 0 || cfg.ChunkSizeZ <= 0 {
		return nil, fmt.Errorf("new grid %dx%d chunks of %dx%d: %w",
			cfg.ChunkCountX, cfg.ChunkCountZ, cfg.ChunkSizeX, cfg.ChunkSizeZ, ErrInvalidSize)
	}

	g := &Grid{
		width:       cfg.ChunkCountX * cfg.ChunkSizeX,
		height:      cfg.ChunkCountZ * cfg.ChunkSizeZ,
		chunkCountX: cfg.ChunkCountX,
		chunkCountZ: cfg.ChunkCountZ,
		chunkSizeX:  cfg.ChunkSizeX,
		chunkSizeZ:  cfg.ChunkSizeZ,
		hash:        NewHashGrid(cfg.Seed),
	}

	g.createChunks(cfg.NewRegion)
	g.createCells(cfg)

	slog.Debug("grid created",
		"width", g.width,
		"height", g.height,
		"chunks", len(g.chunks),
		"seed", cfg.Seed,
	)
	return g, nil
}

func (g *Grid) createChunks(newRegion func(int) Region) {
	g.chunks = make([]*Chunk, g.chunkCountX*g.chunkCountZ)
	for i := range g.chunks {
		var external Region
		if newRegion != nil {
			external = newRegion(i)
		}
		g.chunks[i] = newChunk(i, g.chunkSizeX*g.chunkSizeZ, external)
	}
}

func (g *Grid) createCells(cfg Config) {
	g.cells = make([]*Cell, g.width*g.height)
	for z, i := 0, 0; z < g.height; z++ {
		for x := 0; x < g.width; x++ {
			g.createCell(x, z, i, cfg)
			i++
		}
	}
}

// createCell instantiates the cell at offset (x, z) and links it to the
// already-created cells to its west and south. Cells created later link
// back, completing the E, NE and NW sides.
func (g *Grid) createCell(x, z, i int, cfg Config) {
	position := Vec3{
		X: (float64(x) + float64(z)*0.5 - float64(z/2)) * (InnerRadius * 2),
		Z: float64(z) * (OuterRadius * 1.5),
	}

	cell := newCell(FromOffset(x, z), position, cfg.Sampler)
	g.cells[i] = cell
	cell.SetColor(cfg.DefaultColor)

	if x > 0 {
		cell.setNeighbor(W, g.cells[i-1])
	}
	if z > 0 {
		if z&1 == 0 {
			cell.setNeighbor(SE, g.cells[i-g.width])
			if x > 0 {
				cell.setNeighbor(SW, g.cells[i-g.width-1])
			}
		} else {
			cell.setNeighbor(SW, g.cells[i-g.width])
			if x < g.width-1 {
				cell.setNeighbor(SE, g.cells[i-g.width+1])
			}
		}
	}

	cell.SetElevation(0)

	g.addCellToChunk(x, z, cell)
}

func (g *Grid) addCellToChunk(x, z int, cell *Cell) {
	chunkX := x / g.chunkSizeX
	chunkZ := z / g.chunkSizeZ
	chunk := g.chunks[chunkX+chunkZ*g.chunkCountX]

	localX := x - chunkX*g.chunkSizeX
	localZ := z - chunkZ*g.chunkSizeZ
	chunk.addCell(localX+localZ*g.chunkSizeX, cell)
}

// Width returns the number of cells per row.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Cells returns every cell in row-major offset order.
func (g *Grid) Cells() []*Cell { return g.cells }

// Chunks returns every chunk in row-major order.
func (g *Grid) Chunks() []*Chunk { return g.chunks }

// Hash returns the seeded hash grid for visual variation.
func (g *Grid) Hash() *HashGrid { return g.hash }

// Cell returns the cell at a coordinate, or nil if it lies outside the grid.
func (g *Grid) Cell(c Coord) *Cell {
	z := c.Z
	if z < 0 || z >= g.height {
		return nil
	}
	x := c.X + z/2
	if x < 0 || x >= g.width {
		return nil
	}
	return g.cells[x+z*g.width]
}

// CellAtOffset returns the cell at a staggered (col, row) position, or nil.
func (g *Grid) CellAtOffset(col, row int) *Cell {
	if row < 0 || row >= g.height || col < 0 || col >= g.width {
		return nil
	}
	return g.cells[col+row*g.width]
}

// CellAt returns the cell containing a world position. ok is false when the
// position falls outside the grid.
func (g *Grid) CellAt(p Vec3) (cell *Cell, ok bool) {
	cell = g.Cell(FromPosition(p))
	return cell, cell != nil
}

// ShowUI toggles overlay labels on every chunk.
func (g *Grid) ShowUI(visible bool) {
	for _, c := range g.chunks {
		c.SetUIVisible(visible)
	}
}

// FlushDirty calls rebuild for each chunk marked dirty since the last flush,
// clearing its flag first. It returns how many chunks were rebuilt.
func (g *Grid) FlushDirty(rebuild func(*Chunk)) int {
	n := 0
	for _, c := range g.chunks {
		if !c.dirty {
			continue
		}
		c.dirty = false
		if rebuild != nil {
			rebuild(c)
		}
		n++
	}
	return n
}

// DirtyCount returns how many chunks are waiting to be rebuilt.
func (g *Grid) DirtyCount() int {
	n := 0
	for _, c := range g.chunks {
		if c.dirty {
			n++
		}
	}
	return n
}
