package world

// Region is the external owner of a block of cell visuals, typically a mesh
// chunk. The core only ever tells it that it is stale or toggles its labels.
type Region interface {
	MarkDirty()
	SetUIVisible(visible bool)
}

// Chunk is the grid's bookkeeping for one region: the cells it covers and
// whether it needs rebuilding. It forwards notifications to an optional
// external Region supplied by the renderer.
type Chunk struct {
	index     int
	cells     []*Cell
	dirty     bool
	uiVisible bool
	external  Region
}

func newChunk(index, capacity int, external Region) *Chunk {
	return &Chunk{
		index:    index,
		cells:    make([]*Cell, capacity),
		external: external,
	}
}

// Index returns the chunk's position in the grid's chunk slice.
func (c *Chunk) Index() int { return c.index }

// Cells returns the chunk's cells, in local row-major order.
func (c *Chunk) Cells() []*Cell { return c.cells }

// Dirty reports whether the chunk has been marked since the last flush.
func (c *Chunk) Dirty() bool { return c.dirty }

// UIVisible reports whether overlay labels are shown.
func (c *Chunk) UIVisible() bool { return c.uiVisible }

// Region returns the external region this chunk forwards to, if any.
func (c *Chunk) Region() Region { return c.external }

// MarkDirty flags the chunk for rebuilding.
func (c *Chunk) MarkDirty() {
	c.dirty = true
	if c.external != nil {
		c.external.MarkDirty()
	}
}

// SetUIVisible toggles overlay labels.
func (c *Chunk) SetUIVisible(visible bool) {
	c.uiVisible = visible
	if c.external != nil {
		c.external.SetUIVisible(visible)
	}
}

func (c *Chunk) addCell(local int, cell *Cell) {
	c.cells[local] = cell
	cell.chunk = c
}
