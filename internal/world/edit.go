package world

import "slices"

// Edit is the outcome of a cell mutation: whether any state changed, and
// which chunks were marked dirty as a consequence, including those touched by
// cascades (river retraction, road removal) and neighbors across chunk borders.
type Edit struct {
	Changed bool
	Regions []*Chunk
}

// mark flags c dirty unless this edit already did.
func (e *Edit) mark(c *Chunk) {
	if c == nil || slices.Contains(e.Regions, c) {
		return
	}
	e.Regions = append(e.Regions, c)
	c.MarkDirty()
}

// Merge folds another edit's result into e without re-marking anything.
func (e *Edit) Merge(other Edit) {
	e.Changed = e.Changed || other.Changed
	for _, c := range other.Regions {
		if !slices.Contains(e.Regions, c) {
			e.Regions = append(e.Regions, c)
		}
	}
}

// Touches reports whether c was marked dirty by this edit.
func (e Edit) Touches(c *Chunk) bool {
	return slices.Contains(e.Regions, c)
}
