package world

import (
	"errors"
	"fmt"
)

// Validate checks the topological invariants of every cell and returns all
// violations found, joined. A grid only mutated through Cell setters always
// validates; this exists for tests and for tools that want a sanity check.
func (g *Grid) Validate() error {
	var errs []error
	for _, c := range g.cells {
		errs = append(errs, c.validate()...)
	}
	return errors.Join(errs...)
}

func (c *Cell) validate() []error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("cell %s: "+format, append([]any{c.coord}, args...)...))
	}

	for _, d := range Directions {
		n := c.neighbors[d]
		if n == nil {
			if c.roads[d] {
				fail("road %s leads off the grid", d)
			}
			if c.HasRiverThroughEdge(d) {
				fail("river %s leads off the grid", d)
			}
			continue
		}
		if n.neighbors[d.Opposite()] != c {
			fail("neighbor %s does not link back", d)
		}
		if c.roads[d] != n.roads[d.Opposite()] {
			fail("road %s not mirrored", d)
		}
		if c.roads[d] {
			if c.HasRiverThroughEdge(d) {
				fail("road and river share edge %s", d)
			}
			if c.ElevationDifference(d) > 1 {
				fail("road %s spans %d elevation steps", d, c.ElevationDifference(d))
			}
		}
	}

	if c.hasOutgoingRiver {
		n := c.neighbors[c.outgoingRiver]
		switch {
		case n == nil:
			// reported above
		case !n.hasIncomingRiver || n.incomingRiver != c.outgoingRiver.Opposite():
			fail("outgoing river %s not mirrored", c.outgoingRiver)
		case !c.isValidRiverDestination(n):
			fail("outgoing river %s flows uphill", c.outgoingRiver)
		}
	}
	if c.hasIncomingRiver {
		n := c.neighbors[c.incomingRiver]
		if n != nil && (!n.hasOutgoingRiver || n.outgoingRiver != c.incomingRiver.Opposite()) {
			fail("incoming river %s not mirrored", c.incomingRiver)
		}
	}
	if c.hasIncomingRiver && c.hasOutgoingRiver && c.incomingRiver == c.outgoingRiver {
		fail("river enters and leaves through %s", c.incomingRiver)
	}
	return errs
}
