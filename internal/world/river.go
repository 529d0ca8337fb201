package world

func (c *Cell) HasIncomingRiver() bool { return c.hasIncomingRiver }
func (c *Cell) HasOutgoingRiver() bool { return c.hasOutgoingRiver }

// IncomingRiver is the direction the river enters from. Meaningful only if HasIncomingRiver.
func (c *Cell) IncomingRiver() Direction { return c.incomingRiver }

// OutgoingRiver is the direction the river leaves toward. Meaningful only if HasOutgoingRiver.
func (c *Cell) OutgoingRiver() Direction { return c.outgoingRiver }

func (c *Cell) HasRiver() bool {
	return c.hasIncomingRiver || c.hasOutgoingRiver
}

// HasRiverBeginOrEnd reports whether a river starts or ends in this cell.
func (c *Cell) HasRiverBeginOrEnd() bool {
	return c.hasIncomingRiver != c.hasOutgoingRiver
}

// RiverBeginOrEndDirection is the single river direction of a source or mouth cell.
func (c *Cell) RiverBeginOrEndDirection() Direction {
	if c.hasIncomingRiver {
		return c.incomingRiver
	}
	return c.outgoingRiver
}

func (c *Cell) HasRiverThroughEdge(d Direction) bool {
	return c.hasIncomingRiver && c.incomingRiver == d ||
		c.hasOutgoingRiver && c.outgoingRiver == d
}

// RemoveOutgoingRiver clears the outgoing river and the matching incoming
// river of the downstream neighbor.
func (c *Cell) RemoveOutgoingRiver() Edit {
	var e Edit
	e.Changed = c.removeOutgoingRiver(&e)
	return e
}

// RemoveIncomingRiver clears the incoming river and the matching outgoing
// river of the upstream neighbor.
func (c *Cell) RemoveIncomingRiver() Edit {
	var e Edit
	e.Changed = c.removeIncomingRiver(&e)
	return e
}

// RemoveRiver clears both river directions.
func (c *Cell) RemoveRiver() Edit {
	var e Edit
	in := c.removeIncomingRiver(&e)
	out := c.removeOutgoingRiver(&e)
	e.Changed = in || out
	return e
}

// SetOutgoingRiver starts a river flowing from c toward the neighbor in
// direction d. It does nothing if that river already exists, if there is no
// neighbor, or if the neighbor is higher and c's water does not reach it.
// Otherwise it replaces c's previous outgoing river, drops an incoming river
// on the same edge, detaches whatever fed the neighbor before, and removes
// any road on the edge.
func (c *Cell) SetOutgoingRiver(d Direction) Edit {
	var e Edit
	if c.hasOutgoingRiver && c.outgoingRiver == d {
		return e
	}

	neighbor := c.neighbors[d]
	if !c.isValidRiverDestination(neighbor) {
		return e
	}
	e.Changed = true

	c.removeOutgoingRiver(&e)
	if c.hasIncomingRiver && c.incomingRiver == d {
		c.removeIncomingRiver(&e)
	}

	c.hasOutgoingRiver = true
	c.outgoingRiver = d

	neighbor.removeIncomingRiver(&e)
	neighbor.hasIncomingRiver = true
	neighbor.incomingRiver = d.Opposite()

	if c.roads[d] {
		c.setRoad(d, false, &e)
	}

	c.refreshSelfOnly(&e)
	neighbor.refreshSelfOnly(&e)
	return e
}

func (c *Cell) removeOutgoingRiver(e *Edit) bool {
	if !c.hasOutgoingRiver {
		return false
	}
	c.hasOutgoingRiver = false
	c.refreshSelfOnly(e)

	neighbor := c.mustNeighbor(c.outgoingRiver)
	neighbor.hasIncomingRiver = false
	neighbor.refreshSelfOnly(e)
	return true
}

func (c *Cell) removeIncomingRiver(e *Edit) bool {
	if !c.hasIncomingRiver {
		return false
	}
	c.hasIncomingRiver = false
	c.refreshSelfOnly(e)

	neighbor := c.mustNeighbor(c.incomingRiver)
	neighbor.hasOutgoingRiver = false
	neighbor.refreshSelfOnly(e)
	return true
}

// isValidRiverDestination reports whether a river may flow from c into
// neighbor: downhill or level, or into water at c's water level.
func (c *Cell) isValidRiverDestination(neighbor *Cell) bool {
	return neighbor != nil &&
		(c.elevation >= neighbor.elevation || c.waterLevel == neighbor.elevation)
}

// validateRivers retracts rivers made illegal by an elevation or water change.
func (c *Cell) validateRivers(e *Edit) {
	if c.hasOutgoingRiver && !c.isValidRiverDestination(c.neighbors[c.outgoingRiver]) {
		c.removeOutgoingRiver(e)
	}
	if c.hasIncomingRiver && !c.mustNeighbor(c.incomingRiver).isValidRiverDestination(c) {
		c.removeIncomingRiver(e)
	}
}
