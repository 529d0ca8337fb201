package world

func (c *Cell) HasRoadThroughEdge(d Direction) bool {
	return c.roads[d]
}

func (c *Cell) HasRoads() bool {
	for _, r := range c.roads {
		if r {
			return true
		}
	}
	return false
}

// AddRoad builds a road across the edge in direction d. Nothing happens if
// the edge already has a road, carries a river, has no neighbor, or spans
// more than one elevation step.
func (c *Cell) AddRoad(d Direction) Edit {
	var e Edit
	if c.neighbors[d] == nil || c.roads[d] || c.HasRiverThroughEdge(d) || c.ElevationDifference(d) > 1 {
		return e
	}
	e.Changed = true
	c.setRoad(d, true, &e)
	return e
}

// RemoveRoads clears every road leaving the cell.
func (c *Cell) RemoveRoads() Edit {
	var e Edit
	for _, d := range Directions {
		if c.roads[d] {
			e.Changed = true
			c.setRoad(d, false, &e)
		}
	}
	return e
}

// setRoad writes the road bit on both sides of the edge.
func (c *Cell) setRoad(d Direction, state bool, e *Edit) {
	neighbor := c.mustNeighbor(d)
	c.roads[d] = state
	neighbor.roads[d.Opposite()] = state
	neighbor.refreshSelfOnly(e)
	c.refreshSelfOnly(e)
}
