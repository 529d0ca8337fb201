package world

import "testing"

// riverPair returns a cell and its eastern neighbor on a single-chunk grid.
func riverPair(t *testing.T) (*Grid, *Cell, *Cell) {
	t.Helper()
	g, _ := newTestGrid(t, 1, 1, 4, 4)
	a := mustCell(t, g, 1, 1)
	return g, a, a.Neighbor(E)
}

func TestRiverRetractedWhenDestinationRises(t *testing.T) {
	g, a, b := riverPair(t)
	a.SetElevation(2)
	a.SetWaterLevel(0)
	b.SetElevation(1)

	if e := a.SetOutgoingRiver(E); !e.Changed {
		t.Fatal("downhill river should be accepted")
	}
	if !a.HasOutgoingRiver() || a.OutgoingRiver() != E {
		t.Fatal("A should have outgoing river E")
	}
	if !b.HasIncomingRiver() || b.IncomingRiver() != W {
		t.Fatal("B should have incoming river W")
	}
	mustValidate(t, g)

	e := b.SetElevation(3)
	if a.HasOutgoingRiver() || b.HasIncomingRiver() {
		t.Fatal("river flowing uphill should be retracted from both cells")
	}
	if !e.Touches(a.Chunk()) {
		t.Fatal("retraction should refresh the upstream cell's chunk")
	}
	mustValidate(t, g)
}

func TestRiverRetractedWhenSourceDrops(t *testing.T) {
	g, a, b := riverPair(t)
	a.SetElevation(2)
	b.SetElevation(1)
	a.SetOutgoingRiver(E)

	a.SetElevation(0)
	if a.HasOutgoingRiver() || b.HasIncomingRiver() {
		t.Fatal("river should be retracted once the source is below the destination")
	}
	mustValidate(t, g)
}

func TestSetOutgoingRiverIdempotent(t *testing.T) {
	_, a, b := riverPair(t)
	a.SetElevation(1)
	if e := a.SetOutgoingRiver(E); !e.Changed || len(e.Regions) == 0 {
		t.Fatalf("first call should change state and refresh, got %+v", e)
	}
	a.Chunk().dirty = false
	e := a.SetOutgoingRiver(E)
	if e.Changed || len(e.Regions) != 0 {
		t.Fatalf("second call should be a no-op, got %+v", e)
	}
	if a.Chunk().Dirty() {
		t.Fatal("no-op must not mark the chunk dirty")
	}
	if !b.HasIncomingRiver() {
		t.Fatal("river lost after repeated call")
	}
}

func TestSetOutgoingRiverRejectsUphill(t *testing.T) {
	_, a, b := riverPair(t)
	b.SetElevation(1)
	if e := a.SetOutgoingRiver(E); e.Changed {
		t.Fatal("uphill river should be rejected")
	}
	if a.HasRiver() || b.HasRiver() {
		t.Fatal("rejected river left state behind")
	}
}

func TestRiverIntoWater(t *testing.T) {
	g, a, b := riverPair(t)
	b.SetElevation(1)
	a.SetWaterLevel(1)
	if e := a.SetOutgoingRiver(E); !e.Changed {
		t.Fatal("river into water at the source's water level should be accepted")
	}
	mustValidate(t, g)

	a.SetWaterLevel(0)
	if a.HasOutgoingRiver() || b.HasIncomingRiver() {
		t.Fatal("lowering the water should retract the now-uphill river")
	}
	mustValidate(t, g)
}

func TestSetOutgoingRiverOffGrid(t *testing.T) {
	g, _ := newTestGrid(t, 1, 1, 3, 3)
	corner := mustCell(t, g, 0, 0)
	for _, d := range []Direction{W, SW, SE} {
		if e := corner.SetOutgoingRiver(d); e.Changed {
			t.Fatalf("river %s off the grid should be rejected", d)
		}
	}
	if corner.HasRiver() {
		t.Fatal("corner should have no river")
	}
}

func TestSetOutgoingRiverReplacesPrevious(t *testing.T) {
	g, a, b := riverPair(t)
	c := a.Neighbor(NE)
	a.SetElevation(1)

	a.SetOutgoingRiver(E)
	a.SetOutgoingRiver(NE)
	if b.HasIncomingRiver() {
		t.Fatal("old destination should lose its incoming river")
	}
	if !c.HasIncomingRiver() || c.IncomingRiver() != SW {
		t.Fatal("new destination should gain incoming river SW")
	}
	mustValidate(t, g)
}

func TestSetOutgoingRiverReversesEdge(t *testing.T) {
	g, a, b := riverPair(t)
	a.SetOutgoingRiver(E) // level ground is allowed
	if e := b.SetOutgoingRiver(W); !e.Changed {
		t.Fatal("reversing a river on level ground should be accepted")
	}
	if !a.HasIncomingRiver() || a.HasOutgoingRiver() {
		t.Fatal("A should now only receive the river")
	}
	if !b.HasOutgoingRiver() || b.HasIncomingRiver() {
		t.Fatal("B should now only emit the river")
	}
	mustValidate(t, g)
}

func TestSetOutgoingRiverDetachesPreviousFeeder(t *testing.T) {
	g, a, b := riverPair(t)
	feeder := b.Neighbor(NE)
	feeder.SetOutgoingRiver(SW) // feeder -> b
	if !b.HasIncomingRiver() || b.IncomingRiver() != NE {
		t.Fatal("setup: b should be fed from NE")
	}

	a.SetOutgoingRiver(E)
	if feeder.HasOutgoingRiver() {
		t.Fatal("previous feeder should lose its outgoing river")
	}
	if b.IncomingRiver() != W {
		t.Fatalf("b incoming = %s, want W", b.IncomingRiver())
	}
	mustValidate(t, g)
}

func TestSetOutgoingRiverRemovesRoad(t *testing.T) {
	g, a, b := riverPair(t)
	a.AddRoad(E)
	a.SetOutgoingRiver(E)
	if a.HasRoadThroughEdge(E) || b.HasRoadThroughEdge(W) {
		t.Fatal("road should be removed where a river now flows")
	}
	mustValidate(t, g)
}

func TestRemoveRiver(t *testing.T) {
	g, a, b := riverPair(t)
	upstream := a.Neighbor(W)
	upstream.SetOutgoingRiver(E)
	a.SetOutgoingRiver(E)
	if !a.HasIncomingRiver() || !a.HasOutgoingRiver() || a.HasRiverBeginOrEnd() {
		t.Fatal("setup: a should have a river running through it")
	}

	e := a.RemoveRiver()
	if !e.Changed {
		t.Fatal("RemoveRiver should report a change")
	}
	if a.HasRiver() || upstream.HasOutgoingRiver() || b.HasIncomingRiver() {
		t.Fatal("RemoveRiver should clear both sides of both edges")
	}
	if e := a.RemoveRiver(); e.Changed {
		t.Fatal("removing a missing river should be a no-op")
	}
	mustValidate(t, g)
}

func TestRiverBeginOrEnd(t *testing.T) {
	_, a, b := riverPair(t)
	a.SetOutgoingRiver(E)
	if !a.HasRiverBeginOrEnd() || a.RiverBeginOrEndDirection() != E {
		t.Fatal("a should be a river source flowing E")
	}
	if !b.HasRiverBeginOrEnd() || b.RiverBeginOrEndDirection() != W {
		t.Fatal("b should be a river mouth entered from W")
	}
	if !a.HasRiverThroughEdge(E) || !b.HasRiverThroughEdge(W) || a.HasRiverThroughEdge(W) {
		t.Fatal("HasRiverThroughEdge mismatch")
	}
	if got, want := a.StreamBedY(), StreamBedElevationOffset*ElevationStep; got != want {
		t.Fatalf("StreamBedY = %v, want %v", got, want)
	}
	if got, want := a.RiverSurfaceY(), WaterElevationOffset*ElevationStep; got != want {
		t.Fatalf("RiverSurfaceY = %v, want %v", got, want)
	}
}
