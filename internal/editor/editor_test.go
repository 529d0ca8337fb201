package editor

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/talgya/hexmap/internal/world"
)

func newGrid(t *testing.T) *world.Grid {
	t.Helper()
	g, err := world.NewGrid(world.Config{
		ChunkCountX: 2, ChunkCountZ: 2, ChunkSizeX: 4, ChunkSizeZ: 4,
		DefaultColor: colorful.Color{R: 1, G: 1, B: 1},
	})
	if err != nil {
		t.Fatalf("NewGrid() failed: %v", err)
	}
	return g
}

func TestBrushShape(t *testing.T) {
	center := world.FromOffset(5, 5)
	for size := 0; size <= 4; size++ {
		coords := Brush(center, size)
		if want := 3*size*(size+1) + 1; len(coords) != want {
			t.Fatalf("size %d: %d coords, want %d", size, len(coords), want)
		}
		seen := make(map[world.Coord]bool)
		for _, c := range coords {
			if seen[c] {
				t.Fatalf("size %d: duplicate %v", size, c)
			}
			seen[c] = true
			if d := world.Distance(center, c); d > size {
				t.Fatalf("size %d: %v at distance %d", size, c, d)
			}
		}
		if !seen[center] {
			t.Fatalf("size %d: brush misses its center", size)
		}
	}
}

func TestBrushClampsSize(t *testing.T) {
	center := world.FromOffset(5, 5)
	if got, want := len(Brush(center, 2_000_000_000)), 3*MaxBrushSize*(MaxBrushSize+1)+1; got != want {
		t.Fatalf("oversized brush: %d coords, want %d", got, want)
	}
	if got := Brush(center, -3); len(got) != 1 || got[0] != center {
		t.Fatalf("negative brush: got %v, want only the center", got)
	}
}

func TestBrushAtCornerSkipsOutside(t *testing.T) {
	g := newGrid(t)
	ed := New(g)
	ed.Settings = Settings{ApplyElevation: true, Elevation: 2, BrushSize: 2}

	corner := g.CellAtOffset(0, 0)
	e := ed.Stroke(corner)
	if !e.Changed {
		t.Fatal("stroke at the corner should change cells")
	}
	raised := 0
	for _, c := range g.Cells() {
		if c.Elevation() == 2 {
			raised++
			if world.Distance(c.Coord(), corner.Coord()) > 2 {
				t.Fatalf("cell %v outside the brush was raised", c.Coord())
			}
		}
	}
	inGrid := 0
	for _, c := range Brush(corner.Coord(), 2) {
		if g.Cell(c) != nil {
			inGrid++
		}
	}
	if raised != inGrid {
		t.Fatalf("raised %d cells, brush covers %d grid cells", raised, inGrid)
	}
}

func TestEditCellAppliesSettings(t *testing.T) {
	g := newGrid(t)
	ed := New(g)
	red := colorful.Color{R: 1}
	ed.Settings = Settings{
		ApplyColor: true, Color: red,
		ApplyElevation: true, Elevation: 3,
		ApplyWaterLevel: true, WaterLevel: 4,
		ApplyUrbanLevel: true, UrbanLevel: 1,
		ApplyFarmLevel: true, FarmLevel: 2,
		ApplyPlantLevel: true, PlantLevel: 3,
		WalledMode: Yes,
	}
	c := g.CellAtOffset(3, 3)
	if e := ed.EditCell(c); !e.Changed {
		t.Fatal("EditCell reported no change")
	}
	if c.Color() != red || c.Elevation() != 3 || c.WaterLevel() != 4 ||
		c.UrbanLevel() != 1 || c.FarmLevel() != 2 || c.PlantLevel() != 3 || !c.Walled() {
		t.Fatal("settings not applied")
	}
	if !c.IsUnderwater() {
		t.Fatal("water 4 over elevation 3 should be underwater")
	}
	if e := ed.EditCell(nil); e.Changed {
		t.Fatal("nil cell should be ignored")
	}
	if e := ed.EditCell(c); e.Changed {
		t.Fatal("re-applying the same settings should be a no-op")
	}
}

func TestDragDrawsRiver(t *testing.T) {
	g := newGrid(t)
	ed := New(g)
	ed.Settings = Settings{RiverMode: Yes}

	path := []*world.Cell{g.CellAtOffset(1, 2), g.CellAtOffset(2, 2), g.CellAtOffset(3, 2)}
	for _, c := range path {
		ed.Stroke(c)
	}
	if d, ok := ed.Dragging(); !ok || d != world.E {
		t.Fatalf("expected an eastward drag, got %s %v", d, ok)
	}
	for i := 0; i < 2; i++ {
		if !path[i].HasOutgoingRiver() || path[i].OutgoingRiver() != world.E {
			t.Fatalf("path cell %d should flow east", i)
		}
	}
	if !path[2].HasIncomingRiver() {
		t.Fatal("last cell should receive the river")
	}
	if err := g.Validate(); err != nil {
		t.Fatal(err)
	}
}

func TestDragDrawsRoadAndRespectsRelease(t *testing.T) {
	g := newGrid(t)
	ed := New(g)
	ed.Settings = Settings{RoadMode: Yes}

	a, b, c := g.CellAtOffset(1, 1), g.CellAtOffset(2, 1), g.CellAtOffset(3, 1)
	ed.Stroke(a)
	ed.Stroke(b)
	ed.Release()
	ed.Stroke(c)

	if !a.HasRoadThroughEdge(world.E) {
		t.Fatal("drag a->b should build a road")
	}
	if b.HasRoadThroughEdge(world.E) {
		t.Fatal("road should not continue across a released gesture")
	}
}

func TestNonAdjacentMoveIsNotDrag(t *testing.T) {
	g := newGrid(t)
	ed := New(g)
	ed.Settings = Settings{RiverMode: Yes}

	ed.Stroke(g.CellAtOffset(0, 0))
	ed.Stroke(g.CellAtOffset(5, 5))
	if _, ok := ed.Dragging(); ok {
		t.Fatal("jumping to a distant cell is not a drag")
	}
	for _, c := range g.Cells() {
		if c.HasRiver() {
			t.Fatalf("unexpected river at %v", c.Coord())
		}
	}
}

func TestRemoveModes(t *testing.T) {
	g := newGrid(t)
	ed := New(g)
	c := g.CellAtOffset(2, 2)
	c.SetOutgoingRiver(world.E)
	c.AddRoad(world.W)

	ed.Settings = Settings{RiverMode: No, RoadMode: No}
	ed.Stroke(c)
	if c.HasRiver() || c.HasRoads() {
		t.Fatal("No modes should remove rivers and roads")
	}
}

func TestStrokeAtOutsideReleases(t *testing.T) {
	g := newGrid(t)
	ed := New(g)
	ed.Settings = Settings{RoadMode: Yes}

	a := g.CellAtOffset(1, 1)
	ed.Stroke(a)
	if _, ok := ed.StrokeAt(world.Vec3{X: -1000, Z: -1000}); ok {
		t.Fatal("position outside the grid should not stroke")
	}
	ed.Stroke(a.Neighbor(world.E))
	if a.HasRoadThroughEdge(world.E) {
		t.Fatal("leaving the grid should break the drag")
	}
}

func TestParseToggle(t *testing.T) {
	tests := map[string]Toggle{"": Ignore, "ignore": Ignore, "yes": Yes, "True": Yes, "no": No, "off": No}
	for in, want := range tests {
		got, err := ParseToggle(in)
		if err != nil || got != want {
			t.Errorf("ParseToggle(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseToggle("maybe"); err == nil {
		t.Error("ParseToggle(maybe) should fail")
	}
}
