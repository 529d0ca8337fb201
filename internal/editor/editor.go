// Package editor applies brush strokes to a world grid: the diamond-shaped
// brush, the per-stroke tool settings, and drag gestures that draw rivers
// and roads from one cell to the next.
package editor

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/talgya/hexmap/internal/world"
)

// Toggle is a three-way tool mode.
type Toggle uint8

const (
	Ignore Toggle = iota // Leave the feature alone
	Yes                  // Add (rivers/roads are drawn by dragging)
	No                   // Remove
)

func (t Toggle) String() string {
	switch t {
	case Yes:
		return "yes"
	case No:
		return "no"
	default:
		return "ignore"
	}
}

// ParseToggle accepts ignore/yes/no (and true/false as yes/no).
func ParseToggle(s string) (Toggle, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "ignore":
		return Ignore, nil
	case "yes", "true", "on":
		return Yes, nil
	case "no", "false", "off":
		return No, nil
	default:
		return Ignore, fmt.Errorf("unknown toggle %q", s)
	}
}

// UnmarshalYAML lets scripts write river: yes.
func (t *Toggle) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := ParseToggle(value.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*t = parsed
	return nil
}

// Settings is the active tool state. Each Apply flag gates its value.
type Settings struct {
	ApplyColor bool
	Color      colorful.Color

	ApplyElevation bool
	Elevation      int

	ApplyWaterLevel bool
	WaterLevel      int

	ApplyUrbanLevel bool
	UrbanLevel      int

	ApplyFarmLevel bool
	FarmLevel      int

	ApplyPlantLevel bool
	PlantLevel      int

	RiverMode  Toggle
	RoadMode   Toggle
	WalledMode Toggle

	BrushSize int
}

// DefaultSettings matches a freshly opened editor: elevation and water
// brushes on at level 0, everything else off.
func DefaultSettings() Settings {
	return Settings{
		ApplyElevation:  true,
		ApplyWaterLevel: true,
	}
}

// Editor turns pointer gestures into cell edits on one grid.
type Editor struct {
	grid     *world.Grid
	Settings Settings

	previous      *world.Cell
	dragging      bool
	dragDirection world.Direction
}

// New creates an editor with default settings.
func New(g *world.Grid) *Editor {
	return &Editor{grid: g, Settings: DefaultSettings()}
}

// Grid returns the grid being edited.
func (ed *Editor) Grid() *world.Grid { return ed.grid }

// Dragging reports whether the last stroke continued a drag, and in which direction.
func (ed *Editor) Dragging() (world.Direction, bool) {
	return ed.dragDirection, ed.dragging
}

// Stroke edits the brush area around center. If the previous stroke was on
// an adjacent cell, the move counts as a drag and rivers or roads are drawn
// along it when their mode is Yes.
func (ed *Editor) Stroke(center *world.Cell) world.Edit {
	if ed.previous != nil && ed.previous != center {
		ed.validateDrag(center)
	} else {
		ed.dragging = false
	}
	e := ed.EditCells(center)
	ed.previous = center
	return e
}

// StrokeAt strokes the cell under a world position. A position outside the
// grid ends any drag, like lifting the pointer.
func (ed *Editor) StrokeAt(p world.Vec3) (world.Edit, bool) {
	cell, ok := ed.grid.CellAt(p)
	if !ok {
		ed.Release()
		return world.Edit{}, false
	}
	return ed.Stroke(cell), true
}

// Release ends the current gesture.
func (ed *Editor) Release() {
	ed.previous = nil
	ed.dragging = false
}

func (ed *Editor) validateDrag(current *world.Cell) {
	for _, d := range world.Directions {
		if ed.previous.Neighbor(d) == current {
			ed.dragDirection = d
			ed.dragging = true
			return
		}
	}
	ed.dragging = false
}

// EditCells applies the settings to every grid cell under the brush.
func (ed *Editor) EditCells(center *world.Cell) world.Edit {
	var result world.Edit
	for _, c := range Brush(center.Coord(), ed.Settings.BrushSize) {
		result.Merge(ed.EditCell(ed.grid.Cell(c)))
	}
	return result
}

// EditCell applies the settings to one cell. A nil cell is ignored.
func (ed *Editor) EditCell(cell *world.Cell) world.Edit {
	var result world.Edit
	if cell == nil {
		return result
	}
	s := ed.Settings

	if s.ApplyColor {
		result.Merge(cell.SetColor(s.Color))
	}
	if s.ApplyElevation {
		result.Merge(cell.SetElevation(s.Elevation))
	}
	if s.ApplyWaterLevel {
		result.Merge(cell.SetWaterLevel(s.WaterLevel))
	}
	if s.ApplyUrbanLevel {
		result.Merge(cell.SetUrbanLevel(s.UrbanLevel))
	}
	if s.ApplyFarmLevel {
		result.Merge(cell.SetFarmLevel(s.FarmLevel))
	}
	if s.ApplyPlantLevel {
		result.Merge(cell.SetPlantLevel(s.PlantLevel))
	}
	if s.RiverMode == No {
		result.Merge(cell.RemoveRiver())
	}
	if s.RoadMode == No {
		result.Merge(cell.RemoveRoads())
	}
	if s.WalledMode != Ignore {
		result.Merge(cell.SetWalled(s.WalledMode == Yes))
	}

	if ed.dragging {
		if other := cell.Neighbor(ed.dragDirection.Opposite()); other != nil {
			if s.RiverMode == Yes {
				result.Merge(other.SetOutgoingRiver(ed.dragDirection))
			}
			if s.RoadMode == Yes {
				result.Merge(other.AddRoad(ed.dragDirection))
			}
		}
	}
	return result
}
