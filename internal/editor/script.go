package editor

import (
	"errors"
	"fmt"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/talgya/hexmap/internal/world"
)

var (
	// ErrEmptyPath is returned for a stroke without any points.
	ErrEmptyPath = errors.New("stroke has no path")
	// ErrInvalidBrush is returned for a brush size outside 0..MaxBrushSize.
	ErrInvalidBrush = errors.New("invalid brush size")
)

// Script is a recorded sequence of strokes, loaded from YAML:
//
//	strokes:
//	  - name: ridge
//	    brush: 1
//	    elevation: 3
//	    path: [{col: 2, row: 2}, {col: 3, row: 2}]
//	  - name: river
//	    river: yes
//	    path: [{col: 2, row: 2}, {col: 3, row: 2}, {col: 4, row: 2}]
type Script struct {
	Strokes []Stroke `yaml:"strokes"`
}

// Point is an offset (col, row) position on the grid.
type Point struct {
	Col int `yaml:"col"`
	Row int `yaml:"row"`
}

// Stroke holds the settings for one gesture and the cells it passes over.
// Unset values leave the matching attribute alone.
type Stroke struct {
	Name  string  `yaml:"name"`
	Path  []Point `yaml:"path"`
	Brush int     `yaml:"brush"`
	Color string  `yaml:"color"` // Hex, e.g. "#3a7d44"

	Elevation *int `yaml:"elevation"`
	Water     *int `yaml:"water"`
	Urban     *int `yaml:"urban"`
	Farm      *int `yaml:"farm"`
	Plant     *int `yaml:"plant"`

	River  Toggle `yaml:"river"`
	Road   Toggle `yaml:"road"`
	Walled Toggle `yaml:"walled"`
}

// Settings converts the stroke into editor settings.
func (s Stroke) Settings() (Settings, error) {
	if s.Brush < 0 || s.Brush > MaxBrushSize {
		return Settings{}, fmt.Errorf("brush %d: %w", s.Brush, ErrInvalidBrush)
	}
	out := Settings{
		BrushSize:  s.Brush,
		RiverMode:  s.River,
		RoadMode:   s.Road,
		WalledMode: s.Walled,
	}
	if s.Color != "" {
		c, err := colorful.Hex(s.Color)
		if err != nil {
			return out, fmt.Errorf("parse color %q: %w", s.Color, err)
		}
		out.ApplyColor, out.Color = true, c
	}
	if s.Elevation != nil {
		out.ApplyElevation, out.Elevation = true, *s.Elevation
	}
	if s.Water != nil {
		out.ApplyWaterLevel, out.WaterLevel = true, *s.Water
	}
	if s.Urban != nil {
		out.ApplyUrbanLevel, out.UrbanLevel = true, *s.Urban
	}
	if s.Farm != nil {
		out.ApplyFarmLevel, out.FarmLevel = true, *s.Farm
	}
	if s.Plant != nil {
		out.ApplyPlantLevel, out.PlantLevel = true, *s.Plant
	}
	return out, nil
}

// ParseScript decodes a YAML script and checks every stroke.
func ParseScript(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	for i, st := range s.Strokes {
		if len(st.Path) == 0 {
			return nil, fmt.Errorf("stroke %d (%s): %w", i, st.Name, ErrEmptyPath)
		}
		if _, err := st.Settings(); err != nil {
			return nil, fmt.Errorf("stroke %d (%s): %w", i, st.Name, err)
		}
	}
	return &s, nil
}

// LoadScript reads and parses a script file.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return ParseScript(data)
}

// StrokeResult summarizes what one stroke did to the grid.
type StrokeResult struct {
	Index   int
	Name    string
	Start   Point
	Brush   int
	Cells   int // Path points that landed on the grid
	Changed bool
	Regions int // Distinct chunks marked dirty
}

// Run plays every stroke through ed. Each stroke is its own gesture: the
// drag is released before the next one starts. Path points outside the grid
// are skipped and break the drag, like the pointer leaving the map.
func (s *Script) Run(ed *Editor) ([]StrokeResult, error) {
	results := make([]StrokeResult, 0, len(s.Strokes))
	for i, st := range s.Strokes {
		settings, err := st.Settings()
		if err != nil {
			return results, fmt.Errorf("stroke %d (%s): %w", i, st.Name, err)
		}
		ed.Settings = settings

		var edit world.Edit
		res := StrokeResult{Index: i, Name: st.Name, Brush: st.Brush}
		if len(st.Path) > 0 {
			res.Start = st.Path[0]
		}
		for _, p := range st.Path {
			cell := ed.Grid().CellAtOffset(p.Col, p.Row)
			if cell == nil {
				ed.Release()
				continue
			}
			res.Cells++
			edit.Merge(ed.Stroke(cell))
		}
		ed.Release()

		res.Changed = edit.Changed
		res.Regions = len(edit.Regions)
		results = append(results, res)
	}
	return results, nil
}
