// Package render draws a grid as colored text.
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/talgya/hexmap/internal/world"
)

// Glyphs used by the preview.
const (
	GlyphWater = '~'
	GlyphRiver = '≈'
	GlyphRoad  = '='
	GlyphHigh  = '^' // Elevation above 9
	GlyphLow   = '_' // Elevation below 0
)

// Glyph returns the character that stands for a cell in the preview.
func Glyph(c *world.Cell) rune {
	switch {
	case c.IsUnderwater():
		return GlyphWater
	case c.HasRiver():
		return GlyphRiver
	case c.HasRoads():
		return GlyphRoad
	}
	e := c.Elevation()
	switch {
	case e > 9:
		return GlyphHigh
	case e < 0:
		return GlyphLow
	}
	return rune('0' + e)
}

// Previewer renders grids through a lipgloss renderer.
type Previewer struct {
	r      *lipgloss.Renderer
	styles map[string]lipgloss.Style
}

// NewPreviewer returns a previewer writing styles for r.
func NewPreviewer(r *lipgloss.Renderer) *Previewer {
	return &Previewer{r: r, styles: make(map[string]lipgloss.Style)}
}

// Preview renders g with the default renderer.
func Preview(g *world.Grid) string {
	return NewPreviewer(lipgloss.DefaultRenderer()).Render(g)
}

func (p *Previewer) style(hex string) lipgloss.Style {
	s, ok := p.styles[hex]
	if !ok {
		s = p.r.NewStyle().Foreground(lipgloss.Color(hex))
		p.styles[hex] = s
	}
	return s
}

// Render draws one line per row with the northernmost row first. Odd rows
// are indented by one column so the rows interlock like the hex layout.
// Adjacent cells of the same color share one styled run.
func (p *Previewer) Render(g *world.Grid) string {
	var sb strings.Builder
	sb.Grow(g.Width()*g.Height()*4 + g.Height())

	for row := g.Height() - 1; row >= 0; row-- {
		if row%2 == 1 {
			sb.WriteRune(' ')
		}
		col := 0
		for col < g.Width() {
			start := col
			hex := g.CellAtOffset(col, row).Color().Hex()

			var run strings.Builder
			for col < g.Width() {
				cell := g.CellAtOffset(col, row)
				if cell.Color().Hex() != hex {
					break
				}
				if run.Len() > 0 {
					run.WriteRune(' ')
				}
				run.WriteRune(Glyph(cell))
				col++
			}
			if start > 0 {
				sb.WriteRune(' ')
			}
			sb.WriteString(p.style(hex).Render(run.String()))
		}
		if row > 0 {
			sb.WriteRune('\n')
		}
	}
	return sb.String()
}
