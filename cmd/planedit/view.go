package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/groundplan/groundplan/geo"
	"github.com/groundplan/groundplan/model"
)

// Cell glyphs, later draws win.
const (
	glyphParcel   = '#'
	glyphEnvelope = '.'
	glyphBuilding = 'B'
	glyphParking  = 'P'
	glyphActive   = '@'
)

func (m editorModel) View() string {
	if m.help {
		return m.helpView()
	}
	if m.width < 10 || m.height < 6 {
		return "window too small"
	}

	canvasH := m.height - 3
	canvas := m.renderCanvas(m.width, canvasH)

	var b strings.Builder
	for _, row := range canvas {
		b.WriteString(string(row))
		b.WriteString("\n")
	}
	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(styleMessage.Render(m.message))
	return b.String()
}

func (m editorModel) statusLine() string {
	sb := m.plan.Setbacks()
	status := fmt.Sprintf(
		"envelope %.0f m2 (%s)  |  template %s  |  kind %s  |  step %.0f m  |  coverage %.0f%%",
		m.plan.EnvelopeAreaM2(), sb.Mode,
		templateCycle[m.templateIdx], m.kind, m.stepM,
		100*m.engine.CoverageRatio(),
	)
	return styleStatus.Width(m.width).Render(status)
}

func (m editorModel) helpView() string {
	lines := []string{
		"planedit keys",
		"",
		"  enter/n       place the current template",
		"  t             cycle templates",
		"  b / v         building / parking kind",
		"  tab           cycle selection, esc to deselect",
		"  arrows, hjkl  move the selected object",
		"  r / R         rotate +-5 degrees",
		"  + / -         scale up / down",
		"  1 / 5         movement step in meters",
		"  d             delete selection, D clears all",
		"  u / ctrl+r    undo / redo",
		"  s             toggle snapping",
		"  x             export PNG",
		"  c             copy plan GeoJSON to clipboard",
		"  q             quit",
		"",
		"press any key to return",
	}
	return styleHelp.Render(strings.Join(lines, "\n"))
}

// renderCanvas rasterizes the plan into a rune grid, north up. Terminal
// cells are roughly twice as tall as wide, so the vertical scale is
// halved to keep squares square.
func (m editorModel) renderCanvas(w, h int) [][]rune {
	grid := make([][]rune, h)
	for i := range grid {
		grid[i] = make([]rune, w)
		for j := range grid[i] {
			grid[i][j] = ' '
		}
	}

	local := m.frame.ToLocalRing(m.plan.Parcel())
	min, max := local.BBox()
	spanX, spanY := max.X-min.X, max.Y-min.Y
	if spanX <= 0 || spanY <= 0 {
		return grid
	}
	scale := math.Min(float64(w-4)/spanX, float64(h-2)*2/spanY)

	toCell := func(p geo.Point) (int, int) {
		q := m.frame.ToLocal(p)
		x := int((q.X-min.X)*scale) + 2
		y := int((max.Y-q.Y)*scale/2) + 1
		return x, y
	}

	drawRing := func(ring geo.Ring, glyph rune) {
		open := ring.Open()
		for i := range open {
			a := open[i]
			b := open[(i+1)%len(open)]
			drawSegment(grid, toCell, a, b, glyph)
		}
	}

	drawRing(m.plan.Envelope(), glyphEnvelope)
	drawRing(m.plan.Parcel(), glyphParcel)

	active := m.engine.ActiveID()
	for _, o := range m.engine.Objects() {
		glyph := glyphBuilding
		if o.Kind == model.KindParking {
			glyph = glyphParking
		}
		if o.ID == active {
			glyph = glyphActive
		}
		drawRing(o.Polygon, glyph)
	}
	return grid
}

// drawSegment samples the segment densely enough to leave no gaps at
// the canvas resolution.
func drawSegment(grid [][]rune, toCell func(geo.Point) (int, int), a, b geo.Point, glyph rune) {
	x1, y1 := toCell(a)
	x2, y2 := toCell(b)
	steps := maxInt(absInt(x2-x1), absInt(y2-y1)) + 1
	for s := 0; s <= steps; s++ {
		t := float64(s) / float64(steps)
		x := x1 + int(math.Round(t*float64(x2-x1)))
		y := y1 + int(math.Round(t*float64(y2-y1)))
		if y >= 0 && y < len(grid) && x >= 0 && x < len(grid[y]) {
			grid[y][x] = glyph
		}
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
