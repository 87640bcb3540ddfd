package main

import (
	"fmt"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/groundplan/groundplan"
	"github.com/groundplan/groundplan/geo"
	"github.com/groundplan/groundplan/model"
	"github.com/groundplan/groundplan/shape"
)

// templates cycled by the 't' key.
var templateCycle = []shape.Template{
	shape.TemplateRectangle,
	shape.TemplateSquare,
	shape.TemplateL,
	shape.TemplateU,
	shape.TemplateStrip,
}

var (
	styleStatus = lipgloss.NewStyle().
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)
	styleMessage = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))
	styleHelp = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

type editorModel struct {
	plan   *groundplan.Plan
	engine *shape.Engine
	frame  *geo.Frame

	pngPath string

	width  int
	height int

	templateIdx int
	kind        model.ObjectKind
	stepM       float64

	message string
	help    bool
}

func initialModel(plan *groundplan.Plan, pngPath string) editorModel {
	return editorModel{
		plan:    plan,
		engine:  plan.Engine(),
		frame:   geo.FrameForRing(plan.Parcel()),
		pngPath: pngPath,
		kind:    model.KindBuilding,
		stepM:   1,
		message: "press ? for help",
	}
}

func (m editorModel) Init() tea.Cmd {
	return nil
}

func (m editorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m editorModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.help {
		m.help = false
		return m, nil
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "?":
		m.help = true
	case "esc":
		m.engine.ClearSelection()
		m.message = "selection cleared"

	case "t":
		m.templateIdx = (m.templateIdx + 1) % len(templateCycle)
		m.message = fmt.Sprintf("template: %s", templateCycle[m.templateIdx])
	case "b":
		m.kind = model.KindBuilding
		m.message = "kind: building"
	case "v":
		m.kind = model.KindParking
		m.message = "kind: parking"
	case "enter", "n":
		id, err := m.engine.CreateFromTemplate(templateCycle[m.templateIdx], m.kind)
		if err != nil {
			m.message = fmt.Sprintf("cannot place %s: %v", templateCycle[m.templateIdx], err)
		} else {
			m.message = fmt.Sprintf("placed %s %s", m.kind, short(id))
		}

	case "tab":
		m.cycleSelection()
	case "d", "backspace", "delete":
		if id := m.engine.ActiveID(); id != "" {
			m.engine.Delete(id)
			m.message = "deleted"
		}
	case "D":
		m.engine.ClearAll()
		m.message = "cleared all objects"

	case "left", "h":
		m.moveActive(-m.stepM, 0)
	case "right", "l":
		m.moveActive(m.stepM, 0)
	case "up", "k":
		m.moveActive(0, m.stepM)
	case "down", "j":
		m.moveActive(0, -m.stepM)
	case "r":
		m.rotateActive(5)
	case "R":
		m.rotateActive(-5)
	case "+", "=":
		m.scaleActive(1.1)
	case "-":
		m.scaleActive(0.9)
	case "1", "5":
		if msg.String() == "1" {
			m.stepM = 1
		} else {
			m.stepM = 5
		}
		m.message = fmt.Sprintf("step: %.0f m", m.stepM)

	case "u":
		if m.engine.Undo() {
			m.message = "undo"
		} else {
			m.message = "nothing to undo"
		}
	case "ctrl+r", "y":
		if m.engine.Redo() {
			m.message = "redo"
		} else {
			m.message = "nothing to redo"
		}

	case "s":
		s := m.engine.SnapSettings()
		s.Enabled = !s.Enabled
		m.engine.SetSnapSettings(s)
		m.message = fmt.Sprintf("snapping: %v", s.Enabled)

	case "x":
		if err := m.plan.WritePNG(m.pngPath, m.engine); err != nil {
			m.message = fmt.Sprintf("export failed: %v", err)
		} else {
			m.message = fmt.Sprintf("wrote %s", m.pngPath)
		}
	case "c":
		data, err := m.plan.GeoJSON(m.engine.Objects())
		if err == nil {
			err = clipboard.WriteAll(string(data))
		}
		if err != nil {
			m.message = fmt.Sprintf("copy failed: %v", err)
		} else {
			m.message = "plan copied to clipboard as GeoJSON"
		}
	}
	return m, nil
}

func (m *editorModel) cycleSelection() {
	objs := m.engine.Objects()
	if len(objs) == 0 {
		m.message = "no objects"
		return
	}
	cur := m.engine.ActiveID()
	next := 0
	for i, o := range objs {
		if o.ID == cur {
			next = (i + 1) % len(objs)
			break
		}
	}
	m.engine.Select(objs[next].ID)
	m.message = fmt.Sprintf("selected %s %s", objs[next].Kind, short(objs[next].ID))
}

// moveActive runs one complete move gesture on the active object.
func (m *editorModel) moveActive(dx, dy float64) {
	id := m.engine.ActiveID()
	if id == "" {
		m.message = "nothing selected"
		return
	}
	m.engine.StartTransform(shape.TransformMove, id, m.frame.FromLocal(geo.XY{}), "")
	ok := m.engine.ApplyTransform(m.frame.FromLocal(geo.XY{X: dx, Y: dy}), false)
	m.engine.EndTransform()
	if ok {
		m.message = fmt.Sprintf("moved %.0f,%.0f m", dx, dy)
	} else {
		m.message = "blocked by envelope"
	}
}

// rotateActive runs one complete rotate gesture, deg clockwise.
func (m *editorModel) rotateActive(deg float64) {
	id := m.engine.ActiveID()
	if id == "" {
		m.message = "nothing selected"
		return
	}
	obj, _ := m.engine.Object(id)
	pivot := m.frame.ToLocalRing(obj.Polygon).Centroid()
	start := geo.XY{X: pivot.X, Y: pivot.Y + 10}
	end := geo.RotateXY(start, pivot, deg)

	m.engine.StartTransform(shape.TransformRotate, id, m.frame.FromLocal(start), "")
	ok := m.engine.ApplyTransform(m.frame.FromLocal(end), true)
	m.engine.EndTransform()
	if ok {
		m.message = fmt.Sprintf("rotated %+.0f deg", deg)
	} else {
		m.message = "blocked by envelope"
	}
}

// scaleActive runs one complete scale gesture about the centroid.
func (m *editorModel) scaleActive(factor float64) {
	id := m.engine.ActiveID()
	if id == "" {
		m.message = "nothing selected"
		return
	}
	obj, _ := m.engine.Object(id)
	pivot := m.frame.ToLocalRing(obj.Polygon).Centroid()
	start := geo.XY{X: pivot.X + 10, Y: pivot.Y}
	end := geo.XY{X: pivot.X + 10*factor, Y: pivot.Y}

	m.engine.StartTransform(shape.TransformScale, id, m.frame.FromLocal(start), "")
	ok := m.engine.ApplyTransform(m.frame.FromLocal(end), false)
	m.engine.EndTransform()
	if ok {
		m.message = fmt.Sprintf("scaled x%.1f", factor)
	} else {
		m.message = "blocked by envelope"
	}
}

func short(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
