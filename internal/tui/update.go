package tui

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"slimeatlas/internal/atlas"
	"slimeatlas/internal/export"
	"slimeatlas/internal/geom"
	"slimeatlas/internal/logging"
)

// Proposals travel through the message queue and are applied by Update one
// at a time.
type (
	scaleProposal  atlas.ScaleUpdate
	centerProposal atlas.CenterUpdate
)

type resizeFlushMsg struct{}

type exportDoneMsg struct {
	path string
	err  error
}

func proposeScale(fn atlas.ScaleUpdate) tea.Cmd {
	return func() tea.Msg { return scaleProposal(fn) }
}

func proposeCenter(fn atlas.CenterUpdate) tea.Cmd {
	return func() tea.Msg { return centerProposal(fn) }
}

func moveTo(p geom.Point) tea.Cmd {
	return proposeCenter(func(geom.Point) geom.Point { return p })
}

func panBy(dx, dz float64) tea.Cmd {
	return proposeCenter(func(c geom.Point) geom.Point { return c.Offset(dx, dz) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		sz := geom.Size{W: msg.Width, H: msg.Height}
		if !m.sized {
			// the first size is applied at once so the atlas draws immediately
			m.sized = true
			m.applySize(sz)
			break
		}
		if m.s.resize.Push(sz) {
			cmd = tea.Tick(m.s.resize.Window, func(time.Time) tea.Msg { return resizeFlushMsg{} })
		}
	case resizeFlushMsg:
		if sz, ok := m.s.resize.Flush(); ok {
			m.applySize(sz)
		}
	case scaleProposal:
		m.s.store.ProposeScale(atlas.ScaleUpdate(msg))
	case centerProposal:
		m.s.store.ProposeCenter(atlas.CenterUpdate(msg))
	case exportDoneMsg:
		if msg.err != nil {
			m.status = "export error: " + msg.err.Error()
			logging.Logger().Error("tui: export failed", "path", msg.path, "err", msg.err)
		} else {
			m.status = "exported " + msg.path
		}
	case tea.BlurMsg:
		m = m.endDrag(atlas.PhaseCancel)
	case tea.KeyMsg:
		m, cmd = m.updateKey(msg)
	case tea.MouseMsg:
		m, cmd = m.updateMouse(msg)
	}
	m.syncSidebar()
	return m, cmd
}

// applySize adopts a new window size and pushes the map size to the view.
func (m *Model) applySize(sz geom.Size) {
	m.width, m.height = sz.W, sz.H
	m.relayout()
}

func (m *Model) relayout() {
	lo := m.layout()
	if m.showSidebar {
		m.l.SetSize(sidebarWidth-2, lo.mapH-2)
	}
	m.bar.Width = lo.sliderW
	// the short help shares the footer row with the slider
	m.help.Width = max(0, m.width-lo.sliderX-lo.sliderW-10)
	m.s.size.Set(lo.surfaceSize())
}

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.prompt {
		switch msg.String() {
		case "esc":
			m.prompt = false
			m.ti.Blur()
			return m, nil
		case "enter":
			p, err := parseGoto(m.ti.Value())
			m.prompt = false
			m.ti.Blur()
			if err != nil {
				m.status = err.Error()
				return m, nil
			}
			m.status = fmt.Sprintf("goto %g %g", p.X, p.Z)
			return m, moveTo(p)
		}
		var cmd tea.Cmd
		m.ti, cmd = m.ti.Update(msg)
		return m, cmd
	}

	limits := m.s.store.Limits
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Cancel):
		if m.s.drag != dragNone {
			m = m.endDrag(atlas.PhaseCancel)
			m.status = "drag cancelled"
		}
	case m.showSidebar && (key.Matches(msg, m.keys.Up) || key.Matches(msg, m.keys.Down)):
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	case key.Matches(msg, m.keys.Up):
		return m, panBy(0, -geom.ChunkSize)
	case key.Matches(msg, m.keys.Down):
		return m, panBy(0, geom.ChunkSize)
	case key.Matches(msg, m.keys.Left):
		return m, panBy(-geom.ChunkSize, 0)
	case key.Matches(msg, m.keys.Right):
		return m, panBy(geom.ChunkSize, 0)
	case key.Matches(msg, m.keys.ZoomIn):
		return m, proposeScale(limits.StepUp)
	case key.Matches(msg, m.keys.ZoomOut):
		return m, proposeScale(limits.StepDown)
	case key.Matches(msg, m.keys.Home):
		return m, moveTo(geom.Point{})
	case key.Matches(msg, m.keys.Goto):
		m.prompt = true
		m.ti.SetValue("")
		m.status = "goto mode"
		return m, m.ti.Focus()
	case key.Matches(msg, m.keys.Sidebar):
		m.showSidebar = !m.showSidebar
		m.relayout()
	case key.Matches(msg, m.keys.Jump):
		if m.showSidebar {
			if it, ok := m.l.SelectedItem().(chunkItem); ok {
				m.status = "jump to " + it.Title()
				return m, moveTo(it.chunk.Center())
			}
		}
	case key.Matches(msg, m.keys.Export):
		m.status = "exporting..."
		return m, m.exportCmd()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

// parseGoto reads "x z" or "x,z" in world coordinates.
func parseGoto(s string) (geom.Point, error) {
	fields := strings.Fields(strings.ReplaceAll(s, ",", " "))
	if len(fields) != 2 {
		return geom.Point{}, fmt.Errorf("goto: want \"x z\", got %q", s)
	}
	x, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return geom.Point{}, fmt.Errorf("goto: x: %w", err)
	}
	z, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return geom.Point{}, fmt.Errorf("goto: z: %w", err)
	}
	return geom.Point{X: x, Z: z}, nil
}

func (m Model) exportCmd() tea.Cmd {
	cfg := m.s.cfg
	req := export.Request{
		Center: m.s.store.Center.Get(),
		Scale:  m.s.store.Scale.Get(),
		Size:   geom.Size{W: cfg.Export.Width, H: cfg.Export.Height},
		Marked: m.s.finder.IsSlimy,
	}
	req.Caption = fmt.Sprintf("seed %d  center %g,%g  scale %gx", cfg.Seed, req.Center.X, req.Center.Z, req.Scale)
	path := export.FileName(cfg.Export.Dir, req.Center, req.Scale)
	return func() tea.Msg {
		_, err := export.Save(path, req)
		return exportDoneMsg{path: path, err: err}
	}
}

// updateMouse recognizes wheel, pan, pinch and slider gestures.
func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	lo := m.layout()
	m.updateHover(lo, msg.X, msg.Y)

	if tea.MouseEvent(msg).IsWheel() {
		if !lo.inMap(msg.X, msg.Y) {
			return m, nil
		}
		var delta float64
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			delta = 1
		case tea.MouseButtonWheelDown:
			delta = -1
		default:
			return m, nil
		}
		if !m.s.wheelGate.Accept(m.s.now()) {
			return m, nil
		}
		return m, proposeScale(atlas.WheelScale(delta, m.s.store.Limits))
	}

	switch msg.Action {
	case tea.MouseActionPress:
		return m.startDrag(lo, msg)
	case tea.MouseActionMotion:
		if msg.Button == tea.MouseButtonNone && m.s.drag != dragNone {
			// the release happened where the terminal could not report it
			return m.endDrag(atlas.PhaseEnd), nil
		}
		return m.moveDrag(lo, msg)
	case tea.MouseActionRelease:
		return m.endDrag(atlas.PhaseEnd), nil
	}
	return m, nil
}

func (m Model) startDrag(lo layout, msg tea.MouseMsg) (Model, tea.Cmd) {
	if m.s.drag != dragNone {
		m = m.endDrag(atlas.PhaseEnd)
	}
	s := m.s
	switch {
	case msg.Button == tea.MouseButtonLeft && lo.inSlider(msg.X, msg.Y):
		s.drag = dragSlider
		return m, proposeScale(s.slider.Input(lo.sliderFraction(msg.X)))
	case !lo.inMap(msg.X, msg.Y):
		return m, nil
	case msg.Button == tea.MouseButtonRight || (msg.Button == tea.MouseButtonLeft && msg.Ctrl):
		s.drag = dragPinch
		s.pinch.Handle(atlas.PinchEvent{Phase: atlas.PhaseStart}, s.store.Scale.Get())
	case msg.Button == tea.MouseButtonLeft:
		s.drag = dragPan
		s.pan.Handle(atlas.PanEvent{Phase: atlas.PhaseStart}, s.store.Center.Get(), s.store.Scale.Get(), pixelRatio)
	default:
		return m, nil
	}
	s.dragX, s.dragY = msg.X, msg.Y
	return m, nil
}

func (m Model) moveDrag(lo layout, msg tea.MouseMsg) (Model, tea.Cmd) {
	s := m.s
	switch s.drag {
	case dragSlider:
		return m, proposeScale(s.slider.Input(lo.sliderFraction(msg.X)))
	case dragPan:
		if !s.panGate.Accept(s.now()) {
			return m, nil
		}
		ev := atlas.PanEvent{
			Phase:  atlas.PhaseMove,
			DeltaX: float64(msg.X - s.dragX),
			DeltaY: float64(msg.Y - s.dragY),
		}
		if c, ok := s.pan.Handle(ev, s.store.Center.Get(), s.store.Scale.Get(), pixelRatio); ok {
			return m, moveTo(c)
		}
	case dragPinch:
		if !s.pinchGate.Accept(s.now()) {
			return m, nil
		}
		ds := math.Pow(2, -float64(msg.Y-s.dragY)/s.cfg.PinchRows)
		if sc, ok := s.pinch.Handle(atlas.PinchEvent{Phase: atlas.PhaseMove, Scale: ds}, s.store.Scale.Get()); ok {
			return m, proposeScale(func(float64) float64 { return sc })
		}
	}
	return m, nil
}

// endDrag finishes or cancels the active gesture.
func (m Model) endDrag(phase atlas.Phase) Model {
	s := m.s
	switch s.drag {
	case dragPan:
		s.pan.Handle(atlas.PanEvent{Phase: phase}, s.store.Center.Get(), s.store.Scale.Get(), pixelRatio)
	case dragPinch:
		s.pinch.Handle(atlas.PinchEvent{Phase: phase}, s.store.Scale.Get())
	}
	s.drag = dragNone
	return m
}

func (m *Model) updateHover(lo layout, x, y int) {
	f := m.s.frame
	if !lo.inMap(x, y) || f.Scale <= 0 {
		m.hovering = false
		return
	}
	dot := geom.Point{
		X: float64((x-lo.mapX)*dotsPerCol) + dotsPerCol/2,
		Z: float64((y-lo.mapY)*dotsPerRow) + dotsPerRow/2,
	}
	m.hovering = true
	m.hoverWorld = atlas.SurfaceToWorld(dot, f.TopLeft, f.Scale)
	m.hoverChunk = geom.ChunkAt(m.hoverWorld)
	m.hoverMarked = m.s.finder.IsSlimy(m.hoverChunk)
}
