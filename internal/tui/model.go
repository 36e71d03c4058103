package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	list "github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"slimeatlas/internal/atlas"
	"slimeatlas/internal/config"
	"slimeatlas/internal/geom"
	"slimeatlas/internal/slime"
)

// pixelRatio converts terminal cells to braille dots.
var pixelRatio = atlas.Ratio{X: dotsPerCol, Z: dotsPerRow}

type dragKind int

const (
	dragNone dragKind = iota
	dragPan
	dragPinch
	dragSlider
)

// session holds the state shared by every copy of Model: the store, the bound
// view and the gesture machines.
type session struct {
	cfg    config.Config
	finder slime.Finder
	store  *atlas.Store
	size   *atlas.Signal[geom.Size]
	view   *atlas.View
	slider *atlas.Slider

	frame    atlas.Frame
	frameSeq int
	lines    []string
	shown    float64 // scale as last mirrored into the slider

	pan   atlas.Pan
	pinch atlas.Pinch

	resize    *atlas.Throttle[geom.Size]
	wheelGate *atlas.Debouncer
	panGate   *atlas.Debouncer
	pinchGate *atlas.Debouncer
	now       func() time.Time

	drag  dragKind
	dragX int
	dragY int
}

type Model struct {
	width  int
	height int
	sized  bool

	showSidebar bool
	status      string

	s *session

	// marked-chunk sidebar
	l          list.Model
	sidebarSeq int

	// goto prompt
	prompt bool
	ti     textinput.Model

	bar  progress.Model
	keys keyMap
	help help.Model

	// hover state
	hovering    bool
	hoverWorld  geom.Point
	hoverChunk  geom.Chunk
	hoverMarked bool
}

// New builds a model for cfg. The view is bound immediately and draws as soon
// as the first window size arrives.
func New(cfg config.Config) Model {
	s := &session{
		cfg:       cfg,
		finder:    slime.New(cfg.Seed),
		size:      atlas.NewSignal(geom.Size{}),
		resize:    atlas.NewThrottle[geom.Size](atlas.ResizeThrottle),
		wheelGate: atlas.NewDebouncer(atlas.WheelDebounce),
		panGate:   atlas.NewDebouncer(atlas.PanMoveDebounce),
		pinchGate: atlas.NewDebouncer(atlas.PinchDebounce),
		now:       time.Now,
	}
	s.store = atlas.NewStore(cfg.Center(), cfg.Scale, cfg.Limits())
	s.pinch = atlas.Pinch{Limits: cfg.Limits()}
	s.view = atlas.Bind(s.store, s.size, newBrailleSurface, s.finder.IsSlimy, atlas.ViewOptions{
		HeightPercent: cfg.HeightPercent,
		OnFrame: func(f atlas.Frame, surf atlas.Surface) {
			s.frame = f
			s.frameSeq++
			if b, ok := surf.(*brailleSurface); ok {
				s.lines = b.lines()
			}
		},
	})
	s.slider = atlas.BindSlider(s.store, func(scale float64) { s.shown = scale })

	m := Model{
		status: "slimeatlas ready",
		s:      s,
		keys:   defaultKeys(),
		help:   help.New(),
	}
	d := list.NewDefaultDelegate()
	d.ShowDescription = true
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "Slime chunks"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(false)

	m.ti = textinput.New()
	m.ti.Prompt = "goto> "
	m.ti.Placeholder = "x z"
	m.ti.CharLimit = 64

	m.bar = progress.New(progress.WithSolidFill(string(markedBg)), progress.WithoutPercentage())
	return m
}

func (m Model) Init() tea.Cmd { return nil }

// Close releases the view and slider subscriptions.
func (m Model) Close() {
	m.s.view.Close()
	m.s.slider.Close()
}
