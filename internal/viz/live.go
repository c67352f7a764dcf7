package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/pkg/errors"
)

const (
	defaultWidth = 120
	maxSpeed     = 1000
	// WindowTitle is the heading of the algorithm grid.
	WindowTitle = "Sorting Algorithms Visualizer"
)

var (
	graphStyle = lipgloss.NewStyle().Padding(1, 0)
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

type Options struct {
	Title   string
	FPS     int
	Speed   int
	Columns int
	Height  int
	Theme   string
}

func (o Options) withDefaults() Options {
	if o.Title == "" {
		o.Title = WindowTitle
	}
	if o.FPS <= 0 {
		o.FPS = 10
	}
	if o.Speed <= 0 {
		o.Speed = 1
	}
	if o.Columns <= 0 {
		o.Columns = 3
	}
	if o.Height < 2 {
		o.Height = 12
	}
	return o
}

// Model drives a grid of panels, advancing each by speed steps per tick.
type Model struct {
	panels       []*Panel
	title        string
	fps          int
	speed        int
	columns      int
	height       int
	width        int
	theme        Theme
	running      bool
	compact      bool
	showHelp     bool
	chart        []float64
	chartCaption string
	err          error
}

func NewModel(panels []*Panel, opts Options) Model {
	opts = opts.withDefaults()
	return Model{
		panels:  panels,
		title:   opts.Title,
		fps:     opts.FPS,
		speed:   opts.Speed,
		columns: min(opts.Columns, max(len(panels), 1)),
		height:  opts.Height,
		width:   defaultWidth,
		theme:   GetTheme(opts.Theme),
		running: true,
	}
}

// NewReplayModel shows a recorded trace in a single panel with its
// inversions plotted below.
func NewReplayModel(panel *Panel, inversions []float64, opts Options) Model {
	opts.Columns = 1
	if opts.Title == "" {
		opts.Title = "Replay: " + panel.Title
	}
	m := NewModel([]*Panel{panel}, opts)
	m.chart = inversions
	m.chartCaption = "Inversions"
	return m
}

func (m Model) Panels() []*Panel { return m.panels }
func (m Model) Running() bool    { return m.running }
func (m Model) Speed() int       { return m.speed }
func (m Model) Theme() Theme     { return m.theme }
func (m Model) Err() error       { return m.err }

// AllDone reports whether every panel has exhausted its source.
func (m Model) AllDone() bool {
	for _, p := range m.panels {
		if !p.Done() {
			return false
		}
	}
	return true
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Update handles input events and advances the panels.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.stop()
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "n":
			if !m.running {
				m.advance(1)
			}
		case "r":
			m.reset()
		case "+", "=":
			m.speed = min(m.speed*2, maxSpeed)
		case "-", "_":
			m.speed = max(m.speed/2, 1)
		case "[":
			m.scrub(-1)
		case "]":
			m.scrub(1)
		case "t":
			m.theme = NextTheme(m.theme)
		case "c":
			m.compact = !m.compact
		case "?":
			m.showHelp = !m.showHelp
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case TickMsg:
		if m.running {
			m.advance(m.speed)
		}
		return m, m.tick()
	}
	return m, nil
}

// advance steps live panels forward and moves replaying panels along their history.
func (m *Model) advance(n int) {
	for _, p := range m.panels {
		if p.Replaying() {
			p.Scrub(1)
			continue
		}
		for i := 0; i < n; i++ {
			if !p.Advance() {
				break
			}
		}
	}
}

func (m *Model) scrub(dir int) {
	m.running = false
	for _, p := range m.panels {
		p.Scrub(dir)
	}
}

func (m *Model) reset() {
	m.err = nil
	for _, p := range m.panels {
		if err := p.Reset(); err != nil && m.err == nil {
			m.err = errors.Wrapf(err, "reset %s", p.Title)
		}
	}
}

func (m *Model) stop() {
	for _, p := range m.panels {
		p.Stop()
	}
}

func (m Model) View() string {
	panelWidth := max(m.width/m.columns, 16)

	var rows []string
	for start := 0; start < len(m.panels); start += m.columns {
		end := min(start+m.columns, len(m.panels))
		views := make([]string, 0, end-start)
		for _, p := range m.panels[start:end] {
			views = append(views, p.View(m.theme, panelWidth, m.height, m.running, m.compact))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, views...))
	}

	var s strings.Builder
	s.WriteString(GradientText(m.title, m.theme.Primary, m.theme.Secondary) + "\n")
	s.WriteString(Separator(min(m.width, panelWidth*m.columns)) + "\n")
	s.WriteString(lipgloss.JoinVertical(lipgloss.Left, rows...) + "\n")

	if len(m.chart) > 1 {
		chart := asciigraph.Plot(m.chart,
			asciigraph.Height(6),
			asciigraph.Width(max(panelWidth-12, 10)),
			asciigraph.Caption(m.chartCaption))
		s.WriteString(graphStyle.Render(chart) + "\n")
	}

	status := fmt.Sprintf("speed x%d  fps %d  theme %s", m.speed, m.fps, m.theme.Name)
	if m.err != nil {
		status += "  error: " + m.err.Error()
	}
	s.WriteString(MetricLabel.Render(status) + "\n")
	s.WriteString(helpStyle.Render("SP:Pause N:Step R:Reset +/-:Speed [ ]:Scrub T:Theme C:Compact ?:Help Q:Quit"))

	if m.showHelp {
		return helpOverlay + "\n\n" + s.String()
	}
	return s.String()
}

const helpOverlay = `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space    - Pause/Resume             ║
║  N        - Single step when paused  ║
║  R        - Restart from same input  ║
║  + / -    - Double / halve speed     ║
║  [        - Scrub back in history    ║
║  ]        - Scrub forward            ║
║  T        - Cycle themes             ║
║  C        - Toggle braille bars      ║
║  ?        - Toggle this help         ║
║  Q        - Quit                     ║
╚══════════════════════════════════════╝`
