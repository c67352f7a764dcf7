package viz

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/sortvis/internal/metrics"
	"github.com/san-kum/sortvis/internal/sim"
	"github.com/san-kum/sortvis/internal/sorting"
)

const historyCapacity = 600

// SourceFunc creates a fresh step source positioned before the first step.
type SourceFunc func() (sim.Source, error)

// Panel animates one step source and keeps a bounded history for scrubbing.
type Panel struct {
	Title      string
	initial    []int
	newSource  SourceFunc
	src        sim.Source
	current    sorting.Step
	history    []sorting.Step
	playHead   int
	steps      int
	done       bool
	inversions *metrics.Inversions
}

func NewPanel(title string, initial []int, newSource SourceFunc) (*Panel, error) {
	p := &Panel{
		Title:      title,
		initial:    slices.Clone(initial),
		newSource:  newSource,
		inversions: metrics.NewInversions(),
	}
	if err := p.Reset(); err != nil {
		return nil, err
	}
	return p, nil
}

// NewAlgorithmPanel builds a panel that replays the named algorithm on initial.
func NewAlgorithmPanel(name string, initial []int) (*Panel, error) {
	alg, err := sorting.Lookup(name)
	if err != nil {
		return nil, err
	}
	input := slices.Clone(initial)
	return NewPanel(alg.Title, input, func() (sim.Source, error) {
		gen, err := alg.New(input)
		if err != nil {
			return nil, err
		}
		return gen, nil
	})
}

// NewTracePanel builds a panel over recorded steps.
func NewTracePanel(title string, initial []int, steps []sorting.Step) (*Panel, error) {
	return NewPanel(title, initial, func() (sim.Source, error) {
		return sim.NewTrace(steps), nil
	})
}

// Reset restarts the panel from its initial array with a new source. If the
// source cannot be built the panel keeps its current state and source.
func (p *Panel) Reset() error {
	src, err := p.newSource()
	if err != nil {
		return err
	}
	if p.src != nil {
		p.src.Stop()
	}
	p.src = src
	p.current = sorting.Step{Values: slices.Clone(p.initial)}
	p.history = make([]sorting.Step, 0, historyCapacity)
	p.playHead = -1
	p.steps = 0
	p.done = false
	p.inversions.Reset()
	p.inversions.Observe(p.current, 0)
	return nil
}

// Advance pulls one step. It reports false once the source is exhausted.
func (p *Panel) Advance() bool {
	if p.done {
		return false
	}
	step, ok := p.src.Next()
	if !ok {
		p.done = true
		return false
	}
	p.current = step
	p.steps++
	p.inversions.Observe(step, p.steps-1)

	p.history = append(p.history, step)
	if len(p.history) > historyCapacity {
		p.history = p.history[1:]
	}
	return true
}

// Scrub moves the playback position through the history; -1 means live.
func (p *Panel) Scrub(dir int) {
	if p.playHead == -1 {
		if len(p.history) == 0 {
			return
		}
		p.playHead = len(p.history) - 1
	}
	p.playHead += dir
	if p.playHead < 0 {
		p.playHead = 0
	}
	if p.playHead >= len(p.history) {
		p.playHead = -1
	}
}

func (p *Panel) Stop() {
	if p.src != nil {
		p.src.Stop()
	}
}

func (p *Panel) Visible() sorting.Step {
	if p.playHead >= 0 && p.playHead < len(p.history) {
		return p.history[p.playHead]
	}
	return p.current
}

func (p *Panel) Steps() int      { return p.steps }
func (p *Panel) Done() bool      { return p.done }
func (p *Panel) Replaying() bool { return p.playHead != -1 }

func (p *Panel) InversionHistory() []float64 {
	return p.inversions.History()
}

func (p *Panel) Status(running bool) string {
	switch {
	case p.playHead != -1:
		return "REPLAY"
	case p.done:
		return "DONE"
	case !running:
		return "PAUSED"
	}
	return "RUNNING"
}

// View renders the panel at the given outer width and bar height.
func (p *Panel) View(theme Theme, width, barHeight int, running, compact bool) string {
	inner := width - 4
	if inner < 8 {
		inner = 8
	}
	step := p.Visible()

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(theme.Primary)
	statusStyle := StatusRunning
	switch p.Status(running) {
	case "PAUSED", "REPLAY":
		statusStyle = StatusPaused
	case "DONE":
		statusStyle = lipgloss.NewStyle().Bold(true).Foreground(theme.Accent)
	}

	var s strings.Builder
	s.WriteString(titleStyle.Render(p.Title) + "\n")
	s.WriteString(MetricLabel.Render("step ") + MetricValue.Render(fmt.Sprintf("%-6d", p.steps)) + " " + statusStyle.Render(p.Status(running)) + "\n")
	if compact {
		c := NewCanvas(inner, barHeight)
		c.DrawBars(step.Values, slices.Max(append([]int{1}, step.Values...)))
		s.WriteString(lipgloss.NewStyle().Foreground(theme.Bar).Render(c.String()))
	} else {
		s.WriteString(RenderBars(step, theme, inner, barHeight))
	}
	s.WriteString("\n")

	fraction := metrics.Fraction(step.Values)
	s.WriteString(ProgressBar(fraction, inner-5) + MetricValue.Render(fmt.Sprintf(" %3.0f%%", fraction*100)) + "\n")
	s.WriteString(SparklineChart(p.inversions.History(), inner))

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Muted).
		Width(width - 2).
		Padding(0, 1)
	return box.Render(s.String())
}

var partialBlocks = []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// RenderBars draws step bottom-up with block characters, one column per value
// or per bucket of values when they do not fit. A bucket takes the color of its
// first highlighted index.
func RenderBars(step sorting.Step, theme Theme, width, height int) string {
	n := len(step.Values)
	if n == 0 || width <= 0 || height <= 0 {
		return strings.Repeat("\n", max(height-1, 0))
	}
	cols := min(n, width)
	top := slices.Max(append([]int{1}, step.Values...))

	eighths := make([]int, cols)
	colors := make([]lipgloss.Color, cols)
	for c := 0; c < cols; c++ {
		lo, hi := c*n/cols, (c+1)*n/cols
		peak := 0
		colors[c] = theme.Bar
		highlighted := false
		for i := lo; i < hi; i++ {
			peak = max(peak, step.Values[i])
			if role, ok := step.Role(i); ok && !highlighted {
				colors[c] = theme.RoleColor(role)
				highlighted = true
			}
		}
		eighths[c] = scale(peak, top, height*8)
	}

	lines := make([]string, height)
	for r := 0; r < height; r++ {
		level := height - 1 - r
		var line strings.Builder
		runStart := 0
		var run strings.Builder
		for c := 0; c < cols; c++ {
			if c > 0 && colors[c] != colors[runStart] {
				line.WriteString(lipgloss.NewStyle().Foreground(colors[runStart]).Render(run.String()))
				run.Reset()
				runStart = c
			}
			run.WriteRune(blockAt(eighths[c], level))
		}
		line.WriteString(lipgloss.NewStyle().Foreground(colors[runStart]).Render(run.String()))
		lines[r] = line.String()
	}
	return strings.Join(lines, "\n")
}

// blockAt returns the glyph for a bar of the given height in eighths at row level.
func blockAt(eighths, level int) rune {
	full := eighths / 8
	switch {
	case level < full:
		return partialBlocks[8]
	case level == full:
		return partialBlocks[eighths%8]
	}
	return partialBlocks[0]
}
