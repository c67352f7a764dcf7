package tui

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/san-kum/sortvis/internal/array"
	"github.com/san-kum/sortvis/internal/metrics"
	"github.com/san-kum/sortvis/internal/sorting"
)

const (
	width       = 70
	height      = 20
	clearScreen = "\033[2J\033[H"
	hideCursor  = "\033[?25l"
	showCursor  = "\033[?25h"
)

// LiveRenderer redraws a bar chart of each observed step, at most frameRate
// times per second. Bars are '#', highlighted bars '*'.
type LiveRenderer struct {
	out       io.Writer
	title     string
	frameRate int
	lastFrame time.Time
	canvas    [][]rune
	pending   *sorting.Step
	index     int
}

func NewLiveRenderer(out io.Writer, title string, frameRate int) *LiveRenderer {
	if frameRate <= 0 {
		frameRate = 10
	}
	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = make([]rune, width)
	}
	return &LiveRenderer{
		out:       out,
		title:     title,
		frameRate: frameRate,
		canvas:    canvas,
	}
}

func (r *LiveRenderer) OnStep(step sorting.Step, index int) {
	if time.Since(r.lastFrame) < time.Second/time.Duration(r.frameRate) {
		r.pending, r.index = &step, index
		return
	}
	r.lastFrame = time.Now()
	r.pending = nil
	r.draw(step, index)
}

func (r *LiveRenderer) draw(step sorting.Step, index int) {
	r.clear()
	r.drawBars(step)
	r.render(step, index)
}

func (r *LiveRenderer) clear() {
	for y := range r.canvas {
		for x := range r.canvas[y] {
			r.canvas[y][x] = ' '
		}
	}
}

func (r *LiveRenderer) set(x, y int, c rune) {
	if x >= 0 && x < width && y >= 0 && y < height {
		r.canvas[y][x] = c
	}
}

// drawBars lays values out left to right, bucketing when there are more
// values than columns.
func (r *LiveRenderer) drawBars(step sorting.Step) {
	n := len(step.Values)
	if n == 0 {
		return
	}
	cols := min(n, width)
	bw := max(width/cols, 1)
	top := max(slices.Max(step.Values), 1)

	for c := 0; c < cols; c++ {
		lo, hi := c*n/cols, (c+1)*n/cols
		peak, mark := 0, '#'
		for i := lo; i < hi; i++ {
			peak = max(peak, step.Values[i])
			if _, ok := step.Role(i); ok {
				mark = '*'
			}
		}
		bh := peak * height / top
		if peak > 0 && bh == 0 {
			bh = 1
		}
		for y := height - 1; y >= height-bh; y-- {
			for dx := 0; dx < bw-1 || dx == 0; dx++ {
				r.set(c*bw+dx, y, mark)
			}
		}
	}
}

func (r *LiveRenderer) render(step sorting.Step, index int) {
	var b strings.Builder
	b.WriteString(clearScreen)
	b.WriteString(fmt.Sprintf("  %s  step=%d\n", r.title, index+1))
	b.WriteString("  " + strings.Repeat("-", width) + "\n")

	for _, row := range r.canvas {
		b.WriteString("  ")
		b.WriteString(string(row))
		b.WriteString("\n")
	}

	b.WriteString("  " + strings.Repeat("-", width) + "\n")
	b.WriteString(fmt.Sprintf("  sorted=%.0f%%  inversions=%d\n",
		metrics.Fraction(step.Values)*100, array.Array(step.Values).Inversions()))

	fmt.Fprint(r.out, b.String())
}

func (r *LiveRenderer) Start() { fmt.Fprint(r.out, hideCursor) }

// Stop draws any step skipped by throttling and restores the cursor.
func (r *LiveRenderer) Stop() {
	if r.pending != nil {
		r.draw(*r.pending, r.index)
		r.pending = nil
	}
	fmt.Fprint(r.out, showCursor)
}
