package viz

import (
	"strings"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const brailleBlank = 0x2800

// Canvas is a braille dot grid. Its resolution in dots is (Width*2) x (Height*4).
type Canvas struct {
	Width, Height int
	Grid          [][]rune
}

func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		for j := range c.Grid[i] {
			c.Grid[i][j] = brailleBlank
		}
	}
	return c
}

// Set turns on the dot at (x, y), with y growing downwards.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	c.Grid[row][col] |= rune(pixelMap[y%4][x%2])
}

func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = brailleBlank
		}
	}
}

// Column fills dot column x from the bottom up to the given height in dots.
func (c *Canvas) Column(x, h int) {
	bottom := c.Height*4 - 1
	for y := bottom; y > bottom-h && y >= 0; y-- {
		c.Set(x, y)
	}
}

// DrawBars plots one dot column per value, scaled so max fills the canvas.
// With more values than dot columns, values share columns and the tallest wins.
func (c *Canvas) DrawBars(values []int, max int) {
	if len(values) == 0 || max <= 0 {
		return
	}
	dotsW, dotsH := c.Width*2, c.Height*4
	for i, v := range values {
		x := i * dotsW / len(values)
		if len(values) < dotsW {
			x = i * (dotsW / len(values))
		}
		c.Column(x, scale(v, max, dotsH))
	}
}

func (c *Canvas) String() string {
	var b strings.Builder
	for i, row := range c.Grid {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(string(row))
	}
	return b.String()
}

// scale maps v in [0, max] to [0, span], keeping positive values visible.
func scale(v, max, span int) int {
	if v <= 0 || max <= 0 {
		return 0
	}
	h := v * span / max
	if h < 1 {
		h = 1
	}
	if h > span {
		h = span
	}
	return h
}
