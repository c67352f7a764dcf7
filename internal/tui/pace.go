package tui

import (
	"time"

	"github.com/san-kum/sortvis/internal/sorting"
)

// Pacer is an observer that sleeps one frame after every speed steps so a
// synchronous run animates at roughly fps frames per second.
type Pacer struct {
	every int
	frame time.Duration
	sleep func(time.Duration)
}

func NewPacer(fps, speed int) *Pacer {
	return &Pacer{
		every: max(speed, 1),
		frame: time.Second / time.Duration(max(fps, 1)),
		sleep: time.Sleep,
	}
}

func (p *Pacer) OnStep(step sorting.Step, index int) {
	if (index+1)%p.every == 0 {
		p.sleep(p.frame)
	}
}
