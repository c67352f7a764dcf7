package tui

import (
	"testing"
	"time"

	"github.com/san-kum/sortvis/internal/sorting"
)

func TestPacer(t *testing.T) {
	p := NewPacer(20, 3)
	var slept []time.Duration
	p.sleep = func(d time.Duration) { slept = append(slept, d) }

	for i := 0; i < 7; i++ {
		p.OnStep(sorting.Step{}, i)
	}

	if len(slept) != 2 {
		t.Fatalf("expected 2 pauses for 7 steps at speed 3, got %d", len(slept))
	}
	if slept[0] != 50*time.Millisecond {
		t.Errorf("expected 50ms frames, got %v", slept[0])
	}
}

func TestPacer_Defaults(t *testing.T) {
	p := NewPacer(0, 0)
	if p.every != 1 || p.frame != time.Second {
		t.Errorf("unexpected defaults: every=%d frame=%v", p.every, p.frame)
	}
}
