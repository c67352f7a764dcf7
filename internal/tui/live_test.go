package tui

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/san-kum/sortvis/internal/sim"
	"github.com/san-kum/sortvis/internal/sorting"
)

func TestLiveRenderer_DrawsBars(t *testing.T) {
	var buf bytes.Buffer
	r := NewLiveRenderer(&buf, "Bubble Sort", 1000)

	step := sorting.Step{
		Values:     []int{1, 2, 3},
		Highlights: map[int]sorting.Role{2: sorting.RoleCompared},
	}
	r.OnStep(step, 0)

	out := buf.String()
	if !strings.HasPrefix(out, clearScreen) {
		t.Error("frame should start by clearing the screen")
	}
	if !strings.Contains(out, "Bubble Sort  step=1") {
		t.Errorf("missing header in %q", out)
	}
	if !strings.Contains(out, "#") || !strings.Contains(out, "*") {
		t.Error("expected plain and highlighted bars")
	}
	if !strings.Contains(out, "sorted=100%  inversions=0") {
		t.Error("missing footer")
	}
}

func TestLiveRenderer_ThrottlesAndFlushes(t *testing.T) {
	var buf bytes.Buffer
	r := NewLiveRenderer(&buf, "x", 1)

	r.OnStep(sorting.Step{Values: []int{2, 1}}, 0)
	r.OnStep(sorting.Step{Values: []int{1, 2}}, 1)
	if n := strings.Count(buf.String(), clearScreen); n != 1 {
		t.Fatalf("expected 1 frame, got %d", n)
	}

	r.Stop()
	out := buf.String()
	if n := strings.Count(out, clearScreen); n != 2 {
		t.Errorf("Stop should draw the skipped step, got %d frames", n)
	}
	if !strings.HasSuffix(out, showCursor) {
		t.Error("Stop should restore the cursor")
	}
	if !strings.Contains(out, "step=2") {
		t.Error("final frame should show the last step")
	}
}

func TestLiveRenderer_AsObserver(t *testing.T) {
	var buf bytes.Buffer
	r := NewLiveRenderer(&buf, "Heap Sort", 1000)

	gen, err := sorting.Heap([]int{5, 3, 4, 1, 2})
	if err != nil {
		t.Fatal(err)
	}
	runner := sim.New()
	runner.AddObserver(r)

	r.Start()
	result, err := runner.Run(context.Background(), "heap", gen, []int{5, 3, 4, 1, 2}, sim.DefaultConfig())
	r.Stop()
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if !result.Sorted() {
		t.Error("expected sorted result")
	}
	if !strings.HasPrefix(buf.String(), hideCursor) {
		t.Error("Start should hide the cursor")
	}
}
