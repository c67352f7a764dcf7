package storage

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"sort"
	"strconv"

	"github.com/pkg/errors"
	"github.com/san-kum/sortvis/internal/sorting"
)

// ExportCSV writes one row per step: the step index followed by the values,
// then a highlights column of "index:role" pairs separated by spaces.
func ExportCSV(w io.Writer, steps []sorting.Step) error {
	cw := csv.NewWriter(w)

	if len(steps) > 0 {
		header := []string{"step"}
		for i := range steps[0].Values {
			header = append(header, "v"+strconv.Itoa(i))
		}
		header = append(header, "highlights")
		if err := cw.Write(header); err != nil {
			return errors.Wrap(err, "write header")
		}
	}

	for k, step := range steps {
		row := make([]string, 0, len(step.Values)+2)
		row = append(row, strconv.Itoa(k))
		for _, v := range step.Values {
			row = append(row, strconv.Itoa(v))
		}
		row = append(row, formatHighlights(step.Highlights))
		if err := cw.Write(row); err != nil {
			return errors.Wrapf(err, "write step %d", k)
		}
	}

	cw.Flush()
	return errors.Wrap(cw.Error(), "flush csv")
}

func formatHighlights(h map[int]sorting.Role) string {
	indices := make([]int, 0, len(h))
	for i := range h {
		indices = append(indices, i)
	}
	sort.Ints(indices)

	out := ""
	for n, i := range indices {
		if n > 0 {
			out += " "
		}
		out += strconv.Itoa(i) + ":" + string(h[i])
	}
	return out
}

type ExportData struct {
	Run   RunMetadata    `json:"run"`
	Steps []sorting.Step `json:"steps"`
}

func ExportJSON(w io.Writer, meta *RunMetadata, steps []sorting.Step) error {
	data := ExportData{Run: *meta, Steps: steps}
	if data.Steps == nil {
		data.Steps = []sorting.Step{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(data), "encode json")
}
