package storage

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/convox/logger"
	"github.com/pkg/errors"
	"github.com/san-kum/sortvis/internal/sorting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	st := New(t.TempDir())
	st.SetLogger(logger.NewWriter("ns=test", io.Discard))
	require.NoError(t, st.Init())
	return st
}

func bubbleTrace(t *testing.T) []sorting.Step {
	gen, err := sorting.Bubble([]int{3, 5, 1, 4, 2})
	require.NoError(t, err)
	return gen.Collect()
}

func TestStoreSaveLoad(t *testing.T) {
	st := newTestStore(t)
	steps := bubbleTrace(t)

	meta := &RunMetadata{
		Algorithm: sorting.NameBubble,
		Seed:      42,
		Size:      5,
		Order:     "random",
		Initial:   []int{3, 5, 1, 4, 2},
		Metrics:   map[string]float64{"writes": 12},
	}
	runID, err := st.Save(meta, steps)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(runID, "bubble_"))
	assert.Equal(t, runID, meta.ID)

	loaded, err := st.Load(runID)
	require.NoError(t, err)
	assert.Equal(t, sorting.NameBubble, loaded.Algorithm)
	assert.Equal(t, int64(42), loaded.Seed)
	assert.Equal(t, 10, loaded.Steps)
	assert.Equal(t, []int{3, 5, 1, 4, 2}, loaded.Initial)
	assert.Equal(t, 12.0, loaded.Metrics["writes"])

	trace, err := st.LoadSteps(runID)
	require.NoError(t, err)
	assert.Equal(t, steps, trace)
}

func TestStoreSave_RequiresAlgorithm(t *testing.T) {
	st := newTestStore(t)
	_, err := st.Save(&RunMetadata{}, nil)
	assert.Error(t, err)
}

func TestStoreList(t *testing.T) {
	st := newTestStore(t)

	runs, err := st.List()
	require.NoError(t, err)
	assert.Empty(t, runs)

	_, err = st.Save(&RunMetadata{Algorithm: "quick"}, nil)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	second, err := st.Save(&RunMetadata{Algorithm: "merge"}, nil)
	require.NoError(t, err)

	// a directory without metadata is skipped
	require.NoError(t, os.MkdirAll(filepath.Join(st.Dir(), "junk"), 0755))

	runs, err = st.List()
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, second, runs[0].ID)
}

func TestStoreList_MissingDir(t *testing.T) {
	st := New(filepath.Join(t.TempDir(), "nope"))
	runs, err := st.List()
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestStoreDelete(t *testing.T) {
	st := newTestStore(t)
	runID, err := st.Save(&RunMetadata{Algorithm: "heap"}, bubbleTrace(t))
	require.NoError(t, err)

	require.NoError(t, st.Delete(runID))

	_, err = st.Load(runID)
	assert.True(t, errors.Is(err, ErrRunNotFound))
	assert.True(t, errors.Is(st.Delete(runID), ErrRunNotFound))
}

func TestStore_RejectsPathIDs(t *testing.T) {
	st := newTestStore(t)
	for _, id := range []string{"", "..", "../etc", "a/b"} {
		_, err := st.Load(id)
		assert.True(t, errors.Is(err, ErrRunNotFound), id)
	}
}

func TestExportCSV(t *testing.T) {
	steps := []sorting.Step{
		{Values: []int{2, 1}, Highlights: map[int]sorting.Role{1: sorting.RoleCompared, 0: sorting.RoleCompared}},
		{Values: []int{1, 2}, Highlights: map[int]sorting.Role{0: sorting.RoleActive}},
	}

	var buf bytes.Buffer
	require.NoError(t, ExportCSV(&buf, steps))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "step,v0,v1,highlights", lines[0])
	assert.Equal(t, "0,2,1,0:compared 1:compared", lines[1])
	assert.Equal(t, "1,1,2,0:active", lines[2])
}

func TestExportCSV_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ExportCSV(&buf, nil))
	assert.Empty(t, buf.String())
}

func TestExportJSON(t *testing.T) {
	meta := &RunMetadata{ID: "bubble_1234abcd", Algorithm: "bubble", Steps: 10}
	steps := bubbleTrace(t)

	var buf bytes.Buffer
	require.NoError(t, ExportJSON(&buf, meta, steps))

	var data ExportData
	require.NoError(t, json.Unmarshal(buf.Bytes(), &data))
	assert.Equal(t, "bubble_1234abcd", data.Run.ID)
	require.Len(t, data.Steps, 10)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, data.Steps[9].Values)
	assert.Equal(t, sorting.RoleCompared, data.Steps[0].Highlights[0])
}
