package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/convox/logger"
	"github.com/fxamacker/cbor/v2"
	"github.com/google/uuid"
	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
	"github.com/san-kum/sortvis/internal/sorting"
)

const (
	metadataFile = "metadata.json"
	stepsFile    = "steps.cbor.zst"
)

var ErrRunNotFound = errors.New("storage: run not found")

type Store struct {
	baseDir string
	log     *logger.Logger
}

func New(baseDir string) *Store {
	return &Store{
		baseDir: baseDir,
		log:     logger.NewWriter("ns=sortvis pkg=storage", os.Stderr),
	}
}

func (s *Store) SetLogger(log *logger.Logger) {
	s.log = log
}

func (s *Store) Dir() string {
	return s.baseDir
}

func (s *Store) Init() error {
	return errors.Wrapf(os.MkdirAll(s.baseDir, 0755), "create data dir %s", s.baseDir)
}

type RunMetadata struct {
	ID        string             `json:"id"`
	Algorithm string             `json:"algorithm"`
	Timestamp time.Time          `json:"timestamp"`
	Seed      int64              `json:"seed"`
	Size      int                `json:"size"`
	Order     string             `json:"order"`
	Steps     int                `json:"steps"`
	Initial   []int              `json:"initial"`
	Metrics   map[string]float64 `json:"metrics"`
}

// Save writes a new run directory and fills in meta's ID, Timestamp and Steps.
func (s *Store) Save(meta *RunMetadata, steps []sorting.Step) (string, error) {
	if meta.Algorithm == "" {
		return "", errors.New("storage: run has no algorithm")
	}
	meta.ID = fmt.Sprintf("%s_%s", meta.Algorithm, uuid.New().String()[:8])
	meta.Timestamp = time.Now().UTC()
	meta.Steps = len(steps)

	runDir := filepath.Join(s.baseDir, meta.ID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", errors.Wrap(err, "create run dir")
	}

	if err := writeMetadata(filepath.Join(runDir, metadataFile), meta); err != nil {
		return "", err
	}
	if err := writeSteps(filepath.Join(runDir, stepsFile), steps); err != nil {
		return "", err
	}

	s.log.At("save").Logf("id=%s steps=%d", meta.ID, meta.Steps)
	return meta.ID, nil
}

func writeMetadata(path string, meta *RunMetadata) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create metadata")
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(meta), "encode metadata")
}

func writeSteps(path string, steps []sorting.Step) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create steps")
	}
	defer f.Close()

	zw, err := zstd.NewWriter(f)
	if err != nil {
		return errors.Wrap(err, "zstd writer")
	}
	if err := cbor.NewEncoder(zw).Encode(steps); err != nil {
		zw.Close()
		return errors.Wrap(err, "encode steps")
	}
	return errors.Wrap(zw.Close(), "flush steps")
}

// List returns stored runs, newest first. Entries that cannot be read are skipped.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, errors.Wrap(err, "read data dir")
	}

	runs := make([]RunMetadata, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			s.log.At("list").Logf("skip=%s error=%q", entry.Name(), err)
			continue
		}
		runs = append(runs, *meta)
	}

	sort.SliceStable(runs, func(i, j int) bool {
		return runs[i].Timestamp.After(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) runDir(runID string) (string, error) {
	if runID == "" || strings.ContainsAny(runID, `/\`) || runID == "." || runID == ".." {
		return "", errors.Wrapf(ErrRunNotFound, "invalid run id %q", runID)
	}
	dir := filepath.Join(s.baseDir, runID)
	if _, err := os.Stat(dir); err != nil {
		if os.IsNotExist(err) {
			return "", errors.Wrap(ErrRunNotFound, runID)
		}
		return "", errors.Wrap(err, runID)
	}
	return dir, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	dir, err := s.runDir(runID)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(filepath.Join(dir, metadataFile))
	if err != nil {
		return nil, errors.Wrap(err, "read metadata")
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, errors.Wrap(err, "parse metadata")
	}
	return &meta, nil
}

func (s *Store) LoadSteps(runID string) ([]sorting.Step, error) {
	dir, err := s.runDir(runID)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(filepath.Join(dir, stepsFile))
	if err != nil {
		return nil, errors.Wrap(err, "open steps")
	}
	defer f.Close()

	zr, err := zstd.NewReader(f)
	if err != nil {
		return nil, errors.Wrap(err, "zstd reader")
	}
	defer zr.Close()

	var steps []sorting.Step
	if err := cbor.NewDecoder(zr).Decode(&steps); err != nil {
		return nil, errors.Wrap(err, "decode steps")
	}
	return steps, nil
}

func (s *Store) Delete(runID string) error {
	dir, err := s.runDir(runID)
	if err != nil {
		return err
	}
	if err := os.RemoveAll(dir); err != nil {
		return errors.Wrapf(err, "delete %s", runID)
	}
	s.log.At("delete").Logf("id=%s", runID)
	return nil
}
