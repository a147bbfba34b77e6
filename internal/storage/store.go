package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/san-kum/rayleigh/internal/dim"
	"github.com/san-kum/rayleigh/internal/pipeline"
)

var (
	// ErrRunNotFound indicates a run id with no stored metadata.
	ErrRunNotFound = errors.New("storage: run not found")

	// ErrNotSweep indicates a run without sweep metadata.
	ErrNotSweep = errors.New("storage: run is not a sweep")
)

const (
	KindEval  = "eval"
	KindSweep = "sweep"

	metadataFile = "metadata.json"
	sweepFile    = "sweep.csv"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// RunMetadata is what gets written to metadata.json. Magnitudes are kept
// as strings so that Inf and NaN survive JSON.
type RunMetadata struct {
	ID        string        `json:"id"`
	Kind      string        `json:"kind"`
	Pipeline  string        `json:"pipeline"`
	Timestamp time.Time     `json:"timestamp"`
	Target    string        `json:"target,omitempty"`
	Value     string        `json:"value,omitempty"`
	Dimension dim.Vector    `json:"dimension"`
	Matches   []string      `json:"matches,omitempty"`
	OK        bool          `json:"ok"`
	Error     string        `json:"error,omitempty"`
	Trace     []TraceRecord `json:"trace,omitempty"`
	Sweep     *SweepMeta    `json:"sweep,omitempty"`
}

type TraceRecord struct {
	Label     string     `json:"label"`
	Value     string     `json:"value"`
	Dimension dim.Vector `json:"dimension"`
}

type SweepMeta struct {
	Operand string  `json:"operand"`
	From    float64 `json:"from"`
	To      float64 `json:"to"`
	Points  int     `json:"points"`
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// SaveResult stores one evaluation, failed casts included.
func (s *Store) SaveResult(res *pipeline.Result) (string, error) {
	meta := RunMetadata{
		Kind:      KindEval,
		Pipeline:  res.Pipeline,
		Target:    res.Target,
		Value:     formatValue(res.Value.Value()),
		Dimension: res.Value.Dimension(),
		Matches:   res.Matches,
		OK:        res.OK(),
	}
	if res.Err != nil {
		meta.Error = res.Err.Error()
	}
	for _, step := range res.Trace {
		meta.Trace = append(meta.Trace, TraceRecord{
			Label:     step.Label,
			Value:     formatValue(step.Value.Value()),
			Dimension: step.Value.Dimension(),
		})
	}

	runID, runDir, err := s.newRun()
	if err != nil {
		return "", err
	}
	meta.ID = runID
	return runID, s.writeMeta(runDir, meta)
}

// SaveSweep stores a sweep's metadata and its samples as CSV.
func (s *Store) SaveSweep(sw *pipeline.SweepResult) (string, error) {
	n := len(sw.Inputs)
	meta := RunMetadata{
		Kind:      KindSweep,
		Pipeline:  sw.Pipeline,
		Target:    sw.Target,
		Dimension: sw.Dimension,
		OK:        true,
		Sweep:     &SweepMeta{Operand: sw.Operand, Points: n},
	}
	if n > 0 {
		meta.Sweep.From = sw.Inputs[0]
		meta.Sweep.To = sw.Inputs[n-1]
	}

	runID, runDir, err := s.newRun()
	if err != nil {
		return "", err
	}
	meta.ID = runID
	if err := s.writeMeta(runDir, meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, sweepFile))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	if err := w.Write([]string{sw.Operand, "output"}); err != nil {
		return "", err
	}
	for i := range sw.Inputs {
		row := []string{formatValue(sw.Inputs[i]), formatValue(sw.Outputs[i])}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}
	w.Flush()
	return runID, w.Error()
}

func (s *Store) newRun() (string, string, error) {
	runID := uuid.NewString()
	runDir := filepath.Join(s.baseDir, runID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", "", err
	}
	return runID, runDir, nil
}

func (s *Store) writeMeta(runDir string, meta RunMetadata) error {
	meta.Timestamp = time.Now()

	metaFile, err := os.Create(filepath.Join(runDir, metadataFile))
	if err != nil {
		return err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

// List returns all readable runs, oldest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
		}
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadSweep reads the samples of a sweep run.
func (s *Store) LoadSweep(runID string) ([]float64, []float64, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, sweepFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, fmt.Errorf("%w: no sweep for %s", ErrRunNotFound, runID)
		}
		return nil, nil, err
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, nil, err
	}

	inputs := make([]float64, 0, len(records))
	outputs := make([]float64, 0, len(records))
	for i := 1; i < len(records); i++ {
		if len(records[i]) < 2 {
			continue
		}
		x, err := strconv.ParseFloat(records[i][0], 64)
		if err != nil {
			continue
		}
		y, err := strconv.ParseFloat(records[i][1], 64)
		if err != nil {
			continue
		}
		inputs = append(inputs, x)
		outputs = append(outputs, y)
	}
	return inputs, outputs, nil
}

// LoadSweepResult rebuilds a stored sweep for plotting.
func (s *Store) LoadSweepResult(runID string) (*pipeline.SweepResult, error) {
	meta, err := s.Load(runID)
	if err != nil {
		return nil, err
	}
	if meta.Kind != KindSweep || meta.Sweep == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotSweep, runID)
	}

	inputs, outputs, err := s.LoadSweep(runID)
	if err != nil {
		return nil, err
	}
	return &pipeline.SweepResult{
		Pipeline:  meta.Pipeline,
		Operand:   meta.Sweep.Operand,
		Target:    meta.Target,
		Dimension: meta.Dimension,
		Inputs:    inputs,
		Outputs:   outputs,
	}, nil
}

// ExportJSON writes the run's metadata, plus its samples for sweeps, to w.
func (s *Store) ExportJSON(w io.Writer, runID string) error {
	meta, err := s.Load(runID)
	if err != nil {
		return err
	}

	out := struct {
		*RunMetadata
		Inputs  []string `json:"inputs,omitempty"`
		Outputs []string `json:"outputs,omitempty"`
	}{RunMetadata: meta}

	if meta.Kind == KindSweep {
		inputs, outputs, err := s.LoadSweep(runID)
		if err != nil {
			return err
		}
		for i := range inputs {
			out.Inputs = append(out.Inputs, formatValue(inputs[i]))
			out.Outputs = append(out.Outputs, formatValue(outputs[i]))
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
