// Package storage keeps records of headless runs: one directory per run with
// a metadata.json and a per-step trace.csv.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/san-kum/sortviz/internal/experiment"
)

var ErrRunNotFound = errors.New("storage: run not found")

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID          string    `json:"id"`
	Algorithm   string    `json:"algorithm"`
	Timestamp   time.Time `json:"timestamp"`
	Seed        int64     `json:"seed"`
	Bars        int       `json:"bars"`
	Steps       int       `json:"steps"`
	Comparisons int       `json:"comparisons"`
	Swaps       int       `json:"swaps"`
	Writes      int       `json:"writes"`
	ElapsedNs   int64     `json:"elapsed_ns"`
}

func (s *Store) Save(res *experiment.Result) (string, error) {
	runID := fmt.Sprintf("%s_%s", res.Algorithm.Slug(), uuid.New().String()[:8])
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:          runID,
		Algorithm:   res.Algorithm.Slug(),
		Timestamp:   time.Now(),
		Seed:        res.Seed,
		Bars:        res.Bars,
		Steps:       res.Steps,
		Comparisons: res.Counters.Comparisons,
		Swaps:       res.Counters.Swaps,
		Writes:      res.Counters.Writes,
		ElapsedNs:   res.Elapsed.Nanoseconds(),
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "trace.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	if err := w.Write([]string{"step", "comparisons", "swaps", "writes"}); err != nil {
		return "", err
	}
	for _, smp := range res.Trace {
		row := []string{
			strconv.Itoa(smp.Step),
			strconv.Itoa(smp.Comparisons),
			strconv.Itoa(smp.Swaps),
			strconv.Itoa(smp.Writes),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}

	return runID, nil
}

// List returns every readable run, oldest first.
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

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.Before(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
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

func (s *Store) LoadTrace(runID string) ([]experiment.Sample, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "trace.csv"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrRunNotFound, runID)
		}
		return nil, err
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return []experiment.Sample{}, nil
	}

	trace := make([]experiment.Sample, 0, len(records)-1)
	for _, record := range records[1:] {
		if len(record) < 4 {
			continue
		}
		var vals [4]int
		ok := true
		for i := range vals {
			v, err := strconv.Atoi(record[i])
			if err != nil {
				ok = false
				break
			}
			vals[i] = v
		}
		if !ok {
			continue
		}
		trace = append(trace, experiment.Sample{Step: vals[0], Comparisons: vals[1], Swaps: vals[2], Writes: vals[3]})
	}
	return trace, nil
}
