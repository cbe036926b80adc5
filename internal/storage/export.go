package storage

import (
	"encoding/json"
	"io"

	"github.com/san-kum/sortviz/internal/experiment"
)

type ExportData struct {
	RunMetadata
	Trace []experiment.Sample `json:"trace"`
}

// Export writes a run's metadata and full trace as indented JSON.
func (s *Store) Export(w io.Writer, runID string) error {
	meta, err := s.Load(runID)
	if err != nil {
		return err
	}
	trace, err := s.LoadTrace(runID)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ExportData{RunMetadata: *meta, Trace: trace})
}
