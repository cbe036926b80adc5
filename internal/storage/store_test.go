package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/sortviz/internal/algorithms"
	"github.com/san-kum/sortviz/internal/experiment"
)

func runQuick(t *testing.T) *experiment.Result {
	t.Helper()
	res, err := experiment.Run(context.Background(), experiment.Config{Algorithm: algorithms.KindQuick, Bars: 20, Seed: 42})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	return res
}

func TestStoreSaveLoad(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	res := runQuick(t)
	runID, err := st.Save(res)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if !strings.HasPrefix(runID, "quick_") {
		t.Errorf("unexpected run id %q", runID)
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if meta.Algorithm != "quick" || meta.Seed != 42 || meta.Bars != 20 {
		t.Errorf("unexpected metadata: %+v", meta)
	}
	if meta.Steps != res.Steps || meta.Comparisons != res.Counters.Comparisons {
		t.Errorf("counters not stored: %+v", meta)
	}

	trace, err := st.LoadTrace(runID)
	if err != nil {
		t.Fatalf("load trace failed: %v", err)
	}
	if len(trace) != len(res.Trace) {
		t.Fatalf("expected %d samples, got %d", len(res.Trace), len(trace))
	}
	if trace[len(trace)-1] != res.Trace[len(res.Trace)-1] {
		t.Errorf("last sample mismatch: %+v vs %+v", trace[len(trace)-1], res.Trace[len(res.Trace)-1])
	}
}

func TestStoreList(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		if _, err := st.Save(runQuick(t)); err != nil {
			t.Fatal(err)
		}
	}
	runs, err := st.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 3 {
		t.Errorf("expected 3 runs, got %d", len(runs))
	}
}

func TestStoreList_MissingDir(t *testing.T) {
	st := New(filepath.Join(t.TempDir(), "absent"))
	runs, err := st.List()
	if err != nil || len(runs) != 0 {
		t.Errorf("expected empty list, got %v, %v", runs, err)
	}
}

func TestStoreLoad_NotFound(t *testing.T) {
	st := New(t.TempDir())
	if _, err := st.Load("bubble_missing"); !errors.Is(err, ErrRunNotFound) {
		t.Errorf("expected ErrRunNotFound, got %v", err)
	}
	if _, err := st.LoadTrace("bubble_missing"); !errors.Is(err, ErrRunNotFound) {
		t.Errorf("expected ErrRunNotFound, got %v", err)
	}
}

func TestStoreExport(t *testing.T) {
	st := New(t.TempDir())
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}
	res := runQuick(t)
	runID, err := st.Save(res)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := st.Export(&buf, runID); err != nil {
		t.Fatalf("export failed: %v", err)
	}
	var data ExportData
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if data.ID != runID || len(data.Trace) != res.Steps {
		t.Errorf("unexpected export: id=%s samples=%d", data.ID, len(data.Trace))
	}
}
