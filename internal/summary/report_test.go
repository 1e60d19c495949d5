package summary_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/signalnine/benchwrap/internal/summary"
)

func sampleReport() *summary.Report {
	return &summary.Report{
		Root:         "artifacts",
		FilesScanned: 3,
		FilesParsed:  2,
		Records: []summary.Record{
			{File: "helm/a.json", Path: "accuracy", Value: 0.8},
			{File: "helm/b.json", Path: "accuracy", Value: 0.9},
			{File: "helm/b.json", Path: "latency_ms", Value: 120},
		},
	}
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	if err := summary.Write(sampleReport(), "table", &buf); err != nil {
		t.Fatalf("Write: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"helm/a.json", "accuracy", "latency_ms", "0.8", "3 files scanned, 2 parsed, 3 metrics"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	rep := &summary.Report{Root: "artifacts", FilesScanned: 2}
	if err := summary.Write(rep, "table", &buf); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if !strings.Contains(buf.String(), "No numeric metrics discovered") {
		t.Errorf("unexpected empty-report output: %q", buf.String())
	}
}

func TestWriteMarkdown(t *testing.T) {
	var buf bytes.Buffer
	if err := summary.Write(sampleReport(), "markdown", &buf); err != nil {
		t.Fatalf("Write: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "| File | Metric | Value |") {
		t.Errorf("missing metrics header:\n%s", out)
	}
	if !strings.Contains(out, "| helm/a.json | accuracy | 0.8 |") {
		t.Errorf("missing metric row:\n%s", out)
	}
	if !strings.Contains(out, "| Metric | Count | Mean | Min | Max |") {
		t.Errorf("missing stats header:\n%s", out)
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := summary.Write(sampleReport(), "json", &buf); err != nil {
		t.Fatalf("Write: %v", err)
	}
	var out struct {
		Root         string           `json:"root"`
		FilesScanned int              `json:"files_scanned"`
		FilesParsed  int              `json:"files_parsed"`
		Metrics      []summary.Record `json:"metrics"`
		Stats        []summary.Stat   `json:"stats"`
	}
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if out.FilesScanned != 3 || len(out.Metrics) != 3 {
		t.Errorf("unexpected payload %+v", out)
	}
	if len(out.Stats) != 2 {
		t.Fatalf("expected 2 stat groups, got %v", out.Stats)
	}
	if out.Stats[0].Path != "accuracy" || out.Stats[0].Count != 2 {
		t.Errorf("unexpected stat %+v", out.Stats[0])
	}
}

func TestStats(t *testing.T) {
	stats := sampleReport().Stats()
	if len(stats) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(stats))
	}
	acc := stats[0]
	if acc.Path != "accuracy" {
		t.Fatalf("expected accuracy first (sorted), got %q", acc.Path)
	}
	if acc.Count != 2 || acc.Min != 0.8 || acc.Max != 0.9 {
		t.Errorf("unexpected accuracy stat %+v", acc)
	}
	lat := stats[1]
	if lat.Path != "latency_ms" || lat.Count != 1 || lat.Mean != 120 {
		t.Errorf("unexpected latency stat %+v", lat)
	}
}
