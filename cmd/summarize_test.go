package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSummarizeMissingRoot(t *testing.T) {
	_, err := execute(t, "summarize", filepath.Join(t.TempDir(), "nope"))
	if err == nil {
		t.Fatal("expected error for nonexistent root")
	}
}

func TestSummarizeTable(t *testing.T) {
	dir := t.TempDir()
	content := `{"accuracy": 83.5, "tag": "v1"}`
	if err := os.WriteFile(filepath.Join(dir, "result.json"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "summarize", dir)
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	if !strings.Contains(out, "accuracy") || !strings.Contains(out, "83.5") {
		t.Errorf("output missing metric:\n%s", out)
	}
	if strings.Contains(out, "tag") {
		t.Errorf("non-numeric field leaked into output:\n%s", out)
	}
}

func TestSummarizeEmptyDirSucceeds(t *testing.T) {
	out, err := execute(t, "summarize", t.TempDir())
	if err != nil {
		t.Fatalf("empty dir should succeed: %v", err)
	}
	if !strings.Contains(out, "No numeric metrics discovered") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestSummarizeFormatFromSettings(t *testing.T) {
	settings := filepath.Join(t.TempDir(), "benchwrap.yaml")
	if err := os.WriteFile(settings, []byte("report:\n  format: json\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "r.json"), []byte(`{"f1": 0.5}`), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "--settings", settings, "summarize", dir)
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	if !strings.Contains(out, `"files_scanned"`) {
		t.Errorf("expected JSON output per settings:\n%s", out)
	}
}
