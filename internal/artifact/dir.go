// Package artifact manages per-run output directories.
package artifact

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// CreateRunDir creates base/{tool}/{timestamp} and points a per-tool
// "latest" symlink at it. The timestamp has one-second resolution; two runs
// started within the same second share the directory.
func CreateRunDir(base, toolName string) (string, error) {
	stamp := time.Now().UTC().Format("20060102T150405Z")
	runDir := filepath.Join(base, toolName, stamp)
	runDir, err := filepath.Abs(runDir)
	if err != nil {
		return "", fmt.Errorf("resolving run dir: %w", err)
	}
	if err := os.MkdirAll(runDir, 0o755); err != nil {
		return "", fmt.Errorf("creating run dir: %w", err)
	}
	latest := filepath.Join(base, toolName, "latest")
	os.Remove(latest)
	if err := os.Symlink(runDir, latest); err != nil {
		return "", fmt.Errorf("creating latest symlink: %w", err)
	}
	return runDir, nil
}
