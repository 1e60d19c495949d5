package summary

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Scan walks root and aggregates numeric metrics from every recognized
// result file. Files with unrecognized extensions are skipped silently;
// malformed files and lines are skipped with a recorded warning. Only a
// missing or unreadable root is fatal.
func Scan(root string) (*Report, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("artifact root %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("artifact root %s is not a directory", root)
	}

	rep := &Report{Root: root}
	err = filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			rep.Warnings = append(rep.Warnings, fmt.Sprintf("skipping %s: %v", path, err))
			return nil
		}
		if info.IsDir() {
			return nil
		}
		rep.FilesScanned++
		scanFile(rep, root, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}

	// Stable order: file path, then metric path, then source line order.
	sort.SliceStable(rep.Records, func(i, j int) bool {
		a, b := rep.Records[i], rep.Records[j]
		if a.File != b.File {
			return a.File < b.File
		}
		return a.Path < b.Path
	})
	return rep, nil
}

func scanFile(rep *Report, root, path string) {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		rel = path
	}
	rel = filepath.ToSlash(rel)

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".json", ".jsonl", ".yaml", ".yml":
	default:
		// logs, checkpoints and other non-metric files are expected here
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		rep.Warnings = append(rep.Warnings, fmt.Sprintf("skipping %s: %v", rel, err))
		return
	}

	switch ext {
	case ".json":
		records, err := parseJSON(rel, data)
		if err != nil {
			rep.Warnings = append(rep.Warnings, fmt.Sprintf("skipping %s: %v", rel, err))
			return
		}
		rep.FilesParsed++
		rep.Records = append(rep.Records, records...)
	case ".jsonl":
		records, warns := parseJSONL(rel, data)
		rep.Warnings = append(rep.Warnings, warns...)
		rep.FilesParsed++
		rep.Records = append(rep.Records, records...)
	case ".yaml", ".yml":
		records, err := parseYAML(rel, data)
		if err != nil {
			rep.Warnings = append(rep.Warnings, fmt.Sprintf("skipping %s: %v", rel, err))
			return
		}
		rep.FilesParsed++
		rep.Records = append(rep.Records, records...)
	}
}
