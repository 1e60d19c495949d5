package summary

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// parseJSON decodes one whole-file JSON document.
func parseJSON(rel string, data []byte) ([]Record, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return flattenRecords(rel, v), nil
}

// parseJSONL decodes one JSON document per line. A line that fails to parse
// is skipped with a warning and does not abort the file; external tools mix
// progress noise into their result streams.
func parseJSONL(rel string, data []byte) ([]Record, []string) {
	var records []Record
	var warns []string
	for i, line := range strings.Split(string(data), "\n") {
		s := strings.TrimSpace(line)
		if s == "" {
			continue
		}
		var v any
		if err := json.Unmarshal([]byte(s), &v); err != nil {
			warns = append(warns, fmt.Sprintf("skipping %s:%d: %v", rel, i+1, err))
			continue
		}
		records = append(records, flattenRecords(rel, v)...)
	}
	return records, warns
}

func parseYAML(rel string, data []byte) ([]Record, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return flattenRecords(rel, v), nil
}
