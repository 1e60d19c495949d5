// Package secrets loads API credentials from an env file for pass-through
// to external framework processes. Values are opaque; nothing here inspects
// or validates their content.
package secrets

import (
	"os"
	"strings"
)

// ParseEnvFile reads KEY=VALUE pairs, one per line. Blank lines and
// #-comments are skipped, a leading "export " is tolerated, and single or
// double quotes around values are stripped.
func ParseEnvFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var envVars []string
	for _, line := range strings.Split(string(data), "\n") {
		s := strings.TrimSpace(line)
		if s == "" || s[0] == '#' {
			continue
		}
		s = strings.TrimPrefix(s, "export ")
		eqIdx := strings.IndexByte(s, '=')
		if eqIdx < 0 {
			continue
		}
		key := s[:eqIdx]
		val := stripQuotes(s[eqIdx+1:])
		envVars = append(envVars, key+"="+val)
	}
	return envVars, nil
}

func stripQuotes(s string) string {
	if len(s) >= 2 {
		if (s[0] == '\'' && s[len(s)-1] == '\'') || (s[0] == '"' && s[len(s)-1] == '"') {
			return s[1 : len(s)-1]
		}
	}
	return s
}
