package summary

import (
	"fmt"
	"sort"
	"strconv"
)

// flattenRecords reduces a parsed document to its numeric leaves, keyed by
// dot-joined paths. Sequence elements are keyed by index. Strings are never
// coerced, even when they look numeric.
func flattenRecords(file string, v any) []Record {
	var records []Record
	flattenInto(&records, file, "", v)
	return records
}

func flattenInto(records *[]Record, file, prefix string, v any) {
	switch val := v.(type) {
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			flattenInto(records, file, joinPath(prefix, k), val[k])
		}
	case map[any]any:
		keys := make([]string, 0, len(val))
		lookup := make(map[string]any, len(val))
		for k, item := range val {
			ks := fmt.Sprint(k)
			keys = append(keys, ks)
			lookup[ks] = item
		}
		sort.Strings(keys)
		for _, k := range keys {
			flattenInto(records, file, joinPath(prefix, k), lookup[k])
		}
	case []any:
		for i, item := range val {
			flattenInto(records, file, joinPath(prefix, strconv.Itoa(i)), item)
		}
	default:
		if f, ok := numericValue(v); ok {
			*records = append(*records, Record{File: file, Path: prefix, Value: f})
		}
	}
}

func joinPath(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}

// numericValue reports whether the parser typed v as a number. Booleans and
// strings do not qualify.
func numericValue(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}
