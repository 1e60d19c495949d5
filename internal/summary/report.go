// Package summary aggregates numeric metrics from benchmark result files.
// It walks an artifact tree, parses JSON/JSONL/YAML files, flattens nested
// structures into dotted metric paths, and keeps numeric leaves only.
package summary

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"
)

// Record is one numeric value keyed by source file and metric path.
// Duplicate paths across files are kept separate per file, never merged.
type Record struct {
	File  string  `json:"file"`
	Path  string  `json:"metric"`
	Value float64 `json:"value"`
}

// Stat is a cross-file aggregate for one metric path.
type Stat struct {
	Path  string  `json:"metric"`
	Count int     `json:"count"`
	Mean  float64 `json:"mean"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
}

type Report struct {
	Root         string
	FilesScanned int
	FilesParsed  int
	Records      []Record
	Warnings     []string
}

// Stats groups records by metric path across all files, sorted by path.
func (r *Report) Stats() []Stat {
	type accum struct {
		count    int
		sum      float64
		min, max float64
	}
	byPath := map[string]*accum{}
	for _, rec := range r.Records {
		a, ok := byPath[rec.Path]
		if !ok {
			a = &accum{min: rec.Value, max: rec.Value}
			byPath[rec.Path] = a
		}
		a.count++
		a.sum += rec.Value
		if rec.Value < a.min {
			a.min = rec.Value
		}
		if rec.Value > a.max {
			a.max = rec.Value
		}
	}
	stats := make([]Stat, 0, len(byPath))
	for path, a := range byPath {
		stats = append(stats, Stat{
			Path:  path,
			Count: a.count,
			Mean:  a.sum / float64(a.count),
			Min:   a.min,
			Max:   a.max,
		})
	}
	sort.Slice(stats, func(i, j int) bool {
		return stats[i].Path < stats[j].Path
	})
	return stats
}

// Write emits the report in a stable order; repeated calls over an
// unchanged report produce byte-identical output.
func Write(r *Report, format string, w io.Writer) error {
	switch format {
	case "markdown":
		return writeMarkdown(r, w)
	case "json":
		return writeJSON(r, w)
	default:
		return writeTable(r, w)
	}
}

func writeTable(r *Report, w io.Writer) error {
	if len(r.Records) == 0 {
		fmt.Fprintf(w, "No numeric metrics discovered (%d files scanned).\n", r.FilesScanned)
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "FILE\tMETRIC\tVALUE")
	fmt.Fprintln(tw, strings.Repeat("-", 60))
	for _, rec := range r.Records {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", rec.File, rec.Path, formatValue(rec.Value))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w)
	tw = tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "METRIC\tCOUNT\tMEAN\tMIN\tMAX")
	fmt.Fprintln(tw, strings.Repeat("-", 60))
	for _, s := range r.Stats() {
		fmt.Fprintf(tw, "%s\t%d\t%.3f\t%s\t%s\n",
			s.Path, s.Count, s.Mean, formatValue(s.Min), formatValue(s.Max))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\n%d files scanned, %d parsed, %d metrics\n",
		r.FilesScanned, r.FilesParsed, len(r.Records))
	return nil
}

func writeMarkdown(r *Report, w io.Writer) error {
	fmt.Fprintln(w, "| File | Metric | Value |")
	fmt.Fprintln(w, "|---|---|---|")
	for _, rec := range r.Records {
		fmt.Fprintf(w, "| %s | %s | %s |\n", rec.File, rec.Path, formatValue(rec.Value))
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "| Metric | Count | Mean | Min | Max |")
	fmt.Fprintln(w, "|---|---|---|---|---|")
	for _, s := range r.Stats() {
		fmt.Fprintf(w, "| %s | %d | %.3f | %s | %s |\n",
			s.Path, s.Count, s.Mean, formatValue(s.Min), formatValue(s.Max))
	}
	return nil
}

func writeJSON(r *Report, w io.Writer) error {
	out := struct {
		Root         string   `json:"root"`
		FilesScanned int      `json:"files_scanned"`
		FilesParsed  int      `json:"files_parsed"`
		Metrics      []Record `json:"metrics"`
		Stats        []Stat   `json:"stats"`
	}{
		Root:         r.Root,
		FilesScanned: r.FilesScanned,
		FilesParsed:  r.FilesParsed,
		Metrics:      r.Records,
		Stats:        r.Stats(),
	}
	if out.Metrics == nil {
		out.Metrics = []Record{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
