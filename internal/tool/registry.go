// Package tool holds the static registry of external benchmarking
// frameworks and assembles their command lines.
package tool

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Descriptor identifies one external framework and how to invoke it.
type Descriptor struct {
	Name       string   `yaml:"name"`
	Executable string   `yaml:"executable"`
	Subcommand []string `yaml:"subcommand,omitempty"`
	ConfigFlag string   `yaml:"config_flag,omitempty"` // empty means the config path is positional
	ModelFlag  string   `yaml:"model_flag,omitempty"`
	Image      string   `yaml:"image,omitempty"` // optional container image for containerized runs
}

// Builtin returns the fixed table of supported frameworks.
func Builtin() []Descriptor {
	return []Descriptor{
		{Name: "openai-evals", Executable: "oaieval", Subcommand: []string{"run"}, ModelFlag: "--model"},
		{Name: "helm", Executable: "helm-run", ConfigFlag: "--config", ModelFlag: "--model"},
		{Name: "lm-eval", Executable: "lm_eval", ConfigFlag: "--config", ModelFlag: "--model"},
	}
}

var ErrUnknownTool = errors.New("unknown tool")

// Registry maps tool names to descriptors. Behavior is fully determined by
// the descriptor table; there is no dynamic registration.
type Registry struct {
	byName map[string]*Descriptor
}

// NewRegistry combines the builtin table with extra entries from the
// settings file. An extra entry with a builtin name replaces it.
func NewRegistry(extra []Descriptor) (*Registry, error) {
	r := &Registry{byName: make(map[string]*Descriptor)}
	for _, d := range Builtin() {
		d := d
		r.byName[d.Name] = &d
	}
	for i, d := range extra {
		if d.Name == "" {
			return nil, fmt.Errorf("tool entry %d: name is required", i)
		}
		if d.Executable == "" {
			return nil, fmt.Errorf("tool %q: executable is required", d.Name)
		}
		d := d
		r.byName[d.Name] = &d
	}
	return r, nil
}

// Names returns all registered tool names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.byName))
	for name := range r.byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) Lookup(name string) (*Descriptor, error) {
	d, ok := r.byName[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (expected one of: %s)",
			ErrUnknownTool, name, strings.Join(r.Names(), ", "))
	}
	return d, nil
}

// Command assembles the external argv: executable, fixed subcommand tokens,
// config path, model override, then extra tokens verbatim.
func (d *Descriptor) Command(configPath, model string, extra []string) []string {
	argv := []string{d.Executable}
	argv = append(argv, d.Subcommand...)
	if d.ConfigFlag != "" {
		argv = append(argv, d.ConfigFlag, configPath)
	} else {
		argv = append(argv, configPath)
	}
	if model != "" && d.ModelFlag != "" {
		argv = append(argv, d.ModelFlag, model)
	}
	return append(argv, extra...)
}
