package config

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Selection says whether a dimension is open or restricted to a list.
type Selection string

const (
	All  Selection = "all"
	Some Selection = "some"
)

// Params names the inputs and output of one analysis run.
type Params struct {
	ResultsFile       string    `yaml:"results"`
	Instances         Selection `yaml:"instances"`
	InstanceListFile  string    `yaml:"instance_list"`
	Algorithms        Selection `yaml:"algorithms"`
	AlgorithmListFile string    `yaml:"algorithm_list"`
	OutputFile        string    `yaml:"output"`
}

// ForceAllInstances lifts the instance restriction. Difficulty extraction
// always scans every instance present in the results.
func (p *Params) ForceAllInstances() {
	p.Instances = All
	p.InstanceListFile = ""
}

// Load reads a parameter file. Files ending in .yaml or .yml use the YAML
// schema; anything else is the legacy token format: the results file,
// "all_instances" or "some_instances" plus its list file, "all_algorithms"
// or "some_algorithms" plus its list file, and the output file, in that
// order, separated by any whitespace.
func Load(path string) (*Params, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading parameter file %s: %w", path, err)
	}
	var p *Params
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		p, err = parseYAML(data)
	default:
		p, err = parseTokens(data)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing parameter file %s: %w", path, err)
	}
	if err := validate(p); err != nil {
		return nil, fmt.Errorf("invalid parameter file %s: %w", path, err)
	}
	return p, nil
}

func parseYAML(data []byte) (*Params, error) {
	var p Params
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	// the long selector tokens of the legacy format are accepted too
	p.Instances = normalizeSelection(p.Instances, "instances")
	p.Algorithms = normalizeSelection(p.Algorithms, "algorithms")
	return &p, nil
}

func normalizeSelection(sel Selection, dim string) Selection {
	switch string(sel) {
	case "all_" + dim:
		return All
	case "some_" + dim:
		return Some
	}
	return sel
}

func parseTokens(data []byte) (*Params, error) {
	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Split(bufio.ScanWords)
	next := func() string {
		if sc.Scan() {
			return sc.Text()
		}
		return ""
	}

	p := &Params{ResultsFile: next()}

	switch tok := next(); tok {
	case "all_instances":
		p.Instances = All
	case "some_instances":
		p.Instances = Some
		p.InstanceListFile = next()
	default:
		return nil, fmt.Errorf(`expected "all_instances" or "some_instances", got %q`, tok)
	}

	switch tok := next(); tok {
	case "all_algorithms":
		p.Algorithms = All
	case "some_algorithms":
		p.Algorithms = Some
		p.AlgorithmListFile = next()
	default:
		return nil, fmt.Errorf(`expected "all_algorithms" or "some_algorithms", got %q`, tok)
	}

	p.OutputFile = next()
	return p, nil
}

func validate(p *Params) error {
	if p.ResultsFile == "" {
		return fmt.Errorf("results file is required")
	}
	if err := validateSelection("instances", p.Instances, p.InstanceListFile); err != nil {
		return err
	}
	if err := validateSelection("algorithms", p.Algorithms, p.AlgorithmListFile); err != nil {
		return err
	}
	if p.OutputFile == "" {
		return fmt.Errorf("output file is required")
	}
	return nil
}

func validateSelection(dim string, sel Selection, list string) error {
	switch sel {
	case All:
		if list != "" {
			return fmt.Errorf("%s: %q does not take a list file", dim, All)
		}
	case Some:
		if list == "" {
			return fmt.Errorf("%s: %q requires a list file", dim, Some)
		}
	default:
		return fmt.Errorf("%s: selection must be %q or %q, got %q", dim, All, Some, sel)
	}
	return nil
}
