package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/benchtab/benchtab/internal/config"
)

func writeParams(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func TestLoadTokens(t *testing.T) {
	path := writeParams(t, "params.txt",
		"results.csv\nsome_instances inst.txt\nsome_algorithms alg.txt\nout.csv\n")
	p, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if p.ResultsFile != "results.csv" {
		t.Errorf("results file = %q, want results.csv", p.ResultsFile)
	}
	if p.Instances != config.Some || p.InstanceListFile != "inst.txt" {
		t.Errorf("instances = %q list %q, want some inst.txt", p.Instances, p.InstanceListFile)
	}
	if p.Algorithms != config.Some || p.AlgorithmListFile != "alg.txt" {
		t.Errorf("algorithms = %q list %q, want some alg.txt", p.Algorithms, p.AlgorithmListFile)
	}
	if p.OutputFile != "out.csv" {
		t.Errorf("output file = %q, want out.csv", p.OutputFile)
	}
}

func TestLoadTokensAll(t *testing.T) {
	path := writeParams(t, "params.txt",
		"results.csv all_instances all_algorithms out.csv")
	p, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if p.Instances != config.All || p.Algorithms != config.All {
		t.Errorf("selections = %q/%q, want all/all", p.Instances, p.Algorithms)
	}
	if p.InstanceListFile != "" || p.AlgorithmListFile != "" {
		t.Errorf("unexpected list files %q/%q", p.InstanceListFile, p.AlgorithmListFile)
	}
}

func TestLoadTokensErrors(t *testing.T) {
	tests := []struct {
		name, content, want string
	}{
		{"bad instance selector", "r.csv every_instance all_algorithms o.csv", "every_instance"},
		{"bad algorithm selector", "r.csv all_instances best_algorithms o.csv", "best_algorithms"},
		{"missing output", "r.csv all_instances all_algorithms", "output file"},
		{"missing instance list", "r.csv some_instances", "all_algorithms"},
		{"empty file", "", "all_instances"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := writeParams(t, "params.txt", tc.content)
			_, err := config.Load(path)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q does not mention %q", err, tc.want)
			}
		})
	}
}

func TestLoadYAML(t *testing.T) {
	path := writeParams(t, "params.yaml", `
results: results.csv
instances: some
instance_list: inst.txt
algorithms: all
output: out.csv
`)
	p, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if p.Instances != config.Some || p.InstanceListFile != "inst.txt" {
		t.Errorf("instances = %q list %q, want some inst.txt", p.Instances, p.InstanceListFile)
	}
	if p.Algorithms != config.All {
		t.Errorf("algorithms = %q, want all", p.Algorithms)
	}
}

func TestLoadYAMLLegacySelectors(t *testing.T) {
	path := writeParams(t, "params.yml", `
results: results.csv
instances: all_instances
algorithms: some_algorithms
algorithm_list: alg.txt
output: out.csv
`)
	p, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if p.Instances != config.All {
		t.Errorf("instances = %q, want all", p.Instances)
	}
	if p.Algorithms != config.Some {
		t.Errorf("algorithms = %q, want some", p.Algorithms)
	}
}

func TestLoadYAMLErrors(t *testing.T) {
	tests := []struct {
		name, content, want string
	}{
		{"all with list", "results: r.csv\ninstances: all\ninstance_list: l.txt\nalgorithms: all\noutput: o.csv", "does not take a list file"},
		{"some without list", "results: r.csv\ninstances: all\nalgorithms: some\noutput: o.csv", "requires a list file"},
		{"unknown selector", "results: r.csv\ninstances: few\nalgorithms: all\noutput: o.csv", `"few"`},
		{"missing results", "instances: all\nalgorithms: all\noutput: o.csv", "results file"},
		{"not yaml", "results: [unclosed", "parsing parameter file"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := writeParams(t, "params.yaml", tc.content)
			_, err := config.Load(path)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q does not mention %q", err, tc.want)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.txt"))
	if err == nil {
		t.Error("expected error for missing file")
	}
}

func TestForceAllInstances(t *testing.T) {
	p := &config.Params{Instances: config.Some, InstanceListFile: "inst.txt"}
	p.ForceAllInstances()
	if p.Instances != config.All || p.InstanceListFile != "" {
		t.Errorf("got %q list %q, want all with no list", p.Instances, p.InstanceListFile)
	}
}
