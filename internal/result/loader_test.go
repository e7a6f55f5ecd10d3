package result_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/benchtab/benchtab/internal/result"
)

const header = "timestamp,instance,algorithm,seed,limit,objective,time,history\n"

func TestLoad(t *testing.T) {
	data := header +
		"t0,g1,alpha,0,10,85,3.2,\n" +
		"\n" +
		"t0,g1,beta,0,10,80,1.1,\n" +
		"t0,g2,alpha,0,10,42,2.0,\n" +
		"t0,g2,beta,0,10,44,2.5,\n"
	tab, stats, err := result.Load(strings.NewReader(data), result.LoadOptions{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if stats.Records != 4 || stats.SkippedInstances != 0 || stats.SkippedAlgorithms != 0 {
		t.Errorf("stats = %+v, want 4 records, nothing skipped", stats)
	}
	if tab.NumSeeds() != 1 || tab.NumInstances() != 2 || tab.NumAlgorithms() != 2 {
		t.Fatalf("dims = %d x %d x %d, want 1 x 2 x 2",
			tab.NumSeeds(), tab.NumInstances(), tab.NumAlgorithms())
	}
	if got := tab.Instances.Name(0); got != "g1" {
		t.Errorf("first instance = %q, want g1", got)
	}
	if got := tab.Algorithms.Name(1); got != "beta" {
		t.Errorf("second algorithm = %q, want beta", got)
	}
	obs := tab.At(0, 0, 0)
	if obs.Value != "85" || obs.Time != "3.2" || obs.Num != 85 {
		t.Errorf("cell (0,g1,alpha) = %+v", obs)
	}
	obs = tab.At(0, 1, 1)
	if obs.Value != "44" || obs.Num != 44 {
		t.Errorf("cell (0,g2,beta) = %+v", obs)
	}
}

func TestLoadHistoryOverride(t *testing.T) {
	const hist = "5:1.0;7:2.0;9:5.0;"
	data := header +
		"t0,g1,alpha,0,2.0,9,5.0," + hist + "\n" +
		"t0,g1,beta,0,10,9,5.0," + hist + "\n" +
		"t0,g1,gamma,0,0.5,9,5.0," + hist + "\n"
	tab, _, err := result.Load(strings.NewReader(data), result.LoadOptions{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if obs := tab.At(0, 0, 0); obs.Value != "7" || obs.Time != "2.0" {
		t.Errorf("limit 2.0: got %+v, want value 7 at time 2.0", obs)
	}
	if obs := tab.At(0, 0, 1); obs.Value != "9" || obs.Time != "5.0" {
		t.Errorf("limit 10: got %+v, want the record columns to stand", obs)
	}
	if obs := tab.At(0, 0, 2); obs.Value != "0" || obs.Time != "0" {
		t.Errorf("limit 0.5: got %+v, want the zero observation", obs)
	}
}

func TestLoadTimeScale(t *testing.T) {
	data := header + "t0,g1,alpha,0,4.0,9,5.0,5:1.0;7:2.0;9:5.0;\n"
	tab, _, err := result.Load(strings.NewReader(data), result.LoadOptions{TimeScale: 0.5})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if obs := tab.At(0, 0, 0); obs.Value != "7" || obs.Time != "2.0" {
		t.Errorf("scaled limit 2.0: got %+v, want value 7 at time 2.0", obs)
	}
}

func TestLoadShortRecordScoresLimit(t *testing.T) {
	data := header + "t0,g1,alpha,0,7.5\n"
	tab, _, err := result.Load(strings.NewReader(data), result.LoadOptions{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if obs := tab.At(0, 0, 0); obs.Value != "7.5" || obs.Num != 7.5 || obs.Time != "" {
		t.Errorf("five-column record: got %+v, want the limit as objective", obs)
	}
}

func TestLoadDuplicateOverwrites(t *testing.T) {
	data := header +
		"t0,g1,alpha,0,10,85,3,\n" +
		"t1,g1,alpha,0,10,90,2,\n"
	tab, _, err := result.Load(strings.NewReader(data), result.LoadOptions{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if obs := tab.At(0, 0, 0); obs.Value != "90" {
		t.Errorf("duplicate key: got %+v, want the later record", obs)
	}
}

func TestLoadRestricted(t *testing.T) {
	data := header +
		"t0,g2,alpha,0,10,42,1,\n" +
		"t0,g1,alpha,0,10,85,1,\n" +
		"t0,g3,alpha,0,10,9,1,\n" +
		"t0,g1,delta,7,10,8,1,\n"
	opts := result.LoadOptions{
		Instances:  []string{"g1", "g2"},
		Algorithms: []string{"alpha"},
	}
	tab, stats, err := result.Load(strings.NewReader(data), opts)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if stats.SkippedInstances != 1 || stats.SkippedAlgorithms != 1 {
		t.Errorf("stats = %+v, want one skip of each kind", stats)
	}
	// declaration order fixes indices regardless of record order
	if tab.Instances.Name(0) != "g1" || tab.Instances.Name(1) != "g2" {
		t.Errorf("instance order = %v, want [g1 g2]", tab.Instances.Names())
	}
	// the seed of a dropped record must not be interned
	if tab.NumSeeds() != 1 || tab.Seeds.Name(0) != "0" {
		t.Errorf("seeds = %v, want just [0]", tab.Seeds.Names())
	}
}

func TestLoadMissingListedNames(t *testing.T) {
	data := header + "t0,g1,alpha,0,10,85,1,\n"
	opts := result.LoadOptions{Instances: []string{"g1", "ghost", "absent"}}
	_, _, err := result.Load(strings.NewReader(data), opts)
	var missing *result.MissingNamesError
	if !errors.As(err, &missing) {
		t.Fatalf("Load error = %v, want MissingNamesError", err)
	}
	if missing.Kind != "instances" {
		t.Errorf("Kind = %q, want instances", missing.Kind)
	}
	if len(missing.Names) != 2 || missing.Names[0] != "absent" || missing.Names[1] != "ghost" {
		t.Errorf("Names = %v, want [absent ghost]", missing.Names)
	}
}

// A record dropped by the algorithm list has already interned its instance,
// so that instance still appears, fully zero-filled.
func TestLoadDroppedAlgorithmKeepsInstance(t *testing.T) {
	data := header +
		"t0,gX,delta,0,10,5,1,\n" +
		"t0,g1,alpha,0,10,85,1,\n"
	opts := result.LoadOptions{Algorithms: []string{"alpha"}}
	tab, stats, err := result.Load(strings.NewReader(data), opts)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if stats.SkippedAlgorithms != 1 {
		t.Errorf("SkippedAlgorithms = %d, want 1", stats.SkippedAlgorithms)
	}
	if tab.NumInstances() != 2 || tab.Instances.Name(0) != "gX" {
		t.Fatalf("instances = %v, want gX first", tab.Instances.Names())
	}
	if obs := tab.At(0, 0, 0); obs.Value != "0" || obs.Time != "0" || obs.Num != 0 {
		t.Errorf("cell (0,gX,alpha) = %+v, want the zero observation", obs)
	}
}

func TestLoadMalformed(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"too few fields", header + "a,b,c\n"},
		{"bad time limit", header + "t,g,a,0,ten,5,1,\n"},
		{"bad objective", header + "t,g,a,0,10,five,1,\n"},
		{"bad history time", header + "t,g,a,0,10,5,1,5:x;9:20;\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := result.Load(strings.NewReader(tt.data), result.LoadOptions{})
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), "line 2") {
				t.Errorf("error %q does not name line 2", err)
			}
		})
	}
}
