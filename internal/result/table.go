// Package result loads raw benchmark records into a dense
// seed x instance x algorithm table of observations.
package result

import (
	"slices"

	"github.com/benchtab/benchtab/internal/decimal"
)

// Observation is one cell of the table: the objective value and elapsed
// time exactly as recorded, plus the objective parsed as float64 for the
// summing stages.
type Observation struct {
	Value decimal.Value
	Time  decimal.Value
	Num   float64
}

// zeroObs fills cells no record ever wrote: an algorithm that never
// reported on an instance is scored as objective 0 there.
var zeroObs = Observation{Value: "0", Time: "0"}

// NameIndex maps names to dense indices and back, in first-seen order.
type NameIndex struct {
	index map[string]int
	names []string
}

func NewNameIndex() *NameIndex {
	return &NameIndex{index: make(map[string]int)}
}

// Intern returns the index for name, adding it if unseen.
func (x *NameIndex) Intern(name string) int {
	if i, ok := x.index[name]; ok {
		return i
	}
	i := len(x.names)
	x.index[name] = i
	x.names = append(x.names, name)
	return i
}

// Lookup returns the index for name without adding it.
func (x *NameIndex) Lookup(name string) (int, bool) {
	i, ok := x.index[name]
	return i, ok
}

func (x *NameIndex) Name(i int) string { return x.names[i] }

func (x *NameIndex) Names() []string { return slices.Clone(x.names) }

func (x *NameIndex) Len() int { return len(x.names) }

// Table is the dense results cube. Dimensions are fixed once Load returns.
type Table struct {
	Instances  *NameIndex
	Algorithms *NameIndex
	Seeds      *NameIndex

	cells [][][]Observation // [seed][instance][algorithm]
}

// At returns the observation for (seed, instance, algorithm).
func (t *Table) At(seed, inst, alg int) Observation {
	return t.cells[seed][inst][alg]
}

func (t *Table) NumSeeds() int      { return t.Seeds.Len() }
func (t *Table) NumInstances() int  { return t.Instances.Len() }
func (t *Table) NumAlgorithms() int { return t.Algorithms.Len() }

// set grows the cube as needed and writes one cell. Repeated keys
// overwrite the previous entry.
func (t *Table) set(seed, inst, alg int, obs Observation) {
	for len(t.cells) <= seed {
		t.cells = append(t.cells, nil)
	}
	for len(t.cells[seed]) <= inst {
		t.cells[seed] = append(t.cells[seed], nil)
	}
	for len(t.cells[seed][inst]) <= alg {
		t.cells[seed][inst] = append(t.cells[seed][inst], Observation{})
	}
	t.cells[seed][inst][alg] = obs
}

// densify pads every row out to the final dimensions and replaces cells no
// record wrote with the zero observation, so the statistics stages never
// see a ragged or empty cell.
func (t *Table) densify() {
	ni, na := t.Instances.Len(), t.Algorithms.Len()
	for len(t.cells) < t.Seeds.Len() {
		t.cells = append(t.cells, nil)
	}
	for s := range t.cells {
		for len(t.cells[s]) < ni {
			t.cells[s] = append(t.cells[s], nil)
		}
		for i := range t.cells[s] {
			for len(t.cells[s][i]) < na {
				t.cells[s][i] = append(t.cells[s][i], Observation{})
			}
			for a, obs := range t.cells[s][i] {
				if obs.Value == "" {
					t.cells[s][i][a] = zeroObs
				}
			}
		}
	}
}
