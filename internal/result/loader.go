package result

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/benchtab/benchtab/internal/decimal"
	"github.com/benchtab/benchtab/internal/history"
)

// LoadOptions restricts and scales what Load accepts.
type LoadOptions struct {
	// Instances and Algorithms, when non-nil, are allow-lists: records
	// naming anything else are counted and dropped, every listed name must
	// appear in the results at least once, and the list order fixes the
	// dense index order. Nil means accept everything in first-seen order.
	Instances  []string
	Algorithms []string

	// TimeScale multiplies each record's time limit before the history
	// lookup. Zero means 1.0.
	TimeScale float64
}

// LoadStats reports what one Load pass consumed.
type LoadStats struct {
	Records           int
	SkippedInstances  int
	SkippedAlgorithms int
}

// MissingNamesError reports allow-listed names that no record mentioned.
type MissingNamesError struct {
	Kind  string // "instances" or "algorithms"
	Names []string
}

func (e *MissingNamesError) Error() string {
	return fmt.Sprintf("%s listed but absent from the results: %s",
		e.Kind, strings.Join(e.Names, ", "))
}

// Load reads a results file: a header line, then one comma-separated record
// per line with columns timestamp, instance, algorithm, seed, time limit,
// objective, elapsed time, and improvement history. Columns beyond the
// history are ignored, blank lines are skipped, and records are keyed by
// (seed, instance, algorithm) with duplicates overwriting. A non-empty
// history is consulted at the scaled time limit and may override the
// objective and time columns. The returned table is dense.
//
// Column side effects are ordered: a record dropped by the instance list
// never touches the algorithm index, and one dropped by the algorithm list
// has already marked its instance as seen. Seeds are only interned for
// records that are kept.
func Load(r io.Reader, opts LoadOptions) (*Table, LoadStats, error) {
	scale := opts.TimeScale
	if scale == 0 {
		scale = 1.0
	}

	tab := &Table{
		Instances:  NewNameIndex(),
		Algorithms: NewNameIndex(),
		Seeds:      NewNameIndex(),
	}
	for _, name := range opts.Instances {
		tab.Instances.Intern(name)
	}
	for _, name := range opts.Algorithms {
		tab.Algorithms.Intern(name)
	}
	restrictInst := opts.Instances != nil
	restrictAlg := opts.Algorithms != nil
	usedInst := make([]bool, tab.Instances.Len())
	usedAlg := make([]bool, tab.Algorithms.Len())

	var stats LoadStats
	sc := bufio.NewScanner(r)
	// improvement histories of long runs can exceed the default token size
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	line := 0
	if sc.Scan() {
		line++ // header
	}
	for sc.Scan() {
		line++
		text := sc.Text()
		if text == "" {
			continue
		}
		stats.Records++
		fields := strings.Split(text, ",")
		if len(fields) < 5 {
			return nil, stats, fmt.Errorf("record at line %d: %d fields, need at least 5", line, len(fields))
		}

		var inst, alg int
		if restrictInst {
			i, ok := tab.Instances.Lookup(fields[1])
			if !ok {
				stats.SkippedInstances++
				continue
			}
			usedInst[i] = true
			inst = i
		} else {
			inst = tab.Instances.Intern(fields[1])
		}
		if restrictAlg {
			a, ok := tab.Algorithms.Lookup(fields[2])
			if !ok {
				stats.SkippedAlgorithms++
				continue
			}
			usedAlg[a] = true
			alg = a
		} else {
			alg = tab.Algorithms.Intern(fields[2])
		}
		seed := tab.Seeds.Intern(fields[3])

		limit, err := strconv.ParseFloat(fields[4], 64)
		if err != nil {
			return nil, stats, fmt.Errorf("record at line %d: bad time limit: %w", line, err)
		}
		limit *= scale

		// The time-limit token doubles as the provisional objective: a
		// record that stops at five columns is scored by its limit.
		value, elapsed := fields[4], ""
		if len(fields) > 5 {
			value = fields[5]
		}
		if len(fields) > 6 {
			elapsed = fields[6]
		}
		if len(fields) > 7 && fields[7] != "" {
			ent, override, err := history.At(fields[7], limit)
			if err != nil {
				return nil, stats, fmt.Errorf("record at line %d: %w", line, err)
			}
			if override {
				value, elapsed = ent.Value, ent.Time
			}
		}

		num, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, stats, fmt.Errorf("record at line %d: bad objective %q: %w", line, value, err)
		}
		tab.set(seed, inst, alg, Observation{
			Value: decimal.Value(value),
			Time:  decimal.Value(elapsed),
			Num:   num,
		})
	}
	if err := sc.Err(); err != nil {
		return nil, stats, fmt.Errorf("reading results: %w", err)
	}

	tab.densify()

	if restrictInst {
		if missing := missingNames(tab.Instances, usedInst); len(missing) > 0 {
			return nil, stats, &MissingNamesError{Kind: "instances", Names: missing}
		}
	}
	if restrictAlg {
		if missing := missingNames(tab.Algorithms, usedAlg); len(missing) > 0 {
			return nil, stats, &MissingNamesError{Kind: "algorithms", Names: missing}
		}
	}
	return tab, stats, nil
}

func missingNames(idx *NameIndex, used []bool) []string {
	var missing []string
	for i, u := range used {
		if !u {
			missing = append(missing, idx.Name(i))
		}
	}
	sort.Strings(missing)
	return missing
}
