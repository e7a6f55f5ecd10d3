package report

import (
	"bufio"
	"fmt"
	"io"

	"github.com/benchtab/benchtab/internal/decimal"
	"github.com/benchtab/benchtab/internal/result"
	"github.com/benchtab/benchtab/internal/stats"
)

// Extraction counts what an extraction pass kept and dropped.
type Extraction struct {
	Accepted int
	Rejected int
}

// Criterion selects the champion test, mirroring the four win metrics.
type Criterion int

const (
	SumEqual     Criterion = iota // seed-sum ties the best seed-sum
	SumStrict                     // seed-sum beats every other algorithm's
	BestEqual                     // best value ties the overall best
	BestEarliest                  // best value and its time tie the overall best
)

// UnknownAlgorithmError reports a champion query for an algorithm that is
// absent from the results.
type UnknownAlgorithmError struct {
	Name string
}

func (e *UnknownAlgorithmError) Error() string {
	return fmt.Sprintf("algorithm %q does not appear in the results", e.Name)
}

// ExtractDifficult writes, one per line in first-seen order, the names of
// the instances whose best value is found by at most `level` algorithms
// across every seed. A negative level means half the algorithm count. The
// remaining instances are counted as rejected: too many algorithms nail
// them for the instance to discriminate.
func ExtractDifficult(w io.Writer, tab *result.Table, level int) (Extraction, error) {
	na, ns := tab.NumAlgorithms(), tab.NumSeeds()
	threshold := float64(na) / 2
	if level >= 0 {
		threshold = float64(level)
	}

	var ext Extraction
	bw := bufio.NewWriter(w)
	for i := 0; i < tab.NumInstances(); i++ {
		// One forward pass per instance: the running best only ever
		// rises, so an algorithm fully scanned before an improvement
		// genuinely missed the final best, and resetting the count on
		// every improvement is safe.
		count := 0
		best := decimal.Value("0")
		for h := 0; h < na; h++ {
			streak := 0
			for s := 0; s < ns; s++ {
				v := tab.At(s, i, h).Value
				switch best.Cmp(v) {
				case 0:
					streak++
				case -1:
					count = 0
					streak = 1
					best = v
				}
			}
			if streak == ns {
				count++
			}
		}
		if float64(count) > threshold {
			ext.Rejected++
			continue
		}
		if _, err := fmt.Fprintln(bw, tab.Instances.Name(i)); err != nil {
			return ext, fmt.Errorf("writing instance name: %w", err)
		}
		ext.Accepted++
	}
	return ext, bw.Flush()
}

// ExtractChampions writes, one per line in first-seen order, the instances
// on which the named algorithm wins under crit.
func ExtractChampions(w io.Writer, tab *result.Table, st *stats.Stats, algorithm string, crit Criterion) (Extraction, error) {
	if crit < SumEqual || crit > BestEarliest {
		return Extraction{}, fmt.Errorf("champion criterion %d out of range", crit)
	}
	h, ok := tab.Algorithms.Lookup(algorithm)
	if !ok {
		return Extraction{}, &UnknownAlgorithmError{Name: algorithm}
	}

	var ext Extraction
	bw := bufio.NewWriter(w)
	for i := 0; i < tab.NumInstances(); i++ {
		var won bool
		switch crit {
		case SumEqual:
			won = st.SumBySeeds[i][h] == st.MaxSumByAlg[i]
		case SumStrict:
			won = st.SumBySeeds[i][h] > st.MaxSumByOthers[i][h]
		case BestEqual:
			won = st.BestBySeeds[i][h].Value.Cmp(st.BestByAlg[i].Value) == 0
		case BestEarliest:
			won = st.BestBySeeds[i][h].Value.Cmp(st.BestByAlg[i].Value) == 0 &&
				st.BestBySeeds[i][h].Time.Cmp(st.BestByAlg[i].Time) == 0
		}
		if !won {
			ext.Rejected++
			continue
		}
		if _, err := fmt.Fprintln(bw, tab.Instances.Name(i)); err != nil {
			return ext, fmt.Errorf("writing instance name: %w", err)
		}
		ext.Accepted++
	}
	return ext, bw.Flush()
}
