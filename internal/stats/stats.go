// Package stats derives the comparative metrics of a results table: for
// every algorithm, how often it wins, by how much it trails the winner,
// and its average rank across all instance/seed replicates. Objective
// comparisons are exact string comparisons; only the summing and
// deviation stages work in float64.
package stats

import (
	"golang.org/x/sync/errgroup"

	"github.com/benchtab/benchtab/internal/result"
)

// Options controls how the metric vectors are scaled.
type Options struct {
	// Absolute keeps FE, FS, BA, and EBA as raw instance counts instead
	// of fractions of the instance count.
	Absolute bool
}

// Stats holds the shared tables and the eight metric vectors. Tables are
// indexed [instance][algorithm] or [instance], vectors [algorithm].
type Stats struct {
	// SumBySeeds sums each algorithm's objectives across seeds.
	// MaxSumByAlg is the best such sum per instance, MaxSumByOthers the
	// best among the other algorithms.
	SumBySeeds     [][]float64
	MaxSumByAlg    []float64
	MaxSumByOthers [][]float64

	// BestBySeeds and WorstBySeeds select each algorithm's extreme
	// observation across seeds; equal best values prefer the smaller
	// time. BestByAlg is the per-instance best over all algorithms.
	BestBySeeds  [][]result.Observation
	WorstBySeeds [][]result.Observation
	BestByAlg    []result.Observation

	FE  []float64 // instances where the seed-sum ties the best seed-sum
	FS  []float64 // instances where the seed-sum beats every other
	BA  []float64 // instances where the best value ties the overall best
	EBA []float64 // as BA, with the best time tied as well
	WD  []float64 // mean relative shortfall of the worst seed run
	MD  []float64 // mean relative shortfall of the average seed run
	BD  []float64 // mean relative shortfall of the best seed run
	AR  []float64 // average minimum rank over all replicates

	nseeds int
}

// Compute runs the pipeline over tab. The shared tables are built first in
// dependency order; the metric vectors then fan out concurrently, each
// stage reading only shared tables and writing only its own vector.
func Compute(tab *result.Table, opts Options) *Stats {
	ni, na := tab.NumInstances(), tab.NumAlgorithms()
	st := newStats(ni, na)
	st.nseeds = tab.NumSeeds()
	if ni == 0 || na == 0 {
		return st
	}

	st.sumBySeeds(tab)
	st.maxSumByAlg()
	st.maxSumByOthers()
	st.bestBySeeds(tab)
	st.worstBySeeds(tab)
	st.bestByAlg()

	var g errgroup.Group
	g.Go(func() error { st.firstEqual(opts.Absolute); return nil })
	g.Go(func() error { st.firstStrict(opts.Absolute); return nil })
	g.Go(func() error { st.bestAchieved(opts.Absolute); return nil })
	g.Go(func() error { st.earliestBest(opts.Absolute); return nil })
	g.Go(func() error { st.worstDeviation(); return nil })
	g.Go(func() error { st.meanDeviation(); return nil })
	g.Go(func() error { st.bestDeviation(); return nil })
	g.Go(func() error { st.avgRank(tab); return nil })
	_ = g.Wait() // stages never return errors

	return st
}

func newStats(ni, na int) *Stats {
	return &Stats{
		SumBySeeds:     mat(ni, na),
		MaxSumByAlg:    make([]float64, ni),
		MaxSumByOthers: mat(ni, na),
		BestBySeeds:    obsMat(ni, na),
		WorstBySeeds:   obsMat(ni, na),
		BestByAlg:      make([]result.Observation, ni),
		FE:             make([]float64, na),
		FS:             make([]float64, na),
		BA:             make([]float64, na),
		EBA:            make([]float64, na),
		WD:             make([]float64, na),
		MD:             make([]float64, na),
		BD:             make([]float64, na),
		AR:             make([]float64, na),
	}
}

func mat(r, c int) [][]float64 {
	m := make([][]float64, r)
	for i := range m {
		m[i] = make([]float64, c)
	}
	return m
}

func obsMat(r, c int) [][]result.Observation {
	m := make([][]result.Observation, r)
	for i := range m {
		m[i] = make([]result.Observation, c)
	}
	return m
}

func (st *Stats) sumBySeeds(tab *result.Table) {
	for i := range st.SumBySeeds {
		for h := range st.SumBySeeds[i] {
			sum := 0.0
			for s := 0; s < st.nseeds; s++ {
				sum += tab.At(s, i, h).Num
			}
			st.SumBySeeds[i][h] = sum
		}
	}
}

func (st *Stats) maxSumByAlg() {
	for i, row := range st.SumBySeeds {
		m := row[0]
		for _, v := range row[1:] {
			if v > m {
				m = v
			}
		}
		st.MaxSumByAlg[i] = m
	}
}

func (st *Stats) maxSumByOthers() {
	for i, in := range st.SumBySeeds {
		if len(in) < 2 {
			continue // a lone algorithm has no rival; the zero stands
		}
		out := st.MaxSumByOthers[i]
		for h := range out {
			first := 0
			if h == 0 {
				first = 1
			}
			m := in[first]
			for h1, v := range in {
				if h1 != h && v > m {
					m = v
				}
			}
			out[h] = m
		}
	}
}

func (st *Stats) bestBySeeds(tab *result.Table) {
	for i := range st.BestBySeeds {
		for h := range st.BestBySeeds[i] {
			best := tab.At(0, i, h)
			for s := 1; s < st.nseeds; s++ {
				best = better(best, tab.At(s, i, h))
			}
			st.BestBySeeds[i][h] = best
		}
	}
}

func (st *Stats) worstBySeeds(tab *result.Table) {
	for i := range st.WorstBySeeds {
		for h := range st.WorstBySeeds[i] {
			worst := tab.At(0, i, h)
			for s := 1; s < st.nseeds; s++ {
				if obs := tab.At(s, i, h); worst.Value.Cmp(obs.Value) > 0 {
					worst = obs
				}
			}
			st.WorstBySeeds[i][h] = worst
		}
	}
}

func (st *Stats) bestByAlg() {
	for i, row := range st.BestBySeeds {
		best := row[0]
		for _, obs := range row[1:] {
			best = better(best, obs)
		}
		st.BestByAlg[i] = best
	}
}

// better prefers the greater value; among equal values, the smaller time.
// Remaining ties keep the incumbent.
func better(cur, cand result.Observation) result.Observation {
	switch cur.Value.Cmp(cand.Value) {
	case -1:
		return cand
	case 0:
		if cur.Time.Cmp(cand.Time) > 0 {
			return cand
		}
	}
	return cur
}

func (st *Stats) firstEqual(absolute bool) {
	ni := len(st.SumBySeeds)
	for h := range st.FE {
		n := 0.0
		for i := 0; i < ni; i++ {
			// exact float compare: the max is a copy of one of the sums
			if st.SumBySeeds[i][h] == st.MaxSumByAlg[i] {
				n++
			}
		}
		if !absolute {
			n /= float64(ni)
		}
		st.FE[h] = n
	}
}

func (st *Stats) firstStrict(absolute bool) {
	ni := len(st.SumBySeeds)
	for h := range st.FS {
		n := 0.0
		for i := 0; i < ni; i++ {
			if st.SumBySeeds[i][h] > st.MaxSumByOthers[i][h] {
				n++
			}
		}
		if !absolute {
			n /= float64(ni)
		}
		st.FS[h] = n
	}
}

func (st *Stats) bestAchieved(absolute bool) {
	ni := len(st.BestBySeeds)
	for h := range st.BA {
		n := 0.0
		for i := 0; i < ni; i++ {
			if st.BestBySeeds[i][h].Value.Cmp(st.BestByAlg[i].Value) == 0 {
				n++
			}
		}
		if !absolute {
			n /= float64(ni)
		}
		st.BA[h] = n
	}
}

func (st *Stats) earliestBest(absolute bool) {
	ni := len(st.BestBySeeds)
	for h := range st.EBA {
		n := 0.0
		for i := 0; i < ni; i++ {
			if st.BestBySeeds[i][h].Value.Cmp(st.BestByAlg[i].Value) == 0 &&
				st.BestBySeeds[i][h].Time.Cmp(st.BestByAlg[i].Time) == 0 {
				n++
			}
		}
		if !absolute {
			n /= float64(ni)
		}
		st.EBA[h] = n
	}
}

// Deviations skip instances whose best objective is not positive, but the
// final division is always by the full instance count.

func (st *Stats) worstDeviation() {
	ni := len(st.BestByAlg)
	for h := range st.WD {
		sum := 0.0
		for i := 0; i < ni; i++ {
			if den := st.BestByAlg[i].Num; den > 0 {
				sum += st.WorstBySeeds[i][h].Num / den
			}
		}
		st.WD[h] = 1 - sum/float64(ni)
	}
}

func (st *Stats) meanDeviation() {
	ni := len(st.BestByAlg)
	for h := range st.MD {
		sum := 0.0
		for i := 0; i < ni; i++ {
			if den := st.BestByAlg[i].Num; den > 0 {
				sum += st.SumBySeeds[i][h] / float64(st.nseeds) / den
			}
		}
		st.MD[h] = 1 - sum/float64(ni)
	}
}

func (st *Stats) bestDeviation() {
	ni := len(st.BestByAlg)
	for h := range st.BD {
		sum := 0.0
		for i := 0; i < ni; i++ {
			if den := st.BestByAlg[i].Num; den > 0 {
				sum += st.BestBySeeds[i][h].Num / den
			}
		}
		st.BD[h] = 1 - sum/float64(ni)
	}
}

// avgRank gives every replicate rank 1 plus the number of strictly better
// results; ties share the minimum rank.
func (st *Stats) avgRank(tab *result.Table) {
	ni, na := tab.NumInstances(), tab.NumAlgorithms()
	for h := range st.AR {
		total := 0.0
		for i := 0; i < ni; i++ {
			for s := 0; s < st.nseeds; s++ {
				mine := tab.At(s, i, h).Value
				rank := 1
				for h1 := 0; h1 < na; h1++ {
					if tab.At(s, i, h1).Value.Cmp(mine) > 0 {
						rank++
					}
				}
				total += float64(rank)
			}
		}
		st.AR[h] = total / float64(st.nseeds*ni)
	}
}
