// Package report renders the statistics table and answers the instance
// extraction queries.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"

	"github.com/benchtab/benchtab/internal/names"
	"github.com/benchtab/benchtab/internal/result"
	"github.com/benchtab/benchtab/internal/stats"
)

// WriteTable writes the metric table as CSV, one row per algorithm, ordered
// by FE descending, then MD ascending, then first-seen order. Percentage
// columns are scaled by 100 with one decimal (two for the deviations);
// absolute mode prints FE, FS, BA, and EBA as whole counts instead. Every
// algorithm must have a display name.
func WriteTable(w io.Writer, tab *result.Table, st *stats.Stats, display *names.Table, absolute bool) error {
	order := make([]int, tab.NumAlgorithms())
	for h := range order {
		order[h] = h
	}
	sort.Slice(order, func(a, b int) bool {
		ha, hb := order[a], order[b]
		if st.FE[ha] != st.FE[hb] {
			return st.FE[ha] > st.FE[hb]
		}
		if st.MD[ha] != st.MD[hb] {
			return st.MD[ha] < st.MD[hb]
		}
		return ha < hb
	})

	cw := csv.NewWriter(w)
	header := []string{"Heuristic", "FE", "FS", "BA", "EBA", "WD", "MD", "BD", "AR"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing table header: %w", err)
	}
	for _, h := range order {
		name := tab.Algorithms.Name(h)
		disp, ok := display.Display(name)
		if !ok {
			return fmt.Errorf("no display name for algorithm %q", name)
		}
		row := []string{disp}
		if absolute {
			row = append(row,
				fmt.Sprintf("%.0f", st.FE[h]),
				fmt.Sprintf("%.0f", st.FS[h]),
				fmt.Sprintf("%.0f", st.BA[h]),
				fmt.Sprintf("%.0f", st.EBA[h]))
		} else {
			row = append(row,
				fmt.Sprintf("%.1f", st.FE[h]*100),
				fmt.Sprintf("%.1f", st.FS[h]*100),
				fmt.Sprintf("%.1f", st.BA[h]*100),
				fmt.Sprintf("%.1f", st.EBA[h]*100))
		}
		row = append(row,
			fmt.Sprintf("%.2f", st.WD[h]*100),
			fmt.Sprintf("%.2f", st.MD[h]*100),
			fmt.Sprintf("%.2f", st.BD[h]*100),
			fmt.Sprintf("%.1f", st.AR[h]))
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing table row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
