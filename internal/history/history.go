// Package history extracts the objective value in effect at a time limit
// from a run's recorded improvement history.
package history

import (
	"fmt"
	"strconv"
	"strings"
)

// Entry is one recorded improvement: the objective value reached and the
// elapsed time at which it was reached, both kept as decimal strings.
type Entry struct {
	Value string
	Time  string
}

// At scans hist, a ";"-separated sequence of value:time pairs ordered by
// increasing time, for the latest entry reached within limit (inclusive).
// The boolean reports whether the entry overrides the record's own
// objective and time columns: when the final entry already satisfies the
// limit the run finished inside the budget and the record stands as
// written, so ok is false. When no entry satisfies the limit the zero
// entry {"0","0"} is returned with ok true, scoring the run as having
// produced nothing by the cutoff. An empty history, or a satisfying entry
// with an empty value, never overrides. A trailing separator is tolerated;
// an entry with a missing separator or an unparseable time is an error.
func At(hist string, limit float64) (Entry, bool, error) {
	tokens := strings.Split(hist, ";")
	for len(tokens) > 0 && tokens[len(tokens)-1] == "" {
		tokens = tokens[:len(tokens)-1]
	}
	if len(tokens) == 0 {
		return Entry{}, false, nil
	}
	for i := len(tokens) - 1; i >= 0; i-- {
		value, elapsed, found := strings.Cut(tokens[i], ":")
		if !found {
			return Entry{}, false, fmt.Errorf("history entry %q: missing ':'", tokens[i])
		}
		at, err := strconv.ParseFloat(elapsed, 64)
		if err != nil {
			return Entry{}, false, fmt.Errorf("history entry %q: bad time: %w", tokens[i], err)
		}
		if at <= limit {
			if i == len(tokens)-1 || value == "" {
				return Entry{}, false, nil
			}
			return Entry{Value: value, Time: elapsed}, true, nil
		}
	}
	return Entry{Value: "0", Time: "0"}, true, nil
}
