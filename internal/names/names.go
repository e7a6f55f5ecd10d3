// Package names maps the algorithm identifiers used in results files to
// the display names printed in the final table.
package names

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

type Table struct {
	display map[string]string
}

// Load reads a name,display file, one pair per line. Every line must
// contain a comma; the part after the first comma is the display name and
// may itself contain commas. A repeated name is an error.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening names file: %w", err)
	}
	defer f.Close()

	t := &Table{display: make(map[string]string)}
	sc := bufio.NewScanner(f)
	line := 0
	for sc.Scan() {
		line++
		name, display, found := strings.Cut(sc.Text(), ",")
		if !found {
			return nil, fmt.Errorf("names file %s line %d: missing ','", path, line)
		}
		if _, dup := t.display[name]; dup {
			return nil, fmt.Errorf("names file %s line %d: duplicate name %q", path, line, name)
		}
		t.display[name] = display
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading names file: %w", err)
	}
	return t, nil
}

// Display returns the display name for name.
func (t *Table) Display(name string) (string, bool) {
	d, ok := t.display[name]
	return d, ok
}
