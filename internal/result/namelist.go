package result

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// ReadNameList reads an allow-list file: one name per line, surrounding
// whitespace stripped, blank lines and '#' comments skipped, duplicates
// dropped keeping the first occurrence. A file with no usable lines yields
// an empty non-nil slice, which still restricts loading to nothing rather
// than lifting the restriction.
func ReadNameList(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening name list: %w", err)
	}
	defer f.Close()

	names := []string{}
	seen := make(map[string]bool)
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if seen[line] {
			continue
		}
		seen[line] = true
		names = append(names, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading name list %s: %w", path, err)
	}
	return names, nil
}
