package suffix

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Parse reads a suffix reference file: one suffix per line, blank lines
// skipped, lines starting with "//" are comments. Remaining lines are kept
// verbatim (no trimming, no validation of content).
func Parse(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	out := make([]string, 0, 4096)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		if strings.HasPrefix(line, "//") {
			continue
		}
		out = append(out, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Load opens path and builds a Set from its contents.
func Load(path string, fpRate float64) (*Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open suffix file: %w", err)
	}
	defer f.Close()

	entries, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("read suffix file %s: %w", path, err)
	}
	return New(entries, fpRate), nil
}
