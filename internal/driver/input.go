package driver

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ReadTriples reads one target triple per line. Blank lines are skipped and
// everything after a '#' is a comment.
func ReadTriples(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		if strings.ContainsAny(text, " \t") {
			return nil, fmt.Errorf("line %d: expected one triple, got %q", line, text)
		}
		out = append(out, text)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read triples: %w", err)
	}
	return out, nil
}
