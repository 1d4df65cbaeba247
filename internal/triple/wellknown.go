package triple

import (
	_ "embed"
	"strings"
)

//go:embed wellknown.txt
var wellKnownText string

// WellKnown returns the canonical triples of commonly used targets. Each entry
// parses and formats back to itself.
func WellKnown() []string {
	lines := strings.Split(wellKnownText, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	return out
}
