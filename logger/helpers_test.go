package logger

import (
	"fmt"
	"strings"
)

// parseElapsed extracts the elapsed milliseconds from a "[](<ms>ms) msg" line.
func parseElapsed(line string, ms *float64) (int, error) {
	open := strings.IndexByte(line, '(')
	end := strings.Index(line, "ms)")
	if open < 0 || end < open {
		return 0, fmt.Errorf("no timer in %q", line)
	}
	return fmt.Sscanf(line[open+1:end], "%f", ms)
}
