// Package parse turns the game's documentation dumps into records.
// All parsers are lenient: malformed blocks are skipped, never fatal.
package parse

import "strings"

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}
