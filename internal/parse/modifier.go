package parse

import (
	"regexp"
	"strings"

	"scriptdex/internal/record"
)

var tagPattern = regexp.MustCompile(`^Tag:\s*([^,]+),\s*Categories:\s*(.*)`)

// IsTagLine reports whether a line parses as a modifier tag line.
func IsTagLine(line string) bool {
	return tagPattern.MatchString(strings.TrimSpace(line))
}

// Modifiers parses a line-tag modifier dump. The `All` category is a
// source-side sentinel and is never stored.
func Modifiers(src, category string) []record.Record {
	var records []record.Record
	for _, line := range strings.Split(src, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "Printing") {
			continue
		}
		m := tagPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		name := strings.TrimSpace(m[1])
		if name == "" {
			continue
		}
		records = append(records, record.Record{
			Name:       name,
			Kind:       record.KindModifier,
			Category:   category,
			Categories: modifierCategories(m[2]),
		})
	}
	return records
}

func modifierCategories(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" || p == "All" {
			continue
		}
		out = append(out, p)
	}
	return out
}
