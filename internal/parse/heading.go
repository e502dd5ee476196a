package parse

import (
	"strings"

	"scriptdex/internal/record"
)

// Headings parses a heading-block log where each `## name` line opens a
// record. The kind is decided by the caller from the source file, never
// sniffed from content. Sources without heading markers yield nil.
func Headings(src string, kind record.Kind, category string) []record.Record {
	if !strings.Contains(src, "##") {
		return nil
	}

	var records []record.Record
	var cur *record.Record
	var desc []string

	flush := func() {
		if cur == nil {
			return
		}
		cur.Description = strings.TrimSpace(strings.Join(desc, "\n"))
		cur.Normalize()
		if cur.Name != "" {
			records = append(records, *cur)
		}
		cur = nil
		desc = nil
	}

	for _, line := range strings.Split(src, "\n") {
		if name, ok := HeadingName(line); ok {
			flush()
			cur = &record.Record{Name: name, Kind: kind, Category: category}
			continue
		}
		if cur == nil {
			continue
		}
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
		case strings.HasPrefix(trimmed, "**Supported Scopes**:"):
			cur.SupportedScopes = splitList(strings.TrimPrefix(trimmed, "**Supported Scopes**:"))
		case strings.HasPrefix(trimmed, "**Supported Targets**:"):
			cur.SupportedTargets = splitList(strings.TrimPrefix(trimmed, "**Supported Targets**:"))
		case strings.HasPrefix(trimmed, "**Input Scopes**:"):
			cur.InputScopes = splitList(strings.TrimPrefix(trimmed, "**Input Scopes**:"))
		case strings.HasPrefix(trimmed, "**Output Scopes**:"):
			cur.OutputScopes = splitList(strings.TrimPrefix(trimmed, "**Output Scopes**:"))
		case strings.HasPrefix(trimmed, "**"):
			// other bold labels are metadata, not description
		default:
			desc = append(desc, trimmed)
		}
	}
	flush()
	return records
}

// HeadingName matches `## name` but not deeper heading levels.
func HeadingName(line string) (string, bool) {
	rest, ok := strings.CutPrefix(line, "##")
	if !ok {
		return "", false
	}
	if !strings.HasPrefix(rest, " ") && !strings.HasPrefix(rest, "\t") {
		return "", false
	}
	return strings.TrimSpace(rest), true
}
