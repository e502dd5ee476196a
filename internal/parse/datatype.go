package parse

import (
	"regexp"
	"strings"

	"scriptdex/internal/record"
)

// BlockDelimiter separates the blocks of a data type dump.
const BlockDelimiter = "-----------------------\n"

var declarationPattern = regexp.MustCompile(`^(\w+)\(\s*(.*?)\s*\)`)

// DataTypes parses a delimiter-block data type dump. Every record is
// tagged with the given category.
func DataTypes(src, category string) []record.Record {
	var records []record.Record
	for _, block := range strings.Split(src, BlockDelimiter) {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}
		rec, ok := parseDataTypeBlock(block)
		if !ok {
			continue
		}
		rec.Category = category
		records = append(records, rec)
	}
	return records
}

func parseDataTypeBlock(block string) (record.Record, bool) {
	lines := strings.Split(block, "\n")
	rec := record.Record{Kind: record.KindDataType}

	first := strings.TrimSpace(lines[0])
	if m := declarationPattern.FindStringSubmatch(first); m != nil {
		rec.Name = m[1]
		rec.Args = splitList(m[2])
	} else {
		rec.Name = first
	}
	if rec.Name == "" {
		return record.Record{}, false
	}

	for _, line := range lines[1:] {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "Description:"):
			rec.Description = strings.TrimSpace(strings.TrimPrefix(line, "Description:"))
		case strings.HasPrefix(line, "Definition type:"):
			rec.DefinitionType = strings.TrimSpace(strings.TrimPrefix(line, "Definition type:"))
		case strings.HasPrefix(line, "Return type:"):
			rec.ReturnType = strings.TrimSpace(strings.TrimPrefix(line, "Return type:"))
		}
	}

	rec.Normalize()
	return rec, true
}
