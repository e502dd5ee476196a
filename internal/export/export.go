package export

import (
	"context"
	"encoding/json"
	"fmt"

	"scriptdex/internal/record"
)

// Exporter streams the flat collection into a relational sink.
// Re-export truncates and rewrites; the JSON store stays the source of
// truth.
type Exporter interface {
	Export(ctx context.Context, records []record.Record) (int, error)
	Close(ctx context.Context) error
}

// RowValues flattens a record into the column order the sinks share:
// name, name_normalized, type, category, description, definition_type,
// return_type, then the five list columns JSON-encoded.
func RowValues(r record.Record) ([]any, error) {
	lists := make([]any, 0, 5)
	for _, list := range [][]string{
		r.Args, r.SupportedScopes, r.SupportedTargets, r.InputScopes, r.OutputScopes,
	} {
		encoded, err := listJSON(list)
		if err != nil {
			return nil, fmt.Errorf("encoding list column for %s: %w", r.Name, err)
		}
		lists = append(lists, encoded)
	}
	cats, err := listJSON(r.Categories)
	if err != nil {
		return nil, fmt.Errorf("encoding list column for %s: %w", r.Name, err)
	}

	values := []any{
		r.Name,
		record.NormalizeName(r.Name),
		string(r.Kind),
		r.Category,
		r.Description,
		r.DefinitionType,
		r.ReturnType,
	}
	values = append(values, lists...)
	return append(values, cats), nil
}

func listJSON(list []string) (string, error) {
	if list == nil {
		list = []string{}
	}
	data, err := json.Marshal(list)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
