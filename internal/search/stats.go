package search

import "scriptdex/internal/record"

type Stats struct {
	TotalEntries       int            `json:"total_entries"`
	Kinds              map[string]int `json:"kinds"`
	DataTypeCategories map[string]int `json:"data_type_categories"`
}

// Stats counts the current snapshot: total records, records per kind,
// and data type records per category.
func (e *Engine) Stats() (*Stats, error) {
	snap, err := e.snapshot()
	if err != nil {
		return nil, err
	}
	s := &Stats{
		Kinds:              map[string]int{},
		DataTypeCategories: map[string]int{},
	}
	for _, k := range record.Kinds() {
		s.Kinds[string(k)] = 0
	}
	s.TotalEntries = len(snap.All)
	for _, r := range snap.All {
		s.Kinds[string(r.Kind)]++
		if r.Kind == record.KindDataType {
			s.DataTypeCategories[r.Category]++
		}
	}
	return s, nil
}
