package search

import (
	"strings"

	"scriptdex/internal/record"
)

// Criteria is a conjunction of optional filters; a zero field places
// no constraint.
type Criteria struct {
	Name                string
	Kind                string
	Category            string
	Scope               string
	Target              string
	ReturnType          string
	DescriptionContains string
	Limit               int
}

// Find intersects every active filter over one snapshot generation.
// The name filter narrows through fuzzy name search first: a record
// survives only when its exact name appears among the close hits.
func (e *Engine) Find(c Criteria) ([]record.Record, error) {
	snap, err := e.snapshot()
	if err != nil {
		return nil, err
	}
	out := []record.Record{}
	if c.Limit <= 0 {
		return out, nil
	}
	k, ok := parseKindFilter(c.Kind)
	if !ok {
		return out, nil
	}

	var allowed map[string]struct{}
	if strings.TrimSpace(c.Name) != "" {
		allowed = map[string]struct{}{}
		for _, h := range byName(snap, c.Name, true, DefaultNameLimit) {
			allowed[h.Name] = struct{}{}
		}
	}

	desc := strings.ToLower(strings.TrimSpace(c.DescriptionContains))
	for _, r := range snap.All {
		if allowed != nil {
			if _, ok := allowed[r.Name]; !ok {
				continue
			}
		}
		if k != "" && r.Kind != k {
			continue
		}
		if c.Category != "" && !strings.EqualFold(r.Category, c.Category) {
			continue
		}
		if c.Scope != "" && !r.HasScope(c.Scope) {
			continue
		}
		if c.Target != "" && !r.HasTarget(c.Target) {
			continue
		}
		if c.ReturnType != "" && !strings.EqualFold(r.ReturnType, c.ReturnType) {
			continue
		}
		if desc != "" && !strings.Contains(strings.ToLower(r.Description), desc) {
			continue
		}
		out = append(out, r)
		if len(out) == c.Limit {
			break
		}
	}
	return out, nil
}
