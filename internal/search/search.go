package search

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"scriptdex/internal/record"
	"scriptdex/internal/store"
)

const (
	FuzzyThreshold = 0.6

	DefaultNameLimit  = 20
	DefaultTextLimit  = 10
	DefaultListLimit  = 20
	DefaultRegexLimit = 50
	DefaultFindLimit  = 50
	DefaultPageLimit  = 100
)

var (
	ErrNotLoaded      = errors.New("record store not loaded")
	ErrInvalidPattern = errors.New("invalid search pattern")
)

// Engine answers queries over the handle's current snapshot. Every
// operation takes the snapshot once at entry, so a concurrent reload
// can never mix generations inside one query.
type Engine struct {
	handle *store.Handle
}

func New(handle *store.Handle) *Engine {
	return &Engine{handle: handle}
}

func (e *Engine) snapshot() (*store.Snapshot, error) {
	snap := e.handle.Snapshot()
	if snap == nil {
		return nil, ErrNotLoaded
	}
	return snap, nil
}

// ByName looks a name up in the index. An exact hit wins outright;
// otherwise, with fuzzy enabled, close keys are ranked by similarity.
func (e *Engine) ByName(name string, fuzzy bool, limit int) ([]record.Hit, error) {
	snap, err := e.snapshot()
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		return []record.Hit{}, nil
	}
	return byName(snap, name, fuzzy, limit), nil
}

func byName(snap *store.Snapshot, name string, fuzzy bool, limit int) []record.Hit {
	key := record.NormalizeName(name)
	if recs, ok := snap.Index[key]; ok {
		hits := make([]record.Hit, 0, len(recs))
		for _, r := range recs {
			if len(hits) == limit {
				break
			}
			hits = append(hits, record.Hit{Record: r})
		}
		return hits
	}
	if !fuzzy {
		return []record.Hit{}
	}

	hits := []record.Hit{}
	for _, k := range snap.Keys {
		ratio := similarity(key, k)
		if ratio <= FuzzyThreshold {
			continue
		}
		for _, r := range snap.Index[k] {
			hits = append(hits, record.Hit{Record: r, Similarity: ratio})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Similarity > hits[j].Similarity
	})
	if len(hits) > limit {
		hits = hits[:limit]
	}
	return hits
}

// ByText matches query case-insensitively against name or description.
// An empty kind searches every record.
func (e *Engine) ByText(query, kind string, limit int) ([]record.Record, error) {
	snap, err := e.snapshot()
	if err != nil {
		return nil, err
	}
	out := []record.Record{}
	if limit <= 0 {
		return out, nil
	}
	k, ok := parseKindFilter(kind)
	if !ok {
		return out, nil
	}
	q := strings.ToLower(strings.TrimSpace(query))
	for _, r := range snap.All {
		if k != "" && r.Kind != k {
			continue
		}
		if !strings.Contains(strings.ToLower(r.Name), q) &&
			!strings.Contains(strings.ToLower(r.Description), q) {
			continue
		}
		out = append(out, r)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

// ByRegex matches names against a case-insensitive pattern. Compiling
// is the fallible step: a bad pattern yields ErrInvalidPattern, which
// adapters degrade to an empty result.
func (e *Engine) ByRegex(pattern string, limit int) ([]record.Record, error) {
	snap, err := e.snapshot()
	if err != nil {
		return nil, err
	}
	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPattern, err)
	}
	out := []record.Record{}
	if limit <= 0 {
		return out, nil
	}
	for _, r := range snap.All {
		if !re.MatchString(r.Name) {
			continue
		}
		out = append(out, r)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

// ByKind returns records of one kind. Unknown kinds match nothing.
func (e *Engine) ByKind(kind string, limit int) ([]record.Record, error) {
	snap, err := e.snapshot()
	if err != nil {
		return nil, err
	}
	out := []record.Record{}
	if limit <= 0 {
		return out, nil
	}
	k, ok := record.ParseKind(kind)
	if !ok {
		return out, nil
	}
	for _, r := range snap.All {
		if r.Kind != k {
			continue
		}
		out = append(out, r)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

// ByScope returns records whose supported scopes contain scope,
// optionally restricted to one kind.
func (e *Engine) ByScope(scope, kind string, limit int) ([]record.Record, error) {
	snap, err := e.snapshot()
	if err != nil {
		return nil, err
	}
	out := []record.Record{}
	if limit <= 0 {
		return out, nil
	}
	k, ok := parseKindFilter(kind)
	if !ok {
		return out, nil
	}
	for _, r := range snap.All {
		if k != "" && r.Kind != k {
			continue
		}
		if !r.HasScope(scope) {
			continue
		}
		out = append(out, r)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

// ByCategory returns every record of one category; callers page.
func (e *Engine) ByCategory(category string) ([]record.Record, error) {
	snap, err := e.snapshot()
	if err != nil {
		return nil, err
	}
	out := []record.Record{}
	for _, r := range snap.All {
		if strings.EqualFold(r.Category, category) {
			out = append(out, r)
		}
	}
	return out, nil
}

// ByReturnType returns data types with the given return type.
func (e *Engine) ByReturnType(returnType string, limit int) ([]record.Record, error) {
	snap, err := e.snapshot()
	if err != nil {
		return nil, err
	}
	out := []record.Record{}
	if limit <= 0 {
		return out, nil
	}
	for _, r := range snap.All {
		if r.Kind != record.KindDataType {
			continue
		}
		if !strings.EqualFold(r.ReturnType, returnType) {
			continue
		}
		out = append(out, r)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

type PageResult struct {
	Total   int
	Records []record.Record
}

// Page slices the records matching an optional kind and category at an
// explicit offset, and reports the unsliced total alongside.
func (e *Engine) Page(kind, category string, offset, limit int) (*PageResult, error) {
	snap, err := e.snapshot()
	if err != nil {
		return nil, err
	}
	res := &PageResult{Records: []record.Record{}}
	k, ok := parseKindFilter(kind)
	if !ok {
		return res, nil
	}
	if offset < 0 {
		offset = 0
	}
	for _, r := range snap.All {
		if k != "" && r.Kind != k {
			continue
		}
		if category != "" && !strings.EqualFold(r.Category, category) {
			continue
		}
		res.Total++
		if res.Total > offset && limit > 0 && len(res.Records) < limit {
			res.Records = append(res.Records, r)
		}
	}
	return res, nil
}

// parseKindFilter treats empty as no filter and unknown as a filter
// nothing satisfies.
func parseKindFilter(kind string) (record.Kind, bool) {
	if strings.TrimSpace(kind) == "" {
		return "", true
	}
	return record.ParseKind(kind)
}
