package store

import (
	"sync/atomic"

	"scriptdex/internal/record"
)

const (
	indexFile   = "index.json"
	allDataFile = "all_data.json"
)

// Snapshot is one immutable generation of the record store. Queries
// take a snapshot once and never see a mix of generations.
type Snapshot struct {
	All   []record.Record
	Index map[string][]record.Record
	Keys  []string
}

func NewSnapshot() *Snapshot {
	return &Snapshot{
		All:   []record.Record{},
		Index: map[string][]record.Record{},
	}
}

// Add appends a record to the flat collection and registers it in the
// index under its lowercased name. Nameless records are dropped.
func (s *Snapshot) Add(r record.Record) {
	key := record.NormalizeName(r.Name)
	if key == "" {
		return
	}
	s.All = append(s.All, r)
	if _, seen := s.Index[key]; !seen {
		s.Keys = append(s.Keys, key)
	}
	s.Index[key] = append(s.Index[key], r)
}

func (s *Snapshot) Len() int {
	return len(s.All)
}

// Handle hands out the current snapshot and lets a rebuild swap in a
// new one without disturbing in-flight readers.
type Handle struct {
	snap atomic.Pointer[Snapshot]
}

func NewHandle() *Handle {
	return &Handle{}
}

// Snapshot returns the installed generation, or nil when no load has
// succeeded yet.
func (h *Handle) Snapshot() *Snapshot {
	return h.snap.Load()
}

func (h *Handle) Swap(s *Snapshot) {
	h.snap.Store(s)
}

// Reload loads dir and installs the result. On failure the previous
// generation stays installed.
func (h *Handle) Reload(dir string) error {
	s, err := Load(dir)
	if err != nil {
		return err
	}
	h.snap.Store(s)
	return nil
}
