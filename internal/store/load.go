package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"scriptdex/internal/record"
)

// Load reads the persisted store into a fresh snapshot. Missing files
// are tolerated; a file that exists but cannot be decoded fails the
// whole load, so callers never get a partial snapshot.
func Load(dir string) (*Snapshot, error) {
	snap := NewSnapshot()

	all, err := readRecordFile(filepath.Join(dir, allDataFile))
	switch {
	case errors.Is(err, fs.ErrNotExist):
		slog.Debug("store file missing, skipping", "file", allDataFile)
	case err != nil:
		return nil, fmt.Errorf("loading %s: %w", allDataFile, err)
	default:
		snap.All = all
	}

	index, keys, err := readIndexFile(filepath.Join(dir, indexFile))
	switch {
	case errors.Is(err, fs.ErrNotExist):
		slog.Debug("store file missing, skipping", "file", indexFile)
	case err != nil:
		return nil, fmt.Errorf("loading %s: %w", indexFile, err)
	default:
		snap.Index = index
		snap.Keys = keys
	}

	return snap, nil
}

func readRecordFile(path string) ([]record.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var recs []record.Record
	if err := json.Unmarshal(data, &recs); err != nil {
		return nil, err
	}
	for i := range recs {
		recs[i].Normalize()
	}
	return recs, nil
}

// readIndexFile walks the index object token by token so the file's
// own key order is recovered, not the map iteration order.
func readIndexFile(path string) (map[string][]record.Record, []string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	tok, err := dec.Token()
	if err != nil {
		return nil, nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, nil, fmt.Errorf("index is not a JSON object")
	}

	index := map[string][]record.Record{}
	var keys []string
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, nil, fmt.Errorf("index key is not a string")
		}
		var recs []record.Record
		if err := dec.Decode(&recs); err != nil {
			return nil, nil, err
		}
		for i := range recs {
			recs[i].Normalize()
		}
		if _, seen := index[key]; !seen {
			keys = append(keys, key)
		}
		index[key] = recs
	}
	if _, err := dec.Token(); err != nil {
		return nil, nil, err
	}
	return index, keys, nil
}
