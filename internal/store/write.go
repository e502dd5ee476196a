package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"scriptdex/internal/record"
)

// Write persists a snapshot as the JSON store layout: index.json,
// all_data.json, and one file per category. Each file is written to a
// temp file and renamed so a crashed build never leaves a torn file.
func Write(dir string, snap *Snapshot) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}
	if err := writeJSON(filepath.Join(dir, allDataFile), snap.All); err != nil {
		return fmt.Errorf("writing %s: %w", allDataFile, err)
	}
	ix := orderedIndex{keys: snap.Keys, items: snap.Index}
	if err := writeJSON(filepath.Join(dir, indexFile), ix); err != nil {
		return fmt.Errorf("writing %s: %w", indexFile, err)
	}
	for _, cat := range categoryOrder(snap.All) {
		name := CategoryFileName(cat.name, cat.kind)
		if err := writeJSON(filepath.Join(dir, name), cat.records); err != nil {
			return fmt.Errorf("writing %s: %w", name, err)
		}
	}
	return nil
}

// CategoryFileName maps a category to its store file. Data type
// categories share a prefix so they never collide with log categories.
func CategoryFileName(category string, kind record.Kind) string {
	if kind == record.KindDataType {
		return "data_types_" + category + ".json"
	}
	return category + ".json"
}

type categoryRecords struct {
	name    string
	kind    record.Kind
	records []record.Record
}

func categoryOrder(all []record.Record) []categoryRecords {
	var order []categoryRecords
	pos := map[string]int{}
	for _, r := range all {
		i, seen := pos[r.Category]
		if !seen {
			i = len(order)
			pos[r.Category] = i
			order = append(order, categoryRecords{name: r.Category, kind: r.Kind})
		}
		order[i].records = append(order[i].records, r)
	}
	return order
}

// orderedIndex marshals the name index with its keys in insertion
// order, so the on-disk order survives a round trip.
type orderedIndex struct {
	keys  []string
	items map[string][]record.Record
}

func (ix orderedIndex) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range ix.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(ix.items[key])
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}
