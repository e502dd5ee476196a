package build

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"scriptdex/internal/config"
	"scriptdex/internal/parse"
	"scriptdex/internal/record"
	"scriptdex/internal/store"
)

type Source struct {
	File     string
	Category string
	Kind     record.Kind
}

type CategoryCount struct {
	Category string
	Kind     record.Kind
	Count    int
}

type Result struct {
	Parsed     int
	Skipped    []string
	Categories []CategoryCount
	Snapshot   *store.Snapshot
}

// logSources is the fixed tail of the source table. Order matters: it
// decides index insertion order and therefore fuzzy scan order.
var logSources = []Source{
	{File: "effects.log", Category: "effects", Kind: record.KindEffect},
	{File: "triggers.log", Category: "triggers", Kind: record.KindTrigger},
	{File: "event_targets.log", Category: "event_targets", Kind: record.KindEventTarget},
	{File: "on_actions.log", Category: "on_actions", Kind: record.KindEffect},
	{File: "modifiers.log", Category: "modifiers", Kind: record.KindModifier},
	{File: "custom_localization.log", Category: "custom_localization", Kind: record.KindEffect},
}

// Sources lists the source table for a docs dir: every
// data_types/*.txt in lexical order, then the fixed log files.
func Sources(docsDir string) ([]Source, error) {
	matches, err := filepath.Glob(filepath.Join(docsDir, "data_types", "*.txt"))
	if err != nil {
		return nil, fmt.Errorf("listing data type files: %w", err)
	}
	sort.Strings(matches)

	sources := make([]Source, 0, len(matches)+len(logSources))
	for _, m := range matches {
		stem := strings.TrimSuffix(filepath.Base(m), ".txt")
		sources = append(sources, Source{
			File:     filepath.Join("data_types", filepath.Base(m)),
			Category: stem,
			Kind:     record.KindDataType,
		})
	}
	sources = append(sources, logSources...)
	return sources, nil
}

// Run parses every present source into a fresh snapshot. Missing
// sources are skipped and reported, never fatal.
func Run(cfg *config.Config) (*Result, error) {
	sources, err := Sources(cfg.Docs.Dir)
	if err != nil {
		return nil, err
	}

	result := &Result{Snapshot: store.NewSnapshot()}
	for _, src := range sources {
		data, err := os.ReadFile(filepath.Join(cfg.Docs.Dir, src.File))
		if errors.Is(err, fs.ErrNotExist) {
			result.Skipped = append(result.Skipped, src.File)
			slog.Debug("source missing, skipping", "file", src.File)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", src.File, err)
		}

		recs := Parse(src, string(data))
		for _, r := range recs {
			result.Snapshot.Add(r)
		}
		result.Parsed += len(recs)
		result.Categories = append(result.Categories, CategoryCount{
			Category: src.Category,
			Kind:     src.Kind,
			Count:    len(recs),
		})
	}
	return result, nil
}

// Parse applies the format parser a source's identity selects.
func Parse(src Source, data string) []record.Record {
	switch src.Kind {
	case record.KindDataType:
		return parse.DataTypes(data, src.Category)
	case record.KindModifier:
		return parse.Modifiers(data, src.Category)
	default:
		return parse.Headings(data, src.Kind, src.Category)
	}
}
