package check

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"scriptdex/internal/build"
	"scriptdex/internal/config"
	"scriptdex/internal/parse"
	"scriptdex/internal/record"
)

type Severity string

const (
	SeverityError Severity = "error"
	SeverityWarn  Severity = "warning"
)

const (
	codeSourceMissing = "source_missing"
	codeUnknownSource = "unknown_source"
	codeNamelessBlock = "nameless_block"
	codeEmptyRecord   = "empty_record"
	codeMalformedTag  = "malformed_tag_line"
	codeDuplicateName = "duplicate_name"
)

type Issue struct {
	Severity Severity
	Code     string
	Message  string
	Source   string
	Name     string
}

type Report struct {
	Issues  []Issue
	Sources int
	Records int
}

func (r *Report) HasErrors() bool {
	for _, issue := range r.Issues {
		if issue.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Run parses the configured sources without writing anything and
// reports the problems the lenient parsers swallow.
func Run(cfg *config.Config) (*Report, error) {
	sources, err := build.Sources(cfg.Docs.Dir)
	if err != nil {
		return nil, err
	}

	report := &Report{Issues: make([]Issue, 0)}
	for _, src := range sources {
		data, err := os.ReadFile(filepath.Join(cfg.Docs.Dir, src.File))
		if errors.Is(err, fs.ErrNotExist) {
			report.Issues = append(report.Issues, Issue{
				Severity: SeverityWarn,
				Code:     codeSourceMissing,
				Message:  "source file not found",
				Source:   src.File,
			})
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", src.File, err)
		}

		report.Sources++
		recs := build.Parse(src, string(data))
		report.Records += len(recs)
		report.Issues = append(report.Issues, checkSource(src, string(data), recs)...)
	}

	report.Issues = append(report.Issues, unknownLogs(cfg.Docs.Dir, sources)...)
	return report, nil
}

func checkSource(src build.Source, data string, recs []record.Record) []Issue {
	var issues []Issue
	switch src.Kind {
	case record.KindDataType:
		issues = append(issues, checkDataTypeBlocks(src, data, recs)...)
	case record.KindModifier:
		issues = append(issues, checkTagLines(src, data)...)
	default:
		issues = append(issues, checkHeadingBlocks(src, data, recs)...)
	}
	issues = append(issues, duplicateNames(src, recs)...)
	return issues
}

func checkDataTypeBlocks(src build.Source, data string, recs []record.Record) []Issue {
	blocks := 0
	for _, b := range strings.Split(data, parse.BlockDelimiter) {
		if strings.TrimSpace(b) != "" {
			blocks++
		}
	}
	var issues []Issue
	for i := len(recs); i < blocks; i++ {
		issues = append(issues, Issue{
			Severity: SeverityWarn,
			Code:     codeNamelessBlock,
			Message:  "block dropped for missing name",
			Source:   src.File,
		})
	}
	return issues
}

func checkHeadingBlocks(src build.Source, data string, recs []record.Record) []Issue {
	var issues []Issue
	for _, line := range strings.Split(data, "\n") {
		name, ok := parse.HeadingName(line)
		if ok && name == "" {
			issues = append(issues, Issue{
				Severity: SeverityWarn,
				Code:     codeNamelessBlock,
				Message:  "heading dropped for missing name",
				Source:   src.File,
			})
		}
	}
	for _, r := range recs {
		if r.Description != "" {
			continue
		}
		if len(r.SupportedScopes) > 0 || len(r.SupportedTargets) > 0 ||
			len(r.InputScopes) > 0 || len(r.OutputScopes) > 0 {
			continue
		}
		issues = append(issues, Issue{
			Severity: SeverityWarn,
			Code:     codeEmptyRecord,
			Message:  "record has neither scopes nor description",
			Source:   src.File,
			Name:     r.Name,
		})
	}
	return issues
}

func checkTagLines(src build.Source, data string) []Issue {
	var issues []Issue
	for _, line := range strings.Split(data, "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "Tag:") {
			continue
		}
		if parse.IsTagLine(line) {
			continue
		}
		issues = append(issues, Issue{
			Severity: SeverityWarn,
			Code:     codeMalformedTag,
			Message:  fmt.Sprintf("tag line does not match the expected format: %s", line),
			Source:   src.File,
		})
	}
	return issues
}

func duplicateNames(src build.Source, recs []record.Record) []Issue {
	counts := map[string]int{}
	for _, r := range recs {
		counts[record.NormalizeName(r.Name)]++
	}
	var issues []Issue
	for _, r := range recs {
		key := record.NormalizeName(r.Name)
		if counts[key] < 2 {
			continue
		}
		issues = append(issues, Issue{
			Severity: SeverityError,
			Code:     codeDuplicateName,
			Message:  fmt.Sprintf("name appears %d times in one source", counts[key]),
			Source:   src.File,
			Name:     r.Name,
		})
		counts[key] = 0
	}
	return issues
}

func unknownLogs(docsDir string, sources []build.Source) []Issue {
	matches, err := filepath.Glob(filepath.Join(docsDir, "*.log"))
	if err != nil {
		return nil
	}
	known := map[string]bool{}
	for _, s := range sources {
		known[s.File] = true
	}
	var issues []Issue
	for _, m := range matches {
		base := filepath.Base(m)
		if known[base] {
			continue
		}
		issues = append(issues, Issue{
			Severity: SeverityWarn,
			Code:     codeUnknownSource,
			Message:  "log file is not in the source table",
			Source:   base,
		})
	}
	return issues
}
