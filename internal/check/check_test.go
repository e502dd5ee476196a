package check

import (
	"os"
	"path/filepath"
	"testing"

	"scriptdex/internal/config"
)

func docsConfig(t *testing.T, files map[string]string) *config.Config {
	t.Helper()
	dir := t.TempDir()
	for name, contents := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return &config.Config{Docs: config.DocsConfig{Dir: dir}}
}

func issuesByCode(report *Report, code string) []Issue {
	var out []Issue
	for _, issue := range report.Issues {
		if issue.Code == code {
			out = append(out, issue)
		}
	}
	return out
}

func TestRunCleanDocs(t *testing.T) {
	cfg := docsConfig(t, map[string]string{
		"data_types/common.txt":   "DATE(arg1)\nDescription: a date\n-----------------------\n",
		"effects.log":             "## add_gold\n**Supported Scopes**: country\nGrants gold.\n",
		"triggers.log":            "## has_gold\n**Supported Scopes**: country\nChecks gold.\n",
		"event_targets.log":       "## owner\n**Input Scopes**: province\n",
		"on_actions.log":          "## on_startup\nRuns at start.\n",
		"modifiers.log":           "Tag: army_size, Categories: military\n",
		"custom_localization.log": "## GetName\nName of the scope.\n",
	})
	report, err := Run(cfg)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(report.Issues) != 0 {
		t.Fatalf("expected no issues, got %+v", report.Issues)
	}
	if report.HasErrors() {
		t.Fatal("expected no errors")
	}
	if report.Sources != 7 || report.Records != 7 {
		t.Fatalf("unexpected totals: %+v", report)
	}
}

func TestRunMissingSources(t *testing.T) {
	cfg := docsConfig(t, map[string]string{
		"effects.log": "## add_gold\nGrants gold.\n",
	})
	report, err := Run(cfg)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	missing := issuesByCode(report, codeSourceMissing)
	if len(missing) != 5 {
		t.Fatalf("expected 5 missing sources, got %+v", missing)
	}
	if report.HasErrors() {
		t.Fatal("missing sources are warnings, not errors")
	}
}

func TestRunNamelessHeading(t *testing.T) {
	cfg := docsConfig(t, map[string]string{
		"effects.log": "##   \norphan text\n## kept\nDescription here.\n",
	})
	report, err := Run(cfg)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	nameless := issuesByCode(report, codeNamelessBlock)
	if len(nameless) != 1 {
		t.Fatalf("expected exactly one nameless block issue, got %+v", nameless)
	}
	if nameless[0].Source != "effects.log" {
		t.Fatalf("expected source effects.log, got %q", nameless[0].Source)
	}
}

func TestRunEmptyRecord(t *testing.T) {
	cfg := docsConfig(t, map[string]string{
		"triggers.log": "## bare\n## documented\n**Supported Scopes**: country\n",
	})
	report, err := Run(cfg)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	empty := issuesByCode(report, codeEmptyRecord)
	if len(empty) != 1 || empty[0].Name != "bare" {
		t.Fatalf("unexpected empty record issues: %+v", empty)
	}
}

func TestRunMalformedTagLine(t *testing.T) {
	cfg := docsConfig(t, map[string]string{
		"modifiers.log": "Tag: broken line without categories\nTag: good, Categories: economy\n",
	})
	report, err := Run(cfg)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	malformed := issuesByCode(report, codeMalformedTag)
	if len(malformed) != 1 {
		t.Fatalf("expected one malformed tag issue, got %+v", malformed)
	}
}

func TestRunDuplicateNames(t *testing.T) {
	cfg := docsConfig(t, map[string]string{
		"effects.log": "## add_gold\nFirst.\n## Add_Gold\nSecond.\n",
	})
	report, err := Run(cfg)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	dupes := issuesByCode(report, codeDuplicateName)
	if len(dupes) != 1 {
		t.Fatalf("expected one duplicate issue, got %+v", dupes)
	}
	if !report.HasErrors() {
		t.Fatal("duplicates are errors")
	}
}

func TestRunUnknownLog(t *testing.T) {
	cfg := docsConfig(t, map[string]string{
		"effects.log": "## add_gold\nGrants gold.\n",
		"extras.log":  "## stray\n",
	})
	report, err := Run(cfg)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	unknown := issuesByCode(report, codeUnknownSource)
	if len(unknown) != 1 || unknown[0].Source != "extras.log" {
		t.Fatalf("unexpected unknown source issues: %+v", unknown)
	}
}
