package parse

import (
	"reflect"
	"testing"

	"scriptdex/internal/record"
)

func TestDataTypes(t *testing.T) {
	t.Run("declaration with args", func(t *testing.T) {
		src := "DATE(arg1)\nDescription: test\nReturn type: int\n-----------------------\n"
		recs := DataTypes(src, "common")
		if len(recs) != 1 {
			t.Fatalf("expected 1 record, got %d", len(recs))
		}
		r := recs[0]
		if r.Name != "DATE" {
			t.Fatalf("expected name DATE, got %q", r.Name)
		}
		if !reflect.DeepEqual(r.Args, []string{"arg1"}) {
			t.Fatalf("expected args [arg1], got %v", r.Args)
		}
		if r.ReturnType != "int" || r.Description != "test" {
			t.Fatalf("unexpected fields: %+v", r)
		}
		if r.Kind != record.KindDataType || r.Category != "common" {
			t.Fatalf("unexpected kind/category: %+v", r)
		}
	})

	t.Run("declaration without parens", func(t *testing.T) {
		src := "GetPlayer\nDefinition type: Promote\n-----------------------\n"
		recs := DataTypes(src, "script")
		if len(recs) != 1 {
			t.Fatalf("expected 1 record, got %d", len(recs))
		}
		if recs[0].Name != "GetPlayer" {
			t.Fatalf("expected name GetPlayer, got %q", recs[0].Name)
		}
		if recs[0].DefinitionType != "Promote" {
			t.Fatalf("expected definition type Promote, got %q", recs[0].DefinitionType)
		}
		if len(recs[0].Args) != 0 || recs[0].Args == nil {
			t.Fatalf("expected empty non-nil args, got %v", recs[0].Args)
		}
	})

	t.Run("empty arg list", func(t *testing.T) {
		recs := DataTypes("Now()\n-----------------------\n", "common")
		if len(recs) != 1 {
			t.Fatalf("expected 1 record, got %d", len(recs))
		}
		if len(recs[0].Args) != 0 {
			t.Fatalf("expected no args, got %v", recs[0].Args)
		}
	})

	t.Run("multiple blocks", func(t *testing.T) {
		src := "A(x)\n-----------------------\nB(y, z)\nDescription: second\n-----------------------\n"
		recs := DataTypes(src, "gui")
		if len(recs) != 2 {
			t.Fatalf("expected 2 records, got %d", len(recs))
		}
		if recs[0].Name != "A" || recs[1].Name != "B" {
			t.Fatalf("unexpected names: %q, %q", recs[0].Name, recs[1].Name)
		}
		if !reflect.DeepEqual(recs[1].Args, []string{"y", "z"}) {
			t.Fatalf("expected args [y z], got %v", recs[1].Args)
		}
	})

	t.Run("unrecognized lines ignored", func(t *testing.T) {
		src := "DATE(arg1)\nSomething else entirely\nReturn type: int\n"
		recs := DataTypes(src, "common")
		if len(recs) != 1 || recs[0].ReturnType != "int" {
			t.Fatalf("unexpected result: %+v", recs)
		}
	})

	t.Run("empty source", func(t *testing.T) {
		if recs := DataTypes("", "common"); len(recs) != 0 {
			t.Fatalf("expected no records, got %v", recs)
		}
	})
}

func TestHeadings(t *testing.T) {
	t.Run("scopes and description", func(t *testing.T) {
		src := "## add_gold\n**Supported Scopes**: country, province\nGrants gold.\n"
		recs := Headings(src, record.KindEffect, "effects")
		if len(recs) != 1 {
			t.Fatalf("expected 1 record, got %d", len(recs))
		}
		r := recs[0]
		if r.Name != "add_gold" {
			t.Fatalf("expected name add_gold, got %q", r.Name)
		}
		if !reflect.DeepEqual(r.SupportedScopes, []string{"country", "province"}) {
			t.Fatalf("unexpected scopes: %v", r.SupportedScopes)
		}
		if r.Description != "Grants gold." {
			t.Fatalf("unexpected description: %q", r.Description)
		}
		if r.Kind != record.KindEffect {
			t.Fatalf("expected kind effect, got %q", r.Kind)
		}
	})

	t.Run("no heading markers", func(t *testing.T) {
		recs := Headings("just prose\nno markers here\n", record.KindTrigger, "triggers")
		if recs != nil {
			t.Fatalf("expected nil, got %v", recs)
		}
	})

	t.Run("heading at content start", func(t *testing.T) {
		recs := Headings("## first\ntext\n## second\nmore\n", record.KindTrigger, "triggers")
		if len(recs) != 2 {
			t.Fatalf("expected 2 records, got %d", len(recs))
		}
		if recs[0].Name != "first" || recs[1].Name != "second" {
			t.Fatalf("unexpected names: %q, %q", recs[0].Name, recs[1].Name)
		}
	})

	t.Run("supported targets", func(t *testing.T) {
		src := "## any_owned_province\n**Supported Scopes**: country\n**Supported Targets**: province\n"
		recs := Headings(src, record.KindTrigger, "triggers")
		if len(recs) != 1 {
			t.Fatalf("expected 1 record, got %d", len(recs))
		}
		if !reflect.DeepEqual(recs[0].SupportedTargets, []string{"province"}) {
			t.Fatalf("unexpected targets: %v", recs[0].SupportedTargets)
		}
	})

	t.Run("event target scope pair", func(t *testing.T) {
		src := "## owner\n**Input Scopes**: province\n**Output Scopes**: country\nThe owning country.\n"
		recs := Headings(src, record.KindEventTarget, "event_targets")
		if len(recs) != 1 {
			t.Fatalf("expected 1 record, got %d", len(recs))
		}
		r := recs[0]
		if !reflect.DeepEqual(r.InputScopes, []string{"province"}) {
			t.Fatalf("unexpected input scopes: %v", r.InputScopes)
		}
		if !reflect.DeepEqual(r.OutputScopes, []string{"country"}) {
			t.Fatalf("unexpected output scopes: %v", r.OutputScopes)
		}
	})

	t.Run("empty heading dropped", func(t *testing.T) {
		recs := Headings("##   \norphan text\n## kept\n", record.KindEffect, "effects")
		if len(recs) != 1 || recs[0].Name != "kept" {
			t.Fatalf("unexpected records: %v", recs)
		}
	})

	t.Run("deeper headings are content", func(t *testing.T) {
		recs := Headings("## outer\n### inner\n", record.KindEffect, "effects")
		if len(recs) != 1 {
			t.Fatalf("expected 1 record, got %d", len(recs))
		}
		if recs[0].Description != "### inner" {
			t.Fatalf("unexpected description: %q", recs[0].Description)
		}
	})

	t.Run("other bold labels excluded from description", func(t *testing.T) {
		src := "## x\n**Severity**: high\nactual text\n"
		recs := Headings(src, record.KindEffect, "effects")
		if recs[0].Description != "actual text" {
			t.Fatalf("unexpected description: %q", recs[0].Description)
		}
	})

	t.Run("multi line description joined", func(t *testing.T) {
		src := "## x\nline one\n\nline two\n"
		recs := Headings(src, record.KindEffect, "effects")
		if recs[0].Description != "line one\nline two" {
			t.Fatalf("unexpected description: %q", recs[0].Description)
		}
	})

	t.Run("scopes normalized non-nil", func(t *testing.T) {
		recs := Headings("## bare\n", record.KindEffect, "effects")
		if recs[0].SupportedScopes == nil || recs[0].SupportedTargets == nil {
			t.Fatal("expected non-nil scope slices")
		}
	})
}

func TestModifiers(t *testing.T) {
	t.Run("tag line with sentinel", func(t *testing.T) {
		recs := Modifiers("Tag: army_size, Categories: military, All\n", "modifiers")
		if len(recs) != 1 {
			t.Fatalf("expected 1 record, got %d", len(recs))
		}
		r := recs[0]
		if r.Name != "army_size" {
			t.Fatalf("expected name army_size, got %q", r.Name)
		}
		if !reflect.DeepEqual(r.Categories, []string{"military"}) {
			t.Fatalf("expected categories [military], got %v", r.Categories)
		}
		if r.Kind != record.KindModifier {
			t.Fatalf("expected kind modifier, got %q", r.Kind)
		}
	})

	t.Run("banner and blanks skipped", func(t *testing.T) {
		src := "Printing Modifier Definitions:\n\nTag: tax_income, Categories: economy\n"
		recs := Modifiers(src, "modifiers")
		if len(recs) != 1 || recs[0].Name != "tax_income" {
			t.Fatalf("unexpected records: %v", recs)
		}
	})

	t.Run("non matching lines skipped", func(t *testing.T) {
		src := "garbage line\nTag: a, Categories: x\nTag missing categories\n"
		recs := Modifiers(src, "modifiers")
		if len(recs) != 1 || recs[0].Name != "a" {
			t.Fatalf("unexpected records: %v", recs)
		}
	})

	t.Run("only sentinel category", func(t *testing.T) {
		recs := Modifiers("Tag: morale, Categories: All\n", "modifiers")
		if len(recs) != 1 {
			t.Fatalf("expected 1 record, got %d", len(recs))
		}
		if len(recs[0].Categories) != 0 || recs[0].Categories == nil {
			t.Fatalf("expected empty non-nil categories, got %v", recs[0].Categories)
		}
	})
}
