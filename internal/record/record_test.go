package record

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"
)

func TestParseKind(t *testing.T) {
	cases := []struct {
		in   string
		want Kind
		ok   bool
	}{
		{"data_type", KindDataType, true},
		{"Effect", KindEffect, true},
		{" TRIGGER ", KindTrigger, true},
		{"modifier", KindModifier, true},
		{"event_target", KindEventTarget, true},
		{"", "", false},
		{"scope", "", false},
	}
	for _, c := range cases {
		got, ok := ParseKind(c.in)
		if ok != c.ok || got != c.want {
			t.Fatalf("ParseKind(%q) = %q, %v; want %q, %v", c.in, got, ok, c.want, c.ok)
		}
	}
}

func TestNormalize(t *testing.T) {
	t.Run("data type gets empty args", func(t *testing.T) {
		r := Record{Name: "DATE", Kind: KindDataType}
		r.Normalize()
		if r.Args == nil {
			t.Fatal("expected non-nil args")
		}
		if len(r.Args) != 0 {
			t.Fatalf("expected empty args, got %v", r.Args)
		}
	})

	t.Run("effect gets empty scopes and targets", func(t *testing.T) {
		r := Record{Name: "add_gold", Kind: KindEffect}
		r.Normalize()
		if r.SupportedScopes == nil || r.SupportedTargets == nil {
			t.Fatal("expected non-nil scope slices")
		}
	})

	t.Run("modifier keeps existing categories", func(t *testing.T) {
		r := Record{Name: "army_size", Kind: KindModifier, Categories: []string{"military"}}
		r.Normalize()
		if !reflect.DeepEqual(r.Categories, []string{"military"}) {
			t.Fatalf("unexpected categories: %v", r.Categories)
		}
	})

	t.Run("event target gets empty scope pairs", func(t *testing.T) {
		r := Record{Name: "owner", Kind: KindEventTarget}
		r.Normalize()
		if r.InputScopes == nil || r.OutputScopes == nil {
			t.Fatal("expected non-nil scope slices")
		}
	})
}

func TestHasScope(t *testing.T) {
	r := Record{Kind: KindEffect, SupportedScopes: []string{"Country", "province"}}
	if !r.HasScope("country") {
		t.Fatal("expected case-insensitive scope match")
	}
	if !r.HasScope("PROVINCE") {
		t.Fatal("expected case-insensitive scope match")
	}
	if r.HasScope("planet") {
		t.Fatal("unexpected scope match")
	}
}

func TestNormalizeName(t *testing.T) {
	if got := NormalizeName("  Add_Gold "); got != "add_gold" {
		t.Fatalf("expected add_gold, got %q", got)
	}
}

func TestRecordWireFormat(t *testing.T) {
	r := Record{Name: "add_gold", Kind: KindEffect, Category: "effects"}
	r.Normalize()
	b, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	s := string(b)
	if !strings.Contains(s, `"type":"effect"`) {
		t.Fatalf("expected kind under wire field type, got %s", s)
	}
	if strings.Contains(s, "supported_scopes") {
		t.Fatalf("expected empty slices omitted, got %s", s)
	}
}

func TestHitWireFormat(t *testing.T) {
	h := Hit{Record: Record{Name: "add_gold", Kind: KindEffect}, Similarity: 0.75}
	b, err := json.Marshal(h)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	s := string(b)
	if !strings.Contains(s, `"name":"add_gold"`) || !strings.Contains(s, `"similarity":0.75`) {
		t.Fatalf("expected flattened record with similarity, got %s", s)
	}
}
