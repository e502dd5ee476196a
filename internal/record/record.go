package record

import "strings"

type Kind string

const (
	KindDataType    Kind = "data_type"
	KindEffect      Kind = "effect"
	KindTrigger     Kind = "trigger"
	KindModifier    Kind = "modifier"
	KindEventTarget Kind = "event_target"
)

func Kinds() []Kind {
	return []Kind{KindDataType, KindEffect, KindTrigger, KindModifier, KindEventTarget}
}

func ParseKind(s string) (Kind, bool) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case KindDataType, KindEffect, KindTrigger, KindModifier, KindEventTarget:
		return k, true
	}
	return "", false
}

type Record struct {
	Name        string `json:"name"`
	Kind        Kind   `json:"type"`
	Category    string `json:"category,omitempty"`
	Description string `json:"description,omitempty"`

	DefinitionType string   `json:"definition_type,omitempty"`
	ReturnType     string   `json:"return_type,omitempty"`
	Args           []string `json:"args,omitempty"`

	SupportedScopes  []string `json:"supported_scopes,omitempty"`
	SupportedTargets []string `json:"supported_targets,omitempty"`

	InputScopes  []string `json:"input_scopes,omitempty"`
	OutputScopes []string `json:"output_scopes,omitempty"`

	Categories []string `json:"categories,omitempty"`
}

// Normalize replaces nil slices with empty ones for the fields the
// record's kind owns.
func (r *Record) Normalize() {
	switch r.Kind {
	case KindDataType:
		if r.Args == nil {
			r.Args = []string{}
		}
	case KindEffect, KindTrigger:
		if r.SupportedScopes == nil {
			r.SupportedScopes = []string{}
		}
		if r.SupportedTargets == nil {
			r.SupportedTargets = []string{}
		}
	case KindEventTarget:
		if r.InputScopes == nil {
			r.InputScopes = []string{}
		}
		if r.OutputScopes == nil {
			r.OutputScopes = []string{}
		}
	case KindModifier:
		if r.Categories == nil {
			r.Categories = []string{}
		}
	}
}

func (r Record) HasScope(scope string) bool {
	return containsFold(r.SupportedScopes, scope)
}

func (r Record) HasTarget(target string) bool {
	return containsFold(r.SupportedTargets, target)
}

func (r Record) HasModifierCategory(category string) bool {
	return containsFold(r.Categories, category)
}

// NormalizeName lowercases a record name for index keys and lookups.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func containsFold(list []string, s string) bool {
	for _, v := range list {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}

// Hit is a record returned by fuzzy name search, carrying the
// similarity ratio that admitted it.
type Hit struct {
	Record
	Similarity float64 `json:"similarity,omitempty"`
}
