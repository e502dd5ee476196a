package mcp

import (
	"context"
	"errors"
	"fmt"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"scriptdex/internal/record"
	"scriptdex/internal/search"
)

type PingInput struct{}

type PingOutput struct {
	Status string `json:"status"`
}

type ServerInfoInput struct{}

type ServerInfoOutput struct {
	Name       string        `json:"name"`
	Version    string        `json:"version"`
	Tools      []string      `json:"tools"`
	Statistics *search.Stats `json:"statistics,omitempty"`
}

type SearchByNameInput struct {
	Name  string `json:"name" jsonschema:"name of the effect, trigger, modifier, event target or data type"`
	Fuzzy *bool  `json:"fuzzy,omitempty" jsonschema:"fall back to close matches when no exact hit exists (default true)"`
	Limit int    `json:"limit,omitempty" jsonschema:"maximum number of results"`
}

type KindSearchInput struct {
	Query string `json:"query" jsonschema:"text to match against names and descriptions"`
	Limit int    `json:"limit,omitempty" jsonschema:"maximum number of results"`
}

type SearchTextInput struct {
	Query string `json:"query" jsonschema:"text to match against names and descriptions"`
	Kind  string `json:"kind,omitempty" jsonschema:"restrict to one record kind"`
	Limit int    `json:"limit,omitempty" jsonschema:"maximum number of results"`
}

type SearchRegexInput struct {
	Pattern string `json:"pattern" jsonschema:"case-insensitive regular expression matched against record names"`
	Limit   int    `json:"limit,omitempty" jsonschema:"maximum number of results"`
}

type SearchKindInput struct {
	Kind  string `json:"kind" jsonschema:"record kind: data_type, effect, trigger, modifier or event_target"`
	Limit int    `json:"limit,omitempty" jsonschema:"maximum number of results"`
}

type SearchScopeInput struct {
	Scope string `json:"scope" jsonschema:"scope name, for example Country or Character"`
	Kind  string `json:"kind,omitempty" jsonschema:"restrict to one record kind"`
	Limit int    `json:"limit,omitempty" jsonschema:"maximum number of results"`
}

type SearchReturnTypeInput struct {
	ReturnType string `json:"return_type" jsonschema:"promote return type, for example bool or CString"`
	Limit      int    `json:"limit,omitempty" jsonschema:"maximum number of results"`
}

type CategoryInput struct {
	Category string `json:"category" jsonschema:"data type category, for example common or gui"`
	Offset   int    `json:"offset,omitempty" jsonschema:"records to skip before the returned page"`
	Limit    int    `json:"limit,omitempty" jsonschema:"maximum page size"`
}

type AdvancedSearchInput struct {
	Name        string `json:"name,omitempty" jsonschema:"record name, exact or close match"`
	Kind        string `json:"kind,omitempty" jsonschema:"restrict to one record kind"`
	Category    string `json:"category,omitempty" jsonschema:"data type category"`
	Scope       string `json:"scope,omitempty" jsonschema:"required supported scope"`
	Target      string `json:"target,omitempty" jsonschema:"required supported target"`
	ReturnType  string `json:"return_type,omitempty" jsonschema:"required promote return type"`
	Description string `json:"description_contains,omitempty" jsonschema:"substring required in the description"`
	Limit       int    `json:"limit,omitempty" jsonschema:"maximum number of results"`
}

type StatisticsInput struct{}

type HitsOutput struct {
	Results []record.Hit `json:"results"`
	Count   int          `json:"count"`
}

type RecordsOutput struct {
	Results []record.Record `json:"results"`
	Count   int             `json:"count"`
}

type PageOutput struct {
	Results  []record.Record `json:"results"`
	Count    int             `json:"count"`
	Returned int             `json:"returned"`
	Offset   int             `json:"offset"`
}

var toolNames = []string{
	"ping",
	"get_server_info",
	"search_by_name",
	"search_effects",
	"search_triggers",
	"search_modifiers",
	"search_event_targets",
	"search_text",
	"search_by_regex",
	"search_by_kind",
	"search_by_scope",
	"search_by_return_type",
	"get_category",
	"advanced_search",
	"get_statistics",
}

func (s *Server) registerTools() {
	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "ping",
		Description: "Check that the server is responding",
	}, s.handlePing)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "get_server_info",
		Description: "Server name, version, available tools and store statistics",
	}, s.handleServerInfo)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "search_by_name",
		Description: "Look up records by name, with fuzzy fallback when no exact match exists",
	}, s.handleSearchByName)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "search_effects",
		Description: "Search effect names and descriptions",
	}, s.kindSearchHandler(record.KindEffect))

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "search_triggers",
		Description: "Search trigger names and descriptions",
	}, s.kindSearchHandler(record.KindTrigger))

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "search_modifiers",
		Description: "Search modifier names and descriptions",
	}, s.kindSearchHandler(record.KindModifier))

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "search_event_targets",
		Description: "Search event target names and descriptions",
	}, s.kindSearchHandler(record.KindEventTarget))

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "search_text",
		Description: "Search names and descriptions across all kinds, or one kind",
	}, s.handleSearchText)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "search_by_regex",
		Description: "Match record names against a regular expression",
	}, s.handleSearchRegex)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "search_by_kind",
		Description: "List records of one kind",
	}, s.handleSearchKind)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "search_by_scope",
		Description: "Find records usable in a given scope",
	}, s.handleSearchScope)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "search_by_return_type",
		Description: "Find data type promotes and functions by return type",
	}, s.handleSearchReturnType)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "get_category",
		Description: "Page through the records of one data type category",
	}, s.handleGetCategory)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "advanced_search",
		Description: "Combine name, kind, category, scope, target, return type and description filters",
	}, s.handleAdvancedSearch)

	sdk.AddTool(s.mcp, &sdk.Tool{
		Name:        "get_statistics",
		Description: "Record counts by kind and by data type category",
	}, s.handleStatistics)
}

func (s *Server) handlePing(ctx context.Context, req *sdk.CallToolRequest, input PingInput) (*sdk.CallToolResult, PingOutput, error) {
	return nil, PingOutput{Status: "ok"}, nil
}

func (s *Server) handleServerInfo(ctx context.Context, req *sdk.CallToolRequest, input ServerInfoInput) (*sdk.CallToolResult, ServerInfoOutput, error) {
	out := ServerInfoOutput{
		Name:    "scriptdex",
		Version: s.version,
		Tools:   toolNames,
	}
	if stats, err := s.engine.Stats(); err == nil {
		out.Statistics = stats
	}
	return nil, out, nil
}

func (s *Server) handleSearchByName(ctx context.Context, req *sdk.CallToolRequest, input SearchByNameInput) (*sdk.CallToolResult, HitsOutput, error) {
	if input.Name == "" {
		return nil, HitsOutput{}, fmt.Errorf("name is required")
	}
	fuzzy := input.Fuzzy == nil || *input.Fuzzy
	limit := input.Limit
	if limit == 0 {
		limit = search.DefaultNameLimit
	}
	hits, err := s.engine.ByName(input.Name, fuzzy, limit)
	if err != nil {
		return nil, HitsOutput{}, err
	}
	return nil, HitsOutput{Results: hits, Count: len(hits)}, nil
}

func (s *Server) kindSearchHandler(kind record.Kind) func(context.Context, *sdk.CallToolRequest, KindSearchInput) (*sdk.CallToolResult, RecordsOutput, error) {
	return func(ctx context.Context, req *sdk.CallToolRequest, input KindSearchInput) (*sdk.CallToolResult, RecordsOutput, error) {
		if input.Query == "" {
			return nil, RecordsOutput{}, fmt.Errorf("query is required")
		}
		limit := input.Limit
		if limit == 0 {
			limit = search.DefaultTextLimit
		}
		records, err := s.engine.ByText(input.Query, string(kind), limit)
		if err != nil {
			return nil, RecordsOutput{}, err
		}
		return nil, RecordsOutput{Results: records, Count: len(records)}, nil
	}
}

func (s *Server) handleSearchText(ctx context.Context, req *sdk.CallToolRequest, input SearchTextInput) (*sdk.CallToolResult, RecordsOutput, error) {
	if input.Query == "" {
		return nil, RecordsOutput{}, fmt.Errorf("query is required")
	}
	limit := input.Limit
	if limit == 0 {
		limit = search.DefaultListLimit
	}
	records, err := s.engine.ByText(input.Query, input.Kind, limit)
	if err != nil {
		return nil, RecordsOutput{}, err
	}
	return nil, RecordsOutput{Results: records, Count: len(records)}, nil
}

func (s *Server) handleSearchRegex(ctx context.Context, req *sdk.CallToolRequest, input SearchRegexInput) (*sdk.CallToolResult, RecordsOutput, error) {
	if input.Pattern == "" {
		return nil, RecordsOutput{}, fmt.Errorf("pattern is required")
	}
	limit := input.Limit
	if limit == 0 {
		limit = search.DefaultRegexLimit
	}
	records, err := s.engine.ByRegex(input.Pattern, limit)
	if errors.Is(err, search.ErrInvalidPattern) {
		return nil, RecordsOutput{Results: []record.Record{}}, nil
	}
	if err != nil {
		return nil, RecordsOutput{}, err
	}
	return nil, RecordsOutput{Results: records, Count: len(records)}, nil
}

func (s *Server) handleSearchKind(ctx context.Context, req *sdk.CallToolRequest, input SearchKindInput) (*sdk.CallToolResult, RecordsOutput, error) {
	if input.Kind == "" {
		return nil, RecordsOutput{}, fmt.Errorf("kind is required")
	}
	limit := input.Limit
	if limit == 0 {
		limit = search.DefaultListLimit
	}
	records, err := s.engine.ByKind(input.Kind, limit)
	if err != nil {
		return nil, RecordsOutput{}, err
	}
	return nil, RecordsOutput{Results: records, Count: len(records)}, nil
}

func (s *Server) handleSearchScope(ctx context.Context, req *sdk.CallToolRequest, input SearchScopeInput) (*sdk.CallToolResult, RecordsOutput, error) {
	if input.Scope == "" {
		return nil, RecordsOutput{}, fmt.Errorf("scope is required")
	}
	limit := input.Limit
	if limit == 0 {
		limit = search.DefaultListLimit
	}
	records, err := s.engine.ByScope(input.Scope, input.Kind, limit)
	if err != nil {
		return nil, RecordsOutput{}, err
	}
	return nil, RecordsOutput{Results: records, Count: len(records)}, nil
}

func (s *Server) handleSearchReturnType(ctx context.Context, req *sdk.CallToolRequest, input SearchReturnTypeInput) (*sdk.CallToolResult, RecordsOutput, error) {
	if input.ReturnType == "" {
		return nil, RecordsOutput{}, fmt.Errorf("return_type is required")
	}
	limit := input.Limit
	if limit == 0 {
		limit = search.DefaultListLimit
	}
	records, err := s.engine.ByReturnType(input.ReturnType, limit)
	if err != nil {
		return nil, RecordsOutput{}, err
	}
	return nil, RecordsOutput{Results: records, Count: len(records)}, nil
}

func (s *Server) handleGetCategory(ctx context.Context, req *sdk.CallToolRequest, input CategoryInput) (*sdk.CallToolResult, PageOutput, error) {
	if input.Category == "" {
		return nil, PageOutput{}, fmt.Errorf("category is required")
	}
	limit := input.Limit
	if limit == 0 {
		limit = search.DefaultPageLimit
	}
	page, err := s.engine.Page(string(record.KindDataType), input.Category, input.Offset, limit)
	if err != nil {
		return nil, PageOutput{}, err
	}
	return nil, PageOutput{
		Results:  page.Records,
		Count:    page.Total,
		Returned: len(page.Records),
		Offset:   input.Offset,
	}, nil
}

func (s *Server) handleAdvancedSearch(ctx context.Context, req *sdk.CallToolRequest, input AdvancedSearchInput) (*sdk.CallToolResult, RecordsOutput, error) {
	limit := input.Limit
	if limit == 0 {
		limit = search.DefaultFindLimit
	}
	records, err := s.engine.Find(search.Criteria{
		Name:                input.Name,
		Kind:                input.Kind,
		Category:            input.Category,
		Scope:               input.Scope,
		Target:              input.Target,
		ReturnType:          input.ReturnType,
		DescriptionContains: input.Description,
		Limit:               limit,
	})
	if err != nil {
		return nil, RecordsOutput{}, err
	}
	return nil, RecordsOutput{Results: records, Count: len(records)}, nil
}

func (s *Server) handleStatistics(ctx context.Context, req *sdk.CallToolRequest, input StatisticsInput) (*sdk.CallToolResult, search.Stats, error) {
	stats, err := s.engine.Stats()
	if err != nil {
		return nil, search.Stats{}, err
	}
	return nil, *stats, nil
}
