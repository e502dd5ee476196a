package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"scriptdex/internal/record"
	"scriptdex/internal/search"
)

const uriScheme = "scriptdex://"

type resourcePayload struct {
	Type     string          `json:"type"`
	Count    int             `json:"count"`
	Returned int             `json:"returned"`
	Data     []record.Record `json:"data"`
}

func (s *Server) registerResources() {
	kinds := []struct {
		name string
		kind record.Kind
	}{
		{"effects", record.KindEffect},
		{"triggers", record.KindTrigger},
		{"modifiers", record.KindModifier},
		{"event-targets", record.KindEventTarget},
	}
	for _, res := range kinds {
		s.mcp.AddResource(&sdk.Resource{
			URI:         uriScheme + res.name,
			Name:        res.name,
			Description: "First page of " + strings.ReplaceAll(res.name, "-", " "),
			MIMEType:    "application/json",
		}, s.kindResourceHandler(res.kind))
	}

	s.mcp.AddResourceTemplate(&sdk.ResourceTemplate{
		URITemplate: uriScheme + "data-types/{category}",
		Name:        "data-type-category",
		Description: "First page of the data types in one category",
		MIMEType:    "application/json",
	}, s.handleCategoryResource)

	s.mcp.AddResource(&sdk.Resource{
		URI:         uriScheme + "statistics",
		Name:        "statistics",
		Description: "Record counts by kind and by data type category",
		MIMEType:    "application/json",
	}, s.handleStatisticsResource)
}

func (s *Server) kindResourceHandler(kind record.Kind) func(context.Context, *sdk.ReadResourceRequest) (*sdk.ReadResourceResult, error) {
	return func(ctx context.Context, req *sdk.ReadResourceRequest) (*sdk.ReadResourceResult, error) {
		page, err := s.engine.Page(string(kind), "", 0, search.DefaultPageLimit)
		if err != nil {
			return nil, err
		}
		return payloadResult(req.Params.URI, string(kind), page)
	}
}

func (s *Server) handleCategoryResource(ctx context.Context, req *sdk.ReadResourceRequest) (*sdk.ReadResourceResult, error) {
	category := extractCategory(req.Params.URI)
	if category == "" {
		return nil, sdk.ResourceNotFoundError(req.Params.URI)
	}
	page, err := s.engine.Page(string(record.KindDataType), category, 0, search.DefaultPageLimit)
	if err != nil {
		return nil, err
	}
	if page.Total == 0 {
		return nil, sdk.ResourceNotFoundError(req.Params.URI)
	}
	return payloadResult(req.Params.URI, string(record.KindDataType), page)
}

func (s *Server) handleStatisticsResource(ctx context.Context, req *sdk.ReadResourceRequest) (*sdk.ReadResourceResult, error) {
	stats, err := s.engine.Stats()
	if err != nil {
		return nil, err
	}
	data, err := json.MarshalIndent(stats, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling statistics: %w", err)
	}
	return jsonResult(req.Params.URI, string(data)), nil
}

func payloadResult(uri, kind string, page *search.PageResult) (*sdk.ReadResourceResult, error) {
	data, err := json.MarshalIndent(resourcePayload{
		Type:     kind,
		Count:    page.Total,
		Returned: len(page.Records),
		Data:     page.Records,
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling records: %w", err)
	}
	return jsonResult(uri, string(data)), nil
}

func jsonResult(uri, text string) *sdk.ReadResourceResult {
	return &sdk.ReadResourceResult{
		Contents: []*sdk.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     text,
		}},
	}
}

func extractCategory(uri string) string {
	const prefix = uriScheme + "data-types/"
	if !strings.HasPrefix(uri, prefix) {
		return ""
	}
	return strings.TrimPrefix(uri, prefix)
}
