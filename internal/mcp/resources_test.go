package mcp

import (
	"context"
	"encoding/json"
	"testing"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"scriptdex/internal/record"
	"scriptdex/internal/search"
)

func readRequest(uri string) *sdk.ReadResourceRequest {
	return &sdk.ReadResourceRequest{Params: &sdk.ReadResourceParams{URI: uri}}
}

func TestKindResource(t *testing.T) {
	server := testServer(t)
	handler := server.kindResourceHandler(record.KindEffect)

	result, err := handler(context.Background(), readRequest("scriptdex://effects"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Contents) != 1 || result.Contents[0].MIMEType != "application/json" {
		t.Fatalf("unexpected contents: %+v", result.Contents)
	}

	var payload resourcePayload
	if err := json.Unmarshal([]byte(result.Contents[0].Text), &payload); err != nil {
		t.Fatalf("unexpected payload: %v", err)
	}
	if payload.Type != "effect" || payload.Count != 2 || payload.Returned != 2 {
		t.Fatalf("unexpected payload: %+v", payload)
	}
	if len(payload.Data) != 2 || payload.Data[0].Name != "add_gold" {
		t.Fatalf("unexpected payload data: %+v", payload.Data)
	}
}

func TestCategoryResource(t *testing.T) {
	server := testServer(t)

	result, err := server.handleCategoryResource(context.Background(), readRequest("scriptdex://data-types/common"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var payload resourcePayload
	if err := json.Unmarshal([]byte(result.Contents[0].Text), &payload); err != nil {
		t.Fatalf("unexpected payload: %v", err)
	}
	if payload.Type != "data_type" || payload.Count != 2 {
		t.Fatalf("unexpected payload: %+v", payload)
	}
}

func TestCategoryResource_NotFound(t *testing.T) {
	server := testServer(t)

	_, err := server.handleCategoryResource(context.Background(), readRequest("scriptdex://data-types/nope"))
	if err == nil {
		t.Fatalf("expected error for unknown category")
	}
}

func TestStatisticsResource(t *testing.T) {
	server := testServer(t)

	result, err := server.handleStatisticsResource(context.Background(), readRequest("scriptdex://statistics"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var stats search.Stats
	if err := json.Unmarshal([]byte(result.Contents[0].Text), &stats); err != nil {
		t.Fatalf("unexpected payload: %v", err)
	}
	if stats.TotalEntries != 8 || stats.Kinds["modifier"] != 1 {
		t.Fatalf("unexpected statistics: %+v", stats)
	}
}
