package mcp

import (
	"context"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"scriptdex/internal/search"
	"scriptdex/internal/store"
)

type Server struct {
	handle  *store.Handle
	engine  *search.Engine
	version string
	mcp     *sdk.Server
}

// NewServer wires the tool and resource surface over a store handle.
// The handle may be empty; every operation then reports that the
// store is not loaded instead of failing the process.
func NewServer(handle *store.Handle, version string) *Server {
	s := &Server{
		handle:  handle,
		engine:  search.New(handle),
		version: version,
		mcp: sdk.NewServer(&sdk.Implementation{
			Name:    "scriptdex",
			Version: version,
		}, nil),
	}
	s.registerTools()
	s.registerResources()
	return s
}

func (s *Server) Run(ctx context.Context, transport sdk.Transport) error {
	return s.mcp.Run(ctx, transport)
}
