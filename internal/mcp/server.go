package mcp

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/rdoc-cli/rdoc/internal/config"
	"github.com/rdoc-cli/rdoc/internal/search"
)

//go:embed instructions.md
var instructions string

type Server struct {
	mcpServer *server.MCPServer
	cfg       *config.Config
}

func NewServer(cfg *config.Config) *Server {
	s := &Server{cfg: cfg}

	mcpServer := server.NewMCPServer(
		"rdoc",
		"0.1.0",
		server.WithInstructions(instructions),
		server.WithToolCapabilities(true),
	)

	s.registerTools(mcpServer)

	s.mcpServer = mcpServer
	return s
}

func (s *Server) registerTools(mcpServer *server.MCPServer) {
	mcpServer.AddTool(
		mcp.NewTool("scan_docs",
			mcp.WithDescription("Search a rustdoc-generated documentation site for symbols by name. Decodes the site's search index on every call; nothing is persisted between calls."),
			mcp.WithString("symbol",
				mcp.Description("Symbol to search for (e.g. \"Result\", \"HashMap\"). Matching is a case-insensitive containment test that ignores underscores."),
				mcp.Required(),
			),
			mcp.WithString("index",
				mcp.Description("Path to a search-index.js file (default: the configured doc.index_path)"),
			),
			mcp.WithNumber("limit",
				mcp.Description("Maximum number of results (default: unlimited)"),
			),
		),
		s.handleScanDocs,
	)
}

func (s *Server) handleScanDocs(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()
	symbol, _ := args["symbol"].(string)
	if symbol == "" {
		return mcp.NewToolResultError("missing required parameter: symbol"), nil
	}

	indexPath := s.cfg.Doc.IndexPath
	if p, ok := args["index"].(string); ok && p != "" {
		indexPath = p
	}
	limit := s.cfg.Scan.Limit
	if l, ok := args["limit"].(float64); ok {
		limit = int(l)
	}

	slog.Info("scan_docs", "symbol", symbol, "index", indexPath, "limit", limit)

	data, err := os.ReadFile(indexPath)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("reading search index: %v", err)), nil
	}

	searcher, err := search.New(string(data))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("decoding search index: %v", err)), nil
	}

	results := searcher.Match(symbol, limit)
	resultJSON, _ := json.MarshalIndent(results, "", "  ")
	return mcp.NewToolResultText(string(resultJSON)), nil
}

func (s *Server) Run() error {
	return server.ServeStdio(s.mcpServer)
}
