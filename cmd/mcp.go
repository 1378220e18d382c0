package cmd

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/rdoc-cli/rdoc/internal/config"
	"github.com/rdoc-cli/rdoc/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run an MCP server exposing rustdoc search over stdio",
	Run:   runMCP,
}

func runMCP(cmd *cobra.Command, args []string) {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	srv := mcp.NewServer(cfg)
	if err := srv.Run(); err != nil {
		log.Fatalf("mcp server error: %v", err)
	}
}
