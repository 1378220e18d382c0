package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/rdoc-cli/rdoc/internal/cargo"
	"github.com/rdoc-cli/rdoc/internal/config"
)

var showCmd = &cobra.Command{
	Use:   "show <PATH>",
	Short: "Show documentation for a fully qualified path",
	Example: `  rdoc show std::fs::read_to_string
  rdoc show mylib::Widget`,
	Args: cobra.ExactArgs(1),
	Run:  runShow,
}

func runShow(cmd *cobra.Command, args []string) {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	if err := cargo.FindProject("."); err != nil {
		log.Fatalf("%v (run rdoc from a Rust project directory)", err)
	}
	if _, err := os.Stat(cfg.Doc.IndexPath); err != nil {
		log.Fatalf("search index not found at %s (run cargo doc or rdoc scan first)", cfg.Doc.IndexPath)
	}

	// TODO: resolve the fully qualified path against the decoded index and
	// render the item's documentation page.
	fmt.Println("documentation lookup by path is not implemented yet")
	fmt.Printf("    path to look up: %s\n", args[0])
}
