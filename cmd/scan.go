package cmd

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/rodaine/table"
	"github.com/spf13/cobra"

	"github.com/rdoc-cli/rdoc/internal/cargo"
	"github.com/rdoc-cli/rdoc/internal/config"
	"github.com/rdoc-cli/rdoc/internal/search"
)

var scanCmd = &cobra.Command{
	Use:   "scan <SYMBOL>",
	Short: "Search for a symbol in generated rustdocs",
	Example: `  rdoc scan Result
  rdoc scan HashMap
  rdoc scan --index path/to/doc/search-index.js Vec`,
	Args: cobra.ExactArgs(1),
	Run:  runScan,
}

var (
	scanIndexPath  string
	scanNoGenerate bool
	scanLimit      int
)

func init() {
	scanCmd.Flags().StringVar(&scanIndexPath, "index", "", "path to a search-index.js file (default: the project's generated docs)")
	scanCmd.Flags().BoolVar(&scanNoGenerate, "no-generate", false, "do not run cargo doc when the index is missing")
	scanCmd.Flags().IntVar(&scanLimit, "limit", 0, "max results (0 = unlimited)")
}

func runScan(cmd *cobra.Command, args []string) {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	indexPath := scanIndexPath
	if indexPath == "" {
		indexPath = ensureProjectDocs(cmd.Context(), cfg)
	}

	data, err := os.ReadFile(indexPath)
	if err != nil {
		log.Fatalf("reading search index: %v", err)
	}

	searcher, err := search.New(string(data))
	if err != nil {
		log.Fatalf("decoding search index: %v", err)
	}

	limit := scanLimit
	if limit == 0 {
		limit = cfg.Scan.Limit
	}

	results := searcher.Match(args[0], limit)
	if len(results) == 0 {
		fmt.Println("no results")
		return
	}
	printResults(results)
}

// ensureProjectDocs verifies the working directory is a Cargo project and
// generates docs if the index does not exist yet. Returns the index path.
func ensureProjectDocs(ctx context.Context, cfg *config.Config) string {
	if err := cargo.FindProject("."); err != nil {
		log.Fatalf("%v (run rdoc from a Rust project directory, or pass --index)", err)
	}

	indexPath := cfg.Doc.IndexPath
	if _, err := os.Stat(indexPath); err == nil {
		return indexPath
	}

	if scanNoGenerate || !cfg.Doc.Generate {
		log.Fatalf("search index not found at %s (run cargo doc first)", indexPath)
	}

	fmt.Println("documentation not found, generating with cargo doc...")
	if err := cargo.GenerateDocs(ctx, cfg.Cargo.Bin, "."); err != nil {
		log.Fatalf("%v", err)
	}
	return indexPath
}

func printResults(results []search.Result) {
	tbl := table.New("KIND", "NAME", "PATH", "EXACT PATH", "CRATE", "NOTES")
	for _, r := range results {
		var notes string
		if r.Deprecated {
			notes = "deprecated"
		}
		if r.MatchedAlias != "" {
			if notes != "" {
				notes += ", "
			}
			notes += "alias: " + r.MatchedAlias
		}

		exact := r.Item.ExactPath
		if exact == r.Item.Path {
			exact = ""
		}
		tbl.AddRow(r.Item.Type.String(), r.Item.Name, r.Item.Path, exact, r.Item.CrateName, notes)
	}
	tbl.Print()
	fmt.Printf("\n%d result(s)\n", len(results))
}
