package cargo

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// ErrNoProject reports that the directory is not a Cargo project root.
var ErrNoProject = errors.New("no Cargo.toml found")

// FindProject checks that dir is a Cargo project root.
func FindProject(dir string) error {
	_, err := os.Stat(filepath.Join(dir, "Cargo.toml"))
	if err == nil {
		return nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w in %s", ErrNoProject, dir)
	}
	return fmt.Errorf("checking for Cargo.toml: %w", err)
}

// IndexPath returns the location of the search index inside a generated doc
// tree, relative to the project root.
func IndexPath(dir string) string {
	return filepath.Join(dir, "target", "doc", "search-index.js")
}

// GenerateDocs runs `cargo doc` in dir. On failure the captured stderr is
// included in the error.
func GenerateDocs(ctx context.Context, bin, dir string) error {
	if bin == "" {
		bin = "cargo"
	}

	cmd := exec.CommandContext(ctx, bin, "doc")
	cmd.Dir = dir
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return fmt.Errorf("cargo doc failed: %w\n%s", err, msg)
		}
		return fmt.Errorf("cargo doc failed: %w", err)
	}
	return nil
}
