package config

import (
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func TestLoad_Defaults(t *testing.T) {
	viper.Reset()
	t.Chdir(t.TempDir()) // keep a developer's own config.toml out of the test

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if want := filepath.Join("target", "doc", "search-index.js"); cfg.Doc.IndexPath != want {
		t.Errorf("Doc.IndexPath = %q, want %q", cfg.Doc.IndexPath, want)
	}
	if !cfg.Doc.Generate {
		t.Error("Doc.Generate should default to true")
	}
	if cfg.Scan.Limit != 0 {
		t.Errorf("Scan.Limit = %d, want 0", cfg.Scan.Limit)
	}
	if cfg.Cargo.Bin != "cargo" {
		t.Errorf("Cargo.Bin = %q, want %q", cfg.Cargo.Bin, "cargo")
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	viper.Reset()
	t.Chdir(t.TempDir())
	t.Setenv("RDOC_DOC_GENERATE", "false")
	t.Setenv("RDOC_CARGO_BIN", "/opt/rust/bin/cargo")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Doc.Generate {
		t.Error("Doc.Generate should be overridden to false")
	}
	if cfg.Cargo.Bin != "/opt/rust/bin/cargo" {
		t.Errorf("Cargo.Bin = %q", cfg.Cargo.Bin)
	}
}
