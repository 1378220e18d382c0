package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type DocConfig struct {
	// IndexPath is where scan looks for the search index, relative to the
	// project root unless absolute.
	IndexPath string `mapstructure:"index_path"`
	// Generate controls whether scan runs `cargo doc` when the index is
	// missing.
	Generate bool `mapstructure:"generate"`
}

type ScanConfig struct {
	// Limit caps the number of results printed; 0 means unlimited.
	Limit int `mapstructure:"limit"`
}

type CargoConfig struct {
	Bin string `mapstructure:"bin"`
}

type Config struct {
	Doc   DocConfig   `mapstructure:"doc"`
	Scan  ScanConfig  `mapstructure:"scan"`
	Cargo CargoConfig `mapstructure:"cargo"`
}

func InitializeViper() error {
	viper.SetConfigName("config")
	viper.SetConfigType("toml")

	viper.AddConfigPath(".")
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		viper.AddConfigPath(filepath.Join(xdg, "rdoc"))
	} else if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".config", "rdoc"))
	}

	viper.SetDefault("doc.index_path", filepath.Join("target", "doc", "search-index.js"))
	viper.SetDefault("doc.generate", true)
	viper.SetDefault("scan.limit", 0)
	viper.SetDefault("cargo.bin", "cargo")

	viper.SetEnvPrefix("RDOC")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}
	return nil
}

func Load() (*Config, error) {
	if err := InitializeViper(); err != nil {
		return nil, err
	}

	var config Config
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &config,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create decoder: %w", err)
	}

	if err := decoder.Decode(viper.AllSettings()); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}
