package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Version is set at build time via -ldflags.
var Version = "dev"

// Config holds the runtime configuration of the viewer command.
type Config struct {
	Addr      string
	Doc       string // file served as the viewer document
	DocsPath  string
	Title     string
	Favicon   string
	AssetsURL string
	AssetDir  string // local swagger-ui-dist directory, wins over AssetsURL
	LogLevel  string
}

// Load reads configuration from viper, which merges flag values, env vars,
// and defaults (set up by the cobra command in cmd/swagview).
func Load() Config {
	return Config{
		Addr:      viper.GetString("addr"),
		Doc:       viper.GetString("doc"),
		DocsPath:  viper.GetString("docs_path"),
		Title:     viper.GetString("title"),
		Favicon:   viper.GetString("favicon"),
		AssetsURL: viper.GetString("assets_url"),
		AssetDir:  viper.GetString("asset_dir"),
		LogLevel:  viper.GetString("log_level"),
	}
}

// Validate checks the values the server cannot start without.
func (c Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("addr must not be empty")
	}
	if c.Doc == "" {
		return fmt.Errorf("doc must not be empty")
	}
	if c.AssetDir != "" {
		info, err := os.Stat(c.AssetDir)
		if err != nil {
			return fmt.Errorf("asset dir: %w", err)
		}
		if !info.IsDir() {
			return fmt.Errorf("asset dir %s is not a directory", c.AssetDir)
		}
	}
	return nil
}
