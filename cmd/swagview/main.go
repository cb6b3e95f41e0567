package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/goodluckxu-go/swagview"
	"github.com/goodluckxu-go/swagview/internal/config"
	"github.com/goodluckxu-go/swagview/swagger"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "swagview",
		Short:   "Serve a Swagger UI viewer for a static API description",
		Version: config.Version,
		RunE:    run,
	}

	f := rootCmd.Flags()
	f.String("addr", ":8080", "listen address")
	f.String("doc", "swagger.yaml", "API description file served to the viewer")
	f.String("docs-path", "/docs", "path the viewer is mounted at")
	f.String("title", "", "page title, defaults to the document info title")
	f.String("favicon", "", "favicon href")
	f.String("assets-url", swagger.DefaultAssetsURL, "base URL of swagger-ui-dist")
	f.String("asset-dir", "", "local swagger-ui-dist directory, overrides --assets-url")
	f.String("log-level", "debug", "debug, info, warning, error or fatal")

	// Viper keys use underscores so they match the SWAGVIEW_* env var suffix.
	for _, name := range []string{"addr", "doc", "docs-path", "title", "favicon", "assets-url", "asset-dir", "log-level"} {
		_ = viper.BindPFlag(strings.ReplaceAll(name, "-", "_"), f.Lookup(name))
	}
	viper.SetEnvPrefix("SWAGVIEW")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return err
	}
	level, ok := swagview.ParseLogLevel(cfg.LogLevel)
	if !ok {
		return fmt.Errorf("unknown log level %q", cfg.LogLevel)
	}

	srv := swagview.New(cfg.DocsPath)
	srv.SetLogLevel(level)
	srv.Title = cfg.Title
	srv.Favicon = cfg.Favicon
	srv.Assets = swagger.Assets{BaseURL: cfg.AssetsURL}
	if cfg.AssetDir != "" {
		srv.Assets.FS = os.DirFS(cfg.AssetDir)
	}
	srv.SetDocumentFile(cfg.Doc)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Run(cfg.Addr)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return <-errCh
}
