package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"photogallery/internal/catalog"
	"photogallery/internal/config"
	"photogallery/internal/download"
	"photogallery/internal/logging"
	"photogallery/internal/trace"
	"photogallery/internal/ui"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "path to a YAML config file (default $"+config.PathEnv+")")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: gallery [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Browse a photo catalog in the terminal. Open an image to zoom,\n")
		fmt.Fprintf(os.Stderr, "step through the catalog and download it.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if err := run(config.Path(configPath)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	log, logFile, err := logging.OpenFile(cfg.LogFile, cfg.Env)
	if err != nil {
		return err
	}
	defer logFile.Close()

	cat, err := loadCatalog(cfg.CatalogPath)
	if err != nil {
		log.Error().Err(err).Str("path", cfg.CatalogPath).Msg("catalog load failed")
		return err
	}

	ctx := context.Background()
	provider, err := trace.NewProvider(ctx, trace.Options{
		Endpoint:    cfg.Trace.Endpoint,
		ServiceName: cfg.Trace.ServiceName,
		Insecure:    !cfg.Trace.TLS,
	})
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := provider.Shutdown(shutdownCtx); err != nil {
			log.Warn().Err(err).Msg("trace shutdown")
		}
	}()

	log.Info().
		Str("env", cfg.Env).
		Int("images", cat.Len()).
		Str("download_dir", cfg.DownloadDir).
		Bool("tracing", provider.Enabled()).
		Msg("gallery starting")

	d := download.NewDownloader(cfg.DownloadDir, cfg.FetchTimeout, provider.Tracer(), log)
	model := ui.NewAppModel(cat, d, log).AsTeaModel()

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if !cfg.DisableMouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	if _, err := tea.NewProgram(model, opts...).Run(); err != nil {
		return fmt.Errorf("ui: %w", err)
	}
	return nil
}

// loadCatalog reads the catalog file, or returns the built-in sample when
// no path is configured.
func loadCatalog(path string) (catalog.Catalog, error) {
	if path == "" {
		return catalog.Sample(), nil
	}
	return catalog.LoadFile(path)
}
