package main

import (
	"log/slog"
	"os"

	"github.com/nfrund/mockcord/internal/config"
	"github.com/nfrund/mockcord/internal/logging"
	"github.com/nfrund/mockcord/internal/profiles"
	"github.com/nfrund/mockcord/internal/server"
	"github.com/spf13/afero"
)

func main() {
	logging.New()

	cfg, err := config.New()
	if err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	locale, err := cfg.Language()
	if err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	opts, err := profiles.Load(afero.NewOsFs(), cfg.OptionsFile, locale)
	if err != nil {
		slog.Error("Failed to load options", "file", cfg.OptionsFile, "error", err)
		os.Exit(1)
	}

	ctx, stop := server.SignalContext()
	defer stop()

	if err := server.New(cfg, opts).Start(ctx); err != nil {
		slog.Error("Server stopped", "error", err)
		os.Exit(1)
	}
}
