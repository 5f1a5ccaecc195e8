// Package main implements the entry point for the Quill API server, a small
// blogging backend with token-authenticated post management.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/phrazzld/quill-api/internal/config"
	"github.com/phrazzld/quill-api/internal/platform/logger"
)

// cliOptions holds the command line flags.
type cliOptions struct {
	// Migrate runs one goose command (up, down, status, version) and exits.
	Migrate string
}

func parseFlags(args []string) (cliOptions, error) {
	var opts cliOptions
	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.StringVar(&opts.Migrate, "migrate", "", "run a migration command (up, down, status, version) and exit")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	switch opts.Migrate {
	case "", "up", "down", "status", "version":
	default:
		return opts, fmt.Errorf("unknown migration command %q", opts.Migrate)
	}
	return opts, nil
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		slog.Error("server exited with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(args []string) error {
	opts, err := parseFlags(args)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	log.Info("server configuration loaded",
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Server.LogLevel),
		slog.Bool("auto_migrate", cfg.Database.AutoMigrate))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, dialect, err := setupAppDatabase(ctx, cfg, log)
	if err != nil {
		return err
	}

	if opts.Migrate != "" {
		defer func() { _ = db.Close() }()
		return handleMigrations(ctx, db, dialect, opts.Migrate, log)
	}

	if cfg.Database.AutoMigrate {
		if err := handleMigrations(ctx, db, dialect, "up", log); err != nil {
			_ = db.Close()
			return err
		}
	}

	app, err := newApplication(cfg, log, db)
	if err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.Run(ctx)
}
