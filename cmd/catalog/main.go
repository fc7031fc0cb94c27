package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/osse101/filecatalog/internal/config"
	"github.com/osse101/filecatalog/internal/metrics"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		PrintError("Configuration failed: %v", err)
		os.Exit(1)
	}
	initLogger(cfg)

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		slog.Debug("Environment validation skipped", "error", err)
	}
	for _, w := range warnings {
		slog.Warn("Environment warning", "warning", w)
	}

	env := newEnv(cfg)
	registry := NewRegistry()
	registry.Register(&TransferCommand{env: env, move: true})
	registry.Register(&TransferCommand{env: env})
	registry.Register(&PreviewCommand{env: env})
	registry.Register(&DeleteCommand{env: env})
	registry.Register(&InspectCommand{env: env})
	registry.Register(&SettingsCommand{env: env})

	if len(os.Args) < 2 {
		registry.PrintHelp()
		os.Exit(1)
	}

	cmd, ok := registry.Get(os.Args[1])
	if !ok {
		PrintError("Unknown command: %s", os.Args[1])
		registry.PrintHelp()
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.MetricsAddr != "" {
		go func() {
			if err := metrics.Serve(ctx, cfg.MetricsAddr); err != nil {
				slog.Error("Metrics server failed", "addr", cfg.MetricsAddr, "error", err)
			}
		}()
	}

	if err := cmd.Run(ctx, os.Args[2:]); err != nil {
		if errors.Is(err, errUsage) {
			os.Exit(2)
		}
		PrintError("%s failed: %v", cmd.Name(), err)
		stop()
		os.Exit(1)
	}
}
