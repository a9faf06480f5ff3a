package main

import (
	"log"
	"log/slog"
	"os"

	"InfiniteBoard/internal/config"
	"InfiniteBoard/internal/logging"
	"InfiniteBoard/internal/ui"

	flag "github.com/spf13/pflag"
)

func main() {
	configPath := flag.StringP("config", "c", "", "path to a TOML configuration file")
	logLevel := flag.String("log-level", "info", "log level: debug, info, warn or error")
	noGrid := flag.Bool("no-grid", false, "start with the background grid hidden")
	flag.Parse()

	logging.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logging.ParseLevel(*logLevel),
	})))

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if *noGrid {
		cfg.Grid.Show = false
	}

	logging.Logger().Info("starting board", "config", *configPath, "grid", cfg.Grid.Show)
	ui.RunApp(cfg)
}
