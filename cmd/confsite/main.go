// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package main is the entry point for the conference site. It serves the
// site over HTTP, exports it as static files, and manages the page cache.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"confsite/internal/config"
	"confsite/internal/content"
	"confsite/internal/render"
	"confsite/internal/routes"
)

// version is stamped at build time and folded into page cache keys.
var version = "dev"

var (
	configPath string
	cfg        *config.Config
)

var rootCmd = &cobra.Command{
	Use:           "confsite",
	Short:         "Conference website for the International Conference on Strategic Agility and Resilience",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		setupLogger(cfg)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath, "path to the YAML config file (optional)")
	rootCmd.AddCommand(serveCmd, exportCmd, routesCmd, cacheCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}

// setupLogger installs the default logger: text in development, JSON
// otherwise.
func setupLogger(cfg *config.Config) {
	var handler slog.Handler
	if cfg.IsDev() {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	} else {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	}
	slog.SetDefault(slog.New(handler))
}

// site bundles what both the server and the exporter render from.
type site struct {
	catalog  *content.Catalog
	table    *routes.Table
	renderer *render.Renderer
}

func loadSite(cfg *config.Config) (*site, error) {
	catalog, err := content.Load()
	if err != nil {
		return nil, err
	}
	table := routes.Default(cfg.Routes.Extended)
	rn, err := render.New(cfg.IsDev(), table)
	if err != nil {
		return nil, err
	}
	slog.Info("site loaded", "routes", len(table.Routes()), "extended", cfg.Routes.Extended)
	return &site{catalog: catalog, table: table, renderer: rn}, nil
}
