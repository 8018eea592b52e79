// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package main

import (
	"errors"

	"github.com/spf13/cobra"

	"confsite/internal/cache"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the Valkey page cache",
}

var cachePurgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Delete every cached page",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if !cfg.CacheEnabled() {
			return errors.New("cache purge: VALKEY_HOST is not set")
		}
		ctx := cmd.Context()
		client, err := cache.ConnectValkey(ctx, cfg.Valkey.Host, cfg.Valkey.Port, cfg.Valkey.Password, cfg.Valkey.DB)
		if err != nil {
			return err
		}
		defer client.Close()

		n, err := cache.NewPageCache(client, cfg.Valkey.TTL, version, nil).InvalidateAll(ctx)
		if err != nil {
			return err
		}
		cmd.Printf("purged %d cached pages\n", n)
		return nil
	},
}

func init() {
	cacheCmd.AddCommand(cachePurgeCmd)
}
