// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package main

import (
	"errors"
	"log/slog"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"confsite/internal/export"
	"confsite/internal/storage"
)

var (
	exportDir string
	publish   bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the site as static files",
	Long: `Render every routed page into a directory, together with the static
assets, sitemap.xml and a 404.html that redirects to the home page.
With --publish the directory is uploaded to the configured S3 bucket.`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportDir, "out", "o", "dist", "output directory")
	exportCmd.Flags().BoolVar(&publish, "publish", false, "upload the export to S3 after writing it")
}

func runExport(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	s, err := loadSite(cfg)
	if err != nil {
		return err
	}
	files, err := export.New(s.catalog, s.table, s.renderer, cfg.BaseURL).Run(ctx, exportDir)
	if err != nil {
		return err
	}
	cmd.Printf("exported %d files to %s\n", len(files), exportDir)

	if !publish {
		return nil
	}
	client, err := storage.New(cfg.S3.Endpoint, cfg.S3.Region, cfg.S3.AccessKey, cfg.S3.SecretKey, cfg.S3.Bucket, cfg.S3.Prefix)
	if err != nil {
		return err
	}
	if client == nil {
		return errors.New("publish: S3 is not configured (set S3_BUCKET, S3_ACCESS_KEY and S3_SECRET_KEY)")
	}
	bar := progressbar.NewOptions(len(files),
		progressbar.OptionSetDescription("Publishing"),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetWriter(cmd.ErrOrStderr()),
	)
	res, err := client.Publish(ctx, exportDir, files, func(string) { _ = bar.Add(1) })
	_ = bar.Finish()
	if err != nil {
		return err
	}
	slog.Info("export published", "bucket", client.Bucket(), "uploaded", res.Uploaded, "deleted", res.Deleted)
	cmd.Printf("published %d files to s3://%s (%d stale removed)\n", res.Uploaded, client.Bucket(), res.Deleted)
	return nil
}
