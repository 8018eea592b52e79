// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"confsite/internal/config"
)

// execute runs the root command with args and returns its output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("APP_ENV", "testing")
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append(args, "--config", filepath.Join(t.TempDir(), "none.yaml")))
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		resetFlags(t, rootCmd)
	})
	err := rootCmd.Execute()
	return out.String(), err
}

// resetFlags puts every flag of cmd and its subcommands back to its
// default, since cobra binds them to package variables shared by tests.
func resetFlags(t *testing.T, cmd *cobra.Command) {
	t.Helper()
	reset := func(f *pflag.Flag) {
		if err := f.Value.Set(f.DefValue); err != nil {
			t.Errorf("reset --%s: %v", f.Name, err)
		}
		f.Changed = false
	}
	cmd.PersistentFlags().VisitAll(reset)
	cmd.Flags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(t, sub)
	}
}

func TestRoutesCommand(t *testing.T) {
	t.Setenv("APP_ROUTES_EXTENDED", "")
	out, err := execute(t, "routes")
	if err != nil {
		t.Fatalf("routes: %v", err)
	}
	for _, want := range []string{"home", "/registration", "Venue"} {
		if !strings.Contains(out, want) {
			t.Errorf("output lacks %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "/tracks") {
		t.Error("footer-only routes are off by default")
	}
}

func TestExportCommand(t *testing.T) {
	dir := t.TempDir()
	out, err := execute(t, "export", "--out", dir)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if !strings.Contains(out, "exported") {
		t.Errorf("unexpected output: %s", out)
	}
	if _, err := os.Stat(filepath.Join(dir, "index.html")); err != nil {
		t.Errorf("index.html missing: %v", err)
	}
}

func TestExportPublishRequiresS3(t *testing.T) {
	t.Setenv("S3_BUCKET", "")
	_, err := execute(t, "export", "--out", t.TempDir(), "--publish")
	if err == nil || !strings.Contains(err.Error(), "S3") {
		t.Errorf("expected an S3 configuration error, got %v", err)
	}
}

func TestExportAfterPublishFlag(t *testing.T) {
	t.Setenv("S3_BUCKET", "")
	if _, err := execute(t, "export", "--out", t.TempDir(), "--publish"); err == nil {
		t.Fatal("expected an S3 configuration error")
	}
	resetFlags(t, rootCmd)

	if publish {
		t.Fatal("--publish should be back to false")
	}
	if exportDir != "dist" {
		t.Errorf("--out = %q, want dist", exportDir)
	}
	if _, err := execute(t, "export", "--out", t.TempDir()); err != nil {
		t.Errorf("plain export after --publish: %v", err)
	}
}

func TestSetupLogger(t *testing.T) {
	setupLogger(&config.Config{Env: "production"})
	setupLogger(&config.Config{Env: "development"})
}
