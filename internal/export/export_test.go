// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package export

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"confsite/internal/content"
	"confsite/internal/render"
	"confsite/internal/routes"
)

func newTestExporter(t *testing.T, extended bool) (*Exporter, *routes.Table) {
	t.Helper()
	cat, err := content.Load()
	if err != nil {
		t.Fatalf("content.Load: %v", err)
	}
	table := routes.Default(extended)
	rn, err := render.New(false, table)
	if err != nil {
		t.Fatalf("render.New: %v", err)
	}
	return New(cat, table, rn, "https://conference.example.org"), table
}

func TestPageFile(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"/", "index.html"},
		{"/venue", "venue/index.html"},
		{"/call-for-papers", "call-for-papers/index.html"},
		{"venue/", "venue/index.html"},
	}
	for _, tt := range tests {
		if got := PageFile(tt.in); got != tt.want {
			t.Errorf("PageFile(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRun(t *testing.T) {
	e, table := newTestExporter(t, false)
	dir := t.TempDir()

	written, err := e.Run(context.Background(), dir)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	want := []string{"index.html", "venue/index.html", "contact/index.html",
		"static/css/site.css", "static/js/shell.js", "sitemap.xml", "404.html"}
	for _, rel := range want {
		if _, err := os.Stat(filepath.Join(dir, filepath.FromSlash(rel))); err != nil {
			t.Errorf("missing %s: %v", rel, err)
		}
	}
	if len(written) < len(table.Routes())+4 {
		t.Errorf("written = %d files", len(written))
	}
	if _, err := os.Stat(filepath.Join(dir, "tracks", "index.html")); !os.IsNotExist(err) {
		t.Error("unrouted pages must not be exported")
	}

	f, err := os.Open(filepath.Join(dir, "speakers", "index.html"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	doc, err := goquery.NewDocumentFromReader(f)
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(doc.Find(".nav-desktop a.is-active").Text()) != "Speakers" {
		t.Error("exported speakers page should highlight Speakers")
	}
	if _, hidden := doc.Find("#mobile-menu").Attr("hidden"); !hidden {
		t.Error("exported pages render the menu closed")
	}

	notFound, err := os.ReadFile(filepath.Join(dir, "404.html"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(notFound), `content="0; url=/"`) {
		t.Errorf("404.html should redirect home: %s", notFound)
	}
}

func TestRunExtended(t *testing.T) {
	e, _ := newTestExporter(t, true)
	dir := t.TempDir()

	if _, err := e.Run(context.Background(), dir); err != nil {
		t.Fatalf("Run: %v", err)
	}
	for _, rel := range []string{"tracks/index.html", "schedule/index.html", "theme/index.html"} {
		if _, err := os.Stat(filepath.Join(dir, filepath.FromSlash(rel))); err != nil {
			t.Errorf("missing %s: %v", rel, err)
		}
	}
}

func TestRunCancelled(t *testing.T) {
	e, _ := newTestExporter(t, false)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := e.Run(ctx, t.TempDir()); err == nil {
		t.Fatal("expected a context error")
	}
}

func TestRunRemovesStaleOutputs(t *testing.T) {
	dir := t.TempDir()
	ext, _ := newTestExporter(t, true)
	if _, err := ext.Run(context.Background(), dir); err != nil {
		t.Fatalf("extended Run: %v", err)
	}
	keep := filepath.Join(dir, "CNAME")
	if err := os.WriteFile(keep, []byte("conference.example.org\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	base, _ := newTestExporter(t, false)
	files, err := base.Run(context.Background(), dir)
	if err != nil {
		t.Fatalf("default Run: %v", err)
	}

	for _, rel := range []string{"tracks", "schedule", "sponsors"} {
		if _, err := os.Stat(filepath.Join(dir, rel)); !os.IsNotExist(err) {
			t.Errorf("%s should be removed, stat err = %v", rel, err)
		}
	}
	for _, f := range files {
		if strings.HasPrefix(f, "tracks/") || strings.HasPrefix(f, "schedule/") {
			t.Errorf("extended page %s reported as written", f)
		}
	}
	if _, err := os.Stat(filepath.Join(dir, "venue", "index.html")); err != nil {
		t.Errorf("venue page missing: %v", err)
	}
	if _, err := os.Stat(keep); err != nil {
		t.Errorf("unrelated file should survive: %v", err)
	}
}
