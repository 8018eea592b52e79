// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package export writes the whole site as static files, rendered through
// the same templates the live server uses.
package export

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	"confsite/internal/content"
	"confsite/internal/render"
	"confsite/internal/routes"
	"confsite/internal/shell"
	"confsite/web"
)

// notFoundPage sends visitors of unknown paths to the home page, the
// same way the live server redirects them.
const notFoundPage = `<!DOCTYPE html>
<html lang="en"><head><meta charset="utf-8">
<meta http-equiv="refresh" content="0; url=%[1]s">
<link rel="canonical" href="%[1]s">
<title>Redirecting</title></head>
<body><p><a href="%[1]s">Continue to the home page</a></p></body></html>
`

// Exporter renders every routed page into a directory.
type Exporter struct {
	catalog  *content.Catalog
	table    *routes.Table
	renderer *render.Renderer
	baseURL  string
}

// New creates an exporter.
func New(cat *content.Catalog, table *routes.Table, rn *render.Renderer, baseURL string) *Exporter {
	return &Exporter{catalog: cat, table: table, renderer: rn, baseURL: baseURL}
}

// Run writes the site into dir and returns the written files relative to
// dir, in slash form. Outputs of earlier runs are removed first, so pages
// dropped from the route table do not linger in dir.
func (e *Exporter) Run(ctx context.Context, dir string) ([]string, error) {
	if err := clean(dir); err != nil {
		return nil, fmt.Errorf("clean %s: %w", dir, err)
	}

	var written []string
	write := func(rel string, body []byte) error {
		p := filepath.Join(dir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(p, body, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", rel, err)
		}
		written = append(written, rel)
		return nil
	}

	for _, r := range e.table.Routes() {
		if err := ctx.Err(); err != nil {
			return written, err
		}
		body, err := e.page(r.ID)
		if err != nil {
			return written, err
		}
		if err := write(PageFile(r.Path), body); err != nil {
			return written, err
		}
	}

	if err := fs.WalkDir(web.StaticFS, "static", func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		body, err := web.StaticFS.ReadFile(p)
		if err != nil {
			return err
		}
		return write(p, body)
	}); err != nil {
		return written, fmt.Errorf("copy static assets: %w", err)
	}

	sitemap, err := render.Sitemap(e.table, e.baseURL)
	if err != nil {
		return written, fmt.Errorf("build sitemap: %w", err)
	}
	if err := write("sitemap.xml", sitemap); err != nil {
		return written, err
	}
	if err := write("404.html", []byte(fmt.Sprintf(notFoundPage, routes.RootPath))); err != nil {
		return written, err
	}

	slog.Info("site exported", "dir", dir, "files", len(written))
	return written, nil
}

// clean removes every file an export can produce, for any route table.
// Other files in dir are left alone.
func clean(dir string) error {
	for _, r := range routes.All {
		rel := PageFile(r.Path)
		if err := removeFile(filepath.Join(dir, filepath.FromSlash(rel))); err != nil {
			return err
		}
		if parent := path.Dir(rel); parent != "." {
			// Only succeeds when the page directory is now empty.
			_ = os.Remove(filepath.Join(dir, filepath.FromSlash(parent)))
		}
	}
	for _, rel := range []string{"sitemap.xml", "404.html"} {
		if err := removeFile(filepath.Join(dir, rel)); err != nil {
			return err
		}
	}
	return os.RemoveAll(filepath.Join(dir, "static"))
}

func removeFile(p string) error {
	if err := os.Remove(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// page renders one page with the menu closed.
func (e *Exporter) page(id routes.PageID) ([]byte, error) {
	lock := &shell.BodyLock{}
	menu := shell.NewMenu(lock)
	defer menu.Close()

	chrome := shell.NewChrome(e.table, id, e.table.PathFor(id), menu, lock, shell.ScrollState{})
	data, err := render.NewPageData(e.catalog, e.table, id, chrome, e.baseURL)
	if err != nil {
		return nil, err
	}
	return e.renderer.Bytes(id, data, false)
}

// PageFile maps a route path to the file a static host serves for it.
// Example: "/" -> "index.html", "/venue" -> "venue/index.html"
func PageFile(p string) string {
	p = strings.Trim(path.Clean("/"+p), "/")
	if p == "" {
		return "index.html"
	}
	return p + "/index.html"
}
