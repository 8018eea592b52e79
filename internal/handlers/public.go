// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"confsite/internal/cache"
	"confsite/internal/content"
	"confsite/internal/middleware"
	"confsite/internal/render"
	"confsite/internal/routes"
	"confsite/internal/shell"
)

// Public groups the handlers for the conference site. Rendered pages are
// looked up in the Valkey page cache first and stored there on a miss.
type Public struct {
	catalog   *content.Catalog
	table     *routes.Table
	renderer  *render.Renderer
	pageCache *cache.PageCache
	baseURL   string
}

// NewPublic creates the public handler group. pageCache may be nil when
// Valkey is not configured.
func NewPublic(cat *content.Catalog, table *routes.Table, rn *render.Renderer, pageCache *cache.PageCache, baseURL string) *Public {
	return &Public{
		catalog:   cat,
		table:     table,
		renderer:  rn,
		pageCache: pageCache,
		baseURL:   baseURL,
	}
}

// Page serves every GET path. Routed paths render their page; anything
// else is sent to the home page with a redirect, never a 404.
func (p *Public) Page(w http.ResponseWriter, r *http.Request) {
	if !p.table.Known(r.URL.Path) {
		http.Redirect(w, r, routes.RootPath, http.StatusFound)
		return
	}
	p.serve(w, r, p.table.Resolve(r.URL.Path))
}

// GoTo is the navigation intent endpoint: /go/{id} answers with a 303 to
// the page's path, or to "/" when the id is not routed.
func (p *Public) GoTo(w http.ResponseWriter, r *http.Request) {
	id := routes.PageID(chi.URLParam(r, "id"))
	routes.NavigateTo(&httpNavigator{w: w, r: r}, p.table, id)
}

// httpNavigator applies a navigation as a redirect. The browser loads the
// new location from the top, so ScrollToTop is what sends the response.
type httpNavigator struct {
	w    http.ResponseWriter
	r    *http.Request
	path string
}

func (n *httpNavigator) PushPath(path string) { n.path = path }

func (n *httpNavigator) ScrollToTop() {
	http.Redirect(n.w, n.r, n.path, http.StatusSeeOther)
}

// serve renders page id for a GET request.
func (p *Public) serve(w http.ResponseWriter, r *http.Request, id routes.PageID) {
	ctx := r.Context()
	chrome := p.chrome(r, id)
	partial := render.IsPartial(r)

	var key string
	if p.pageCache != nil && cacheable(id) {
		key = p.pageCache.Key(id, cache.Variant{Partial: partial, MenuOpen: chrome.MenuOpen})
		if body, ok := p.pageCache.Get(ctx, key); ok {
			render.Write(w, r, http.StatusOK, body)
			return
		}
	}

	data, err := render.NewPageData(p.catalog, p.table, id, chrome, p.baseURL)
	if err != nil {
		p.fail(w, r, id, err)
		return
	}

	if key == "" {
		if err := p.renderer.Page(w, r, http.StatusOK, id, data); err != nil {
			p.logRenderError(r, id, err)
		}
		return
	}

	body, err := p.renderer.Bytes(id, data, partial)
	if err != nil {
		p.fail(w, r, id, err)
		return
	}
	p.pageCache.Set(ctx, key, body)
	render.Write(w, r, http.StatusOK, body)
}

// chrome snapshots the layout state for one request. The menu opens only
// when the request asks for it, and a desktop-width client hint forces it
// shut again. The menu is torn down when the snapshot is taken, so the
// scroll lock it held is always released.
func (p *Public) chrome(r *http.Request, id routes.PageID) shell.Chrome {
	lock := &shell.BodyLock{}
	menu := shell.NewMenu(lock)
	defer menu.Close()

	if r.URL.Query().Get(shell.MenuParam) == "open" {
		menu.Toggle()
	}
	if width, ok := middleware.ViewportWidthFromCtx(r.Context()); ok {
		menu.Resize(width)
	}
	return shell.NewChrome(p.table, id, p.table.PathFor(id), menu, lock, shell.ScrollState{})
}

// cacheable reports whether a page may be served from the shared cache.
// The contact page embeds a per-visitor CSRF token.
func cacheable(id routes.PageID) bool {
	return id != routes.Contact
}

func (p *Public) fail(w http.ResponseWriter, r *http.Request, id routes.PageID, err error) {
	p.logRenderError(r, id, err)
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}

func (p *Public) logRenderError(r *http.Request, id routes.PageID, err error) {
	slog.Error("render page failed",
		"error", err,
		"page", id,
		"request_id", middleware.RequestIDFromCtx(r.Context()),
	)
}
