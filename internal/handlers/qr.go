// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/skip2/go-qrcode"

	"confsite/internal/render"
	"confsite/internal/routes"
)

// QR code image sizes in pixels.
const (
	defaultQRSize = 256
	minQRSize     = 128
	maxQRSize     = 1024
)

// QR serves a PNG QR code that encodes the absolute URL of a page, for
// posters and delegate badges. Unrouted ids are not found.
func (p *Public) QR(w http.ResponseWriter, r *http.Request) {
	id := routes.PageID(chi.URLParam(r, "id"))
	path := p.table.PathFor(id)
	if path == routes.RootPath && id != routes.Home {
		http.NotFound(w, r)
		return
	}

	size := defaultQRSize
	if s := r.URL.Query().Get("size"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < minQRSize || n > maxQRSize {
			http.Error(w, "size must be between 128 and 1024", http.StatusBadRequest)
			return
		}
		size = n
	}

	png, err := qrcode.Encode(strings.TrimRight(p.baseURL, "/")+path, qrcode.Medium, size)
	if err != nil {
		slog.Error("encode qr code failed", "error", err, "page", id)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(png)))
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.Write(png)
}

// Sitemap serves sitemap.xml for the routed pages.
func (p *Public) Sitemap(w http.ResponseWriter, r *http.Request) {
	body, err := render.Sitemap(p.table, p.baseURL)
	if err != nil {
		slog.Error("build sitemap failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.Write(body)
}
