// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router sets up the HTTP routes and middleware chain for the
// conference site.
package router

import (
	"io/fs"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"confsite/internal/handlers"
	"confsite/internal/middleware"
	"confsite/web"
)

// Options carries the settings the middleware chain needs.
type Options struct {
	// BaseURL is the public origin, used for absolute links in robots.txt.
	BaseURL string
	// SecureCookies marks the CSRF cookie Secure.
	SecureCookies bool
	// ContactLimiter throttles contact form submissions per client.
	ContactLimiter *middleware.RateLimiter
}

// New creates the chi router with every route and middleware wired up.
func New(public *handlers.Public, opts Options) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.SecureHeaders)
	r.Use(chimw.GetHead)

	// Health check and machine-readable endpoints: no CSRF cookie, and
	// readable from other origins (poster and badge tooling).
	r.Group(func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "HEAD", "OPTIONS"},
			MaxAge:         300,
		}))
		r.Get("/health", healthHandler)
		r.Get("/sitemap.xml", public.Sitemap)
		r.Get("/robots.txt", robotsHandler(opts.BaseURL))
		r.Get("/qr/{id}.png", public.QR)
		r.Handle("/static/*", staticHandler())
	})

	// Pages.
	r.Group(func(r chi.Router) {
		r.Use(middleware.NewCSRF(opts.SecureCookies))
		r.Use(middleware.ViewportHint)

		r.Get("/go/{id}", public.GoTo)
		r.With(contactLimit(opts.ContactLimiter)).Post("/contact", public.ContactSubmit)
		r.Get("/", public.Page)
		r.Get("/*", public.Page)
	})

	return r
}

// contactLimit returns the limiter's middleware, or a no-op without one.
func contactLimit(rl *middleware.RateLimiter) func(http.Handler) http.Handler {
	if rl == nil {
		return func(next http.Handler) http.Handler { return next }
	}
	return rl.Middleware
}

// staticHandler serves the embedded assets under /static/.
func staticHandler() http.Handler {
	sub, err := fs.Sub(web.StaticFS, "static")
	if err != nil {
		// The embed pattern guarantees the directory exists.
		panic(err)
	}
	files := http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "public, max-age=3600")
		files.ServeHTTP(w, r)
	})
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

func robotsHandler(baseURL string) http.HandlerFunc {
	body := "User-agent: *\nAllow: /\nSitemap: " + strings.TrimRight(baseURL, "/") + "/sitemap.xml\n"
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte(body))
	}
}
