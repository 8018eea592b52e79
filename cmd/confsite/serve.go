// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/acme/autocert"

	"confsite/internal/cache"
	"confsite/internal/handlers"
	"confsite/internal/middleware"
	"confsite/internal/router"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the site over HTTP",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	slog.Info("configuration loaded", "env", cfg.Env, "addr", cfg.Addr(), "base_url", cfg.BaseURL)

	s, err := loadSite(cfg)
	if err != nil {
		return err
	}

	// The page cache is optional; without Valkey every request renders.
	var pageCache *cache.PageCache
	if cfg.CacheEnabled() {
		client, err := cache.ConnectValkey(ctx, cfg.Valkey.Host, cfg.Valkey.Port, cfg.Valkey.Password, cfg.Valkey.DB)
		if err != nil {
			slog.Warn("page cache disabled", "error", err)
		} else {
			defer client.Close()
			pageCache = cache.NewPageCache(client, cfg.Valkey.TTL, version, s.table)
		}
	}

	limiter := middleware.NewRateLimiter(cfg.Contact.RateLimit, cfg.Contact.RateWindow)
	limiter.TrustProxy = cfg.TrustProxy
	defer limiter.Stop()

	public := handlers.NewPublic(s.catalog, s.table, s.renderer, pageCache, cfg.BaseURL)
	r := router.New(public, router.Options{
		BaseURL:        cfg.BaseURL,
		SecureCookies:  cfg.SecureCookies(),
		ContactLimiter: limiter,
	})

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 2)
	var challenge *http.Server
	if cfg.TLS.Domain != "" {
		m := &autocert.Manager{
			Prompt:     autocert.AcceptTOS,
			HostPolicy: autocert.HostWhitelist(cfg.TLS.Domain),
			Cache:      autocert.DirCache(cfg.TLS.CacheDir),
			Email:      cfg.TLS.Email,
		}
		srv.TLSConfig = m.TLSConfig()

		// ACME HTTP-01 challenges, and a redirect to HTTPS for everything else.
		challenge = &http.Server{
			Addr:        ":80",
			Handler:     m.HTTPHandler(nil),
			ReadTimeout: 5 * time.Second,
		}
		go func() {
			slog.Info("acme challenge listener starting", "addr", challenge.Addr, "domain", cfg.TLS.Domain)
			if err := challenge.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
		}()
	}

	go func() {
		slog.Info("server starting", "addr", srv.Addr, "tls", srv.TLSConfig != nil)
		var err error
		if srv.TLSConfig != nil {
			err = srv.ListenAndServeTLS("", "")
		} else {
			err = srv.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		slog.Info("shutdown signal received")
	}

	// Give active requests up to 30 seconds to complete.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if challenge != nil {
		challenge.Shutdown(shutdownCtx)
	}
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	slog.Info("server stopped gracefully")
	return nil
}
