// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// handler_test.go provides shared test infrastructure for handler tests.
// Valkey-backed tests are skipped when Valkey is unavailable.
package handlers

import (
	"context"
	"net"
	"net/http"
	"os"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"

	"confsite/internal/cache"
	"confsite/internal/content"
	"confsite/internal/render"
	"confsite/internal/routes"
)

const testBaseURL = "https://conference.example.org"

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// newTestPublic builds the handler group over the embedded content.
func newTestPublic(t *testing.T, extended bool, pc *cache.PageCache) *Public {
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
	return NewPublic(cat, table, rn, pc, testBaseURL)
}

// testValkeyClient returns a client on DB 15, or skips the test.
func testValkeyClient(t *testing.T) *redis.Client {
	t.Helper()
	client := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(envOr("VALKEY_HOST", "localhost"), envOr("VALKEY_PORT", "6379")),
		Password: os.Getenv("VALKEY_PASSWORD"),
		DB:       15,
	})
	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Skipf("skipping: Valkey not reachable: %v", err)
	}
	t.Cleanup(func() {
		keys, _ := client.Keys(ctx, "confsite:page:*").Result()
		if len(keys) > 0 {
			client.Del(ctx, keys...)
		}
		client.Close()
	})
	return client
}

// withURLParam attaches a chi route parameter to r.
func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func parseDoc(t *testing.T, body string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	return doc
}
