// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package config loads the site configuration: built-in defaults, then an
// optional YAML file, then environment variables.
package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// DefaultPath is the config file read when --config is not given.
const DefaultPath = "confsite.yaml"

// Config holds all application configuration values.
type Config struct {
	Host    string `koanf:"host"`
	Port    string `koanf:"port"`
	Env     string `koanf:"env"` // "development", "production", "testing"
	BaseURL string `koanf:"base_url"`

	// TrustProxy honours X-Forwarded-For when rate limiting.
	TrustProxy bool `koanf:"trust_proxy"`

	Routes  RoutesConfig  `koanf:"routes"`
	Contact ContactConfig `koanf:"contact"`
	Valkey  ValkeyConfig  `koanf:"valkey"`
	S3      S3Config      `koanf:"s3"`
	TLS     TLSConfig     `koanf:"tls"`
}

// RoutesConfig controls which pages are routed.
type RoutesConfig struct {
	// Extended also routes the pages only linked from the footer.
	Extended bool `koanf:"extended"`
}

// ContactConfig limits contact form submissions per client IP.
type ContactConfig struct {
	RateLimit  int           `koanf:"rate_limit"`
	RateWindow time.Duration `koanf:"rate_window"`
}

// ValkeyConfig enables the page cache when Host is set.
type ValkeyConfig struct {
	Host     string        `koanf:"host"`
	Port     string        `koanf:"port"`
	Password string        `koanf:"password"`
	DB       int           `koanf:"db"`
	TTL      time.Duration `koanf:"ttl"`
}

// S3Config is the publish target for `confsite export --publish`.
type S3Config struct {
	Endpoint  string `koanf:"endpoint"`
	Region    string `koanf:"region"`
	AccessKey string `koanf:"access_key"`
	SecretKey string `koanf:"secret_key"`
	Bucket    string `koanf:"bucket"`
	Prefix    string `koanf:"prefix"`
}

// TLSConfig enables ACME certificates when Domain is set.
type TLSConfig struct {
	Domain   string `koanf:"domain"`
	CacheDir string `koanf:"cache_dir"`
	Email    string `koanf:"email"`
}

// envKeys maps environment variables to config keys. Variables that are
// not listed, or are set but empty, are ignored.
var envKeys = map[string]string{
	"APP_HOST":            "host",
	"APP_PORT":            "port",
	"APP_ENV":             "env",
	"APP_BASE_URL":        "base_url",
	"APP_TRUST_PROXY":     "trust_proxy",
	"APP_ROUTES_EXTENDED": "routes.extended",
	"CONTACT_RATE_LIMIT":  "contact.rate_limit",
	"CONTACT_RATE_WINDOW": "contact.rate_window",
	"VALKEY_HOST":         "valkey.host",
	"VALKEY_PORT":         "valkey.port",
	"VALKEY_PASSWORD":     "valkey.password",
	"VALKEY_DB":           "valkey.db",
	"VALKEY_TTL":          "valkey.ttl",
	"S3_ENDPOINT":         "s3.endpoint",
	"S3_REGION":           "s3.region",
	"S3_ACCESS_KEY":       "s3.access_key",
	"S3_SECRET_KEY":       "s3.secret_key",
	"S3_BUCKET":           "s3.bucket",
	"S3_PREFIX":           "s3.prefix",
	"TLS_DOMAIN":          "tls.domain",
	"TLS_CACHE_DIR":       "tls.cache_dir",
	"TLS_EMAIL":           "tls.email",
}

// Default returns the development defaults.
func Default() *Config {
	return &Config{
		Host:    "0.0.0.0",
		Port:    "8080",
		Env:     "development",
		BaseURL: "http://localhost:8080",
		Contact: ContactConfig{
			RateLimit:  10,
			RateWindow: time.Minute,
		},
		Valkey: ValkeyConfig{
			Port: "6379",
			TTL:  5 * time.Minute,
		},
		S3: S3Config{
			Region: "auto",
		},
		TLS: TLSConfig{
			CacheDir: "certs",
		},
	}
}

// Load reads the YAML file at path if it exists, overlays environment
// overrides, and validates the result.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := Default()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func envKey(name string) string {
	key, ok := envKeys[name]
	if !ok || os.Getenv(name) == "" {
		return ""
	}
	return key
}

// Validate checks the values that would otherwise fail at first use.
func (c *Config) Validate() error {
	switch c.Env {
	case "development", "production", "testing":
	default:
		return fmt.Errorf("invalid env %q: must be one of development, production, testing", c.Env)
	}

	if p, err := strconv.Atoi(c.Port); err != nil || p < 1 || p > 65535 {
		return fmt.Errorf("invalid port %q", c.Port)
	}

	if c.Env == "production" && c.BaseURL == Default().BaseURL {
		return fmt.Errorf("base_url (APP_BASE_URL) must be set in production")
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid base_url %q: must be an absolute http(s) URL", c.BaseURL)
	}

	if c.Contact.RateLimit < 1 || c.Contact.RateWindow <= 0 {
		return fmt.Errorf("contact rate limit must be positive")
	}

	if c.TLS.Domain != "" && c.TLS.CacheDir == "" {
		return fmt.Errorf("tls.cache_dir is required when tls.domain is set")
	}

	return nil
}

// Addr returns the server listen address (host:port).
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// IsDev returns true if the application is running in development mode.
func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// CacheEnabled reports whether a Valkey host is configured.
func (c *Config) CacheEnabled() bool {
	return c.Valkey.Host != ""
}

// PublishEnabled reports whether an S3 bucket is configured.
func (c *Config) PublishEnabled() bool {
	return c.S3.Bucket != ""
}

// SecureCookies reports whether cookies should carry the Secure flag.
func (c *Config) SecureCookies() bool {
	return c.TLS.Domain != "" || (c.Env == "production" && strings.HasPrefix(c.BaseURL, "https://"))
}
