package config

import (
	"os"
	"strings"
)

type Config struct {
	HTTPAddr string

	// Remote LexCard backend. GraphQL lives at BackendURL + "/graphql";
	// the legacy REST endpoints live under BackendURL + "/api".
	BackendURL string

	// Base used when resolving relative image paths for display.
	AssetBaseURL string

	// Client-local store (the localStorage analog): fs|sqlite|postgres.
	StoreDriver   string
	StoreBasePath string // for fs
	StoreDSN      string // for sqlite/postgres

	// Optional 32-byte secret; when set, the persisted auth token is
	// encrypted at rest.
	StoreSecret string

	CORSOrigins []string

	SessionCookie string
}

func FromEnv() Config {
	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	backend := strings.TrimSuffix(envOr("BACKEND_URL", "http://localhost:4000"), "/")
	return Config{
		HTTPAddr:      addr,
		BackendURL:    backend,
		AssetBaseURL:  strings.TrimSuffix(envOr("ASSET_BASE_URL", backend), "/"),
		StoreDriver:   envOr("STORE_DRIVER", "fs"),
		StoreBasePath: envOr("STORE_BASE_PATH", "./data"),
		StoreDSN:      envOr("STORE_DSN", ""),
		StoreSecret:   os.Getenv("STORE_SECRET"),
		CORSOrigins:   csvOr("CORS_ORIGINS", "http://localhost:3000,http://localhost:5173"),
		SessionCookie: envOr("SESSION_COOKIE", "lexcard_session"),
	}
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func csvOr(k, def string) []string {
	v := envOr(k, def)
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
