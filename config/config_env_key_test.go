package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master":  map[string]any{"userName": "portfolio"},
		},
		"secretKey": map[string]any{"token": ""},
		"ai":        map[string]any{"apiKey": "", "cacheTTL": "10m"},
		"http": map[string]any{
			"basePath": "/api",
			"cors":     map[string]any{"allowOrigins": []any{}},
		},
		"client": map[string]any{"baseUrl": "", "loginPath": ""},
	}

	cases := map[string]string{
		"POSTGRES_SSLMODE":         "postgres.sslMode",
		"POSTGRES_MASTER_USERNAME": "postgres.master.userName",
		"SECRETKEY_TOKEN":          "secretKey.token",
		"AI_CACHETTL":              "ai.cacheTTL",
		"HTTP_BASEPATH":            "http.basePath",
		"HTTP_CORS_ALLOWORIGINS":   "http.cors.allowOrigins",
		"CLIENT_BASEURL":           "client.baseUrl",
		"CLIENT__LOGINPATH":        "client.loginPath",
		"UNKNOWN_SECTION_KEY":      "unknown.section.key",
	}

	for envKey, want := range cases {
		t.Run(envKey, func(t *testing.T) {
			assert.Equal(t, want, canonicalizeEnvKey(envKey, existing))
		})
	}
}
