package mcpserver

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// Document limits.
	MaxDocSize    int64
	MaxInlineSize int64

	// Engine defaults.
	KeysDepth    int
	ShapeDepth   int
	SearchLimit  int
	KeysPageSize int

	// Cache settings.
	CacheEnabled       bool
	CacheMaxSize       int
	CacheFileTTL       time.Duration
	CacheContentTTL    time.Duration
	CacheSweepInterval time.Duration
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from DOCTREE_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		MaxDocSize:         envInt64("DOCTREE_MAX_DOC_SIZE", 10<<20),
		MaxInlineSize:      envInt64("DOCTREE_MAX_INLINE_SIZE", 1<<20),
		KeysDepth:          envInt("DOCTREE_KEYS_DEPTH", 5),
		ShapeDepth:         envInt("DOCTREE_SHAPE_DEPTH", 3),
		SearchLimit:        envInt("DOCTREE_SEARCH_LIMIT", 100),
		KeysPageSize:       envInt("DOCTREE_KEYS_PAGE_SIZE", 200),
		CacheEnabled:       envBool("DOCTREE_CACHE_ENABLED", true),
		CacheMaxSize:       envInt("DOCTREE_CACHE_MAX_SIZE", 10),
		CacheFileTTL:       envDuration("DOCTREE_CACHE_FILE_TTL", 15*time.Minute),
		CacheContentTTL:    envDuration("DOCTREE_CACHE_CONTENT_TTL", 15*time.Minute),
		CacheSweepInterval: envDuration("DOCTREE_CACHE_SWEEP_INTERVAL", 60*time.Second),
	}
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid bool env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return b
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}

func envInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		slog.Warn("invalid duration env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return d
}
