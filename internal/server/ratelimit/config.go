package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// RouteLimit configures the limit for one route. Path matches by
// prefix so patterns with path parameters are covered. A Limit of zero
// or below means unlimited.
type RouteLimit struct {
	Path   string
	Method string
	Limit  int
	Window time.Duration
	Burst  int
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	Routes          []RouteLimit
}

// LoadConfig reads rate limiting configuration from environment
// variables, falling back to defaults tuned for the advisor API.
func LoadConfig() *Config {
	enabled := getEnvBool("RATE_LIMIT_ENABLED", true)
	if !enabled {
		return &Config{Enabled: false}
	}

	return &Config{
		Enabled:         true,
		DefaultLimit:    getEnvInt("RATE_LIMIT_DEFAULT_LIMIT", 300),
		DefaultWindow:   getEnvDuration("RATE_LIMIT_DEFAULT_WINDOW", time.Minute),
		CleanupInterval: getEnvDuration("RATE_LIMIT_CLEANUP_INTERVAL", 5*time.Minute),
		Routes:          DefaultRouteLimits(),
	}
}

// DefaultRouteLimits returns the per-route limits. Parse runs the full
// extraction pipeline and match may fetch posting pages, so both are
// tighter than plain reads. Auth endpoints are limited to slow down
// credential stuffing.
func DefaultRouteLimits() []RouteLimit {
	return []RouteLimit{
		{Path: "/v1/parse", Method: "POST", Limit: 30, Window: time.Minute, Burst: 5},
		{Path: "/v1/match", Method: "POST", Limit: 60, Window: time.Minute, Burst: 10},
		{Path: "/v1/auth/", Method: "POST", Limit: 20, Window: time.Minute, Burst: 5},
		{Path: "/health", Method: "GET", Limit: 0},
	}
}

// match finds the route limit for a path and method, falling back to
// the default limit.
func (c *Config) match(path, method string) RouteLimit {
	for _, route := range c.Routes {
		if route.Method == method && strings.HasPrefix(path, route.Path) {
			return route
		}
	}
	return RouteLimit{
		Path:   "",
		Method: method,
		Limit:  c.DefaultLimit,
		Window: c.DefaultWindow,
		Burst:  c.DefaultLimit,
	}
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
