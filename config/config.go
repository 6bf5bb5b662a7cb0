package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port              string
	DatabaseURL       string
	RedisAddr         string
	CacheTTL          time.Duration
	RateLimitCapacity int
	RateLimitWindow   time.Duration
	ShutdownTimeout   time.Duration
}

func Default() Config {
	return Config{
		Port:              "8080",
		CacheTTL:          10 * time.Minute,
		RateLimitCapacity: 60,
		RateLimitWindow:   time.Minute,
		ShutdownTimeout:   10 * time.Second,
	}
}

// Load reads a .env file when present and then the process environment.
// Variables that are unset or empty keep their defaults.
func Load() (Config, error) {
	_ = godotenv.Load()
	return FromLookup(os.LookupEnv)
}

// FromLookup builds a Config from lookup, which has the signature of
// os.LookupEnv.
func FromLookup(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	get := func(key string) (string, bool) {
		v, ok := lookup(key)
		if !ok || v == "" {
			return "", false
		}
		return v, true
	}

	if v, ok := get("PORT"); ok {
		cfg.Port = v
	}
	if v, ok := get("DATABASE_URL"); ok {
		cfg.DatabaseURL = v
	}
	if v, ok := get("REDIS_ADDR"); ok {
		cfg.RedisAddr = v
	}

	durations := []struct {
		key string
		dst *time.Duration
	}{
		{"CACHE_TTL", &cfg.CacheTTL},
		{"RATE_LIMIT_WINDOW", &cfg.RateLimitWindow},
		{"SHUTDOWN_TIMEOUT", &cfg.ShutdownTimeout},
	}
	for _, d := range durations {
		v, ok := get(d.key)
		if !ok {
			continue
		}
		parsed, err := time.ParseDuration(v)
		if err != nil || parsed <= 0 {
			return Config{}, fmt.Errorf("invalid %s %q: must be a positive duration", d.key, v)
		}
		*d.dst = parsed
	}

	if v, ok := get("RATE_LIMIT_CAPACITY"); ok {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return Config{}, fmt.Errorf("invalid RATE_LIMIT_CAPACITY %q: must be a positive integer", v)
		}
		cfg.RateLimitCapacity = n
	}

	return cfg, nil
}

// Addr is the listen address of the HTTP server.
func (c Config) Addr() string {
	return ":" + c.Port
}
