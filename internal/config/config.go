// Package config loads zpersona settings from the environment and an
// optional dotenv file. Process environment wins over the file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/zarlcorp/zpersona/internal/fakegen"
	"github.com/zarlcorp/zpersona/internal/geoip"
)

// Environment variables read by Load.
const (
	EnvBackend     = "ZPERSONA_BACKEND"
	EnvLocale      = "ZPERSONA_LOCALE"
	EnvEchoURL     = "ZPERSONA_IP_ECHO_URL"
	EnvGeoURL      = "ZPERSONA_GEO_URL"
	EnvGeoTimeout  = "ZPERSONA_GEO_TIMEOUT"
	EnvGeoRate     = "ZPERSONA_GEO_RATE"
	EnvDNSFallback = "ZPERSONA_DNS_FALLBACK"
	EnvLogLevel    = "ZPERSONA_LOG_LEVEL"
)

// DefaultEnvFile is read when Load is called without file names.
const DefaultEnvFile = ".env"

// Config is the resolved runtime configuration.
type Config struct {
	Backend  string
	Locale   string
	Geo      geoip.Config
	LogLevel slog.Level
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Backend: fakegen.BackendModern,
		Locale:  fakegen.DefaultLocale,
		Geo: geoip.Config{
			Timeout:     geoip.DefaultTimeout,
			Rate:        1,
			DNSFallback: true,
		},
		LogLevel: slog.LevelWarn,
	}
}

// Load reads the dotenv files (DefaultEnvFile when none are given) and
// the process environment. Missing files are skipped.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{DefaultEnvFile}
	}

	fileVals := map[string]string{}
	for _, f := range files {
		vals, err := godotenv.Read(f)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return Config{}, fmt.Errorf("read env file %s: %w", f, err)
		}
		for k, v := range vals {
			if _, seen := fileVals[k]; !seen {
				fileVals[k] = v
			}
		}
	}

	return FromLookup(func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := fileVals[key]
		return v, ok
	})
}

// FromLookup builds a Config from the values lookup returns, starting from
// Default.
func FromLookup(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	get := func(key string) (string, bool) {
		v, ok := lookup(key)
		v = strings.TrimSpace(v)
		return v, ok && v != ""
	}

	if v, ok := get(EnvBackend); ok {
		cfg.Backend = strings.ToLower(v)
	}
	if v, ok := get(EnvLocale); ok {
		cfg.Locale = strings.ToLower(v)
	}
	if v, ok := get(EnvEchoURL); ok {
		cfg.Geo.EchoURL = v
	}
	if v, ok := get(EnvGeoURL); ok {
		cfg.Geo.GeoURL = v
	}

	if v, ok := get(EnvGeoTimeout); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", EnvGeoTimeout, err)
		}
		if d <= 0 {
			return Config{}, fmt.Errorf("parse %s: must be positive, got %s", EnvGeoTimeout, v)
		}
		cfg.Geo.Timeout = d
	}

	if v, ok := get(EnvGeoRate); ok {
		r, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", EnvGeoRate, err)
		}
		cfg.Geo.Rate = r
	}

	if v, ok := get(EnvDNSFallback); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", EnvDNSFallback, err)
		}
		cfg.Geo.DNSFallback = b
	}

	if v, ok := get(EnvLogLevel); ok {
		if err := cfg.LogLevel.UnmarshalText([]byte(v)); err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", EnvLogLevel, err)
		}
	}

	return cfg, nil
}
