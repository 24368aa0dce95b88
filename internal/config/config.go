// Package config loads server settings from flags with environment
// fallbacks.
package config

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2/log"
)

type Config struct {
	Addr             string
	AllowOrigins     string
	InvalidMoveDelay time.Duration
	Hotseat          bool
	LogLevel         log.Level
}

const envPrefix = "CLICKCHESS_"

// Load parses args (without the program name) on a fresh flag set.
func Load(args []string) (Config, error) {
	fs := flag.NewFlagSet("clickchess", flag.ContinueOnError)

	addr := fs.String("addr", getenv("ADDR", ":3000"), "listen address")
	origins := fs.String("allow-origins", getenv("ALLOW_ORIGINS", "http://localhost:5173"), "comma-separated CORS origins")
	delay := fs.String("invalid-move-delay", getenv("INVALID_MOVE_DELAY", "2s"), "how long the invalid-move indicator stays up")
	hotseat := fs.Bool("hotseat", getenb("HOTSEAT", true), "let any client drive the board (both players share one screen)")
	level := fs.String("log-level", getenv("LOG_LEVEL", "info"), "trace, debug, info, warn or error")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	d, err := time.ParseDuration(*delay)
	if err != nil {
		return Config{}, fmt.Errorf("invalid-move-delay: %w", err)
	}
	if d <= 0 {
		return Config{}, fmt.Errorf("invalid-move-delay must be positive, got %s", d)
	}
	lvl, err := parseLevel(*level)
	if err != nil {
		return Config{}, err
	}

	return Config{
		Addr:             *addr,
		AllowOrigins:     *origins,
		InvalidMoveDelay: d,
		Hotseat:          *hotseat,
		LogLevel:         lvl,
	}, nil
}

func parseLevel(s string) (log.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return log.LevelTrace, nil
	case "debug":
		return log.LevelDebug, nil
	case "info", "":
		return log.LevelInfo, nil
	case "warn", "warning":
		return log.LevelWarn, nil
	case "error":
		return log.LevelError, nil
	}
	return 0, fmt.Errorf("unknown log level %q", s)
}

func getenv(key, def string) string {
	if v := os.Getenv(envPrefix + key); v != "" {
		return v
	}
	return def
}

func getenb(key string, def bool) bool {
	if v := os.Getenv(envPrefix + key); v != "" {
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "1", "true", "t", "yes", "y", "on":
			return true
		case "0", "false", "f", "no", "n", "off":
			return false
		}
	}
	return def
}
