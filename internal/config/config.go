// Package config loads runtime settings for Taskdesk.
package config

import (
	"log/slog"
	"strings"
)

// Config holds runtime settings for the Taskdesk CLI.
//
// Fields:
//   - DataDir: directory holding the credential file and per-user task files.
//   - UsersFileName: name of the shared credential file inside DataDir.
//   - LogLevel: one of "debug", "info", "warn", "error".
type Config struct {
	DataDir       string
	UsersFileName string
	LogLevel      string
}

// LoadDefaults populates c with sensible defaults. The data directory
// defaults to the working directory for compatibility with existing
// users.json / tasks_<user>.json files.
func (c *Config) LoadDefaults() {
	c.DataDir = "."
	c.UsersFileName = "users.json"
	c.LogLevel = "info"
}

// SlogLevel maps LogLevel to a slog.Level; unknown values fall back to Info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
