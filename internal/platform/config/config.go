// Package config loads service configuration: built-in defaults, then an
// optional YAML file, then STAFFPLAN_* environment variables.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix marks environment variables that override configuration.
const EnvPrefix = "STAFFPLAN_"

const maxConfigFileSize = 1 << 20

//go:embed defaults.yaml
var defaultsYAML []byte

// Server captures HTTP server level configuration.
type Server struct {
	Addr            string        `koanf:"addr"`
	AdminToken      string        `koanf:"admin_token"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// Log selects the slog handler and level.
type Log struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// Venue is one venue's display name and gender quotas.
type Venue struct {
	Name   string `koanf:"name"`
	Male   int    `koanf:"male"`
	Female int    `koanf:"female"`
}

type Venues struct {
	A Venue `koanf:"a"`
	B Venue `koanf:"b"`
}

type Assignment struct {
	QuotaPolicy string `koanf:"quota_policy"`
}

type Roster struct {
	SeedPath string `koanf:"seed_path"`
}

// Config is the full service configuration.
type Config struct {
	Server     Server     `koanf:"server"`
	Log        Log        `koanf:"log"`
	Venues     Venues     `koanf:"venues"`
	Assignment Assignment `koanf:"assignment"`
	Roster     Roster     `koanf:"roster"`
}

// Load builds the configuration. path may be empty; a named file that does
// not exist is an error.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(rawbytes.Provider(defaultsYAML), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path != "" {
		content, err := readConfigFile(path)
		if err != nil {
			return nil, err
		}
		if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

func readConfigFile(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("config path %s is a directory", path)
	}
	if info.Size() > maxConfigFileSize {
		return nil, fmt.Errorf("config file %s exceeds %d bytes", path, maxConfigFileSize)
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return content, nil
}

// envKey maps STAFFPLAN_SECTION_FIELD_NAME to section.field_name. Venue keys
// carry one more level: STAFFPLAN_VENUES_A_MALE -> venues.a.male.
func envKey(s string) string {
	lower := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	section, rest, ok := strings.Cut(lower, "_")
	if !ok {
		return lower
	}
	if section == "venues" {
		if venue, field, ok := strings.Cut(rest, "_"); ok {
			return section + "." + venue + "." + field
		}
	}
	return section + "." + rest
}

// Validate checks the loaded values.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Server.Addr) == "" {
		return fmt.Errorf("server.addr is required")
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("server.shutdown_timeout must be positive")
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be debug, info, warn or error, got %q", c.Log.Level)
	}
	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text, got %q", c.Log.Format)
	}
	switch c.Assignment.QuotaPolicy {
	case "report", "strict":
	default:
		return fmt.Errorf("assignment.quota_policy must be report or strict, got %q", c.Assignment.QuotaPolicy)
	}
	for key, v := range map[string]Venue{"a": c.Venues.A, "b": c.Venues.B} {
		if strings.TrimSpace(v.Name) == "" {
			return fmt.Errorf("venues.%s.name is required", key)
		}
		if v.Male < 0 || v.Female < 0 {
			return fmt.Errorf("venues.%s quotas must be non-negative", key)
		}
	}
	return nil
}
