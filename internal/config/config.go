// Package config loads pipeline configuration from environment variables,
// .env files, and an optional YAML settings file.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/dvloznov/budget-trips/internal/pipeline"
)

// Config is the resolved runtime configuration.
type Config struct {
	// Timezone is the reference timezone for all date computations.
	Timezone string
	// MaxDaysBetween is the trip clustering gap, in whole days.
	MaxDaysBetween int
	// ExcludePositiveTransactions drops inflows from clustering.
	ExcludePositiveTransactions bool
	// SettingsFile is an optional YAML file whose values override the
	// environment.
	SettingsFile string
}

// fileSettings mirrors the YAML settings file. Pointer fields distinguish
// "absent" from zero values.
type fileSettings struct {
	Timezone                    *string `yaml:"timezone"`
	MaxDaysBetween              *int    `yaml:"maxDaysBetween"`
	ExcludePositiveTransactions *bool   `yaml:"excludePositiveTransactions"`
}

// Load resolves configuration from the environment. A .env file in the
// current directory is loaded first when present; a custom path may be given.
// If TRIPS_SETTINGS_FILE (or the SettingsFile it names) is set, the YAML file
// overrides the environment values.
func Load(envPath ...string) (*Config, error) {
	if len(envPath) > 0 && envPath[0] != "" {
		if err := godotenv.Load(envPath[0]); err != nil {
			return nil, fmt.Errorf("config.Load: loading %s: %w", envPath[0], err)
		}
	} else {
		// Ignore a missing .env; plain environment variables still apply.
		_ = godotenv.Load()
	}

	maxDays, err := parseIntEnv("TRIPS_MAX_DAYS_BETWEEN", pipeline.DefaultSettings.MaxDaysBetween)
	if err != nil {
		return nil, fmt.Errorf("config.Load: invalid TRIPS_MAX_DAYS_BETWEEN: %w", err)
	}
	excludePositive, err := parseBoolEnv("TRIPS_EXCLUDE_POSITIVE", pipeline.DefaultSettings.ExcludePositiveTransactions)
	if err != nil {
		return nil, fmt.Errorf("config.Load: invalid TRIPS_EXCLUDE_POSITIVE: %w", err)
	}

	cfg := &Config{
		Timezone:                    getEnvOrDefault("TRIPS_TIMEZONE", pipeline.DefaultTimezone),
		MaxDaysBetween:              maxDays,
		ExcludePositiveTransactions: excludePositive,
		SettingsFile:                os.Getenv("TRIPS_SETTINGS_FILE"),
	}

	if cfg.SettingsFile != "" {
		if err := cfg.applyFile(cfg.SettingsFile); err != nil {
			return nil, fmt.Errorf("config.Load: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}
	return cfg, nil
}

// applyFile overlays values from a YAML settings file.
func (c *Config) applyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading settings file: %w", err)
	}
	var fs fileSettings
	if err := yaml.Unmarshal(data, &fs); err != nil {
		return fmt.Errorf("parsing settings file %s: %w", path, err)
	}
	if fs.Timezone != nil {
		c.Timezone = *fs.Timezone
	}
	if fs.MaxDaysBetween != nil {
		c.MaxDaysBetween = *fs.MaxDaysBetween
	}
	if fs.ExcludePositiveTransactions != nil {
		c.ExcludePositiveTransactions = *fs.ExcludePositiveTransactions
	}
	return nil
}

// Validate checks that the configuration can actually drive the pipeline.
func (c *Config) Validate() error {
	if c.MaxDaysBetween < 0 {
		return fmt.Errorf("maxDaysBetween must be non-negative, got %d", c.MaxDaysBetween)
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return nil
}

// Location returns the reference timezone.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("config: loading timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// Settings converts the configuration into pipeline settings.
func (c *Config) Settings() pipeline.Settings {
	return pipeline.Settings{
		MaxDaysBetween:              c.MaxDaysBetween,
		ExcludePositiveTransactions: c.ExcludePositiveTransactions,
	}
}

func getEnvOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseIntEnv(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	return strconv.Atoi(v)
}

func parseBoolEnv(key string, fallback bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	return strconv.ParseBool(v)
}
