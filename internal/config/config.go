// Package config loads the server configuration.
//
// Values are layered: built-in defaults, then an optional YAML file, then
// GARDEROBA_* environment variables. Command-line flags are applied on top
// by the caller.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the server configuration.
type Config struct {
	Addr string `yaml:"addr"`

	// Store is the document store location, see docstore.Open.
	Store      string `yaml:"store"`
	StoreToken string `yaml:"store_token"`

	LogPath   string `yaml:"log"`
	LogFormat string `yaml:"log_format"`

	// SessionSecret signs session cookies. If empty, a SQL store provides a
	// persistent one; otherwise a random secret is generated at startup.
	SessionSecret string        `yaml:"session_secret"`
	SessionTTL    time.Duration `yaml:"session_ttl"`

	LandingDelay time.Duration `yaml:"landing_delay"`

	// SubmitRate is the number of form posts allowed per session per minute.
	SubmitRate  float64 `yaml:"submit_rate"`
	SubmitBurst int     `yaml:"submit_burst"`

	Metrics bool `yaml:"metrics"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Addr:         ":8080",
		Store:        "garderoba.sqlite3",
		LogFormat:    "text",
		SessionTTL:   24 * time.Hour,
		LandingDelay: 2 * time.Second,
		SubmitRate:   30,
		SubmitBurst:  5,
		Metrics:      true,
	}
}

// Load builds the configuration from defaults, the YAML file at path (if
// path is non-empty) and the environment.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	var errs []error

	setString(&c.Addr, "GARDEROBA_ADDR")
	setString(&c.Store, "GARDEROBA_STORE")
	setString(&c.StoreToken, "GARDEROBA_STORE_TOKEN")
	setString(&c.LogPath, "GARDEROBA_LOG")
	setString(&c.LogFormat, "GARDEROBA_LOG_FORMAT")
	setString(&c.SessionSecret, "GARDEROBA_SESSION_SECRET")
	errs = append(errs,
		setDuration(&c.SessionTTL, "GARDEROBA_SESSION_TTL"),
		setDuration(&c.LandingDelay, "GARDEROBA_LANDING_DELAY"),
		setFloat(&c.SubmitRate, "GARDEROBA_SUBMIT_RATE"),
		setInt(&c.SubmitBurst, "GARDEROBA_SUBMIT_BURST"),
		setBool(&c.Metrics, "GARDEROBA_METRICS"),
	)

	return errors.Join(errs...)
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	var errs []error
	if c.Addr == "" {
		errs = append(errs, errors.New("addr must not be empty"))
	}
	if c.Store == "" {
		errs = append(errs, errors.New("store must not be empty"))
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		errs = append(errs, fmt.Errorf("log_format must be text or json, got %q", c.LogFormat))
	}
	if c.SessionTTL <= 0 {
		errs = append(errs, errors.New("session_ttl must be positive"))
	}
	if c.LandingDelay < 0 {
		errs = append(errs, errors.New("landing_delay must not be negative"))
	}
	if c.SubmitRate <= 0 || c.SubmitBurst <= 0 {
		errs = append(errs, errors.New("submit_rate and submit_burst must be positive"))
	}
	return errors.Join(errs...)
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setDuration(dst *time.Duration, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = d
	return nil
}

func setFloat(dst *float64, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = f
	return nil
}

func setInt(dst *int, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = n
	return nil
}

func setBool(dst *bool, key string) error {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = b
	return nil
}
