// Package config loads settings for the demo programs. The gateway and
// controller take plain values and never read it.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"

	"go.uber.org/zap/zapcore"

	"github.com/shuvava/go-users-client/middleware"
)

// DefaultBaseURL is the public demo backend.
const DefaultBaseURL = "https://jsonplaceholder.typicode.com"

// Environment overrides, applied after the properties file.
const (
	EnvBaseURL  = "USERS_BASE_URL"
	EnvLogLevel = "USERS_LOG_LEVEL"
)

// Config holds the demo settings.
type Config struct {
	BaseURL   string                     `json:"baseUrl"`
	LogLevel  string                     `json:"logLevel"`
	UserAgent middleware.UserAgentConfig `json:"userAgent"`
}

// Default returns the settings used when no file and no env vars are present.
func Default() *Config {
	return &Config{
		BaseURL:  DefaultBaseURL,
		LogLevel: "info",
		UserAgent: middleware.UserAgentConfig{
			App:     "users-crud",
			Version: "1.0.0",
		},
	}
}

// Load reads properties.json, or properties.<profile>.json, from dir.
// A missing file is not an error: defaults are used. Env vars win over
// the file.
func Load(dir string, profile ...string) (*Config, error) {
	name, err := fileNameFor(profile...)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	path := filepath.Join(dir, name)
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	default:
		if err = json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	if v := os.Getenv(EnvBaseURL); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}

	if err = cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the base url and log level.
func (c *Config) Validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("config: baseUrl %q is not an absolute http(s) url", c.BaseURL)
	}
	if _, err = c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel.
func (c *Config) Level() (zapcore.Level, error) {
	lvl, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return lvl, fmt.Errorf("config: %w", err)
	}
	return lvl, nil
}

func fileNameFor(profile ...string) (string, error) {
	const name = "properties"
	const ext = ".json"

	if len(profile) > 1 {
		return "", errors.New("config: only one profile suffix is allowed")
	}
	if len(profile) == 0 || profile[0] == "" {
		return name + ext, nil
	}
	return name + "." + profile[0] + ext, nil
}
