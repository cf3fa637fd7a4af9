// Package config loads service configuration from an optional YAML file
// with environment-variable overrides.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/albait/assistant/internal/engine"
)

type Server struct {
	Host       string        `yaml:"host"`
	Port       int           `yaml:"port"`
	SessionTTL time.Duration `yaml:"session_ttl"`
}

type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type Data struct {
	CatalogPath string `yaml:"catalog_path"`
	PagesPath   string `yaml:"pages_path"`
}

type Config struct {
	Server Server        `yaml:"server"`
	Log    Log           `yaml:"log"`
	Data   Data          `yaml:"data"`
	Engine engine.Config `yaml:"engine"`
}

// Default returns the configuration used when no file is supplied. Empty
// data paths select the bundled dataset.
func Default() Config {
	return Config{
		Server: Server{Host: "0.0.0.0", Port: 8080, SessionTTL: 30 * time.Minute},
		Log:    Log{Level: "info", Format: "json"},
		Engine: engine.DefaultConfig(),
	}
}

// Load reads the YAML file at path over the defaults, then applies
// environment overrides. An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("ASSISTANT_HOST"); v != "" {
		cfg.Server.Host = v
	}
	if v := os.Getenv("ASSISTANT_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("ASSISTANT_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("ASSISTANT_LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
	if v := os.Getenv("ASSISTANT_CATALOG_PATH"); v != "" {
		cfg.Data.CatalogPath = v
	}
	if v := os.Getenv("ASSISTANT_PAGES_PATH"); v != "" {
		cfg.Data.PagesPath = v
	}
}

// Addr returns the listen address.
func (s Server) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}
